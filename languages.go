package ftlmove

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Patterns is a list of glob patterns (e.g. "en*", "pt-??") matched against
// language directory names. An empty list matches every directory.
type Patterns []string

// ParsePatterns splits a comma-separated pattern list, dropping empty items.
func ParsePatterns(s string) Patterns {
	var out Patterns
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// UnmarshalYAML allows languages to be given as a comma-separated string or a list.
func (p *Patterns) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*p = nil
		return nil
	case string:
		*p = ParsePatterns(t)
		return nil
	case []interface{}:
		var out Patterns
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("language pattern must be a string, got %T", item)
			}
			out = append(out, ParsePatterns(s)...)
		}
		*p = out
		return nil
	default:
		return fmt.Errorf("languages must be a string or a list, got %T", v)
	}
}

type languageFilter []glob.Glob

func (p Patterns) compile() (languageFilter, error) {
	filter := make(languageFilter, 0, len(p))
	for _, pattern := range p {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid language pattern %q: %w", pattern, err)
		}
		filter = append(filter, g)
	}
	return filter, nil
}

func (f languageFilter) match(name string) bool {
	if len(f) == 0 {
		return true
	}
	for _, g := range f {
		if g.Match(name) {
			return true
		}
	}
	return false
}
