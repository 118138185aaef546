// Package fluent parses and serializes Fluent (.ftl) resources at entry granularity.
// Message and term bodies are kept as raw text, so an entry that is not edited
// serializes back exactly as it was read.
package fluent

import (
	"regexp"
	"strings"
)

// Kind is the type of a top-level resource entry.
type Kind int

const (
	Junk Kind = iota
	Message
	Term
	Comment
	GroupComment
	ResourceComment
)

func (k Kind) String() string {
	switch k {
	case Message:
		return "message"
	case Term:
		return "term"
	case Comment:
		return "comment"
	case GroupComment:
		return "group comment"
	case ResourceComment:
		return "resource comment"
	default:
		return "junk"
	}
}

// Entry is one top-level unit of a resource.
//
// For messages and terms, ID is the identifier (terms without the leading "-"),
// Comment holds the "#" lines attached directly above the entry and Value holds
// everything after the identifier, newline terminated. Comments and junk keep
// their raw text in Content.
type Entry struct {
	Kind    Kind
	ID      string
	Comment string
	Value   string
	Content string
}

// HasID reports whether the entry is a message or a term.
func (e *Entry) HasID() bool {
	return e.Kind == Message || e.Kind == Term
}

// Key returns the identifier as written in source: terms carry their "-".
func (e *Entry) Key() string {
	if e.Kind == Term {
		return "-" + e.ID
	}
	return e.ID
}

// Resource is the ordered list of entries of one file.
type Resource struct {
	Body []*Entry
}

// Last returns the final entry, or nil for an empty resource.
func (r *Resource) Last() *Entry {
	if len(r.Body) == 0 {
		return nil
	}
	return r.Body[len(r.Body)-1]
}

// Separator returns the blank line marker placed between existing content and
// appended entries.
func Separator() *Entry {
	return &Entry{Kind: Junk, Content: "\n"}
}

var entryHeader = regexp.MustCompile(`^(-?)([a-zA-Z][a-zA-Z0-9_-]*) *=`)

// Parse reads a resource. It never fails: text that is not a valid entry is
// kept as Junk.
func Parse(src string) *Resource {
	src = strings.TrimPrefix(src, "\ufeff")
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	p := &parser{lines: lines}
	p.parse()
	return &Resource{Body: p.body}
}

type parser struct {
	lines []string
	pos   int
	body  []*Entry
}

func (p *parser) parse() {
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		switch {
		case isBlank(line):
			p.pos++
		case commentLevel(line) > 0:
			p.parseComment()
		case entryHeader.MatchString(line):
			p.parseEntry("")
		default:
			p.parseJunk()
		}
	}
}

func (p *parser) parseComment() {
	level := commentLevel(p.lines[p.pos])
	var b strings.Builder
	for p.pos < len(p.lines) && commentLevel(p.lines[p.pos]) == level {
		b.WriteString(p.lines[p.pos])
		b.WriteByte('\n')
		p.pos++
	}
	if level == 1 && p.pos < len(p.lines) && entryHeader.MatchString(p.lines[p.pos]) {
		p.parseEntry(b.String())
		return
	}
	kind := Comment
	switch level {
	case 2:
		kind = GroupComment
	case 3:
		kind = ResourceComment
	}
	p.body = append(p.body, &Entry{Kind: kind, Content: b.String()})
}

// parseEntry reads a message or term starting at the current line. comment is
// the attached "#" block, which becomes a standalone comment if the entry
// turns out to be junk.
func (p *parser) parseEntry(comment string) {
	start := p.pos
	header := p.lines[p.pos]
	m := entryHeader.FindStringSubmatch(header)
	kind := Message
	if m[1] == "-" {
		kind = Term
	}
	id := m[2]
	rest := header[len(m[1])+len(id):]
	inline := strings.TrimSpace(header[len(m[0]):])

	var value strings.Builder
	value.WriteString(rest)
	value.WriteByte('\n')
	var braces placeables
	braces.feed(rest)
	var continuation []string
	p.pos++
	for p.pos < len(p.lines) {
		next := p.lines[p.pos]
		if braces.open() {
			if startsEntry(next) {
				break
			}
			continuation = append(continuation, next)
			braces.feed("\n" + next)
			p.pos++
			continue
		}
		if isIndented(next) {
			continuation = append(continuation, next)
			braces.feed("\n" + next)
			p.pos++
			continue
		}
		if isBlank(next) {
			j := p.pos
			for j < len(p.lines) && isBlank(p.lines[j]) {
				j++
			}
			if j < len(p.lines) && isIndented(p.lines[j]) {
				continuation = append(continuation, p.lines[p.pos:j]...)
				p.pos = j
				continue
			}
		}
		break
	}
	for _, line := range continuation {
		value.WriteString(line)
		value.WriteByte('\n')
	}

	if braces.open() || !hasBody(kind, inline, continuation) {
		if comment != "" {
			p.body = append(p.body, &Entry{Kind: Comment, Content: comment})
		}
		p.pos = start
		p.parseJunk()
		return
	}
	p.body = append(p.body, &Entry{
		Kind:    kind,
		ID:      id,
		Comment: comment,
		Value:   value.String(),
	})
}

// hasBody reports whether a message has a value or attributes, or a term has
// a value.
func hasBody(kind Kind, inline string, continuation []string) bool {
	if inline != "" {
		return true
	}
	for _, line := range continuation {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if kind == Term {
			return !strings.HasPrefix(trimmed, ".")
		}
		return true
	}
	return false
}

func (p *parser) parseJunk() {
	var b strings.Builder
	b.WriteString(p.lines[p.pos])
	b.WriteByte('\n')
	p.pos++
	for p.pos < len(p.lines) && !startsEntry(p.lines[p.pos]) {
		b.WriteString(p.lines[p.pos])
		b.WriteByte('\n')
		p.pos++
	}
	p.body = append(p.body, &Entry{Kind: Junk, Content: b.String()})
}

// commentLevel returns 1-3 for a valid comment line and 0 otherwise.
func commentLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 3 {
		return 0
	}
	if level < len(line) && line[level] != ' ' {
		return 0
	}
	return level
}

func startsEntry(line string) bool {
	if line == "" {
		return false
	}
	c := line[0]
	return c == '#' || c == '-' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isBlank(line string) bool {
	return strings.Trim(line, " ") == ""
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, " ") && !isBlank(line)
}

type braceMode int

const (
	modeExpression braceMode = iota
	modeSelect
)

// placeables tracks open "{ ... }" placeables across the lines of an entry.
// Select expressions switch to variant text after "->", where a "}" at any
// column closes the expression.
type placeables struct {
	stack    []braceMode
	inString bool
}

func (t *placeables) open() bool {
	return len(t.stack) > 0
}

func (t *placeables) feed(s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if t.inString {
			switch c {
			case '\\':
				i++
			case '"', '\n':
				t.inString = false
			}
			continue
		}
		if len(t.stack) == 0 || t.stack[len(t.stack)-1] == modeSelect {
			switch c {
			case '{':
				t.stack = append(t.stack, modeExpression)
			case '}':
				if len(t.stack) > 0 {
					t.stack = t.stack[:len(t.stack)-1]
				}
			}
			continue
		}
		switch c {
		case '"':
			t.inString = true
		case '{':
			t.stack = append(t.stack, modeExpression)
		case '}':
			t.stack = t.stack[:len(t.stack)-1]
		case '-':
			if i+1 < len(s) && s[i+1] == '>' {
				t.stack[len(t.stack)-1] = modeSelect
				i++
			}
		}
	}
}

// Serialize writes a resource the way the reference Fluent serializer lays it
// out: messages and terms back to back, one blank line before standalone
// comments that follow other entries, junk verbatim. A standalone "#" comment
// directly before a message or term is followed by a blank line so it does not
// attach to it when read back.
func Serialize(r *Resource) string {
	var b strings.Builder
	hasEntries := false
	for i, e := range r.Body {
		switch e.Kind {
		case Message, Term:
			b.WriteString(e.Comment)
			if e.Kind == Term {
				b.WriteByte('-')
			}
			b.WriteString(e.ID)
			b.WriteString(terminated(e.Value))
		case Comment, GroupComment, ResourceComment:
			if hasEntries && !endsBlank(b.String()) {
				b.WriteByte('\n')
			}
			b.WriteString(terminated(e.Content))
			if e.Kind == Comment && i+1 < len(r.Body) && r.Body[i+1].HasID() {
				b.WriteByte('\n')
			}
		default:
			b.WriteString(e.Content)
		}
		hasEntries = true
	}
	return b.String()
}

// endsBlank reports whether out already ends in a blank line. Junk keeps the
// blank lines that follow it, so they must not be doubled.
func endsBlank(out string) bool {
	if !strings.HasSuffix(out, "\n") {
		return false
	}
	body := out[:len(out)-1]
	return isBlank(body[strings.LastIndexByte(body, '\n')+1:])
}

func terminated(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
