package ftlmove

import (
	"path/filepath"
	"strings"

	"github.com/loopcontext/ftlmove/internal/fluent"
)

// partition splits body into the entries selected by keys and everything else.
// Both halves keep the original relative order.
func partition(body []*fluent.Entry, keys KeySet) (moved, remaining []*fluent.Entry) {
	for _, e := range body {
		if keys.selects(e) {
			moved = append(moved, e)
		} else {
			remaining = append(remaining, e)
		}
	}
	return moved, remaining
}

// RenamePrefix replaces the first occurrence of from in key with to. Keys that
// do not contain from, and an empty from, leave key unchanged.
func RenamePrefix(key, from, to string) string {
	if from == "" {
		return key
	}
	return strings.Replace(key, from, to, 1)
}

// filenamePrefix is the filename without its extension ("common.ftl" -> "common").
// A leading dot is part of the name, not an extension.
func filenamePrefix(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

// appendMoved adds moved entries to dest, separated from existing content by a
// blank line unless dest already ends in junk.
func appendMoved(dest *fluent.Resource, moved []*fluent.Entry) {
	if len(moved) == 0 {
		return
	}
	if last := dest.Last(); last != nil && last.Kind != fluent.Junk {
		dest.Body = append(dest.Body, fluent.Separator())
	}
	dest.Body = append(dest.Body, moved...)
}
