package domain

import "strings"

// Document is the nested key/value tree held by a store.
//
// Values are the JSON types produced by encoding/json: nil, bool, float64,
// string, []any and map[string]any.
type Document = map[string]any

// Path is an ordered list of keys addressing a location in a Document.
type Path []string

// P builds a Path from its segments.
func P(segments ...string) Path { return Path(segments) }

// Parent returns every segment except the last one.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the final segment, or "" for an empty path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Append returns a new Path with segments added after p.
func (p Path) Append(segments ...string) Path {
	out := make(Path, 0, len(p)+len(segments))
	out = append(out, p...)
	return append(out, segments...)
}

// String joins the segments with dots for display.
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	return strings.Join(p, ".")
}
