package store

import (
	"encoding/json"
	"fmt"

	"jsonvault/internal/domain"
)

// navigateForWrite walks p from root and returns the mapping that holds the
// final segment, creating mappings over intermediates the policy allows.
//
// A conflict can only be met on a value that existed before the call, and
// once a mapping has been created every later segment is fresh, so an error
// never leaves a partially vivified path behind.
func navigateForWrite(root map[string]any, p domain.Path, policy VivifyPolicy) (map[string]any, string, error) {
	if len(p) == 0 {
		return nil, "", domain.ErrEmptyPath
	}
	node := root
	for i, seg := range p[:len(p)-1] {
		next, ok := node[seg]
		if m, isMap := next.(map[string]any); isMap {
			node = m
			continue
		}
		if ok && !policy.replaces(next) {
			return nil, "", fmt.Errorf("%w: %s holds %s", domain.ErrNotContainer, p[:i+1], kindOf(next))
		}
		m := make(map[string]any)
		node[seg] = m
		node = m
	}
	return node, p.Last(), nil
}

// navigateForRead returns the value at p, or false as soon as a segment is
// missing or an intermediate value is not a mapping. An empty path yields root.
func navigateForRead(root map[string]any, p domain.Path) (any, bool) {
	var cur any = root
	for _, seg := range p {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func (p VivifyPolicy) replaces(v any) bool {
	switch p {
	case VivifyAlways:
		return true
	case VivifyAbsent:
		return v == nil
	default:
		return isFalsy(v)
	}
}

// isFalsy reports whether v is null, false, zero or the empty string.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	default:
		return false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// canonicalize converts v into the JSON types a decoded document holds, so
// in-memory values compare equal to what a reload would produce.
func canonicalize(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("encode value: %w", err)
	}
	return out, nil
}

// cloneValue deep-copies a canonical value.
func cloneValue(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}
