package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jsonvault/internal/domain"
)

func TestNavigateForWrite_VivifyPolicies(t *testing.T) {
	tests := []struct {
		name     string
		policy   VivifyPolicy
		existing any
		wantErr  bool
	}{
		{"falsy replaces zero", VivifyFalsy, 0.0, false},
		{"falsy replaces empty string", VivifyFalsy, "", false},
		{"falsy replaces false", VivifyFalsy, false, false},
		{"falsy replaces null", VivifyFalsy, nil, false},
		{"falsy keeps string", VivifyFalsy, "x", true},
		{"falsy keeps empty array", VivifyFalsy, []any{}, true},
		{"absent keeps zero", VivifyAbsent, 0.0, true},
		{"absent replaces null", VivifyAbsent, nil, false},
		{"always replaces number", VivifyAlways, 5.0, false},
		{"always replaces array", VivifyAlways, []any{1.0}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			root := map[string]any{"a": tc.existing}
			parent, key, err := navigateForWrite(root, domain.P("a", "b"), tc.policy)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrNotContainer) {
					t.Fatalf("want ErrNotContainer, got %v", err)
				}
				if diff := cmp.Diff(map[string]any{"a": tc.existing}, root); diff != "" {
					t.Fatalf("document changed on conflict (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatalf("navigate: %v", err)
			}
			parent[key] = 1.0
			if diff := cmp.Diff(map[string]any{"a": map[string]any{"b": 1.0}}, root); diff != "" {
				t.Fatalf("unexpected document (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNavigateForWrite_CreatesDeepPath(t *testing.T) {
	root := map[string]any{}
	parent, key, err := navigateForWrite(root, domain.P("a", "b", "c"), VivifyFalsy)
	if err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if key != "c" {
		t.Fatalf("want key c, got %q", key)
	}
	parent[key] = "v"
	want := map[string]any{"a": map[string]any{"b": map[string]any{"c": "v"}}}
	if diff := cmp.Diff(want, root); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestNavigateForWrite_EmptyPath(t *testing.T) {
	if _, _, err := navigateForWrite(map[string]any{}, nil, VivifyFalsy); !errors.Is(err, domain.ErrEmptyPath) {
		t.Fatalf("want ErrEmptyPath, got %v", err)
	}
}

func TestNavigateForRead(t *testing.T) {
	root := map[string]any{
		"a":    map[string]any{"b": 0.0, "n": nil},
		"list": []any{1.0},
	}

	if v, ok := navigateForRead(root, domain.P("a", "b")); !ok || v != 0.0 {
		t.Fatalf("falsy leaf must be present: %v %v", v, ok)
	}
	if v, ok := navigateForRead(root, domain.P("a", "n")); !ok || v != nil {
		t.Fatalf("null leaf must be present: %v %v", v, ok)
	}
	for _, p := range []domain.Path{
		domain.P("missing"),
		domain.P("a", "missing"),
		domain.P("a", "b", "c"),
		domain.P("list", "0"),
	} {
		if _, ok := navigateForRead(root, p); ok {
			t.Fatalf("%s: want absent", p)
		}
	}
	if v, ok := navigateForRead(root, nil); !ok || len(v.(map[string]any)) != 2 {
		t.Fatal("empty path should yield the root")
	}
}

func TestCanonicalize(t *testing.T) {
	type rec struct {
		Name string `json:"name"`
		Tags []int  `json:"tags"`
	}
	got, err := canonicalize(rec{Name: "x", Tags: []int{1, 2}})
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	want := map[string]any{"name": "x", "tags": []any{1.0, 2.0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	if _, err := canonicalize(make(chan int)); err == nil {
		t.Fatal("expected error for unencodable value")
	}
}

func TestCloneValue_IsDeep(t *testing.T) {
	orig := map[string]any{"a": []any{map[string]any{"b": 1.0}}}
	c := cloneValue(orig).(map[string]any)
	c["a"].([]any)[0].(map[string]any)["b"] = 2.0
	if orig["a"].([]any)[0].(map[string]any)["b"] != 1.0 {
		t.Fatal("clone shares nested state with the original")
	}
}
