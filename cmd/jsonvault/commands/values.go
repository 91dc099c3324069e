package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

// parseValue reads a command-line value as JSON, falling back to a plain
// string when it is not valid JSON or asString is set.
func parseValue(s string, asString bool) any {
	if asString || !json.Valid([]byte(s)) {
		return s
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
