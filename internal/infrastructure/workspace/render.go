package workspace

import (
	"fmt"
	"strings"
)

// RenderString replaces {{NAME}} placeholders in input with the matching
// values from vars. It fails on unclosed or empty expressions and on
// variables that vars does not define, so a typo in a template surfaces at
// generation time instead of in the generated project.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", fmt.Errorf("unclosed template expression")
		}

		name := strings.TrimSpace(rest[:end])
		if name == "" {
			return "", fmt.Errorf("empty template expression")
		}

		value, ok := vars[name]
		if !ok {
			return "", fmt.Errorf("template variable %s is not defined", name)
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}
