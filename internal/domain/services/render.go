package services

import (
	"fmt"
	"strings"
)

// Expand substitutes every {name} placeholder in template with its value
// from vars. Every placeholder must resolve: a key absent from vars fails
// the whole render, so a partially-substituted result is never produced.
func Expand(template string, vars map[string]string) (string, error) {
	var out strings.Builder
	rest := template

	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			out.WriteString(rest)
			return out.String(), nil
		}

		end := strings.Index(rest[open:], "}")
		if end < 0 {
			return "", fmt.Errorf("unterminated placeholder in template near %q", rest[open:])
		}
		end += open

		key := rest[open+1 : end]
		value, ok := vars[key]
		if !ok {
			return "", fmt.Errorf("unresolvable placeholder {%s}", key)
		}

		out.WriteString(rest[:open])
		out.WriteString(value)
		rest = rest[end+1:]
	}
}
