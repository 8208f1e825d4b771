package bintree

import (
	"strconv"
	"strings"
)

// ParseLevelOrder reads a comma-separated level-order list such as
// "[A,B,C,null,D]" or "root=[1,2]". The tokens "null", "nil" and "#" (any
// case) and empty tokens mark absent children. Values are trimmed; a value in
// double quotes is unquoted with Go string syntax, so `"null"` and `""` are
// present nodes.
func ParseLevelOrder(s string) *Node[string] {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "root=")
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil
	}

	raw := splitTokens(s)
	values := make([]*string, 0, len(raw))
	for _, token := range raw {
		token = strings.TrimSpace(token)
		if strings.HasPrefix(token, `"`) {
			if unquoted, err := strconv.Unquote(token); err == nil {
				values = append(values, &unquoted)
				continue
			}
		}
		if isAbsentToken(token) {
			values = append(values, nil)
			continue
		}
		values = append(values, &token)
	}
	return FromLevelOrder(values)
}

// splitTokens splits on commas outside double-quoted values.
func splitTokens(s string) []string {
	var tokens []string
	start := 0
	quoted := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case ',':
			if !quoted {
				tokens = append(tokens, s[start:i])
				start = i + 1
			}
		}
	}
	return append(tokens, s[start:])
}

func isAbsentToken(token string) bool {
	return token == "" || token == "#" || strings.EqualFold(token, "null") || strings.EqualFold(token, "nil")
}

func needsQuoting(value string) bool {
	return isAbsentToken(value) ||
		value != strings.TrimSpace(value) ||
		strings.ContainsAny(value, `,"[]\`) ||
		strings.HasPrefix(value, "root=")
}

// FormatLevelOrder writes root back in the form read by ParseLevelOrder.
// Values that would read back as absent markers or split across tokens are
// quoted.
func FormatLevelOrder(root *Node[string]) string {
	values := ToLevelOrder(root)
	tokens := make([]string, len(values))
	for i, value := range values {
		switch {
		case value == nil:
			tokens[i] = "null"
		case needsQuoting(*value):
			tokens[i] = strconv.Quote(*value)
		default:
			tokens[i] = *value
		}
	}
	return "[" + strings.Join(tokens, ",") + "]"
}
