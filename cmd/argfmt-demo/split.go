package main

import (
	"strings"
	"unicode"
)

// splitTokens splits a prompt line into tokens on unquoted whitespace. Single
// and double quotes group characters without appearing in the token, and a
// backslash escapes the character after it. A quoted empty string is a token.
func splitTokens(s string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune
	pending := false
	esc := false

	for _, r := range s {
		switch {
		case esc:
			current.WriteRune(r)
			esc = false
			pending = true
		case r == '\\':
			esc = true
			pending = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			pending = true
		case unicode.IsSpace(r):
			if pending {
				tokens = append(tokens, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}

	if pending {
		tokens = append(tokens, current.String())
	}

	return tokens
}
