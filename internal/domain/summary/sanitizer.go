package summary

import (
	"regexp"
	"strings"
)

var bareNone = regexp.MustCompile(`\bnone\b`)

// Sanitize repairs the known deviations of the agent's order-summary output
// so that it parses as JSON:
//
//  1. parenthesis-style grouping instead of braces
//  2. the bare token "none" instead of null
//  3. a lowercase "cad" currency code
//
// Structural repair (1) must run first; (2) and (3) are plain text
// substitutions independent of nesting depth. The function is pure, total and
// idempotent. It is a heuristic for this one upstream format, not a general
// JSON repair tool: inputs outside the known deviations may still fail to
// parse downstream.
func Sanitize(raw string) string {
	s := strings.ReplaceAll(raw, "(", "{")
	s = strings.ReplaceAll(s, ")", "}")
	s = bareNone.ReplaceAllString(s, "null")
	s = strings.ReplaceAll(s, "cad", "CAD")
	return s
}
