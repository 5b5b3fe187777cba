package util

import (
	"strings"
)

// quoteChars are the identifier quoting characters accepted across dialects:
// ANSI double quotes, MySQL backticks, and the single-quote form that shows up
// in hand-written dumps.
const quoteChars = "\"'`"

// NormalizeIdent converts a raw identifier token into the canonical form used
// as a map key throughout: quote characters stripped from the edges, schema
// qualifier dropped, lowercased. The quote strip is repeated after the
// qualifier is removed so that fully quoted qualified names like
// "my_schema"."table_x" still reduce to table_x.
//
// The function is total: any input, including the empty string, yields a key.
// It is also idempotent, so already-normalized names pass through unchanged.
func NormalizeIdent(raw string) string {
	name := strings.Trim(raw, quoteChars)
	if idx := strings.LastIndex(name, "."); idx != -1 {
		name = name[idx+1:]
	}
	return strings.ToLower(strings.Trim(name, quoteChars))
}
