package hlasm

import "strings"

// ParseDocument implements spec.md §4.C: split text into physical lines,
// strip a trailing \r from each, and parse each with a 0-based line index.
// Empty lines produce no statement; every other line produces exactly one.
func ParseDocument(text string) []Statement {
	lines := strings.Split(text, "\n")
	stmts := make([]Statement, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if stmt, ok := ParseLine(line, i); ok {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
