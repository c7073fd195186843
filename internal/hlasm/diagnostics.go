package hlasm

import (
	"fmt"
	"strings"
)

// Severity mirrors spec.md §3's Diagnostic.severity variant.
type Severity int

const (
	SeverityError   Severity = 1
	SeverityWarning Severity = 2
	SeverityInfo    Severity = 3
)

// Diagnostic is the spec.md §3 Diagnostic record: a half-open byte-offset
// column range within the statement's raw source line.
type Diagnostic struct {
	Line     int
	ColStart int
	ColEnd   int
	Severity Severity
	Message  string
}

// fallbackCol is the column spec.md §4.E falls back to when an operand's
// text cannot be located in its raw source line.
const fallbackCol = 9

// locateInRawLine finds the first case-insensitive occurrence of name in
// raw, bounded to the comment column, per spec.md §4.E and §4.J. Used by
// both the diagnostic engine and References.
func locateInRawLine(raw, name string) (int, int) {
	limit := len(raw)
	if limit > commentColumn+1 {
		limit = commentColumn + 1
	}
	idx := strings.Index(strings.ToUpper(raw[:limit]), strings.ToUpper(name))
	if idx == -1 {
		return fallbackCol, fallbackCol + len(name)
	}
	return idx, idx + len(name)
}

// runDiagnostics implements spec.md §4.E over the statement array and the
// register table already scanned for the same statements.
func runDiagnostics(regs map[string]RegisterName, stmts []Statement) []Diagnostic {
	diags := make([]Diagnostic, 0)

	for _, s := range stmts {
		if s.Op == "*" || s.Op == "" {
			continue
		}

		float := isFloatOp(s.Op)
		address := isAddressOp(s.Op)

		for _, op := range s.Operand {
			if op.Kind != OperandSym {
				continue
			}
			reg, ok := regs[strings.ToUpper(op.Sym)]
			if !ok {
				continue
			}

			colStart, colEnd := locateInRawLine(s.Raw, op.Sym)

			if float && reg.Type != RegFloat {
				diags = append(diags, Diagnostic{
					Line: s.Line, ColStart: colStart, ColEnd: colEnd, Severity: SeverityWarning,
					Message: fmt.Sprintf("%s is a %s register but %s requires a float register", reg.Name, rtypeName(reg.Type), s.Op),
				})
			} else if address && reg.Type == RegFloat {
				diags = append(diags, Diagnostic{
					Line: s.Line, ColStart: colStart, ColEnd: colEnd, Severity: SeverityWarning,
					Message: fmt.Sprintf("%s is a float register but %s expects general/address", reg.Name, s.Op),
				})
			}

			if float && reg.Type == RegFloat && reg.Number%2 != 0 {
				diags = append(diags, Diagnostic{
					Line: s.Line, ColStart: colStart, ColEnd: colEnd, Severity: SeverityWarning,
					Message: fmt.Sprintf("float register %s (R%d) has odd number; even registers expected", reg.Name, reg.Number),
				})
			}
		}
	}

	return diags
}
