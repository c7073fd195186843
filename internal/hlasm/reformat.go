package hlasm

import (
	"fmt"
	"strconv"
	"strings"
)

// opcodeColumn is the fixed gutter width the reformatter aligns every
// opcode to, the HLASM analogue of the teacher's "longest label" padding
// in reformatDocument — fixed here because HLASM convention reserves a
// fixed label field, unlike RISC-V's free-form labels.
const opcodeColumn = 10

// reconstructOperand renders a classified Operand back to HLASM operand
// syntax. Identifiers come back upper-cased, per the round-trip law in
// spec.md §8 (property 2), which is stated modulo case normalisation.
func reconstructOperand(op Operand) string {
	switch op.Kind {
	case OperandReg:
		return fmt.Sprintf("R%d", op.RegNum)
	case OperandSym:
		return op.Sym
	case OperandImm:
		return strconv.FormatInt(op.Imm, 10)
	case OperandStr:
		return "'" + op.Str + "'"
	case OperandAddr:
		disp, base := "", ""
		if op.Disp != nil {
			disp = reconstructOperand(*op.Disp)
		}
		if op.Base != nil {
			base = reconstructOperand(*op.Base)
		}
		if op.Index != nil {
			return fmt.Sprintf("%s(%s,%s)", disp, reconstructOperand(*op.Index), base)
		}
		return fmt.Sprintf("%s(%s)", disp, base)
	case OperandRaw:
		return strings.TrimSpace(op.Sym)
	}
	return ""
}

// Reformat implements the willSaveWaitUntil reformatting described in
// SPEC_FULL.md: labels keep column 0, opcodes align to a fixed gutter, and
// operand lists are renormalised to single-space-after-comma-free lists.
// Comment statements and blank lines pass through untouched.
func Reformat(text string) string {
	state := Analyse(text)
	stmtByLine := make(map[int]Statement, len(state.Stmts))
	for _, s := range state.Stmts {
		stmtByLine[s.Line] = s
	}

	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		s, ok := stmtByLine[i]
		if !ok || s.Op == "*" {
			if ok {
				out[i] = s.Raw
			} else {
				out[i] = line
			}
			continue
		}

		var b strings.Builder
		if s.Label != "" {
			b.WriteString(s.Label)
		}
		pad := opcodeColumn - b.Len()
		if pad < 1 {
			pad = 1
		}
		b.WriteString(strings.Repeat(" ", pad))

		if s.Op == "" {
			out[i] = strings.TrimRight(b.String(), " ")
			continue
		}

		b.WriteString(s.Op)
		if len(s.Operand) > 0 {
			b.WriteByte(' ')
			parts := make([]string, len(s.Operand))
			for j, op := range s.Operand {
				parts[j] = reconstructOperand(op)
			}
			b.WriteString(strings.Join(parts, ","))
		}
		if s.HasCmt {
			b.WriteString("  ")
			b.WriteString(s.Comment)
		}

		out[i] = b.String()
	}

	return strings.Join(out, "\n")
}
