package hlasm

import "strings"

// scanRegisters implements pass 1 of spec.md §4.D: build the register table
// from EQUREG statements.
func scanRegisters(stmts []Statement) map[string]RegisterName {
	regs := make(map[string]RegisterName)

	for _, s := range stmts {
		if s.Op != "EQUREG" || s.Label == "" {
			continue
		}
		if len(s.Operand) == 0 {
			continue
		}

		num, ok := registerOperandNumber(s.Operand[0])
		if !ok {
			continue
		}

		rtype := RegGeneral
		if len(s.Operand) > 1 {
			if t, ok := registerOperandType(s.Operand[1]); ok {
				rtype = t
			}
		}

		name := strings.ToUpper(s.Label)
		regs[name] = RegisterName{Name: name, Number: num, Type: rtype}
	}

	return regs
}

// registerOperandNumber resolves operand[0] of an EQUREG statement to a
// register number, accepting either a Reg operand or a Sym of the form Rn.
func registerOperandNumber(op Operand) (int, bool) {
	switch op.Kind {
	case OperandReg:
		return op.RegNum, true
	case OperandSym:
		return regNumber(op.Sym)
	}
	return 0, false
}

// registerOperandType resolves operand[1] of an EQUREG statement to a
// RegisterType. Only Sym and Raw operands can carry a type spelling.
func registerOperandType(op Operand) (RegisterType, bool) {
	switch op.Kind {
	case OperandSym:
		return parseRegisterType(op.Sym)
	case OperandRaw:
		return parseRegisterType(op.Sym)
	}
	return RegGeneral, false
}

// scanLabels implements pass 2 of spec.md §4.D: build the label table.
// A label on a comment statement (op == "*") is ignored. Last-wins on a
// duplicate label within the document, with no diagnosis of the collision.
func scanLabels(stmts []Statement) map[string]int {
	labels := make(map[string]int)
	for _, s := range stmts {
		if s.Label == "" || s.Op == "*" {
			continue
		}
		labels[strings.ToUpper(s.Label)] = s.Line
	}
	return labels
}
