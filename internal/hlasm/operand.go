package hlasm

import (
	"strconv"
	"strings"
)

// OperandKind tags the Operand sum type described in spec.md §3.
type OperandKind int

const (
	OperandReg OperandKind = iota
	OperandSym
	OperandImm
	OperandStr
	OperandAddr
	OperandRaw
)

// Operand is the closed sum type produced by classifyOperand. Addr carries
// Disp/Base/Index as nested Operand pointers (always Sym or Imm for Disp,
// always Sym for Base/Index) rather than a separate type, which keeps the
// shape-match table in classifyOperand a single flat switch.
type Operand struct {
	Kind OperandKind

	RegNum int    // OperandReg
	Sym    string // OperandSym, OperandRaw (Raw keeps the original text here)
	Imm    int64  // OperandImm

	Str string // OperandStr

	Disp  *Operand // OperandAddr: Sym or Imm
	Base  *Operand // OperandAddr: Sym
	Index *Operand // OperandAddr: Sym, nil if absent
}

// regNumber reports whether name (already upper-cased) is of the form
// "R"+0..15, returning the register number.
func regNumber(name string) (int, bool) {
	if len(name) < 2 || len(name) > 3 {
		return 0, false
	}
	if name[0] != 'R' {
		return 0, false
	}
	n, err := strconv.Atoi(name[1:])
	if err != nil || n < 0 || n > 15 {
		return 0, false
	}
	return n, true
}

// classifyOperand tokenises piece (via lexOperand) and pattern-matches the
// resulting token sequence against the shape table in spec.md §4.B.
func classifyOperand(piece string) Operand {
	trimmed := strings.TrimSpace(piece)
	toks := lexOperand(trimmed)

	// Drop the trailing Eof for shape matching convenience.
	if len(toks) > 0 && toks[len(toks)-1].Kind == TokenEOF {
		toks = toks[:len(toks)-1]
	}

	switch {
	case len(toks) == 1 && toks[0].Kind == TokenIdent:
		return identOperand(trimmed, toks[0].Text)

	case len(toks) == 1 && toks[0].Kind == TokenNumber:
		return Operand{Kind: OperandImm, Imm: toks[0].Num}

	case len(toks) == 1 && toks[0].Kind == TokenString:
		return Operand{Kind: OperandStr, Str: toks[0].Text}

	case shapeMatches(toks, TokenIdent, TokenLParen, TokenIdent, TokenRParen):
		return Operand{
			Kind: OperandAddr,
			Disp: symPtr(toks[0].Text),
			Base: symPtr(toks[2].Text),
		}

	case shapeMatches(toks, TokenNumber, TokenLParen, TokenIdent, TokenRParen):
		return Operand{
			Kind: OperandAddr,
			Disp: immPtr(toks[0].Num),
			Base: symPtr(toks[2].Text),
		}

	case shapeMatches(toks, TokenIdent, TokenLParen, TokenIdent, TokenComma, TokenIdent, TokenRParen):
		return Operand{
			Kind:  OperandAddr,
			Disp:  symPtr(toks[0].Text),
			Base:  symPtr(toks[4].Text),
			Index: symPtr(toks[2].Text),
		}

	case shapeMatches(toks, TokenNumber, TokenLParen, TokenIdent, TokenComma, TokenIdent, TokenRParen):
		return Operand{
			Kind:  OperandAddr,
			Disp:  immPtr(toks[0].Num),
			Base:  symPtr(toks[4].Text),
			Index: symPtr(toks[2].Text),
		}

	case shapeMatches(toks, TokenNumber, TokenLParen, TokenComma, TokenIdent, TokenRParen):
		return Operand{
			Kind: OperandAddr,
			Disp: immPtr(toks[0].Num),
			Base: symPtr(toks[3].Text),
		}
	}

	return Operand{Kind: OperandRaw, Sym: piece}
}

// identOperand resolves an Ident token to Reg or Sym. The register test
// uses the original-case piece text, per spec.md §4.B, to detect the R/r
// prefix independent of how the identifier was upper-cased by the lexer.
func identOperand(originalCasePiece string, upper string) Operand {
	if len(originalCasePiece) > 0 {
		c := originalCasePiece[0]
		if c == 'R' || c == 'r' {
			if n, ok := regNumber(upper); ok {
				return Operand{Kind: OperandReg, RegNum: n}
			}
		}
	}
	return Operand{Kind: OperandSym, Sym: upper}
}

func shapeMatches(toks []Token, kinds ...TokenKind) bool {
	if len(toks) != len(kinds) {
		return false
	}
	for i, k := range kinds {
		if toks[i].Kind != k {
			return false
		}
	}
	return true
}

func symPtr(name string) *Operand {
	o := Operand{Kind: OperandSym, Sym: name}
	return &o
}

func immPtr(v int64) *Operand {
	o := Operand{Kind: OperandImm, Imm: v}
	return &o
}

// splitOperandField splits field on commas that are not inside a single
// quoted string or a parenthesised group, mirroring the discipline used by
// operandFieldEnd in line.go.
func splitOperandField(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	pieces := make([]string, 0, 4)
	depth := 0
	inQuote := false
	start := 0

	for i := 0; i < len(field); i++ {
		c := field[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
		case inQuote:
			// quoted content never affects depth or splitting
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == ',' && depth == 0:
			pieces = append(pieces, field[start:i])
			start = i + 1
		}
	}
	pieces = append(pieces, field[start:])
	return pieces
}

// ParseOperands splits the operand field and classifies each piece. ParseLine
// uses it for every statement's operand field. A blank field yields nil.
func ParseOperands(field string) []Operand {
	pieces := splitOperandField(field)
	if pieces == nil {
		return nil
	}
	ops := make([]Operand, 0, len(pieces))
	for _, p := range pieces {
		ops = append(ops, classifyOperand(p))
	}
	return ops
}
