package hlasm

import (
	"os"
	"path/filepath"
	"strings"
)

func isIdentByte(b byte) bool {
	return isIdentCont(b)
}

// WordAt implements spec.md §4.J's word-at-position rule: the maximal run
// of identifier characters covering (line, char). A trailing \r on the
// selected line is stripped before indexing.
func WordAt(text string, line, char int) (string, bool) {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return "", false
	}
	l := strings.TrimSuffix(lines[line], "\r")

	if char < 0 || char >= len(l) || !isIdentByte(l[char]) {
		return "", false
	}

	start := char
	for start > 0 && isIdentByte(l[start-1]) {
		start--
	}
	end := char
	for end < len(l) && isIdentByte(l[end]) {
		end++
	}

	return l[start:end], true
}

// DefinitionResult is the outcome of Definition: either a position within
// the same document (Line set, File empty) or a path to a macro's defining
// file (File set, Line/Col are the head position (0,0)).
type DefinitionResult struct {
	File string
	Line int
	Col  int
	Len  int
}

const maxMacroDirs = 64

// Definition implements spec.md §4.J. macroDirs is searched left-to-right,
// first match wins; at most maxMacroDirs entries are honoured.
func Definition(state *AnalysisState, cat *Catalogue, macroDirs []string, word string) (DefinitionResult, bool) {
	if word == "" {
		return DefinitionResult{}, false
	}
	upper := strings.ToUpper(word)

	if state != nil {
		if line, ok := state.Labels[upper]; ok {
			return DefinitionResult{Line: line, Col: 0, Len: len(word)}, true
		}

		if reg, ok := state.Regs[upper]; ok {
			for _, s := range state.Stmts {
				if strings.ToUpper(s.Label) == reg.Name {
					return DefinitionResult{Line: s.Line, Col: 0, Len: len(reg.Name)}, true
				}
			}
		}
	}

	if cat != nil {
		if _, ok := cat.FindMacro(upper); ok {
			if path, ok := locateMacroFile(macroDirs, upper); ok {
				return DefinitionResult{File: path, Line: 0, Col: 0}, true
			}
		}
	}

	return DefinitionResult{}, false
}

func locateMacroFile(macroDirs []string, name string) (string, bool) {
	limit := len(macroDirs)
	if limit > maxMacroDirs {
		limit = maxMacroDirs
	}
	for _, dir := range macroDirs[:limit] {
		candidate := filepath.Join(dir, name+".mac")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// Reference is one hit returned by References.
type Reference struct {
	Line     int
	ColStart int
	ColEnd   int
}

// References implements spec.md §4.J: declaration (if requested) plus every
// operand occurrence, recursing into Addr's Disp/Base/Index.
func References(state *AnalysisState, word string, includeDeclaration bool) []Reference {
	if state == nil || word == "" {
		return nil
	}
	upper := strings.ToUpper(word)

	refs := make([]Reference, 0)

	for _, s := range state.Stmts {
		if includeDeclaration && s.Label != "" && strings.ToUpper(s.Label) == upper {
			refs = append(refs, Reference{Line: s.Line, ColStart: 0, ColEnd: len(s.Label)})
		}

		for _, op := range s.Operand {
			refs = append(refs, matchOperandRefs(s, op, upper)...)
		}
	}

	if len(refs) == 0 {
		return nil
	}
	return refs
}

func matchOperandRefs(s Statement, op Operand, upper string) []Reference {
	out := make([]Reference, 0)

	check := func(o Operand) {
		if o.Kind == OperandSym && strings.ToUpper(o.Sym) == upper {
			cs, ce := locateInRawLine(s.Raw, o.Sym)
			out = append(out, Reference{Line: s.Line, ColStart: cs, ColEnd: ce})
		}
	}

	switch op.Kind {
	case OperandSym:
		check(op)
	case OperandAddr:
		if op.Disp != nil {
			check(*op.Disp)
		}
		if op.Base != nil {
			check(*op.Base)
		}
		if op.Index != nil {
			check(*op.Index)
		}
	}

	return out
}
