package hlasm

// AnalysisState is the per-document aggregate from spec.md §3/§4.F. It is
// produced atomically from document text and replaced as a whole on each
// reanalysis; Diags is always computed from (Stmts, Regs) taken together.
type AnalysisState struct {
	Stmts  []Statement
	Regs   map[string]RegisterName
	Labels map[string]int
	Diags  []Diagnostic
}

// Analyse implements spec.md §4.F. Pure; performs no I/O.
func Analyse(text string) AnalysisState {
	stmts := ParseDocument(text)
	regs := scanRegisters(stmts)
	labels := scanLabels(stmts)
	diags := runDiagnostics(regs, stmts)

	return AnalysisState{
		Stmts:  stmts,
		Regs:   regs,
		Labels: labels,
		Diags:  diags,
	}
}
