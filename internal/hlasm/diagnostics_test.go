package hlasm_test

import (
	"testing"

	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

// TestAnalyseRegisterTableBasic covers S1: a lone EQUREG line builds a
// single-entry register table and the matching label, with no diagnostics.
func TestAnalyseRegisterTableBasic(t *testing.T) {
	state := hlasm.Analyse("WORK     EQUREG R3,G")

	if _, ok := state.Labels["WORK"]; !ok {
		t.Errorf("expected WORK to be recorded as a label")
	}
	reg, ok := state.Regs["WORK"]
	if !ok {
		t.Fatalf("expected WORK to be in the register table")
	}
	if reg.Number != 3 {
		t.Errorf("expected register number 3, got %d", reg.Number)
	}
	if len(state.Diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", state.Diags)
	}
}

// TestAnalyseFloatRegisterUsedWithAddressOp covers S2: a register declared
// as float used with LA (an address op) produces exactly one warning.
func TestAnalyseFloatRegisterUsedWithAddressOp(t *testing.T) {
	text := "FPR      EQUREG R0,F\n" +
		"         LA    FPR,0"
	state := hlasm.Analyse(text)

	if len(state.Diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(state.Diags), state.Diags)
	}
	d := state.Diags[0]
	if d.Line != 1 {
		t.Errorf("expected diagnostic on line 1, got %d", d.Line)
	}
	if d.Severity != hlasm.SeverityWarning {
		t.Errorf("expected a Warning severity, got %v", d.Severity)
	}
}

// TestAnalyseGeneralRegisterUsedWithFloatOp covers S3: a register declared
// general used with LE (a float op) produces exactly one warning.
func TestAnalyseGeneralRegisterUsedWithFloatOp(t *testing.T) {
	text := "WORK     EQUREG R3,G\n" +
		"         LE    WORK,=E'1.0'"
	state := hlasm.Analyse(text)

	if len(state.Diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(state.Diags), state.Diags)
	}
}

// TestAnalyseOddFloatRegisterWarns covers S4: an odd-numbered float
// register used with a float op produces exactly one warning, and it is
// not also flagged as a type mismatch.
func TestAnalyseOddFloatRegisterWarns(t *testing.T) {
	text := "FPR      EQUREG R3,F\n" +
		"         LE    FPR,=E'1.0'"
	state := hlasm.Analyse(text)

	if len(state.Diags) != 1 {
		t.Fatalf("expected exactly 1 diagnostic, got %d: %v", len(state.Diags), state.Diags)
	}
}

// TestAnalyseEvenFloatRegisterIsClean confirms an even-numbered float
// register used correctly with a float op raises nothing.
func TestAnalyseEvenFloatRegisterIsClean(t *testing.T) {
	text := "FPR      EQUREG R4,F\n" +
		"         LE    FPR,=E'1.0'"
	state := hlasm.Analyse(text)

	if len(state.Diags) != 0 {
		t.Errorf("expected no diagnostics, got %v", state.Diags)
	}
}

// TestAnalyseUnknownSymbolOperandIsIgnored ensures an operand referring to
// a name absent from the register table never produces a diagnostic.
func TestAnalyseUnknownSymbolOperandIsIgnored(t *testing.T) {
	state := hlasm.Analyse("         LE    NOTAREG,=E'1.0'")
	if len(state.Diags) != 0 {
		t.Errorf("expected no diagnostics for an unregistered symbol, got %v", state.Diags)
	}
}

// TestAnalyseDefaultsToGeneralWhenTypeOmitted covers the documented Open
// Question decision: an EQUREG with no second operand defaults to General
// rather than being diagnosed as malformed.
func TestAnalyseDefaultsToGeneralWhenTypeOmitted(t *testing.T) {
	state := hlasm.Analyse("WORK     EQUREG R3")
	reg, ok := state.Regs["WORK"]
	if !ok {
		t.Fatalf("expected WORK to be registered even without a type operand")
	}
	if reg.Type != hlasm.RegGeneral {
		t.Errorf("expected default type General, got %v", reg.Type)
	}
}

// TestAnalyseLastEquregWinsOnDuplicateLabel exercises spec.md §4.D's
// last-wins rule for a label declared by more than one EQUREG statement.
func TestAnalyseLastEquregWinsOnDuplicateLabel(t *testing.T) {
	text := "WORK     EQUREG R3,G\n" +
		"WORK     EQUREG R5,F"
	state := hlasm.Analyse(text)

	reg, ok := state.Regs["WORK"]
	if !ok {
		t.Fatalf("expected WORK to be registered")
	}
	if reg.Number != 5 || reg.Type != hlasm.RegFloat {
		t.Errorf("expected the second declaration to win, got %+v", reg)
	}
	if state.Labels["WORK"] != 1 {
		t.Errorf("expected the label table to point at the second declaration's line")
	}
}

// TestAnalyseCommentLabelIsNotALabel ensures a label on a statement whose
// opcode field is itself "*" is never recorded in the label table.
func TestAnalyseCommentLabelIsNotALabel(t *testing.T) {
	state := hlasm.Analyse("NOTALABEL  *  stray asterisk opcode")
	if _, ok := state.Labels["NOTALABEL"]; ok {
		t.Errorf("a statement with op \"*\" must never contribute a label")
	}
}
