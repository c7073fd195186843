package hlasm_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

// TestHoverBareRegister covers S6: hovering over a bare R12 with no EQUREG
// in scope yields the fixed convention panel.
func TestHoverBareRegister(t *testing.T) {
	state := hlasm.Analyse("")
	text, ok := hlasm.Hover(&state, hlasm.EmptyCatalogue(), "R12")
	if !ok {
		t.Fatalf("expected a hover result for R12")
	}
	if !strings.HasPrefix(text, "## Register R12") {
		t.Errorf("expected heading \"## Register R12\", got %q", text)
	}
	if !strings.Contains(text, "R12 — Base register (conventional)") {
		t.Errorf("expected the convention line in the body, got %q", text)
	}
}

func TestHoverEquregTakesPrecedenceOverBareRegister(t *testing.T) {
	state := hlasm.Analyse("WORK     EQUREG R3,G")
	text, ok := hlasm.Hover(&state, hlasm.EmptyCatalogue(), "WORK")
	if !ok {
		t.Fatalf("expected a hover result for WORK")
	}
	if !strings.HasPrefix(text, "## WORK") {
		t.Errorf("expected the EQUREG heading to win, got %q", text)
	}
}

func TestHoverMacroFromCatalogue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.json")
	body := `{"macros":[{"name":"GETMAIN","description":"Allocates storage","parameters":["LENGTH"]}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cat := hlasm.LoadCatalogue(path)
	state := hlasm.Analyse("")

	text, ok := hlasm.Hover(&state, cat, "getmain")
	if !ok {
		t.Fatalf("expected a hover result for getmain")
	}
	if !strings.Contains(text, "Allocates storage") {
		t.Errorf("expected the macro description in the hover body, got %q", text)
	}
}

func TestHoverUnknownWordYieldsNothing(t *testing.T) {
	state := hlasm.Analyse("")
	if _, ok := hlasm.Hover(&state, hlasm.EmptyCatalogue(), "NOSUCHTHING"); ok {
		t.Errorf("expected no hover result for an unresolvable word")
	}
}
