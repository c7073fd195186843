package hlasm_test

import (
	"strings"
	"testing"

	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

func TestReformatAlignsOpcodeColumn(t *testing.T) {
	out := hlasm.Reformat("WORK EQUREG R3,G")
	if !strings.HasPrefix(out, "WORK") {
		t.Fatalf("expected the label to stay at column 0, got %q", out)
	}
	idx := strings.Index(out, "EQUREG")
	if idx < 0 {
		t.Fatalf("expected EQUREG to survive reformatting, got %q", out)
	}
	if idx < len("WORK")+1 {
		t.Errorf("expected at least one space of padding before the opcode, got %q", out)
	}
}

func TestReformatPassesThroughCommentsAndBlankLines(t *testing.T) {
	text := "* a comment\n\nWORK EQUREG R3,G"
	out := hlasm.Reformat(text)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "* a comment" {
		t.Errorf("expected the comment line untouched, got %q", lines[0])
	}
	if lines[1] != "" {
		t.Errorf("expected the blank line untouched, got %q", lines[1])
	}
}

func TestReformatNormalisesLabelOpcodeGutter(t *testing.T) {
	loose := hlasm.Reformat("WORK                    EQUREG R3,G")
	tight := hlasm.Reformat("WORK EQUREG R3,G")
	if loose != tight {
		t.Errorf("expected the label/opcode gutter to be normalised regardless of source spacing, got %q vs %q", loose, tight)
	}
	if !strings.Contains(tight, "R3,G") {
		t.Errorf("expected a single comma with no surrounding spaces, got %q", tight)
	}
}

func TestReformatIsIdempotent(t *testing.T) {
	text := "WORK     EQUREG R3,G\n" +
		"         LA    WORK,0(R12)"
	once := hlasm.Reformat(text)
	twice := hlasm.Reformat(once)
	if once != twice {
		t.Errorf("expected reformatting to be idempotent, got:\n%q\nthen:\n%q", once, twice)
	}
}
