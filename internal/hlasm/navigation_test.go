package hlasm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Zaneham/hlasm-strong-type/internal/hlasm"
)

func TestWordAtSelectsMaximalIdentifierRun(t *testing.T) {
	text := "         LR    WORK1,WORK2"
	word, ok := hlasm.WordAt(text, 0, 16) // inside "WORK1"
	if !ok {
		t.Fatalf("expected a word at that position")
	}
	if word != "WORK1" {
		t.Errorf("expected WORK1, got %q", word)
	}
}

func TestWordAtOnWhitespaceYieldsNothing(t *testing.T) {
	if _, ok := hlasm.WordAt("         LR    R1,R2", 0, 0); ok {
		t.Errorf("expected no word at a leading space")
	}
}

func TestWordAtOutOfRangeLineYieldsNothing(t *testing.T) {
	if _, ok := hlasm.WordAt("one line", 5, 0); ok {
		t.Errorf("expected no word past the end of the document")
	}
}

func TestDefinitionResolvesLabelDeclaration(t *testing.T) {
	text := "LOOP     LR    R1,R2\n" +
		"         B     LOOP"
	state := hlasm.Analyse(text)
	result, ok := hlasm.Definition(&state, hlasm.EmptyCatalogue(), nil, "LOOP")
	if !ok {
		t.Fatalf("expected a definition for LOOP")
	}
	if result.File != "" || result.Line != 0 {
		t.Errorf("expected the in-document declaration at line 0, got %+v", result)
	}
}

func TestDefinitionResolvesEquregDeclaration(t *testing.T) {
	text := "WORK     EQUREG R3,G\n" +
		"         LR    WORK,R1"
	state := hlasm.Analyse(text)
	result, ok := hlasm.Definition(&state, hlasm.EmptyCatalogue(), nil, "WORK")
	if !ok {
		t.Fatalf("expected a definition for WORK")
	}
	if result.Line != 0 {
		t.Errorf("expected the EQUREG declaration line 0, got %+v", result)
	}
}

func TestDefinitionFindsMacroFileInSearchDirs(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir2, "GETMAIN.mac"), []byte("* macro source"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	catPath := filepath.Join(t.TempDir(), "macros.json")
	if err := os.WriteFile(catPath, []byte(`{"macros":[{"name":"GETMAIN"}]}`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cat := hlasm.LoadCatalogue(catPath)

	state := hlasm.Analyse("")
	result, ok := hlasm.Definition(&state, cat, []string{dir1, dir2}, "GETMAIN")
	if !ok {
		t.Fatalf("expected to locate the macro file")
	}
	if result.File != filepath.Join(dir2, "GETMAIN.mac") {
		t.Errorf("expected the match from dir2, got %q", result.File)
	}
}

func TestDefinitionUnknownWordYieldsNothing(t *testing.T) {
	state := hlasm.Analyse("")
	if _, ok := hlasm.Definition(&state, hlasm.EmptyCatalogue(), nil, "NOSUCHTHING"); ok {
		t.Errorf("expected no definition for an unresolvable word")
	}
}

func TestReferencesFindsDeclarationAndOperandOccurrences(t *testing.T) {
	text := "LOOP     LR    R1,R2\n" +
		"         B     LOOP"
	state := hlasm.Analyse(text)

	refs := hlasm.References(&state, "LOOP", true)
	if len(refs) != 2 {
		t.Fatalf("expected 2 references (declaration + operand), got %d: %v", len(refs), refs)
	}

	withoutDecl := hlasm.References(&state, "LOOP", false)
	if len(withoutDecl) != 1 {
		t.Fatalf("expected 1 reference without the declaration, got %d: %v", len(withoutDecl), withoutDecl)
	}
	if withoutDecl[0].Line != 1 {
		t.Errorf("expected the remaining reference on line 1, got %+v", withoutDecl[0])
	}
}

func TestReferencesRecurseIntoAddressOperands(t *testing.T) {
	text := "BASEREG  EQUREG R12,A\n" +
		"         L     R1,0(BASEREG)"
	state := hlasm.Analyse(text)

	refs := hlasm.References(&state, "BASEREG", false)
	if len(refs) != 1 {
		t.Fatalf("expected 1 reference inside the address operand, got %d: %v", len(refs), refs)
	}
	if refs[0].Line != 1 {
		t.Errorf("expected the reference on line 1, got %+v", refs[0])
	}
}
