package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadLexInputPrefersEvalFlag(t *testing.T) {
	prev := lexEvalExpr
	lexEvalExpr = "1 + 1;"
	t.Cleanup(func() { lexEvalExpr = prev })

	got, err := readLexInput(nil)
	if err != nil {
		t.Fatalf("readLexInput returned error: %v", err)
	}
	if got != "1 + 1;" {
		t.Fatalf("readLexInput() = %q, want %q", got, "1 + 1;")
	}
}

func TestReadLexInputReadsFile(t *testing.T) {
	prev := lexEvalExpr
	lexEvalExpr = ""
	t.Cleanup(func() { lexEvalExpr = prev })

	path := filepath.Join(t.TempDir(), "script.lum")
	if err := os.WriteFile(path, []byte("let x: number = 1;"), 0o644); err != nil {
		t.Fatalf("failed to write temp script: %v", err)
	}

	got, err := readLexInput([]string{path})
	if err != nil {
		t.Fatalf("readLexInput returned error: %v", err)
	}
	if got != "let x: number = 1;" {
		t.Fatalf("readLexInput() = %q, want file contents", got)
	}
}

func TestReadLexInputMissingFileIsError(t *testing.T) {
	prev := lexEvalExpr
	lexEvalExpr = ""
	t.Cleanup(func() { lexEvalExpr = prev })

	if _, err := readLexInput([]string{filepath.Join(t.TempDir(), "does-not-exist.lum")}); err == nil {
		t.Fatalf("readLexInput(missing file) = nil error, want an error")
	}
}

func TestLexScriptReportsIllegalTokens(t *testing.T) {
	prevEval, prevOnly := lexEvalExpr, onlyErrors
	lexEvalExpr = "let x = `;"
	onlyErrors = true
	t.Cleanup(func() { lexEvalExpr, onlyErrors = prevEval, prevOnly })

	if err := lexScript(nil, nil); err == nil {
		t.Fatalf("lexScript(illegal input) = nil error, want an error reporting illegal tokens")
	}
}
