package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func withEvalFlag(t *testing.T, value string) {
	t.Helper()
	prev := evalExpr
	evalExpr = value
	t.Cleanup(func() { evalExpr = prev })
}

func TestRunScriptEvaluatesInlineExpression(t *testing.T) {
	withEvalFlag(t, "1 + 2;")
	if err := runScript(nil, nil); err != nil {
		t.Fatalf("runScript(-e) returned error: %v", err)
	}
}

func TestRunScriptReportsRuntimeError(t *testing.T) {
	withEvalFlag(t, "1 + true;")
	if err := runScript(nil, nil); err == nil {
		t.Fatalf("runScript(-e) with a type error returned nil, want an error")
	}
}

func TestRunScriptReadsFromFile(t *testing.T) {
	withEvalFlag(t, "")
	path := filepath.Join(t.TempDir(), "script.lum")
	if err := os.WriteFile(path, []byte("1 + 1;"), 0o644); err != nil {
		t.Fatalf("failed to write temp script: %v", err)
	}
	if err := runScript(nil, []string{path}); err != nil {
		t.Fatalf("runScript(file) returned error: %v", err)
	}
}

func TestRunScriptRequiresInputSource(t *testing.T) {
	withEvalFlag(t, "")
	if err := runScript(nil, nil); err == nil {
		t.Fatalf("runScript() with no -e and no file returned nil, want an error")
	}
}
