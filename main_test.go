package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunWritesAssetsAndDebugLog(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "media")
	debugLog := filepath.Join(dir, "artgen-debug.log")
	t.Setenv("ARTGEN_DEBUG_LOG", debugLog)

	code := run("artgen", []string{"-out", out, "-debug", "-font", filepath.Join(dir, "missing.ttf")})
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	for _, name := range []string{"icon.png", "fanart.jpg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	data, err := os.ReadFile(debugLog)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "debug logging enabled") || !strings.Contains(string(data), "missing.ttf") {
		t.Errorf("debug log missing entries:\n%s", data)
	}
}

func TestRunFailureReturnsOneAndKeepsLog(t *testing.T) {
	dir := t.TempDir()
	debugLog := filepath.Join(dir, "artgen-debug.log")
	t.Setenv("ARTGEN_DEBUG_LOG", debugLog)

	// A regular file where the output directory should be.
	blocker := filepath.Join(dir, "media")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := run("artgen", []string{"-out", blocker, "-debug"}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	data, err := os.ReadFile(debugLog)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "generation failed") {
		t.Errorf("failure not recorded in debug log:\n%s", data)
	}
}

func TestRunConfigErrorReturnsTwo(t *testing.T) {
	if code := run("artgen", []string{"-qr", "not a url"}); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}
