package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("hello", nil); found || code != 0 {
		t.Errorf("RunExtension() = (%v, %d), want (false, 0)", found, code)
	}
}

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension test relies on a shell script")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "env.txt")
	script := "#!/bin/sh\necho \"$" + EnvVerbose + " $1\" > " + out + "\nexit 3\n"
	if err := os.WriteFile(filepath.Join(dir, "pbs-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("cannot write extension: %v", err)
	}
	t.Setenv("PATH", dir)

	found, code := RunExtension("hello", []string{"world"})
	if !found || code != 3 {
		t.Fatalf("RunExtension() = (%v, %d), want (true, 3)", found, code)
	}
	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("extension did not run: %v", err)
	}
	if got, want := string(content), "false world\n"; got != want {
		t.Errorf("extension saw %q, want %q", got, want)
	}
}
