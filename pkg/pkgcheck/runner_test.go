package pkgcheck

import (
	"context"
	"os/exec"
	"testing"
)

func TestRealRunner_LookPathMissing(t *testing.T) {
	r := &RealRunner{}
	if _, err := r.LookPath("pkgprobe_nonexistent_interpreter_12345"); err == nil {
		t.Error("LookPath(nonexistent) error = nil, want error")
	}
}

func TestRealRunner_RunCommandContext(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}

	r := &RealRunner{}
	stdout, stderr, err := r.RunCommandContext(context.Background(), sh, "-c", "echo out; echo err >&2")
	if err != nil {
		t.Fatalf("RunCommandContext error = %v", err)
	}
	if stdout != "out\n" {
		t.Errorf("stdout = %q, want %q", stdout, "out\n")
	}
	if stderr != "err\n" {
		t.Errorf("stderr = %q, want %q", stderr, "err\n")
	}

	_, _, err = r.RunCommandContext(context.Background(), sh, "-c", "exit 3")
	if err == nil {
		t.Error("RunCommandContext(exit 3) error = nil, want error")
	}
}
