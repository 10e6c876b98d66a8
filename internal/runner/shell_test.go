package runner

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestShell_Echo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	r := &Shell{}
	out, err := r.Run(context.Background(), "echo hello")
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShell_FailureReturnsOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	r := &Shell{}
	out, err := r.Run(context.Background(), "echo oops; exit 3")
	if err == nil {
		t.Fatal("expected non-zero exit error")
	}
	if !strings.Contains(out, "oops") {
		t.Fatalf("output before failure lost: %q", out)
	}
}

func TestShell_DeadlineMapped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell test")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	r := &Shell{}
	_, err := r.Run(ctx, "sleep 5")
	if err != context.DeadlineExceeded {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}

func TestNew(t *testing.T) {
	if r, err := New("", ""); err != nil || r.Name() != "shell" {
		t.Fatalf("default runner: %v, %v", r, err)
	}
	if r, err := New("starlark", ""); err != nil || r.Name() != "starlark" {
		t.Fatalf("starlark runner: %v, %v", r, err)
	}
	if _, err := New("perl", ""); err == nil {
		t.Fatal("expected error for unknown runner")
	}
}
