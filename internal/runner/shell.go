package runner

import (
	"context"
	"os"
	"os/exec"
	"runtime"
)

// Shell runs each line through the platform shell and captures
// combined output.
type Shell struct {
	// Dir is the working directory for executed lines; empty means the
	// player's own working directory.
	Dir string
}

func (*Shell) Name() string { return "shell" }

func (*Shell) Noop() string {
	if runtime.GOOS == "windows" {
		return "rem"
	}
	return "true"
}

func (s *Shell) Run(ctx context.Context, line string) (string, error) {
	prog, flag := "sh", "-c"
	if runtime.GOOS == "windows" {
		prog, flag = "cmd", "/C"
	}
	cmd := exec.CommandContext(ctx, prog, flag, line)
	cmd.Dir = s.Dir
	// Avoid opening pagers or interactive prompts
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return string(out), ctx.Err()
	}
	return string(out), err
}
