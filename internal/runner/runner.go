package runner

import (
	"context"
	"fmt"
)

// Runner executes a single demo line in an ambient environment and
// returns whatever it printed. Errors are reported to the operator and
// never abort the session, so implementations should return output
// collected up to the failure alongside the error.
type Runner interface {
	Name() string
	// Noop returns a harmless line in the runner's language, used as
	// the script trailer.
	Noop() string
	Run(ctx context.Context, line string) (string, error)
}

// New returns the runner for the given name. An empty name selects the
// shell runner.
func New(name, dir string) (Runner, error) {
	switch name {
	case "", "shell":
		return &Shell{Dir: dir}, nil
	case "starlark":
		return NewStarlark(), nil
	default:
		return nil, fmt.Errorf("unknown runner %q (want shell or starlark)", name)
	}
}
