package runner

import (
	"context"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Starlark keeps a persistent interpreter environment across lines:
// assignments made by one line are visible to later ones, the way a
// REPL behaves. Expression lines print their value, statement lines
// just execute, and print() output is captured either way.
type Starlark struct {
	thread  *starlark.Thread
	globals starlark.StringDict
	opts    *syntax.FileOptions
}

func NewStarlark() *Starlark {
	return &Starlark{
		thread:  &starlark.Thread{Name: "demo"},
		globals: make(starlark.StringDict),
		opts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
	}
}

func (*Starlark) Name() string { return "starlark" }

func (*Starlark) Noop() string { return "None" }

func (s *Starlark) Run(ctx context.Context, line string) (string, error) {
	var buf strings.Builder
	s.thread.Print = func(_ *starlark.Thread, msg string) {
		buf.WriteString(msg)
		buf.WriteByte('\n')
	}
	stop := context.AfterFunc(ctx, func() {
		s.thread.Cancel("context done")
	})
	defer stop()

	// Expressions first, so "1 + 1" echoes its value.
	if v, err := starlark.EvalOptions(s.opts, s.thread, "<demo>", line, s.globals); err == nil {
		if v != starlark.None {
			buf.WriteString(v.String())
			buf.WriteByte('\n')
		}
		return buf.String(), nil
	}
	globals, err := starlark.ExecFileOptions(s.opts, s.thread, "<demo>", line, s.globals)
	if err != nil {
		return buf.String(), err
	}
	for k, v := range globals {
		s.globals[k] = v
	}
	return buf.String(), nil
}
