package player

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"democtl/internal/config"
	"democtl/internal/script"
	tu "democtl/internal/testutil"
)

type fakeRunner struct {
	calls []string
	fail  bool
}

func (f *fakeRunner) Name() string { return "fake" }
func (f *fakeRunner) Noop() string { return "noop" }
func (f *fakeRunner) Run(_ context.Context, line string) (string, error) {
	f.calls = append(f.calls, line)
	if f.fail {
		return "", errors.New("boom")
	}
	return "ok: " + line, nil
}

// threeLineScript is the canonical example: command, comment, command.
const threeLineScript = "echo A\n# comment\necho B\n"

func newTestModel(t *testing.T, content string) (model, *fakeRunner) {
	t.Helper()
	zone.NewGlobal()
	p := filepath.Join(t.TempDir(), "demo.txt")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	r := &fakeRunner{}
	scr, err := script.Load(p, "#", r.Noop())
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	m := newModel(Options{
		Script:   scr,
		Runner:   r,
		Theme:    NewTheme(config.Default().Colors),
		Interval: time.Second,
	})
	mm, _ := m.Update(startMsg{})
	return mm.(model), r
}

func press(t *testing.T, m model, keys string) model {
	t.Helper()
	for _, r := range keys {
		mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = mm.(model)
	}
	return m
}

func pressEnter(t *testing.T, m model) model {
	t.Helper()
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return mm.(model)
}

func TestConfirmExecutesAndSkipsComment(t *testing.T) {
	m, r := newTestModel(t, threeLineScript)
	if m.cursor != 0 || m.mode != modePrompt {
		t.Fatalf("initial state: cursor=%d mode=%v", m.cursor, m.mode)
	}

	m = pressEnter(t, m)
	if m.mode != modeRunning {
		t.Fatalf("expected running after confirm, got %v", m.mode)
	}
	mm, _ := m.Update(execDoneMsg{index: 0, line: "echo A", out: "ok"})
	m = mm.(model)
	if m.mode != modePostExec {
		t.Fatalf("expected post-exec pause, got %v", m.mode)
	}

	// any key advances; the comment is skipped without another wait
	m = press(t, m, "x")
	if m.cursor != 2 {
		t.Fatalf("expected cursor on line 2 past the comment, got %d", m.cursor)
	}
	if m.mode != modePrompt {
		t.Fatalf("expected prompt on an executable line, got %v", m.mode)
	}
	if m.scr.IsComment(m.cursor) {
		t.Fatal("the loop must never wait on a comment line")
	}
	if len(r.calls) != 0 {
		// execDoneMsg was injected; the fake runner only records real cmds
		t.Fatalf("unexpected runner calls: %v", r.calls)
	}
}

func TestExecErrorIsNonFatal(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m = pressEnter(t, m)
	mm, _ := m.Update(execDoneMsg{index: 0, line: "echo A", err: errors.New("boom")})
	m = mm.(model)
	if m.quitting {
		t.Fatal("execution error must not end the session")
	}
	if m.mode != modePostExec {
		t.Fatalf("expected post-exec pause after error, got %v", m.mode)
	}
}

func TestPreviousLandsOnNearestCommand(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m.cursor = 2
	m = press(t, m, "p")
	if m.cursor != 0 {
		t.Fatalf("previous over the comment should land on 0, got %d", m.cursor)
	}
	// no executable line before 0: cursor stays
	m = press(t, m, "p")
	if m.cursor != 0 {
		t.Fatalf("previous at the top should stay on 0, got %d", m.cursor)
	}
}

func TestGotoLine(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m.cursor = 2

	// N=1 places the next display exactly on line 1 (index 0)
	m = press(t, m, "g")
	if m.mode != modeGoto {
		t.Fatalf("expected goto input, got %v", m.mode)
	}
	m = press(t, m, "1")
	m = pressEnter(t, m)
	if m.cursor != 0 || m.mode != modePrompt {
		t.Fatalf("goto 1: cursor=%d mode=%v", m.cursor, m.mode)
	}

	// N=0 resets to before the first line; the auto-increment then
	// settles on the first executable line
	m.cursor = 2
	m = press(t, m, "g0")
	m = pressEnter(t, m)
	if m.cursor != 0 {
		t.Fatalf("goto 0: cursor=%d", m.cursor)
	}

	// out-of-range and garbage targets are silently ignored
	m.cursor = 2
	m = press(t, m, "g99")
	m = pressEnter(t, m)
	if m.cursor != 2 {
		t.Fatalf("goto out of range moved cursor to %d", m.cursor)
	}
	m = press(t, m, "g")
	m = press(t, m, "x")
	m = pressEnter(t, m)
	if m.cursor != 2 {
		t.Fatalf("goto garbage moved cursor to %d", m.cursor)
	}
}

func TestFindNeverMovesCursor(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m.cursor = 2

	m = press(t, m, "/")
	if m.mode != modeFind {
		t.Fatalf("expected find input, got %v", m.mode)
	}
	m = press(t, m, "echo")
	m = pressEnter(t, m)
	if m.cursor != 2 || m.mode != modePrompt {
		t.Fatalf("find with matches: cursor=%d mode=%v", m.cursor, m.mode)
	}

	m = press(t, m, "/")
	m = press(t, m, "zzz")
	m = pressEnter(t, m)
	if m.cursor != 2 {
		t.Fatalf("find without matches moved cursor to %d", m.cursor)
	}
}

func TestQuitForcesCursorToEnd(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m = press(t, m, "q")
	if !m.quitting || m.mode != modeDone {
		t.Fatalf("quit: quitting=%v mode=%v", m.quitting, m.mode)
	}
	if m.cursor < m.scr.Len() {
		t.Fatalf("quit must force the cursor past the end, got %d", m.cursor)
	}
}

func TestAutoPlayRunsToCompletion(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)

	m = press(t, m, "a")
	if m.mode != modeInterval {
		t.Fatalf("expected interval input, got %v", m.mode)
	}
	// the input is prefilled with the current interval; submit as-is
	m = pressEnter(t, m)
	if !m.autoplay || m.mode != modeRunning {
		t.Fatalf("auto-play not started: autoplay=%v mode=%v", m.autoplay, m.mode)
	}

	step := func() {
		mm, _ := m.Update(execDoneMsg{index: m.cursor, line: m.scr.Line(m.cursor), out: "ok"})
		m = mm.(model)
		mm, _ = m.Update(autoTickMsg{})
		m = mm.(model)
	}
	step() // line 0 done, comment skipped, line 2 executing
	if m.quitting {
		t.Fatal("ended too early")
	}
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2 during auto-play, got %d", m.cursor)
	}
	step() // line 2 done, trailer executing
	if m.cursor != 3 {
		t.Fatalf("expected trailer under cursor, got %d", m.cursor)
	}
	step() // trailer done: session complete
	if !m.quitting {
		t.Fatal("auto-play should end after the trailer")
	}
}

func TestSuspendIsReentrant(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	m, _ := newTestModel(t, threeLineScript)
	m = press(t, m, "!")
	if m.mode != modeSuspend {
		t.Fatalf("expected suspend prompt, got %v", m.mode)
	}

	// run a command inside the nested prompt
	m = press(t, m, "echo hi")
	m = pressEnter(t, m)
	if m.mode != modeSuspendRunning {
		t.Fatalf("expected nested command running, got %v", m.mode)
	}
	mm, _ := m.Update(execDoneMsg{index: -1, line: "echo hi", out: "hi", suspend: true})
	m = mm.(model)
	if m.mode != modeSuspend {
		t.Fatalf("nested prompt should stay open, got %v", m.mode)
	}

	// explicit exit resumes the same line
	m = press(t, m, "exit")
	m = pressEnter(t, m)
	if m.mode != modePrompt || m.cursor != 0 {
		t.Fatalf("resume: mode=%v cursor=%d", m.mode, m.cursor)
	}
}

func TestUnrecognizedKeyKeepsState(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m = press(t, m, "z")
	if m.cursor != 0 || m.mode != modePrompt {
		t.Fatalf("unrecognized key changed state: cursor=%d mode=%v", m.cursor, m.mode)
	}
}

func TestSourceOverlayJump(t *testing.T) {
	m, _ := newTestModel(t, threeLineScript)
	m = press(t, m, "v")
	if m.mode != modeSource {
		t.Fatalf("expected source overlay, got %v", m.mode)
	}
	if len(m.srcMatches) != m.scr.Len() {
		t.Fatalf("overlay should list all lines, got %d", len(m.srcMatches))
	}
	// move to line 2 and jump
	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = mm.(model)
	mm, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = mm.(model)
	m = pressEnter(t, m)
	if m.cursor != 2 || m.mode != modePrompt {
		t.Fatalf("jump: cursor=%d mode=%v", m.cursor, m.mode)
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{45 * time.Second, "45s"},
		{2*time.Minute + 3*time.Second, "2m03s"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1h02m03s"},
		{3 * time.Hour, "3h00m00s"},
	}
	for _, c := range cases {
		if got := formatElapsed(c.d); got != c.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestStartLineOption(t *testing.T) {
	zone.NewGlobal()
	p := filepath.Join(t.TempDir(), "demo.txt")
	if err := os.WriteFile(p, []byte(threeLineScript), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	scr, err := script.Load(p, "#", "noop")
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	m := newModel(Options{
		Script:    scr,
		Runner:    &fakeRunner{},
		Theme:     NewTheme(config.Default().Colors),
		StartLine: 3,
		Interval:  time.Second,
	})
	mm, _ := m.Update(startMsg{})
	m = mm.(model)
	if m.cursor != 2 {
		t.Fatalf("start line 3 should display index 2, got %d", m.cursor)
	}
}
