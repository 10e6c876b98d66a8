package server

import (
	"sync"
	"time"
)

// Snapshot is the externally visible state of a running demo session.
type Snapshot struct {
	File           string    `json:"file"`
	Runner         string    `json:"runner"`
	Line           int       `json:"line"` // 0-based cursor
	Total          int       `json:"total"`
	Text           string    `json:"text"`
	Mode           string    `json:"mode"`
	Executed       int       `json:"executed"`
	StartedAt      time.Time `json:"startedAt"`
	ElapsedSeconds float64   `json:"elapsedSeconds"`
}

// Status is the bridge between the single-threaded player loop and the
// HTTP goroutine: the player publishes snapshots, handlers read them.
type Status struct {
	mu    sync.RWMutex
	snap  Snapshot
	lines []string
}

func NewStatus(file, runner string, lines []string) *Status {
	return &Status{
		snap: Snapshot{
			File:      file,
			Runner:    runner,
			Total:     len(lines),
			StartedAt: time.Now(),
		},
		lines: lines,
	}
}

// Publish records the current cursor position and mode.
func (st *Status) Publish(line int, text, mode string, executed int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.snap.Line = line
	st.snap.Text = text
	st.snap.Mode = mode
	st.snap.Executed = executed
}

// SetLines replaces the script lines after a live reload.
func (st *Status) SetLines(lines []string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lines = lines
	st.snap.Total = len(lines)
}

// Snapshot returns a copy with elapsed time computed at call time.
func (st *Status) Snapshot() Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s := st.snap
	s.ElapsedSeconds = time.Since(s.StartedAt).Seconds()
	return s
}

// Lines returns a copy of the script lines.
func (st *Status) Lines() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]string, len(st.lines))
	copy(out, st.lines)
	return out
}
