package script

import (
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Script is the ordered sequence of demo lines loaded from a file. The
// line array is immutable after load except for one synthetic trailer
// line appended at the end, so the operator can always step past the
// last real line. The trailer is a harmless no-op supplied by the
// active runner and is never classified as a comment.
type Script struct {
	Path    string
	marker  string
	trailer string
	lines   []string
}

// Match pairs a line with its 0-based index, for find results.
type Match struct {
	Index int
	Text  string
}

// Load reads the whole file into memory and appends the trailer.
// marker is the comment prefix (trimmed lines starting with it, and
// empty lines, count as comments).
func Load(path, marker, trailer string) (*Script, error) {
	s := &Script{Path: path, marker: marker, trailer: trailer}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the file, replacing the line array. The trailer is
// re-appended so it is always present exactly once.
func (s *Script) Reload() error {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	lines := strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n")
	// drop trailing blank lines so the trailer sits right after the
	// last real line
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	s.lines = append(lines, s.trailer)
	return nil
}

// Len returns the line count, trailer included.
func (s *Script) Len() int { return len(s.lines) }

// Line returns the line at i, or "" when i is out of range.
func (s *Script) Line(i int) string {
	if i < 0 || i >= len(s.lines) {
		return ""
	}
	return s.lines[i]
}

// Lines returns a copy of the line array.
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// TrailerIndex returns the index of the synthetic trailer line.
func (s *Script) TrailerIndex() int { return len(s.lines) - 1 }

// IsComment reports whether the line at i is displayed but never
// offered for execution: empty after trimming, or starting with the
// comment marker. Out-of-range indexes are not comments.
func (s *Script) IsComment(i int) bool {
	if i < 0 || i >= len(s.lines) {
		return false
	}
	t := strings.TrimSpace(s.lines[i])
	return t == "" || strings.HasPrefix(t, s.marker)
}

// Rewind moves steps lines backward from i, skipping comment lines.
// When the beginning is reached without finding an executable line it
// falls back to the original index, so the cursor never goes negative.
func (s *Script) Rewind(i, steps int) int {
	cur := i
	for n := 0; n < steps; n++ {
		j := cur - 1
		for j >= 0 && s.IsComment(j) {
			j--
		}
		if j < 0 {
			return i
		}
		cur = j
	}
	return cur
}

// Search returns every line containing substr, case-insensitively,
// with 0-based indexes. A nil result means nothing matched.
func (s *Script) Search(substr string) []Match {
	q := strings.ToLower(substr)
	var out []Match
	for i, ln := range s.lines {
		if strings.Contains(strings.ToLower(ln), q) {
			out = append(out, Match{Index: i, Text: ln})
		}
	}
	return out
}

// Fuzzy returns lines matching query in fuzzy order, best first. An
// empty query yields all lines in file order.
func (s *Script) Fuzzy(query string) []Match {
	if strings.TrimSpace(query) == "" {
		out := make([]Match, len(s.lines))
		for i, ln := range s.lines {
			out[i] = Match{Index: i, Text: ln}
		}
		return out
	}
	res := fuzzy.Find(query, s.lines)
	out := make([]Match, 0, len(res))
	for _, r := range res {
		out = append(out, Match{Index: r.Index, Text: s.lines[r.Index]})
	}
	return out
}
