package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"democtl/internal/config"
)

// maxEntries caps the persisted suspend-prompt history.
const maxEntries = 200

func filePath() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads the history, newest last. Missing file yields an empty
// list without error.
func Load() ([]string, error) {
	p, err := filePath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var arr []string
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, err
	}
	return arr, nil
}

// Save writes the history, creating parent dirs and trimming to the
// cap. Unlike a catalog store, ordering is preserved: history is a log,
// not a set.
func Save(list []string) error {
	p, err := filePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	if len(list) > maxEntries {
		list = list[len(list)-maxEntries:]
	}
	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}

// Append records one executed line. Blank lines are dropped, and an
// earlier occurrence of the same line is moved to the end instead of
// duplicated.
func Append(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	cur, err := Load()
	if err != nil {
		return err
	}
	out := make([]string, 0, len(cur)+1)
	for _, s := range cur {
		if s != line {
			out = append(out, s)
		}
	}
	out = append(out, line)
	return Save(out)
}
