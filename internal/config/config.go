package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Colors holds the three configurable display roles: the prompt
// decoration, the echoed command text, and comment lines.
type Colors struct {
	Prompt  string `json:"prompt,omitempty" jsonschema:"description=Hex color for the prompt decoration,example=#4d9375"`
	Command string `json:"command,omitempty" jsonschema:"description=Hex color for echoed command text,example=#e6cc77"`
	Comment string `json:"comment,omitempty" jsonschema:"description=Hex color for comment lines,example=#5eaab5"`
}

// Config is the on-disk player configuration.
type Config struct {
	Colors Colors `json:"colors,omitempty"`
	// CommentMarker prefixes lines that are shown but never executed.
	CommentMarker string `json:"commentMarker,omitempty" jsonschema:"default=#"`
	// IntervalSeconds is the default auto-play delay between lines.
	IntervalSeconds float64 `json:"intervalSeconds,omitempty" jsonschema:"default=3,minimum=0.1"`
	// NoPause skips the extra keystroke after each executed line.
	NoPause bool `json:"noPause,omitempty"`
	// WatchScript reloads the line array when the script file changes.
	WatchScript bool `json:"watchScript" jsonschema:"default=true"`
	// Runner selects the line executor: shell or starlark.
	Runner string `json:"runner,omitempty" jsonschema:"enum=shell,enum=starlark,default=shell"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Colors: Colors{
			Prompt:  "#4d9375",
			Command: "#e6cc77",
			Comment: "#5eaab5",
		},
		CommentMarker:   "#",
		IntervalSeconds: 3,
		WatchScript:     true,
		Runner:          "shell",
	}
}

// Load reads the config file, filling unset fields from Default.
// A missing file yields the defaults without error.
func Load() (Config, error) {
	def := Default()
	p, err := FilePath()
	if err != nil {
		return def, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, err
	}
	cfg := def
	if err := json.Unmarshal(b, &cfg); err != nil {
		return def, err
	}
	if cfg.Colors.Prompt == "" {
		cfg.Colors.Prompt = def.Colors.Prompt
	}
	if cfg.Colors.Command == "" {
		cfg.Colors.Command = def.Colors.Command
	}
	if cfg.Colors.Comment == "" {
		cfg.Colors.Comment = def.Colors.Comment
	}
	if cfg.CommentMarker == "" {
		cfg.CommentMarker = def.CommentMarker
	}
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = def.IntervalSeconds
	}
	if cfg.Runner == "" {
		cfg.Runner = def.Runner
	}
	return cfg, nil
}

// Save writes the config file, creating the directory if needed.
func Save(cfg Config) error {
	p, err := FilePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o644)
}
