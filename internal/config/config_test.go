package config

import (
	"strings"
	"testing"

	tu "democtl/internal/testutil"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	def := Default()
	if cfg != def {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	want := Default()
	want.Colors.Prompt = "#ff00ff"
	want.CommentMarker = ";"
	want.IntervalSeconds = 1.5
	want.WatchScript = false
	want.Runner = "starlark"
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoad_FillsEmptyFields(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	if err := Save(Config{CommentMarker: "::"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.CommentMarker != "::" {
		t.Errorf("marker overwritten: %q", got.CommentMarker)
	}
	def := Default()
	if got.Colors != def.Colors || got.IntervalSeconds != def.IntervalSeconds || got.Runner != def.Runner {
		t.Errorf("empty fields not defaulted: %+v", got)
	}
}

func TestSchema(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	s := string(b)
	for _, want := range []string{"commentMarker", "intervalSeconds", "colors", "runner"} {
		if !strings.Contains(s, want) {
			t.Errorf("schema missing %q", want)
		}
	}
}
