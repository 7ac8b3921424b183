package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be fine, got %v", err)
	}
	if cfg.Game.Duration != nil || cfg.Words.Negative != nil {
		t.Fatalf("expected zero config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
[game]
duration = 45
background = "space"
sound = false
seed = 7

[words]
negative = ["exam", "boss"]
positive-file = "pos.txt"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Duration == nil || *cfg.Game.Duration != 45 {
		t.Fatalf("unexpected duration %v", cfg.Game.Duration)
	}
	if cfg.Game.Background == nil || *cfg.Game.Background != "space" {
		t.Fatalf("unexpected background %v", cfg.Game.Background)
	}
	if cfg.Game.Sound == nil || *cfg.Game.Sound {
		t.Fatalf("expected sound=false")
	}
	if cfg.Game.Seed == nil || *cfg.Game.Seed != 7 {
		t.Fatalf("unexpected seed %v", cfg.Game.Seed)
	}
	if cfg.Game.FOV != nil || cfg.Game.Volume != nil {
		t.Fatalf("unset keys must stay nil")
	}
	if !reflect.DeepEqual(cfg.Words.Negative, []string{"exam", "boss"}) {
		t.Fatalf("unexpected negative list %v", cfg.Words.Negative)
	}
	if cfg.Words.PositiveFile == nil || *cfg.Words.PositiveFile != "pos.txt" {
		t.Fatalf("unexpected positive file %v", cfg.Words.PositiveFile)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[game]\nspeed = 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestResolveWordsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	if got := ResolveWordsPath("neg.txt"); got != filepath.Join("/cfg", "breaker", "words", "neg.txt") {
		t.Fatalf("unexpected path %q", got)
	}
	if got := ResolveWordsPath("/abs/neg.txt"); got != "/abs/neg.txt" {
		t.Fatalf("absolute path changed: %q", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "breaker", "config.toml") {
		t.Fatalf("unexpected config path %q", got)
	}
}
