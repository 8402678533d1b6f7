package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/super-breakout/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagLogLevel, flagFrontend = "", "", "info", "terminal"
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFrontendsCommand(t *testing.T) {
	out, err := execute(t, "frontends")
	if err != nil {
		t.Fatalf("frontends error = %v", err)
	}
	for _, id := range []string{"terminal", "window"} {
		if !strings.Contains(out, id) {
			t.Errorf("output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigCommandAppliesPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config error = %v", err)
	}

	var cfg config.BreakoutConfig
	if err := yaml.Unmarshal([]byte(out), &cfg); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, expected hard preset's 3", cfg.Gameplay.Lives)
	}
}

func TestConfigCommandCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("config error = %v", err)
	}
	if !strings.Contains(out, "lives: 7") {
		t.Errorf("custom lives not applied:\n%s", out)
	}
}

func TestConfigCommandRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown preset", []string{"config", "--difficulty", "nightmare"}, "unknown difficulty"},
		{"missing file", []string{"config", "--config", "/no/such/breakout.yaml"}, "failed to read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, expected %q", err, tt.want)
			}
		})
	}
}

func TestPlayUnknownFrontend(t *testing.T) {
	_, err := execute(t, "play", "--frontend", "teletype")
	if err == nil || !strings.Contains(err.Error(), "teletype") {
		t.Errorf("error = %v, expected unknown frontend", err)
	}
}
