package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		flagDifficulty = ""
		flagFPS = 60
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListShowsBothVariants(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{"breakout", "breakout_touch"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output should mention %q:\n%s", id, out)
		}
	}
}

func TestConfigPrintsDefaults(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Error("config should print the embedded defaults verbatim")
	}
}

func TestRejectsUnknownDifficulty(t *testing.T) {
	if _, err := execute(t, "list", "--difficulty", "insane"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestRejectsNonPositiveFPS(t *testing.T) {
	if _, err := execute(t, "list", "--fps", "0"); err == nil {
		t.Error("zero fps should fail")
	}
}

func TestPlayRejectsUnknownVariant(t *testing.T) {
	_, err := execute(t, "play", "pong")
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Errorf("expected unknown variant error, got %v", err)
	}
}
