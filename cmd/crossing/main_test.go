package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/bug-crossing/internal/config"
)

func TestLoadGameConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	tests := []struct {
		name       string
		difficulty string
		wantLives  int
		wantErr    bool
	}{
		{"defaults", "", 5, false},
		{"easy", "easy", 7, false},
		{"hard", "hard", 3, false},
		{"fixed", "fixed", 5, false},
		{"unknown", "nightmare", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagConfig = ""
			flagDifficulty = tt.difficulty

			cfg, err := loadGameConfig()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && cfg.Player.Lives != tt.wantLives {
				t.Errorf("lives = %d, want %d", cfg.Player.Lives, tt.wantLives)
			}
		})
	}
}

func TestLoadGameConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("enemies:\n  min_velocity: 600\n  max_velocity: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	flagConfig = path
	flagDifficulty = ""
	t.Cleanup(func() { flagConfig = "" })

	_, err := loadGameConfig()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewLogger(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "crossing.log")
	flagLogLevel = "debug"
	flagLogFile = logPath
	t.Cleanup(func() {
		flagLogLevel = "info"
		flagLogFile = ""
	})

	logger, closer, err := newLogger("test", nil)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "n", 1)
	closer.Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger("test", nil); err == nil {
		t.Error("expected error for unknown level")
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
