package config

import (
	"math"
	"testing"
)

func TestSpeedScaleDisabledIsIdentity(t *testing.T) {
	d := NewDifficultyManager(DefaultCrossingConfig().Difficulty)
	for _, score := range []int{0, 5, 100} {
		if s := d.SpeedScale(score, score*60); s != 1.0 {
			t.Errorf("SpeedScale(%d) = %v, expected 1.0", score, s)
		}
	}
}

func TestLevelScoreProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.5},
		{5, 0.75},
		{10, 1.0},
		{50, 1.0}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}

	if got := d.SpeedScale(10, 0); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("SpeedScale at max = %v, expected 2.0", got)
	}
}

func TestLevelTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	})
	if got := d.Level(99, 50); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level() = %v, expected 0.5 (score ignored)", got)
	}
}

func TestLevelNoneProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "none"},
	})
	if d.IsEnabled() {
		t.Error("progression type none should disable progression")
	}
	if got := d.Level(100, 100); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}
