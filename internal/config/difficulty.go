package config

import "math"

// DifficultyManager derives the ball speed baseline from the score.
// Brick bands multiply this baseline to get their target speed.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Baseline returns the speed multiplier for the given score:
// 1 + (score - offset) / span, clamped to [1, max]. It is 1 when disabled.
func (d *DifficultyManager) Baseline(score int) float64 {
	if !d.cfg.Enabled {
		return 1
	}
	span := float64(d.cfg.ScoreSpan)
	if span <= 0 {
		span = 1 // Prevent division by zero
	}
	raw := 1 + float64(score-d.cfg.ScoreOffset)/span
	return clampF(raw, 1, math.Max(1, d.cfg.MaxMultiplier))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
