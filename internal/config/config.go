// Package config provides YAML-based configuration loading, difficulty
// presets and validation for the breakout game.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains every tunable of the simulation and its frontends.
// Field geometry is fixed by the game and deliberately not configurable.
type BreakoutConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Audio      AudioConfig      `yaml:"audio"`
}

// BallConfig defines ball launch parameters. Speeds are field fractions per second.
type BallConfig struct {
	StartSpeed    float64 `yaml:"start_speed"`
	StartY        float64 `yaml:"start_y"`
	BreakCooldown float64 `yaml:"break_cooldown"` // Seconds between brick breaks
}

// PaddleConfig defines how the paddle deflects the ball.
type PaddleConfig struct {
	HitCooldown float64 `yaml:"hit_cooldown"` // Seconds between counted paddle hits
	MinDeflect  float64 `yaml:"min_deflect"`  // Fraction of speed given to vx on a centre hit
	MaxDeflect  float64 `yaml:"max_deflect"`  // Fraction of speed given to vx on an edge hit
}

// GameplayConfig defines lives, timing and score pacing.
type GameplayConfig struct {
	Lives               int     `yaml:"lives"`
	RespawnTime         float64 `yaml:"respawn_time"`
	MaxDelta            float64 `yaml:"max_delta"`
	LineCooldown        float64 `yaml:"line_cooldown"`
	ScoreInterval       float64 `yaml:"score_interval"`
	GameOverDrainFactor float64 `yaml:"game_over_drain_factor"`
}

// DifficultyConfig defines the score-driven ball speed baseline.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	ScoreOffset   int     `yaml:"score_offset"`   // Score at which scaling starts
	ScoreSpan     int     `yaml:"score_span"`     // Score needed for +1.0x
	MaxMultiplier float64 `yaml:"max_multiplier"` // Cap on the baseline
}

// InputConfig defines how pointer and keyboard motion move the paddle.
type InputConfig struct {
	Sensitivity float64 `yaml:"sensitivity"` // Multiplier on pointer motion
	KeyStep     float64 `yaml:"key_step"`    // Reference pixels per arrow key press, not scaled by frame time
}

// AudioConfig defines the synthesized cue output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"` // 0.0 - 1.0
	SampleRate int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. An empty string means
// "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Validate reports every field that would break the simulation.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("ball.start_speed", c.Ball.StartSpeed)
	positive("ball.break_cooldown", c.Ball.BreakCooldown)
	if c.Ball.StartY <= 0 || c.Ball.StartY >= 1 {
		errs = append(errs, fmt.Errorf("ball.start_y must be inside (0, 1), got %v", c.Ball.StartY))
	}

	positive("paddle.hit_cooldown", c.Paddle.HitCooldown)
	if c.Paddle.MinDeflect < 0 || c.Paddle.MaxDeflect > 1 || c.Paddle.MinDeflect > c.Paddle.MaxDeflect {
		errs = append(errs, fmt.Errorf("paddle deflection must satisfy 0 <= min <= max <= 1, got [%v, %v]",
			c.Paddle.MinDeflect, c.Paddle.MaxDeflect))
	}

	if c.Gameplay.Lives < 1 || c.Gameplay.Lives > 9 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be between 1 and 9, got %d", c.Gameplay.Lives))
	}
	positive("gameplay.respawn_time", c.Gameplay.RespawnTime)
	positive("gameplay.max_delta", c.Gameplay.MaxDelta)
	positive("gameplay.line_cooldown", c.Gameplay.LineCooldown)
	positive("gameplay.score_interval", c.Gameplay.ScoreInterval)
	if c.Gameplay.GameOverDrainFactor <= 0 || c.Gameplay.GameOverDrainFactor > 1 {
		errs = append(errs, fmt.Errorf("gameplay.game_over_drain_factor must be in (0, 1], got %v",
			c.Gameplay.GameOverDrainFactor))
	}

	if c.Difficulty.ScoreSpan <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.score_span must be positive, got %d", c.Difficulty.ScoreSpan))
	}
	if c.Difficulty.MaxMultiplier < 1 {
		errs = append(errs, fmt.Errorf("difficulty.max_multiplier must be at least 1, got %v", c.Difficulty.MaxMultiplier))
	}

	positive("input.sensitivity", c.Input.Sensitivity)
	positive("input.key_step", c.Input.KeyStep)

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be in [0, 1], got %v", c.Audio.Volume))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
