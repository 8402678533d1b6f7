package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Ball: BallConfig{
			StartSpeed:    0.5,
			StartY:        0.7,
			BreakCooldown: 0.05,
		},
		Paddle: PaddleConfig{
			HitCooldown: 0.1,
			MinDeflect:  0.3,
			MaxDeflect:  0.8,
		},
		Gameplay: GameplayConfig{
			Lives:               5,
			RespawnTime:         1.0,
			MaxDelta:            0.02,
			LineCooldown:        0.1,
			ScoreInterval:       0.1,
			GameOverDrainFactor: 0.6,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			ScoreOffset:   1000,
			ScoreSpan:     2000,
			MaxMultiplier: 1.5,
		},
		Input: InputConfig{
			Sensitivity: 1.0,
			KeyStep:     40,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
	}
}
