package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It matches the embedded defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			X:      0,
			Y:      0,
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Size:       50,
			ServeSpeed: 4,
		},
		Paddles: PaddleConfig{
			Width:  25,
			Height: 200,
			Offset: 0,
		},
		Physics: PhysicsConfig{
			BounceFactor: 1.1,
			MaxBallSpeed: 0,
		},
		Input: InputConfig{
			NudgeStep: 40,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
