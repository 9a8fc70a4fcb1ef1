// Package config provides YAML-based game configuration loading and
// validation for the pong platform.
package config

import (
	"errors"
	"fmt"
)

// Validation errors. Returned wrapped with details; match with errors.Is.
var (
	ErrInvalidArena  = errors.New("config: invalid arena")
	ErrInvalidConfig = errors.New("config: invalid value")
)

// PongConfig contains all configuration for a pong session.
type PongConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Ball    BallConfig    `yaml:"ball"`
	Paddles PaddleConfig  `yaml:"paddles"`
	Physics PhysicsConfig `yaml:"physics"`
	Input   InputConfig   `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
}

// ArenaConfig defines the playing field in arena units (y-up, origin bottom-left).
type ArenaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball geometry and the serve vector magnitude.
type BallConfig struct {
	Size       float64 `yaml:"size"`        // Edge length of the ball's bounding box
	ServeSpeed float64 `yaml:"serve_speed"` // Horizontal displacement per tick after a serve
}

// PaddleConfig defines paddle geometry and layout.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Gap between the arena edge and the paddle's outer edge
}

// PhysicsConfig defines collision response parameters.
type PhysicsConfig struct {
	BounceFactor float64 `yaml:"bounce_factor"`  // Speed multiplier per paddle contact
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // 0 disables the cap
}

// InputConfig defines keyboard control parameters.
type InputConfig struct {
	NudgeStep float64 `yaml:"nudge_step"` // Paddle displacement per key press
}

// LogConfig defines logger output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty means the command's default destination
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Validate checks the preconditions the game core relies on.
func (c PongConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: size %gx%g must be positive", ErrInvalidArena, c.Arena.Width, c.Arena.Height)
	}
	if c.Ball.Size <= 0 {
		return fmt.Errorf("%w: ball.size %g must be positive", ErrInvalidConfig, c.Ball.Size)
	}
	if c.Ball.ServeSpeed <= 0 {
		return fmt.Errorf("%w: ball.serve_speed %g must be positive", ErrInvalidConfig, c.Ball.ServeSpeed)
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		return fmt.Errorf("%w: paddle size %gx%g must be positive", ErrInvalidConfig, c.Paddles.Width, c.Paddles.Height)
	}
	if c.Paddles.Offset < 0 {
		return fmt.Errorf("%w: paddles.offset %g must not be negative", ErrInvalidConfig, c.Paddles.Offset)
	}
	if 2*(c.Paddles.Offset+c.Paddles.Width) >= c.Arena.Width {
		return fmt.Errorf("%w: paddles do not fit in a %g wide arena", ErrInvalidArena, c.Arena.Width)
	}
	if c.Physics.BounceFactor <= 0 {
		return fmt.Errorf("%w: physics.bounce_factor %g must be positive", ErrInvalidConfig, c.Physics.BounceFactor)
	}
	if c.Physics.MaxBallSpeed < 0 {
		return fmt.Errorf("%w: physics.max_ball_speed %g must not be negative", ErrInvalidConfig, c.Physics.MaxBallSpeed)
	}
	if c.Input.NudgeStep < 0 {
		return fmt.Errorf("%w: input.nudge_step %g must not be negative", ErrInvalidConfig, c.Input.NudgeStep)
	}
	return nil
}

// Warnings reports settings that are valid but behave surprisingly.
func (c PongConfig) Warnings() []string {
	var warnings []string
	if c.Arena.X != 0 {
		// The right-side goal is compared against the arena width, not its right edge.
		warnings = append(warnings, fmt.Sprintf(
			"arena.x is %g: the right goal line sits at x=%g, not at the arena's right edge %g",
			c.Arena.X, c.Arena.Width, c.Arena.X+c.Arena.Width))
	}
	if c.Physics.MaxBallSpeed > 0 && c.Physics.MaxBallSpeed < c.Ball.ServeSpeed {
		warnings = append(warnings, fmt.Sprintf(
			"physics.max_ball_speed %g is below ball.serve_speed %g; bounces will slow the ball",
			c.Physics.MaxBallSpeed, c.Ball.ServeSpeed))
	}
	return warnings
}
