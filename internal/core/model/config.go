package model

import (
	"errors"
	"fmt"
)

// ErrInvalid indicates a configuration that cannot produce a runnable plan.
var ErrInvalid = errors.New("invalid timer configuration")

// Config contains the user-supplied pomodoro parameters.
type Config struct {
	WorkSessions int
	WorkMinutes  int
	BreakMinutes int
}

// Default returns the configuration shown on first launch.
func Default() Config {
	return Config{
		WorkSessions: 4,
		WorkMinutes:  25,
		BreakMinutes: 5,
	}
}

// Validate rejects configurations the planner cannot turn into a sequence.
func (config Config) Validate() error {
	if config.WorkSessions < 1 {
		return fmt.Errorf("%w: work session count must be at least 1", ErrInvalid)
	}
	if config.WorkMinutes < 1 {
		return fmt.Errorf("%w: work session length must be at least 1 minute", ErrInvalid)
	}
	if config.BreakMinutes < 0 {
		return fmt.Errorf("%w: break length cannot be negative", ErrInvalid)
	}
	return nil
}
