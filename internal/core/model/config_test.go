package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "defaults", config: Default(), wantErr: false},
		{name: "zero break is allowed", config: Config{WorkSessions: 2, WorkMinutes: 25, BreakMinutes: 0}, wantErr: false},
		{name: "zero sessions", config: Config{WorkSessions: 0, WorkMinutes: 25, BreakMinutes: 5}, wantErr: true},
		{name: "negative sessions", config: Config{WorkSessions: -1, WorkMinutes: 25, BreakMinutes: 5}, wantErr: true},
		{name: "zero work minutes", config: Config{WorkSessions: 4, WorkMinutes: 0, BreakMinutes: 5}, wantErr: true},
		{name: "negative break", config: Config{WorkSessions: 4, WorkMinutes: 25, BreakMinutes: -5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}
