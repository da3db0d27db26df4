package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tomatina/internal/core/model"
)

func TestBuildAlternatesWorkAndBreak(t *testing.T) {
	tests := []struct {
		name         string
		workSessions int
		wantLength   int
	}{
		{name: "single session", workSessions: 1, wantLength: 1},
		{name: "two sessions", workSessions: 2, wantLength: 3},
		{name: "three sessions", workSessions: 3, wantLength: 5},
		{name: "eight sessions", workSessions: 8, wantLength: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sequence := Build(model.Config{
				WorkSessions: tt.workSessions,
				WorkMinutes:  25,
				BreakMinutes: 5,
			})

			require.Len(t, sequence, tt.wantLength)
			for i, session := range sequence {
				if i%2 == 0 {
					assert.Equal(t, KindWork, session.Kind, "index %d", i)
					assert.Equal(t, 25*time.Minute, session.Duration, "index %d", i)
				} else {
					assert.Equal(t, KindBreak, session.Kind, "index %d", i)
					assert.Equal(t, 5*time.Minute, session.Duration, "index %d", i)
				}
			}
			assert.Equal(t, KindWork, sequence[len(sequence)-1].Kind, "sequence must end on work")
		})
	}
}

func TestBuildSingleSessionHasNoBreak(t *testing.T) {
	sequence := Build(model.Config{WorkSessions: 1, WorkMinutes: 10, BreakMinutes: 5})

	require.Len(t, sequence, 1)
	assert.Equal(t, KindWork, sequence[0].Kind)
	assert.Equal(t, 10*time.Minute, sequence[0].Duration)
}

func TestBuildZeroSessionsIsEmpty(t *testing.T) {
	assert.Empty(t, Build(model.Config{WorkSessions: 0, WorkMinutes: 25, BreakMinutes: 5}))
	assert.Empty(t, Build(model.Config{WorkSessions: -2, WorkMinutes: 25, BreakMinutes: 5}))
}

func TestBuildZeroBreakMinutes(t *testing.T) {
	sequence := Build(model.Config{WorkSessions: 2, WorkMinutes: 25, BreakMinutes: 0})

	require.Len(t, sequence, 3)
	assert.Equal(t, KindBreak, sequence[1].Kind)
	assert.Zero(t, sequence[1].Duration)
}

func TestWorkSessionsThrough(t *testing.T) {
	sequence := Build(model.Config{WorkSessions: 3, WorkMinutes: 25, BreakMinutes: 5})

	tests := []struct {
		index int
		want  int
	}{
		{index: 0, want: 1},
		{index: 1, want: 1},
		{index: 2, want: 2},
		{index: 3, want: 2},
		{index: 4, want: 3},
		{index: 99, want: 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sequence.WorkSessionsThrough(tt.index), "index %d", tt.index)
	}
}
