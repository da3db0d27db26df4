package plan

import (
	"time"

	"tomatina/internal/core/model"
)

// Kind identifies the flavor of a timed session.
type Kind string

const (
	KindWork  Kind = "work"
	KindBreak Kind = "break"
)

// Session is a single timed interval within a pomodoro run.
type Session struct {
	Duration time.Duration
	Kind     Kind
}

// Sequence is the ordered plan of sessions for one configured run.
// A non-empty sequence alternates work and break and ends on work.
type Sequence []Session

// Build constructs the session plan for the given configuration: one work
// session per configured count, with a break between consecutive work
// sessions. A count below one yields an empty sequence.
func Build(config model.Config) Sequence {
	if config.WorkSessions < 1 {
		return nil
	}

	work := time.Duration(config.WorkMinutes) * time.Minute
	rest := time.Duration(config.BreakMinutes) * time.Minute

	sequence := make(Sequence, 0, 2*config.WorkSessions-1)
	for i := 0; i < config.WorkSessions; i++ {
		sequence = append(sequence, Session{Duration: work, Kind: KindWork})
		if i < config.WorkSessions-1 {
			sequence = append(sequence, Session{Duration: rest, Kind: KindBreak})
		}
	}
	return sequence
}

// WorkSessionsThrough counts the work sessions at or before index.
func (sequence Sequence) WorkSessionsThrough(index int) int {
	count := 0
	for i := 0; i <= index && i < len(sequence); i++ {
		if sequence[i].Kind == KindWork {
			count++
		}
	}
	return count
}
