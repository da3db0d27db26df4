package engine

// Phase represents the current Engine state.
type Phase string

const (
	PhaseUnconfigured Phase = "unconfigured"
	PhaseReady        Phase = "ready"
	PhaseRunning      Phase = "running"
	PhaseCompleted    Phase = "completed"
)

// Sound names an alert clip played at a work-session boundary.
type Sound string

const (
	SoundStart Sound = "start"
	SoundEnd   Sound = "end"
	SoundFinal Sound = "final"
)

// Display receives countdown and control updates from the engine.
// Calls are fire-and-forget; implementations must not block.
type Display interface {
	Render(minutes, seconds int)
	SetControlLabel(text string)
	SetControlEnabled(enabled bool)
}

// Notifier raises session-boundary alerts.
type Notifier interface {
	ShowTransientMessage(text string)
	PlaySound(sound Sound)
}
