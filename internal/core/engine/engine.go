package engine

import (
	"errors"
	"sync"
	"time"

	"tomatina/internal/core/model"
	"tomatina/internal/core/plan"
)

// ErrNotConfigured indicates a command arrived before the first Configure.
var ErrNotConfigured = errors.New("timer not configured")

// Going backward within the first seconds of a session steps to the
// previous session instead of restarting the current one.
const backstepGrace = 5 * time.Second

const (
	labelStart = "Start"
	labelPause = "Pause"

	msgWorkStarted   = "Work Session Started!"
	msgWorkEnded     = "Work Session Ended!"
	msgFinalComplete = "Final Work Session Completed!"
)

// Options contains runtime options for Engine.
type Options struct {
	TickInterval time.Duration
}

// Engine is the countdown state machine. It owns the session sequence,
// the current index and remaining time, and pushes every visible change
// to the injected Display and Notifier.
type Engine struct {
	mu         sync.Mutex
	options    Options
	display    Display
	notifier   Notifier
	config     model.Config
	sequence   plan.Sequence
	phase      Phase
	index      int
	remaining  time.Duration
	running    bool
	driverLive bool
	stopCh     chan struct{}
	stopped    bool
}

// New creates an Engine with the provided options.
func New(options Options) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	return &Engine{
		options: options,
		phase:   PhaseUnconfigured,
		stopCh:  make(chan struct{}),
	}
}

// SetDisplay injects the countdown display.
func (engine *Engine) SetDisplay(display Display) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.display = display
}

// SetNotifier injects the boundary notifier.
func (engine *Engine) SetNotifier(notifier Notifier) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.notifier = notifier
}

// Phase returns the current engine phase.
func (engine *Engine) Phase() Phase {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.phase
}

// Remaining returns the time left in the current session.
func (engine *Engine) Remaining() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.remaining
}

// SessionIndex returns the position in the session sequence.
func (engine *Engine) SessionIndex() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.index
}

// Configure replaces the whole timer state with a fresh plan built from
// config. Callable from any phase, including mid-run; an invalid config is
// rejected and leaves the previous state untouched.
func (engine *Engine) Configure(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	sequence := plan.Build(config)

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config
	engine.sequence = sequence
	engine.index = 0
	engine.remaining = sequence[0].Duration
	engine.running = false
	engine.phase = PhaseReady
	engine.renderLocked()
	engine.setControlLocked(labelStart, true)
	return nil
}

// ToggleRun starts the countdown when paused and pauses it when running.
// Starting the very first moment of a work session raises the start
// notification, matching the automatic transition out of a break.
func (engine *Engine) ToggleRun() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	switch engine.phase {
	case PhaseUnconfigured:
		return ErrNotConfigured
	case PhaseCompleted:
		return nil
	}
	if engine.stopped {
		return nil
	}

	if engine.running {
		engine.running = false
		engine.phase = PhaseReady
		engine.setControlLocked(labelStart, true)
		return nil
	}

	engine.running = true
	engine.phase = PhaseRunning
	engine.setControlLocked(labelPause, true)

	session := engine.sequence[engine.index]
	if session.Kind == plan.KindWork && engine.remaining == session.Duration {
		engine.notifyStartLocked()
	}

	if !engine.driverLive {
		engine.driverLive = true
		go engine.run()
	}
	return nil
}

// Tick advances the countdown by one second. The background driver invokes
// it once per tick interval; it has no effect unless the engine is running.
func (engine *Engine) Tick() {
	engine.mu.Lock()
	engine.tickLocked()
	engine.mu.Unlock()
}

// SkipForward jumps to the end of the current session. The boundary is then
// processed by the same path as a natural expiry on the next tick
// evaluation, so notifications and advancement are identical.
func (engine *Engine) SkipForward() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	switch engine.phase {
	case PhaseUnconfigured:
		return ErrNotConfigured
	case PhaseCompleted:
		return nil
	}

	engine.remaining = 0
	engine.renderLocked()
	return nil
}

// SkipBackward restarts the current session if more than a few seconds have
// elapsed, and otherwise steps to the start of the previous session. Pure
// navigation: no notifications fire.
func (engine *Engine) SkipBackward() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase == PhaseUnconfigured {
		return ErrNotConfigured
	}

	current := engine.sequence[engine.index]
	elapsed := current.Duration - engine.remaining
	switch {
	case elapsed > backstepGrace:
		engine.remaining = current.Duration
	case engine.index > 0:
		engine.index--
		engine.remaining = engine.sequence[engine.index].Duration
	default:
		return nil
	}

	engine.reviveLocked()
	engine.renderLocked()
	return nil
}

// ResetCurrent restores the current session to its full duration.
func (engine *Engine) ResetCurrent() error {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.phase == PhaseUnconfigured {
		return ErrNotConfigured
	}

	engine.remaining = engine.sequence[engine.index].Duration
	engine.reviveLocked()
	engine.renderLocked()
	return nil
}

// Stop terminates the background driver for application shutdown.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.stopped {
		return
	}
	engine.stopped = true
	engine.running = false
	close(engine.stopCh)
}

func (engine *Engine) run() {
	ticker := time.NewTicker(engine.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-engine.stopCh:
			engine.mu.Lock()
			engine.driverLive = false
			engine.mu.Unlock()
			return
		case <-ticker.C:
			if !engine.step() {
				return
			}
		}
	}
}

// step performs one driver iteration and reports whether the driver should
// keep ticking. Liveness is cleared under the same lock that ToggleRun
// checks, so a second driver is never spawned next to a live one.
func (engine *Engine) step() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		engine.tickLocked()
	}
	if !engine.running {
		engine.driverLive = false
		return false
	}
	return true
}

func (engine *Engine) tickLocked() {
	if !engine.running {
		return
	}
	if engine.remaining > 0 {
		engine.remaining -= time.Second
		engine.renderLocked()
	}
	if engine.remaining > 0 {
		return
	}
	engine.advanceLocked()
}

// advanceLocked processes the end-of-session boundary: work sessions raise
// the end notification, then the run continues with the next session or the
// engine completes. Iterative so that zero-length sessions chain without
// growing the stack.
func (engine *Engine) advanceLocked() {
	for {
		if engine.sequence[engine.index].Kind == plan.KindWork {
			engine.notifyEndLocked()
		}

		if engine.index+1 >= len(engine.sequence) {
			// Keep the index on the last session so navigation from
			// the completed state stays in range.
			engine.phase = PhaseCompleted
			engine.running = false
			engine.setControlLocked(labelStart, false)
			return
		}

		engine.index++
		next := engine.sequence[engine.index]
		engine.remaining = next.Duration
		engine.renderLocked()
		if next.Kind == plan.KindWork {
			engine.notifyStartLocked()
		}
		if engine.remaining > 0 {
			return
		}
	}
}

// reviveLocked re-opens a completed run after backward navigation or a
// reset restored a positive remaining time.
func (engine *Engine) reviveLocked() {
	if engine.phase != PhaseCompleted {
		return
	}
	engine.phase = PhaseReady
	engine.setControlLocked(labelStart, true)
}

func (engine *Engine) notifyStartLocked() {
	if engine.notifier == nil {
		return
	}
	engine.notifier.ShowTransientMessage(msgWorkStarted)
	engine.notifier.PlaySound(SoundStart)
}

func (engine *Engine) notifyEndLocked() {
	if engine.notifier == nil {
		return
	}
	if engine.sequence.WorkSessionsThrough(engine.index) == engine.config.WorkSessions {
		engine.notifier.ShowTransientMessage(msgFinalComplete)
		engine.notifier.PlaySound(SoundFinal)
		return
	}
	engine.notifier.ShowTransientMessage(msgWorkEnded)
	engine.notifier.PlaySound(SoundEnd)
}

func (engine *Engine) renderLocked() {
	if engine.display == nil {
		return
	}
	seconds := int(engine.remaining / time.Second)
	engine.display.Render(seconds/60, seconds%60)
}

func (engine *Engine) setControlLocked(label string, enabled bool) {
	if engine.display == nil {
		return
	}
	engine.display.SetControlLabel(label)
	engine.display.SetControlEnabled(enabled)
}
