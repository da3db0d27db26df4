package timerwin

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"tomatina/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks connects the window controls to the timer engine.
type Callbacks struct {
	OnSetup     func(model.Config) error
	OnToggleRun func() error
	OnBackward  func() error
	OnReset     func() error
	OnForward   func() error
}

// Window is the main timer window. It implements engine.Display.
type Window struct {
	window       fyne.Window
	sessions     *widget.Entry
	workMinutes  *widget.Entry
	breakMinutes *widget.Entry
	countdown    *canvas.Text
	runButton    *widget.Button
	callbacks    Callbacks
}

// New creates the main window with the defaults pre-filled.
func New(app fyne.App, defaults model.Config, callbacks Callbacks) *Window {
	window := app.NewWindow("Tomatina")

	sessions := widget.NewEntry()
	workMinutes := widget.NewEntry()
	breakMinutes := widget.NewEntry()
	sessions.SetText(strconv.Itoa(defaults.WorkSessions))
	workMinutes.SetText(strconv.Itoa(defaults.WorkMinutes))
	breakMinutes.SetText(strconv.Itoa(defaults.BreakMinutes))

	setupButton := widget.NewButton("Set / Restart", nil)
	configArea := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.New(layout.NewFormLayout(),
			widget.NewLabel("Work sessions"), sessions,
			widget.NewLabel("Work session (min)"), workMinutes,
			widget.NewLabel("Break (min)"), breakMinutes,
		),
		setupButton,
	)

	countdown := canvas.NewText("00:00", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Bold: true}
	countdown.TextSize = 48

	runButton := widget.NewButton("Start", nil)
	runButton.Disable()
	backButton := widget.NewButton("<< Backward", nil)
	resetButton := widget.NewButton("Reset", nil)
	forwardButton := widget.NewButton("Forward >>", nil)
	controls := container.NewHBox(
		layout.NewSpacer(),
		runButton, backButton, resetButton, forwardButton,
		layout.NewSpacer(),
	)

	content := container.NewVBox(
		configArea,
		widget.NewSeparator(),
		container.NewCenter(countdown),
		controls,
	)
	window.SetContent(content)
	window.Resize(fyne.NewSize(460, 320))

	win := &Window{
		window:       window,
		sessions:     sessions,
		workMinutes:  workMinutes,
		breakMinutes: breakMinutes,
		countdown:    countdown,
		runButton:    runButton,
		callbacks:    callbacks,
	}

	setupButton.OnTapped = win.handleSetup
	runButton.OnTapped = win.report(callbacks.OnToggleRun)
	backButton.OnTapped = win.report(callbacks.OnBackward)
	resetButton.OnTapped = win.report(callbacks.OnReset)
	forwardButton.OnTapped = win.report(callbacks.OnForward)

	return win
}

// ShowAndRun shows the window and runs the application loop.
func (win *Window) ShowAndRun() {
	win.window.ShowAndRun()
}

// Render updates the countdown text. Safe from any goroutine.
func (win *Window) Render(minutes, seconds int) {
	fyne.Do(func() {
		win.countdown.Text = fmt.Sprintf("%02d:%02d", minutes, seconds)
		win.countdown.Refresh()
	})
}

// SetControlLabel updates the start/pause button text.
func (win *Window) SetControlLabel(text string) {
	fyne.Do(func() {
		win.runButton.SetText(text)
	})
}

// SetControlEnabled enables or disables the start/pause button.
func (win *Window) SetControlEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			win.runButton.Enable()
			return
		}
		win.runButton.Disable()
	})
}

func (win *Window) handleSetup() {
	config, err := win.readConfig()
	if err == nil && win.callbacks.OnSetup != nil {
		err = win.callbacks.OnSetup(config)
	}
	if err != nil {
		dialog.ShowError(err, win.window)
	}
}

func (win *Window) readConfig() (model.Config, error) {
	sessions, err := parseField(win.sessions.Text, "work session count")
	if err != nil {
		return model.Config{}, err
	}
	workMinutes, err := parseField(win.workMinutes.Text, "work session length")
	if err != nil {
		return model.Config{}, err
	}
	breakMinutes, err := parseField(win.breakMinutes.Text, "break length")
	if err != nil {
		return model.Config{}, err
	}
	return model.Config{
		WorkSessions: sessions,
		WorkMinutes:  workMinutes,
		BreakMinutes: breakMinutes,
	}, nil
}

// report wraps an engine command so its error surfaces as a dialog.
func (win *Window) report(command func() error) func() {
	return func() {
		if command == nil {
			return
		}
		if err := command(); err != nil {
			dialog.ShowError(err, win.window)
		}
	}
}

func parseField(value, name string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", name)
	}
	return parsed, nil
}
