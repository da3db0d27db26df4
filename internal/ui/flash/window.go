package flash

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// Transient messages dismiss themselves after this long.
const dismissAfter = 3 * time.Second

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is a fullscreen transient message surface.
type Window struct {
	window  fyne.Window
	message *canvas.Text

	mu        sync.Mutex
	hideTimer *time.Timer
}

// New creates the flash window, hidden until the first message.
func New(app fyne.App) *Window {
	window := app.NewWindow("Tomatina")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	message := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	message.Alignment = fyne.TextAlignCenter
	message.TextStyle = fyne.TextStyle{Bold: true}
	message.TextSize = 48

	window.SetContent(container.NewStack(background, container.NewCenter(message)))

	return &Window{
		window:  window,
		message: message,
	}
}

// ShowMessage raises the window fullscreen with the given text and schedules
// its dismissal. A message arriving while one is visible restarts the clock.
func (flash *Window) ShowMessage(text string) {
	flash.mu.Lock()
	if flash.hideTimer != nil {
		flash.hideTimer.Stop()
	}
	flash.hideTimer = time.AfterFunc(dismissAfter, flash.hide)
	flash.mu.Unlock()

	fyne.Do(func() {
		flash.message.Text = text
		flash.message.Refresh()
		flash.window.SetFullScreen(true)
		flash.window.Show()
		flash.window.RequestFocus()
	})
}

func (flash *Window) hide() {
	fyne.Do(func() {
		flash.window.SetFullScreen(false)
		flash.window.Hide()
	})
}
