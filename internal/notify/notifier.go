package notify

import (
	"tomatina/internal/audio"
	"tomatina/internal/core/engine"
	"tomatina/internal/ui/flash"
)

// Notifier pairs the fullscreen flash window with alert playback. It
// implements engine.Notifier.
type Notifier struct {
	flash  *flash.Window
	player *audio.Player
}

// New creates a Notifier over the given flash window and player.
func New(flashWindow *flash.Window, player *audio.Player) *Notifier {
	return &Notifier{
		flash:  flashWindow,
		player: player,
	}
}

// ShowTransientMessage raises the fullscreen message.
func (notifier *Notifier) ShowTransientMessage(text string) {
	notifier.flash.ShowMessage(text)
}

// PlaySound plays the clip for the given sound id.
func (notifier *Notifier) PlaySound(sound engine.Sound) {
	notifier.player.Play(string(sound) + ".wav")
}
