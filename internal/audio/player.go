package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// All clips are resampled to one mixer rate so the speaker is initialized
// exactly once.
const mixRate beep.SampleRate = 44100

// Player decodes short WAV clips and plays them through the system speaker.
// Playback problems are logged and swallowed; an alert must never abort a
// running countdown.
type Player struct {
	load     func(fileName string) ([]byte, error)
	initOnce sync.Once
	initErr  error
}

// New creates a Player that reads clips through load.
func New(load func(fileName string) ([]byte, error)) *Player {
	return &Player{load: load}
}

// Play plays the named clip asynchronously.
func (player *Player) Play(fileName string) {
	data, err := player.load(fileName)
	if err != nil {
		log.Printf("sound %s unavailable: %v", fileName, err)
		return
	}

	streamer, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("decode sound %s: %v", fileName, err)
		return
	}

	player.initOnce.Do(func() {
		player.initErr = speaker.Init(mixRate, mixRate.N(time.Second/10))
	})
	if player.initErr != nil {
		log.Printf("audio device unavailable: %v", player.initErr)
		_ = streamer.Close()
		return
	}

	clip := beep.Resample(4, format.SampleRate, mixRate, streamer)
	speaker.Play(beep.Seq(clip, beep.Callback(func() {
		_ = streamer.Close()
	})))
}
