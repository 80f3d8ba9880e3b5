package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue frequencies and lengths
const (
	clearFreq    = 660
	tetrisFreq   = 880
	tetrisFreq2  = 1320
	gameOverFreq = 440

	shortCue = 80 * time.Millisecond
	longCue  = 160 * time.Millisecond
)

// Player synthesizes short feedback cues. A zero Player is silent;
// cues only sound after a successful Init.
type Player struct {
	enabled bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker. Failure is returned so the caller can log
// it; the player stays silent and every cue remains a no-op.
func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.enabled = true
	return nil
}

// ClearCue plays the row-clear sound; a tetris gets a two-note rise.
func (p *Player) ClearCue(rows int) {
	if rows == 4 {
		p.playSequence(
			tone(tetrisFreq, shortCue),
			tone(tetrisFreq2, longCue),
		)
		return
	}
	p.playSequence(tone(clearFreq, shortCue))
}

// GameOverCue plays a falling two-note sound.
func (p *Player) GameOverCue() {
	p.playSequence(
		tone(gameOverFreq, longCue),
		tone(gameOverFreq/2, longCue),
	)
}

func (p *Player) playSequence(streamers ...beep.Streamer) {
	if !p.enabled {
		return
	}
	speaker.Play(beep.Seq(streamers...))
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
