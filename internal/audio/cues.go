package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a short synthesised sound played for a match event.
type Cue int

const (
	CueSword Cue = iota
	CueArrow
	CueSpell
	CueDeath
	CuePickup
	CueWave
	CueBaseHit
	CueCrumble
	CueVictory
)

func (c Cue) String() string {
	switch c {
	case CueSword:
		return "sword"
	case CueArrow:
		return "arrow"
	case CueSpell:
		return "spell"
	case CueDeath:
		return "death"
	case CuePickup:
		return "pickup"
	case CueWave:
		return "wave"
	case CueBaseHit:
		return "base_hit"
	case CueCrumble:
		return "crumble"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Cues lists every cue.
var Cues = []Cue{CueSword, CueArrow, CueSpell, CueDeath, CuePickup, CueWave, CueBaseHit, CueCrumble, CueVictory}

// NewCue builds a fresh streamer for c at the given volume (0..1).
func NewCue(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueSword:
		d := 90 * time.Millisecond
		s = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 2*time.Millisecond, 70*time.Millisecond, rate), 0.5),
			newVolume(NewEnvelope(NewGlide(1400, -6000, d, WaveSaw, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.3),
		)
	case CueArrow:
		d := 120 * time.Millisecond
		s = NewEnvelope(NewGlide(900, -3000, d, WaveSine, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate)
	case CueSpell:
		d := 250 * time.Millisecond
		s = beep.Mix(
			newVolume(NewEnvelope(NewGlide(440, 1200, d, WaveSine, rate), d, 20*time.Millisecond, 150*time.Millisecond, rate), 0.6),
			newVolume(NewEnvelope(NewGlide(660, 1800, d, WaveSine, rate), d, 20*time.Millisecond, 150*time.Millisecond, rate), 0.3),
		)
	case CueDeath:
		d := 200 * time.Millisecond
		s = NewEnvelope(NewGlide(320, -1200, d, WaveSquare, rate), d, 5*time.Millisecond, 150*time.Millisecond, rate)
	case CuePickup:
		n1 := 70 * time.Millisecond
		n2 := 110 * time.Millisecond
		s = beep.Seq(
			NewEnvelope(NewOscillator(987.77, n1, WaveSquare, rate), n1, 2*time.Millisecond, 40*time.Millisecond, rate),
			NewEnvelope(NewOscillator(1318.51, n2, WaveSquare, rate), n2, 2*time.Millisecond, 90*time.Millisecond, rate),
		)
	case CueWave:
		d := 600 * time.Millisecond
		s = beep.Mix(
			newVolume(NewEnvelope(NewOscillator(196, d, WaveSaw, rate), d, 80*time.Millisecond, 300*time.Millisecond, rate), 0.5),
			newVolume(NewEnvelope(NewOscillator(293.66, d, WaveSaw, rate), d, 80*time.Millisecond, 300*time.Millisecond, rate), 0.3),
		)
	case CueBaseHit:
		d := 400 * time.Millisecond
		s = beep.Mix(
			newVolume(NewEnvelope(NewGlide(110, -150, d, WaveSquare, rate), d, 5*time.Millisecond, 300*time.Millisecond, rate), 0.6),
			newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 5*time.Millisecond, 200*time.Millisecond, rate), 0.3),
		)
	case CueCrumble:
		d := 500 * time.Millisecond
		s = NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 10*time.Millisecond, 450*time.Millisecond, rate)
	case CueVictory:
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, 0, len(notes))
		for i, f := range notes {
			d := 150 * time.Millisecond
			if i == len(notes)-1 {
				d = 500 * time.Millisecond
			}
			parts = append(parts, NewEnvelope(NewOscillator(f, d, WaveSquare, rate), d, 5*time.Millisecond, d/2, rate))
		}
		s = beep.Seq(parts...)
	default:
		return nil
	}
	return newVolume(s, volume)
}
