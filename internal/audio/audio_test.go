package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
)

func TestOscillatorStopsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 80)
	n, ok := osc.Stream(samples)
	if n != 50 || !ok {
		t.Fatalf("Stream() = %d, %v; want 50, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, samples[i][0])
		}
	}
	if n, ok := osc.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained oscillator, got %d, %v", n, ok)
	}
}

func TestEnvelopeShapesAttack(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected full volume during sustain, got %f", samples[50][0])
	}
}

func TestEveryCueProducesSound(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, cue := range Cues {
		s := NewCue(cue, rate, 0.5)
		if s == nil {
			t.Fatalf("NewCue(%s) = nil", cue)
		}
		buf := make([][2]float64, 256)
		total := 0
		for {
			n, ok := s.Stream(buf)
			total += n
			if !ok || total > int(rate) {
				break
			}
		}
		if total == 0 {
			t.Errorf("cue %s streamed no samples", cue)
		}
		if total > int(rate) {
			t.Errorf("cue %s longer than a second", cue)
		}
	}
}

func TestCueForEvents(t *testing.T) {
	tests := []struct {
		name string
		e    event.Event
		want Cue
	}{
		{"melee", event.Event{Type: event.MeleeHit}, CueSword},
		{"arrow", event.Event{Type: event.ProjectileFired, Data: event.HitData{Style: defs.StyleArrow}}, CueArrow},
		{"tower arrow", event.Event{Type: event.ProjectileFired, Data: event.HitData{Style: defs.StyleTowerArrow}}, CueArrow},
		{"spell", event.Event{Type: event.ProjectileFired, Data: event.HitData{Style: defs.StyleSpell}}, CueSpell},
		{"death", event.Event{Type: event.MinionDied}, CueDeath},
		{"claim", event.Event{Type: event.MaskClaimed}, CuePickup},
		{"deliver", event.Event{Type: event.MaskDelivered}, CuePickup},
		{"wave", event.Event{Type: event.WaveSpawned}, CueWave},
		{"base", event.Event{Type: event.BaseHit}, CueBaseHit},
		{"tower", event.Event{Type: event.TowerDestroyed}, CueCrumble},
		{"over", event.Event{Type: event.GameOver}, CueVictory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.e)
			if !ok || got != tt.want {
				t.Errorf("CueFor() = %s, %v; want %s", got, ok, tt.want)
			}
		})
	}

	if _, ok := CueFor(event.Event{Type: event.MaskSpawned}); ok {
		t.Error("Expected no cue for MaskSpawned")
	}
}

func TestListenerPlaysThroughPlayer(t *testing.T) {
	p := NewPlayer(0.5)
	d := event.NewDispatcher()
	NewListener(p).Subscribe(d)

	d.Dispatch(event.Event{Type: event.MeleeHit})
	d.Dispatch(event.Event{Type: event.MeleeHit})
	d.Dispatch(event.Event{Type: event.GameOver})

	if p.Played(CueSword) != 2 || p.Played(CueVictory) != 1 {
		t.Errorf("Expected 2 sword and 1 victory cue, got %d and %d", p.Played(CueSword), p.Played(CueVictory))
	}

	p.SetMuted(true)
	if !p.Muted() {
		t.Fatal("Expected player to report muted")
	}
	d.Dispatch(event.Event{Type: event.MeleeHit})
	if p.Played(CueSword) != 2 {
		t.Errorf("Expected muted player to ignore cues, got %d", p.Played(CueSword))
	}
}
