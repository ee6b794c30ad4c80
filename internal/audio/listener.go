package audio

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
)

// Sink receives cues.
type Sink interface {
	Play(cue Cue)
}

// Listener turns engine events into cues.
type Listener struct {
	sink Sink
}

func NewListener(sink Sink) *Listener {
	return &Listener{sink: sink}
}

// Subscribe registers the listener for every event it has a cue for.
func (l *Listener) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(l,
		event.MeleeHit, event.ProjectileFired, event.MinionDied,
		event.MaskClaimed, event.MaskDelivered, event.WaveSpawned,
		event.BaseHit, event.TowerDestroyed, event.GameOver,
	)
}

func (l *Listener) OnEvent(e event.Event) {
	if cue, ok := CueFor(e); ok {
		l.sink.Play(cue)
	}
}

// CueFor maps an event to its cue.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.MeleeHit:
		return CueSword, true
	case event.ProjectileFired:
		if hit, ok := e.Data.(event.HitData); ok && hit.Style == defs.StyleSpell {
			return CueSpell, true
		}
		return CueArrow, true
	case event.MinionDied:
		return CueDeath, true
	case event.MaskClaimed, event.MaskDelivered:
		return CuePickup, true
	case event.WaveSpawned:
		return CueWave, true
	case event.BaseHit:
		return CueBaseHit, true
	case event.TowerDestroyed:
		return CueCrumble, true
	case event.GameOver:
		return CueVictory, true
	}
	return 0, false
}
