package state

import (
	"log"

	"golang.org/x/image/font"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/audio"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
)

// Session holds what survives between matches of one window.
type Session struct {
	Tuning   config.Tuning
	Seed     int64
	Logger   *log.Logger
	Audio    *audio.Player // nil plays nothing
	FontFace font.Face
}

// NewGame starts a fresh match wired to the session's audio. Each hook may
// subscribe to the match events before the first tick.
func (s *Session) NewGame(hooks ...func(*event.Dispatcher)) *app.Game {
	d := event.NewDispatcher()
	if s.Audio != nil {
		audio.NewListener(s.Audio).Subscribe(d)
	}
	for _, hook := range hooks {
		hook(d)
	}
	opts := []app.Option{
		app.WithTuning(s.Tuning),
		app.WithSeed(s.Seed),
		app.WithDispatcher(d),
	}
	if s.Logger != nil {
		opts = append(opts, app.WithLogger(s.Logger))
	}
	return app.NewGame(opts...)
}

// ToggleMute flips the audio mute flag and reports the new value.
func (s *Session) ToggleMute() bool {
	if s.Audio == nil {
		return true
	}
	muted := !s.Audio.Muted()
	s.Audio.SetMuted(muted)
	return muted
}
