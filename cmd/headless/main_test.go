package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/app"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/snapshot"
)

func TestPlayOutRecordsFrames(t *testing.T) {
	var buf bytes.Buffer
	w := snapshot.NewWriter(&buf)
	g := app.NewGame(app.WithSeed(5), app.WithLogger(log.New(io.Discard, "", 0)))

	_, over, err := playOut(g, 120, 10, w)
	if err != nil {
		t.Fatalf("playOut: %v", err)
	}
	if over {
		t.Fatalf("Expected the match to still run after 120 ticks")
	}
	if w.Frames() != 12 {
		t.Errorf("frames = %d, want 12", w.Frames())
	}

	r := snapshot.NewReader(&buf)
	last := 0
	for {
		f, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		if f.Header.Tick <= last {
			t.Errorf("Expected increasing ticks, got %d after %d", f.Header.Tick, last)
		}
		last = f.Header.Tick
	}
	if last != 120 {
		t.Errorf("last tick = %d, want 120", last)
	}
}

func TestPlayOutIsDeterministic(t *testing.T) {
	play := func() snapshot.Frame {
		g := app.NewGame(app.WithSeed(9), app.WithLogger(log.New(io.Discard, "", 0)))
		if _, _, err := playOut(g, 1200, 1, nil); err != nil {
			t.Fatalf("playOut: %v", err)
		}
		return g.Snapshot()
	}
	a, b := play(), play()
	ea, _ := snapshot.Encode(a)
	eb, _ := snapshot.Encode(b)
	if !bytes.Equal(ea, eb) {
		t.Errorf("Expected identical frames for the same seed")
	}
}
