package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
)

// ttyKey maps a terminal key to a movement key.
func ttyKey(k tcell.Key, r rune) (input.Key, bool) {
	switch k {
	case tcell.KeyUp:
		return input.KeyArrowUp, true
	case tcell.KeyDown:
		return input.KeyArrowDown, true
	case tcell.KeyLeft:
		return input.KeyArrowLeft, true
	case tcell.KeyRight:
		return input.KeyArrowRight, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return input.KeyW, true
		case 'a', 'A':
			return input.KeyA, true
		case 's', 'S':
			return input.KeyS, true
		case 'd', 'D':
			return input.KeyD, true
		}
	}
	return "", false
}

// heldKeys returns the keys seen within holdTimeout of now and forgets the rest.
func heldKeys(held map[input.Key]time.Time, now time.Time) input.State {
	s := make(input.State, len(held))
	for k, at := range held {
		if now.Sub(at) < holdTimeout {
			s[k] = true
		} else {
			delete(held, k)
		}
	}
	return s
}
