package component

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/input"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Hero is a player-controlled courier. It never fights; it carries at most one
// mask from the field to a friendly minion.
type Hero struct {
	ID types.EntityID
	Body
	Side        types.Side
	Speed       float64
	CurrentMask *types.MaskType
	Keys        input.State
}

// NewHero creates side's hero at its spawn point.
func NewHero(id types.EntityID, side types.Side, spawn types.Point) *Hero {
	return &Hero{
		ID:    id,
		Body:  Body{X: spawn.X, Y: spawn.Y, Radius: config.HeroRadius},
		Side:  side,
		Speed: config.HeroSpeed,
		Keys:  input.State{},
	}
}

// Carrying reports whether the hero holds a mask.
func (h *Hero) Carrying() bool {
	return h.CurrentMask != nil
}

// Carry stores a claimed mask.
func (h *Hero) Carry(m types.MaskType) {
	h.CurrentMask = &m
}

// Drop clears the carried mask and returns it.
func (h *Hero) Drop() types.MaskType {
	m := *h.CurrentMask
	h.CurrentMask = nil
	return m
}
