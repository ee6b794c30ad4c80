// internal/interfaces/game_context.go
package interfaces

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// GameContext is the match state systems share with the orchestrator.
type GameContext interface {
	Tuning() config.Tuning
	MatchTicks() int
	IsOver() bool
	Stats() *component.MatchStats
	// DamageBase removes one hp from side's base, floored at 0, and returns what is left.
	DamageBase(side types.Side) int
	BaseHP(side types.Side) int
	// Schedule defers action to an absolute tick.
	Schedule(tick int, action func())
}
