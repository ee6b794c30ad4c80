// internal/system/state.go
package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// StateSystem решает, закончен ли матч.
type StateSystem struct {
	gameContext interfaces.GameContext
}

func NewStateSystem(gameContext interfaces.GameContext) *StateSystem {
	return &StateSystem{gameContext: gameContext}
}

// Winner returns the winning side once a base is down. Blue's base is checked
// first, so simultaneous depletion goes to Red.
func (s *StateSystem) Winner() (types.Side, bool) {
	if s.gameContext.BaseHP(types.SideBlue) <= 0 {
		return types.SideRed, true
	}
	if s.gameContext.BaseHP(types.SideRed) <= 0 {
		return types.SideBlue, true
	}
	return "", false
}
