package component

import "github.com/hanokhaloni/MaskTheMinion-draft/internal/types"

// MatchStats is the running aggregate of a match, frozen at game over.
type MatchStats struct {
	BlueDamageDealt    int        `json:"blueDamageDealt" msgpack:"blueDamageDealt"`
	RedDamageDealt     int        `json:"redDamageDealt" msgpack:"redDamageDealt"`
	BlueMinionsSpawned int        `json:"blueMinionsSpawned" msgpack:"blueMinionsSpawned"`
	RedMinionsSpawned  int        `json:"redMinionsSpawned" msgpack:"redMinionsSpawned"`
	MatchTime          int        `json:"matchTime" msgpack:"matchTime"` // whole seconds
	Winner             types.Side `json:"winner" msgpack:"winner"`       // empty while the match runs
}

// AddDamage attributes damage that landed to the attacking side.
func (s *MatchStats) AddDamage(side types.Side, amount int) {
	if side == types.SideBlue {
		s.BlueDamageDealt += amount
	} else {
		s.RedDamageDealt += amount
	}
}

// AddSpawned counts one minion spawned for side.
func (s *MatchStats) AddSpawned(side types.Side) {
	if side == types.SideBlue {
		s.BlueMinionsSpawned++
	} else {
		s.RedMinionsSpawned++
	}
}

// DamageDealt returns the damage attributed to side so far.
func (s *MatchStats) DamageDealt(side types.Side) int {
	if side == types.SideBlue {
		return s.BlueDamageDealt
	}
	return s.RedDamageDealt
}

// MinionsSpawned returns how many minions side has spawned.
func (s *MatchStats) MinionsSpawned(side types.Side) int {
	if side == types.SideBlue {
		return s.BlueMinionsSpawned
	}
	return s.RedMinionsSpawned
}
