package component

import "github.com/hanokhaloni/MaskTheMinion-draft/internal/types"

// TargetKind discriminates the entities a minion or tower can attack.
type TargetKind int

const (
	KindMinion TargetKind = iota
	KindTower
)

func (k TargetKind) String() string {
	if k == KindTower {
		return "tower"
	}
	return "minion"
}

// Target is the capability shared by everything that can be attacked.
// Targeting and damage code work only against this interface.
type Target interface {
	TargetID() types.EntityID
	Kind() TargetKind
	Position() types.Point
	Health() int
	Alive() bool
	TakeDamage(amount int)
	// UnitClass returns the class for type-advantage checks; ok is false for towers.
	UnitClass() (class types.UnitClass, ok bool)
}
