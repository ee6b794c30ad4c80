// internal/defs/units.go
package defs

import (
	"fmt"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// UnitDefinition holds the base stat block of a minion class.
type UnitDefinition struct {
	Class  types.UnitClass `json:"class"`
	Health int             `json:"health"`
	Damage int             `json:"damage"`
	Range  float64         `json:"range"`
	Speed  float64         `json:"speed"`
	Attack AttackType      `json:"attack"`
	Style  ProjectileStyle `json:"style,omitempty"`
}

// UnitLibrary is the library of unit definitions, keyed by class.
var UnitLibrary = DefaultUnitLibrary()

// DefaultUnitLibrary returns the stat blocks the game ships with.
func DefaultUnitLibrary() map[types.UnitClass]UnitDefinition {
	return map[types.UnitClass]UnitDefinition{
		types.ClassFighter: {Class: types.ClassFighter, Health: 80, Damage: 15, Range: 45, Speed: 1.0, Attack: AttackMelee},
		types.ClassMage:    {Class: types.ClassMage, Health: 45, Damage: 14, Range: 170, Speed: 0.8, Attack: AttackProjectile, Style: StyleSpell},
		types.ClassArcher:  {Class: types.ClassArcher, Health: 35, Damage: 11, Range: 250, Speed: 0.9, Attack: AttackProjectile, Style: StyleArrow},
	}
}

// MustUnit returns the definition of class. An unknown class is a programming
// error and panics.
func MustUnit(class types.UnitClass) UnitDefinition {
	def, ok := UnitLibrary[class]
	if !ok {
		panic(fmt.Sprintf("defs: no unit definition for class %q", class))
	}
	return def
}
