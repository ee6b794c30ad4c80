// internal/types/types.go
package types

import "fmt"

// EntityID — уникальный идентификатор сущности в мире.
type EntityID uint64

// Side identifies one of the two competing teams.
type Side string

const (
	SideRed  Side = "Red"
	SideBlue Side = "Blue"
)

// Sides lists both teams in the order the engine processes them.
var Sides = []Side{SideRed, SideBlue}

// Opponent returns the other team.
func (s Side) Opponent() Side {
	if s == SideRed {
		return SideBlue
	}
	return SideRed
}

// Lane is one of the fixed routes minions walk from base to base.
type Lane string

const (
	LaneTop Lane = "TOP"
	LaneMid Lane = "MID"
	LaneBot Lane = "BOT"
)

// Lanes lists every lane in spawn order.
var Lanes = []Lane{LaneTop, LaneMid, LaneBot}

// UnitClass is the combat class of a minion.
type UnitClass string

const (
	ClassFighter UnitClass = "FIGHTER"
	ClassMage    UnitClass = "MAGE"
	ClassArcher  UnitClass = "ARCHER"
)

// Beats reports whether c has the type advantage over other:
// Fighter beats Mage, Mage beats Archer, Archer beats Fighter.
func (c UnitClass) Beats(other UnitClass) bool {
	switch c {
	case ClassFighter:
		return other == ClassMage
	case ClassMage:
		return other == ClassArcher
	case ClassArcher:
		return other == ClassFighter
	}
	return false
}

// IsRanged reports whether the class attacks through projectiles.
func (c UnitClass) IsRanged() bool {
	return c == ClassMage || c == ClassArcher
}

// MaskType is the kind of pickup a hero can carry and deliver.
type MaskType string

const (
	MaskConvertMage    MaskType = "CONVERT_MAGE"
	MaskConvertFighter MaskType = "CONVERT_FIGHTER"
	MaskConvertArcher  MaskType = "CONVERT_ARCHER"
	MaskBuffHP         MaskType = "BUFF_HP"
	MaskBuffDamage     MaskType = "BUFF_DAMAGE"
	MaskBuffSpeed      MaskType = "BUFF_SPEED"
)

// MaskTypes lists every mask type in declaration order.
var MaskTypes = []MaskType{
	MaskConvertMage,
	MaskConvertFighter,
	MaskConvertArcher,
	MaskBuffHP,
	MaskBuffDamage,
	MaskBuffSpeed,
}

// ConversionClass returns the class a conversion mask turns a minion into.
// ok is false for buff masks.
func (m MaskType) ConversionClass() (class UnitClass, ok bool) {
	switch m {
	case MaskConvertMage:
		return ClassMage, true
	case MaskConvertFighter:
		return ClassFighter, true
	case MaskConvertArcher:
		return ClassArcher, true
	}
	return "", false
}

// Label returns a short human readable name used by HUDs.
func (m MaskType) Label() string {
	switch m {
	case MaskConvertMage:
		return "Mage mask"
	case MaskConvertFighter:
		return "Fighter mask"
	case MaskConvertArcher:
		return "Archer mask"
	case MaskBuffHP:
		return "+HP"
	case MaskBuffDamage:
		return "+DMG"
	case MaskBuffSpeed:
		return "+SPD"
	}
	return fmt.Sprintf("mask(%s)", string(m))
}

// Valid reports whether m is one of the known mask types.
func (m MaskType) Valid() bool {
	for _, t := range MaskTypes {
		if t == m {
			return true
		}
	}
	return false
}

// Point is a position on the arena.
type Point struct {
	X, Y float64
}
