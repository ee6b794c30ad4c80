// internal/component/minion.go
package component

import (
	"fmt"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// MinionState is the lifecycle stage of a minion.
type MinionState int

const (
	MinionAlive MinionState = iota // seeking, attacking, walking
	MinionDying                    // hp depleted or base reached, death animation counting down
	MinionRemoved                  // out of the simulation
)

// Minion представляет миньона, идущего по линии к вражеской базе.
type Minion struct {
	ID types.EntityID
	Body
	Side  types.Side
	Lane  types.Lane
	Class types.UnitClass

	HP     int
	MaxHP  int
	Damage int
	Range  float64
	Speed  float64
	Attack defs.AttackType
	Style  defs.ProjectileStyle

	Waypoints     []types.Point
	WaypointIndex int
	Cooldown      int

	HasMask    bool // was ever empowered by a delivered mask
	Active     bool
	DeathTimer int
	Removed    bool
}

// NewMinion creates an active minion of class at (x, y) walking the lane route of side.
func NewMinion(id types.EntityID, x, y float64, side types.Side, class types.UnitClass, lane types.Lane) *Minion {
	m := &Minion{
		ID:        id,
		Body:      Body{X: x, Y: y, Radius: config.MinionRadius},
		Side:      side,
		Lane:      lane,
		Speed:     config.MinionDefaultSpeed,
		Waypoints: defs.Route(side, lane),
		Active:    true,
	}
	m.InitStats(class)
	return m
}

// InitStats resets the whole stat block to the base stats of class, hp included.
func (m *Minion) InitStats(class types.UnitClass) {
	def := defs.MustUnit(class)
	m.Class = class
	m.HP = def.Health
	m.MaxHP = def.Health
	m.Damage = def.Damage
	m.Range = def.Range
	m.Speed = def.Speed
	m.Attack = def.Attack
	m.Style = def.Style
}

// ApplyMask applies a delivered mask. Conversions re-initialise the minion as the new
// class; buffs modify the current stats and keep the class.
func (m *Minion) ApplyMask(mask types.MaskType) {
	if class, ok := mask.ConversionClass(); ok {
		m.InitStats(class)
		m.HasMask = true
		return
	}
	switch mask {
	case types.MaskBuffHP:
		m.HP += config.BuffHPAmount
		m.MaxHP += config.BuffHPAmount
	case types.MaskBuffDamage:
		m.Damage += config.BuffDamageAmount
	case types.MaskBuffSpeed:
		m.Speed *= config.BuffSpeedFactor
	default:
		panic(fmt.Sprintf("component: unknown mask type %q", mask))
	}
	m.HasMask = true
}

// State returns the lifecycle stage.
func (m *Minion) State() MinionState {
	switch {
	case m.Removed:
		return MinionRemoved
	case !m.Active, m.HP <= 0:
		return MinionDying
	}
	return MinionAlive
}

// Kill forces the minion out of play, hp zeroed.
func (m *Minion) Kill() {
	m.HP = 0
	m.Active = false
}

// CurrentWaypoint returns the waypoint the minion is walking to.
func (m *Minion) CurrentWaypoint() types.Point {
	return m.Waypoints[m.WaypointIndex]
}

// AtFinalWaypoint reports whether the route has no further waypoints.
func (m *Minion) AtFinalWaypoint() bool {
	return m.WaypointIndex >= len(m.Waypoints)-1
}

func (m *Minion) TargetID() types.EntityID { return m.ID }
func (m *Minion) Kind() TargetKind         { return KindMinion }
func (m *Minion) Position() types.Point    { return m.Pos() }
func (m *Minion) Health() int              { return m.HP }
func (m *Minion) Alive() bool              { return m.Active && m.HP > 0 }
func (m *Minion) TakeDamage(amount int)    { m.HP -= amount }

func (m *Minion) UnitClass() (types.UnitClass, bool) {
	return m.Class, true
}
