// internal/event/types.go
package event

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

const (
	WaveSpawned     EventType = "WaveSpawned"     // Волна запущена
	MinionSpawned   EventType = "MinionSpawned"   // Миньон появился на линии
	MinionDied      EventType = "MinionDied"      // Миньон погиб или дошёл до базы
	MeleeHit        EventType = "MeleeHit"        // Удар в ближнем бою
	ProjectileFired EventType = "ProjectileFired" // Выпущен снаряд
	ProjectileHit   EventType = "ProjectileHit"   // Снаряд долетел
	BaseHit         EventType = "BaseHit"         // База потеряла очко здоровья
	MaskSpawned     EventType = "MaskSpawned"
	MaskClaimed     EventType = "MaskClaimed"
	MaskDelivered   EventType = "MaskDelivered"
	TowerDestroyed  EventType = "TowerDestroyed"
	GameOver        EventType = "GameOver"
)

// AllTypes lists every event the simulation emits.
var AllTypes = []EventType{
	WaveSpawned, MinionSpawned, MinionDied, MeleeHit, ProjectileFired, ProjectileHit,
	BaseHit, MaskSpawned, MaskClaimed, MaskDelivered, TowerDestroyed, GameOver,
}

// WaveData is the payload of WaveSpawned.
type WaveData struct {
	Wave int
	Tick int
}

// Death reasons carried by MinionDied.
const (
	ReasonKilled      = "killed"
	ReasonReachedBase = "reached_base"
)

// UnitData describes a minion spawn or death.
type UnitData struct {
	ID     types.EntityID
	Side   types.Side
	Lane   types.Lane
	Class  types.UnitClass
	Reason string // empty for MinionSpawned
}

// HitData is the payload of MeleeHit, ProjectileFired and ProjectileHit.
// Damage is zero for ProjectileFired, Style is empty for MeleeHit.
type HitData struct {
	Attacker types.Side
	TargetID types.EntityID
	Damage   int
	Style    defs.ProjectileStyle
	At       types.Point
}

// BaseData is the payload of BaseHit.
type BaseData struct {
	Side types.Side // side whose base lost hp
	HP   int
}

// MaskData describes a mask spawn, claim or delivery.
type MaskData struct {
	Type     types.MaskType
	Side     types.Side // empty for MaskSpawned
	MinionID types.EntityID
	At       types.Point
}

// TowerData is the payload of TowerDestroyed.
type TowerData struct {
	ID   types.EntityID
	Side types.Side
	Lane types.Lane
}
