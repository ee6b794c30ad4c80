// internal/defs/towers.go
package defs

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// TowerDefinition holds the static data of a lane tower.
type TowerDefinition struct {
	Health int     `json:"health"`
	Damage int     `json:"damage"`
	Range  float64 `json:"range"`
	Radius float64 `json:"radius"`
}

// TowerPlacement puts one tower of a side on a lane.
type TowerPlacement struct {
	Side types.Side
	Lane types.Lane
	At   types.Point
}

// DefaultTower is the stat block every tower starts with.
var DefaultTower = TowerDefinition{
	Health: config.TowerHealth,
	Damage: config.TowerDamage,
	Range:  config.TowerRange,
	Radius: config.TowerRadius,
}

// TowerPlacements lists the towers created at match start, mid lane first.
var TowerPlacements = []TowerPlacement{
	{Side: types.SideRed, Lane: types.LaneMid, At: types.Point{X: 350, Y: 566}},
	{Side: types.SideBlue, Lane: types.LaneMid, At: types.Point{X: config.ScreenWidth - 350, Y: 233}},
	{Side: types.SideRed, Lane: types.LaneTop, At: types.Point{X: 80, Y: 400}},
	{Side: types.SideBlue, Lane: types.LaneTop, At: types.Point{X: 400, Y: 80}},
	{Side: types.SideRed, Lane: types.LaneBot, At: types.Point{X: 800, Y: 720}},
	{Side: types.SideBlue, Lane: types.LaneBot, At: types.Point{X: 1120, Y: 400}},
}
