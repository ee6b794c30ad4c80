// internal/defs/arena.go
package defs

import (
	"fmt"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// Опорные точки арены: базы в противоположных углах, повороты линий в двух других.
var (
	RedBase  = types.Point{X: config.BaseOffset, Y: config.ScreenHeight - config.BaseOffset}
	BlueBase = types.Point{X: config.ScreenWidth - config.BaseOffset, Y: config.BaseOffset}
	TopLeft  = types.Point{X: config.BaseOffset, Y: config.BaseOffset}
	BotRight = types.Point{X: config.ScreenWidth - config.BaseOffset, Y: config.ScreenHeight - config.BaseOffset}
)

// BaseAnchor returns the position of side's base.
func BaseAnchor(side types.Side) types.Point {
	if side == types.SideBlue {
		return BlueBase
	}
	return RedBase
}

// HeroSpawn returns where side's hero starts the match.
func HeroSpawn(side types.Side) types.Point {
	return BaseAnchor(side)
}

// Route returns the waypoints a minion of side walks along lane, ending at the enemy base.
// The returned slice is a fresh copy.
func Route(side types.Side, lane types.Lane) []types.Point {
	enemyBase := BaseAnchor(side.Opponent())
	switch lane {
	case types.LaneTop:
		return []types.Point{TopLeft, enemyBase}
	case types.LaneMid:
		return []types.Point{enemyBase}
	case types.LaneBot:
		return []types.Point{BotRight, enemyBase}
	}
	panic(fmt.Sprintf("defs: unknown lane %q", lane))
}
