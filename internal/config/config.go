// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 800

	// Отступ баз и героев от углов арены
	BaseOffset = 80.0

	HeroRadius = 22.0
	HeroSpeed  = 4.2

	MinionRadius       = 14.0
	MinionDefaultSpeed = 0.8

	TowerRadius = 30.0
	TowerHealth = 180
	TowerDamage = 10
	TowerRange  = 180.0
	// Башня считается повреждённой при доле здоровья не выше этой
	TowerDamagedRatio = 0.6

	MaskRadius       = 12.0
	ProjectileRadius = 4.0

	BuffHPAmount     = 60
	BuffDamageAmount = 10
	BuffSpeedFactor  = 1.4

	TypeAdvantageMultiplier = 2

	// Substitute distance for coincident points
	SeparationEpsilon = 0.1
	// Minions closer than this to their waypoint do not move
	MoveEpsilon = 0.1
	// Push-back leaves a hero exactly touching a minion; delivery accepts that contact
	DeliverySlop = 0.5

	IndicatorOffsetX = 30
	HUDTopY          = 24
	PipRadius        = 9.0
	PipSpacing       = 6.0
	TextCharWidth    = 7
)

var (
	BackgroundColor = color.RGBA{15, 23, 42, 255}
	LaneColor       = color.RGBA{51, 65, 85, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	PipEmptyColor   = color.RGBA{30, 41, 59, 255}
	HPBarBackColor  = color.RGBA{15, 23, 42, 255}
	MaskRingColor   = color.RGBA{250, 204, 21, 255}
	MaskPickupColor = color.RGBA{255, 255, 255, 255}
	TowerArrowColor = color.RGBA{253, 224, 71, 255}
	SpellColor      = color.RGBA{216, 180, 254, 255}
	ArrowColor      = color.RGBA{254, 240, 138, 255}
	DestroyedColor  = color.RGBA{71, 85, 105, 255}
	StrokeWidth     = 2.0

	// Цвета сторон: герой, миньон, башня
	HeroColors = map[string]color.RGBA{
		"Red":  {220, 38, 38, 255},
		"Blue": {37, 99, 235, 255},
	}
	MinionColors = map[string]color.RGBA{
		"Red":  {248, 113, 113, 255},
		"Blue": {96, 165, 250, 255},
	}
	TowerColors = map[string]color.RGBA{
		"Red":  {153, 27, 27, 255},
		"Blue": {30, 64, 175, 255},
	}
)
