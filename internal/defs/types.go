// internal/defs/types.go
package defs

// AttackType defines how an attack reaches its target.
type AttackType string

const (
	AttackMelee      AttackType = "MELEE"
	AttackProjectile AttackType = "PROJECTILE"
)

// ProjectileStyle tells renderers and audio which kind of shot is in flight.
type ProjectileStyle string

const (
	StyleArrow      ProjectileStyle = "ARROW"
	StyleSpell      ProjectileStyle = "SPELL"
	StyleTowerArrow ProjectileStyle = "TOWER_ARROW"
)
