// component/tower.go
package component

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// TowerCondition is what renderers draw for a tower.
type TowerCondition int

const (
	TowerHealthy TowerCondition = iota
	TowerDamaged
	TowerDestroyed
)

// Tower — оборонительное сооружение стороны на линии. Разрушенная башня
// остаётся в мире, но больше не стреляет и не может быть целью.
type Tower struct {
	ID types.EntityID
	Body
	Side     types.Side
	Lane     types.Lane
	HP       int
	MaxHP    int
	Damage   int
	Range    float64
	Cooldown int
}

// NewTower creates a tower from its placement and definition.
func NewTower(id types.EntityID, p defs.TowerPlacement, def defs.TowerDefinition) *Tower {
	return &Tower{
		ID:     id,
		Body:   Body{X: p.At.X, Y: p.At.Y, Radius: def.Radius},
		Side:   p.Side,
		Lane:   p.Lane,
		HP:     def.Health,
		MaxHP:  def.Health,
		Damage: def.Damage,
		Range:  def.Range,
	}
}

// Condition buckets the tower health for rendering.
func (t *Tower) Condition() TowerCondition {
	if t.HP <= 0 {
		return TowerDestroyed
	}
	if float64(t.HP)/float64(t.MaxHP) <= config.TowerDamagedRatio {
		return TowerDamaged
	}
	return TowerHealthy
}

func (t *Tower) TargetID() types.EntityID { return t.ID }
func (t *Tower) Kind() TargetKind         { return KindTower }
func (t *Tower) Position() types.Point    { return t.Pos() }
func (t *Tower) Health() int              { return t.HP }
func (t *Tower) Alive() bool              { return t.HP > 0 }
func (t *Tower) TakeDamage(amount int)    { t.HP -= amount }

func (t *Tower) UnitClass() (types.UnitClass, bool) {
	return "", false
}
