package system

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/utils"
)

// MaskSystem drops a random mask on the field every MaskInterval ticks.
type MaskSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
}

func NewMaskSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *MaskSystem {
	return &MaskSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		rng:             rng,
	}
}

func (s *MaskSystem) Update() {
	if s.gameContext.MatchTicks()%s.gameContext.Tuning().MaskInterval != 0 {
		return
	}
	s.Spawn()
}

// Spawn places one mask drawn from the loot table inside the spawn area.
func (s *MaskSystem) Spawn() *component.Mask {
	margin := s.gameContext.Tuning().MaskSpawnMargin
	maskType := s.rng.ChooseWeighted(defs.MaskLootTable)
	x := s.rng.Between(margin, config.ScreenWidth-margin)
	y := s.rng.Between(margin, config.ScreenHeight-margin)

	mask := component.NewMask(s.world.NewEntity(), x, y, maskType)
	s.world.AddMask(mask)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MaskSpawned,
		Data: event.MaskData{Type: maskType, At: mask.Pos()},
	})
	return mask
}
