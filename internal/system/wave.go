// internal/system/wave.go
package system

import (
	"log"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/component"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/entity"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/interfaces"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// WaveSystem отсчитывает время до волны и выпускает миньонов на все линии.
// Миньоны одной линии выходят с шагом WaveStagger тиков.
type WaveSystem struct {
	world           *entity.World
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
	logger          *log.Logger

	timer int
	waves int
}

func NewWaveSystem(world *entity.World, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, logger *log.Logger) *WaveSystem {
	return &WaveSystem{
		world:           world,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		logger:          logger,
		timer:           gameContext.Tuning().FirstWaveDelay,
	}
}

// Update counts the timer down and triggers a wave when it runs out.
func (s *WaveSystem) Update() {
	s.timer--
	if s.timer > 0 {
		return
	}
	s.spawnWave()
	s.timer = s.gameContext.Tuning().WaveInterval
}

// Timer returns the ticks left until the next wave.
func (s *WaveSystem) Timer() int {
	return s.timer
}

// Waves returns how many waves were triggered.
func (s *WaveSystem) Waves() int {
	return s.waves
}

func (s *WaveSystem) spawnWave() {
	tuning := s.gameContext.Tuning()
	now := s.gameContext.MatchTicks()
	s.waves++

	for _, lane := range types.Lanes {
		for i := 0; i < tuning.MinionsPerLane; i++ {
			s.gameContext.Schedule(now+i*tuning.WaveStagger, func() {
				if s.gameContext.IsOver() {
					return
				}
				s.spawnMinion(types.SideBlue, lane)
				s.spawnMinion(types.SideRed, lane)
			})
		}
	}

	s.logger.Printf("Wave %d spawned at tick %d", s.waves, now)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveData{Wave: s.waves, Tick: now},
	})
}

func (s *WaveSystem) spawnMinion(side types.Side, lane types.Lane) {
	at := defs.BaseAnchor(side)
	m := component.NewMinion(s.world.NewEntity(), at.X, at.Y, side, types.ClassFighter, lane)
	s.world.AddMinion(m)
	s.gameContext.Stats().AddSpawned(side)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MinionSpawned,
		Data: event.UnitData{ID: m.ID, Side: side, Lane: lane, Class: m.Class},
	})
}
