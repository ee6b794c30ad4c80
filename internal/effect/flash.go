// internal/effect/flash.go
package effect

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/event"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// DamageFlash указывает, что сущность должна быть отрисована цветом урона.
type DamageFlash struct {
	Timer    int // Сколько тиков эффект уже активен
	Duration int // Общая продолжительность эффекта
}

// Tracker отслеживает вспышки урона по событиям попаданий.
// Работает в том же потоке, что и тики, поэтому без блокировок.
type Tracker struct {
	flashes  map[types.EntityID]*DamageFlash
	duration int
}

// NewTracker создает трекер со вспышками длиной duration тиков.
func NewTracker(duration int) *Tracker {
	return &Tracker{
		flashes:  make(map[types.EntityID]*DamageFlash),
		duration: duration,
	}
}

// Subscribe подписывает трекер на попадания.
func (t *Tracker) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(t, event.MeleeHit, event.ProjectileHit)
}

func (t *Tracker) OnEvent(e event.Event) {
	hit, ok := e.Data.(event.HitData)
	if !ok || t.duration <= 0 {
		return
	}
	// Повторное попадание перезапускает вспышку
	t.flashes[hit.TargetID] = &DamageFlash{Duration: t.duration}
}

// Update продвигает таймеры на один тик и удаляет завершившиеся вспышки.
func (t *Tracker) Update() {
	for id, flash := range t.flashes {
		flash.Timer++
		if flash.Timer >= flash.Duration {
			delete(t.flashes, id)
		}
	}
}

// Intensity returns 1 right after a hit, falling to 0 when the flash ends.
func (t *Tracker) Intensity(id types.EntityID) float64 {
	flash, ok := t.flashes[id]
	if !ok {
		return 0
	}
	return 1 - float64(flash.Timer)/float64(flash.Duration)
}

// Len returns the number of running flashes.
func (t *Tracker) Len() int {
	return len(t.flashes)
}
