// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/types"
)

// PRNGService draws mask types and spawn points. A fixed seed replays the same
// pickups in the same places.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService seeds a generator; seed 0 takes the clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Between returns a uniform value in [min, max).
func (s *PRNGService) Between(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// ChooseWeighted draws a mask with probability weight/total. The table must
// have a positive total weight, which LoadMaskLootTable guarantees.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) types.MaskType {
	total := 0
	for _, entry := range entries {
		total += entry.Weight
	}

	r := s.rng.Intn(total)
	for _, entry := range entries {
		if r < entry.Weight {
			return entry.Mask
		}
		r -= entry.Weight
	}
	panic("utils: loot table weights changed during a draw")
}
