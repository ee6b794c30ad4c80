package app

import (
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/config"
	"github.com/hanokhaloni/MaskTheMinion-draft/internal/defs"
)

// ContentPaths names optional data files. Empty paths keep the built-in data.
type ContentPaths struct {
	Tuning string
	Units  string
	Masks  string
}

// LoadContent loads the files in paths into the definition libraries and
// returns the tuning to start games with.
func LoadContent(paths ContentPaths) (config.Tuning, error) {
	tuning := config.DefaultTuning()
	if paths.Tuning != "" {
		t, err := config.LoadTuning(paths.Tuning)
		if err != nil {
			return tuning, err
		}
		tuning = t
	}
	if paths.Units != "" {
		if err := defs.LoadUnitDefinitions(paths.Units); err != nil {
			return tuning, err
		}
	}
	if paths.Masks != "" {
		if err := defs.LoadMaskLootTable(paths.Masks); err != nil {
			return tuning, err
		}
	}
	return tuning, nil
}
