// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadUnitDefinitions reads a unit configuration file and overrides the matching
// entries of UnitLibrary. Classes missing from the file keep their defaults.
func LoadUnitDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read unit definitions file: %w", err)
	}

	var unitDefs []UnitDefinition
	if err := json.Unmarshal(file, &unitDefs); err != nil {
		return fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	library := DefaultUnitLibrary()
	for _, def := range unitDefs {
		if _, known := library[def.Class]; !known {
			return fmt.Errorf("unit definition for unknown class %q", def.Class)
		}
		if def.Health <= 0 {
			return fmt.Errorf("unit definition %s: health must be positive", def.Class)
		}
		if def.Attack != AttackMelee && def.Attack != AttackProjectile {
			return fmt.Errorf("unit definition %s: unknown attack type %q", def.Class, def.Attack)
		}
		library[def.Class] = def
	}
	UnitLibrary = library

	log.Printf("Loaded %d unit definitions", len(unitDefs))
	return nil
}

// LoadMaskLootTable reads a loot table file and replaces MaskLootTable.
func LoadMaskLootTable(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read mask loot table file: %w", err)
	}

	var table LootTable
	if err := json.Unmarshal(file, &table); err != nil {
		return fmt.Errorf("failed to unmarshal mask loot table: %w", err)
	}

	total := 0
	for _, entry := range table.Entries {
		if !entry.Mask.Valid() {
			return fmt.Errorf("loot table entry for unknown mask %q", entry.Mask)
		}
		if entry.Weight < 0 {
			return fmt.Errorf("loot table entry %s: negative weight", entry.Mask)
		}
		total += entry.Weight
	}
	if total == 0 {
		return fmt.Errorf("mask loot table %s has no positive weights", path)
	}
	MaskLootTable = table.Entries

	log.Printf("Loaded %d mask loot entries", len(table.Entries))
	return nil
}

// ResetLibraries restores the built-in unit library and loot table.
func ResetLibraries() {
	UnitLibrary = DefaultUnitLibrary()
	MaskLootTable = DefaultMaskLootTable()
}
