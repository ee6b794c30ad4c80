// internal/defs/loot_tables.go
package defs

import "github.com/hanokhaloni/MaskTheMinion-draft/internal/types"

// LootEntry представляет одну запись в таблице выпадения масок.
// Weight - ее "вес" или относительный шанс выпадения.
type LootEntry struct {
	Mask   types.MaskType `json:"mask"`
	Weight int            `json:"weight"`
}

// LootTable определяет полный список возможных масок для выпадения.
type LootTable struct {
	Entries []LootEntry `json:"entries"`
}

// MaskLootTable is the weighted pool the spawner draws pickups from.
var MaskLootTable = DefaultMaskLootTable()

// DefaultMaskLootTable makes the fighter conversion rare, every other mask equally common.
func DefaultMaskLootTable() []LootEntry {
	entries := make([]LootEntry, 0, len(types.MaskTypes))
	for _, m := range types.MaskTypes {
		weight := 10
		if m == types.MaskConvertFighter {
			weight = 2
		}
		entries = append(entries, LootEntry{Mask: m, Weight: weight})
	}
	return entries
}
