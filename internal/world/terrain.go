// Package world provides the towns a hunter passes through and the terrain around them.
package world

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunter/internal/entity"
	"github.com/samdwyer/treasurehunter/internal/gamedata"
	"github.com/samdwyer/treasurehunter/internal/random"
)

// treasureTable is the uniform treasure draw. Dust means nothing to find.
var treasureTable = []entity.Treasure{entity.Crown, entity.NoTreasure, entity.Gem, entity.Trophy}

// Terrain surrounds a town. Everything but the searched flag is fixed at creation.
type Terrain struct {
	def      *gamedata.TerrainDef
	treasure entity.Treasure
	searched bool
}

// NewTerrain creates a terrain of the given kind hiding treasure.
func NewTerrain(def *gamedata.TerrainDef, treasure entity.Treasure) *Terrain {
	return &Terrain{def: def, treasure: treasure}
}

// GenerateTerrain draws a terrain and, independently, its treasure.
func GenerateTerrain(rng *random.Policy, terrains *gamedata.TerrainRegistry) *Terrain {
	def := terrains.At(rng.Pick(terrains.Count()))
	treasure := treasureTable[rng.Pick(len(treasureTable))]
	return NewTerrain(def, treasure)
}

// Name returns the terrain's display name.
func (t *Terrain) Name() string { return t.def.Name }

// RequiredItem returns the item needed to cross the terrain.
func (t *Terrain) RequiredItem() string { return t.def.Item }

// Color returns the color the terrain name is drawn in.
func (t *Terrain) Color() tcell.Color { return t.def.TCellColor() }

// Treasure returns what is hidden here.
func (t *Terrain) Treasure() entity.Treasure { return t.treasure }

// IsSearched reports whether the treasure has been claimed (or was never worth claiming).
func (t *Terrain) IsSearched() bool { return t.searched }

// MarkSearched flips the searched flag. It never flips back.
func (t *Terrain) MarkSearched() { t.searched = true }

// CanCross reports whether h carries the required item.
func (t *Terrain) CanCross(h *entity.Hunter) bool {
	return h.HasItem(t.def.Item)
}
