package gamedata

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode is returned when a mode name or key matches nothing in modes.json.
	ErrUnknownMode = errors.New("unknown game mode")
	// ErrUnknownItem is returned when an item matches nothing in items.json.
	ErrUnknownItem = errors.New("unknown item")
)

// TerrainRegistry holds the terrain table in its fixed draw order.
type TerrainRegistry struct {
	terrains []TerrainDef
}

// NewTerrainRegistry creates a registry from loaded terrain definitions.
func NewTerrainRegistry(terrains []TerrainDef) *TerrainRegistry {
	return &TerrainRegistry{terrains: terrains}
}

// At returns the terrain at index i of the draw order.
func (r *TerrainRegistry) At(i int) *TerrainDef {
	if i < 0 || i >= len(r.terrains) {
		return nil
	}
	return &r.terrains[i]
}

// GetByID returns the terrain with the given ID, or nil if not found.
func (r *TerrainRegistry) GetByID(id string) *TerrainDef {
	for i := range r.terrains {
		if r.terrains[i].ID == id {
			return &r.terrains[i]
		}
	}
	return nil
}

// All returns all terrain definitions.
func (r *TerrainRegistry) All() []TerrainDef {
	return r.terrains
}

// Count returns the number of terrains.
func (r *TerrainRegistry) Count() int {
	return len(r.terrains)
}

// ItemRegistry holds the shop catalogue.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// GetByID looks an item up case-insensitively.
func (r *ItemRegistry) GetByID(id string) (*ItemDef, error) {
	item := r.items[strings.ToLower(strings.TrimSpace(id))]
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return item, nil
}

// ForMode returns the items stocked under the given mode, in catalogue order.
func (r *ItemRegistry) ForMode(mode *ModeDef) []ItemDef {
	stocked := make([]ItemDef, 0, len(r.all))
	for _, item := range r.all {
		if item.SamuraiOnly && (mode == nil || !mode.Samurai) {
			continue
		}
		stocked = append(stocked, item)
	}
	return stocked
}

// ModeRegistry holds the selectable game modes.
type ModeRegistry struct {
	modes []ModeDef
}

// NewModeRegistry creates a registry from loaded mode definitions.
func NewModeRegistry(modes []ModeDef) *ModeRegistry {
	return &ModeRegistry{modes: modes}
}

// Lookup finds a mode by ID ("normal") or menu key ("n"), case-insensitively.
func (r *ModeRegistry) Lookup(name string) (*ModeDef, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i := range r.modes {
		if r.modes[i].ID == name || r.modes[i].Key == name {
			return &r.modes[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// All returns all mode definitions.
func (r *ModeRegistry) All() []ModeDef {
	return r.modes
}

// Data bundles every embedded table the game needs.
type Data struct {
	Terrains *TerrainRegistry
	Items    *ItemRegistry
	Modes    *ModeRegistry
}

// LoadData loads every embedded table.
func LoadData() (*Data, error) {
	terrains, err := LoadTerrains()
	if err != nil {
		return nil, err
	}
	if len(terrains) == 0 {
		return nil, errors.New("no terrains loaded from terrains.json")
	}

	items, err := LoadItems()
	if err != nil {
		return nil, err
	}

	modes, err := LoadModes()
	if err != nil {
		return nil, err
	}
	if len(modes) == 0 {
		return nil, errors.New("no modes loaded from modes.json")
	}

	return &Data{
		Terrains: NewTerrainRegistry(terrains),
		Items:    NewItemRegistry(items),
		Modes:    NewModeRegistry(modes),
	}, nil
}

// MustLoadData loads every table, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoadData() *Data {
	data, err := LoadData()
	if err != nil {
		panic(err)
	}
	return data
}
