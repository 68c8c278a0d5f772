package gamedata

import "github.com/gdamore/tcell/v2"

// TerrainDef defines a terrain that can surround a town.
type TerrainDef struct {
	ID    string `json:"id"`    // Unique identifier (e.g., "mountains")
	Name  string `json:"name"`  // Display name (e.g., "Mountains")
	Item  string `json:"item"`  // Item needed to cross it (e.g., "Rope")
	Color string `json:"color"` // Hex color used when the name is drawn
}

// TCellColor returns the terrain color, white if the hex is malformed.
func (t *TerrainDef) TCellColor() tcell.Color {
	return colorOr(t.Color, tcell.ColorWhite)
}

// TerrainsFile represents the structure of terrains.json.
type TerrainsFile struct {
	Terrains []TerrainDef `json:"terrains"`
}

// LoadTerrains loads terrain definitions from the embedded terrains.json file.
func LoadTerrains() ([]TerrainDef, error) {
	file, err := Load[TerrainsFile]("terrains.json")
	if err != nil {
		return nil, err
	}
	return file.Terrains, nil
}
