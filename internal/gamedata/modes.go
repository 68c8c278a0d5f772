package gamedata

// ModeDef is the immutable rule set selected at session start.
type ModeDef struct {
	ID                 string   `json:"id"`
	Key                string   `json:"key"` // Single-letter menu key (h/n/e/s/t)
	Name               string   `json:"name"`
	Toughness          float64  `json:"toughness"`    // Probability a new town is tough
	Markdown           float64  `json:"markdown"`     // Fraction of the price paid back on sale
	StartingGold       int      `json:"startingGold"` // Hunter's gold at session start
	BreakageSuppressed bool     `json:"breakageSuppressed,omitempty"`
	Samurai            bool     `json:"samurai,omitempty"`
	StarterKit         []string `json:"starterKit,omitempty"`
}

// ModesFile represents the structure of modes.json.
type ModesFile struct {
	Modes []ModeDef `json:"modes"`
}

// LoadModes loads mode definitions from the embedded modes.json file.
func LoadModes() ([]ModeDef, error) {
	file, err := Load[ModesFile]("modes.json")
	if err != nil {
		return nil, err
	}
	return file.Modes, nil
}
