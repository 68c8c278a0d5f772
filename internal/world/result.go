package world

// Tone tells the renderer how a message should be colored.
type Tone int

const (
	ToneInfo Tone = iota
	ToneWelcome
	ToneDanger
	ToneGold
	ToneTreasure
)

// String returns a human-readable tone name.
func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneWelcome:
		return "welcome"
	case ToneDanger:
		return "danger"
	case ToneGold:
		return "gold"
	case ToneTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Result is the outcome of a town action. Failing to act (no shovel, no boat)
// is an ordinary result with Success false, never an error.
type Result struct {
	Success   bool
	Message   string
	Tone      Tone
	GoldDelta int
}
