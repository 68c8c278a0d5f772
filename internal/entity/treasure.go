package entity

import "strings"

// Treasure is something a hunter can find outside a town.
type Treasure int

const (
	// NoTreasure marks a town with nothing but dust to find.
	NoTreasure Treasure = iota
	Crown
	Gem
	Trophy
)

// WinningTreasureCount is how many distinct treasures end the hunt.
const WinningTreasureCount = 3

// String returns the treasure name.
func (t Treasure) String() string {
	switch t {
	case NoTreasure:
		return "dust"
	case Crown:
		return "crown"
	case Gem:
		return "gem"
	case Trophy:
		return "trophy"
	default:
		return "unknown"
	}
}

// Collectible reports whether the treasure counts toward winning.
func (t Treasure) Collectible() bool {
	return t == Crown || t == Gem || t == Trophy
}

// ParseTreasure maps a name back to a Treasure. Anything unrecognized is NoTreasure.
func ParseTreasure(name string) Treasure {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "crown":
		return Crown
	case "gem":
		return Gem
	case "trophy":
		return Trophy
	default:
		return NoTreasure
	}
}
