// Package game runs a treasure hunt session and its terminal event loop.
package game

// State is what the event loop is waiting for.
type State int

const (
	// StateName asks for the hunter's name before the hunt starts.
	StateName State = iota
	// StateMenu waits for a single-key menu choice.
	StateMenu
	// StateItem collects an item name for a buy or sell.
	StateItem
	// StateOver shows the final outcome until a key is pressed.
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateName:
		return "name"
	case StateMenu:
		return "menu"
	case StateItem:
		return "item"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
