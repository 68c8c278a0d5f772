// Package entity provides the hunter and the treasures they collect.
package entity

import (
	"fmt"
	"sort"
	"strings"
)

// Outcome is where a hunter's session stands.
type Outcome int

const (
	// Playing means the hunt is still on.
	Playing Outcome = iota
	// Won means every treasure has been collected.
	Won
	// Lost means the hunter ended up owing gold.
	Lost
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Hunter is the player. It is the only state that survives moving between towns.
//
// Once the outcome leaves Playing the hunter is frozen: gold, kit and
// treasure mutations are ignored.
type Hunter struct {
	Name string

	gold      int
	kit       map[string]struct{}
	treasures map[Treasure]struct{}
	outcome   Outcome
}

// NewHunter creates a hunter with the given name and starting gold.
func NewHunter(name string, gold int) *Hunter {
	h := &Hunter{
		Name:      name,
		gold:      gold,
		kit:       make(map[string]struct{}),
		treasures: make(map[Treasure]struct{}),
	}
	h.checkGold()
	return h
}

func normalizeItem(item string) string {
	return strings.ToLower(strings.TrimSpace(item))
}

// HasItem reports whether the item is in the kit. Names are case-insensitive.
func (h *Hunter) HasItem(item string) bool {
	_, ok := h.kit[normalizeItem(item)]
	return ok
}

// AddItem puts an item in the kit. Returns false if it was already there.
func (h *Hunter) AddItem(item string) bool {
	key := normalizeItem(item)
	if h.IsGameOver() || key == "" {
		return false
	}
	if _, ok := h.kit[key]; ok {
		return false
	}
	h.kit[key] = struct{}{}
	return true
}

// RemoveItem takes an item out of the kit. Returns false if it was not there.
func (h *Hunter) RemoveItem(item string) bool {
	key := normalizeItem(item)
	if h.IsGameOver() {
		return false
	}
	if _, ok := h.kit[key]; !ok {
		return false
	}
	delete(h.kit, key)
	return true
}

// Kit returns the owned items in alphabetical order.
func (h *Hunter) Kit() []string {
	items := make([]string, 0, len(h.kit))
	for item := range h.kit {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// Gold returns the hunter's purse, which may be negative once the hunt is lost.
func (h *Hunter) Gold() int {
	return h.gold
}

// ChangeGold adds delta (which may be negative) to the hunter's gold.
// Gold below zero ends the game as Lost.
func (h *Hunter) ChangeGold(delta int) {
	if h.IsGameOver() {
		return
	}
	h.gold += delta
	h.checkGold()
}

func (h *Hunter) checkGold() {
	if h.gold < 0 {
		h.outcome = Lost
	}
}

// HasTreasure reports whether the hunter already owns t.
func (h *Hunter) HasTreasure(t Treasure) bool {
	_, ok := h.treasures[t]
	return ok
}

// AddTreasure records a collectible treasure. Returns false for dust or duplicates.
// Reaching WinningTreasureCount ends the game as Won.
func (h *Hunter) AddTreasure(t Treasure) bool {
	if h.IsGameOver() || !t.Collectible() || h.HasTreasure(t) {
		return false
	}
	h.treasures[t] = struct{}{}
	if len(h.treasures) >= WinningTreasureCount {
		h.outcome = Won
	}
	return true
}

// TreasureCount returns the number of distinct treasures owned.
func (h *Hunter) TreasureCount() int {
	return len(h.treasures)
}

// Treasures returns the owned treasures in enum order.
func (h *Hunter) Treasures() []Treasure {
	out := make([]Treasure, 0, len(h.treasures))
	for _, t := range []Treasure{Crown, Gem, Trophy} {
		if h.HasTreasure(t) {
			out = append(out, t)
		}
	}
	return out
}

// Outcome returns the current session outcome.
func (h *Hunter) Outcome() Outcome {
	return h.outcome
}

// IsGameOver reports whether the hunter has won or lost.
func (h *Hunter) IsGameOver() bool {
	return h.outcome != Playing
}

// String renders the one-line status shown under the news.
func (h *Hunter) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s has %d gold", h.Name, h.gold)

	if kit := h.Kit(); len(kit) > 0 {
		b.WriteString(" and ")
		b.WriteString(strings.Join(kit, ", "))
	}

	if treasures := h.Treasures(); len(treasures) == 0 {
		b.WriteString(". Treasures found: none")
	} else {
		names := make([]string, len(treasures))
		for i, t := range treasures {
			names[i] = t.String()
		}
		b.WriteString(". Treasures found: ")
		b.WriteString(strings.Join(names, ", "))
	}
	return b.String()
}
