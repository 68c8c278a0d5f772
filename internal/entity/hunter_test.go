package entity

import (
	"reflect"
	"strings"
	"testing"
)

func TestTreasureString(t *testing.T) {
	tests := []struct {
		treasure Treasure
		expected string
	}{
		{NoTreasure, "dust"},
		{Crown, "crown"},
		{Gem, "gem"},
		{Trophy, "trophy"},
		{Treasure(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.treasure.String(); got != tt.expected {
			t.Errorf("Treasure(%d).String() = %q, want %q", tt.treasure, got, tt.expected)
		}
		if tt.treasure.Collectible() && ParseTreasure(tt.expected) != tt.treasure {
			t.Errorf("ParseTreasure(%q) did not round-trip", tt.expected)
		}
	}

	if ParseTreasure("dust").Collectible() {
		t.Error("dust must not be collectible")
	}
}

func TestKitIsASet(t *testing.T) {
	h := NewHunter("ana", 10)

	if !h.AddItem("Rope") {
		t.Fatal("first AddItem(Rope) should succeed")
	}
	if h.AddItem("rope") {
		t.Error("second AddItem(rope) should report a duplicate")
	}
	if !h.HasItem("ROPE") {
		t.Error("HasItem should ignore case")
	}
	if got := h.Kit(); !reflect.DeepEqual(got, []string{"rope"}) {
		t.Errorf("Kit() = %v, want [rope]", got)
	}

	if !h.RemoveItem("Rope") {
		t.Error("RemoveItem(Rope) should succeed")
	}
	if h.RemoveItem("rope") {
		t.Error("RemoveItem on a missing item should fail")
	}
	if h.AddItem("  ") {
		t.Error("blank item names should be rejected")
	}
}

func TestNegativeGoldLoses(t *testing.T) {
	tests := []struct {
		name    string
		start   int
		delta   int
		outcome Outcome
	}{
		{"stay positive", 10, -5, Playing},
		{"land on zero", 10, -10, Playing},
		{"go negative", 3, -4, Lost},
		{"win gold", 0, 7, Playing},
	}

	for _, tt := range tests {
		h := NewHunter("bo", tt.start)
		h.ChangeGold(tt.delta)
		if h.Outcome() != tt.outcome {
			t.Errorf("%s: outcome = %v, want %v", tt.name, h.Outcome(), tt.outcome)
		}
		if h.Gold() != tt.start+tt.delta {
			t.Errorf("%s: gold = %d, want %d", tt.name, h.Gold(), tt.start+tt.delta)
		}
	}
}

func TestSpendingPastZeroLoses(t *testing.T) {
	h := NewHunter("ana", 5)

	steps := []struct {
		delta   int
		gold    int
		outcome Outcome
	}{
		{-2, 3, Playing},
		{-3, 0, Playing},
		{-1, -1, Lost},
		{+6, -1, Lost},
	}
	for i, st := range steps {
		h.ChangeGold(st.delta)
		if h.Gold() != st.gold || h.Outcome() != st.outcome {
			t.Errorf("step %d (%+d): gold %d outcome %v, want %d %v",
				i, st.delta, h.Gold(), h.Outcome(), st.gold, st.outcome)
		}
	}
	if !h.IsGameOver() {
		t.Error("owing gold should end the hunt")
	}
}

func TestNegativeStartingGoldIsLost(t *testing.T) {
	if h := NewHunter("debtor", -1); h.Outcome() != Lost {
		t.Errorf("outcome = %v, want lost", h.Outcome())
	}
}

func TestThreeTreasuresWin(t *testing.T) {
	h := NewHunter("cy", 10)

	if h.AddTreasure(NoTreasure) {
		t.Error("dust should not be added")
	}
	h.AddTreasure(Crown)
	if h.AddTreasure(Crown) {
		t.Error("duplicate crown should not be added")
	}
	h.AddTreasure(Gem)
	if h.IsGameOver() {
		t.Fatal("two treasures should not end the game")
	}
	h.AddTreasure(Trophy)

	if h.Outcome() != Won {
		t.Errorf("outcome = %v, want won", h.Outcome())
	}
	if h.TreasureCount() != 3 {
		t.Errorf("TreasureCount() = %d, want 3", h.TreasureCount())
	}
}

func TestFrozenAfterGameOver(t *testing.T) {
	h := NewHunter("di", 0)
	h.ChangeGold(-1)

	h.ChangeGold(50)
	if h.Gold() != -1 {
		t.Errorf("gold changed after loss: %d", h.Gold())
	}
	if h.AddItem("boat") {
		t.Error("AddItem should be ignored after loss")
	}
	if h.AddTreasure(Gem) {
		t.Error("AddTreasure should be ignored after loss")
	}
}

func TestHunterString(t *testing.T) {
	h := NewHunter("ed", 12)
	h.AddItem("water")
	h.AddItem("boat")
	h.AddTreasure(Gem)

	got := h.String()
	for _, want := range []string{"ed has 12 gold", "boat, water", "Treasures found: gem"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}

	if got := NewHunter("fay", 1).String(); !strings.Contains(got, "Treasures found: none") {
		t.Errorf("String() = %q, want no treasures", got)
	}
}
