package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/treasurehunter/internal/entity"
	"github.com/samdwyer/treasurehunter/internal/gamedata"
	"github.com/samdwyer/treasurehunter/internal/random"
	"github.com/samdwyer/treasurehunter/internal/world"
)

var testData = gamedata.MustLoadData()

func newScriptedSession(t *testing.T, mode string, src *random.Script) *Session {
	t.Helper()
	s, err := NewSession(Config{HunterName: "Ana", Mode: mode}, testData, random.NewPolicy(src))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Start(context.Background())
	return s
}

func dispatch(t *testing.T, s *Session, cmd Command, item string) string {
	t.Helper()
	res, err := s.Dispatch(context.Background(), cmd, item)
	if err != nil {
		t.Fatalf("Dispatch(%v): %v", cmd, err)
	}
	return res.Message
}

func TestStartTestMode(t *testing.T) {
	s := newScriptedSession(t, "t", &random.Script{Floats: []float64{0.99}, Ints: []int{0, 1}})

	h := s.Hunter()
	if h.Name != "ana" {
		t.Errorf("name = %q, want lowercased ana", h.Name)
	}
	if h.Gold() != 100 {
		t.Errorf("gold = %d, want 100", h.Gold())
	}
	if len(h.Kit()) != 6 || !h.HasItem("shovel") {
		t.Errorf("kit = %v, want full test kit", h.Kit())
	}
	if s.TownsVisited() != 1 {
		t.Errorf("TownsVisited() = %d, want 1", s.TownsVisited())
	}
	if !strings.Contains(s.News().Message, "Welcome to town, ana.") {
		t.Errorf("news = %q", s.News().Message)
	}
}

func TestStartingGoldPerMode(t *testing.T) {
	tests := []struct {
		mode string
		gold int
	}{
		{"hard", 10},
		{"normal", 10},
		{"easy", 20},
		{"samurai", 10},
		{"test", 100},
	}

	for _, tt := range tests {
		s := newScriptedSession(t, tt.mode, &random.Script{Floats: []float64{0.99}, Ints: []int{0, 1}})
		if s.Hunter().Gold() != tt.gold {
			t.Errorf("%s: gold = %d, want %d", tt.mode, s.Hunter().Gold(), tt.gold)
		}
	}
}

func TestMoveToNewTown(t *testing.T) {
	src := &random.Script{
		// first town toughness, rope break roll, second town toughness
		Floats: []float64{0.99, 0.9, 0.99},
		// first town Mountains/dust, second town Ocean/gem
		Ints: []int{0, 1, 1, 2},
	}
	s := newScriptedSession(t, "test", src)
	first := s.Town()

	msg := dispatch(t, s, CmdMove, "")

	if s.Town() == first {
		t.Fatal("a successful move should build a new town")
	}
	if s.TownsVisited() != 2 {
		t.Errorf("TownsVisited() = %d, want 2", s.TownsVisited())
	}
	if s.Town().Terrain().Name() != "Ocean" {
		t.Errorf("new terrain = %q, want Ocean", s.Town().Terrain().Name())
	}
	if !strings.Contains(msg, "You used your Rope to cross the Mountains.") || !strings.Contains(msg, "Welcome to town") {
		t.Errorf("move message = %q", msg)
	}
	if !s.Hunter().HasItem("rope") {
		t.Error("rope should survive a 0.9 break roll")
	}
	if !src.Drained() {
		t.Error("unexpected leftover draws")
	}
}

func TestMoveBlocked(t *testing.T) {
	s := newScriptedSession(t, "normal", &random.Script{Floats: []float64{0.99}, Ints: []int{1, 0}})
	first := s.Town()

	msg := dispatch(t, s, CmdMove, "")

	if s.Town() != first || s.TownsVisited() != 1 {
		t.Error("a blocked move must stay in the same town")
	}
	if !strings.Contains(msg, "You don't have a Boat.") {
		t.Errorf("message = %q", msg)
	}
}

func TestThirdTreasureWins(t *testing.T) {
	s := newScriptedSession(t, "normal", &random.Script{Floats: []float64{0.99}, Ints: []int{2, 3}})
	s.Hunter().AddTreasure(entity.Crown)
	s.Hunter().AddTreasure(entity.Gem)

	msg := dispatch(t, s, CmdHunt, "")

	if s.Outcome() != entity.Won {
		t.Fatalf("outcome = %v, want won", s.Outcome())
	}
	if !s.Finished() {
		t.Error("session should be finished")
	}
	if !strings.Contains(msg, winMessage) {
		t.Errorf("message = %q, want win line", msg)
	}

	if after := dispatch(t, s, CmdDig, ""); after != world.HuntOverMessage {
		t.Errorf("command after win = %q, want %q", after, world.HuntOverMessage)
	}
}

func TestNegativeGoldLoses(t *testing.T) {
	src := &random.Script{
		Floats: []float64{0.0, 0.1, 0.2}, // tough town, trouble found, brawl lost
		Ints:   []int{0, 1, 7},           // Mountains, dust, stake 8
	}
	s := newScriptedSession(t, "normal", src)
	s.Hunter().ChangeGold(-5)

	msg := dispatch(t, s, CmdTrouble, "")

	if s.Hunter().Gold() != -3 {
		t.Errorf("gold = %d, want -3", s.Hunter().Gold())
	}
	if s.Outcome() != entity.Lost {
		t.Fatalf("outcome = %v, want lost", s.Outcome())
	}
	if !strings.Contains(msg, loseMessage) {
		t.Errorf("message = %q, want lose line", msg)
	}
}

func TestExitAndInvalid(t *testing.T) {
	s := newScriptedSession(t, "normal", &random.Script{Floats: []float64{0.99}, Ints: []int{0, 1}})

	if msg := dispatch(t, s, CmdInvalid, ""); msg != invalidMessage {
		t.Errorf("invalid = %q", msg)
	}
	if s.Finished() {
		t.Fatal("invalid input must not end the session")
	}

	if msg := dispatch(t, s, CmdExit, ""); msg != "Fare thee well, ana!" {
		t.Errorf("exit = %q", msg)
	}
	if !s.Finished() || s.Outcome() != entity.Playing {
		t.Errorf("after exit: finished %v, outcome %v", s.Finished(), s.Outcome())
	}
}

func TestShopThroughSession(t *testing.T) {
	s := newScriptedSession(t, "normal", &random.Script{Floats: []float64{0.99}, Ints: []int{0, 1}})

	dispatch(t, s, CmdBuy, "rope")
	if !s.Hunter().HasItem("rope") || s.Hunter().Gold() != 6 {
		t.Fatalf("after buying rope: kit %v gold %d", s.Hunter().Kit(), s.Hunter().Gold())
	}

	dispatch(t, s, CmdSell, "rope")
	if s.Hunter().HasItem("rope") || s.Hunter().Gold() != 8 {
		t.Errorf("after selling rope: kit %v gold %d", s.Hunter().Kit(), s.Hunter().Gold())
	}
}

func TestDispatchBeforeStart(t *testing.T) {
	s, err := NewSession(Config{Mode: "normal"}, testData, random.New(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Dispatch(context.Background(), CmdHunt, ""); !errors.Is(err, ErrNotStarted) {
		t.Errorf("err = %v, want ErrNotStarted", err)
	}
	if s.Outcome() != entity.Playing || s.Finished() {
		t.Error("an unstarted session is still playing")
	}
}

func TestUnknownMode(t *testing.T) {
	_, err := NewSession(Config{Mode: "nightmare"}, testData, random.New(1))
	if !errors.Is(err, gamedata.ErrUnknownMode) {
		t.Errorf("err = %v, want ErrUnknownMode", err)
	}
}

func TestSeededSessionsReplay(t *testing.T) {
	script := []Command{CmdTrouble, CmdHunt, CmdDig, CmdMove, CmdTrouble, CmdHunt, CmdMove, CmdDig, CmdTrouble}

	play := func() string {
		s, err := NewSession(Config{HunterName: "ana", Mode: "test"}, testData, random.New(42))
		if err != nil {
			t.Fatal(err)
		}
		s.Start(context.Background())
		var log strings.Builder
		for _, cmd := range script {
			log.WriteString(dispatch(t, s, cmd, ""))
			log.WriteString(s.Hunter().String())
		}
		return log.String()
	}

	if a, b := play(), play(); a != b {
		t.Error("same seed and commands should replay the same hunt")
	}
}
