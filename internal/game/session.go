package game

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/treasurehunter/internal/entity"
	"github.com/samdwyer/treasurehunter/internal/gamedata"
	"github.com/samdwyer/treasurehunter/internal/random"
	"github.com/samdwyer/treasurehunter/internal/telemetry"
	"github.com/samdwyer/treasurehunter/internal/world"
)

const (
	winMessage     = "You collected every treasure, so you win!"
	loseMessage    = "You couldn't pay the gold, so you lose!"
	invalidMessage = "Yikes! That's an invalid option! Try again."
)

// ErrNotStarted is returned when a session is used before Start.
var ErrNotStarted = errors.New("session not started")

// Session sequences towns for one hunter and turns menu commands into town
// actions. The hunter lives for the whole session; towns are replaced on every move.
type Session struct {
	cfg    Config
	data   *gamedata.Data
	mode   *gamedata.ModeDef
	rng    *random.Policy
	shop   *world.Shop
	hunter *entity.Hunter
	town   *world.Town
	news   world.Result
	towns  int
	quit   bool
}

// NewSession prepares a session. All randomness comes from rng.
func NewSession(cfg Config, data *gamedata.Data, rng *random.Policy) (*Session, error) {
	mode, err := cfg.ResolveMode(data.Modes)
	if err != nil {
		return nil, err
	}

	return &Session{
		cfg:  cfg,
		data: data,
		mode: mode,
		rng:  rng,
		shop: world.NewShop(data.Items, mode),
	}, nil
}

// Start creates the hunter and walks them into the first town.
func (s *Session) Start(ctx context.Context) world.Result {
	ctx, span := telemetry.Tracer("session").Start(ctx, "session.start")
	defer span.End()

	s.hunter = entity.NewHunter(s.cfg.Name(), s.mode.StartingGold)
	for _, item := range s.mode.StarterKit {
		s.hunter.AddItem(item)
	}

	span.SetAttributes(
		attribute.String("mode", s.mode.ID),
		attribute.Int("starting_gold", s.mode.StartingGold),
		attribute.Int("kit_size", len(s.hunter.Kit())),
	)

	s.news = s.enterTown(ctx)
	return s.news
}

func (s *Session) enterTown(ctx context.Context) world.Result {
	s.town = world.NewTown(s.shop, s.mode, s.rng, s.data.Terrains)
	s.towns++
	return s.town.HunterArrives(ctx, s.hunter)
}

// Dispatch runs one command. item is only read by buy and sell.
func (s *Session) Dispatch(ctx context.Context, cmd Command, item string) (world.Result, error) {
	if s.town == nil {
		return world.Result{}, ErrNotStarted
	}
	if s.Finished() {
		return world.Result{Message: world.HuntOverMessage}, nil
	}

	var res world.Result
	switch cmd {
	case CmdBuy:
		res = s.town.EnterShop(ctx, world.ShopBuy, item)
	case CmdSell:
		res = s.town.EnterShop(ctx, world.ShopSell, item)
	case CmdMove:
		res = s.move(ctx)
	case CmdTrouble:
		res = s.town.LookForTrouble(ctx)
	case CmdHunt:
		res = s.town.TreasureHunt(ctx)
	case CmdDig:
		res = s.town.DigForGold(ctx)
	case CmdExit:
		s.quit = true
		res = world.Result{Success: true, Message: "Fare thee well, " + s.hunter.Name + "!"}
	default:
		res = world.Result{Message: invalidMessage}
	}

	s.news = s.settle(ctx, res)
	return s.news, nil
}

// move leaves the current town and, if that worked, enters a new one.
// The departure message is kept ahead of the new town's welcome.
func (s *Session) move(ctx context.Context) world.Result {
	left := s.town.LeaveTown(ctx)
	if !left.Success {
		return left
	}

	arrived := s.enterTown(ctx)
	arrived.Message = left.Message + "\n\n" + arrived.Message
	return arrived
}

// settle appends the win or loss line once the hunter's outcome is terminal.
func (s *Session) settle(ctx context.Context, res world.Result) world.Result {
	outcome := s.hunter.Outcome()
	switch outcome {
	case entity.Won:
		res.Message += "\n" + winMessage
		res.Tone = world.ToneTreasure
	case entity.Lost:
		res.Message += "\n" + loseMessage
		res.Tone = world.ToneDanger
	default:
		if !s.quit {
			return res
		}
	}

	_, span := telemetry.Tracer("session").Start(ctx, "session.end")
	span.SetAttributes(
		attribute.String("outcome", outcome.String()),
		attribute.Int("towns_visited", s.towns),
		attribute.Int("gold", s.hunter.Gold()),
		attribute.Int("treasures", s.hunter.TreasureCount()),
	)
	span.End()
	return res
}

// Finished reports whether the hunter has won, lost or walked away.
func (s *Session) Finished() bool {
	return s.quit || (s.hunter != nil && s.hunter.IsGameOver())
}

// Outcome returns the hunter's outcome, Playing before Start.
func (s *Session) Outcome() entity.Outcome {
	if s.hunter == nil {
		return entity.Playing
	}
	return s.hunter.Outcome()
}

// News returns the result of the last command.
func (s *Session) News() world.Result { return s.news }

// Hunter returns the session's hunter, nil before Start.
func (s *Session) Hunter() *entity.Hunter { return s.hunter }

// Town returns the current town, nil before Start.
func (s *Session) Town() *world.Town { return s.town }

// Shop returns the shop shared by every town.
func (s *Session) Shop() *world.Shop { return s.shop }

// Mode returns the rules chosen for this session.
func (s *Session) Mode() *gamedata.ModeDef { return s.mode }

// TownsVisited counts towns entered, including the first.
func (s *Session) TownsVisited() int { return s.towns }
