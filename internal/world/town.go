package world

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/treasurehunter/internal/combat"
	"github.com/samdwyer/treasurehunter/internal/entity"
	"github.com/samdwyer/treasurehunter/internal/gamedata"
	"github.com/samdwyer/treasurehunter/internal/random"
	"github.com/samdwyer/treasurehunter/internal/telemetry"
)

// HuntOverMessage answers every action taken once the hunter has won or lost.
const HuntOverMessage = "The hunt is over."

const (
	breakChance = 0.5
	minDigGold  = 1
	maxDigGold  = 20
)

// Town is one stop on the hunt. A fresh Town is built every time the hunter
// arrives somewhere; nothing but the hunter carries over.
type Town struct {
	hunter  *entity.Hunter
	shop    *Shop
	terrain *Terrain
	mode    *gamedata.ModeDef
	rng     *random.Policy
	brawls  *combat.BrawlResolver
	tough   bool
	news    Result
	dugIn   map[string]struct{} // terrain names already dug around this town
}

// NewTown creates a town with freshly generated terrain. The hunter is
// assigned later by HunterArrives.
func NewTown(shop *Shop, mode *gamedata.ModeDef, rng *random.Policy, terrains *gamedata.TerrainRegistry) *Town {
	terrain := GenerateTerrain(rng, terrains)
	return &Town{
		shop:    shop,
		terrain: terrain,
		mode:    mode,
		rng:     rng,
		brawls:  combat.NewBrawlResolver(rng, mode.Samurai),
		tough:   rng.Chance(mode.Toughness),
		dugIn:   make(map[string]struct{}),
	}
}

// Terrain returns the terrain surrounding the town.
func (t *Town) Terrain() *Terrain {
	return t.terrain
}

// IsTough reports whether this is a rough town.
func (t *Town) IsTough() bool {
	return t.tough
}

// Hunter returns the hunter currently in town, or nil before arrival.
func (t *Town) Hunter() *entity.Hunter {
	return t.hunter
}

// LatestNews returns the result of the most recent action.
func (t *Town) LatestNews() Result {
	return t.news
}

// String describes the town.
func (t *Town) String() string {
	return "This nice little town is surrounded by " + t.terrain.Name() + "."
}

func (t *Town) report(r Result) Result {
	t.news = r
	return r
}

// closed reports whether the hunter is frozen. Actions then change nothing.
func (t *Town) closed() bool {
	return t.hunter != nil && t.hunter.IsGameOver()
}

// HunterArrives binds h to the town and greets them.
func (t *Town) HunterArrives(ctx context.Context, h *entity.Hunter) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.arrive")
	defer span.End()

	t.hunter = h
	msg := "Welcome to town, " + h.Name + "."

	treasure := t.terrain.Treasure()
	if h.HasTreasure(treasure) {
		msg += "\nYou have already acquired this town's treasure."
		t.terrain.MarkSearched()
	} else if !treasure.Collectible() {
		t.terrain.MarkSearched()
	}

	if t.tough {
		msg += "\nIt's pretty rough around here, so watch yourself."
	} else {
		msg += "\nWe're just a sleepy little town with mild mannered folk."
	}

	span.SetAttributes(
		attribute.String("terrain", t.terrain.Name()),
		attribute.String("treasure", treasure.String()),
		attribute.Bool("tough", t.tough),
		attribute.Bool("searched", t.terrain.IsSearched()),
	)

	return t.report(Result{Success: true, Message: msg, Tone: ToneWelcome})
}

// LeaveTown crosses the surrounding terrain if the hunter carries the right
// item. The item may break on the way unless the mode suppresses breakage.
func (t *Town) LeaveTown(ctx context.Context) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.leave")
	defer span.End()

	if t.closed() {
		return t.report(Result{Message: HuntOverMessage})
	}

	item := t.terrain.RequiredItem()
	span.SetAttributes(
		attribute.String("terrain", t.terrain.Name()),
		attribute.String("required_item", item),
	)

	if !t.terrain.CanCross(t.hunter) {
		span.SetAttributes(attribute.Bool("crossed", false))
		return t.report(Result{
			Message: fmt.Sprintf("You can't leave town, %s. You don't have a %s.", t.hunter.Name, item),
			Tone:    ToneDanger,
		})
	}

	msg := fmt.Sprintf("You used your %s to cross the %s.", item, t.terrain.Name())
	broke := t.rng.Chance(breakChance) && !t.mode.BreakageSuppressed
	if broke {
		t.hunter.RemoveItem(item)
		msg += "\nUnfortunately, you lost your " + item + "."
	}

	span.SetAttributes(
		attribute.Bool("crossed", true),
		attribute.Bool("item_broke", broke),
	)
	return t.report(Result{Success: true, Message: msg})
}

// EnterShop hands the hunter to the shop for one transaction.
func (t *Town) EnterShop(ctx context.Context, mode ShopMode, item string) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.shop")
	defer span.End()

	if t.closed() {
		return t.report(Result{Message: HuntOverMessage})
	}

	res := t.shop.Enter(t.hunter, mode, item)
	span.SetAttributes(
		attribute.String("mode", mode.String()),
		attribute.String("item", item),
		attribute.Bool("success", res.Success),
		attribute.Int("gold_delta", res.GoldDelta),
	)
	return t.report(res)
}

// LookForTrouble picks a brawl. Tougher towns make a fight easier to find
// and harder to win.
func (t *Town) LookForTrouble(ctx context.Context) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.brawl")
	defer span.End()

	if t.closed() {
		return t.report(Result{Message: HuntOverMessage})
	}

	brawl := t.brawls.Resolve(t.hunter, t.tough)
	span.SetAttributes(
		attribute.Bool("tough", t.tough),
		attribute.Bool("found", brawl.Found),
		attribute.Bool("won", brawl.Won),
		attribute.Int("gold_delta", brawl.GoldDelta()),
	)

	res := Result{Success: brawl.Won, Message: brawl.Message, GoldDelta: brawl.GoldDelta()}
	if brawl.Found {
		res.Tone = ToneDanger
	}
	return t.report(res)
}

// TreasureHunt searches the terrain. The treasure can be claimed once.
func (t *Town) TreasureHunt(ctx context.Context) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.hunt")
	defer span.End()

	if t.closed() {
		return t.report(Result{Message: HuntOverMessage})
	}

	treasure := t.terrain.Treasure()
	span.SetAttributes(attribute.String("treasure", treasure.String()))

	if !treasure.Collectible() {
		return t.report(Result{Message: "All you found was some dust."})
	}
	if t.terrain.IsSearched() {
		return t.report(Result{Message: "You already claimed this town's treasure!"})
	}

	if !t.hunter.AddTreasure(treasure) {
		return t.report(Result{Message: "You already claimed this town's treasure!"})
	}
	t.terrain.MarkSearched()
	span.SetAttributes(attribute.Int("treasure_count", t.hunter.TreasureCount()))
	return t.report(Result{
		Success: true,
		Message: "You found a " + treasure.String() + "!",
		Tone:    ToneTreasure,
	})
}

// DigForGold needs a shovel and works once per terrain around this town.
func (t *Town) DigForGold(ctx context.Context) Result {
	_, span := telemetry.Tracer("town").Start(ctx, "town.dig")
	defer span.End()

	if t.closed() {
		return t.report(Result{Message: HuntOverMessage})
	}

	if !t.hunter.HasItem("shovel") {
		return t.report(Result{Message: "You can't dig for gold without a shovel."})
	}

	name := t.terrain.Name()
	if _, ok := t.dugIn[name]; ok {
		return t.report(Result{Message: "You already dug for gold in this town."})
	}

	res := Result{Message: "You dug but only found dirt."}
	if t.rng.CoinFlip() {
		gold := t.rng.Between(minDigGold, maxDigGold)
		t.hunter.ChangeGold(gold)
		res = Result{
			Success:   true,
			Message:   fmt.Sprintf("You dug up %d gold!", gold),
			Tone:      ToneGold,
			GoldDelta: gold,
		}
	}
	t.dugIn[name] = struct{}{}

	span.SetAttributes(attribute.Int("gold_delta", res.GoldDelta))
	return t.report(res)
}
