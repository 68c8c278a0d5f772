package world

import (
	"fmt"
	"strings"

	"github.com/samdwyer/treasurehunter/internal/entity"
	"github.com/samdwyer/treasurehunter/internal/gamedata"
)

// ShopMode is whether the hunter came in to buy or to sell.
type ShopMode int

const (
	ShopBuy ShopMode = iota
	ShopSell
)

// String returns a human-readable mode name.
func (m ShopMode) String() string {
	switch m {
	case ShopBuy:
		return "buy"
	case ShopSell:
		return "sell"
	default:
		return "unknown"
	}
}

// Shop buys and sells the items needed to cross terrain.
// One shop is shared by every town in a session.
type Shop struct {
	items    *gamedata.ItemRegistry
	stocked  []gamedata.ItemDef
	markdown float64
}

// NewShop creates a shop stocking what the mode allows.
func NewShop(items *gamedata.ItemRegistry, mode *gamedata.ModeDef) *Shop {
	return &Shop{
		items:    items,
		stocked:  items.ForMode(mode),
		markdown: mode.Markdown,
	}
}

// Catalogue returns the items for sale, in catalogue order.
func (s *Shop) Catalogue() []gamedata.ItemDef {
	return s.stocked
}

// SellPrice is what the shop pays for an item, rounded down.
func (s *Shop) SellPrice(item *gamedata.ItemDef) int {
	return int(float64(item.Price) * s.markdown)
}

func (s *Shop) lookup(name string) *gamedata.ItemDef {
	item, err := s.items.GetByID(name)
	if err != nil {
		return nil
	}
	for i := range s.stocked {
		if s.stocked[i].ID == item.ID {
			return item
		}
	}
	return nil
}

// Enter runs one transaction for h. Only the hunter's gold and kit change.
func (s *Shop) Enter(h *entity.Hunter, mode ShopMode, name string) Result {
	if h.IsGameOver() {
		return Result{Message: HuntOverMessage}
	}

	name = strings.ToLower(strings.TrimSpace(name))
	item := s.lookup(name)
	if item == nil {
		return Result{Message: fmt.Sprintf("We ain't got none of those %q here, stranger.", name)}
	}

	switch mode {
	case ShopBuy:
		return s.buy(h, item)
	case ShopSell:
		return s.sell(h, item)
	default:
		return Result{Message: "The shopkeeper stares at you blankly."}
	}
}

func (s *Shop) buy(h *entity.Hunter, item *gamedata.ItemDef) Result {
	if h.HasItem(item.ID) {
		return Result{Message: fmt.Sprintf("You already have a %s.", item.ID)}
	}
	if h.Gold() < item.Price {
		return Result{
			Message: fmt.Sprintf("Come back when you've got more gold, stranger. A %s costs %d gold.", item.ID, item.Price),
		}
	}

	h.ChangeGold(-item.Price)
	h.AddItem(item.ID)
	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Ye' got yerself a %s for %d gold. Come again soon.", item.ID, item.Price),
		Tone:      ToneGold,
		GoldDelta: -item.Price,
	}
}

func (s *Shop) sell(h *entity.Hunter, item *gamedata.ItemDef) Result {
	if !h.HasItem(item.ID) {
		return Result{Message: fmt.Sprintf("You don't have a %s to sell.", item.ID)}
	}

	price := s.SellPrice(item)
	h.RemoveItem(item.ID)
	h.ChangeGold(price)
	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Pleasure doin' business with you. You sold your %s for %d gold.", item.ID, price),
		Tone:      ToneGold,
		GoldDelta: price,
	}
}
