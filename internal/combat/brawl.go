// Package combat resolves the bar brawls a hunter can pick in town.
package combat

import (
	"fmt"

	"github.com/samdwyer/treasurehunter/internal/random"
)

const (
	// Threshold above which a roll finds no trouble, and below which a brawl is lost.
	toughNoTroubleChance = 0.66
	mildNoTroubleChance  = 0.33

	minStake = 1
	maxStake = 10
)

// Brawler is the part of a hunter a brawl touches.
type Brawler interface {
	HasItem(item string) bool
	ChangeGold(delta int)
}

// BrawlResult contains the outcome of looking for trouble.
type BrawlResult struct {
	Found   bool   // False when no one wanted to fight
	Won     bool   // Only meaningful when Found
	Stake   int    // Gold won or lost
	Message string // Human-readable description
}

// GoldDelta is the signed change the brawl applied to the brawler's gold.
func (r BrawlResult) GoldDelta() int {
	switch {
	case !r.Found:
		return 0
	case r.Won:
		return r.Stake
	default:
		return -r.Stake
	}
}

// BrawlResolver decides brawls using the session's random policy.
type BrawlResolver struct {
	rng     *random.Policy
	samurai bool
}

// NewBrawlResolver creates a resolver. In samurai mode every brawl found is won.
func NewBrawlResolver(rng *random.Policy, samurai bool) *BrawlResolver {
	return &BrawlResolver{rng: rng, samurai: samurai}
}

// NoTroubleChance returns the threshold used for both brawl draws.
func NoTroubleChance(tough bool) float64 {
	if tough {
		return toughNoTroubleChance
	}
	return mildNoTroubleChance
}

// Resolve looks for a fight and settles it against b's gold.
//
// Two independent rolls are made against the same threshold: the first
// finds trouble when it is at or below the threshold, the second wins the
// fight when it is above it. The stake is drawn between the two rolls.
func (r *BrawlResolver) Resolve(b Brawler, tough bool) BrawlResult {
	threshold := NoTroubleChance(tough)

	if r.rng.Roll() > threshold {
		return BrawlResult{Message: "You couldn't find any trouble"}
	}

	result := BrawlResult{Found: true}
	msg := "You want trouble, stranger!  You got it!\nOof! Umph! Ow!\n"
	result.Stake = r.rng.Between(minStake, maxStake)

	if r.rng.Roll() > threshold || r.samurai {
		result.Won = true
		if r.samurai && b.HasItem("sword") {
			msg += "The brawler, seeing your sword, realizes they picked a losing fight and hands over their gold."
		} else {
			msg += "Okay, stranger! You proved yer mettle. Here, take my gold."
		}
		msg += fmt.Sprintf("\nYou won the brawl and receive %d gold.", result.Stake)
	} else {
		msg += "That'll teach you to go lookin' fer trouble in MY town! Now pay up!"
		msg += fmt.Sprintf("\nYou lost the brawl and pay %d gold.", result.Stake)
	}

	b.ChangeGold(result.GoldDelta())
	result.Message = msg
	return result
}
