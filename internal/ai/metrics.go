package ai

import (
	"math"
	"sort"

	"github.com/manacurve/goldfish/internal/game/mana"
)

// Bands and thresholds for the per-decision resource metrics.
const (
	// A library with this many turns of draws left reads fully stocked;
	// scarcity scales linearly below it.
	libraryComfort = 30.0
	handComfort    = 5.0

	scarcityLibraryWeight = 0.7
	scarcityHandWeight    = 0.3

	prioritizeDrawBand   = 0.5
	criticalScarcityBand = 0.25

	// Mana value at which a card counts as expensive for hold decisions.
	expensiveManaValue = 5

	lowLandRatio = 0.3
	narrowSpread = 2

	playThreshold = 0.75
	holdThreshold = 0.25
)

// recommendation is the opportunity-cost verdict on one candidate.
type recommendation int

const (
	recommendNeutral recommendation = iota
	recommendPlay
	recommendHold
)

// resourceMetrics are the per-decision signals the enhanced scorer layers
// over the baseline: scarcity, hand composition, mana efficiency, and the
// one-turn mana forecast. All of them are recomputed from the View on
// every decision; nothing carries over between calls.
type resourceMetrics struct {
	scarcity         float64
	prioritizeDraw   bool
	criticalScarcity bool

	landRatio      float64
	categorySpread int

	wastedMana int

	nextTurnMana int
}

// computeMetrics derives the signals from the snapshot. Empty-hand and
// zero-cost divisions collapse to neutral values instead of erroring.
func computeMetrics(v View) resourceMetrics {
	m := resourceMetrics{nextTurnMana: v.AvailableMana + 1}

	libraryFill := math.Min(float64(v.LibraryCount)/libraryComfort, 1)
	handFill := math.Min(float64(len(v.Hand))/handComfort, 1)
	m.scarcity = scarcityLibraryWeight*libraryFill + scarcityHandWeight*handFill
	m.prioritizeDraw = m.scarcity < prioritizeDrawBand
	m.criticalScarcity = m.scarcity < criticalScarcityBand

	lands := 0
	seen := make(map[string]bool)
	for _, card := range v.Hand {
		if card.IsLand() {
			lands++
			continue
		}
		for _, cat := range card.Abilities.Categories() {
			seen[cat] = true
		}
	}
	m.landRatio = safeDiv(float64(lands), float64(len(v.Hand)), 0)
	m.categorySpread = len(seen)

	m.wastedMana = wastedAfterGreedyFit(v)
	return m
}

// wastedAfterGreedyFit fits the hand's nonland costs into the available
// mana, biggest first, and returns what stays stranded.
func wastedAfterGreedyFit(v View) int {
	var costs []int
	for _, card := range v.Hand {
		if card.IsLand() {
			continue
		}
		costs = append(costs, card.ManaValue())
	}
	sort.Sort(sort.Reverse(sort.IntSlice(costs)))

	remaining := v.AvailableMana
	for _, mv := range costs {
		if mv > 0 && mv <= remaining {
			remaining -= mv
		}
	}
	return remaining
}

// castableNextTurn is the one-turn forecast: next turn is assumed to have
// one more land's worth of mana than now.
func (m resourceMetrics) castableNextTurn(cost *mana.Cost) bool {
	return costValue(cost) <= m.nextTurnMana
}

// opportunity weighs playing the card now against saving it. Immediate
// value is castability plus rate (stats per mana) plus strategy fit; the
// future value of keeping the card grows with its cost under resource
// pressure.
func (m resourceMetrics) opportunity(c Candidate, v View) recommendation {
	immediate := 0.0
	if c.Castable {
		immediate += 1.0
	}
	mv := float64(c.Card.ManaValue())
	stats := float64(c.Card.BasePower() + c.Card.BaseToughness())
	immediate += 0.25 * safeDiv(stats, mv, 1)
	immediate += 0.25 * tagWeight(v.Weights, c.Card, c.Commander)

	future := (1 - m.scarcity) * math.Min(mv/10, 1)

	switch value := immediate - future; {
	case value >= playThreshold:
		return recommendPlay
	case value <= holdThreshold:
		return recommendHold
	default:
		return recommendNeutral
	}
}

// costValue reads a cost's mana value, treating nil as free.
func costValue(cost *mana.Cost) int {
	if cost == nil {
		return 0
	}
	return cost.ManaValue()
}

// safeDiv is the underflow guard: division by zero yields the neutral
// value instead of propagating.
func safeDiv(num, den, neutral float64) float64 {
	if den == 0 {
		return neutral
	}
	return num / den
}
