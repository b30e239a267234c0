package ai

import (
	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
)

// Score adjustments the enhanced scorer applies on top of the baseline.
const (
	drawPriorityBonus   = 8.0
	scarcityPenalty     = 6.0
	manaFixBonus        = 4.0
	diversityBonus      = 1.5
	wasteRecoveryWeight = 3.0
	deferCheapPenalty   = 1.0
	playBonus           = 2.0
	holdPenalty         = 5.0
)

// Enhanced layers the resource metrics over the baseline tiers. A failure
// inside the metric pass must never abort a simulation, so the score falls
// back to the bare baseline figure.
type Enhanced struct {
	base   Baseline
	logger *zap.Logger
}

// NewEnhanced builds the enhanced scorer. The logger may be nil.
func NewEnhanced(logger *zap.Logger) *Enhanced {
	return &Enhanced{logger: logger}
}

func (e *Enhanced) Score(c Candidate, v View) (score float64) {
	score = e.base.Score(c, v)
	defer func() {
		if r := recover(); r != nil && e.logger != nil {
			e.logger.Warn("enhanced scoring fell back to baseline",
				zap.String("card", c.Card.Name),
				zap.Any("cause", r))
		}
	}()
	score += e.adjust(c, v, computeMetrics(v))
	return score
}

func (e *Enhanced) ChooseBest(cands []Candidate, v View) (Candidate, bool) {
	return chooseFirstBest(e, cands, v)
}

// ShouldHold reports whether the card should stay in hand this decision:
// the opportunity estimate says hold, or scarcity is critical and the card
// is expensive, or it cannot be cast this turn or the next.
func (e *Enhanced) ShouldHold(card *deck.CardDefinition, v View) bool {
	m := computeMetrics(v)
	c := Candidate{
		Card:     card,
		Cost:     &card.Cost,
		Castable: card.ManaValue() <= v.AvailableMana,
	}
	if m.opportunity(c, v) == recommendHold {
		return true
	}
	if m.criticalScarcity && card.ManaValue() >= expensiveManaValue {
		return true
	}
	if !c.Castable && !m.castableNextTurn(c.Cost) {
		return true
	}
	return false
}

// adjust applies the metric-driven corrections for one candidate.
func (e *Enhanced) adjust(c Candidate, v View, m resourceMetrics) float64 {
	adj := 0.0
	if m.prioritizeDraw && hasCategory(c.Card, ability.CategoryCardDraw) {
		adj += drawPriorityBonus
	}
	if m.criticalScarcity && c.Card.ManaValue() >= expensiveManaValue {
		adj -= scarcityPenalty
	}
	if m.landRatio < lowLandRatio && producesMana(c.Card) {
		adj += manaFixBonus
	}
	if m.categorySpread <= narrowSpread && addsNewCategory(c.Card, v.Hand) {
		adj += diversityBonus
	}
	if m.wastedMana > 0 && c.Castable {
		adj += wasteRecoveryWeight * safeDiv(float64(costValue(c.Cost)), float64(v.AvailableMana), 0)
	}
	if c.Castable && costValue(c.Cost) < v.AvailableMana && m.castableNextTurn(c.Cost) {
		adj -= deferCheapPenalty
	}
	switch m.opportunity(c, v) {
	case recommendPlay:
		adj += playBonus
	case recommendHold:
		adj -= holdPenalty
	}
	return adj
}

// hasCategory reports whether the card's parsed abilities include the
// pattern category.
func hasCategory(card *deck.CardDefinition, category string) bool {
	for _, c := range card.Abilities.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// addsNewCategory reports whether the card brings a role no other hand
// card covers.
func addsNewCategory(card *deck.CardDefinition, hand []*deck.CardDefinition) bool {
	mine := card.Abilities.Categories()
	if len(mine) == 0 {
		return false
	}
	others := make(map[string]bool)
	for _, h := range hand {
		if h == card {
			continue
		}
		for _, cat := range h.Abilities.Categories() {
			others[cat] = true
		}
	}
	for _, cat := range mine {
		if !others[cat] {
			return true
		}
	}
	return false
}
