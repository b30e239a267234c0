package ai

import (
	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/deck"
)

// Baseline tier bonuses. The commander outranks any realistic pattern
// stack; each tier below it outweighs the one after.
const (
	commanderBonus  = 100.0
	archetypeUnit   = 10.0
	resilientBonus  = 8.0
	manaSourceBonus = 6.0
	statWeight      = 0.5
	spellWeight     = 0.25
)

// Baseline scores plays from fixed priority tiers. It keeps no history and
// computes no metrics, so it always terminates and serves as the fallback
// when the enhanced path fails.
type Baseline struct{}

func (Baseline) Score(c Candidate, v View) float64 {
	score := 0.0
	if c.Commander {
		score += commanderBonus
	}
	score += archetypeUnit * tagWeight(v.Weights, c.Card, c.Commander)
	if resilient(c.Card) {
		score += resilientBonus
	}
	if producesMana(c.Card) {
		score += manaSourceBonus
	}
	score += statWeight * float64(c.Card.BasePower()+c.Card.BaseToughness())
	if !c.Card.IsCreature() {
		score += spellWeight * float64(c.Card.ManaValue())
	}
	return score
}

func (b Baseline) ChooseBest(cands []Candidate, v View) (Candidate, bool) {
	return chooseFirstBest(b, cands, v)
}

// ShouldHold is always false: the baseline plays out whatever it can pay
// for.
func (Baseline) ShouldHold(*deck.CardDefinition, View) bool { return false }

// tagWeight sums the classifier's priority weights over the card's tags.
func tagWeight(w archetype.PriorityWeights, card *deck.CardDefinition, commander bool) float64 {
	if len(w) == 0 {
		return 0
	}
	total := 0.0
	for _, tag := range archetype.CardTags(card, commander) {
		total += w[tag]
	}
	return total
}

// resilient reports whether the card shrugs off targeted removal.
func resilient(card *deck.CardDefinition) bool {
	return card.Abilities.HasKeyword("hexproof") ||
		card.Abilities.HasKeyword("indestructible")
}

// producesMana reports whether the card makes mana once resolved, either
// as a rock or dork or as a ritual.
func producesMana(card *deck.CardDefinition) bool {
	for _, a := range card.Abilities.Activated {
		if a.IsManaAbility() {
			return true
		}
	}
	for _, e := range card.Abilities.SpellEffects {
		if e.Kind == ability.EffectAddMana {
			return true
		}
	}
	return false
}
