package game

import (
	"strings"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
)

// Static abilities are not registered anywhere; they are recomputed from the
// battlefield on every query. Boards stay small enough that scanning wins
// over bookkeeping.

// tokenDoublers counts token doubling effects in play.
func (g *Game) tokenDoublers() int {
	count := 0
	for _, p := range g.battlefield {
		for _, s := range p.Abilities.Statics {
			if s.Kind == ability.StaticTokenDoubler {
				count++
			}
		}
	}
	return count
}

// anthemBonus sums the continuous power and toughness boosts that apply to
// the given creature. Token-only anthems skip nontoken creatures.
func (g *Game) anthemBonus(target *Permanent) (power, toughness int) {
	for _, p := range g.battlefield {
		for _, s := range p.Abilities.Statics {
			if s.Kind != ability.StaticAnthem {
				continue
			}
			if s.TokensOnly && !target.Token {
				continue
			}
			power += s.Power
			toughness += s.Toughness
		}
	}
	return power, toughness
}

// CostReductionFor sums the cost reductions that apply to casting the card.
func (g *Game) CostReductionFor(card *deck.CardDefinition) int {
	total := 0
	for _, p := range g.battlefield {
		for _, s := range p.Abilities.Statics {
			if s.Kind != ability.StaticCostReduction {
				continue
			}
			if staticAppliesToSpell(s.SpellType, card) {
				total += s.Reduction
			}
		}
	}
	return total
}

func staticAppliesToSpell(spellType string, card *deck.CardDefinition) bool {
	switch spellType {
	case "":
		return true
	case "noncreature":
		return !card.IsCreature()
	default:
		return card.IsType(spellType)
	}
}

// PowerOf is the permanent's power with every battlefield-wide effect
// applied: counters, temporary boosts, anthems and carried equipment.
func (g *Game) PowerOf(p *Permanent) int {
	power := p.SelfPower()
	if p.IsCreature() {
		anthemP, _ := g.anthemBonus(p)
		power += anthemP
		equipP, _ := g.equipmentBonus(p)
		power += equipP
	}
	return power
}

// ToughnessOf is the permanent's toughness with every battlefield-wide
// effect applied.
func (g *Game) ToughnessOf(p *Permanent) int {
	toughness := p.SelfToughness()
	if p.IsCreature() {
		_, anthemT := g.anthemBonus(p)
		toughness += anthemT
		_, equipT := g.equipmentBonus(p)
		toughness += equipT
	}
	return toughness
}

// equipmentBonus sums the buffs of equipment attached to the permanent.
func (g *Game) equipmentBonus(p *Permanent) (power, toughness int) {
	for _, id := range p.Attachments {
		equip, ok := g.FindPermanent(id)
		if !ok {
			continue
		}
		for _, s := range equip.Abilities.Statics {
			if s.Kind == ability.StaticEquippedBuff {
				power += s.Power
				toughness += s.Toughness
			}
		}
	}
	return power, toughness
}

// HasKeyword reports whether the permanent has the keyword from any source:
// its own lines, anthem-style grants or attached equipment.
func (g *Game) HasKeyword(p *Permanent, keyword string) bool {
	if p.HasSelfKeyword(keyword) {
		return true
	}
	if p.IsCreature() {
		for _, other := range g.battlefield {
			for _, s := range other.Abilities.Statics {
				if s.Kind != ability.StaticAnthem && s.Kind != ability.StaticKeywordGrant {
					continue
				}
				if s.TokensOnly && !p.Token {
					continue
				}
				for _, k := range s.Keywords {
					if strings.EqualFold(k, keyword) {
						return true
					}
				}
			}
		}
	}
	for _, id := range p.Attachments {
		equip, ok := g.FindPermanent(id)
		if !ok {
			continue
		}
		for _, s := range equip.Abilities.Statics {
			if s.Kind != ability.StaticEquippedBuff {
				continue
			}
			for _, k := range s.Keywords {
				if strings.EqualFold(k, keyword) {
					return true
				}
			}
		}
	}
	return false
}
