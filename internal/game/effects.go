package game

import (
	"strings"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// effectContext carries what an effect needs to resolve: its source, the
// permanent the triggering event was about ("it"), and the X value chosen
// when the source was cast or activated.
type effectContext struct {
	source     *Permanent
	sourceID   string
	sourceName string
	subjectID  string
	x          int
}

// applyEffects resolves a parsed effect list in order. A failed effect stops
// the list; everything already resolved stays resolved.
func (g *Game) applyEffects(effects []ability.Effect, ctx effectContext) error {
	for _, e := range effects {
		if err := g.applyEffect(e, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) applyEffect(e ability.Effect, ctx effectContext) error {
	amount := e.Amount.Value(ctx.x)

	switch e.Kind {
	case ability.EffectCreateTokens:
		g.CreateTokens(tokenSpecFor(e), amount)

	case ability.EffectDraw:
		g.Draw(amount)

	case ability.EffectOpponentsLose:
		g.EachOpponentLosesLife(amount, ctx.sourceName)

	case ability.EffectGainLife:
		g.GainLife(amount, ctx.sourceID, ctx.sourceName)

	case ability.EffectDamage:
		if e.Target == ability.TargetEachOpponent {
			g.EachOpponentLosesLife(amount, ctx.sourceName)
		} else {
			g.OpponentLosesLife(g.weakestOpponent(), amount, ctx.sourceName)
		}

	case ability.EffectPutCounters:
		name := e.CounterName
		if name == "" {
			name = "+1/+1"
		}
		for _, target := range g.effectTargets(e.Target, ctx) {
			g.PutCounters(target, name, amount, ctx.sourceID, ctx.sourceName)
		}

	case ability.EffectPump:
		for _, target := range g.effectTargets(e.Target, ctx) {
			if e.Duration == ability.DurationEndOfTurn {
				target.TempPower += e.Power
				target.TempToughness += e.Toughness
				for _, k := range e.Keywords {
					if !target.HasSelfKeyword(k) {
						target.TempKeywords = append(target.TempKeywords, k)
					}
				}
			} else {
				target.Power += e.Power
				target.Toughness += e.Toughness
				target.Keywords = append(target.Keywords, e.Keywords...)
			}
		}

	case ability.EffectMill:
		g.Mill(amount)

	case ability.EffectAddMana:
		added := len(e.Mana)
		for _, mt := range e.Mana {
			g.pool.Add(mt, 1)
		}
		if e.AnyColor {
			g.pool.Add(g.pickAnyColor(nil), amount)
			added += amount
		}
		if added > 0 {
			g.publish(rules.NewEventWithAmount(rules.EventManaAdded, "", ctx.sourceID, ctx.sourceName, added))
		}

	case ability.EffectSacrifice:
		switch e.Target {
		case ability.TargetSelf, ability.TargetIt:
			for _, victim := range g.effectTargets(e.Target, ctx) {
				g.moveToGraveyard(victim, true)
			}
		default:
			excludeID := ""
			if ctx.source != nil {
				excludeID = ctx.source.ID
			}
			if victim := g.resolveSacrifice(e.CardType, "", excludeID); victim != nil {
				g.moveToGraveyard(victim, true)
			}
		}

	case ability.EffectReturnFromGraveyard:
		card := g.bestGraveyardCard(e.CardType)
		if card != nil {
			return g.ReturnFromGraveyard(card, e.ToBattlefield)
		}

	case ability.EffectNone:
	}
	return nil
}

// tokenSpecFor builds the token spec an effect describes. Treasures and
// other typeless named tokens default to artifacts when they have no stats.
func tokenSpecFor(e ability.Effect) TokenSpec {
	spec := TokenSpec{
		Name:      e.TokenName,
		Power:     e.Power,
		Toughness: e.Toughness,
		Colors:    e.TokenColors,
		Keywords:  e.TokenKeywords,
		Tapped:    e.TokensTapped,
	}
	switch {
	case e.CardType == "artifact":
		spec.Types = []string{"Artifact"}
	case e.CardType == "creature":
		spec.Types = []string{"Creature"}
	case strings.EqualFold(e.TokenName, "treasure"):
		spec.Types = []string{"Artifact"}
	}
	return spec
}

// effectTargets resolves a target scope to the permanents affected.
func (g *Game) effectTargets(scope ability.TargetScope, ctx effectContext) []*Permanent {
	switch scope {
	case ability.TargetSelf:
		if ctx.source != nil {
			return []*Permanent{ctx.source}
		}
		return nil

	case ability.TargetIt:
		if ctx.subjectID != "" {
			if p, ok := g.FindPermanent(ctx.subjectID); ok {
				return []*Permanent{p}
			}
		}
		return nil

	case ability.TargetEquippedCreature:
		if ctx.source != nil && ctx.source.AttachedTo != "" {
			if p, ok := g.FindPermanent(ctx.source.AttachedTo); ok {
				return []*Permanent{p}
			}
		}
		return nil

	case ability.TargetYourCreatures:
		var out []*Permanent
		for _, p := range g.battlefield {
			if p.IsCreature() {
				out = append(out, p)
			}
		}
		return out

	case ability.TargetTargetCreature:
		if p := g.bestCreature(); p != nil {
			return []*Permanent{p}
		}
		return nil

	default:
		if ctx.source != nil {
			return []*Permanent{ctx.source}
		}
		return nil
	}
}

// bestCreature picks the creature a beneficial targeted effect lands on: the
// biggest, commander winning ties.
func (g *Game) bestCreature() *Permanent {
	var best *Permanent
	for _, p := range g.battlefield {
		if !p.IsCreature() {
			continue
		}
		if best == nil {
			best = p
			continue
		}
		if g.PowerOf(p) > g.PowerOf(best) || (g.PowerOf(p) == g.PowerOf(best) && p.Commander && !best.Commander) {
			best = p
		}
	}
	return best
}

// bestGraveyardCard picks the reanimation target: the most expensive
// graveyard card matching the type filter.
func (g *Game) bestGraveyardCard(cardType string) *deck.CardDefinition {
	if cardType == "" {
		cardType = "creature"
	}
	var best *deck.CardDefinition
	for _, c := range g.graveyard {
		if cardType != "card" && !c.IsType(cardType) {
			continue
		}
		if best == nil || c.ManaValue() > best.ManaValue() {
			best = c
		}
	}
	return best
}
