package game

import (
	"go.uber.org/zap"

	"github.com/manacurve/goldfish/internal/game/rules"
)

// CanAttack reports whether the permanent may be declared as an attacker
// this turn.
func (g *Game) CanAttack(p *Permanent) bool {
	if !p.IsCreature() || p.Tapped {
		return false
	}
	if g.HasKeyword(p, "defender") {
		return false
	}
	if p.EnteredTurn == g.turn.TurnNumber() && !g.HasKeyword(p, "haste") {
		return false
	}
	return true
}

// DeclareAttackers sends the listed creatures at one opponent. Attackers tap
// unless they have vigilance. Nobody blocks.
func (g *Game) DeclareAttackers(permIDs []string, opponent int) error {
	if g.over {
		return illegalAction("attack", "the game is over")
	}
	if g.turn.CurrentStep() != rules.StepDeclareAttackers {
		return illegalAction("attack", "outside the declare attackers step")
	}
	if opponent < 0 || opponent >= len(g.opponents) {
		return illegalAction("attack", "no opponent %d", opponent)
	}
	if g.opponents[opponent].Eliminated {
		return illegalAction("attack", "%s is already out of the game", g.opponents[opponent].Name)
	}

	for _, id := range permIDs {
		p, ok := g.FindPermanent(id)
		if !ok {
			return illegalAction("attack", "permanent %s is not on the battlefield", id)
		}
		if !g.CanAttack(p) {
			return illegalAction("attack", "%s cannot attack", p.Name)
		}
	}

	for _, id := range permIDs {
		p, _ := g.FindPermanent(id)
		if !g.HasKeyword(p, "vigilance") {
			p.Tapped = true
		}
		g.attacks = append(g.attacks, attack{permanentID: p.ID, opponent: opponent})

		evt := rules.NewEvent(rules.EventAttackerDeclared, p.ID, p.ID, p.Name)
		evt.Flag = true
		evt.Data = p.TypeLine
		g.publish(evt)
	}
	return nil
}

// AttackerCount returns how many attackers are declared this combat.
func (g *Game) AttackerCount() int {
	return len(g.attacks)
}

// ResolveCombatDamage deals each attacker's damage to the opponent it was
// sent at. Double strike doubles damage, lifelink feeds the pilot, and the
// commander's own damage counts toward the commander damage threshold.
func (g *Game) ResolveCombatDamage() {
	if g.turn.CurrentStep() != rules.StepCombatDamage {
		return
	}
	for _, atk := range g.attacks {
		p, ok := g.FindPermanent(atk.permanentID)
		if !ok {
			continue
		}
		opp := g.opponents[atk.opponent]
		if opp.Eliminated {
			continue
		}

		damage := g.PowerOf(p)
		if damage <= 0 {
			continue
		}
		if g.HasKeyword(p, "double strike") {
			damage *= 2
		}

		evt := rules.NewEventWithAmount(rules.EventCombatDamage, opp.Name, p.ID, p.Name, damage)
		evt.Flag = true
		g.publish(evt)

		opp.Life -= damage
		g.publish(rules.NewEventWithAmount(rules.EventOpponentLostLife, opp.Name, p.ID, p.Name, damage))

		if p.Commander {
			opp.CommanderDamage += damage
		}
		if g.HasKeyword(p, "lifelink") {
			g.GainLife(damage, p.ID, p.Name)
		}

		if g.logger != nil {
			g.logger.Debug("combat damage",
				zap.String("attacker", p.Name),
				zap.String("opponent", opp.Name),
				zap.Int("damage", damage),
				zap.Bool("commander", p.Commander))
		}
	}
	g.attacks = nil
	g.CheckStateBasedActions()
}
