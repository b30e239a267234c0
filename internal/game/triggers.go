package game

import (
	"strings"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// registerTriggers turns the permanent's parsed triggered abilities into
// live registrations. Commander triggers resolve first, then triggers from
// cards the deck's strategy was classified around, then everything else.
func (g *Game) registerTriggers(p *Permanent) {
	tier := rules.TierDefault
	switch {
	case p.Commander:
		tier = rules.TierCommander
	case g.strategyCards[p.Name]:
		tier = rules.TierStrategy
	}

	for _, trig := range p.Abilities.Triggered {
		trig := trig
		g.triggers.Register(rules.Trigger{
			SourceID:   p.ID,
			SourceName: p.Name,
			Tier:       tier,
			EventType:  trig.Event,
			Condition:  g.triggerCondition(p, trig),
			Build: func(event rules.Event) rules.Pending {
				return rules.Pending{
					SourceID:    p.ID,
					SourceName:  p.Name,
					Description: trig.Text,
					Resolve: func() error {
						return g.applyEffects(trig.Effects, effectContext{
							source:     p,
							sourceID:   p.ID,
							sourceName: p.Name,
							subjectID:  event.TargetID,
						})
					},
				}
			},
		})
	}
}

// triggerCondition compiles the trigger's subject restrictions into an event
// predicate. A nil return means the trigger fires on every event of its type.
func (g *Game) triggerCondition(p *Permanent, trig ability.Triggered) func(rules.Event) bool {
	if trig.Self {
		selfID := p.ID
		return func(e rules.Event) bool {
			return e.TargetID == selfID
		}
	}
	if trig.Subject == nil {
		return nil
	}
	return subjectCondition(p.ID, *trig.Subject)
}

// subjectCondition matches events against a parsed subject such as "another
// nontoken creature".
func subjectCondition(selfID string, s ability.Subject) func(rules.Event) bool {
	return func(e rules.Event) bool {
		if s.Another && e.TargetID == selfID {
			return false
		}
		typeLine := strings.ToLower(e.Data)
		if s.Token && !strings.Contains(typeLine, "token") {
			return false
		}
		if s.Nontoken && strings.Contains(typeLine, "token") {
			return false
		}
		switch s.Type {
		case "", "permanent", "spell":
			return true
		case "creature":
			return strings.Contains(typeLine, "creature")
		case "noncreature":
			return !strings.Contains(typeLine, "creature")
		default:
			return strings.Contains(typeLine, s.Type)
		}
	}
}
