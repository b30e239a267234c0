package sim

import (
	"fmt"
	"strings"

	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// Trace collects an ordered human-readable log of one game from its event
// stream. It is purely observational; nothing in the engine reads it back.
type Trace struct {
	lines []string
}

// NewTrace creates an empty trace.
func NewTrace() *Trace {
	return &Trace{}
}

// Attach subscribes the trace to a game's event bus. One trace should watch
// one game.
func (t *Trace) Attach(g *game.Game) {
	g.EventBus().Subscribe(t.record)
}

// Notef appends a driver-side annotation outside the event stream.
func (t *Trace) Notef(format string, args ...interface{}) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// Lines returns the recorded entries in order.
func (t *Trace) Lines() []string {
	return t.lines
}

// String renders the whole trace, one entry per line.
func (t *Trace) String() string {
	return strings.Join(t.lines, "\n")
}

func (t *Trace) record(evt rules.Event) {
	switch evt.Type {
	case rules.EventTurnBegan:
		t.Notef("=== turn %d ===", evt.Amount)
	case rules.EventLandPlayed:
		t.Notef("  land: %s", evt.SourceName)
	case rules.EventSpellCast:
		t.Notef("  cast: %s (mv %d)", evt.SourceName, evt.Amount)
	case rules.EventAbilityActivated:
		t.Notef("  activate: %s (%s)", evt.SourceName, evt.Data)
	case rules.EventAttackerDeclared:
		t.Notef("  attack: %s", evt.SourceName)
	case rules.EventOpponentLostLife:
		t.Notef("  %s loses %d (%s)", evt.TargetID, evt.Amount, evt.SourceName)
	case rules.EventLifeGained:
		t.Notef("  gain %d life (%s)", evt.Amount, evt.SourceName)
	case rules.EventTokenCreated:
		t.Notef("  tokens: %d from %s", evt.Amount, evt.SourceName)
	case rules.EventPermanentDies:
		t.Notef("  dies: %s", evt.SourceName)
	case rules.EventCardDrawn:
		t.Notef("  draw: %s", evt.SourceName)
	case rules.EventCardMilled:
		t.Notef("  mill: %s", evt.SourceName)
	case rules.EventOpponentEliminated:
		t.Notef("  eliminated: %s", evt.TargetID)
	case rules.EventDeckedOut:
		t.Notef("  library empty")
	}
}
