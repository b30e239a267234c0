package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/rules"
)

var testParser = ability.NewParser()

func intp(n int) *int { return &n }

func mustCard(t *testing.T, name, cost, typeLine, text string) *deck.CardDefinition {
	t.Helper()
	card := &deck.CardDefinition{Name: name, ManaCost: cost, TypeLine: typeLine, Text: text}
	require.Empty(t, card.Derive(testParser), "parse warnings for %s", name)
	return card
}

func mustCreature(t *testing.T, name, cost, typeLine string, power, toughness int, text string) *deck.CardDefinition {
	t.Helper()
	card := &deck.CardDefinition{
		Name:      name,
		ManaCost:  cost,
		TypeLine:  typeLine,
		Power:     intp(power),
		Toughness: intp(toughness),
		Text:      text,
	}
	require.Empty(t, card.Derive(testParser), "parse warnings for %s", name)
	return card
}

// advanceTo steps the game forward without running step actions. Only
// usable inside a single turn; multi-turn flows go through the sim driver.
func advanceTo(g *game.Game, step rules.Step) {
	for g.Step() != step {
		g.AdvanceStep()
	}
}

// drainAll resolves every pending trigger, recursively queued ones
// included, and returns how many resolved.
func drainAll(t *testing.T, g *game.Game) int {
	t.Helper()
	count := 0
	for {
		ok, err := g.ResolveNext()
		require.NoError(t, err)
		if !ok {
			return count
		}
		count++
	}
}

// castFromHand finds the named card in hand and casts it.
func castFromHand(t *testing.T, g *game.Game, name string) {
	t.Helper()
	for _, card := range g.Hand() {
		if card.Name == name {
			require.NoError(t, g.CastSpell(card, 0))
			return
		}
	}
	t.Fatalf("%s not in hand", name)
}

// tokenCount counts token permanents on the battlefield.
func tokenCount(g *game.Game) int {
	n := 0
	for _, p := range g.Battlefield() {
		if p.Token {
			n++
		}
	}
	return n
}
