package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// The decks here total exactly seven cards so the opening hand holds the
// whole list and the scenario plays out the same on every seed. Costless
// spells keep mana out of the picture; cast.go's payment path has its own
// tests.

func sevenCardDeck(t *testing.T, commander *deck.CardDefinition, cards ...*deck.CardDefinition) *deck.Deck {
	t.Helper()
	d := &deck.Deck{Name: "scenario", Commander: commander}
	for _, c := range cards {
		d.Entries = append(d.Entries, deck.Entry{Card: c, Quantity: 1})
	}
	filler := 7 - len(cards)
	require.GreaterOrEqual(t, filler, 0, "scenario decks hold at most seven cards")
	if filler > 0 {
		d.Entries = append(d.Entries, deck.Entry{
			Card:     mustCard(t, "Wastes", "", "Basic Land", "{T}: Add {C}."),
			Quantity: filler,
		})
	}
	return d
}

func openScenario(t *testing.T, d *deck.Deck) *game.Game {
	t.Helper()
	g := game.NewGame(d, game.Options{Seed: 1})
	g.DrawOpeningHand()
	require.Equal(t, 7, g.HandCount())
	advanceTo(g, rules.StepMain1)
	return g
}

func TestDoublerDoublesTriggeredTokenBatch(t *testing.T) {
	doubler := mustCard(t, "Parade Grounds", "", "Enchantment",
		"If one or more tokens would be created under your control, twice that many of those tokens are created instead.")
	herald := mustCreature(t, "Gate Herald", "", "Creature — Human Soldier", 1, 1,
		"When Gate Herald enters the battlefield, create two 1/1 white Soldier creature tokens.")

	g := openScenario(t, sevenCardDeck(t,
		mustCreature(t, "Lena, Host Captain", "", "Legendary Creature — Human", 2, 2, ""),
		doubler, herald))

	castFromHand(t, g, "Parade Grounds")
	require.Zero(t, g.PendingCount(), "a static ability queues nothing")

	castFromHand(t, g, "Gate Herald")
	require.Equal(t, 1, g.PendingCount())
	drainAll(t, g)

	require.Equal(t, 4, tokenCount(g))
	require.NoError(t, g.CheckZoneInvariant())
}

func TestSacrificeLoopDrainsThroughDeathTrigger(t *testing.T) {
	maker := mustCreature(t, "Hive Warden", "", "Creature — Insect Druid", 1, 2,
		"When Hive Warden enters the battlefield, create two 1/1 green Insect creature tokens.")
	outlet := mustCard(t, "Bone Altar", "", "Artifact",
		"Sacrifice a creature: Draw a card.")
	bleeder := mustCreature(t, "Vault Gnawer", "", "Creature — Rat",
		2, 1, "Whenever another creature you control dies, each opponent loses 1 life.")

	g := openScenario(t, sevenCardDeck(t,
		mustCreature(t, "Sasha, Grave Steward", "", "Legendary Creature — Human", 2, 2, ""),
		maker, outlet, bleeder))

	castFromHand(t, g, "Vault Gnawer")
	castFromHand(t, g, "Bone Altar")
	castFromHand(t, g, "Hive Warden")
	drainAll(t, g)
	require.Equal(t, 2, tokenCount(g))

	var altarID string
	for _, p := range g.Battlefield() {
		if p.Name == "Bone Altar" {
			altarID = p.ID
		}
	}
	require.NotEmpty(t, altarID)

	handBefore := g.HandCount()
	require.NoError(t, g.ActivateAbility(altarID, 0, game.Activation{}))
	drainAll(t, g)

	require.Equal(t, 1, tokenCount(g), "one token fed the altar")
	require.Equal(t, handBefore+1, g.HandCount(), "the altar drew a card")
	for _, opp := range g.Opponents() {
		require.Equal(t, game.DefaultStartingLife-1, opp.Life)
	}
	require.NoError(t, g.CheckZoneInvariant())
}

func TestTokenBatchTriggerChainsOnce(t *testing.T) {
	// A token-created trigger fires off the batch event, not per token, so
	// the chain settles after a single extra resolution.
	maker := mustCreature(t, "Nest Tender", "", "Creature — Elf", 1, 1,
		"When Nest Tender enters the battlefield, create two 1/1 green Insect creature tokens.")
	payoff := mustCard(t, "Swarm Toll", "", "Enchantment",
		"Whenever you create one or more tokens, each opponent loses 1 life.")

	g := openScenario(t, sevenCardDeck(t,
		mustCreature(t, "Ixil, Broodcaller", "", "Legendary Creature — Elf", 2, 2, ""),
		maker, payoff))

	castFromHand(t, g, "Swarm Toll")
	castFromHand(t, g, "Nest Tender")
	resolved := drainAll(t, g)

	require.Equal(t, 2, resolved, "entry trigger, then one batch payoff")
	require.Equal(t, 2, tokenCount(g))
	for _, opp := range g.Opponents() {
		require.Equal(t, game.DefaultStartingLife-1, opp.Life)
	}
}

func TestCommanderTriggerResolvesBeforeBoardTriggers(t *testing.T) {
	// Both permanents trigger on the same entry event. The commander's
	// drain resolves first, so after the first resolution the opponents are
	// down 2 rather than 1.
	commander := mustCreature(t, "Maro, Field Caller", "", "Legendary Creature — Human", 2, 2,
		"Whenever a creature enters the battlefield under your control, each opponent loses 2 life.")
	watcherCard := mustCard(t, "Toll Chime", "", "Enchantment",
		"Whenever a creature enters the battlefield under your control, each opponent loses 1 life.")
	body := mustCreature(t, "Field Runner", "", "Creature — Human", 1, 1, "")

	g := openScenario(t, sevenCardDeck(t, commander, watcherCard, body))

	castFromHand(t, g, "Toll Chime")
	require.NoError(t, g.CastSpell(g.Commander(), 0))
	drainAll(t, g) // the commander's own entry sets off both triggers
	life := g.Opponents()[0].Life

	castFromHand(t, g, "Field Runner")
	require.Equal(t, 2, g.PendingCount())

	ok, err := g.ResolveNext()
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, life-2, g.Opponents()[0].Life,
		"commander drain resolves ahead of the chime")

	drainAll(t, g)
	require.Equal(t, life-3, g.Opponents()[0].Life)
}

func TestHasteCommanderAttacksTheTurnItLands(t *testing.T) {
	commander := mustCreature(t, "Rokh, Skyrider", "", "Legendary Creature — Human Knight", 4, 4, "Haste")

	g := openScenario(t, sevenCardDeck(t, commander))
	require.NoError(t, g.CastSpell(g.Commander(), 0))
	cmd := g.CommanderPermanent()
	require.NotNil(t, cmd)

	advanceTo(g, rules.StepDeclareAttackers)
	require.NoError(t, g.DeclareAttackers([]string{cmd.ID}, 0))
	advanceTo(g, rules.StepCombatDamage)
	g.ResolveCombatDamage()

	opp := g.Opponents()[0]
	require.Equal(t, game.DefaultStartingLife-4, opp.Life)
	require.Equal(t, 4, opp.CommanderDamage)
	require.NoError(t, g.CheckZoneInvariant())
}
