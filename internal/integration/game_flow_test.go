package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/sim"
)

// tokensDeck is a synergy list: token makers, a doubler, a drain payoff and
// an outlet, with the curve and land count of a playable Commander deck.
func tokensDeck(t *testing.T) *deck.Deck {
	t.Helper()
	return &deck.Deck{
		Name: "swarm",
		Commander: mustCreature(t, "Mirelle, Swarm Mother", "{2}{W}{B}",
			"Legendary Creature — Human Cleric", 2, 4,
			"Whenever a creature enters the battlefield under your control, each opponent loses 1 life."),
		Entries: []deck.Entry{
			{Card: mustCard(t, "Plains", "", "Basic Land — Plains", "{T}: Add {W}."), Quantity: 18},
			{Card: mustCard(t, "Swamp", "", "Basic Land — Swamp", "{T}: Add {B}."), Quantity: 18},
			{Card: mustCreature(t, "Field Medic", "{W}", "Creature — Human Cleric", 1, 1, ""), Quantity: 8},
			{Card: mustCreature(t, "Drill Sergeant", "{1}{W}", "Creature — Human Soldier", 1, 2,
				"When Drill Sergeant enters the battlefield, create two 1/1 white Soldier creature tokens."), Quantity: 8},
			{Card: mustCard(t, "Second Muster", "{2}{W}", "Enchantment",
				"If one or more tokens would be created under your control, twice that many of those tokens are created instead."), Quantity: 4},
			{Card: mustCard(t, "Bone Altar", "{2}", "Artifact",
				"Sacrifice a creature: Draw a card."), Quantity: 4},
			{Card: mustCreature(t, "Vault Gnawer", "{1}{B}", "Creature — Rat", 2, 1,
				"Whenever another creature you control dies, each opponent loses 1 life."), Quantity: 6},
			{Card: mustCard(t, "Rally Cry", "{1}{W}", "Sorcery",
				"Create three 1/1 white Soldier creature tokens."), Quantity: 4},
		},
	}
}

func TestFullGameProducesSoundRecord(t *testing.T) {
	d := tokensDeck(t)
	res := sim.RunGame(d, sim.Params{
		Seed:       11,
		MaxTurns:   14,
		EnhancedAI: true,
		Logger:     zaptest.NewLogger(t),
	})

	require.False(t, res.Failed, "cause: %s", res.FailureCause)
	require.LessOrEqual(t, res.Turns, 14)
	require.Equal(t, res.TotalDamage, res.CombatDamage+res.NoncombatDamage)
	require.Positive(t, res.TokensCreated, "a token deck should make tokens")
	require.Positive(t, res.CardsDrawn)
	require.Positive(t, res.LandsPlayed)
}

func TestIdenticalSeedsReplayIdentically(t *testing.T) {
	d := tokensDeck(t)
	params := func(tr *sim.Trace) sim.Params {
		return sim.Params{Seed: 99, MaxTurns: 12, EnhancedAI: true, Trace: tr}
	}

	tr1, tr2 := sim.NewTrace(), sim.NewTrace()
	res1 := sim.RunGame(d, params(tr1))
	res2 := sim.RunGame(d, params(tr2))

	require.Equal(t, res1, res2, "same seed, same record")
	require.Equal(t, tr1.Lines(), tr2.Lines(), "same seed, same play-by-play")
}

func TestBaselineAndEnhancedBothFinish(t *testing.T) {
	d := tokensDeck(t)
	for _, enhanced := range []bool{false, true} {
		res := sim.RunGame(d, sim.Params{Seed: 5, MaxTurns: 12, EnhancedAI: enhanced})
		require.False(t, res.Failed, "enhanced=%t cause: %s", enhanced, res.FailureCause)
		require.Positive(t, res.Turns)
	}
}

func TestBatchResultsFeedSummary(t *testing.T) {
	d := tokensDeck(t)
	results, summary := sim.RunBatch(d, sim.BatchOptions{
		Games:    6,
		Workers:  3,
		Seed:     42,
		MaxTurns: 10,
		Logger:   zaptest.NewLogger(t),
	})

	require.Len(t, results, 6)
	for i, r := range results {
		require.Equal(t, i, r.Game)
		require.False(t, r.Failed, "game %d cause: %s", i, r.FailureCause)
	}
	require.Equal(t, 6, summary.Games)
	require.Zero(t, summary.Failed)
	require.Positive(t, summary.MeanTokens)
	require.NotEmpty(t, summary.Archetype)
}

func TestYAMLDeckDrivesAWholeGame(t *testing.T) {
	raw := []byte(`
name: minimal swarm
commander:
  name: Teyla, Rally Captain
  cost: "{1}{W}"
  type: Legendary Creature — Human Soldier
  power: 2
  toughness: 2
  text: ""
cards:
  - name: Plains
    type: Basic Land — Plains
    text: "{T}: Add {W}."
    quantity: 36
  - name: Drill Sergeant
    cost: "{1}{W}"
    type: Creature — Human Soldier
    power: 1
    toughness: 2
    text: When Drill Sergeant enters the battlefield, create two 1/1 white Soldier creature tokens.
    quantity: 20
`)
	d, warnings, err := deck.Load(raw, testParser)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, 56, d.TotalQuantity())

	res := sim.RunGame(d, sim.Params{Seed: 3, MaxTurns: 12})
	require.False(t, res.Failed, "cause: %s", res.FailureCause)
	require.Positive(t, res.TokensCreated)
}

func TestClassifierStrategyReachesTheDriver(t *testing.T) {
	d := tokensDeck(t)
	strategy := archetype.Classify(d)
	require.NotEqual(t, archetype.Generic, strategy.Primary,
		"the swarm list should read as a real strategy")
	require.NotEmpty(t, strategy.StrategyCards)

	// A precomputed classification and an in-driver one decide identically.
	withStrategy := sim.RunGame(d, sim.Params{Seed: 7, MaxTurns: 10, EnhancedAI: true, Strategy: &strategy})
	without := sim.RunGame(d, sim.Params{Seed: 7, MaxTurns: 10, EnhancedAI: true})
	require.Equal(t, without, withStrategy)
}
