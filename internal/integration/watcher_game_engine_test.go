package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/rules"
	"github.com/manacurve/goldfish/internal/game/watchers"
	"github.com/manacurve/goldfish/internal/sim"
)

func getWatcher[T rules.Watcher](t *testing.T, g *game.Game, key string) T {
	t.Helper()
	w, ok := g.WatcherRegistry().GetWatcher(key).(T)
	require.True(t, ok, "watcher %s not registered", key)
	return w
}

func TestWatchersTallyADrivenTurn(t *testing.T) {
	herald := mustCreature(t, "Gate Herald", "", "Creature — Human Soldier", 1, 1,
		"When Gate Herald enters the battlefield, create two 1/1 white Soldier creature tokens.")
	commander := mustCreature(t, "Rokh, Skyrider", "", "Legendary Creature — Human Knight", 4, 4, "Haste")

	g := openScenario(t, sevenCardDeck(t, commander, herald))

	castFromHand(t, g, "Gate Herald")
	require.NoError(t, g.CastSpell(g.Commander(), 0))
	drainAll(t, g)

	spells := getWatcher[*watchers.SpellsCastWatcher](t, g, "SpellsCastWatcher")
	require.Equal(t, 2, spells.Count())
	require.Equal(t, []string{"Gate Herald", "Rokh, Skyrider"}, spells.Names())

	tokens := getWatcher[*watchers.TokensCreatedWatcher](t, g, "TokensCreatedWatcher")
	require.Equal(t, 2, tokens.Total())

	advanceTo(g, rules.StepDeclareAttackers)
	cmd := g.CommanderPermanent()
	require.NotNil(t, cmd)
	require.NoError(t, g.DeclareAttackers([]string{cmd.ID}, 0))
	advanceTo(g, rules.StepCombatDamage)
	g.ResolveCombatDamage()

	damage := getWatcher[*watchers.DamageDealtWatcher](t, g, "DamageDealtWatcher")
	require.Equal(t, 4, damage.Total())
	require.Equal(t, 4, damage.Combat())
	require.Zero(t, damage.Noncombat())
}

func TestTurnScopedWatchersResetAtCleanup(t *testing.T) {
	body := mustCreature(t, "Field Runner", "", "Creature — Human", 1, 1, "")
	g := openScenario(t, sevenCardDeck(t,
		mustCreature(t, "Lena, Host Captain", "", "Legendary Creature — Human", 2, 2, ""),
		body))

	castFromHand(t, g, "Field Runner")
	spells := getWatcher[*watchers.SpellsCastWatcher](t, g, "SpellsCastWatcher")
	died := getWatcher[*watchers.CreaturesDiedWatcher](t, g, "CreaturesDiedWatcher")
	require.Equal(t, 1, spells.Count())

	advanceTo(g, rules.StepCleanup)
	g.CleanupStep()

	require.Zero(t, spells.Count(), "turn-scoped tallies clear at cleanup")
	require.Zero(t, died.Total(), "game-scoped tallies were never touched")
}

func TestNoncombatDamageSplitsFromCombat(t *testing.T) {
	bleeder := mustCard(t, "Toll Chime", "", "Enchantment",
		"Whenever a creature enters the battlefield under your control, each opponent loses 1 life.")
	body := mustCreature(t, "Field Runner", "", "Creature — Human", 1, 1, "")

	g := openScenario(t, sevenCardDeck(t,
		mustCreature(t, "Lena, Host Captain", "", "Legendary Creature — Human", 2, 2, ""),
		bleeder, body))

	castFromHand(t, g, "Toll Chime")
	castFromHand(t, g, "Field Runner")
	drainAll(t, g)

	damage := getWatcher[*watchers.DamageDealtWatcher](t, g, "DamageDealtWatcher")
	require.Equal(t, 3, damage.Total(), "one life from each of three opponents")
	require.Zero(t, damage.Combat())
	require.Equal(t, 3, damage.Noncombat())
}

func TestResultRecordMirrorsWatcherTallies(t *testing.T) {
	d := tokensDeck(t)
	res := sim.RunGame(d, sim.Params{Seed: 21, MaxTurns: 12, EnhancedAI: true})

	require.False(t, res.Failed, "cause: %s", res.FailureCause)
	require.Equal(t, res.TotalDamage, res.CombatDamage+res.NoncombatDamage)
	require.GreaterOrEqual(t, res.CardsDrawn, res.Turns-1,
		"at least the turn draws land in the record")
}
