package game

import (
	"testing"

	"github.com/manacurve/goldfish/internal/game/rules"
)

func TestEntersBattlefieldTriggerFires(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	maker := mustCreature(t, "Captain of the Watch", "{4}{W}{W}",
		"Creature — Human Soldier", 3, 3,
		"When Captain of the Watch enters the battlefield, create two 1/1 white soldier creature tokens.")
	put(g, maker)

	if g.PendingCount() != 1 {
		t.Fatalf("Expected 1 pending trigger, got %d", g.PendingCount())
	}
	drainAll(t, g)

	tokens := 0
	for _, p := range g.Battlefield() {
		if p.Token && p.IsCreature() {
			tokens++
		}
	}
	if tokens != 2 {
		t.Errorf("Expected 2 soldier tokens, got %d", tokens)
	}
}

func TestTokenDoublerDoublesTriggerTokens(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	put(g, mustCard(t, "Parallel Lives", "{3}{G}", "Enchantment",
		"If one or more tokens would be created under your control, twice that many of those tokens are created instead."))
	put(g, mustCreature(t, "Captain of the Watch", "{4}{W}{W}",
		"Creature — Human Soldier", 3, 3,
		"When Captain of the Watch enters the battlefield, create two 1/1 white soldier creature tokens."))
	drainAll(t, g)

	tokens := 0
	for _, p := range g.Battlefield() {
		if p.Token {
			tokens++
		}
	}
	if tokens != 4 {
		t.Errorf("Expected doubler to make 4 tokens, got %d", tokens)
	}
}

func TestDeathDrainAgainstEachOpponent(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	artist := put(g, mustCreature(t, "Blood Artist", "{1}{B}", "Creature — Vampire",
		0, 1, "Whenever Blood Artist or another creature you control dies, each opponent loses 1 life and you gain 1 life."))
	first := put(g, mustCreature(t, "Doomed Traveler", "{W}", "Creature — Human", 1, 1, ""))
	second := put(g, mustCreature(t, "Goblin Raider", "{1}{R}", "Creature — Goblin", 2, 2, ""))

	if err := g.SacrificePermanent(first.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	if err := g.SacrificePermanent(second.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	drainAll(t, g)

	for i, opp := range g.Opponents() {
		if opp.Life != 38 {
			t.Errorf("Expected opponent %d at 38, got %d", i, opp.Life)
		}
	}
	if g.Life() != DefaultStartingLife+2 {
		t.Errorf("Expected 2 life gained, got %d", g.Life())
	}

	// The drain counts its own death too.
	if err := g.SacrificePermanent(artist.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	drainAll(t, g)
	if got := g.Opponents()[0].Life; got != 37 {
		t.Errorf("Expected the artist's own death to drain, opponent at %d", got)
	}
}

func TestAnotherExcludesTheSource(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	watcher := put(g, mustCreature(t, "Grim Haruspex", "{2}{B}", "Creature — Human Wizard",
		3, 2, "Whenever another creature you control dies, draw a card."))
	fodder := put(g, mustCreature(t, "Doomed Traveler", "{W}", "Creature — Human", 1, 1, ""))

	if err := g.SacrificePermanent(fodder.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	if g.PendingCount() != 1 {
		t.Fatalf("Expected the other death to trigger, got %d pending", g.PendingCount())
	}
	drainAll(t, g)

	if err := g.SacrificePermanent(watcher.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	if g.PendingCount() != 0 {
		t.Errorf("Expected no trigger on the source's own death, got %d pending", g.PendingCount())
	}
}

func TestTriggerTiersOrderResolution(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})
	g.SetStrategyCards([]string{"Strategy Piece"})

	text := "At the beginning of your upkeep, you gain 1 life."
	put(g, mustCard(t, "Plain Piece", "{2}", "Enchantment", text))
	put(g, mustCard(t, "Strategy Piece", "{2}", "Enchantment", text))

	boss := NewPermanent(mustCreature(t, "Krenko, Mob Boss", "{2}{R}{R}",
		"Legendary Creature — Goblin Warrior", 3, 3,
		"At the beginning of your upkeep, you gain 1 life."), 0)
	boss.Commander = true
	g.enterBattlefield(boss)

	g.UpkeepStep()
	if g.PendingCount() != 3 {
		t.Fatalf("Expected 3 upkeep triggers, got %d", g.PendingCount())
	}

	want := []string{"Krenko, Mob Boss", "Strategy Piece", "Plain Piece"}
	for i, p := range g.pending.List() {
		if p.SourceName != want[i] {
			t.Errorf("Expected %s at position %d, got %s", want[i], i, p.SourceName)
		}
	}
}

func TestUpkeepAndEndStepTriggers(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	put(g, mustCard(t, "Honden of Cleansing Fire", "{3}{W}", "Enchantment — Shrine",
		"At the beginning of your upkeep, you gain 2 life."))
	put(g, mustCard(t, "Twilight Shrine", "{2}{W}", "Enchantment",
		"At the beginning of your end step, create a 1/1 white spirit creature token."))

	g.UpkeepStep()
	drainAll(t, g)
	if g.Life() != DefaultStartingLife+2 {
		t.Errorf("Expected upkeep gain of 2, got life %d", g.Life())
	}

	g.EndStep()
	drainAll(t, g)
	spirits := 0
	for _, p := range g.Battlefield() {
		if p.Token {
			spirits++
		}
	}
	if spirits != 1 {
		t.Errorf("Expected an end step spirit, got %d tokens", spirits)
	}
}

func TestNoncreatureCastTriggerFiltersSpells(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})
	advanceTo(g, rules.StepMain1)

	put(g, mustCreature(t, "Young Pyromancer", "{1}{R}", "Creature — Human Shaman",
		2, 1, "Whenever you cast a noncreature spell, create a 1/1 red elemental creature token."))

	mountain := mustCard(t, "Mountain", "", "Basic Land — Mountain", "{T}: Add {R}.")
	for i := 0; i < 4; i++ {
		put(g, mountain)
	}

	raider := mustCreature(t, "Goblin Raider", "{1}{R}", "Creature — Goblin", 2, 2, "")
	g.hand = append(g.hand, raider)
	if err := g.CastSpell(raider, 0); err != nil {
		t.Fatalf("Expected creature cast, got %v", err)
	}
	if g.PendingCount() != 0 {
		t.Fatalf("Expected no trigger on a creature spell, got %d pending", g.PendingCount())
	}

	burst := mustCard(t, "Flame Burst", "{1}{R}", "Instant", "Deal 2 damage to any target.")
	g.hand = append(g.hand, burst)
	if err := g.CastSpell(burst, 0); err != nil {
		t.Fatalf("Expected instant cast, got %v", err)
	}
	if g.PendingCount() != 1 {
		t.Fatalf("Expected the instant to trigger, got %d pending", g.PendingCount())
	}
	drainAll(t, g)

	elementals := 0
	for _, p := range g.Battlefield() {
		if p.Token {
			elementals++
		}
	}
	if elementals != 1 {
		t.Errorf("Expected 1 elemental token, got %d", elementals)
	}
}

func TestSacrificeTriggerIgnoresOtherDeaths(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	put(g, mustCard(t, "Altar Keeper", "{1}{B}", "Enchantment",
		"Whenever you sacrifice a creature, draw a card."))

	victim := put(g, mustCreature(t, "Doomed Traveler", "{W}", "Creature — Human", 1, 1, ""))
	if err := g.SacrificePermanent(victim.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	if g.PendingCount() != 1 {
		t.Fatalf("Expected sacrifice trigger, got %d pending", g.PendingCount())
	}
	drainAll(t, g)

	casualty := put(g, mustCreature(t, "Goblin Raider", "{1}{R}", "Creature — Goblin", 2, 2, ""))
	casualty.Damage = 5
	g.CheckStateBasedActions()
	if _, ok := g.FindPermanent(casualty.ID); ok {
		t.Fatal("Expected the raider destroyed")
	}
	if g.PendingCount() != 0 {
		t.Errorf("Expected no sacrifice trigger on a combat death, got %d pending", g.PendingCount())
	}
}

func TestTriggersUnregisterWhenSourceLeaves(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	greeter := put(g, mustCreature(t, "Soul Warden", "{W}", "Creature — Human Cleric",
		1, 1, "Whenever another creature you control enters the battlefield, you gain 1 life."))

	put(g, mustCreature(t, "Doomed Traveler", "{W}", "Creature — Human", 1, 1, ""))
	drainAll(t, g)
	if g.Life() != DefaultStartingLife+1 {
		t.Fatalf("Expected 1 life from the first arrival, got %d", g.Life())
	}

	if err := g.SacrificePermanent(greeter.ID); err != nil {
		t.Fatalf("Expected sacrifice, got %v", err)
	}
	drainAll(t, g)

	put(g, mustCreature(t, "Goblin Raider", "{1}{R}", "Creature — Goblin", 2, 2, ""))
	if g.PendingCount() != 0 {
		t.Errorf("Expected no trigger after the source left, got %d pending", g.PendingCount())
	}
}

func TestTriggerEffectTargetsTheSubject(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	put(g, mustCreature(t, "Trainer of Champions", "{1}{W}", "Creature — Human",
		1, 1, "Whenever another creature you control enters the battlefield, put a +1/+1 counter on it."))

	bear := put(g, mustCreature(t, "Grizzly Bears", "{1}{G}", "Creature — Bear", 2, 2, ""))
	drainAll(t, g)

	if bear.Counters.Count("+1/+1") != 1 {
		t.Errorf("Expected a counter on the bear, got %d", bear.Counters.Count("+1/+1"))
	}
	if g.PowerOf(bear) != 3 {
		t.Errorf("Expected bear at 3 power, got %d", g.PowerOf(bear))
	}
}

func TestSelfSacrificeTriggerKillsItsOwnSource(t *testing.T) {
	g := NewGame(testDeck(t), Options{Seed: 1})

	bystander := put(g, mustCreature(t, "Doomed Traveler", "{W}", "Creature — Human", 1, 1, ""))
	spirit := put(g, mustCreature(t, "Fading Spirit", "{1}{W}", "Creature — Spirit", 2, 2,
		"When Fading Spirit enters the battlefield, sacrifice Fading Spirit."))
	drainAll(t, g)

	if _, ok := g.FindPermanent(spirit.ID); ok {
		t.Error("Expected the spirit to sacrifice itself")
	}
	if _, ok := g.FindPermanent(bystander.ID); !ok {
		t.Error("Expected the bystander to survive a self-sacrifice")
	}
	buried := false
	for _, c := range g.GraveyardCards() {
		if c.Name == "Fading Spirit" {
			buried = true
		}
	}
	if !buried {
		t.Error("Expected the spirit in the graveyard")
	}
}
