package watchers

import (
	"testing"

	"github.com/manacurve/goldfish/internal/game/rules"
)

func TestSpellsCastWatcher(t *testing.T) {
	w := NewSpellsCastWatcher()

	if w.ConditionMet() {
		t.Error("Expected condition unmet before any spell")
	}

	w.Watch(rules.NewEventWithFlag(rules.EventSpellCast, "c1", "c1", "Llanowar Elves", false))
	w.Watch(rules.NewEventWithFlag(rules.EventSpellCast, "c2", "c2", "Divination", true))
	w.Watch(rules.NewEvent(rules.EventLandPlayed, "l1", "l1", "Forest"))

	if w.Count() != 2 {
		t.Errorf("Expected 2 spells counted, got %d", w.Count())
	}
	if w.NoncreatureCount() != 1 {
		t.Errorf("Expected 1 noncreature spell, got %d", w.NoncreatureCount())
	}
	if !w.ConditionMet() {
		t.Error("Expected condition met after casting")
	}
	names := w.Names()
	if len(names) != 2 || names[0] != "Llanowar Elves" || names[1] != "Divination" {
		t.Errorf("Expected cast order preserved, got %v", names)
	}

	w.Reset()
	if w.Count() != 0 || w.NoncreatureCount() != 0 || w.ConditionMet() {
		t.Error("Expected reset to clear all state")
	}
}

func TestSpellsCastWatcherScope(t *testing.T) {
	w := NewSpellsCastWatcher()
	if w.GetScope() != rules.WatcherScopeTurn {
		t.Errorf("Expected turn scope, got %v", w.GetScope())
	}
	if w.GetKey() != "SpellsCastWatcher" {
		t.Errorf("Expected key SpellsCastWatcher, got %q", w.GetKey())
	}
}

func TestLandsPlayedWatcher(t *testing.T) {
	w := NewLandsPlayedWatcher()

	w.Watch(rules.NewEvent(rules.EventLandPlayed, "l1", "l1", "Plains"))
	w.Watch(rules.NewEvent(rules.EventSpellCast, "c1", "c1", "Divination"))

	if w.Count() != 1 {
		t.Errorf("Expected 1 land played, got %d", w.Count())
	}

	w.Reset()
	if w.Count() != 0 {
		t.Errorf("Expected 0 after reset, got %d", w.Count())
	}
}

func TestLifeGainedWatcher(t *testing.T) {
	w := NewLifeGainedWatcher()

	w.Watch(rules.NewEventWithAmount(rules.EventLifeGained, "", "c1", "Soul Warden", 1))
	w.Watch(rules.NewEventWithAmount(rules.EventLifeGained, "", "c2", "Healer's Hawk", 2))
	w.Watch(rules.NewEventWithAmount(rules.EventOpponentLostLife, "opp1", "c3", "Zulaport Cutthroat", 5))

	if w.Amount() != 3 {
		t.Errorf("Expected 3 life gained, got %d", w.Amount())
	}
}

func TestDamageDealtWatcherSplitsCombatFromDrain(t *testing.T) {
	w := NewDamageDealtWatcher()

	// A combat hit reaches the watcher as both events.
	w.Watch(rules.NewEventWithAmount(rules.EventCombatDamage, "opp1", "c1", "Goblin Raider", 5))
	w.Watch(rules.NewEventWithAmount(rules.EventOpponentLostLife, "opp1", "c1", "Goblin Raider", 5))
	w.Watch(rules.NewEventWithAmount(rules.EventOpponentLostLife, "opp2", "c2", "Zulaport Cutthroat", 2))

	if w.Total() != 7 {
		t.Errorf("Expected 7 total damage, got %d", w.Total())
	}
	if w.Combat() != 5 {
		t.Errorf("Expected 5 combat damage, got %d", w.Combat())
	}
	if w.Noncombat() != 2 {
		t.Errorf("Expected 2 noncombat damage, got %d", w.Noncombat())
	}
	if w.GetScope() != rules.WatcherScopeGame {
		t.Errorf("Expected game scope, got %v", w.GetScope())
	}

	w.Reset()
	if w.Total() != 0 || w.Combat() != 0 {
		t.Error("Expected reset to clear all tallies")
	}
}

func TestCreaturesDiedWatcherCountsOnlyCreatures(t *testing.T) {
	w := NewCreaturesDiedWatcher()

	w.Watch(rules.NewEventWithFlag(rules.EventPermanentDies, "c1", "c1", "Doomed Traveler", true))
	w.Watch(rules.NewEventWithFlag(rules.EventPermanentDies, "a1", "a1", "Sol Ring", false))
	w.Watch(rules.NewEventWithFlag(rules.EventPermanentDies, "c2", "c2", "Hunted Witness", true))

	if w.Total() != 2 {
		t.Errorf("Expected 2 creature deaths, got %d", w.Total())
	}
	if w.GetScope() != rules.WatcherScopeGame {
		t.Errorf("Expected game scope, got %v", w.GetScope())
	}
}

func TestTokensCreatedWatcherSumsAmounts(t *testing.T) {
	w := NewTokensCreatedWatcher()

	w.Watch(rules.NewEventWithAmount(rules.EventTokenCreated, "", "c1", "Raise the Alarm", 2))
	w.Watch(rules.NewEventWithAmount(rules.EventTokenCreated, "", "c2", "Krenko, Mob Boss", 4))

	if w.Total() != 6 {
		t.Errorf("Expected 6 tokens created, got %d", w.Total())
	}
}

func TestCardsDrawnWatcher(t *testing.T) {
	w := NewCardsDrawnWatcher()

	for i := 0; i < 3; i++ {
		w.Watch(rules.NewEvent(rules.EventCardDrawn, "", "", ""))
	}

	if w.Total() != 3 {
		t.Errorf("Expected 3 cards drawn, got %d", w.Total())
	}
}

func TestManaWastedWatcherSumsPoolAmounts(t *testing.T) {
	w := NewManaWastedWatcher()

	w.Watch(rules.NewEventWithAmount(rules.EventEmptyManaPool, "", "", "", 2))
	w.Watch(rules.NewEvent(rules.EventCardDrawn, "", "", ""))
	w.Watch(rules.NewEventWithAmount(rules.EventEmptyManaPool, "", "", "", 1))

	if w.Total() != 3 {
		t.Errorf("Expected 3 mana wasted, got %d", w.Total())
	}
}

func TestWatcherRegistryRoundTrip(t *testing.T) {
	registry := rules.NewWatcherRegistry()
	registry.AddWatcher(NewSpellsCastWatcher())
	registry.AddWatcher(NewCreaturesDiedWatcher())

	registry.NotifyWatchers(rules.NewEventWithFlag(rules.EventSpellCast, "c1", "c1", "Shock", true))

	w, ok := registry.GetWatcher("SpellsCastWatcher").(*SpellsCastWatcher)
	if !ok {
		t.Fatal("Expected SpellsCastWatcher in registry")
	}
	if w.Count() != 1 {
		t.Errorf("Expected 1 spell seen via registry, got %d", w.Count())
	}

	registry.ResetWatchersByScope(rules.WatcherScopeTurn)
	if w.Count() != 0 {
		t.Errorf("Expected turn-scope reset to clear count, got %d", w.Count())
	}

	died, ok := registry.GetWatcher("CreaturesDiedWatcher").(*CreaturesDiedWatcher)
	if !ok {
		t.Fatal("Expected CreaturesDiedWatcher in registry")
	}
	if died.Total() != 0 {
		t.Errorf("Expected no creature deaths recorded, got %d", died.Total())
	}
}
