package deck

import (
	"testing"

	"github.com/manacurve/goldfish/internal/ability"
)

func testCard(name, typeLine, cost string) *CardDefinition {
	card := &CardDefinition{Name: name, TypeLine: typeLine, ManaCost: cost}
	card.Derive(ability.NewParser())
	return card
}

func testCommander() *CardDefinition {
	power, toughness := 3, 3
	card := testCard("Test Marshal", "Legendary Creature — Human Soldier", "{2}{W}{W}")
	card.Power, card.Toughness = &power, &toughness
	return card
}

func TestValidate(t *testing.T) {
	d := &Deck{
		Name:      "ok",
		Commander: testCommander(),
		Entries: []Entry{
			{Card: testCard("Plains", "Basic Land — Plains", ""), Quantity: 10},
		},
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("Expected valid deck, got %v", err)
	}

	noncreature := testCard("Bauble", "Artifact", "{1}")
	d.Commander = noncreature
	if err := d.Validate(); err == nil {
		t.Error("Expected error for a non-creature commander")
	}

	d.Commander = testCommander()
	d.Entries = append(d.Entries, Entry{Card: testCard("Test Marshal", "Legendary Creature — Human Soldier", "{2}{W}{W}"), Quantity: 1})
	if err := d.Validate(); err == nil {
		t.Error("Expected error when the commander also appears in the list")
	}
}

func TestCalculateMetrics(t *testing.T) {
	d := &Deck{
		Name:      "curve",
		Commander: testCommander(),
		Entries: []Entry{
			{Card: testCard("Plains", "Basic Land — Plains", ""), Quantity: 8},
			{Card: testCard("Cheap Dork", "Creature — Elf Druid", "{G}"), Quantity: 4},
			{Card: testCard("Midrange Beast", "Creature — Beast", "{2}{G}{G}"), Quantity: 2},
			{Card: testCard("Huge Finisher", "Creature — Wurm", "{7}{G}{G}"), Quantity: 1},
			{Card: testCard("Cantrip", "Sorcery", "{U}"), Quantity: 1},
		},
	}

	m := CalculateMetrics(d)
	if m.TotalCards != 17 {
		t.Errorf("Expected 17 total cards, got %d", m.TotalCards)
	}
	if m.LandCount != 8 {
		t.Errorf("Expected 8 lands, got %d", m.LandCount)
	}
	if m.CreatureCount != 8 {
		t.Errorf("Expected 8 creatures including the commander, got %d", m.CreatureCount)
	}
	if m.Curve[1] != 5 {
		t.Errorf("Expected 5 one-drops, got %d", m.Curve[1])
	}
	if m.Curve[4] != 3 {
		t.Errorf("Expected 3 four-drops including the commander, got %d", m.Curve[4])
	}
	if m.Curve[7] != 1 {
		t.Errorf("Expected the nine-drop in the top bucket, got %d", m.Curve[7])
	}

	// 4x{G} + 2x{2}{G}{G} + 1x{7}{G}{G} = 10 green symbols.
	if m.ColorDistribution["G"] != 10 {
		t.Errorf("Expected 10 green symbols, got %d", m.ColorDistribution["G"])
	}
	if m.TypeBreakdown["Land"] != 8 {
		t.Errorf("Expected 8 land type entries, got %d", m.TypeBreakdown["Land"])
	}

	// (4*1 + 2*4 + 1*9 + 1*1 + 4) / 9 nonland cards.
	want := float64(4*1+2*4+1*9+1*1+4) / 9.0
	if m.AverageCost != want {
		t.Errorf("Expected average cost %.3f, got %.3f", want, m.AverageCost)
	}
}
