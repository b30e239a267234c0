package deck

import (
	"strings"
	"testing"

	"github.com/manacurve/goldfish/internal/ability"
)

const sampleDeckYAML = `
name: Soldier Swarm
commander:
  name: Valiant Field-Marshal
  cost: "{2}{W}{W}"
  type: "Legendary Creature — Human Soldier"
  power: 3
  toughness: 3
  text: "Whenever Valiant Field-Marshal attacks, create a 1/1 white soldier creature token."
cards:
  - name: Recruitment Drive
    cost: "{1}{W}"
    type: Sorcery
    text: "Create two 1/1 white soldier creature tokens."
    quantity: 4
  - name: Plains
    type: "Basic Land — Plains"
    text: "{T}: Add {W}."
    quantity: 10
`

func TestLoadDeckYAML(t *testing.T) {
	parser := ability.NewParser()

	d, warnings, err := Load([]byte(sampleDeckYAML), parser)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}
	if d.Name != "Soldier Swarm" {
		t.Errorf("Expected deck name Soldier Swarm, got %q", d.Name)
	}
	if d.Commander == nil || d.Commander.Name != "Valiant Field-Marshal" {
		t.Fatalf("Expected commander, got %+v", d.Commander)
	}
	if len(d.Commander.Abilities.Triggered) != 1 {
		t.Errorf("Expected commander attack trigger to parse, got %+v", d.Commander.Abilities)
	}
	if d.TotalQuantity() != 14 {
		t.Errorf("Expected 14 cards, got %d", d.TotalQuantity())
	}

	expanded := d.Expand()
	if len(expanded) != 14 {
		t.Fatalf("Expected 14 expanded cards, got %d", len(expanded))
	}
	if expanded[0].Name != "Recruitment Drive" || expanded[4].Name != "Plains" {
		t.Errorf("Expected expansion to preserve file order, got %s then %s",
			expanded[0].Name, expanded[4].Name)
	}

	plains := expanded[4]
	if !plains.IsLand() || plains.Cost.ManaValue() != 0 {
		t.Errorf("Expected a free land, got %+v", plains)
	}
	if len(plains.Abilities.Activated) != 1 || !plains.Abilities.Activated[0].IsManaAbility() {
		t.Errorf("Expected plains mana ability, got %+v", plains.Abilities)
	}
}

func TestLoadDeckDefaultsQuantity(t *testing.T) {
	parser := ability.NewParser()

	d, _, err := Load([]byte(`
name: Tiny
commander:
  name: Lone General
  type: "Legendary Creature — Human Soldier"
  cost: "{1}{W}"
  power: 2
  toughness: 2
cards:
  - name: Plains
    type: "Basic Land — Plains"
    text: "{T}: Add {W}."
`), parser)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if d.Entries[0].Quantity != 1 {
		t.Errorf("Expected omitted quantity to default to 1, got %d", d.Entries[0].Quantity)
	}
}

func TestLoadDeckRejectsMissingCommander(t *testing.T) {
	parser := ability.NewParser()

	_, _, err := Load([]byte(`
name: Headless
cards:
  - name: Plains
    type: "Basic Land — Plains"
`), parser)
	if err == nil {
		t.Fatal("Expected an error for a deck with no commander")
	}
	if !strings.Contains(err.Error(), "no commander") {
		t.Errorf("Expected no-commander error, got %v", err)
	}
}

func TestLoadDeckRejectsBadQuantity(t *testing.T) {
	parser := ability.NewParser()

	_, _, err := Load([]byte(`
name: Negative
commander:
  name: Lone General
  type: "Legendary Creature — Human Soldier"
  cost: "{1}{W}"
  power: 2
  toughness: 2
cards:
  - name: Plains
    type: "Basic Land — Plains"
    quantity: -3
`), parser)
	if err == nil {
		t.Fatal("Expected an error for negative quantity")
	}
}

const sampleLibraryYAML = `
cards:
  - name: Valiant Field-Marshal
    cost: "{2}{W}{W}"
    type: "Legendary Creature — Human Soldier"
    power: 3
    toughness: 3
  - name: Plains
    type: "Basic Land — Plains"
    text: "{T}: Add {W}."
  - name: Recruitment Drive
    cost: "{1}{W}"
    type: Sorcery
    text: "Create two 1/1 white soldier creature tokens."
`

func TestParseListAgainstLibrary(t *testing.T) {
	parser := ability.NewParser()

	lib, _, err := LoadLibrary([]byte(sampleLibraryYAML), parser)
	if err != nil {
		t.Fatalf("LoadLibrary failed: %v", err)
	}
	if lib.Size() != 3 {
		t.Fatalf("Expected 3 library cards, got %d", lib.Size())
	}
	if _, ok := lib.Lookup("plains"); !ok {
		t.Error("Expected case-insensitive lookup")
	}

	d, err := ParseList("Soldier Swarm", `
# A comment
Commander:
1 Valiant Field-Marshal

Deck:
4 Recruitment Drive
10 Plains
`, lib)
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if d.Commander == nil || d.Commander.Name != "Valiant Field-Marshal" {
		t.Fatalf("Expected commander from heading, got %+v", d.Commander)
	}
	if d.TotalQuantity() != 14 {
		t.Errorf("Expected 14 cards, got %d", d.TotalQuantity())
	}
}

func TestParseListCommanderMarker(t *testing.T) {
	parser := ability.NewParser()
	lib, _, _ := LoadLibrary([]byte(sampleLibraryYAML), parser)

	d, err := ParseList("Marked", `
1 Valiant Field-Marshal *CMDR*
4x Recruitment Drive
10 Plains
`, lib)
	if err != nil {
		t.Fatalf("ParseList failed: %v", err)
	}
	if d.Commander == nil || d.Commander.Name != "Valiant Field-Marshal" {
		t.Errorf("Expected *CMDR* marker to set the commander")
	}
	if d.Entries[0].Quantity != 4 {
		t.Errorf("Expected 4x to parse as quantity 4, got %d", d.Entries[0].Quantity)
	}
}

func TestParseListUnknownCard(t *testing.T) {
	parser := ability.NewParser()
	lib, _, _ := LoadLibrary([]byte(sampleLibraryYAML), parser)

	_, err := ParseList("Broken", `
1 Valiant Field-Marshal *CMDR*
1 Black Lotus
`, lib)
	if err == nil {
		t.Fatal("Expected an error for a card missing from the library")
	}
	if !strings.Contains(err.Error(), "Black Lotus") {
		t.Errorf("Expected the card name in the error, got %v", err)
	}
}
