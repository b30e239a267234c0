// Command gen_fixtures writes a sample card library and two deck files the
// simulator can run out of the box:
//
//	go run scripts/gen_fixtures.go [output-dir]
//
// The generated library.yaml holds every card used by the sample decks;
// swarm.txt is a plain "N Card Name" list resolved against it, and
// swarm_inline.yaml carries its definitions inline.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CardFixture mirrors the card entry schema the deck loader reads.
type CardFixture struct {
	Name      string `yaml:"name"`
	Cost      string `yaml:"cost,omitempty"`
	Type      string `yaml:"type"`
	Power     *int   `yaml:"power,omitempty"`
	Toughness *int   `yaml:"toughness,omitempty"`
	Text      string `yaml:"text,omitempty"`
	Quantity  int    `yaml:"quantity,omitempty"`
}

type libraryFixture struct {
	Cards []CardFixture `yaml:"cards"`
}

type deckFixture struct {
	Name      string        `yaml:"name"`
	Commander CardFixture   `yaml:"commander"`
	Cards     []CardFixture `yaml:"cards"`
}

func intp(n int) *int { return &n }

// sampleCards is a small pool covering the ability shapes the engine
// understands: mana sources, token makers, a doubler, an outlet, drains,
// anthems, equipment and a reanimation spell.
var sampleCards = []CardFixture{
	{Name: "Plains", Type: "Basic Land — Plains", Text: "{T}: Add {W}."},
	{Name: "Swamp", Type: "Basic Land — Swamp", Text: "{T}: Add {B}."},
	{Name: "Mountain", Type: "Basic Land — Mountain", Text: "{T}: Add {R}."},
	{Name: "Glittering Vault", Cost: "{2}", Type: "Artifact", Text: "{T}: Add one mana of any color."},
	{Name: "Mirelle, Swarm Mother", Cost: "{2}{W}{B}", Type: "Legendary Creature — Human Cleric",
		Power: intp(2), Toughness: intp(4),
		Text: "Whenever a creature enters the battlefield under your control, each opponent loses 1 life."},
	{Name: "Field Medic", Cost: "{W}", Type: "Creature — Human Cleric",
		Power: intp(1), Toughness: intp(1), Text: "Lifelink"},
	{Name: "Drill Sergeant", Cost: "{1}{W}", Type: "Creature — Human Soldier",
		Power: intp(1), Toughness: intp(2),
		Text: "When Drill Sergeant enters the battlefield, create two 1/1 white Soldier creature tokens."},
	{Name: "Second Muster", Cost: "{2}{W}", Type: "Enchantment",
		Text: "If one or more tokens would be created under your control, twice that many of those tokens are created instead."},
	{Name: "Bone Altar", Cost: "{2}", Type: "Artifact",
		Text: "Sacrifice a creature: Draw a card."},
	{Name: "Vault Gnawer", Cost: "{1}{B}", Type: "Creature — Rat",
		Power: intp(2), Toughness: intp(1),
		Text: "Whenever another creature you control dies, each opponent loses 1 life."},
	{Name: "Rally Cry", Cost: "{1}{W}", Type: "Sorcery",
		Text: "Create three 1/1 white Soldier creature tokens."},
	{Name: "Standard Bearer", Cost: "{2}{W}", Type: "Creature — Human Soldier",
		Power: intp(2), Toughness: intp(2),
		Text: "Creatures you control get +1/+1."},
	{Name: "Parade Blade", Cost: "{1}", Type: "Artifact — Equipment",
		Text: "Equipped creature gets +2/+0.\nEquip {1}"},
	{Name: "Grave Call", Cost: "{1}{B}", Type: "Sorcery",
		Text: "Return a creature card from your graveyard to your hand."},
	{Name: "Final Toll", Cost: "{X}{B}", Type: "Sorcery",
		Text: "Each opponent loses X life."},
}

// swarmList is the plain text deck resolved against the library.
const swarmList = `# sample tokens/aristocrats list
Commander:
1 Mirelle, Swarm Mother

Deck:
18 Plains
16 Swamp
2 Glittering Vault
8 Field Medic
8 Drill Sergeant
4 Second Muster
4 Bone Altar
6 Vault Gnawer
4 Rally Cry
4 Standard Bearer
2 Parade Blade
4 Grave Call
2 Final Toll
`

func main() {
	outDir := "testdata"
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	writeYAML(filepath.Join(outDir, "library.yaml"), libraryFixture{Cards: sampleCards})
	writeFile(filepath.Join(outDir, "swarm.txt"), []byte(swarmList))
	writeYAML(filepath.Join(outDir, "swarm_inline.yaml"), inlineDeck())

	fmt.Printf("fixtures written to %s\n", outDir)
	fmt.Println("run: goldfish -deck", filepath.Join(outDir, "swarm.txt"),
		"-library", filepath.Join(outDir, "library.yaml"))
}

// inlineDeck builds the self-contained YAML variant of the sample deck.
func inlineDeck() deckFixture {
	byName := make(map[string]CardFixture, len(sampleCards))
	for _, c := range sampleCards {
		byName[c.Name] = c
	}
	with := func(name string, quantity int) CardFixture {
		c, ok := byName[name]
		if !ok {
			log.Fatalf("sample deck names unknown card %q", name)
		}
		c.Quantity = quantity
		return c
	}
	return deckFixture{
		Name:      "swarm",
		Commander: byName["Mirelle, Swarm Mother"],
		Cards: []CardFixture{
			with("Plains", 18),
			with("Swamp", 16),
			with("Glittering Vault", 2),
			with("Field Medic", 8),
			with("Drill Sergeant", 8),
			with("Second Muster", 4),
			with("Bone Altar", 4),
			with("Vault Gnawer", 6),
			with("Rally Cry", 4),
			with("Standard Bearer", 4),
			with("Parade Blade", 2),
			with("Grave Call", 4),
			with("Final Toll", 2),
		},
	}
}

func writeYAML(path string, v interface{}) {
	data, err := yaml.Marshal(v)
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	writeFile(path, data)
}

func writeFile(path string, data []byte) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
}
