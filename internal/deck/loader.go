package deck

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/manacurve/goldfish/internal/ability"
)

// deckFile is the top-level YAML structure of a deck file.
type deckFile struct {
	Name      string      `yaml:"name"`
	Commander cardEntry   `yaml:"commander"`
	Cards     []cardEntry `yaml:"cards"`
}

// libraryFile is the top-level YAML structure of a card library.
type libraryFile struct {
	Cards []cardEntry `yaml:"cards"`
}

// cardEntry is one card in a YAML deck or library file.
type cardEntry struct {
	Name      string `yaml:"name"`
	Cost      string `yaml:"cost"`
	Type      string `yaml:"type"`
	Power     *int   `yaml:"power"`
	Toughness *int   `yaml:"toughness"`
	Text      string `yaml:"text"`
	Quantity  int    `yaml:"quantity"`
}

func (e cardEntry) definition(parser *ability.Parser) (*CardDefinition, []ability.ParseWarning) {
	card := &CardDefinition{
		Name:      e.Name,
		ManaCost:  e.Cost,
		TypeLine:  e.Type,
		Power:     e.Power,
		Toughness: e.Toughness,
		Text:      e.Text,
	}
	return card, card.Derive(parser)
}

// LoadFile loads a deck with inline card definitions from a YAML file.
// Parse warnings are returned alongside the deck; only structural problems
// are errors.
func LoadFile(path string, parser *ability.Parser) (*Deck, []ability.ParseWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Load(data, parser)
}

// Load parses YAML deck bytes. See LoadFile.
func Load(data []byte, parser *ability.Parser) (*Deck, []ability.ParseWarning, error) {
	var df deckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, nil, fmt.Errorf("parse deck YAML: %w", err)
	}

	d := &Deck{Name: df.Name}
	var warnings []ability.ParseWarning
	if df.Commander.Name != "" {
		commander, w := df.Commander.definition(parser)
		d.Commander = commander
		warnings = append(warnings, w...)
	}
	for _, entry := range df.Cards {
		card, w := entry.definition(parser)
		warnings = append(warnings, w...)
		quantity := entry.Quantity
		if quantity == 0 {
			quantity = 1
		}
		d.Entries = append(d.Entries, Entry{Card: card, Quantity: quantity})
	}
	if err := d.Validate(); err != nil {
		return nil, warnings, err
	}
	return d, warnings, nil
}

// Library is a card pool keyed by lowercase name, used to resolve plain
// text deck lists.
type Library struct {
	cards map[string]*CardDefinition
}

// LoadLibraryFile loads a YAML card library.
func LoadLibraryFile(path string, parser *ability.Parser) (*Library, []ability.ParseWarning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return LoadLibrary(data, parser)
}

// LoadLibrary parses YAML library bytes. See LoadLibraryFile.
func LoadLibrary(data []byte, parser *ability.Parser) (*Library, []ability.ParseWarning, error) {
	var lf libraryFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, nil, fmt.Errorf("parse library YAML: %w", err)
	}

	lib := &Library{cards: make(map[string]*CardDefinition, len(lf.Cards))}
	var warnings []ability.ParseWarning
	for _, entry := range lf.Cards {
		card, w := entry.definition(parser)
		warnings = append(warnings, w...)
		lib.cards[strings.ToLower(card.Name)] = card
	}
	return lib, warnings, nil
}

// Lookup finds a card by name, case-insensitively.
func (l *Library) Lookup(name string) (*CardDefinition, bool) {
	card, ok := l.cards[strings.ToLower(name)]
	return card, ok
}

// Size returns the number of distinct cards in the library.
func (l *Library) Size() int {
	return len(l.cards)
}

// ParseList parses a plain text deck list of "<count> <card name>" lines
// against a library. A line under a "Commander:" heading, or suffixed with
// *CMDR*, designates the commander. Blank lines and lines starting with
// # or // are skipped.
func ParseList(name, text string, lib *Library) (*Deck, error) {
	d := &Deck{Name: name}
	inCommander := false

	for lineNumber, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		switch strings.ToLower(strings.TrimSuffix(line, ":")) {
		case "commander":
			inCommander = true
			continue
		case "deck", "mainboard":
			inCommander = false
			continue
		}

		isCommander := inCommander
		if rest, ok := strings.CutSuffix(line, "*CMDR*"); ok {
			line = strings.TrimSpace(rest)
			isCommander = true
		}

		count := 1
		cardName := line
		if first, rest, ok := strings.Cut(line, " "); ok {
			if n, err := strconv.Atoi(strings.TrimSuffix(first, "x")); err == nil {
				count = n
				cardName = strings.TrimSpace(rest)
			}
		}

		card, ok := lib.Lookup(cardName)
		if !ok {
			return nil, fmt.Errorf("line %d: card %q not in library", lineNumber+1, cardName)
		}
		if isCommander {
			if d.Commander != nil {
				return nil, fmt.Errorf("line %d: second commander %q", lineNumber+1, cardName)
			}
			d.Commander = card
			continue
		}
		d.Entries = append(d.Entries, Entry{Card: card, Quantity: count})
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
