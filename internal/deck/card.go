// Package deck loads deck files and card definitions and computes the
// static deck statistics the scorer and classifier consume.
package deck

import (
	"fmt"
	"strings"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/game/mana"
)

var cardTypes = map[string]bool{
	"Artifact":     true,
	"Battle":       true,
	"Creature":     true,
	"Enchantment":  true,
	"Instant":      true,
	"Land":         true,
	"Planeswalker": true,
	"Sorcery":      true,
}

var supertypes = map[string]bool{
	"Basic":     true,
	"Legendary": true,
	"Snow":      true,
}

// CardDefinition is the printed card plus everything derived from it at
// load time. Definitions are shared between game copies and never mutated
// after loading.
type CardDefinition struct {
	Name      string
	ManaCost  string
	TypeLine  string
	Power     *int
	Toughness *int
	Text      string

	Cost       mana.Cost
	Supertypes []string
	Types      []string
	Subtypes   []string
	Abilities  ability.List
}

// ParseTypeLine splits a type line like "Legendary Creature — Human
// Soldier" into supertypes, card types, and subtypes. Both the em dash
// and a spaced hyphen separate subtypes.
func ParseTypeLine(line string) (super, types, subs []string) {
	left, right := line, ""
	for _, sep := range []string{"—", " - "} {
		if before, after, ok := strings.Cut(line, sep); ok {
			left, right = before, after
			break
		}
	}
	for _, word := range strings.Fields(left) {
		word = title(word)
		switch {
		case supertypes[word]:
			super = append(super, word)
		case cardTypes[word]:
			types = append(types, word)
		}
	}
	for _, word := range strings.Fields(right) {
		subs = append(subs, title(word))
	}
	return super, types, subs
}

// title uppercases the first rune so type matching is case-insensitive
// without pulling in a cases package for ASCII type words.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// IsType reports whether the card has the given card type.
func (c *CardDefinition) IsType(cardType string) bool {
	for _, t := range c.Types {
		if strings.EqualFold(t, cardType) {
			return true
		}
	}
	return false
}

// HasSubtype reports whether the card has the given subtype.
func (c *CardDefinition) HasSubtype(sub string) bool {
	for _, s := range c.Subtypes {
		if strings.EqualFold(s, sub) {
			return true
		}
	}
	return false
}

func (c *CardDefinition) IsCreature() bool { return c.IsType("Creature") }
func (c *CardDefinition) IsLand() bool     { return c.IsType("Land") }

// IsPermanent reports whether the card stays on the battlefield when it
// resolves.
func (c *CardDefinition) IsPermanent() bool {
	for _, t := range c.Types {
		switch t {
		case "Instant", "Sorcery":
			return false
		}
	}
	return len(c.Types) > 0
}

// IsLegendary reports whether the card carries the Legendary supertype.
func (c *CardDefinition) IsLegendary() bool {
	for _, s := range c.Supertypes {
		if s == "Legendary" {
			return true
		}
	}
	return false
}

// ManaValue is the converted cost of the printed mana cost.
func (c *CardDefinition) ManaValue() int {
	return c.Cost.ManaValue()
}

// BasePower returns the printed power, zero when absent.
func (c *CardDefinition) BasePower() int {
	if c.Power == nil {
		return 0
	}
	return *c.Power
}

// BaseToughness returns the printed toughness, zero when absent.
func (c *CardDefinition) BaseToughness() int {
	if c.Toughness == nil {
		return 0
	}
	return *c.Toughness
}

func (c *CardDefinition) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.ManaCost)
}

// Derive fills the parsed fields from the printed ones. The ability parser
// reports unrecognized clauses as warnings; a malformed mana cost is
// reported the same way and the card plays as if free.
func (c *CardDefinition) Derive(parser *ability.Parser) []ability.ParseWarning {
	var warnings []ability.ParseWarning
	if c.ManaCost != "" {
		cost, err := mana.ParseCost(c.ManaCost)
		if err != nil {
			warnings = append(warnings, ability.ParseWarning{Card: c.Name, Line: c.ManaCost, Err: err})
		} else {
			c.Cost = *cost
		}
	}
	c.Supertypes, c.Types, c.Subtypes = ParseTypeLine(c.TypeLine)
	var abilityWarnings []ability.ParseWarning
	c.Abilities, abilityWarnings = parser.Parse(c.Name, c.Text)
	return append(warnings, abilityWarnings...)
}
