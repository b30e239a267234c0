package archetype

import (
	"github.com/manacurve/goldfish/internal/ability"
)

// Generic is the label reported when no template clears the confidence
// floor.
const Generic = "Generic"

// Tags derived from a card as a whole rather than from a parsed ability.
const (
	tagSpell     = "instant_sorcery"
	tagBigSpell  = "big_spell"
	tagCommander = "commander"
)

// bigSpellManaValue is where a card starts counting as a ramp payoff.
const bigSpellManaValue = 5

// Template describes one archetype: the vocabulary its cards tend to use,
// the roles its cards tend to fill, and how the three signals are weighted
// for it. Signal weights sum to 1.
type Template struct {
	Name  string
	Terms map[string]float64
	Roles []string
	Tags  []string

	GraphWeight float64
	TermWeight  float64
	RoleWeight  float64
}

// tagSet returns the tags that count as template-relevant, roles included.
func (t Template) tagSet() map[string]bool {
	set := make(map[string]bool, len(t.Roles)+len(t.Tags))
	for _, r := range t.Roles {
		set[r] = true
	}
	for _, tag := range t.Tags {
		set[tag] = true
	}
	return set
}

// synergy is one produces/consumes relation between two card tags. Pairs
// with a == b reward decks stacking the same role.
type synergy struct {
	a, b   string
	weight float64
}

// synergies is the relation table the interaction graph is built from.
var synergies = []synergy{
	{ability.CategoryTokens, ability.CategorySacOutlet, 1.0},
	{ability.CategorySacOutlet, ability.CategoryDeathTrigger, 1.0},
	{ability.CategoryTokens, ability.CategoryTokenDoubler, 0.9},
	{ability.CategoryTokens, ability.CategoryAnthem, 0.9},
	{ability.CategoryTokens, ability.CategoryTokens, 0.3},
	{ability.CategoryDeathTrigger, ability.CategoryDrain, 0.5},
	{ability.CategoryLifegain, ability.CategoryLifegainPayoff, 1.0},
	{ability.CategoryDrain, ability.CategoryLifegainPayoff, 0.5},
	{tagSpell, ability.CategorySpellPayoff, 1.0},
	{tagSpell, ability.CategoryCostReduction, 0.5},
	{ability.CategoryMill, ability.CategoryMill, 0.6},
	{ability.CategoryMill, ability.CategoryReanimation, 1.0},
	{ability.CategoryRamp, tagBigSpell, 1.0},
	{ability.CategoryRamp, tagCommander, 0.4},
	{ability.CategoryEquipment, tagCommander, 1.0},
	{ability.CategoryEquipment, ability.CategoryAttackTrigger, 0.6},
	{ability.CategoryPump, tagCommander, 0.6},
	{ability.CategoryCounters, ability.CategoryPump, 0.4},
}

// Templates are matched in this order; ties in confidence keep the earlier
// entry. Term vocabularies are written in the stemmed form the tokenizer
// produces.
var templates = []Template{
	{
		Name: "Aristocrats",
		Terms: map[string]float64{
			"sacrifice": 0.5, "die": 0.5, "death": 0.3,
			"lose": 0.3, "graveyard": 0.2, "drain": 0.2,
		},
		Roles: []string{
			ability.CategorySacOutlet, ability.CategoryDeathTrigger,
			ability.CategoryTokens, ability.CategoryDrain,
		},
		GraphWeight: 0.40, TermWeight: 0.30, RoleWeight: 0.30,
	},
	{
		Name: "Tokens",
		Terms: map[string]float64{
			"token": 0.5, "create": 0.4, "creature": 0.2,
			"populate": 0.3, "copy": 0.2,
		},
		Roles: []string{
			ability.CategoryTokens, ability.CategoryTokenDoubler,
			ability.CategoryAnthem,
		},
		GraphWeight: 0.35, TermWeight: 0.30, RoleWeight: 0.35,
	},
	{
		Name: "Spellslinger",
		Terms: map[string]float64{
			"instant": 0.4, "sorcery": 0.4, "cast": 0.4,
			"noncreature": 0.4, "copy": 0.3, "damage": 0.2,
		},
		Roles:       []string{ability.CategorySpellPayoff, ability.CategoryCostReduction},
		Tags:        []string{tagSpell},
		GraphWeight: 0.35, TermWeight: 0.35, RoleWeight: 0.30,
	},
	{
		Name: "Voltron",
		Terms: map[string]float64{
			"equip": 0.5, "equipped": 0.5, "attach": 0.3,
			"aura": 0.2, "attack": 0.25, "double": 0.2,
		},
		Roles: []string{
			ability.CategoryEquipment, ability.CategoryPump,
			ability.CategoryCounters, ability.CategoryAttackTrigger,
		},
		Tags:        []string{tagCommander},
		GraphWeight: 0.30, TermWeight: 0.30, RoleWeight: 0.40,
	},
	{
		Name: "Lifegain",
		Terms: map[string]float64{
			"life": 0.5, "gain": 0.4, "lifelink": 0.4, "heal": 0.2,
		},
		Roles:       []string{ability.CategoryLifegain, ability.CategoryLifegainPayoff},
		GraphWeight: 0.30, TermWeight: 0.35, RoleWeight: 0.35,
	},
	{
		Name: "Mill",
		Terms: map[string]float64{
			"mill": 0.6, "graveyard": 0.4, "library": 0.3, "return": 0.25,
		},
		Roles:       []string{ability.CategoryMill, ability.CategoryReanimation},
		GraphWeight: 0.30, TermWeight: 0.40, RoleWeight: 0.30,
	},
	{
		Name: "Ramp",
		Terms: map[string]float64{
			"mana": 0.4, "add": 0.4, "land": 0.3,
			"treasure": 0.35, "search": 0.25,
		},
		Roles:       []string{ability.CategoryRamp},
		Tags:        []string{tagBigSpell},
		GraphWeight: 0.25, TermWeight: 0.35, RoleWeight: 0.40,
	},
}
