package game

import (
	"strings"

	"github.com/google/uuid"

	"github.com/manacurve/goldfish/internal/ability"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game/counters"
)

// Permanent is a card or token on the battlefield.
type Permanent struct {
	ID       string
	Card     *deck.CardDefinition // nil for tokens
	Name     string
	TypeLine string
	Types    []string
	Subtypes []string

	Power     int // printed base
	Toughness int
	Keywords  []string
	Abilities ability.List

	Token     bool
	Commander bool

	Counters *counters.Set
	Damage   int
	Tapped   bool

	// EnteredTurn is the turn number this permanent arrived, for summoning
	// sickness checks.
	EnteredTurn int

	// Equipment linkage. AttachedTo is set on the equipment, Attachments on
	// the creature carrying it.
	AttachedTo  string
	Attachments []string

	// Until-end-of-turn modifications, cleared at cleanup.
	TempPower     int
	TempToughness int
	TempKeywords  []string
}

// NewPermanent creates a battlefield permanent backed by a card definition.
func NewPermanent(card *deck.CardDefinition, enteredTurn int) *Permanent {
	return &Permanent{
		ID:          uuid.NewString(),
		Card:        card,
		Name:        card.Name,
		TypeLine:    card.TypeLine,
		Types:       card.Types,
		Subtypes:    card.Subtypes,
		Power:       card.BasePower(),
		Toughness:   card.BaseToughness(),
		Keywords:    card.Abilities.Keywords,
		Abilities:   card.Abilities,
		Counters:    counters.NewSet(),
		EnteredTurn: enteredTurn,
	}
}

// TokenSpec describes a token to create.
type TokenSpec struct {
	Name      string
	Power     int
	Toughness int
	Types     []string // defaults to creature
	Colors    []string
	Keywords  []string
	Tapped    bool
}

// NewTokenPermanent creates a token permanent from a spec.
func NewTokenPermanent(spec TokenSpec, enteredTurn int) *Permanent {
	types := spec.Types
	if len(types) == 0 {
		types = []string{"Creature"}
	}
	name := spec.Name
	if name == "" {
		name = strings.ToLower(types[0])
	}
	var subtypes []string
	if spec.Name != "" {
		subtypes = []string{title(spec.Name)}
	}
	return &Permanent{
		ID:          uuid.NewString(),
		Name:        title(name),
		TypeLine:    tokenTypeLine(types, subtypes),
		Types:       types,
		Subtypes:    subtypes,
		Power:       spec.Power,
		Toughness:   spec.Toughness,
		Keywords:    spec.Keywords,
		Abilities:   tokenAbilities(name),
		Token:       true,
		Tapped:      spec.Tapped,
		Counters:    counters.NewSet(),
		EnteredTurn: enteredTurn,
	}
}

func tokenTypeLine(types, subtypes []string) string {
	line := "Token " + strings.Join(types, " ")
	if len(subtypes) > 0 {
		line += " — " + strings.Join(subtypes, " ")
	}
	return line
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// tokenAbilities returns the built-in ability list for well-known predefined
// tokens. Treasures carry their sacrifice mana ability even though the
// creating effect never spells it out.
func tokenAbilities(name string) ability.List {
	if strings.EqualFold(name, "treasure") {
		return ability.List{
			Activated: []ability.Activated{
				{
					Tap:     true,
					SacSelf: true,
					Effects: []ability.Effect{
						{
							Kind:     ability.EffectAddMana,
							Amount:   ability.Amount{N: 1},
							AnyColor: true,
						},
					},
					Text: "{T}, Sacrifice this artifact: Add one mana of any color.",
				},
			},
		}
	}
	return ability.List{}
}

// IsType reports whether the permanent has the given card type.
func (p *Permanent) IsType(cardType string) bool {
	for _, t := range p.Types {
		if strings.EqualFold(t, cardType) {
			return true
		}
	}
	return false
}

// IsCreature reports whether the permanent is a creature.
func (p *Permanent) IsCreature() bool {
	return p.IsType("Creature")
}

// IsLand reports whether the permanent is a land.
func (p *Permanent) IsLand() bool {
	return p.IsType("Land")
}

// SelfPower is the permanent's power counting its own counters and
// until-end-of-turn boosts, before battlefield-wide effects.
func (p *Permanent) SelfPower() int {
	boostP, _ := p.Counters.BoostTotals()
	return p.Power + boostP + p.TempPower
}

// SelfToughness is the permanent's toughness counting its own counters and
// until-end-of-turn boosts, before battlefield-wide effects.
func (p *Permanent) SelfToughness() int {
	_, boostT := p.Counters.BoostTotals()
	return p.Toughness + boostT + p.TempToughness
}

// HasSelfKeyword reports whether the permanent carries the keyword itself,
// printed, granted at creation or until end of turn.
func (p *Permanent) HasSelfKeyword(keyword string) bool {
	for _, k := range p.Keywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	for _, k := range p.TempKeywords {
		if strings.EqualFold(k, keyword) {
			return true
		}
	}
	return false
}

// ClearTurnState removes damage and until-end-of-turn modifications.
func (p *Permanent) ClearTurnState() {
	p.Damage = 0
	p.TempPower = 0
	p.TempToughness = 0
	p.TempKeywords = nil
}

// ManaValue returns the mana value of the backing card, zero for tokens.
func (p *Permanent) ManaValue() int {
	if p.Card == nil {
		return 0
	}
	return p.Card.ManaValue()
}

func (p *Permanent) String() string {
	if p.IsCreature() {
		return p.Name + " (" + p.TypeLine + ")"
	}
	return p.Name
}
