// Package ability turns card rules text into typed ability records the
// simulator can execute. Parsing is deterministic and side-effect free;
// clauses the grammar does not recognize are kept verbatim as unparsed
// text and reported as warnings, never errors.
package ability

import (
	"fmt"

	"github.com/manacurve/goldfish/internal/game/mana"
	"github.com/manacurve/goldfish/internal/game/rules"
)

// Amount is a parsed quantity: a literal number or an X to be chosen when
// the ability resolves.
type Amount struct {
	N int
	X bool
}

// Value resolves the amount, substituting x for X quantities.
func (a Amount) Value(x int) int {
	if a.X {
		return x
	}
	return a.N
}

// EffectKind discriminates the effect variants.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectCreateTokens
	EffectDraw
	EffectOpponentsLose
	EffectGainLife
	EffectDamage
	EffectPutCounters
	EffectPump
	EffectMill
	EffectAddMana
	EffectSacrifice
	EffectReturnFromGraveyard
)

var effectKindNames = map[EffectKind]string{
	EffectNone:                "none",
	EffectCreateTokens:        "create_tokens",
	EffectDraw:                "draw",
	EffectOpponentsLose:       "opponents_lose",
	EffectGainLife:            "gain_life",
	EffectDamage:              "damage",
	EffectPutCounters:         "put_counters",
	EffectPump:                "pump",
	EffectMill:                "mill",
	EffectAddMana:             "add_mana",
	EffectSacrifice:           "sacrifice",
	EffectReturnFromGraveyard: "return_from_graveyard",
}

func (k EffectKind) String() string {
	if name, ok := effectKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("effect_%d", int(k))
}

// TargetScope says what an effect applies to. Goldfish games have no
// opposing permanents, so "any target" resolves to an opponent's face.
type TargetScope int

const (
	TargetSelf TargetScope = iota
	TargetIt
	TargetEachOpponent
	TargetAnyTarget
	TargetYourCreatures
	TargetTargetCreature
	TargetEquippedCreature
)

// Duration says how long a continuous change lasts.
type Duration int

const (
	DurationPermanent Duration = iota
	DurationEndOfTurn
)

// Effect is one resolved effect, a tagged variant discriminated by Kind.
// Only the fields relevant to the kind are populated.
type Effect struct {
	Kind          EffectKind
	Amount        Amount
	Power         int
	Toughness     int
	TokenName     string
	TokenColors   []string
	TokenKeywords []string
	TokensTapped  bool
	CounterName   string
	Target        TargetScope
	Duration      Duration
	Mana          []mana.ManaType
	AnyColor      bool
	Keywords      []string
	CardType      string
	ToBattlefield bool
}

// Subject filters which object an event must concern for a trigger to fire.
type Subject struct {
	Another  bool
	Token    bool
	Nontoken bool
	Type     string
	Yours    bool
}

// Triggered is a parsed triggered ability: an event, an optional subject
// filter, and the effects that resolve when it fires.
type Triggered struct {
	Event   rules.EventType
	Self    bool // fires only for the source permanent itself
	Subject *Subject
	Effects []Effect
	Text    string
}

// StaticKind discriminates the static ability variants the simulator
// understands. Statics are a fixed vocabulary applied by the board, not
// arbitrary rules modifications.
type StaticKind int

const (
	StaticTokenDoubler StaticKind = iota
	StaticAnthem
	StaticKeywordGrant
	StaticCostReduction
	StaticEquippedBuff
)

var staticKindNames = map[StaticKind]string{
	StaticTokenDoubler:  "token_doubler",
	StaticAnthem:        "anthem",
	StaticKeywordGrant:  "keyword_grant",
	StaticCostReduction: "cost_reduction",
	StaticEquippedBuff:  "equipped_buff",
}

func (k StaticKind) String() string {
	if name, ok := staticKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("static_%d", int(k))
}

// Static is a parsed static ability.
type Static struct {
	Kind       StaticKind
	Power      int
	Toughness  int
	Keywords   []string
	Reduction  int
	SpellType  string
	TokensOnly bool
	Text       string
}

// Activated is a parsed activated ability: costs before the colon, effects
// after it.
type Activated struct {
	ManaCost    *mana.Cost
	Tap         bool
	SacSelf     bool
	SacCreature bool
	SacType     string
	Effects     []Effect
	Text        string
}

// IsManaAbility reports whether the ability only produces mana. Mana
// abilities resolve immediately and never use the trigger queue.
func (a Activated) IsManaAbility() bool {
	if len(a.Effects) == 0 {
		return false
	}
	for _, e := range a.Effects {
		if e.Kind != EffectAddMana {
			return false
		}
	}
	return true
}

// List is everything parsed from one card's rules text.
type List struct {
	Keywords  []string
	Triggered []Triggered
	Statics   []Static
	Activated []Activated
	// SpellEffects holds bare imperative lines, the resolution body of an
	// instant or sorcery.
	SpellEffects []Effect
	EquipCost    *mana.Cost
	Unparsed     []string
}

// HasKeyword reports whether the keyword line granted the given keyword.
func (l List) HasKeyword(keyword string) bool {
	for _, k := range l.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// IsVanilla reports whether nothing at all was parsed from the text.
func (l List) IsVanilla() bool {
	return len(l.Keywords) == 0 && len(l.Triggered) == 0 &&
		len(l.Statics) == 0 && len(l.Activated) == 0 &&
		len(l.SpellEffects) == 0 && l.EquipCost == nil
}

// ParseWarning is a recoverable diagnostic for a clause the grammar did not
// recognize. The clause is skipped; the card still plays as printed stats.
type ParseWarning struct {
	Card string
	Line string
	Err  error
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("%s: unrecognized clause %q: %v", w.Card, w.Line, w.Err)
}

// Pattern categories derived from parsed abilities. The classifier builds
// its interaction graph and term weights over these, and the enhanced
// scorer weights cards by them.
const (
	CategoryTokens         = "token_generator"
	CategoryTokenDoubler   = "token_doubler"
	CategorySacOutlet      = "sacrifice_outlet"
	CategoryDeathTrigger   = "death_trigger"
	CategoryDrain          = "drain"
	CategoryCardDraw       = "card_draw"
	CategoryLifegain       = "lifegain"
	CategoryLifegainPayoff = "lifegain_payoff"
	CategoryMill           = "mill"
	CategoryCounters       = "counters"
	CategoryPump           = "pump"
	CategoryRamp           = "ramp"
	CategoryReanimation    = "reanimation"
	CategoryAnthem         = "anthem"
	CategoryCostReduction  = "cost_reduction"
	CategoryEquipment      = "equipment"
	CategorySpellPayoff    = "spell_payoff"
	CategoryAttackTrigger  = "attack_trigger"
)

// Categories returns the pattern categories this ability list exhibits,
// deduplicated, in a stable order.
func (l List) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(category string) {
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}

	for _, t := range l.Triggered {
		switch t.Event {
		case rules.EventPermanentDies:
			add(CategoryDeathTrigger)
		case rules.EventSpellCast:
			add(CategorySpellPayoff)
		case rules.EventLifeGained:
			add(CategoryLifegainPayoff)
		case rules.EventAttackerDeclared:
			add(CategoryAttackTrigger)
		}
		for _, e := range t.Effects {
			addEffectCategory(add, e)
		}
	}
	for _, a := range l.Activated {
		if a.SacSelf || a.SacCreature {
			add(CategorySacOutlet)
		}
		for _, e := range a.Effects {
			addEffectCategory(add, e)
		}
	}
	for _, e := range l.SpellEffects {
		addEffectCategory(add, e)
	}
	for _, s := range l.Statics {
		switch s.Kind {
		case StaticTokenDoubler:
			add(CategoryTokenDoubler)
		case StaticAnthem:
			add(CategoryAnthem)
		case StaticCostReduction:
			add(CategoryCostReduction)
		case StaticEquippedBuff:
			add(CategoryEquipment)
		}
	}
	if l.EquipCost != nil {
		add(CategoryEquipment)
	}
	return out
}

func addEffectCategory(add func(string), e Effect) {
	switch e.Kind {
	case EffectCreateTokens:
		add(CategoryTokens)
	case EffectDraw:
		add(CategoryCardDraw)
	case EffectOpponentsLose, EffectDamage:
		add(CategoryDrain)
	case EffectGainLife:
		add(CategoryLifegain)
	case EffectPutCounters:
		add(CategoryCounters)
	case EffectPump:
		add(CategoryPump)
	case EffectMill:
		add(CategoryMill)
	case EffectAddMana:
		add(CategoryRamp)
	case EffectSacrifice:
		add(CategorySacOutlet)
	case EffectReturnFromGraveyard:
		add(CategoryReanimation)
	}
}
