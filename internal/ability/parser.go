package ability

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/manacurve/goldfish/internal/game/counters"
	"github.com/manacurve/goldfish/internal/game/mana"
	"github.com/manacurve/goldfish/internal/game/rules"
)

var reminderPattern = regexp.MustCompile(`\([^)]*\)`)

var quoteStripper = strings.NewReplacer("'", "", "’", "", `"`, "", "“", "", "”", "")

// Parser parses card rules text into ability records. One Parser is safe
// for concurrent use.
type Parser struct {
	parser *participle.Parser[parsedLine]
}

// NewParser builds the rules text parser.
func NewParser() *Parser {
	return &Parser{parser: buildLineParser()}
}

// normalize lowercases the text, strips reminder text and quotes, and
// replaces self-references with the NAME placeholder.
func normalize(cardName, text string) string {
	s := reminderPattern.ReplaceAllString(text, "")
	s = quoteStripper.Replace(s)
	s = strings.ToLower(s)
	name := strings.ToLower(quoteStripper.Replace(cardName))
	if name != "" {
		s = strings.ReplaceAll(s, name, "NAME")
		// Legendary cards refer to themselves by short name.
		if short, _, ok := strings.Cut(name, ","); ok {
			s = strings.ReplaceAll(s, short, "NAME")
		}
	}
	for _, self := range []string{
		"this creature", "this artifact", "this enchantment",
		"this permanent", "this land", "this card",
	} {
		s = strings.ReplaceAll(s, self, "NAME")
	}
	return s
}

// Parse parses the rules text of one card. Clauses the grammar does not
// recognize are collected in List.Unparsed and reported as warnings;
// parsing never fails outright.
func (p *Parser) Parse(cardName, text string) (List, []ParseWarning) {
	var list List
	var warnings []ParseWarning
	if strings.TrimSpace(text) == "" {
		return list, nil
	}
	normalized := normalize(cardName, text)
	for _, rawLine := range strings.Split(normalized, "\n") {
		for _, sentence := range strings.Split(rawLine, ".") {
			sentence = strings.TrimSpace(sentence)
			if sentence == "" {
				continue
			}
			node, err := p.parser.ParseString("", sentence)
			if err != nil {
				list.Unparsed = append(list.Unparsed, sentence)
				warnings = append(warnings, ParseWarning{Card: cardName, Line: sentence, Err: err})
				continue
			}
			mergeLine(&list, node.Line, sentence)
		}
	}
	return list, warnings
}

func mergeLine(list *List, node line, text string) {
	switch v := node.(type) {
	case keywordLine:
		for _, k := range v.Keywords {
			list.Keywords = append(list.Keywords, k.name())
		}
	case equipLine:
		cost, _ := convertSymbols(v.Symbols)
		list.EquipCost = &cost
	case triggeredLine:
		event, self, subject := convertTrigger(v.Trigger)
		list.Triggered = append(list.Triggered, Triggered{
			Event:   event,
			Self:    self,
			Subject: subject,
			Effects: convertEffects(v.Effects),
			Text:    text,
		})
	case activatedLine:
		list.Activated = append(list.Activated, convertActivated(v, text))
	case doublerLine:
		list.Statics = append(list.Statics, Static{Kind: StaticTokenDoubler, Text: text})
	case anthemLine:
		list.Statics = append(list.Statics, convertAnthem(v, text)...)
	case costReductionLine:
		list.Statics = append(list.Statics, Static{
			Kind:      StaticCostReduction,
			Reduction: v.Amount,
			SpellType: v.SpellType,
			Text:      text,
		})
	case equippedLine:
		p, t := v.Boost.values()
		list.Statics = append(list.Statics, Static{
			Kind:      StaticEquippedBuff,
			Power:     p,
			Toughness: t,
			Keywords:  keywordNames(v.Keywords),
			Text:      text,
		})
	case spellLine:
		list.SpellEffects = append(list.SpellEffects, convertEffects(v.Effects)...)
	}
}

func keywordNames(atoms []keywordAtom) []string {
	if len(atoms) == 0 {
		return nil
	}
	names := make([]string, 0, len(atoms))
	for _, k := range atoms {
		names = append(names, k.name())
	}
	return names
}

func convertTrigger(t triggerClause) (rules.EventType, bool, *Subject) {
	switch {
	case t.Upkeep:
		return rules.EventUpkeepStep, false, nil
	case t.EndStep:
		return rules.EventEndStep, false, nil
	case t.SelfEnters:
		return rules.EventEntersBattlefield, true, nil
	case t.SelfAttacks:
		return rules.EventAttackerDeclared, true, nil
	case t.SelfDies:
		return rules.EventPermanentDies, true, nil
	case t.CastNoncreature:
		return rules.EventSpellCast, false, &Subject{Type: "noncreature"}
	case t.CastSpell:
		return rules.EventSpellCast, false, nil
	case t.PlayLand:
		return rules.EventLandPlayed, false, nil
	case t.DrawCard:
		return rules.EventCardDrawn, false, nil
	case t.GainLife:
		return rules.EventLifeGained, false, nil
	case t.SacrificeWhat != "":
		return rules.EventPermanentSacrificed, false, &Subject{Type: t.SacrificeWhat}
	case t.CreateTokens:
		return rules.EventTokenCreated, false, nil
	case t.MillCards:
		return rules.EventCardMilled, false, nil
	case t.LeavesGraveyard:
		return rules.EventLeavesGraveyard, false, nil
	case t.Subject != nil:
		return convertSubjectTrigger(*t.Subject)
	default:
		return rules.EventType(""), false, nil
	}
}

func convertSubjectTrigger(s subjectClause) (rules.EventType, bool, *Subject) {
	subject := &Subject{
		Another:  s.Another && !s.OrSelf,
		Nontoken: s.Nontoken,
		Token:    s.Token,
		Type:     s.Noun,
		Yours:    s.Yours,
	}
	switch {
	case s.Event.Dies:
		return rules.EventPermanentDies, false, subject
	case s.Event.Enters:
		return rules.EventEntersBattlefield, false, subject
	case s.Event.Attacks:
		return rules.EventAttackerDeclared, false, subject
	case s.Event.Created:
		return rules.EventTokenCreated, false, subject
	default:
		return rules.EventType(""), false, subject
	}
}

func convertEffects(list effectList) []Effect {
	out := make([]Effect, 0, len(list.Effects))
	for _, clause := range list.Effects {
		if e, ok := convertEffect(clause); ok {
			out = append(out, e)
		}
	}
	return out
}

func convertEffect(c effectClause) (Effect, bool) {
	switch {
	case c.Create != nil:
		return convertCreate(*c.Create), true
	case c.Draw != nil:
		return Effect{Kind: EffectDraw, Amount: c.Draw.Count.amount()}, true
	case c.Lose != nil:
		return Effect{Kind: EffectOpponentsLose, Amount: c.Lose.Amount.amount(), Target: TargetEachOpponent}, true
	case c.Gain != nil:
		return Effect{Kind: EffectGainLife, Amount: c.Gain.Amount.amount()}, true
	case c.Damage != nil:
		target := TargetAnyTarget
		if c.Damage.Target.EachOpponent {
			target = TargetEachOpponent
		}
		return Effect{Kind: EffectDamage, Amount: c.Damage.Amount.amount(), Target: target}, true
	case c.Counters != nil:
		return convertCounters(*c.Counters), true
	case c.Pump != nil:
		return convertPump(*c.Pump), true
	case c.Mill != nil:
		return Effect{Kind: EffectMill, Amount: c.Mill.Count.amount()}, true
	case c.AddMana != nil:
		return convertAddMana(*c.AddMana), true
	case c.Sac != nil:
		return convertSac(*c.Sac), true
	case c.Return != nil:
		return Effect{
			Kind:          EffectReturnFromGraveyard,
			Amount:        Amount{N: 1},
			CardType:      c.Return.CardType,
			ToBattlefield: c.Return.ToBattlefield,
		}, true
	default:
		return Effect{}, false
	}
}

func convertCreate(c createEffect) Effect {
	e := Effect{
		Kind:          EffectCreateTokens,
		Amount:        c.Count.amount(),
		TokenName:     c.Name,
		TokenColors:   c.Colors,
		TokenKeywords: keywordNames(c.Keywords),
		TokensTapped:  c.Tapped,
		CardType:      c.Creature,
	}
	if c.Name == "creature" || c.Name == "artifact" {
		e.TokenName = ""
	}
	if c.Power != nil {
		e.Power = c.Power.amount().Value(0)
	}
	if c.Toughness != nil {
		e.Toughness = c.Toughness.amount().Value(0)
	}
	return e
}

func convertCounters(c countersEffect) Effect {
	e := Effect{Kind: EffectPutCounters, Amount: c.Count.amount()}
	if c.Boost != nil {
		p, t := c.Boost.values()
		e.CounterName = counters.BoostName(p, t)
	} else {
		e.CounterName = c.Named
	}
	switch {
	case c.Target.Self:
		e.Target = TargetSelf
	case c.Target.It:
		e.Target = TargetIt
	case c.Target.Equipped:
		e.Target = TargetEquippedCreature
	case c.Target.EachCreature:
		e.Target = TargetYourCreatures
	default:
		e.Target = TargetTargetCreature
	}
	return e
}

func convertPump(p pumpEffect) Effect {
	power, toughness := p.Boost.values()
	e := Effect{
		Kind:      EffectPump,
		Power:     power,
		Toughness: toughness,
		Keywords:  keywordNames(p.Keywords),
		Duration:  DurationPermanent,
	}
	if p.UntilEOT {
		e.Duration = DurationEndOfTurn
	}
	switch {
	case p.Self:
		e.Target = TargetSelf
	case p.It:
		e.Target = TargetIt
	case p.Equipped:
		e.Target = TargetEquippedCreature
	default:
		e.Target = TargetYourCreatures
	}
	return e
}

func convertAddMana(a addManaEffect) Effect {
	e := Effect{Kind: EffectAddMana}
	if a.Any != nil {
		e.AnyColor = true
		e.Amount = a.Any.amount()
		return e
	}
	for _, sym := range a.Symbols {
		switch {
		case sym.Color != "":
			if mt, ok := mana.TypeForSymbol(strings.ToUpper(sym.Color)); ok {
				e.Mana = append(e.Mana, mt)
			}
		case sym.Generic != nil:
			for i := 0; i < *sym.Generic; i++ {
				e.Mana = append(e.Mana, mana.ManaColorless)
			}
		}
	}
	e.Amount = Amount{N: len(e.Mana)}
	return e
}

func convertSac(s sacEffect) Effect {
	e := Effect{Kind: EffectSacrifice, Amount: Amount{N: 1}}
	switch {
	case s.Self:
		e.Target = TargetSelf
	case s.It:
		e.Target = TargetIt
	default:
		e.Target = TargetYourCreatures
		e.CardType = s.Noun
	}
	return e
}

func convertActivated(a activatedLine, text string) Activated {
	out := Activated{Effects: convertEffects(a.Effects), Text: text}
	var cost mana.Cost
	var haveMana bool
	for _, atom := range a.Costs {
		if len(atom.Symbols) > 0 {
			symCost, tap := convertSymbols(atom.Symbols)
			if tap {
				out.Tap = true
			}
			cost = addCosts(cost, symCost)
			if symCost != (mana.Cost{}) {
				haveMana = true
			}
			continue
		}
		if atom.SacSelf {
			out.SacSelf = true
		}
		if atom.SacNoun != "" {
			out.SacCreature = true
			out.SacType = atom.SacNoun
		}
	}
	if haveMana {
		out.ManaCost = &cost
	}
	return out
}

// convertSymbols folds a symbol run into a mana cost, reporting whether a
// tap symbol was present.
func convertSymbols(symbols []manaSymbol) (mana.Cost, bool) {
	var cost mana.Cost
	var tap bool
	for _, sym := range symbols {
		switch {
		case sym.IsTap:
			tap = true
		case sym.IsX:
			cost.X = true
		case sym.Generic != nil:
			cost.Generic += *sym.Generic
		case sym.Color != "":
			switch sym.Color {
			case "w":
				cost.White++
			case "u":
				cost.Blue++
			case "b":
				cost.Black++
			case "r":
				cost.Red++
			case "g":
				cost.Green++
			case "c":
				cost.Colorless++
			}
		}
	}
	return cost, tap
}

func addCosts(a, b mana.Cost) mana.Cost {
	return mana.Cost{
		Generic:   a.Generic + b.Generic,
		White:     a.White + b.White,
		Blue:      a.Blue + b.Blue,
		Black:     a.Black + b.Black,
		Red:       a.Red + b.Red,
		Green:     a.Green + b.Green,
		Colorless: a.Colorless + b.Colorless,
		X:         a.X || b.X,
	}
}

func convertAnthem(a anthemLine, text string) []Static {
	var out []Static
	if a.Boost != nil {
		p, t := a.Boost.values()
		out = append(out, Static{
			Kind:       StaticAnthem,
			Power:      p,
			Toughness:  t,
			Keywords:   keywordNames(a.Keywords),
			TokensOnly: a.Tokens,
			Text:       text,
		})
	}
	if len(a.Grants) > 0 {
		out = append(out, Static{
			Kind:       StaticKeywordGrant,
			Keywords:   keywordNames(a.Grants),
			TokensOnly: a.Tokens,
			Text:       text,
		})
	}
	return out
}
