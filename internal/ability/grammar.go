package ability

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The grammar parses one normalized line of rules text at a time. Lines are
// lowercase, self-references are replaced with NAME, and reminder text is
// already stripped.

var abilityLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `[\s]+`},
	{Name: "Ident", Pattern: `[a-zA-Z]\w*`},
	{Name: "Punct", Pattern: `[-+,{}/:.]`},
	{Name: "Int", Pattern: `\d+`},
})

// line is a union over every clause shape the grammar recognizes.
type line interface{ line() }

type parsedLine struct {
	Line line `@@`
}

// number is a quantity written as digits, a counting word, or x.
type number struct {
	Digits *int   `  @Int`
	Word   string `| @("a"|"an"|"one"|"two"|"three"|"four"|"five"|"six"|"seven"|"eight"|"nine"|"ten")`
	IsX    bool   `| @("x")`
}

var numberWords = map[string]int{
	"a": 1, "an": 1, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

func (n number) amount() Amount {
	switch {
	case n.IsX:
		return Amount{X: true}
	case n.Digits != nil:
		return Amount{N: *n.Digits}
	default:
		return Amount{N: numberWords[n.Word]}
	}
}

// boost is a signed power/toughness pair like +1/+1 or -2/-0.
type boost struct {
	PowerSign     string `@("+"|"-")`
	Power         int    `@Int "/"`
	ToughnessSign string `@("+"|"-")`
	Toughness     int    `@Int`
}

func (b boost) values() (int, int) {
	p, t := b.Power, b.Toughness
	if b.PowerSign == "-" {
		p = -p
	}
	if b.ToughnessSign == "-" {
		t = -t
	}
	return p, t
}

// manaSymbol is one brace-enclosed symbol in an activation cost or an
// add-mana effect.
type manaSymbol struct {
	Color   string `"{" ( @("w"|"u"|"b"|"r"|"g"|"c")`
	Generic *int   `     | @Int`
	IsX     bool   `     | @("x")`
	IsTap   bool   `     | @("t") ) "}"`
}

// keywordAtom is one keyword in a keyword line or token description.
type keywordAtom struct {
	FirstStrike  bool   `  @("first" "strike")`
	DoubleStrike bool   `| @("double" "strike")`
	Word         string `| @("flying"|"haste"|"vigilance"|"lifelink"|"deathtouch"|"trample"|"menace"|"reach"|"defender"|"hexproof"|"indestructible")`
}

func (k keywordAtom) name() string {
	switch {
	case k.FirstStrike:
		return "first strike"
	case k.DoubleStrike:
		return "double strike"
	default:
		return k.Word
	}
}

// keywordLine is a bare list of keywords, e.g. "flying, lifelink".
type keywordLine struct {
	Keywords []keywordAtom `@@ ("," @@)* "."?`
}

func (keywordLine) line() {}

// equipLine is an equip cost, e.g. "equip {2}".
type equipLine struct {
	Symbols []manaSymbol `"equip" @@+ "."?`
}

func (equipLine) line() {}

// triggeredLine is "<trigger>, <effects>."
type triggeredLine struct {
	Trigger triggerClause `@@ ","`
	Effects effectList    `@@ "."?`
}

func (triggeredLine) line() {}

// triggerClause matches the recognized trigger conditions. Alternatives
// sharing a prefix list the longer form first.
type triggerClause struct {
	Upkeep          bool           `  @("at" "the" "beginning" "of" ("your"|"each") "upkeep")`
	EndStep         bool           `| @("at" "the" "beginning" "of" ("your"|"each") "end" "step")`
	SelfEnters      bool           `| ("when"|"whenever") ( @("NAME" "enters" ("the" "battlefield")?)`
	SelfAttacks     bool           `| @("NAME" "attacks")`
	SelfDies        bool           `| @("NAME" "dies")`
	CastNoncreature bool           `| @("you" "cast" "a" "noncreature" "spell")`
	CastSpell       bool           `| @("you" "cast" "a" "spell")`
	PlayLand        bool           `| @("you" "play" "a" "land")`
	DrawCard        bool           `| @("you" "draw" "a" "card")`
	GainLife        bool           `| @("you" "gain" "life")`
	SacrificeWhat   string         `| "you" "sacrifice" ("a"|"an")? @("creature"|"permanent"|"artifact"|"token")`
	CreateTokens    bool           `| @("you" "create" "one" "or" "more" "tokens")`
	MillCards       bool           `| @("you" "mill" "one" "or" "more" "cards")`
	LeavesGraveyard bool           `| @(("a"|"one" "or" "more") ("card"|"cards") ("leave"|"leaves") "your" "graveyard")`
	Subject         *subjectClause `| @@ )`
}

// subjectClause is a trigger about some other object, e.g. "another
// creature you control dies". A leading "NAME or" widens the filter to
// include the source itself.
type subjectClause struct {
	OrSelf   bool         `@("NAME" "or")?`
	Another  bool         `@("another")? ("a"|"an")?`
	Nontoken bool         `@("nontoken")?`
	Token    bool         `@("token")?`
	Noun     string       `@("creature"|"artifact"|"enchantment"|"permanent"|"land"|"equipment")?`
	Yours    bool         `@("you" "control")?`
	Event    subjectEvent `@@`
}

type subjectEvent struct {
	Dies    bool `  @("dies"|"die")`
	Enters  bool `| @("enters" ("the" "battlefield")?) ("under" "your" "control")?`
	Attacks bool `| @("attacks"|"attack")`
	Created bool `| @(("is"|"are") "created") ("under" "your" "control")?`
}

// effectList is one or more effect clauses joined by commas or "and".
type effectList struct {
	Effects []effectClause `@@ ( ("," ("then"|"and")? | "and") @@ )*`
}

// effectClause matches one recognized effect.
type effectClause struct {
	Create   *createEffect   `  @@`
	Draw     *drawEffect     `| @@`
	Lose     *loseLifeEffect `| @@`
	Gain     *gainLifeEffect `| @@`
	Damage   *damageEffect   `| @@`
	Counters *countersEffect `| @@`
	Pump     *pumpEffect     `| @@`
	Mill     *millEffect     `| @@`
	AddMana  *addManaEffect  `| @@`
	Sac      *sacEffect      `| @@`
	Return   *returnEffect   `| @@`
}

// createEffect is "create <n> [tapped] [p/t] [colors] [name] [creature]
// token[s] [with keywords]".
type createEffect struct {
	Count     number        `"create" @@`
	Tapped    bool          `@("tapped")?`
	Power     *number       `( @@ "/"`
	Toughness *number       `  @@ )?`
	Colors    []string      `@("white"|"blue"|"black"|"red"|"green"|"colorless")*`
	Name      string        `@Ident?`
	Creature  string        `@("creature"|"artifact")? ("token"|"tokens")`
	Keywords  []keywordAtom `("with" @@ ("and" @@)*)?`
}

type drawEffect struct {
	You   bool   `@("you")? ("draw"|"draws")`
	Count number `@@ ("card"|"cards")`
}

type loseLifeEffect struct {
	Each   string `"each" @("opponent"|"player") ("lose"|"loses")`
	Amount number `@@ "life"`
}

type gainLifeEffect struct {
	You    bool   `@("you")? ("gain"|"gains")`
	Amount number `@@ "life"`
}

type damageEffect struct {
	Source string       `@("NAME"|"it")? ("deal"|"deals")`
	Amount number       `@@ "damage" "to"`
	Target damageTarget `@@`
}

type damageTarget struct {
	AnyTarget    bool `  @("any" "target")`
	EachOpponent bool `| @("each" ("opponent"|"player"))`
	Opponent     bool `| @(("target"|"an")? ("opponent"|"player"))`
}

// countersEffect is "put <n> <kind> counter[s] on <target>".
type countersEffect struct {
	Count  number         `"put" @@`
	Boost  *boost         `( @@`
	Named  string         `| @("charge"|"loyalty") ) ("counter"|"counters") "on"`
	Target countersTarget `@@`
}

type countersTarget struct {
	Self         bool `  @("NAME")`
	It           bool `| @("it")`
	Equipped     bool `| @("equipped" "creature")`
	EachCreature bool `| @("each" "creature" "you" "control")`
	AnyCreature  bool `| @(("target"|"a") "creature" ("you" "control")?)`
}

// pumpEffect is "<subject> get[s] +p/+t [and gain keywords] [until end of
// turn]".
type pumpEffect struct {
	Self          bool          `( @("NAME")`
	It            bool          `| @("it")`
	Equipped      bool          `| @("equipped" "creature")`
	YourCreatures bool          `| @(("creatures"|"creature" "tokens") "you" "control") ) ("get"|"gets")`
	Boost         boost         `@@`
	Keywords      []keywordAtom `("and" ("gain"|"gains"|"have"|"has") @@ ("and" @@)*)?`
	UntilEOT      bool          `@("until" "end" "of" "turn")?`
}

type millEffect struct {
	You   bool   `@("you")? ("mill"|"mills")`
	Count number `@@ ("card"|"cards")`
}

type addManaEffect struct {
	Symbols []manaSymbol `"add" ( @@+`
	Any     *number      `| @@ "mana" "of" "any" "color" )`
}

type sacEffect struct {
	Self bool   `"sacrifice" ( @("NAME")`
	It   bool   `| @("it")`
	Noun string `| ("a"|"an")? @("creature"|"permanent"|"artifact"|"token"|"land") )`
}

type returnEffect struct {
	CardType      string `"return" ("target"|"a"|"an")? @("creature"|"artifact"|"enchantment"|"permanent")? ("card"|"cards")? "from" "your" "graveyard" "to"`
	ToHand        bool   `( @("your" "hand")`
	ToBattlefield bool   `| @("the" "battlefield") )`
}

// activatedLine is "<costs>: <effects>."
type activatedLine struct {
	Costs   []costAtom `@@ ("," @@)* ":"`
	Effects effectList `@@ "."?`
}

func (activatedLine) line() {}

// costAtom is one comma-separated piece of an activation cost.
type costAtom struct {
	Symbols []manaSymbol `  @@+`
	SacSelf bool         `| "sacrifice" ( @("NAME")`
	SacNoun string       `              | ("a"|"an")? @("creature"|"permanent"|"artifact"|"token") )`
}

// doublerLine is the token doubling replacement, matched verbatim.
type doublerLine struct {
	Matched bool `@("if" "one" "or" "more" "tokens" "would" "be" "created" "under" "your" "control" "," "twice" "that" "many" "of" "those" "tokens" "are" "created" "instead") "."?`
}

func (doublerLine) line() {}

// anthemLine is a continuous buff to your creatures, e.g. "creatures you
// control get +1/+1" or "creatures you control have haste".
type anthemLine struct {
	Tokens   bool          `("creatures"|"creature" @("tokens")) "you" "control"`
	Boost    *boost        `( ("get"|"gets") @@`
	Keywords []keywordAtom `  ("and" ("have"|"has") @@ ("and" @@)*)?`
	Grants   []keywordAtom `| ("have"|"has") @@ ("and" @@)* ) "."?`
}

func (anthemLine) line() {}

// costReductionLine is "[type] spells you cast cost {n} less to cast".
type costReductionLine struct {
	SpellType string `@("creature"|"artifact"|"enchantment"|"noncreature")? ("spells"|"spell") "you" "cast" ("cost"|"costs") "{"`
	Amount    int    `@Int "}" "less" ("to" "cast")? "."?`
}

func (costReductionLine) line() {}

// equippedLine is "equipped creature gets +p/+t [and has keywords]".
type equippedLine struct {
	Boost    boost         `"equipped" "creature" ("get"|"gets") @@`
	Keywords []keywordAtom `("and" ("has"|"have"|"gains") @@ ("and" @@)*)? "."?`
}

func (equippedLine) line() {}

// spellLine is a bare imperative effect list, the body of an instant or
// sorcery. It is tried last so ability shapes win when both fit.
type spellLine struct {
	Effects effectList `@@ "."?`
}

func (spellLine) line() {}

func buildLineParser() *participle.Parser[parsedLine] {
	return participle.MustBuild[parsedLine](
		participle.Lexer(abilityLexer),
		participle.Union[line](
			triggeredLine{},
			doublerLine{},
			equippedLine{},
			equipLine{},
			costReductionLine{},
			anthemLine{},
			activatedLine{},
			keywordLine{},
			spellLine{},
		),
		participle.UseLookahead(4),
	)
}
