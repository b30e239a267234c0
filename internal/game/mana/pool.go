package mana

// ManaType represents a type of mana.
type ManaType string

const (
	ManaWhite     ManaType = "WHITE"
	ManaBlue      ManaType = "BLUE"
	ManaBlack     ManaType = "BLACK"
	ManaRed       ManaType = "RED"
	ManaGreen     ManaType = "GREEN"
	ManaColorless ManaType = "COLORLESS"
)

// ColorOrder is the canonical WUBRG+C ordering used wherever mana types are
// iterated, so payment decisions are deterministic.
var ColorOrder = []ManaType{ManaWhite, ManaBlue, ManaBlack, ManaRed, ManaGreen, ManaColorless}

// Symbol returns the single-letter cost symbol for the mana type.
func (mt ManaType) Symbol() string {
	switch mt {
	case ManaWhite:
		return "W"
	case ManaBlue:
		return "U"
	case ManaBlack:
		return "B"
	case ManaRed:
		return "R"
	case ManaGreen:
		return "G"
	case ManaColorless:
		return "C"
	default:
		return "?"
	}
}

// TypeForSymbol returns the mana type for a single-letter cost symbol.
func TypeForSymbol(symbol string) (ManaType, bool) {
	switch symbol {
	case "W":
		return ManaWhite, true
	case "U":
		return ManaBlue, true
	case "B":
		return ManaBlack, true
	case "R":
		return ManaRed, true
	case "G":
		return ManaGreen, true
	case "C":
		return ManaColorless, true
	default:
		return "", false
	}
}

// Pool represents the pilot's mana pool. The pool is authoritative only
// within a phase; the turn driver empties it at every phase boundary.
type Pool struct {
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
}

// NewPool creates a new empty mana pool.
func NewPool() *Pool {
	return &Pool{}
}

// Add adds mana to the pool.
func (p *Pool) Add(manaType ManaType, amount int) {
	if amount <= 0 {
		return
	}
	switch manaType {
	case ManaWhite:
		p.White += amount
	case ManaBlue:
		p.Blue += amount
	case ManaBlack:
		p.Black += amount
	case ManaRed:
		p.Red += amount
	case ManaGreen:
		p.Green += amount
	case ManaColorless:
		p.Colorless += amount
	}
}

// Get returns the amount of a specific mana type in the pool.
func (p *Pool) Get(manaType ManaType) int {
	switch manaType {
	case ManaWhite:
		return p.White
	case ManaBlue:
		return p.Blue
	case ManaBlack:
		return p.Black
	case ManaRed:
		return p.Red
	case ManaGreen:
		return p.Green
	case ManaColorless:
		return p.Colorless
	default:
		return 0
	}
}

// Total returns the total mana count across all types.
func (p *Pool) Total() int {
	return p.White + p.Blue + p.Black + p.Red + p.Green + p.Colorless
}

// Spend removes mana of one type from the pool.
// Returns false without mutating if the pool holds less than asked.
func (p *Pool) Spend(manaType ManaType, amount int) bool {
	if amount <= 0 {
		return true
	}
	if p.Get(manaType) < amount {
		return false
	}
	switch manaType {
	case ManaWhite:
		p.White -= amount
	case ManaBlue:
		p.Blue -= amount
	case ManaBlack:
		p.Black -= amount
	case ManaRed:
		p.Red -= amount
	case ManaGreen:
		p.Green -= amount
	case ManaColorless:
		p.Colorless -= amount
	}
	return true
}

// Empty empties the mana pool.
func (p *Pool) Empty() {
	p.White = 0
	p.Blue = 0
	p.Black = 0
	p.Red = 0
	p.Green = 0
	p.Colorless = 0
}

// Copy creates a copy of the mana pool.
func (p *Pool) Copy() *Pool {
	cpy := *p
	return &cpy
}

// CanPay reports whether the pool can cover the cost with the given X value.
func (p *Pool) CanPay(cost *Cost, xValue int) bool {
	if cost == nil {
		return true
	}
	if cost.X && xValue < 0 {
		return false
	}
	test := p.Copy()
	return test.Pay(cost, xValue)
}

// Pay spends the cost from the pool: colored requirements exactly, then the
// generic portion from colorless first and after that from the most abundant
// colors, WUBRG order breaking ties. Returns false without a partial spend
// if the pool cannot cover the cost.
func (p *Pool) Pay(cost *Cost, xValue int) bool {
	if cost == nil {
		return true
	}
	if cost.X && xValue < 0 {
		return false
	}

	test := p.Copy()
	for _, mt := range ColorOrder {
		if !test.Spend(mt, cost.Colored(mt)) {
			return false
		}
	}

	generic := cost.Generic
	if cost.X && xValue > 0 {
		generic += xValue
	}
	for generic > 0 {
		mt, ok := test.richest()
		if !ok {
			return false
		}
		avail := test.Get(mt)
		spend := generic
		if spend > avail {
			spend = avail
		}
		test.Spend(mt, spend)
		generic -= spend
	}

	*p = *test
	return true
}

// richest returns the mana type with the largest amount in the pool,
// preferring colorless so colored mana stays available for colored costs.
func (p *Pool) richest() (ManaType, bool) {
	if p.Colorless > 0 {
		return ManaColorless, true
	}
	best := ManaType("")
	bestAmount := 0
	for _, mt := range ColorOrder {
		if amount := p.Get(mt); amount > bestAmount {
			best = mt
			bestAmount = amount
		}
	}
	if bestAmount == 0 {
		return "", false
	}
	return best, true
}
