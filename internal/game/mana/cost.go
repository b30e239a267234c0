package mana

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Cost represents a parsed mana cost.
type Cost struct {
	Generic   int
	White     int
	Blue      int
	Black     int
	Red       int
	Green     int
	Colorless int
	X         bool // X in cost (e.g., {X}{R})
}

// costSymbolPattern matches mana symbols: {1}, {G}, {X}, {W/U}, etc.
var costSymbolPattern = regexp.MustCompile(`\{([^}]+)\}`)

// ParseCost parses a mana cost string (e.g., "{1}{G}", "{2}{R}{R}", "{X}{R}").
// Supports:
// - Generic: {1}, {2}, {3}, etc.
// - Colored: {W}, {U}, {B}, {R}, {G}, {C}
// - X costs: {X}
// Hybrid symbols like {W/U} and {2/B} count toward the generic portion; the
// simulator never has to choose between hybrid halves.
func ParseCost(costStr string) (*Cost, error) {
	if strings.TrimSpace(costStr) == "" {
		return &Cost{}, nil
	}

	cost := &Cost{}

	matches := costSymbolPattern.FindAllStringSubmatch(costStr, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no mana symbols in %q", costStr)
	}

	for _, match := range matches {
		symbol := strings.ToUpper(strings.TrimSpace(match[1]))

		switch symbol {
		case "X":
			cost.X = true
		case "W":
			cost.White++
		case "U":
			cost.Blue++
		case "B":
			cost.Black++
		case "R":
			cost.Red++
		case "G":
			cost.Green++
		case "C":
			cost.Colorless++
		default:
			if num, err := strconv.Atoi(symbol); err == nil {
				cost.Generic += num
			} else if strings.Contains(symbol, "/") {
				cost.Generic++
			} else {
				return nil, fmt.Errorf("unknown mana symbol: {%s}", symbol)
			}
		}
	}

	return cost, nil
}

// MustParseCost parses a cost string and panics on failure. Test helper.
func MustParseCost(costStr string) *Cost {
	cost, err := ParseCost(costStr)
	if err != nil {
		panic(err)
	}
	return cost
}

// Colored returns the colored requirement for one mana type.
func (c *Cost) Colored(mt ManaType) int {
	switch mt {
	case ManaWhite:
		return c.White
	case ManaBlue:
		return c.Blue
	case ManaBlack:
		return c.Black
	case ManaRed:
		return c.Red
	case ManaGreen:
		return c.Green
	case ManaColorless:
		return c.Colorless
	default:
		return 0
	}
}

// ColoredTotal returns the total colored (non-generic) requirement.
func (c *Cost) ColoredTotal() int {
	return c.White + c.Blue + c.Black + c.Red + c.Green + c.Colorless
}

// ManaValue returns the converted cost, counting X as zero.
func (c *Cost) ManaValue() int {
	return c.Generic + c.ColoredTotal()
}

// IsFree reports whether the cost is empty.
func (c *Cost) IsFree() bool {
	return c.ManaValue() == 0 && !c.X
}

// String returns the canonical cost string, generic first then WUBRG+C.
func (c *Cost) String() string {
	var b strings.Builder

	if c.X {
		b.WriteString("{X}")
	}
	if c.Generic > 0 {
		fmt.Fprintf(&b, "{%d}", c.Generic)
	}
	for _, mt := range ColorOrder {
		for i := 0; i < c.Colored(mt); i++ {
			fmt.Fprintf(&b, "{%s}", mt.Symbol())
		}
	}
	if b.Len() == 0 {
		return "{0}"
	}
	return b.String()
}

// WithReduction returns a copy of the cost with the generic portion reduced.
// Colored requirements are never reduced.
func (c *Cost) WithReduction(generic int) *Cost {
	reduced := *c
	reduced.Generic -= generic
	if reduced.Generic < 0 {
		reduced.Generic = 0
	}
	return &reduced
}

// WithSurcharge returns a copy of the cost with extra generic mana added.
// Used for the escalating command zone tax.
func (c *Cost) WithSurcharge(generic int) *Cost {
	increased := *c
	if generic > 0 {
		increased.Generic += generic
	}
	return &increased
}

// Colors returns the mana types with a nonzero colored requirement,
// in WUBRG+C order.
func (c *Cost) Colors() []ManaType {
	var colors []ManaType
	for _, mt := range ColorOrder {
		if c.Colored(mt) > 0 {
			colors = append(colors, mt)
		}
	}
	return colors
}
