package deck

import (
	"fmt"
	"strings"
)

// Entry is one card in a deck list with its copy count.
type Entry struct {
	Card     *CardDefinition
	Quantity int
}

// Deck is a loaded deck: a commander plus the remaining list. Entry order
// follows the file, so a fixed seed replays the same shuffle.
type Deck struct {
	Name      string
	Commander *CardDefinition
	Entries   []Entry
}

// TotalQuantity is the number of cards in the list, commander excluded.
func (d *Deck) TotalQuantity() int {
	total := 0
	for _, e := range d.Entries {
		total += e.Quantity
	}
	return total
}

// Expand flattens the list into one card per copy, preserving file order.
func (d *Deck) Expand() []*CardDefinition {
	out := make([]*CardDefinition, 0, d.TotalQuantity())
	for _, e := range d.Entries {
		for i := 0; i < e.Quantity; i++ {
			out = append(out, e.Card)
		}
	}
	return out
}

// Validate checks the structural rules the simulator depends on.
func (d *Deck) Validate() error {
	if d.Commander == nil {
		return fmt.Errorf("deck %q has no commander", d.Name)
	}
	if !d.Commander.IsCreature() || !d.Commander.IsLegendary() {
		return fmt.Errorf("commander %q is not a legendary creature", d.Commander.Name)
	}
	if len(d.Entries) == 0 {
		return fmt.Errorf("deck %q has no cards", d.Name)
	}
	for _, e := range d.Entries {
		if e.Card == nil {
			return fmt.Errorf("deck %q has an entry with no card", d.Name)
		}
		if e.Quantity < 1 {
			return fmt.Errorf("deck %q: %q has quantity %d", d.Name, e.Card.Name, e.Quantity)
		}
		if strings.EqualFold(e.Card.Name, d.Commander.Name) {
			return fmt.Errorf("commander %q also appears in the list", d.Commander.Name)
		}
	}
	return nil
}

// Metrics is the static shape of a deck: curve, counts, and color weights.
type Metrics struct {
	TotalCards    int
	LandCount     int
	CreatureCount int
	AverageCost   float64

	// Mana value buckets 0 through 7, the last holding everything higher.
	Curve [8]int

	TypeBreakdown     map[string]int
	ColorDistribution map[string]int
	CategoryCounts    map[string]int
}

// CalculateMetrics computes deck statistics over the expanded list, the
// commander included.
func CalculateMetrics(d *Deck) *Metrics {
	m := &Metrics{
		TypeBreakdown:     make(map[string]int),
		ColorDistribution: make(map[string]int),
		CategoryCounts:    make(map[string]int),
	}

	cards := d.Expand()
	if d.Commander != nil {
		cards = append(cards, d.Commander)
	}

	costTotal := 0
	nonLand := 0
	for _, card := range cards {
		m.TotalCards++
		for _, t := range card.Types {
			m.TypeBreakdown[t]++
		}
		for _, mt := range card.Cost.Colors() {
			m.ColorDistribution[mt.Symbol()] += card.Cost.Colored(mt)
		}
		for _, category := range card.Abilities.Categories() {
			m.CategoryCounts[category]++
		}

		if card.IsLand() {
			m.LandCount++
			continue
		}
		nonLand++
		mv := card.ManaValue()
		costTotal += mv
		if mv > 7 {
			mv = 7
		}
		m.Curve[mv]++
		if card.IsCreature() {
			m.CreatureCount++
		}
	}
	if nonLand > 0 {
		m.AverageCost = float64(costTotal) / float64(nonLand)
	}
	return m
}
