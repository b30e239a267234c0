package counters

import (
	"strconv"
	"strings"
)

// Counter represents a named counter on a permanent.
type Counter struct {
	Name  string
	Count int
}

// NewCounter creates a new counter with the given name and count.
func NewCounter(name string, count int) *Counter {
	if count <= 0 {
		count = 1
	}
	return &Counter{
		Name:  name,
		Count: count,
	}
}

// Add adds the specified amount to the counter.
func (c *Counter) Add(amount int) {
	if amount > 0 {
		c.Count += amount
	}
}

// Remove removes the specified amount from the counter.
// Will not allow count to go below 0.
func (c *Counter) Remove(amount int) {
	if amount > 0 {
		if c.Count >= amount {
			c.Count -= amount
		} else {
			c.Count = 0
		}
	}
}

// Copy creates a deep copy of the counter.
func (c *Counter) Copy() *Counter {
	return &Counter{
		Name:  c.Name,
		Count: c.Count,
	}
}

// BoostName builds the canonical name of a power/toughness counter,
// e.g. "+1/+1" or "-1/-1".
func BoostName(power, toughness int) string {
	return formatBoost(power) + "/" + formatBoost(toughness)
}

func formatBoost(value int) string {
	if value >= 0 {
		return "+" + strconv.Itoa(value)
	}
	return strconv.Itoa(value)
}

// ParseBoostName parses a boost counter name (e.g., "+1/+1") into power and
// toughness deltas. Returns false for names that are not boost counters.
func ParseBoostName(name string) (power, toughness int, ok bool) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	power, ok = parseBoostValue(parts[0])
	if !ok {
		return 0, 0, false
	}
	toughness, ok = parseBoostValue(parts[1])
	if !ok {
		return 0, 0, false
	}
	return power, toughness, true
}

func parseBoostValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if s[0] == '+' {
		s = s[1:]
	}
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Set manages the collection of counters on one permanent.
type Set struct {
	counters map[string]*Counter
}

// NewSet creates an empty counter set.
func NewSet() *Set {
	return &Set{
		counters: make(map[string]*Counter),
	}
}

// Add adds counters of the given name to the set.
func (s *Set) Add(name string, amount int) {
	if amount <= 0 {
		return
	}
	if existing, ok := s.counters[name]; ok {
		existing.Add(amount)
	} else {
		s.counters[name] = NewCounter(name, amount)
	}
}

// Remove removes up to amount counters of the given name.
// Returns true if any counters were removed.
func (s *Set) Remove(name string, amount int) bool {
	if amount <= 0 {
		return false
	}
	counter, ok := s.counters[name]
	if !ok {
		return false
	}
	counter.Remove(amount)
	if counter.Count == 0 {
		delete(s.counters, name)
	}
	return true
}

// Count returns the count of counters with the given name.
func (s *Set) Count(name string) int {
	if counter, ok := s.counters[name]; ok {
		return counter.Count
	}
	return 0
}

// Has returns true if there are any counters with the given name.
func (s *Set) Has(name string) bool {
	return s.Count(name) > 0
}

// Total returns the total number of all counters.
func (s *Set) Total() int {
	total := 0
	for _, counter := range s.counters {
		total += counter.Count
	}
	return total
}

// BoostTotals sums the power and toughness contributions of all boost
// counters in the set.
func (s *Set) BoostTotals() (power, toughness int) {
	for name, counter := range s.counters {
		if p, t, ok := ParseBoostName(name); ok {
			power += p * counter.Count
			toughness += t * counter.Count
		}
	}
	return power, toughness
}

// Names returns the counter names present in the set, unordered.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.counters))
	for name := range s.counters {
		names = append(names, name)
	}
	return names
}

// Copy creates a deep copy of the counter set.
func (s *Set) Copy() *Set {
	cpy := NewSet()
	for name, counter := range s.counters {
		cpy.counters[name] = counter.Copy()
	}
	return cpy
}
