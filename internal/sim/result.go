// Package sim drives whole goldfish games through their phase loop and
// aggregates batches of them into summary statistics.
package sim

import (
	"gonum.org/v1/gonum/stat"
)

// Result is the record of one simulated game.
type Result struct {
	Game int
	Seed int64

	Turns          int
	Won            bool
	DeckedOut      bool
	OpponentsSlain int
	Mulligans      int

	TotalDamage     int
	CombatDamage    int
	NoncombatDamage int
	PeakBoardPower  int
	CardsDrawn      int
	TokensCreated   int
	SpellsCast      int
	LandsPlayed     int
	ManaWasted      int

	Archetype string

	Failed       bool
	FailureCause string
}

// Summary aggregates one batch. Failed games are counted but excluded from
// every mean.
type Summary struct {
	Games    int
	Failed   int
	Wins     int
	DeckOuts int

	Archetype string

	MeanTurns       float64
	MeanDamage      float64
	StdDevDamage    float64
	MeanCombat      float64
	MeanNoncombat   float64
	MeanPeakPower   float64
	MeanCardsDrawn  float64
	MeanTokens      float64
	MeanSpellsCast  float64
	MeanLandsPlayed float64
	MeanManaWasted  float64
}

// Summarize folds a batch of game records into aggregate statistics.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}

	var turns, damage, combat, noncombat, peak, drawn, tokens, spells, lands, wasted []float64
	for _, r := range results {
		if r.Failed {
			s.Failed++
			continue
		}
		if r.Won {
			s.Wins++
		}
		if r.DeckedOut {
			s.DeckOuts++
		}
		if s.Archetype == "" {
			s.Archetype = r.Archetype
		}
		turns = append(turns, float64(r.Turns))
		damage = append(damage, float64(r.TotalDamage))
		combat = append(combat, float64(r.CombatDamage))
		noncombat = append(noncombat, float64(r.NoncombatDamage))
		peak = append(peak, float64(r.PeakBoardPower))
		drawn = append(drawn, float64(r.CardsDrawn))
		tokens = append(tokens, float64(r.TokensCreated))
		spells = append(spells, float64(r.SpellsCast))
		lands = append(lands, float64(r.LandsPlayed))
		wasted = append(wasted, float64(r.ManaWasted))
	}

	s.MeanTurns = meanOf(turns)
	s.MeanDamage = meanOf(damage)
	s.StdDevDamage = stdDevOf(damage)
	s.MeanCombat = meanOf(combat)
	s.MeanNoncombat = meanOf(noncombat)
	s.MeanPeakPower = meanOf(peak)
	s.MeanCardsDrawn = meanOf(drawn)
	s.MeanTokens = meanOf(tokens)
	s.MeanSpellsCast = meanOf(spells)
	s.MeanLandsPlayed = meanOf(lands)
	s.MeanManaWasted = meanOf(wasted)
	return s
}

// meanOf guards gonum against empty samples.
func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// stdDevOf guards gonum against samples too small for a sample deviation.
func stdDevOf(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}

// SplitEvenly splits total into k nonnegative parts differing by at most
// one, larger parts first. The parts always sum exactly to total.
func SplitEvenly(total, k int) []int {
	if k <= 0 {
		return nil
	}
	parts := make([]int, k)
	base, rem := total/k, total%k
	for i := range parts {
		parts[i] = base
		if i < rem {
			parts[i]++
		}
	}
	return parts
}
