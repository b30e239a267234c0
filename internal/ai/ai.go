// Package ai picks the pilot's plays. Two scorers share one interface: a
// static-tier baseline and an enhanced scorer layering per-decision
// resource metrics over it. Scoring is pure: a scorer reads a View
// snapshot and never touches the game, so the same snapshot always yields
// the same decision.
package ai

import (
	"math"

	"github.com/manacurve/goldfish/internal/archetype"
	"github.com/manacurve/goldfish/internal/deck"
	"github.com/manacurve/goldfish/internal/game"
	"github.com/manacurve/goldfish/internal/game/mana"
)

// Candidate is one playable card under consideration, carrying its cost as
// it stands right now (reductions and commander tax applied).
type Candidate struct {
	Card      *deck.CardDefinition
	Cost      *mana.Cost
	Commander bool
	Castable  bool
}

// View is the decision snapshot handed to a scorer: everything it may
// read, captured once per decision.
type View struct {
	Turn          int
	LibraryCount  int
	Hand          []*deck.CardDefinition
	AvailableMana int
	Weights       archetype.PriorityWeights
}

// NewView captures the scorer-visible state of the game.
func NewView(g *game.Game, weights archetype.PriorityWeights) View {
	return View{
		Turn:          g.Turn(),
		LibraryCount:  g.LibraryCount(),
		Hand:          g.Hand(),
		AvailableMana: g.AvailableManaTotal(),
		Weights:       weights,
	}
}

// Candidates lists the spell-speed plays: every nonland card in hand, then
// the commander while it waits in the command zone. Cards the board refuses
// stay in the list flagged not castable so the hold logic can still reason
// about them.
func Candidates(g *game.Game) []Candidate {
	var out []Candidate
	for _, card := range g.Hand() {
		if card.IsLand() {
			continue
		}
		out = append(out, Candidate{
			Card:     card,
			Cost:     g.EffectiveCost(card),
			Castable: g.CanCast(card),
		})
	}
	if cmd := g.Commander(); cmd != nil && g.CommanderInCommandZone() {
		out = append(out, Candidate{
			Card:      cmd,
			Cost:      g.EffectiveCost(cmd),
			Commander: true,
			Castable:  g.CanCast(cmd),
		})
	}
	return out
}

// Scorer ranks candidate plays. Implementations are deterministic: equal
// views and candidates produce equal scores, and ChooseBest breaks ties
// toward the earlier candidate so a seeded run replays identically.
type Scorer interface {
	Score(c Candidate, v View) float64
	ChooseBest(cands []Candidate, v View) (Candidate, bool)
	ShouldHold(card *deck.CardDefinition, v View) bool
}

// chooseFirstBest is the shared ChooseBest loop: highest score wins, ties
// keep the earliest candidate, uncastable candidates are skipped.
func chooseFirstBest(s Scorer, cands []Candidate, v View) (Candidate, bool) {
	var best Candidate
	bestScore := math.Inf(-1)
	found := false
	for _, c := range cands {
		if !c.Castable {
			continue
		}
		if score := s.Score(c, v); score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}
