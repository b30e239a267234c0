package archetype

import (
	"github.com/manacurve/goldfish/internal/deck"
)

// PriorityWeights biases card scoring toward the classified strategy: tag
// to bonus weight, full weight for the archetype's own roles and half for
// tags one synergy relation away.
type PriorityWeights map[string]float64

// Result is the classifier's verdict on one deck.
type Result struct {
	Primary             string
	Confidence          float64
	Secondary           string
	SecondaryConfidence float64

	// Scores holds every template's combined confidence.
	Scores map[string]float64

	// Weights is empty when the deck reads Generic.
	Weights PriorityWeights

	// StrategyCards names the cards filling the primary archetype's
	// roles; their triggers resolve ahead of the rest of the deck's.
	StrategyCards []string
}

const (
	primaryFloor   = 0.30
	secondaryFloor = 0.20
)

// Classify labels the deck's strategy from its full list. Three signals are
// combined per template: how tightly the template's synergy edges cluster
// in the mined interaction graph, how strongly card text overlaps the
// template vocabulary, and how many cards fill expected roles. The
// classifier only reads the deck; board state is never touched.
func Classify(d *deck.Deck) Result {
	profiles := profileCards(d)
	scores := make(map[string]float64, len(templates))

	var members map[int64]int
	if full, hasEdges := interactionGraph(profiles); hasEdges {
		members = membershipOf(clusterCommunities(full))
	}

	for _, t := range templates {
		graphSignal := 0.0
		if members != nil {
			graphSignal = templateCohesion(profiles, members, t) * participation(profiles, t)
		}
		termSignal := deckTermScore(profiles, t)
		roleSignal := dampedRoleScore(profiles, t)
		scores[t.Name] = t.GraphWeight*graphSignal + t.TermWeight*termSignal + t.RoleWeight*roleSignal
	}

	var best, second Template
	bestScore, secondScore := 0.0, 0.0
	for _, t := range templates {
		s := scores[t.Name]
		switch {
		case s > bestScore:
			second, secondScore = best, bestScore
			best, bestScore = t, s
		case s > secondScore:
			second, secondScore = t, s
		}
	}

	res := Result{
		Primary: Generic,
		Scores:  scores,
		Weights: PriorityWeights{},
	}
	if bestScore < primaryFloor {
		return res
	}
	res.Primary = best.Name
	res.Confidence = bestScore
	res.Weights = weightsFor(best)
	res.StrategyCards = strategyCards(profiles, best)
	if second.Name != "" && secondScore >= secondaryFloor {
		res.Secondary = second.Name
		res.SecondaryConfidence = secondScore
	}
	return res
}

// weightsFor builds the scoring bonus table for the chosen template.
func weightsFor(t Template) PriorityWeights {
	w := make(PriorityWeights)
	for _, r := range t.Roles {
		w[r] = 2.0
	}
	set := t.tagSet()
	for _, s := range synergies {
		if set[s.a] && !set[s.b] && w[s.b] == 0 {
			w[s.b] = 1.0
		}
		if set[s.b] && !set[s.a] && w[s.a] == 0 {
			w[s.a] = 1.0
		}
	}
	return w
}

// strategyCards lists the profiles filling the template's roles, in deck
// order.
func strategyCards(profiles []cardProfile, t Template) []string {
	set := t.tagSet()
	var names []string
	for _, p := range profiles {
		for tag := range p.tags {
			if set[tag] {
				names = append(names, p.card.Name)
				break
			}
		}
	}
	return names
}
