package archetype

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/manacurve/goldfish/internal/deck"
)

// cardProfile is one distinct nonland card with its derived tag set.
type cardProfile struct {
	card *deck.CardDefinition
	tags map[string]bool
}

// profileCards flattens the deck into distinct nonland profiles, commander
// first. Duplicate copies collapse to one node so basics and staples don't
// form artificial cliques.
func profileCards(d *deck.Deck) []cardProfile {
	var out []cardProfile
	seen := make(map[string]bool)
	if d.Commander != nil {
		out = append(out, cardProfile{card: d.Commander, tags: cardTagSet(d.Commander, true)})
		seen[d.Commander.Name] = true
	}
	for _, e := range d.Entries {
		if e.Card == nil || e.Card.IsLand() || seen[e.Card.Name] {
			continue
		}
		seen[e.Card.Name] = true
		out = append(out, cardProfile{card: e.Card, tags: cardTagSet(e.Card, false)})
	}
	return out
}

// CardTags lists the archetype-relevant tags of a card: its parsed ability
// categories plus tags derived from the card as a whole. The scorers use
// the same tags to look cards up in a PriorityWeights table.
func CardTags(c *deck.CardDefinition, commander bool) []string {
	out := c.Abilities.Categories()
	if c.IsType("Instant") || c.IsType("Sorcery") {
		out = append(out, tagSpell)
	}
	if c.ManaValue() >= bigSpellManaValue {
		out = append(out, tagBigSpell)
	}
	if commander {
		out = append(out, tagCommander)
	}
	return out
}

func cardTagSet(c *deck.CardDefinition, commander bool) map[string]bool {
	tags := make(map[string]bool)
	for _, tag := range CardTags(c, commander) {
		tags[tag] = true
	}
	return tags
}

// pairWeight sums the synergy relations linking two tag sets. A non-nil
// relevant set narrows the sum to one template's relations.
func pairWeight(a, b map[string]bool, relevant map[string]bool) float64 {
	total := 0.0
	for _, s := range synergies {
		if relevant != nil && (!relevant[s.a] || !relevant[s.b]) {
			continue
		}
		if (a[s.a] && b[s.b]) || (a[s.b] && b[s.a]) {
			total += s.weight
		}
	}
	return total
}

// interactionGraph builds the weighted card-pair graph over the profiles.
// Every profile becomes a node; edges carry the summed synergy weight.
func interactionGraph(profiles []cardProfile) (*simple.WeightedUndirectedGraph, bool) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range profiles {
		g.AddNode(simple.Node(int64(i)))
	}
	hasEdges := false
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			w := pairWeight(profiles[i].tags, profiles[j].tags, nil)
			if w > 0 {
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(int64(i)),
					T: simple.Node(int64(j)),
					W: w,
				})
				hasEdges = true
			}
		}
	}
	return g, hasEdges
}

// clusterCommunities mines synergy communities from the full graph with
// Louvain. The source is fixed so the same deck always yields the same
// structure.
func clusterCommunities(g graph.Undirected) [][]graph.Node {
	reduced := community.Modularize(g, 1.0, rand.NewSource(0x6d616e6163757276))
	return reduced.Communities()
}

// membershipOf maps node IDs to their community index.
func membershipOf(communities [][]graph.Node) map[int64]int {
	members := make(map[int64]int)
	for i, c := range communities {
		for _, n := range c {
			members[n.ID()] = i
		}
	}
	return members
}

// templateCohesion is the share of the template's synergy edge weight that
// stays inside a single mined community. Raw Newman modularity collapses to
// zero when a focused deck forms one dense community, so the concentration
// form of the statistic is used instead.
func templateCohesion(profiles []cardProfile, members map[int64]int, t Template) float64 {
	relevant := t.tagSet()
	total, inside := 0.0, 0.0
	for i := 0; i < len(profiles); i++ {
		for j := i + 1; j < len(profiles); j++ {
			w := pairWeight(profiles[i].tags, profiles[j].tags, relevant)
			if w == 0 {
				continue
			}
			total += w
			if members[int64(i)] == members[int64(j)] {
				inside += w
			}
		}
	}
	if total == 0 {
		return 0
	}
	return inside / total
}

// participation is the share of profiles carrying at least one of the
// template's tags.
func participation(profiles []cardProfile, t Template) float64 {
	if len(profiles) == 0 {
		return 0
	}
	set := t.tagSet()
	n := 0
	for _, p := range profiles {
		for tag := range p.tags {
			if set[tag] {
				n++
				break
			}
		}
	}
	return float64(n) / float64(len(profiles))
}
