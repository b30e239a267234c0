package archetype

import "math"

// entropyDamping controls how hard a diverse role spread pulls a role match
// toward Generic.
const entropyDamping = 0.5

// roleMatch is the fraction of profiles filling at least one of the
// template's expected roles.
func roleMatch(profiles []cardProfile, t Template) float64 {
	if len(profiles) == 0 {
		return 0
	}
	matched := 0
	for _, p := range profiles {
		for _, role := range t.Roles {
			if p.tags[role] {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(profiles))
}

// roleEntropy is the normalized entropy of the deck's category
// distribution, 0 for a single-role deck and 1 for a perfectly even spread.
func roleEntropy(profiles []cardProfile) float64 {
	counts := make(map[string]int)
	total := 0
	for _, p := range profiles {
		for _, cat := range p.card.Abilities.Categories() {
			counts[cat]++
			total++
		}
	}
	if total == 0 || len(counts) < 2 {
		return 0
	}
	entropy := 0.0
	for _, n := range counts {
		p := float64(n) / float64(total)
		entropy -= p * math.Log(p)
	}
	return entropy / math.Log(float64(len(counts)))
}

// dampedRoleScore is the role match discounted by how scattered the deck's
// roles are overall.
func dampedRoleScore(profiles []cardProfile, t Template) float64 {
	return roleMatch(profiles, t) * (1 - entropyDamping*roleEntropy(profiles))
}
