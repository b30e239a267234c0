package archetype

import (
	"strings"
	"unicode"
)

// tokenize lowers the text, splits on anything that is not a letter and
// crudely de-pluralizes, so "dies", "tokens" and "creates" all land on
// their vocabulary form.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for i, w := range words {
		words[i] = stem(w)
	}
	return words
}

func stem(word string) string {
	if len(word) > 3 && strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}
	return word
}

// termScore sums the vocabulary weights of the distinct terms appearing in
// the card's text, capped at 1.
func termScore(text string, vocab map[string]float64) float64 {
	seen := make(map[string]bool)
	score := 0.0
	for _, w := range tokenize(text) {
		if seen[w] {
			continue
		}
		seen[w] = true
		score += vocab[w]
	}
	if score > 1 {
		return 1
	}
	return score
}

// deckTermScore averages the per-card term overlap across the profiles.
func deckTermScore(profiles []cardProfile, t Template) float64 {
	if len(profiles) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range profiles {
		total += termScore(p.card.Text, t.Terms)
	}
	return total / float64(len(profiles))
}
