package archetype

import (
	"testing"
)

func TestTokenizeStemsAndSplits(t *testing.T) {
	words := tokenize("Whenever another creature dies, create two 1/1 white Soldier creature tokens.")

	want := map[string]bool{"die": false, "token": false, "create": false, "creature": false}
	for _, w := range words {
		if _, ok := want[w]; ok {
			want[w] = true
		}
	}
	for term, found := range want {
		if !found {
			t.Errorf("Expected term %q in %v", term, words)
		}
	}
	for _, w := range words {
		if w == "1" || w == "/" {
			t.Errorf("Expected punctuation and digits stripped, got %q", w)
		}
	}
}

func TestStemKeepsShortAndDoubleS(t *testing.T) {
	cases := map[string]string{
		"dies":      "die",
		"tokens":    "token",
		"loses":     "lose",
		"less":      "less",
		"is":        "is",
		"sacrifice": "sacrifice",
	}
	for in, want := range cases {
		if got := stem(in); got != want {
			t.Errorf("Expected stem(%q) = %q, got %q", in, want, got)
		}
	}
}

func TestTermScoreCapsAtOne(t *testing.T) {
	vocab := map[string]float64{"sacrifice": 0.5, "die": 0.5, "death": 0.3}

	if got := termScore("Sacrifice a creature: it dies a death.", vocab); got != 1 {
		t.Errorf("Expected capped score 1, got %v", got)
	}
	if got := termScore("Draw a card.", vocab); got != 0 {
		t.Errorf("Expected no overlap, got %v", got)
	}
	if got := termScore("When this creature dies, draw a card.", vocab); got != 0.5 {
		t.Errorf("Expected a single-term score of 0.5, got %v", got)
	}
}

func TestTermScoreCountsDistinctTermsOnce(t *testing.T) {
	vocab := map[string]float64{"token": 0.4}
	if got := termScore("Create a token, then create a token, then a token.", vocab); got != 0.4 {
		t.Errorf("Expected repeated terms counted once, got %v", got)
	}
}
