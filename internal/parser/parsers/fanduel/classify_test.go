package fanduel

import (
	"testing"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

func TestClassifyBetType(t *testing.T) {
	p := newTestParser()

	cases := []struct {
		header string
		aria   string
		rows   int
		want   models.BetType
	}{
		{"Same Game Parlay+ 4 selections", "", 4, models.BetTypeSGPPlus},
		{"Includes: 2 Same Game Parlays", "", 5, models.BetTypeSGPPlus},
		{"Same Game Parlay LeBron James Over 24.5 Points", "", 3, models.BetTypeSGP},
		{"3 Leg Parlay Chiefs Moneyline", "", 3, models.BetTypeParlay},
		// Two comma-separated selections are already a parlay.
		{"Parlay Chiefs -3.5 Spread, Eagles +2.5 Spread", "", 2, models.BetTypeParlay},
		{"5 Leg Same Game Parlay", "", 5, models.BetTypeSGP},
		{"LeBron James Over 24.5 Points", "", 1, models.BetTypeSingle},
		// Promotional mention, not an actual parlay ticket.
		{"Celtics Same Game Parlay Available", "", 1, models.BetTypeSingle},
		// Aria-label is part of the classification text.
		{"", "Same Game Parlay+ ticket", 2, models.BetTypeSGPPlus},
	}
	for _, c := range cases {
		if got := p.classifyBetType(c.header, c.aria, c.rows); got != c.want {
			t.Errorf("classifyBetType(%q, %q, %d) = %v, want %v",
				c.header, c.aria, c.rows, got, c.want)
		}
	}
}

func TestReclassifyCollapsed(t *testing.T) {
	got := reclassifyCollapsed(models.BetTypeParlay, 1, "Includes: 1 Same Game Parlay")
	if got != models.BetTypeSGPPlus {
		t.Errorf("collapsed includes-card = %v, want sgp_plus", got)
	}
	if got := reclassifyCollapsed(models.BetTypeParlay, 3, "Includes: 1 Same Game Parlay"); got != models.BetTypeParlay {
		t.Errorf("multi-row card reclassified to %v, want parlay unchanged", got)
	}
}

func TestExpectedExtraLegs(t *testing.T) {
	if got := expectedExtraLegs("Includes: 1 Same Game Parlay + 2 Selections"); got != 2 {
		t.Errorf("expectedExtraLegs = %d, want 2", got)
	}
	if got := expectedExtraLegs("Same Game Parlay"); got != 0 {
		t.Errorf("expectedExtraLegs = %d, want 0 when the pattern is absent", got)
	}
}
