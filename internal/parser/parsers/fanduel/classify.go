package fanduel

import (
	"regexp"
	"strings"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

var (
	sgpPlusRe  = regexp.MustCompile(`(?i)SAME GAME PARLAY\s*(?:PLUS|\+)`)
	includesRe = regexp.MustCompile(`(?i)INCLUDES:?\s*(\d+)\s*SAME GAME PARLAYS?`)

	// "Includes: 1 Same Game Parlay + 2 selections" — the SGP+ header shape
	// that also announces how many extra legs sit outside the nested group.
	includesPlusRe = regexp.MustCompile(`(?i)INCLUDES:?\s*(\d+)\s*SAME GAME PARLAYS?\s*\+\s*(\d+)\s*SELECTIONS?`)

	nLegParlayRe  = regexp.MustCompile(`(?i)(\d+)\s*LEG\s*PARLAY`)
	nLegRe        = regexp.MustCompile(`(?i)(\d+)\s*LEG`)
	parlayAvailRe = regexp.MustCompile(`(?i)PARLAY\s+AVAILABLE`)

	// One comma with selection text on both sides: two comma-separated
	// selections are already a multi-selection ticket.
	multiSelectionRe = regexp.MustCompile(`\S\s*,\s*\S`)
)

// classifyBetType assigns one of single/parlay/sgp/sgp_plus from the
// normalized header text, the aria-label if present, and the count of
// discovered leg rows. First match wins.
func (p *Parser) classifyBetType(headerText, ariaLabel string, legRowCount int) models.BetType {
	text := headerText
	if ariaLabel != "" {
		text += " " + ariaLabel
	}
	upper := strings.ToUpper(text)

	// 1. Explicit plus marker, or the "includes: N same game parlay" shape.
	if sgpPlusRe.MatchString(upper) || includesRe.MatchString(upper) {
		return models.BetTypeSGPPlus
	}

	// 2. An SGP marker that is a real ticket, not a bare "parlay available"
	// promotional mention (promotional mentions carry no stat keywords).
	promo := parlayAvailRe.MatchString(upper) && !p.statKeywordRe.MatchString(text)
	if strings.Contains(upper, sgpMarker) && !promo {
		return models.BetTypeSGP
	}

	// 3. Explicit "N leg parlay".
	if nLegParlayRe.MatchString(upper) {
		if strings.Contains(upper, "SAME GAME") {
			return models.BetTypeSGP
		}
		return models.BetTypeParlay
	}

	// 4. Generic "parlay" with corroborating structure.
	if idx := strings.Index(upper, "PARLAY"); idx >= 0 && !parlayAvailRe.MatchString(upper) {
		if legRowCount >= 2 &&
			(multiSelectionRe.MatchString(text) || nLegRe.MatchString(upper)) {
			if strings.Contains(upper, "SAME GAME") {
				return models.BetTypeSGP
			}
			return models.BetTypeParlay
		}
	}

	return models.BetTypeSingle
}

// reclassifyCollapsed is the correction pass for a nested-SGP-inside-SGP+
// card whose outer structure collapsed to a single leg row: structurally one
// leg, semantically many.
func reclassifyCollapsed(betType models.BetType, legCount int, headerText string) models.BetType {
	if legCount != 1 {
		return betType
	}
	if betType != models.BetTypeParlay && betType != models.BetTypeSGPPlus {
		return betType
	}
	if includesRe.MatchString(strings.ToUpper(headerText)) {
		return models.BetTypeSGPPlus
	}
	return betType
}

// expectedExtraLegs reads the "Includes: N same game parlay + M selections"
// pattern and returns M, or 0 when the pattern is absent.
func expectedExtraLegs(text string) int {
	m := includesPlusRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n := 0
	for _, r := range m[2] {
		n = n*10 + int(r-'0')
	}
	return n
}
