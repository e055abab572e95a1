package models

import "strings"

// Market category labels used by the downstream spreadsheet projection.
const (
	CategoryProps       = "Props"
	CategoryMainMarkets = "Main Markets"
	CategoryFutures     = "Futures"
	CategorySGP         = "SGP-SGP+"
	CategoryParlays     = "Parlays"
)

// propCodes are the stat codes produced by the market-text parser that mark a
// player prop.
var propCodes = map[string]bool{
	"Pts": true, "Reb": true, "Ast": true, "Stl": true, "Blk": true,
	"TO": true, "3pt": true, "PRA": true, "PR": true, "RA": true,
	"PA": true, "Stocks": true, "FB": true, "Top Pts": true,
	"DD": true, "TD": true,
}

var mainMarketCodes = map[string]bool{
	"Spread": true, "Moneyline": true, "Total": true, "ML": true,
}

// DeriveMarketCategory buckets a bet for display. Multi-leg tickets map to
// their composite buckets; singles are bucketed by stat code, then by futures
// wording, then by the most specific bucket any leg content allows.
func DeriveMarketCategory(betType BetType, statCode, description string, hasLegContent bool) string {
	switch betType {
	case BetTypeSGP, BetTypeSGPPlus:
		return CategorySGP
	case BetTypeParlay:
		return CategoryParlays
	}

	if propCodes[statCode] {
		return CategoryProps
	}
	if mainMarketCodes[statCode] {
		return CategoryMainMarkets
	}

	desc := strings.ToUpper(description)
	if strings.Contains(desc, "TO WIN") && (strings.Contains(desc, "CHAMPIONSHIP") ||
		strings.Contains(desc, "TITLE") || strings.Contains(desc, "CONFERENCE") ||
		strings.Contains(desc, "DIVISION")) {
		return CategoryFutures
	}
	if strings.Contains(desc, "CHAMPION") || strings.Contains(desc, "MVP") ||
		strings.Contains(desc, "AWARD") {
		return CategoryFutures
	}
	if strings.Contains(desc, "SPREAD") || strings.Contains(desc, "MONEYLINE") ||
		strings.Contains(desc, "TOTAL POINTS") {
		return CategoryMainMarkets
	}

	// Leg content with no recognizable code is almost always a prop whose
	// phrasing the stat tables missed; absence of any signal falls back to
	// the broadest single-bet bucket.
	if hasLegContent {
		return CategoryProps
	}
	return CategoryMainMarkets
}
