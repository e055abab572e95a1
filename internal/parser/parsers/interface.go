package parsers

import (
	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// SettledParser extracts normalized bet records from a saved "settled bets"
// page of one sportsbook.
type SettledParser interface {
	// Book returns the sportsbook name this parser understands.
	Book() string

	// ParseSettled parses one HTML snapshot. It never fails: malformed or
	// empty input yields an empty list, and per-card extraction problems
	// degrade to documented field defaults.
	ParseSettled(html string) []models.Bet
}
