package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BetType classifies a settled wager ticket.
type BetType string

const (
	BetTypeSingle  BetType = "single"
	BetTypeParlay  BetType = "parlay"
	BetTypeSGP     BetType = "sgp"
	BetTypeSGPPlus BetType = "sgp_plus"
)

// String returns string representation
func (t BetType) String() string {
	return string(t)
}

// IsValid checks if the bet type is supported
func (t BetType) IsValid() bool {
	switch t {
	case BetTypeSingle, BetTypeParlay, BetTypeSGP, BetTypeSGPPlus:
		return true
	default:
		return false
	}
}

// IsMultiLeg reports whether the ticket combines more than one selection.
func (t BetType) IsMultiLeg() bool {
	return t == BetTypeParlay || t == BetTypeSGP || t == BetTypeSGPPlus
}

// Result is the ticket-level settlement outcome. "pending" is the explicit
// fallback; a Bet never carries an empty result.
type Result string

const (
	ResultWin     Result = "win"
	ResultLoss    Result = "loss"
	ResultPush    Result = "push"
	ResultPending Result = "pending"
)

// String returns string representation
func (r Result) String() string {
	return string(r)
}

// IsValid checks if the result is one of the four settlement states
func (r Result) IsValid() bool {
	switch r {
	case ResultWin, ResultLoss, ResultPush, ResultPending:
		return true
	default:
		return false
	}
}

// Settled reports whether the outcome is decided.
func (r Result) Settled() bool {
	return r == ResultWin || r == ResultLoss || r == ResultPush
}

// LegResult is the per-selection outcome. Legs use uppercase values because
// they come from a different signal (icon class / child aggregation) than the
// footer text that decides the ticket result.
type LegResult string

const (
	LegWin     LegResult = "WIN"
	LegLoss    LegResult = "LOSS"
	LegPush    LegResult = "PUSH"
	LegPending LegResult = "PENDING"
	LegUnknown LegResult = "UNKNOWN"
)

// String returns string representation
func (r LegResult) String() string {
	return string(r)
}

// ToLegResult maps a ticket-level result onto the leg casing convention.
func (r Result) ToLegResult() LegResult {
	switch r {
	case ResultWin:
		return LegWin
	case ResultLoss:
		return LegLoss
	case ResultPush:
		return LegPush
	case ResultPending:
		return LegPending
	default:
		return LegUnknown
	}
}

// Selection is one individual pick: a player or team, a market, and an
// optional threshold. A Selection can never contain other selections; only a
// BetLeg can carry children, so group nesting is exactly one level deep.
type Selection struct {
	Entities []string  `json:"entities"`
	Market   string    `json:"market"`
	Target   string    `json:"target,omitempty"`
	OU       string    `json:"ou,omitempty"`
	Odds     *int      `json:"odds"`
	Result   LegResult `json:"result"`
	Matchup  string    `json:"matchup,omitempty"`
}

// Entity returns the primary subject name, or "" when none was extracted.
func (s *Selection) Entity() string {
	if len(s.Entities) == 0 {
		return ""
	}
	return s.Entities[0]
}

// BetLeg is one selection within a bet, or — when IsGroup is set — an entire
// nested same-game-parlay block represented as one unit.
type BetLeg struct {
	Selection
	IsGroup  bool        `json:"isGroupLeg,omitempty"`
	Children []Selection `json:"children,omitempty"`
}

// Bet is one normalized wager ticket extracted from a settled-bets page.
// A Bet is immutable after assembly; reparsing a page re-derives every bet.
type Bet struct {
	Book   string `json:"book"`
	BetID  string `json:"betId"`
	ID     string `json:"id"`

	PlacedAt  time.Time  `json:"placedAt"`
	SettledAt *time.Time `json:"settledAt,omitempty"`

	BetType        BetType `json:"betType"`
	MarketCategory string  `json:"marketCategory"`

	Odds   int             `json:"odds"`
	Stake  decimal.Decimal `json:"stake"`
	Payout decimal.Decimal `json:"payout"`

	Result Result `json:"result"`

	Description string `json:"description"`
	Name        string `json:"name"`
	Sport       string `json:"sport,omitempty"`
	IsLive      bool   `json:"isLive,omitempty"`

	// Single-bet convenience fields, empty for multi-leg tickets.
	Type string `json:"type,omitempty"`
	Line string `json:"line,omitempty"`
	OU   string `json:"ou,omitempty"`

	Legs []BetLeg `json:"legs,omitempty"`

	// Raw holds the concatenated card text for diagnostics; never shown to
	// end users.
	Raw string `json:"raw,omitempty"`
}

// CanonicalBetID derives the unique ticket identity book:betId:placedAtISO.
func CanonicalBetID(book, betID string, placedAt time.Time) string {
	return fmt.Sprintf("%s:%s:%s", book, betID, placedAt.Format(time.RFC3339))
}
