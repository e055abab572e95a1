package fanduel

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// pushTolerance absorbs float formatting drift between stake and returned
// amounts.
var pushTolerance = decimal.RequireFromString("0.0001")

// inferResult derives the ticket-level result from footer signals, in strict
// priority order. "pending" is the explicit fallback; the function never
// returns an empty result.
func inferResult(meta footerMeta, cardText string) models.Result {
	upper := strings.ToUpper(cardText)

	// 1. An explicit won label beats every numeric comparison: a $0.00 win
	// is still a win when labeled as one.
	if meta.hasWon || strings.Contains(upper, "WON ON") {
		return models.ResultWin
	}

	// 2. A returned label: stake back is a push, zero or missing amount is
	// a loss.
	if strings.Contains(upper, "RETURNED") || strings.Contains(upper, "REFUNDED") {
		if meta.returnedFound && meta.stakeFound &&
			meta.returned.Sub(meta.stake).Abs().LessThanOrEqual(pushTolerance) {
			return models.ResultPush
		}
		if !meta.returnedFound || meta.returned.IsZero() {
			return models.ResultLoss
		}
		// A nonzero return differing from the stake falls through to the
		// numeric comparison.
	}

	settled := strings.Contains(upper, "FINISHED") ||
		strings.Contains(upper, "SETTLED") ||
		strings.Contains(upper, "RETURNED") ||
		meta.payoutFound

	// 3-4. Settled with no explicit label and nothing paid out.
	if settled && meta.payout.IsZero() {
		return models.ResultLoss
	}

	// 5-6. Numeric fallbacks.
	if meta.payoutFound && meta.stakeFound {
		if meta.payout.GreaterThan(meta.stake) {
			return models.ResultWin
		}
		if meta.payout.Equal(meta.stake) {
			return models.ResultPush
		}
	}

	return models.ResultPending
}
