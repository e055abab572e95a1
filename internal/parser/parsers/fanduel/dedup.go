package fanduel

import (
	"strings"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// Result merge precedence: a positive WIN detection is rarely a false
// positive, whereas PENDING/UNKNOWN just mean "no signal yet".
var resultRank = map[models.LegResult]int{
	models.LegWin:     4,
	models.LegLoss:    3,
	models.LegPush:    2,
	models.LegPending: 1,
	models.LegUnknown: 0,
}

func legKey(s models.Selection) string {
	return strings.ToLower(strings.Join(s.Entities, "|")) + "\x00" + strings.ToLower(s.Market)
}

// sameSelection implements the wildcard-aware duplicate test: two legs
// duplicate each other when (entity, market) match and either the targets
// are textually equal or one side has no target at all. Two non-empty,
// differing targets are genuinely distinct selections on the same subject.
func sameSelection(a, b models.Selection) bool {
	if legKey(a) != legKey(b) {
		return false
	}
	if a.Target == "" || b.Target == "" {
		return true
	}
	return a.Target == b.Target
}

// mergeInto folds a duplicate detection into the surviving leg, field by
// field: non-empty target wins, any captured odds/OU win, and result follows
// the WIN > LOSS > PUSH > PENDING precedence.
func mergeInto(dst *models.BetLeg, src models.BetLeg) {
	if dst.Target == "" && src.Target != "" {
		dst.Target = src.Target
	}
	if dst.OU == "" && src.OU != "" {
		dst.OU = src.OU
	}
	if dst.Odds == nil && src.Odds != nil {
		dst.Odds = src.Odds
	}
	if dst.Matchup == "" && src.Matchup != "" {
		dst.Matchup = src.Matchup
	}
	if len(dst.Entities) == 0 && len(src.Entities) > 0 {
		dst.Entities = src.Entities
	}
	if resultRank[src.Result] > resultRank[dst.Result] {
		dst.Result = src.Result
	}
}

// dedupeLegs collapses the unioned output of all leg builders into one
// canonical leg list, preserving first-seen order.
func dedupeLegs(legs []models.BetLeg) []models.BetLeg {
	var out []models.BetLeg
	for _, leg := range legs {
		merged := false
		for i := range out {
			if out[i].IsGroup || leg.IsGroup {
				continue
			}
			if sameSelection(out[i].Selection, leg.Selection) {
				mergeInto(&out[i], leg)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, leg)
		}
	}
	return out
}
