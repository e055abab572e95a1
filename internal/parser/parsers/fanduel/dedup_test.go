package fanduel

import (
	"testing"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

func TestDedupeLegsWildcardMerge(t *testing.T) {
	odds := -110
	legs := []models.BetLeg{
		{Selection: models.Selection{
			Entities: []string{"LeBron James"}, Market: "Pts",
			Result: models.LegUnknown,
		}},
		{Selection: models.Selection{
			Entities: []string{"LeBron James"}, Market: "Pts",
			Target: "24.5", OU: "Over", Odds: &odds, Result: models.LegWin,
		}},
	}

	out := dedupeLegs(legs)
	if len(out) != 1 {
		t.Fatalf("got %d legs, want 1", len(out))
	}
	leg := out[0]
	if leg.Target != "24.5" || leg.OU != "Over" || leg.Odds == nil || *leg.Odds != -110 {
		t.Errorf("merge lost fields: %+v", leg)
	}
	if leg.Result != models.LegWin {
		t.Errorf("merge result = %v, want WIN", leg.Result)
	}
}

func TestDedupeLegsDistinctTargets(t *testing.T) {
	legs := []models.BetLeg{
		{Selection: models.Selection{Entities: []string{"LeBron James"}, Market: "Pts", Target: "24.5"}},
		{Selection: models.Selection{Entities: []string{"LeBron James"}, Market: "Pts", Target: "29.5"}},
	}
	if out := dedupeLegs(legs); len(out) != 2 {
		t.Fatalf("got %d legs, want 2: differing targets are distinct selections", len(out))
	}
}

func TestMergeResultPrecedence(t *testing.T) {
	dst := models.BetLeg{Selection: models.Selection{Result: models.LegPush}}
	mergeInto(&dst, models.BetLeg{Selection: models.Selection{Result: models.LegLoss}})
	if dst.Result != models.LegLoss {
		t.Errorf("result = %v, want LOSS (LOSS outranks PUSH)", dst.Result)
	}
	mergeInto(&dst, models.BetLeg{Selection: models.Selection{Result: models.LegWin}})
	if dst.Result != models.LegWin {
		t.Errorf("result = %v, want WIN (WIN outranks all)", dst.Result)
	}
	mergeInto(&dst, models.BetLeg{Selection: models.Selection{Result: models.LegPending}})
	if dst.Result != models.LegWin {
		t.Errorf("result = %v, want WIN kept over PENDING", dst.Result)
	}
}
