package models

import (
	"testing"
	"time"
)

func TestCanonicalBetID(t *testing.T) {
	placed := time.Date(2025, 1, 12, 19, 30, 0, 0, time.FixedZone("", -5*3600))
	id := CanonicalBetID("fanduel", "O/123456/0001", placed)
	want := "fanduel:O/123456/0001:2025-01-12T19:30:00-05:00"
	if id != want {
		t.Errorf("id mismatch: got %s, want %s", id, want)
	}
}

func TestResultValidity(t *testing.T) {
	for _, r := range []Result{ResultWin, ResultLoss, ResultPush, ResultPending} {
		if !r.IsValid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Result("").IsValid() {
		t.Error("empty result should be invalid")
	}
	if !ResultWin.Settled() || ResultPending.Settled() {
		t.Error("settled detection wrong")
	}
}

func TestToLegResult(t *testing.T) {
	cases := map[Result]LegResult{
		ResultWin:     LegWin,
		ResultLoss:    LegLoss,
		ResultPush:    LegPush,
		ResultPending: LegPending,
	}
	for in, want := range cases {
		if got := in.ToLegResult(); got != want {
			t.Errorf("%s: got %s, want %s", in, got, want)
		}
	}
	if Result("garbage").ToLegResult() != LegUnknown {
		t.Error("unknown result should map to UNKNOWN")
	}
}

func TestDeriveMarketCategory(t *testing.T) {
	if got := DeriveMarketCategory(BetTypeSGP, "", "", true); got != CategorySGP {
		t.Errorf("sgp: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeSGPPlus, "", "", true); got != CategorySGP {
		t.Errorf("sgp_plus: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeParlay, "", "", true); got != CategoryParlays {
		t.Errorf("parlay: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeSingle, "Ast", "", false); got != CategoryProps {
		t.Errorf("assists prop: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeSingle, "Spread", "", false); got != CategoryMainMarkets {
		t.Errorf("spread: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeSingle, "", "Celtics To Win The Championship", false); got != CategoryFutures {
		t.Errorf("futures: got %s", got)
	}
	// Leg content present but no stat code: most specific inferable bucket.
	if got := DeriveMarketCategory(BetTypeSingle, "", "", true); got != CategoryProps {
		t.Errorf("leg content fallback: got %s", got)
	}
	if got := DeriveMarketCategory(BetTypeSingle, "", "", false); got != CategoryMainMarkets {
		t.Errorf("no signal fallback: got %s", got)
	}
}

func TestSelectionEntity(t *testing.T) {
	s := Selection{}
	if s.Entity() != "" {
		t.Error("empty entities should yield empty entity")
	}
	s.Entities = []string{"LeBron James", "Lakers"}
	if s.Entity() != "LeBron James" {
		t.Errorf("got %s", s.Entity())
	}
}
