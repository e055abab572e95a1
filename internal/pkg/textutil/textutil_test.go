package textutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalizeSpaces(t *testing.T) {
	in := "  $4.60  WON \t ON\n FANDUEL  "
	if got := NormalizeSpaces(in); got != "$4.60 WON ON FANDUEL" {
		t.Errorf("got %q", got)
	}
	if got := NormalizeSpaces(""); got != "" {
		t.Errorf("empty: got %q", got)
	}
}

func TestParseMoney(t *testing.T) {
	d, ok := ParseMoney("$1,234.56")
	if !ok || !d.Equal(decimal.RequireFromString("1234.56")) {
		t.Errorf("got %s ok=%v", d, ok)
	}
	d, ok = ParseMoney("$0.00")
	if !ok || !d.IsZero() {
		t.Errorf("zero amount: got %s ok=%v", d, ok)
	}
	if _, ok = ParseMoney("no digits here"); ok {
		t.Error("expected no match for digit-free text")
	}
}

func TestParseAmericanOdds(t *testing.T) {
	cases := map[string]int{
		"+360":    360,
		"-110":    -110,
		" +1200 ": 1200,
		"110":     110,
		"":        0,
		"N/A":     0,
	}
	for in, want := range cases {
		if got := ParseAmericanOdds(in); got != want {
			t.Errorf("%q: got %d, want %d", in, got, want)
		}
	}
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestParsePlacedAt(t *testing.T) {
	def := OffsetLocation("-05:00")

	got := ParsePlacedAt("1/12/2025 7:30PM ET", def, fixedNow)
	if got.Format(time.RFC3339) != "2025-01-12T19:30:00-05:00" {
		t.Errorf("ET falls back to default offset: got %s", got.Format(time.RFC3339))
	}

	got = ParsePlacedAt("1/12/2025 7:30PM EDT", def, fixedNow)
	if got.Format(time.RFC3339) != "2025-01-12T19:30:00-04:00" {
		t.Errorf("EDT maps precisely: got %s", got.Format(time.RFC3339))
	}

	// AM/PM boundary rules.
	got = ParsePlacedAt("3/5/2025 12:15AM", def, fixedNow)
	if got.Hour() != 0 {
		t.Errorf("12AM should be hour 0, got %d", got.Hour())
	}
	got = ParsePlacedAt("3/5/2025 12:15PM", def, fixedNow)
	if got.Hour() != 12 {
		t.Errorf("12PM should stay 12, got %d", got.Hour())
	}

	// Unparsable input degrades to now().
	got = ParsePlacedAt("yesterday-ish", def, fixedNow)
	if !got.Equal(fixedNow()) {
		t.Errorf("fallback should be the fixed clock, got %s", got)
	}
}

func TestOffsetLocation(t *testing.T) {
	loc := OffsetLocation("-05:00")
	_, off := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	if off != -5*3600 {
		t.Errorf("offset: got %d", off)
	}
	loc = OffsetLocation("garbage")
	_, off = time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	if off != -5*3600 {
		t.Errorf("malformed offset should default to -05:00, got %d", off)
	}
}
