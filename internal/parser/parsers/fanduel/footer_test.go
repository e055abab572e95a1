package fanduel

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parseFixture(t *testing.T, raw string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return node
}

// Label and amount as adjacent siblings, and amount preceding its label.
func TestExtractFooterMetaSiblingShapes(t *testing.T) {
	p := newTestParser()
	card := parseFixture(t, `<div>
<div><span>TOTAL WAGER</span><span>$5.00</span></div>
<div><span>$7.50</span><span>WON</span></div>
<div>BET ID: O/1/2</div>
<div>PLACED: 12/31/2024 11:59 PM EST</div>
</div>`)

	meta := p.extractFooterMeta(card)
	if meta.betID != "O/1/2" {
		t.Errorf("betID = %q, want O/1/2", meta.betID)
	}
	if !meta.stakeFound || !meta.stake.Equal(dec("5.00")) {
		t.Errorf("stake = %v found=%v, want 5.00", meta.stake, meta.stakeFound)
	}
	if !meta.hasWon || !meta.payout.Equal(dec("7.50")) {
		t.Errorf("payout = %v hasWon=%v, want 7.50 with won flag", meta.payout, meta.hasWon)
	}
	if meta.placedRaw == "" {
		t.Error("placedRaw not extracted")
	}
}

// Amount and label flattened into one text node: the regex fallback over the
// card text must still find it.
func TestExtractFooterMetaFlatText(t *testing.T) {
	p := newTestParser()
	card := parseFixture(t,
		`<div><span>$1.00 TOTAL WAGER</span><span>$4.60 WON ON FANDUEL</span><span>BET ID: X1</span></div>`)

	meta := p.extractFooterMeta(card)
	if !meta.stakeFound || !meta.stake.Equal(dec("1.00")) {
		t.Errorf("stake = %v, want 1.00", meta.stake)
	}
	if !meta.hasWon || !meta.payout.Equal(dec("4.60")) {
		t.Errorf("payout = %v hasWon=%v, want 4.60 won", meta.payout, meta.hasWon)
	}
}

// Bet-ID formats vary by book; mixed and lower case must survive intact.
func TestExtractFooterMetaMixedCaseBetID(t *testing.T) {
	p := newTestParser()
	card := parseFixture(t,
		`<div><span>Bet ID: o/12ab.x-3</span><span>$1.00 TOTAL WAGER</span></div>`)

	if meta := p.extractFooterMeta(card); meta.betID != "o/12ab.x-3" {
		t.Errorf("betID = %q, want o/12ab.x-3", meta.betID)
	}
}

func TestExtractFooterMetaReturned(t *testing.T) {
	p := newTestParser()
	card := parseFixture(t,
		`<div><span>$10.00 TOTAL WAGER</span><span>$10.00 RETURNED</span><span>BET ID: X2</span></div>`)

	meta := p.extractFooterMeta(card)
	if !meta.returnedFound || !meta.returned.Equal(dec("10.00")) {
		t.Errorf("returned = %v found=%v, want 10.00", meta.returned, meta.returnedFound)
	}
	if meta.hasWon {
		t.Error("returned card must not set the won flag")
	}
}
