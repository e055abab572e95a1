package fanduel

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/pkg/textutil"
)

// footerMeta holds the settlement metadata extracted from a bet card.
type footerMeta struct {
	betID     string
	placedRaw string

	stake      decimal.Decimal
	stakeFound bool

	payout      decimal.Decimal
	payoutFound bool

	returned      decimal.Decimal
	returnedFound bool

	// hasWon is true iff an explicitly labeled WON amount was found. It takes
	// precedence over amount comparison: a $0.00 win is still a win when the
	// sportsbook labels it as one.
	hasWon bool
}

// Bet-ID label variants, ordered strictest first, tolerating missing or
// extra whitespace after the colon.
var betIDRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)BET ID:\s*([A-Za-z0-9/#.-]+)`),
	regexp.MustCompile(`(?i)BET ID\s*:\s*([A-Za-z0-9/#.-]+)`),
	regexp.MustCompile(`(?i)BET ID\s+([A-Za-z0-9/#.-]+)`),
}

var (
	placedLabeledRe = regexp.MustCompile(`(?i)PLACED:\s*(\d{1,2}/\d{1,2}/\d{4}[\s,]+\d{1,2}:\d{2}\s*[AP]M(?:\s+[A-Z]{2,4})?)`)
	placedLooseRe   = regexp.MustCompile(`(?i)PLACED\s*:?\s*([\d/]+[\s,]+[\d:]+\s*[AP]M(?:\s+[A-Z]{2,4})?)`)

	moneyTokenRe = regexp.MustCompile(`\$\s*[\d,]+(?:\.\d+)?`)
)

var wonLabels = []string{"WON ON", "WON"}
var paidLabels = []string{"PAID"}
var returnedLabels = []string{"RETURNED", "REFUNDED"}

// extractFooterMeta pulls bet ID, placed-at text, stake, payout and the won
// flag out of a card. The card's full text is the last-resort search space;
// label-anchored DOM association is tried first because the same label/amount
// pair is laid out in at least three different DOM shapes across pages.
func (p *Parser) extractFooterMeta(card *html.Node) footerMeta {
	var meta footerMeta
	text := nodeText(card)
	upper := strings.ToUpper(text)

	for _, re := range betIDRes {
		if m := re.FindStringSubmatch(text); m != nil {
			meta.betID = m[1]
			break
		}
	}

	if m := placedLabeledRe.FindStringSubmatch(text); m != nil {
		meta.placedRaw = m[1]
	} else if m := placedLooseRe.FindStringSubmatch(text); m != nil {
		meta.placedRaw = m[1]
	}

	if amt, ok := p.labeledAmount(card, upper, "TOTAL WAGER", "WAGER", "STAKE"); ok {
		meta.stake = amt
		meta.stakeFound = true
	}

	if amt, ok := p.labeledAmount(card, upper, wonLabels...); ok {
		meta.payout = amt
		meta.payoutFound = true
		meta.hasWon = true
	} else if amt, ok := p.labeledAmount(card, upper, paidLabels...); ok {
		meta.payout = amt
		meta.payoutFound = true
	}

	if amt, ok := p.labeledAmount(card, upper, returnedLabels...); ok {
		meta.returned = amt
		meta.returnedFound = true
	}

	return meta
}

// labeledAmount finds the dollar amount associated with the first label that
// yields one. For each label the ordered fallback chain is: the label
// element's own text, sibling nodes after it, siblings before it, nested
// descendants of the label's parent, then a regex over the full card text
// anchored on the label from either side.
func (p *Parser) labeledAmount(card *html.Node, upperText string, labels ...string) (decimal.Decimal, bool) {
	for _, label := range labels {
		if !strings.Contains(upperText, label) {
			continue
		}
		if el := findLabelElement(card, label); el != nil {
			if amt, ok := amountNearLabel(el); ok {
				return amt, ok
			}
		}
		if amt, ok := amountFromText(upperText, label); ok {
			return amt, ok
		}
	}
	return decimal.Zero, false
}

// findLabelElement locates the tightest element whose own text carries the
// label.
func findLabelElement(card *html.Node, label string) *html.Node {
	var found *html.Node
	walkNodes(card, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		own := strings.ToUpper(ownText(n))
		if strings.Contains(own, label) {
			// Deeper matches overwrite shallower ones.
			found = n
		}
	})
	return found
}

// amountNearLabel applies the DOM-shape fallback chain around one label
// element.
func amountNearLabel(label *html.Node) (decimal.Decimal, bool) {
	// The label's own text ("$1.00 TOTAL WAGER" in one span).
	if amt, ok := nodeAmount(label); ok {
		return amt, ok
	}
	// Siblings after the label.
	for s := label.NextSibling; s != nil; s = s.NextSibling {
		if amt, ok := nodeAmount(s); ok {
			return amt, ok
		}
	}
	// Siblings before it.
	for s := label.PrevSibling; s != nil; s = s.PrevSibling {
		if amt, ok := nodeAmount(s); ok {
			return amt, ok
		}
	}
	// Nested descendants of the parent (amount wrapped a level deeper).
	if label.Parent != nil {
		var amt decimal.Decimal
		found := false
		walkNodes(label.Parent, func(n *html.Node) {
			if found || n == label || nodeContains(label, n) {
				return
			}
			if a, ok := nodeAmount(n); ok {
				amt, found = a, true
			}
		})
		if found {
			return amt, true
		}
	}
	return decimal.Zero, false
}

func nodeAmount(n *html.Node) (decimal.Decimal, bool) {
	var txt string
	switch n.Type {
	case html.TextNode:
		txt = n.Data
	case html.ElementNode:
		txt = nodeText(n)
	default:
		return decimal.Zero, false
	}
	m := moneyTokenRe.FindString(txt)
	if m == "" {
		return decimal.Zero, false
	}
	return textutil.ParseMoney(m)
}

// amountFromText anchors on the label inside the flattened card text,
// looking right of the label first, then left ("$1.00 TOTAL WAGER" places
// the amount before its label).
func amountFromText(upperText, label string) (decimal.Decimal, bool) {
	idx := strings.Index(upperText, label)
	if idx < 0 {
		return decimal.Zero, false
	}
	right := upperText[idx+len(label):]
	if m := moneyTokenRe.FindString(firstN(right, 40)); m != "" {
		return textutil.ParseMoney(m)
	}
	left := upperText[:idx]
	if ms := moneyTokenRe.FindAllString(lastN(left, 40), -1); len(ms) > 0 {
		return textutil.ParseMoney(ms[len(ms)-1])
	}
	return decimal.Zero, false
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func lastN(s string, n int) string {
	if len(s) > n {
		return s[len(s)-n:]
	}
	return s
}
