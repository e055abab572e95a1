package fanduel

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/pkg/models"
	"github.com/bkozlov/betsheet/internal/pkg/textutil"
)

// headerInfo holds the single logical header of a bet card.
type headerInfo struct {
	description string
	statType    string
	line        string
	ou          string
	sport       string
	odds        int
	isLive      bool
	name        string
}

var liveRe = regexp.MustCompile(`(?i)\bLIVE\b`)

// headerText returns the card text with the footer region cut off: everything
// from the first settlement marker onwards is metadata, not selection
// content.
func headerText(card *html.Node) string {
	text := nodeText(card)
	upper := strings.ToUpper(text)
	cut := len(text)
	for _, marker := range []string{betIDMarker, placedMarker, "TOTAL WAGER", "WAGER", "STAKE"} {
		if idx := strings.Index(upper, marker); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return strings.TrimSpace(text[:cut])
}

// ariaLabel returns the first non-empty aria-label attribute under the card.
func ariaLabel(card *html.Node) string {
	label := ""
	walkNodes(card, func(n *html.Node) {
		if label != "" || n.Type != html.ElementNode {
			return
		}
		for _, a := range n.Attr {
			if a.Key == "aria-label" && strings.TrimSpace(a.Val) != "" {
				label = textutil.NormalizeSpaces(a.Val)
				return
			}
		}
	})
	return label
}

// extractHeaderInfo builds the header fields for one card. For single bets
// with exactly one structured leg row, empty header fields are backfilled
// from that leg: some renderings put boilerplate in the header ("Spread
// Betting") and the real content only in the row.
func (p *Parser) extractHeaderInfo(card *html.Node, betType models.BetType, rows []*html.Node) headerInfo {
	var h headerInfo

	hdr := headerText(card)
	h.description = p.headerDescription(card, hdr)
	h.odds = firstOdds(card)
	h.isLive = liveRe.MatchString(hdr)
	h.sport = inferSport(nodeText(card))

	info := parseMarketText(h.description)
	h.statType = info.Type
	h.line = info.Line
	h.ou = info.OU
	h.name = p.extractEntity(h.description)

	if betType == models.BetTypeSingle && len(rows) == 1 {
		if leg, ok := p.buildRowLeg(rows[0], card); ok {
			if h.name == "" {
				h.name = leg.Entity()
			}
			if h.statType == "" {
				h.statType = leg.Market
			}
			if h.line == "" {
				h.line = leg.Target
			}
			if h.ou == "" {
				h.ou = leg.OU
			}
			if h.odds == 0 && leg.Odds != nil {
				h.odds = *leg.Odds
			}
		}
	}

	return h
}

// headerDescription picks the first content-bearing element text in the
// card: not an odds span, not a LIVE badge, not settlement metadata.
func (p *Parser) headerDescription(card *html.Node, hdr string) string {
	desc := ""
	walkNodes(card, func(n *html.Node) {
		if desc != "" || n.Type != html.ElementNode {
			return
		}
		own := ownText(n)
		if len(own) < 6 || isOddsText(own) {
			return
		}
		upper := strings.ToUpper(own)
		if isFooterLike(upper) || upper == "LIVE" {
			return
		}
		desc = own
	})
	if desc == "" {
		desc = hdr
	}
	return desc
}

// Sport inference from market vocabulary; empty when no vocabulary matches.
func inferSport(text string) string {
	upper := strings.ToUpper(text)
	switch {
	case strings.Contains(upper, "YARDS") || strings.Contains(upper, "RECEPTIONS") ||
		strings.Contains(upper, "TOUCHDOWN") || strings.Contains(upper, "RUSHING") ||
		strings.Contains(upper, "PASSING"):
		return "football"
	case strings.Contains(upper, "REBOUNDS") || strings.Contains(upper, "ASSISTS") ||
		strings.Contains(upper, "THREES") || strings.Contains(upper, "POINTS"):
		return "basketball"
	case strings.Contains(upper, "STRIKEOUTS") || strings.Contains(upper, "HOME RUN") ||
		strings.Contains(upper, "RUNS"):
		return "baseball"
	case strings.Contains(upper, "SAVES") || strings.Contains(upper, "GOALS"):
		return "hockey"
	default:
		return ""
	}
}
