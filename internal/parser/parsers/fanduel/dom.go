package fanduel

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/pkg/models"
	"github.com/bkozlov/betsheet/internal/pkg/textutil"
)

// Marker strings used for bet-card discovery. The markup is visually
// structural with no stable class names, so cards are located by the text
// they must contain.
const (
	betIDMarker  = "BET ID"
	placedMarker = "PLACED"
	sgpMarker    = "SAME GAME PARLAY"
)

var wagerMarkers = []string{"TOTAL WAGER", "WAGER", "STAKE"}
var paidMarkers = []string{"WON", "PAID", "RETURNED", "REFUNDED"}

// Leg-row candidates longer than this are container elements, not rows.
const maxLegRowTextLen = 180

// walkNodes visits every node under root in document order.
func walkNodes(root *html.Node, fn func(*html.Node)) {
	for n := root; n != nil; {
		fn(n)
		if n.FirstChild != nil {
			n = n.FirstChild
			continue
		}
		for n != nil && n != root && n.NextSibling == nil {
			n = n.Parent
		}
		if n == nil || n == root {
			return
		}
		n = n.NextSibling
	}
}

// nodeText returns the concatenated text content of a node subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walkNodes(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteByte(' ')
		}
	})
	return textutil.NormalizeSpaces(sb.String())
}

// nodeContains reports whether anc is an ancestor of (or the same node as) n.
func nodeContains(anc, n *html.Node) bool {
	for c := n; c != nil; c = c.Parent {
		if c == anc {
			return true
		}
	}
	return false
}

func containsAny(upper string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// isOddsText reports whether a text span reads as standalone American odds.
func isOddsText(s string) bool {
	s = textutil.NormalizeSpaces(s)
	if len(s) < 3 || len(s) > 6 {
		return false
	}
	if s[0] != '+' && s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	// American odds never have fewer than two digits in practice.
	return len(s) >= 4 || s[1] != '0'
}

// hasOddsDescendant reports whether any element under n renders as a bare
// odds value.
func hasOddsDescendant(n *html.Node) bool {
	found := false
	walkNodes(n, func(c *html.Node) {
		if found || c.Type != html.ElementNode {
			return
		}
		if isOddsText(ownText(c)) {
			found = true
		}
	})
	return found
}

// ownText returns the text of a node's direct text children only.
func ownText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return textutil.NormalizeSpaces(sb.String())
}

// firstOdds returns the first odds-bearing span under n, or 0 when none.
func firstOdds(n *html.Node) int {
	odds := 0
	walkNodes(n, func(c *html.Node) {
		if odds != 0 || c.Type != html.ElementNode {
			return
		}
		if t := ownText(c); isOddsText(t) {
			odds = textutil.ParseAmericanOdds(t)
		}
	})
	return odds
}

// findBetIDNodes returns every text node containing the bet-ID marker, in
// document order.
func findBetIDNodes(doc *goquery.Document) []*html.Node {
	var out []*html.Node
	if len(doc.Nodes) == 0 {
		return out
	}
	walkNodes(doc.Nodes[0], func(n *html.Node) {
		if n.Type == html.TextNode &&
			strings.Contains(strings.ToUpper(n.Data), betIDMarker) {
			out = append(out, n)
		}
	})
	return out
}

// findCardRoot walks upward from a bet-ID text node until an ancestor's full
// text satisfies the marker quorum: at least two of {wager marker,
// returned/paid marker, placed marker, an odds-bearing element, an SGP
// marker}. No single stable class identifies a card, so two independent
// signals are required before an ancestor is accepted as the card boundary.
func findCardRoot(textNode *html.Node) *html.Node {
	for anc := textNode.Parent; anc != nil; anc = anc.Parent {
		if anc.Type != html.ElementNode {
			continue
		}
		upper := strings.ToUpper(nodeText(anc))
		quorum := 0
		if containsAny(upper, wagerMarkers) {
			quorum++
		}
		if containsAny(upper, paidMarkers) {
			quorum++
		}
		if strings.Contains(upper, placedMarker) {
			quorum++
		}
		if hasOddsDescendant(anc) {
			quorum++
		}
		if strings.Contains(upper, sgpMarker) {
			quorum++
		}
		if quorum >= 2 {
			return anc
		}
	}
	return nil
}

// isFooterLike reports whether an element carries settlement metadata rather
// than selection content.
func isFooterLike(upper string) bool {
	return strings.Contains(upper, betIDMarker) ||
		strings.Contains(upper, placedMarker) ||
		containsAny(upper, wagerMarkers)
}

// findLegRows walks all descendants of a card root and scores each as a
// leg-row candidate. A candidate contains an odds-bearing child, matches the
// stat-market keyword list, or shows a "player name followed by market
// keyword" pattern. Footer-like elements are excluded, and when a candidate
// contains another candidate only the innermost survives.
func (p *Parser) findLegRows(card *html.Node) []*html.Node {
	var candidates []*html.Node
	walkNodes(card, func(n *html.Node) {
		if n.Type != html.ElementNode || n == card {
			return
		}
		txt := nodeText(n)
		if txt == "" || len(txt) > maxLegRowTextLen {
			return
		}
		upper := strings.ToUpper(txt)
		if isFooterLike(upper) {
			return
		}
		if !hasOddsDescendant(n) &&
			!p.statKeywordRe.MatchString(txt) &&
			!p.nameMarketRe.MatchString(txt) {
			return
		}
		candidates = append(candidates, n)
	})

	var rows []*html.Node
	for _, c := range candidates {
		inner := false
		for _, other := range candidates {
			if other != c && nodeContains(c, other) {
				inner = true
				break
			}
		}
		if !inner {
			rows = append(rows, c)
		}
	}
	return rows
}

// legResultIcon inspects an element subtree for a win/loss icon: a tick or
// cross token in an identifying attribute, or a fill color from the known
// win/loss palettes. Absence of both signals yields UNKNOWN, never a guess.
func (p *Parser) legResultIcon(n *html.Node) models.LegResult {
	res := models.LegUnknown
	walkNodes(n, func(c *html.Node) {
		if res != models.LegUnknown || c.Type != html.ElementNode {
			return
		}
		for _, a := range c.Attr {
			switch a.Key {
			case "class", "data-testid", "id", "aria-label", "src", "fill", "color":
			default:
				continue
			}
			v := strings.ToLower(a.Val)
			if strings.Contains(v, "check") || strings.Contains(v, "tick") ||
				strings.Contains(v, "success") || p.isWinColor(v) {
				res = models.LegWin
				return
			}
			if strings.Contains(v, "cross") || strings.Contains(v, "close") ||
				strings.Contains(v, "miss") || strings.Contains(v, "fail") ||
				p.isLossColor(v) {
				res = models.LegLoss
				return
			}
		}
	})
	return res
}

// rowResult resolves a leg row's result from its own icons, then from the
// nearest result-bearing ancestor below the card root.
func (p *Parser) rowResult(row, card *html.Node) models.LegResult {
	if r := p.legResultIcon(row); r != models.LegUnknown {
		return r
	}
	for anc := row.Parent; anc != nil && anc != card; anc = anc.Parent {
		if r := p.legResultIcon(anc); r != models.LegUnknown {
			return r
		}
	}
	return models.LegUnknown
}

func (p *Parser) isWinColor(v string) bool {
	for _, c := range p.cfg.WinColors {
		if strings.Contains(v, strings.ToLower(c)) {
			return true
		}
	}
	return false
}

func (p *Parser) isLossColor(v string) bool {
	for _, c := range p.cfg.LossColors {
		if strings.Contains(v, strings.ToLower(c)) {
			return true
		}
	}
	return false
}
