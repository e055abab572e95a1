package fanduel

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// Markers that identify an SGP+ wrapper rather than the nested SGP block
// itself.
var sgpPlusParentMarkers = []string{"PARLAY+", "PARLAY PLUS", "INCLUDES:"}

// findSGPContainers locates the nested same-game-parlay sub-containers of a
// card. A candidate's text contains the SGP marker, is not an SGP+ parent
// wrapper, and shows at least one structural leg signal. When candidates
// nest, only the innermost container per distinct odds value is kept: outer
// elements are SGP+ wrappers, not the SGP block.
func (p *Parser) findSGPContainers(card *html.Node, rows []*html.Node) []*html.Node {
	var candidates []*html.Node
	walkNodes(card, func(n *html.Node) {
		if n.Type != html.ElementNode || n == card {
			return
		}
		upper := strings.ToUpper(nodeText(n))
		if !strings.Contains(upper, sgpMarker) {
			return
		}
		if containsAny(upper, sgpPlusParentMarkers) {
			return
		}
		if !hasOddsDescendant(n) && !hasLegClassCluster(n) && !hasButtonWithRows(n, rows) {
			return
		}
		candidates = append(candidates, n)
	})

	var out []*html.Node
	for _, c := range candidates {
		odds := firstOdds(c)
		innermost := true
		for _, other := range candidates {
			if other != c && nodeContains(c, other) && firstOdds(other) == odds {
				innermost = false
				break
			}
		}
		if innermost {
			out = append(out, c)
		}
	}
	return out
}

// hasLegClassCluster looks for class names marking leg cards inside a
// container.
func hasLegClassCluster(n *html.Node) bool {
	found := false
	walkNodes(n, func(c *html.Node) {
		if found || c.Type != html.ElementNode {
			return
		}
		for _, a := range c.Attr {
			if a.Key != "class" {
				continue
			}
			v := strings.ToLower(a.Val)
			if strings.Contains(v, "leg") || strings.Contains(v, "card") {
				found = true
			}
		}
	})
	return found
}

func hasButtonWithRows(n *html.Node, rows []*html.Node) bool {
	hasButton := false
	walkNodes(n, func(c *html.Node) {
		if hasButton || c.Type != html.ElementNode {
			return
		}
		for _, a := range c.Attr {
			if a.Key == "role" && a.Val == "button" {
				hasButton = true
			}
		}
	})
	if !hasButton {
		return false
	}
	for _, row := range rows {
		if nodeContains(n, row) {
			return true
		}
	}
	return false
}

// rowBelongsTo checks that a leg row inside a container is not actually part
// of a different, more specific sibling SGP container: walking upward from
// the row, any intermediate ancestor that independently qualifies as an
// odds-bearing SGP container claims the row for itself. This prevents
// leg-bleed between adjacent same-game-parlay blocks in an SGP+ ticket.
func rowBelongsTo(container, row *html.Node, containers []*html.Node) bool {
	if !nodeContains(container, row) {
		return false
	}
	for anc := row.Parent; anc != nil && anc != container; anc = anc.Parent {
		for _, other := range containers {
			if other == anc && other != container {
				return false
			}
		}
	}
	return true
}

// buildGroupLegs assembles one group leg per retained SGP container and
// reports which leg rows were consumed. Child legs always have odds
// suppressed: the sportsbook hides inner-leg odds inside an SGP block.
func (p *Parser) buildGroupLegs(card *html.Node, rows []*html.Node, hdr headerInfo,
	footerRes models.Result, rawText, betID string) ([]models.BetLeg, map[*html.Node]bool) {

	containers := p.findSGPContainers(card, rows)
	consumed := make(map[*html.Node]bool)
	var groups []models.BetLeg

	for _, container := range containers {
		var children []models.Selection
		for _, row := range rows {
			if consumed[row] || !rowBelongsTo(container, row, containers) {
				continue
			}
			leg, ok := p.buildRowLeg(row, card)
			if !ok {
				continue
			}
			leg.Odds = nil
			if leg.Result == models.LegUnknown {
				leg.Result = footerRes.ToLegResult()
			}
			children = append(children, leg.Selection)
			consumed[row] = true
		}
		if len(children) == 0 {
			continue
		}

		odds := firstOdds(container)
		if odds == 0 {
			odds = hdr.odds
		}

		matchup := p.groupMatchup(container, odds, rawText)
		group := models.BetLeg{
			Selection: models.Selection{
				Entities: nil,
				Market:   "Same Game Parlay",
				Target:   matchup,
				Result:   p.aggregateGroupResult(children, footerRes, betID),
				Matchup:  matchup,
			},
			IsGroup:  true,
			Children: children,
		}
		if odds != 0 {
			group.Odds = &odds
		}
		groups = append(groups, group)
	}

	return groups, consumed
}

// groupMatchup infers the matchup string for a group leg: text inside the
// container first, then the odds-to-matchup association in the raw header
// text, then a broad search across the whole card text.
func (p *Parser) groupMatchup(container *html.Node, odds int, rawText string) string {
	if m := p.findMatchup(nodeText(container)); m != "" {
		return m
	}
	if odds != 0 {
		if m := p.matchupNearOdds(rawText, odds); m != "" {
			return m
		}
	}
	return p.findMatchup(rawText)
}

// matchupNearOdds scans the raw text for "{odds} {Team A} @ {Team B}".
func (p *Parser) matchupNearOdds(raw string, odds int) string {
	token := fmt.Sprintf("%+d", odds)
	idx := strings.Index(raw, token)
	if idx < 0 {
		return ""
	}
	window := raw[idx+len(token):]
	if len(window) > 120 {
		window = window[:120]
	}
	return p.findMatchup(window)
}

// aggregateGroupResult derives a group leg's result from its children: LOSS
// if any child lost, PUSH if any pushed without a loss, WIN only when every
// non-pending child won. Anything else falls back to the ticket's footer
// result. A card showing all-children-WIN against a footer LOSS indicates
// missing or unparsed legs; the footer is trusted and the discrepancy is
// logged, never silently corrected.
func (p *Parser) aggregateGroupResult(children []models.Selection, footerRes models.Result, betID string) models.LegResult {
	anyLoss, anyPush := false, false
	wins, decided := 0, 0
	for _, c := range children {
		switch c.Result {
		case models.LegLoss:
			anyLoss = true
			decided++
		case models.LegPush:
			anyPush = true
			decided++
		case models.LegWin:
			wins++
			decided++
		}
	}

	if anyLoss {
		return models.LegLoss
	}
	if anyPush {
		return models.LegPush
	}
	if decided > 0 && wins == decided {
		if footerRes == models.ResultLoss {
			p.log.Warn("all group children report WIN but footer reports loss; trusting footer",
				"betId", betID, "children", len(children))
			return models.LegLoss
		}
		return models.LegWin
	}
	return footerRes.ToLegResult()
}

// groupFromCard wraps a flat leg list into one group leg covering the whole
// ticket. A plain SGP card often renders its marker and leg rows as siblings
// with no shared sub-container; the ticket itself is the group then. Child
// odds are suppressed and undecided children default to the footer result,
// same as for a located container.
func (p *Parser) groupFromCard(legs []models.BetLeg, hdr headerInfo,
	footerRes models.Result, rawText, betID string) models.BetLeg {

	var children []models.Selection
	for _, leg := range legs {
		child := leg.Selection
		child.Odds = nil
		if child.Result == models.LegUnknown {
			child.Result = footerRes.ToLegResult()
		}
		children = append(children, child)
	}

	matchup := ""
	if hdr.odds != 0 {
		matchup = p.matchupNearOdds(rawText, hdr.odds)
	}
	if matchup == "" {
		matchup = p.findMatchup(rawText)
	}

	group := models.BetLeg{
		Selection: models.Selection{
			Market:  "Same Game Parlay",
			Target:  matchup,
			Result:  p.aggregateGroupResult(children, footerRes, betID),
			Matchup: matchup,
		},
		IsGroup:  true,
		Children: children,
	}
	if hdr.odds != 0 {
		odds := hdr.odds
		group.Odds = &odds
	}
	return group
}

// clusterLegsByOdds is the structural-grouping fallback for tickets whose
// DOM collapsed: per-row legs sharing a numeric odds value form a synthetic
// group leg. The shared odds value is located in the raw header text and a
// window around it searched for the group's matchup.
func (p *Parser) clusterLegsByOdds(legs []models.BetLeg, footerRes models.Result,
	rawText, betID string) ([]models.BetLeg, []models.BetLeg) {

	buckets := make(map[int][]int)
	var order []int
	for i, leg := range legs {
		if leg.Odds == nil {
			continue
		}
		if _, seen := buckets[*leg.Odds]; !seen {
			order = append(order, *leg.Odds)
		}
		buckets[*leg.Odds] = append(buckets[*leg.Odds], i)
	}

	grouped := make(map[int]bool)
	var groups []models.BetLeg
	for _, odds := range order {
		idxs := buckets[odds]
		if len(idxs) < 2 {
			continue
		}
		var children []models.Selection
		for _, i := range idxs {
			child := legs[i].Selection
			child.Odds = nil
			if child.Result == models.LegUnknown {
				child.Result = footerRes.ToLegResult()
			}
			children = append(children, child)
			grouped[i] = true
		}

		matchup := p.matchupNearOdds(rawText, odds)
		if matchup == "" {
			matchup = p.findMatchup(rawText)
		}
		oddsVal := odds
		groups = append(groups, models.BetLeg{
			Selection: models.Selection{
				Market:  "Same Game Parlay",
				Target:  matchup,
				Odds:    &oddsVal,
				Result:  p.aggregateGroupResult(children, footerRes, betID),
				Matchup: matchup,
			},
			IsGroup:  true,
			Children: children,
		})
	}

	var extras []models.BetLeg
	for i, leg := range legs {
		if !grouped[i] {
			extras = append(extras, leg)
		}
	}
	return groups, extras
}
