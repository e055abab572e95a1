package fanduel

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// nameRe matches a capitalized multi-word span shaped like a player or team
// name (two or three words).
var nameRe = regexp.MustCompile(`\b([A-Z][a-zA-Z'.-]*(?: [A-Z][a-zA-Z'.-]*){1,2})\b`)

// Phrases that look name-shaped but never are.
var nameDenylist = []string{
	"Box Score", "Same Game", "Game Parlay", "Total Wager", "Bet Id",
	"To Record", "Made Threes", "First Basket", "Top Scorer",
	"Spread Betting", "Money Line", "Won On", "Add To",
}

// Capitalized stat words that disqualify a token from being part of a name.
var statTokens = map[string]bool{
	"Points": true, "Rebounds": true, "Assists": true, "Steals": true,
	"Blocks": true, "Turnovers": true, "Threes": true, "Yards": true,
	"Receptions": true, "Over": true, "Under": true, "Total": true,
	"Moneyline": true, "Spread": true, "Parlay": true, "Live": true,
	"Touchdowns": true, "Touchdown": true, "Rushing": true, "Passing": true,
	"Receiving": true, "Alternate": true, "Record": true, "Made": true,
}

// Capitalized connectives the greedy name regex swallows at either end
// ("LeBron James Over", "Over LeBron James").
var entityStopTokens = map[string]bool{
	"To": true, "Over": true, "Under": true, "And": true, "Vs": true, "Vs.": true,
}

// extractEntity pulls the first acceptable name-shaped span out of a text.
func (p *Parser) extractEntity(text string) string {
	for _, m := range nameRe.FindAllString(text, -1) {
		if name := trimEntityTokens(m); name != "" && p.acceptableName(name) {
			return name
		}
		// The capture may start with a noise token ("Over LeBron James");
		// retry with the leading token dropped.
		if tokens := strings.Fields(m); len(tokens) > 2 {
			tail := trimEntityTokens(strings.Join(tokens[1:], " "))
			if tail != "" && p.acceptableName(tail) {
				return tail
			}
		}
	}
	return ""
}

func trimEntityTokens(candidate string) string {
	tokens := strings.Fields(candidate)
	for len(tokens) > 0 && entityStopTokens[tokens[len(tokens)-1]] {
		tokens = tokens[:len(tokens)-1]
	}
	for len(tokens) > 0 && entityStopTokens[tokens[0]] {
		tokens = tokens[1:]
	}
	if len(tokens) < 2 {
		return ""
	}
	return strings.Join(tokens, " ")
}

func (p *Parser) acceptableName(candidate string) bool {
	for _, deny := range nameDenylist {
		if strings.Contains(candidate, deny) {
			return false
		}
	}
	for _, tok := range strings.Fields(candidate) {
		if statTokens[tok] {
			return false
		}
	}
	return true
}

// buildRowLeg extracts one candidate leg from a structured leg-row element.
func (p *Parser) buildRowLeg(row, card *html.Node) (models.BetLeg, bool) {
	txt := nodeText(row)
	info := parseMarketText(txt)

	leg := models.BetLeg{Selection: models.Selection{
		Market: info.Type,
		Target: info.Line,
		OU:     info.OU,
		Result: p.rowResult(row, card),
	}}
	if entity := p.extractEntity(txt); entity != "" {
		leg.Entities = []string{entity}
	}
	odds := firstOdds(row)
	if odds == 0 {
		// Odds are often a sibling span of the selection text.
		for s := row.NextSibling; s != nil && odds == 0; s = s.NextSibling {
			odds = firstOdds(s)
		}
	}
	if odds != 0 {
		leg.Odds = &odds
	}
	return leg, p.meaningfulLeg(leg)
}

// legsFromDescription runs the market-text parser against the card's
// free-text description, for cards with a textual summary but no structured
// rows.
func (p *Parser) legsFromDescription(desc string) []models.BetLeg {
	if strings.TrimSpace(desc) == "" {
		return nil
	}
	info := parseMarketText(desc)
	leg := models.BetLeg{Selection: models.Selection{
		Market: info.Type,
		Target: info.Line,
		OU:     info.OU,
		Result: models.LegUnknown,
	}}
	if entity := p.extractEntity(desc); entity != "" {
		leg.Entities = []string{entity}
	}
	if !p.meaningfulLeg(leg) {
		return nil
	}
	return []models.BetLeg{leg}
}

// Free-text selection shapes: a last-resort source for cards whose DOM
// yielded no rows but whose rendered text still contains the facts.
var (
	toRecordTextRe = regexp.MustCompile(
		`([A-Z][a-zA-Z'.-]+(?: [A-Z][a-zA-Z'.-]+){0,2})\s+[Tt]o [Rr]ecord\s+(\d+)\+\s+([A-Za-z -]+?)(?:[,.]|$|\s{2})`)
	madeThreesTextRe = regexp.MustCompile(
		`([A-Z][a-zA-Z'.-]+(?: [A-Z][a-zA-Z'.-]+){0,2}),\s*(\d+)\+\s*[Mm]ade [Tt]hrees`)
)

// legsFromStatText is the stat-text builder.
func (p *Parser) legsFromStatText(raw string) []models.BetLeg {
	var legs []models.BetLeg

	for _, m := range toRecordTextRe.FindAllStringSubmatch(raw, -1) {
		if !p.acceptableName(m[1]) {
			continue
		}
		info := parseMarketText(m[3])
		legs = append(legs, models.BetLeg{Selection: models.Selection{
			Entities: []string{m[1]},
			Market:   info.Type,
			Target:   m[2] + "+",
			Result:   models.LegUnknown,
		}})
	}

	for _, m := range madeThreesTextRe.FindAllStringSubmatch(raw, -1) {
		if !p.acceptableName(m[1]) {
			continue
		}
		legs = append(legs, models.BetLeg{Selection: models.Selection{
			Entities: []string{m[1]},
			Market:   "3pt",
			Target:   m[2] + "+",
			Result:   models.LegUnknown,
		}})
	}

	var out []models.BetLeg
	for _, leg := range legs {
		if p.meaningfulLeg(leg) {
			out = append(out, leg)
		}
	}
	return out
}

// legsFromSpans scans span descendants for market keywords and pairs each
// with the nearest preceding name-shaped span.
func (p *Parser) legsFromSpans(card *html.Node) []models.BetLeg {
	var legs []models.BetLeg
	lastName := ""

	walkNodes(card, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "span" {
			return
		}
		own := ownText(n)
		if own == "" || len(own) > 60 {
			return
		}
		if m := nameRe.FindString(own); m == own && p.acceptableName(m) {
			lastName = m
			return
		}
		if !p.statKeywordRe.MatchString(own) {
			return
		}
		info := parseMarketText(own)
		leg := models.BetLeg{Selection: models.Selection{
			Market: info.Type,
			Target: info.Line,
			OU:     info.OU,
			Result: models.LegUnknown,
		}}
		if lastName != "" {
			leg.Entities = []string{lastName}
		}
		if p.meaningfulLeg(leg) {
			legs = append(legs, leg)
		}
	})
	return legs
}

// legFromHeader treats the header itself as a single leg row; engaged only
// when every other builder yields nothing.
func (p *Parser) legFromHeader(h headerInfo) (models.BetLeg, bool) {
	leg := models.BetLeg{Selection: models.Selection{
		Market: h.statType,
		Target: h.line,
		OU:     h.ou,
		Result: models.LegUnknown,
	}}
	if h.name != "" {
		leg.Entities = []string{h.name}
	}
	if h.odds != 0 {
		odds := h.odds
		leg.Odds = &odds
	}
	return leg, p.meaningfulLeg(leg)
}

// meaningfulLeg filters builder noise: a candidate must carry a market
// keyword, an entity, or a numeric target.
func (p *Parser) meaningfulLeg(leg models.BetLeg) bool {
	return leg.Market != "" || leg.Entity() != "" || leg.Target != ""
}
