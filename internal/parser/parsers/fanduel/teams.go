package fanduel

import (
	"regexp"
	"strings"
)

// Matchup text: one to three capitalized words per side, joined by "@" or
// "vs". The pattern over-captures by design and is trimmed afterwards.
var matchupRe = regexp.MustCompile(
	`([A-Z][A-Za-z0-9.'-]*(?: [A-Z][A-Za-z0-9.'-]*){0,2})\s+(?:@|vs\.?|VS\.?)\s+([A-Z][A-Za-z0-9.'-]*(?: [A-Z][A-Za-z0-9.'-]*){0,2})`)

// Stat words inside a matchup capture mean the regex walked into unrelated
// text (e.g. "Rebounds @ ..." from a stacked prop line).
var matchupNoise = []string{
	"Rebounds", "Points", "Assists", "Steals", "Blocks", "Threes",
	"Yards", "Receptions", "Touchdown", "Wager", "Placed", "Parlay",
}

// scoreRe matches scoreboard fragments ("112 - 98") that bleed into matchup
// text on settled cards.
var scoreRe = regexp.MustCompile(`\b\d{1,3}\s*[-–]\s*\d{1,3}\b`)

var trailingNumRe = regexp.MustCompile(`\s+\d+\s*$`)

// findMatchup scans text for a "TeamA @ TeamB" or "TeamA vs TeamB" pattern
// and returns it as "A @ B", or "" when nothing usable matches.
func (p *Parser) findMatchup(text string) string {
	for _, m := range matchupRe.FindAllStringSubmatch(text, -1) {
		home := p.trimTeamSide(m[1])
		away := p.trimTeamSide(m[2])
		if home == "" || away == "" {
			continue
		}
		if sideHasNoise(home) || sideHasNoise(away) {
			continue
		}
		return home + " @ " + away
	}
	return ""
}

func sideHasNoise(side string) bool {
	for _, w := range matchupNoise {
		if strings.Contains(side, w) {
			return true
		}
	}
	return false
}

// trimTeamSide bounds an over-captured team name: when a known nickname
// appears, everything after it is a trailing player name swallowed by the
// regex and gets stripped.
func (p *Parser) trimTeamSide(side string) string {
	side = stripScoreNoise(side)
	tokens := strings.Fields(side)
	for i := range tokens {
		// Two-token nicknames first ("Trail Blazers").
		if i+1 < len(tokens) && p.nicknames[tokens[i]+" "+tokens[i+1]] {
			return strings.Join(tokens[:i+2], " ")
		}
		if p.nicknames[tokens[i]] {
			return strings.Join(tokens[:i+1], " ")
		}
	}
	return strings.Join(tokens, " ")
}

// stripScoreNoise removes scoreboard fragments and trailing bare numbers
// from inferred matchup text.
func stripScoreNoise(s string) string {
	s = scoreRe.ReplaceAllString(s, "")
	s = trailingNumRe.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}
