package fanduel

import (
	"regexp"
	"strings"
)

// marketInfo is the parsed form of one market phrase.
type marketInfo struct {
	Type string
	Line string
	OU   string
}

var (
	toRecordRe  = regexp.MustCompile(`(?i)^to record\s+`)
	milestoneRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\+`)
	numberRe    = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)
	overRe      = regexp.MustCompile(`(?i)\bover\b`)
	underRe     = regexp.MustCompile(`(?i)\bunder\b`)
)

type statPattern struct {
	re   *regexp.Regexp
	code string
}

// Combined-stat phrases MUST be matched before single stats: checking
// "Points" before "Points Rebounds Assists" would misclassify a PRA bet as a
// plain Pts bet.
var combinedStats = []statPattern{
	{regexp.MustCompile(`(?i)\bpoints?[\s,+&]+rebounds?[\s,+&]*(?:and\s+)?assists?\b|\bpra\b`), "PRA"},
	{regexp.MustCompile(`(?i)\bpoints?[\s,+&]+(?:and\s+)?rebounds?\b`), "PR"},
	{regexp.MustCompile(`(?i)\brebounds?[\s,+&]+(?:and\s+)?assists?\b`), "RA"},
	{regexp.MustCompile(`(?i)\bpoints?[\s,+&]+(?:and\s+)?assists?\b`), "PA"},
	{regexp.MustCompile(`(?i)\bsteals?[\s,+&]+(?:and\s+)?blocks?\b|\bstocks\b`), "Stocks"},
}

var singleStats = []statPattern{
	{regexp.MustCompile(`(?i)\bpoints?\b|\bpts\b`), "Pts"},
	{regexp.MustCompile(`(?i)\brebounds?\b|\breb\b`), "Reb"},
	{regexp.MustCompile(`(?i)\bassists?\b|\bast\b`), "Ast"},
	{regexp.MustCompile(`(?i)\bsteals?\b`), "Stl"},
	{regexp.MustCompile(`(?i)\bblocks?\b`), "Blk"},
	{regexp.MustCompile(`(?i)\bturnovers?\b`), "TO"},
	{regexp.MustCompile(`(?i)\bmade\s+threes\b|\bthrees\b|\b3[\s-]?pointers?\b|\b3pt\b|\bthree\s+pointers?\b`), "3pt"},
}

// Non-numeric props checked after the stat tables, then the main markets.
var specialStats = []statPattern{
	{regexp.MustCompile(`(?i)\bfirst\s+(?:field\s+goal|basket)\b`), "FB"},
	{regexp.MustCompile(`(?i)\btop\s+(?:point\s+)?scorer\b`), "Top Pts"},
	{regexp.MustCompile(`(?i)\bdouble[\s-]double\b`), "DD"},
	{regexp.MustCompile(`(?i)\btriple[\s-]double\b`), "TD"},
	{regexp.MustCompile(`(?i)\bspread\b|\balternate\s+spread\b`), "Spread"},
	{regexp.MustCompile(`(?i)\bmoneyline\b|\bmoney\s+line\b`), "Moneyline"},
	{regexp.MustCompile(`(?i)\btotal\b`), "Total"},
}

// parseMarketText turns a raw market phrase ("To Record 6+ Assists",
// "Over 24.5 Points", "3+ Made Threes") into {type, line, ou}. A "{number}+"
// milestone keeps its trailing "+" in the line.
func parseMarketText(raw string) marketInfo {
	var info marketInfo

	s := strings.TrimSpace(raw)
	s = toRecordRe.ReplaceAllString(s, "")

	if m := milestoneRe.FindStringSubmatch(s); m != nil {
		info.Line = m[1] + "+"
	} else if m := numberRe.FindString(s); m != "" && !isOddsText(m) {
		// A signed three-digit number is an odds span that leaked into the
		// phrase, not a threshold.
		info.Line = m
	}

	if overRe.MatchString(s) {
		info.OU = "Over"
	} else if underRe.MatchString(s) {
		info.OU = "Under"
	}

	// Classify what remains after removing numeric and over/under tokens.
	rest := milestoneRe.ReplaceAllString(s, "")
	rest = numberRe.ReplaceAllString(rest, "")
	rest = overRe.ReplaceAllString(rest, "")
	rest = underRe.ReplaceAllString(rest, "")

	for _, tables := range [][]statPattern{combinedStats, singleStats, specialStats} {
		for _, sp := range tables {
			if sp.re.MatchString(rest) {
				info.Type = sp.code
				return info
			}
		}
	}
	return info
}
