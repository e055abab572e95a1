// Package textutil holds the text normalization helpers shared by every
// extraction stage: whitespace collapsing, currency and odds parsing, and
// the placed-at timestamp parser.
package textutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// Covers ASCII whitespace plus the non-breaking variants sportsbook
	// markup likes to emit between a label and its amount.
	spaceRe = regexp.MustCompile(`[\s\x{00A0}\x{2007}\x{202F}]+`)

	moneyRe = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)
	oddsRe  = regexp.MustCompile(`[+-]?\d+`)

	// M/D/YYYY h:mmAM/PM with an optional timezone abbreviation.
	placedAtRe = regexp.MustCompile(
		`(\d{1,2})/(\d{1,2})/(\d{4})[\s,]+(\d{1,2}):(\d{2})\s*([AP]M)(?:\s+([A-Z]{2,4}))?`)
)

// NormalizeSpaces collapses runs of whitespace (including non-breaking
// variants) to single spaces and trims. Run it before every regex match so
// patterns stay position-insensitive.
func NormalizeSpaces(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

// ParseMoney strips the currency symbol and thousands separators and returns
// the amount. The second return is false when the text carries no digits.
func ParseMoney(s string) (decimal.Decimal, bool) {
	m := moneyRe.FindString(strings.ReplaceAll(s, "$", ""))
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseAmericanOdds strips a leading "+" and whitespace and returns the odds
// as a signed integer. Unparsable input yields 0, which callers must treat as
// "not found": zero is never a legitimate American odds value.
func ParseAmericanOdds(s string) int {
	m := oddsRe.FindString(NormalizeSpaces(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimPrefix(m, "+"))
	if err != nil {
		return 0
	}
	return n
}

// Timezone abbreviations that map to a precise fixed offset. Anything else
// (including bare "ET"/"CT", which are ambiguous between standard and
// daylight time) falls back to the caller-supplied default location.
var tzOffsets = map[string]int{
	"EST": -5 * 3600,
	"EDT": -4 * 3600,
	"CST": -6 * 3600,
	"CDT": -5 * 3600,
	"MST": -7 * 3600,
	"MDT": -6 * 3600,
	"PST": -8 * 3600,
	"PDT": -7 * 3600,
}

// ParsePlacedAt parses a localized "M/D/YYYY h:mmAM/PM TZ" string. When the
// timezone abbreviation cannot be mapped precisely the default location is
// used. Unparsable input degrades to now() so that one bad date never aborts
// a whole page parse.
func ParsePlacedAt(raw string, def *time.Location, now func() time.Time) time.Time {
	m := placedAtRe.FindStringSubmatch(NormalizeSpaces(raw))
	if m == nil {
		return now()
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	min, _ := strconv.Atoi(m[5])

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 12 {
		return now()
	}

	// 12AM is midnight, 12PM stays noon.
	if m[6] == "PM" && hour != 12 {
		hour += 12
	} else if m[6] == "AM" && hour == 12 {
		hour = 0
	}

	loc := def
	if off, ok := tzOffsets[m[7]]; ok {
		loc = time.FixedZone(offsetName(off), off)
	}

	return time.Date(year, time.Month(month), day, hour, min, 0, 0, loc)
}

// OffsetLocation converts a "-05:00" style UTC offset into a fixed location.
// Malformed offsets yield -05:00, the sportsbook's home offset.
func OffsetLocation(offset string) *time.Location {
	var h, m int
	sign := 1
	s := offset
	if strings.HasPrefix(s, "-") {
		sign = -1
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || h > 14 || m > 59 {
		return time.FixedZone("-05:00", -5*3600)
	}
	sec := sign * (h*3600 + m*60)
	return time.FixedZone(offsetName(sec), sec)
}

func offsetName(sec int) string {
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, sec/3600, (sec%3600)/60)
}
