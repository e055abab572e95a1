package fanduel

import (
	"fmt"
	"strings"

	"github.com/bkozlov/betsheet/internal/pkg/models"
)

// assembleSingleLegs builds the optional one-leg list for a single bet from
// its (already backfilled) header fields.
func (p *Parser) assembleSingleLegs(hdr headerInfo) []models.BetLeg {
	leg, ok := p.legFromHeader(hdr)
	if !ok {
		return nil
	}
	leg.Result = models.LegUnknown
	return []models.BetLeg{leg}
}

// singleName strips a line suffix that leaked into a Spread subject name
// ("Celtics -5.5" stays line-free as a name).
func singleName(hdr headerInfo) string {
	name := hdr.name
	if hdr.statType != "Spread" || hdr.line == "" {
		return name
	}
	for _, suffix := range []string{hdr.line, "-" + hdr.line, "+" + hdr.line} {
		if strings.HasSuffix(name, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(name, suffix))
		}
	}
	return name
}

// singleDescription formats a single bet's summary from its header fields.
func singleDescription(hdr headerInfo, name string) string {
	var parts []string
	if name != "" {
		parts = append(parts, name)
	}
	switch {
	case hdr.ou != "" && hdr.line != "":
		parts = append(parts, hdr.ou+" "+hdr.line)
	case hdr.line != "":
		parts = append(parts, hdr.line)
	}
	if hdr.statType != "" {
		parts = append(parts, hdr.statType)
	}
	if len(parts) == 0 {
		return hdr.description
	}
	return strings.Join(parts, " ")
}

// legSummary renders one selection the way the spreadsheet shows it.
func legSummary(s models.Selection) string {
	entity := s.Entity()
	switch {
	case s.Market == "Spread" && s.Target != "":
		return strings.TrimSpace(entity + " " + s.Target)
	case s.OU != "" && s.Target != "":
		return strings.TrimSpace(strings.Join(nonEmpty(entity, s.OU+" "+s.Target, s.Market), " "))
	case strings.HasSuffix(s.Target, "+"):
		return strings.TrimSpace(strings.Join(nonEmpty(entity, s.Target, s.Market), " "))
	default:
		return strings.TrimSpace(strings.Join(nonEmpty(entity, s.Target, s.Market), " "))
	}
}

func nonEmpty(parts ...string) []string {
	var out []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// describeMulti synthesizes the description for a multi-leg ticket.
func describeMulti(betType models.BetType, legs []models.BetLeg) string {
	var groups []models.BetLeg
	var extras []models.BetLeg
	for _, leg := range legs {
		if leg.IsGroup {
			groups = append(groups, leg)
		} else {
			extras = append(extras, leg)
		}
	}

	switch betType {
	case models.BetTypeParlay:
		var parts []string
		for _, leg := range extras {
			parts = append(parts, legSummary(leg.Selection))
		}
		return strings.Join(parts, ", ")

	case models.BetTypeSGP:
		// One small group and nothing else reads best condensed.
		if len(groups) == 1 && len(extras) == 0 && len(groups[0].Children) <= 3 {
			var parts []string
			for _, c := range groups[0].Children {
				parts = append(parts, legSummary(c))
			}
			out := strings.Join(parts, ", ")
			if groups[0].Matchup != "" {
				out += " (" + groups[0].Matchup + ")"
			}
			return out
		}
		var parts []string
		for _, g := range groups {
			for _, c := range g.Children {
				parts = append(parts, legSummary(c))
			}
		}
		for _, leg := range extras {
			parts = append(parts, legSummary(leg.Selection))
		}
		return strings.Join(parts, ", ")

	case models.BetTypeSGPPlus:
		if isLadder(groups, extras) {
			var parts []string
			for _, g := range groups {
				for _, c := range g.Children {
					parts = append(parts, legSummary(c))
				}
			}
			return strings.Join(parts, ", ")
		}
		total := len(extras)
		var parts []string
		for _, g := range groups {
			total += len(g.Children)
			label := "SGP"
			if g.Matchup != "" {
				label = "SGP (" + g.Matchup + ")"
			}
			parts = append(parts, label)
		}
		for _, leg := range extras {
			parts = append(parts, legSummary(leg.Selection))
		}
		return fmt.Sprintf("%d-leg Same Game Parlay Plus: %s", total, strings.Join(parts, " + "))
	}
	return ""
}

// isLadder detects the all-same-market SGP+ shape (e.g. every child a
// rushing-yards threshold) that reads more naturally as a flat list than as
// "SGP(...) + ...".
func isLadder(groups, extras []models.BetLeg) bool {
	if len(groups) < 2 || len(extras) != 0 {
		return false
	}
	markets := map[string]bool{}
	for _, g := range groups {
		for _, c := range g.Children {
			markets[c.Market] = true
		}
	}
	return len(markets) <= 2
}

// synthesizeName labels a multi-leg ticket; singles keep their extracted
// subject.
func synthesizeName(betType models.BetType, legs []models.BetLeg) string {
	switch betType {
	case models.BetTypeSGP:
		n := 0
		for _, leg := range legs {
			if leg.IsGroup {
				n += len(leg.Children)
			} else {
				n++
			}
		}
		if n >= 4 {
			return fmt.Sprintf("SGP (%d legs)", n)
		}
		return "SGP"
	case models.BetTypeSGPPlus:
		return "SGP+"
	case models.BetTypeParlay:
		return fmt.Sprintf("Parlay (%d)", len(legs))
	}
	return ""
}

// assembleMultiLegs combines group legs with the ungrouped extras and any
// selections recoverable only from free text, applying the wildcard-aware
// duplicate check so a selection is never listed both inside a group and as
// a bare extra.
func (p *Parser) assembleMultiLegs(groups, rowLegs []models.BetLeg,
	betType models.BetType, rawText string) []models.BetLeg {

	extras := dedupeLegs(rowLegs)
	extras = filterAgainstGroups(extras, groups)

	// SGP+ enrichment: the header may announce more selections than the DOM
	// yielded; re-scan the raw text for the missing ones.
	if betType == models.BetTypeSGPPlus {
		if want := expectedExtraLegs(rawText); want > len(extras) {
			recovered := filterAgainstGroups(p.legsFromStatText(rawText), groups)
			for _, leg := range recovered {
				dup := false
				for _, e := range extras {
					if sameSelection(e.Selection, leg.Selection) {
						dup = true
						break
					}
				}
				if !dup {
					extras = append(extras, leg)
				}
				if len(extras) >= want {
					break
				}
			}
		}
	}

	return append(append([]models.BetLeg{}, groups...), extras...)
}

// filterAgainstGroups drops extras already represented as a child inside a
// group leg.
func filterAgainstGroups(extras, groups []models.BetLeg) []models.BetLeg {
	var out []models.BetLeg
	for _, leg := range extras {
		dup := false
		for _, g := range groups {
			for _, c := range g.Children {
				if sameSelection(c, leg.Selection) {
					dup = true
					break
				}
			}
			if dup {
				break
			}
		}
		if !dup {
			out = append(out, leg)
		}
	}
	return out
}
