package fanduel

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bkozlov/betsheet/internal/parser/parsers"
	"github.com/bkozlov/betsheet/internal/pkg/config"
	"github.com/bkozlov/betsheet/internal/pkg/models"
	"github.com/bkozlov/betsheet/internal/pkg/textutil"
)

func init() {
	parsers.Register("fanduel", func(cfg config.SourceConfig, log *slog.Logger) parsers.SettledParser {
		return New(cfg, log)
	})
}

// Parser extracts settled bets from a saved FanDuel "settled" page. A Parser
// is safe for concurrent use; all mutable state lives per call.
type Parser struct {
	cfg config.SourceConfig
	log *slog.Logger
	loc *time.Location
	now func() time.Time

	statKeywordRe *regexp.Regexp
	nameMarketRe  *regexp.Regexp
	nicknames     map[string]bool
}

// Option customizes a Parser.
type Option func(*Parser)

// WithClock fixes the time source; parse output becomes fully deterministic
// for a given input, which the tests rely on.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) { p.now = now }
}

// New builds a FanDuel parser from per-source settings. The stat-keyword and
// name-then-market patterns are compiled once here; both drive leg-row
// discovery on every card.
func New(cfg config.SourceConfig, log *slog.Logger, opts ...Option) *Parser {
	if log == nil {
		log = slog.Default()
	}

	keywords := make([]string, 0, len(cfg.StatKeywords))
	for _, kw := range cfg.StatKeywords {
		kw = strings.TrimSpace(kw)
		if kw != "" {
			keywords = append(keywords, regexp.QuoteMeta(kw))
		}
	}
	if len(keywords) == 0 {
		keywords = []string{"points"}
	}
	alt := strings.Join(keywords, "|")

	p := &Parser{
		cfg: cfg,
		log: log.With("parser", "fanduel"),
		loc: textutil.OffsetLocation(cfg.DefaultUTCOffset),
		now: time.Now,
		statKeywordRe: regexp.MustCompile(`(?i)\b(?:` + alt + `)\b`),
		nameMarketRe: regexp.MustCompile(
			`[A-Z][A-Za-z'.-]+(?: [A-Z][A-Za-z'.-]+){1,2}.{0,40}\b(?i:` + alt + `)\b`),
		nicknames: make(map[string]bool, len(cfg.TeamNicknames)),
	}
	for _, n := range cfg.TeamNicknames {
		p.nicknames[n] = true
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Book returns the sportsbook identifier this parser handles.
func (p *Parser) Book() string {
	if p.cfg.Book != "" {
		return p.cfg.Book
	}
	return "fanduel"
}

// ParseSettled extracts every recognizable bet from raw page HTML. It never
// fails: malformed or unrelated input yields an empty slice, and a card that
// cannot be parsed is skipped with a log line rather than aborting the page.
func (p *Parser) ParseSettled(rawHTML string) []models.Bet {
	bets := []models.Bet{}
	if strings.TrimSpace(rawHTML) == "" {
		return bets
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		p.log.Warn("unparsable html", "error", err)
		return bets
	}

	seen := map[string]bool{}
	for _, idNode := range findBetIDNodes(doc) {
		card := findCardRoot(idNode)
		if card == nil {
			p.log.Debug("bet id text without a card ancestor, skipping")
			continue
		}
		bet, ok := p.parseCard(card)
		if !ok {
			continue
		}
		if seen[bet.BetID] {
			// Nested markup can surface the same bet id from two text nodes.
			continue
		}
		seen[bet.BetID] = true
		bets = append(bets, bet)
	}
	return bets
}

// parseCard turns one discovered card element into a Bet.
func (p *Parser) parseCard(card *html.Node) (models.Bet, bool) {
	meta := p.extractFooterMeta(card)
	if meta.betID == "" {
		p.log.Debug("card without extractable bet id, skipping")
		return models.Bet{}, false
	}

	rawText := nodeText(card)
	hdrText := headerText(card)
	label := ariaLabel(card)
	rows := p.findLegRows(card)

	betType := p.classifyBetType(hdrText, label, len(rows))
	betType = reclassifyCollapsed(betType, len(rows), hdrText)
	hdr := p.extractHeaderInfo(card, betType, rows)
	result := inferResult(meta, rawText)

	var legs []models.BetLeg
	var name, desc string
	if betType == models.BetTypeSingle {
		legs = p.assembleSingleLegs(hdr)
		name = singleName(hdr)
		desc = singleDescription(hdr, name)
	} else {
		legs = p.multiLegs(card, rows, hdr, betType, result, rawText, meta.betID)
		name = synthesizeName(betType, legs)
		desc = describeMulti(betType, legs)
		if desc == "" {
			desc = hdr.description
		}
	}

	placedAt := textutil.ParsePlacedAt(meta.placedRaw, p.loc, p.now)

	payout := meta.payout
	if !meta.payoutFound && meta.returnedFound {
		payout = meta.returned
	}

	bet := models.Bet{
		Book:           p.Book(),
		BetID:          meta.betID,
		ID:             models.CanonicalBetID(p.Book(), meta.betID, placedAt),
		PlacedAt:       placedAt,
		BetType:        betType,
		MarketCategory: models.DeriveMarketCategory(betType, hdr.statType, desc, len(legs) > 0),
		Odds:           hdr.odds,
		Stake:          meta.stake,
		Payout:         payout,
		Result:         result,
		Description:    desc,
		Name:           name,
		Sport:          hdr.sport,
		IsLive:         hdr.isLive,
		Legs:           legs,
		Raw:            rawText,
	}
	if betType == models.BetTypeSingle {
		bet.Type = hdr.statType
		bet.Line = hdr.line
		bet.OU = hdr.ou
	}
	if result.Settled() {
		settledAt := p.now()
		bet.SettledAt = &settledAt
	}
	return bet, true
}

// multiLegs runs the leg builders for a multi-leg ticket: nested SGP blocks
// become group legs, leftover rows become flat legs, and when the DOM yielded
// no usable structure the free-text builders take over.
func (p *Parser) multiLegs(card *html.Node, rows []*html.Node, hdr headerInfo,
	betType models.BetType, result models.Result, rawText, betID string) []models.BetLeg {

	var groups []models.BetLeg
	consumed := map[*html.Node]bool{}
	if betType == models.BetTypeSGP || betType == models.BetTypeSGPPlus {
		groups, consumed = p.buildGroupLegs(card, rows, hdr, result, rawText, betID)
	}

	var rowLegs []models.BetLeg
	for _, row := range rows {
		if consumed[row] {
			continue
		}
		if leg, ok := p.buildRowLeg(row, card); ok {
			rowLegs = append(rowLegs, leg)
		}
	}

	// Flat row legs for an SGP ticket whose nested container never formed:
	// cluster rows that share an odds value into a synthetic group.
	if len(groups) == 0 && betType != models.BetTypeParlay && len(rowLegs) >= 2 {
		groups, rowLegs = p.clusterLegsByOdds(dedupeLegs(rowLegs), result, rawText, betID)
	}

	// Still no group on a plain SGP ticket: the marker and the leg rows are
	// siblings with nothing wrapping them, so the whole ticket is the group.
	if len(groups) == 0 && betType == models.BetTypeSGP && len(rowLegs) >= 2 {
		groups = []models.BetLeg{p.groupFromCard(dedupeLegs(rowLegs), hdr, result, rawText, betID)}
		rowLegs = nil
	}

	if len(groups) == 0 && len(rowLegs) == 0 {
		rowLegs = append(rowLegs, p.legsFromDescription(hdr.description)...)
		rowLegs = append(rowLegs, p.legsFromStatText(rawText)...)
		rowLegs = append(rowLegs, p.legsFromSpans(card)...)
	}
	if len(groups) == 0 && len(rowLegs) == 0 {
		if leg, ok := p.legFromHeader(hdr); ok {
			rowLegs = append(rowLegs, leg)
		}
	}

	return p.assembleMultiLegs(groups, rowLegs, betType, rawText)
}
