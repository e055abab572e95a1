package parsers_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bkozlov/betsheet/internal/parser/parsers"
	_ "github.com/bkozlov/betsheet/internal/parser/parsers/all"
	"github.com/bkozlov/betsheet/internal/pkg/config"
)

func TestFanduelRegistered(t *testing.T) {
	f, ok := parsers.FactoryByName("FanDuel")
	if !ok {
		t.Fatalf("fanduel not registered; available: %v", parsers.AvailableNames())
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := f(config.Default().Source("fanduel"), log)
	if p.Book() != "fanduel" {
		t.Errorf("Book() = %q, want fanduel", p.Book())
	}
	if bets := p.ParseSettled(""); len(bets) != 0 {
		t.Errorf("empty input produced %d bets", len(bets))
	}
}

func TestMustFactoryByNameUnknown(t *testing.T) {
	f := parsers.MustFactoryByName("no-such-book")
	defer func() {
		if recover() == nil {
			t.Error("calling the factory for an unknown parser must panic")
		}
	}()
	f(config.SourceConfig{}, slog.Default())
}
