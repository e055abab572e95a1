package parsers

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/bkozlov/betsheet/internal/pkg/config"
)

type Factory func(cfg config.SourceConfig, log *slog.Logger) SettledParser

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func Register(name string, f Factory) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		panic("parsers: empty name in Register")
	}
	if f == nil {
		panic("parsers: nil factory in Register for " + n)
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[n]; exists {
		panic("parsers: duplicate registration for " + n)
	}
	registry[n] = f
}

func FactoryByName(name string) (Factory, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[n]
	return f, ok
}

func AvailableNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func MustFactoryByName(name string) Factory {
	if f, ok := FactoryByName(name); ok {
		return f
	}
	return func(config.SourceConfig, *slog.Logger) SettledParser {
		panic(fmt.Sprintf("parsers: unknown parser %q (available: %v)", name, AvailableNames()))
	}
}
