package mechdraw

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// StrategyKind names a family of drawing operations.
type StrategyKind string

// Built-in strategy kinds.
const (
	KindShapes     StrategyKind = "shapes"
	KindDimensions StrategyKind = "dimensions"
	KindSymbols    StrategyKind = "symbols"
	KindViews      StrategyKind = "views"
)

// Strategy executes named drawing operations against a canvas.
// Implementations validate parameters, record entities and return the
// handles they produced. Unknown operation names yield an OpError.
type Strategy interface {
	Kind() StrategyKind
	Draw(op string, p Params) (Result, error)
}

// StrategyFactory builds a strategy bound to a canvas and a standards
// snapshot.
type StrategyFactory func(c Canvas, cfg *Config) Strategy

// StrategyRegistry maps kinds to factories and caches built instances
// per (kind, canvas, snapshot) triple, so repeated lookups with the same
// canvas and configuration reuse one strategy value. Swapping in a new
// snapshot naturally produces fresh instances.
//
// A registry is safe for concurrent use.
type StrategyRegistry struct {
	mu        sync.Mutex
	factories map[StrategyKind]StrategyFactory
	cache     map[strategyKey]Strategy
}

type strategyKey struct {
	kind   StrategyKind
	canvas Canvas
	cfg    *Config
}

// NewStrategyRegistry returns a registry with the four built-in kinds
// registered.
func NewStrategyRegistry() *StrategyRegistry {
	r := &StrategyRegistry{
		factories: make(map[StrategyKind]StrategyFactory),
		cache:     make(map[strategyKey]Strategy),
	}
	r.Register(KindShapes, func(c Canvas, cfg *Config) Strategy { return newShapeStrategy(c, cfg) })
	r.Register(KindDimensions, func(c Canvas, cfg *Config) Strategy { return newDimensionStrategy(c, cfg) })
	r.Register(KindSymbols, func(c Canvas, cfg *Config) Strategy { return newSymbolStrategy(c, cfg) })
	r.Register(KindViews, func(c Canvas, cfg *Config) Strategy { return newViewStrategy(c, cfg) })
	return r
}

// Register adds a strategy factory for a kind. Registering an existing
// kind replaces its factory and drops cached instances of that kind.
// It panics if the factory is nil.
func (r *StrategyRegistry) Register(kind StrategyKind, factory StrategyFactory) {
	if factory == nil {
		panic("mechdraw: Register strategy factory is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
	for key := range r.cache {
		if key.kind == kind {
			delete(r.cache, key)
		}
	}
}

// Strategy returns the cached strategy instance for a kind bound to the
// given canvas and snapshot, building it on first use. A nil cfg uses
// DefaultConfig.
func (r *StrategyRegistry) Strategy(kind StrategyKind, c Canvas, cfg *Config) (Strategy, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	key := strategyKey{kind: kind, canvas: c, cfg: cfg}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.cache[key]; ok {
		return s, nil
	}
	factory, ok := r.factories[kind]
	if !ok {
		return nil, fmt.Errorf("mechdraw: unknown strategy %q (available: %s)",
			kind, strings.Join(r.kindsLocked(), ", "))
	}
	s := factory(c, cfg)
	r.cache[key] = s
	Logger().Debug("strategy created", "kind", kind)
	return s, nil
}

// Draw looks up the strategy for kind and executes one operation on it.
func (r *StrategyRegistry) Draw(kind StrategyKind, c Canvas, cfg *Config, op string, p Params) (Result, error) {
	s, err := r.Strategy(kind, c, cfg)
	if err != nil {
		return nil, err
	}
	return s.Draw(op, p)
}

// Kinds returns the sorted registered kind names.
func (r *StrategyRegistry) Kinds() []StrategyKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := r.kindsLocked()
	kinds := make([]StrategyKind, len(names))
	for i, n := range names {
		kinds[i] = StrategyKind(n)
	}
	return kinds
}

func (r *StrategyRegistry) kindsLocked() []string {
	names := make([]string, 0, len(r.factories))
	for k := range r.factories {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// ClearCache drops every cached strategy instance. Factories stay
// registered.
func (r *StrategyRegistry) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.cache)
}
