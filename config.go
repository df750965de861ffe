package mechdraw

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"sync/atomic"
)

//go:embed gb_standards.json
var gbStandardsJSON []byte

// rawConfig mirrors the on-disk standards schema: line-type definitions,
// layer-name mappings, a text-height table and scalar fields.
type rawConfig struct {
	LineTypes map[string]struct {
		Description string    `json:"description"`
		Pattern     []float64 `json:"pattern"`
	} `json:"line_types"`
	LineWeights  map[string]float64    `json:"line_weights"`
	LayerMapping map[string]string     `json:"layer_mapping"`
	TextHeights  map[string]float64    `json:"text_heights"`
	ArrowSize    float64               `json:"arrow_size"`
	FontStyle    string                `json:"font_style"`
	Scales       []int                 `json:"scales"`
	PaperSizes   map[string][2]float64 `json:"paper_sizes"`
}

// Config is an immutable snapshot of a GB standards configuration.
// All lookups read from the snapshot taken at load time; replacing the
// configuration means constructing a new Config and swapping it into the
// owning Session. Accessors that return collections return copies.
//
// Config values are compared by pointer identity: the strategy registry
// uses the snapshot pointer as the configuration part of its cache key.
type Config struct {
	lineTypes   map[string]LineStyle
	lineWeights map[string]float64
	layers      map[string]string
	textHeights map[string]float64
	arrowSize   float64
	fontStyle   string
	scales      []int
	paperSizes  map[string]Point
}

// defaultScales is used when the configuration omits the scale list.
var defaultScales = []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

func newConfig(raw rawConfig) *Config {
	cfg := &Config{
		lineTypes:   make(map[string]LineStyle, len(raw.LineTypes)),
		lineWeights: make(map[string]float64, len(raw.LineWeights)),
		layers:      make(map[string]string, len(raw.LayerMapping)),
		textHeights: make(map[string]float64, len(raw.TextHeights)),
		arrowSize:   raw.ArrowSize,
		fontStyle:   raw.FontStyle,
		paperSizes:  make(map[string]Point, len(raw.PaperSizes)),
	}
	for name, lt := range raw.LineTypes {
		pattern := make([]float64, len(lt.Pattern))
		copy(pattern, lt.Pattern)
		cfg.lineTypes[name] = LineStyle{Description: lt.Description, Pattern: pattern}
	}
	for tag, w := range raw.LineWeights {
		cfg.lineWeights[tag] = w
	}
	for logical, physical := range raw.LayerMapping {
		cfg.layers[logical] = physical
	}
	for tag, h := range raw.TextHeights {
		cfg.textHeights[tag] = h
	}
	for name, wh := range raw.PaperSizes {
		cfg.paperSizes[name] = Point{X: wh[0], Y: wh[1]}
	}
	if cfg.arrowSize == 0 {
		cfg.arrowSize = 3.0
	}
	if cfg.fontStyle == "" {
		cfg.fontStyle = "chinese"
	}
	if len(raw.Scales) > 0 {
		cfg.scales = append([]int(nil), raw.Scales...)
	} else {
		cfg.scales = append([]int(nil), defaultScales...)
	}
	return cfg
}

// ParseConfig builds a Config snapshot from standards JSON.
func ParseConfig(data []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("mechdraw: parse standards config: %w", err)
	}
	return newConfig(raw), nil
}

// LoadConfig reads and parses a standards JSON file.
// A missing or malformed file is a fatal configuration error for the
// engine: there is no partial fallback to defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mechdraw: read standards config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	Logger().Info("standards config loaded", "path", path,
		"linetypes", len(cfg.lineTypes), "layers", len(cfg.layers))
	return cfg, nil
}

var (
	defaultCfg     *Config
	defaultCfgOnce sync.Once
)

// DefaultConfig returns the built-in GB standards snapshot: the
// GB/T 4457.4 linetypes, the project layer scheme, standard text heights
// and the GB/T 4458.4 scale list. The same pointer is returned on every
// call.
func DefaultConfig() *Config {
	defaultCfgOnce.Do(func() {
		cfg, err := ParseConfig(gbStandardsJSON)
		if err != nil {
			panic("mechdraw: invalid embedded standards config: " + err.Error())
		}
		defaultCfg = cfg
	})
	return defaultCfg
}

// LineStyle returns the named linetype definition.
func (c *Config) LineStyle(name string) (LineStyle, bool) {
	s, ok := c.lineTypes[name]
	if !ok {
		return LineStyle{}, false
	}
	pattern := make([]float64, len(s.Pattern))
	copy(pattern, s.Pattern)
	return LineStyle{Description: s.Description, Pattern: pattern}, true
}

// LineTypeNames returns the sorted names of all configured linetypes.
func (c *Config) LineTypeNames() []string {
	names := make([]string, 0, len(c.lineTypes))
	for name := range c.lineTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LayerName resolves a logical layer name to its physical layer name.
// Unmapped logical names resolve to themselves, never to an error: a
// drawing on an unknown logical layer still lands on a layer of that name.
func (c *Config) LayerName(logical string) string {
	if physical, ok := c.layers[logical]; ok {
		return physical
	}
	return logical
}

// LayerMappings returns a copy of the full logical-to-physical layer map.
func (c *Config) LayerMappings() map[string]string {
	m := make(map[string]string, len(c.layers))
	for logical, physical := range c.layers {
		m[logical] = physical
	}
	return m
}

// LineWeight returns the line weight in millimeters for a weight tag
// such as "THIN" or "THICK".
func (c *Config) LineWeight(tag string) (float64, bool) {
	w, ok := c.lineWeights[tag]
	return w, ok
}

// TextHeight returns the text height in millimeters for a height tag
// such as "TITLE" or "NORMAL".
func (c *Config) TextHeight(tag string) (float64, bool) {
	h, ok := c.textHeights[tag]
	return h, ok
}

// ArrowSize returns the standard dimension arrowhead length.
func (c *Config) ArrowSize() float64 { return c.arrowSize }

// FontStyle returns the name of the text style used for CJK-capable text.
func (c *Config) FontStyle() string { return c.fontStyle }

// Scales returns the ordered list of standard drawing scale denominators.
func (c *Config) Scales() []int {
	return append([]int(nil), c.scales...)
}

// IsStandardScale reports whether n appears in the standard scale list.
func (c *Config) IsStandardScale(n int) bool {
	for _, s := range c.scales {
		if s == n {
			return true
		}
	}
	return false
}

// PaperSize returns the width and height in millimeters of a named sheet
// size such as "A3".
func (c *Config) PaperSize(name string) (w, h float64, ok bool) {
	size, ok := c.paperSizes[name]
	if !ok {
		return 0, 0, false
	}
	return size.X, size.Y, true
}

// Session owns the active standards snapshot for one document lifetime.
// All readers observe the same snapshot until Reload or Swap replaces it
// atomically; in-flight reads keep the old snapshot, later reads see the
// new one, and no reader ever observes a partially applied configuration.
type Session struct {
	cfg atomic.Pointer[Config]
}

// NewSession creates a session holding the given snapshot.
// A nil cfg starts the session on DefaultConfig.
func NewSession(cfg *Config) *Session {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Session{}
	s.cfg.Store(cfg)
	return s
}

// Config returns the session's current snapshot.
func (s *Session) Config() *Config {
	return s.cfg.Load()
}

// Swap replaces the session's snapshot and returns the previous one.
func (s *Session) Swap(cfg *Config) *Config {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return s.cfg.Swap(cfg)
}

// Reload loads a standards file and swaps it in as the current snapshot.
// On error the session keeps its previous snapshot.
func (s *Session) Reload(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	s.cfg.Store(cfg)
	Logger().Info("standards config reloaded", "path", path)
	return nil
}
