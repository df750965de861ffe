package mechdraw

import (
	"errors"
	"fmt"
)

// Phase identifies one step of the template drawing pipeline.
type Phase uint8

// Pipeline phases in execution order.
const (
	PhaseSetupDocument Phase = iota
	PhaseCreateTitleBlock
	PhaseSetupViewports
	PhaseDrawMainView
	PhaseDrawAuxiliaryViews
	PhaseAddDimensions
	PhaseAddAnnotations
	PhaseFinalize
)

func (p Phase) String() string {
	switch p {
	case PhaseSetupDocument:
		return "SetupDocument"
	case PhaseCreateTitleBlock:
		return "CreateTitleBlock"
	case PhaseSetupViewports:
		return "SetupViewports"
	case PhaseDrawMainView:
		return "DrawMainView"
	case PhaseDrawAuxiliaryViews:
		return "DrawAuxiliaryViews"
	case PhaseAddDimensions:
		return "AddDimensions"
	case PhaseAddAnnotations:
		return "AddAnnotations"
	case PhaseFinalize:
		return "Finalize"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// PhaseFunc draws one pipeline phase against the template's canvas.
type PhaseFunc func(t *Template) error

// ErrMissingView is returned by Generate when a mandatory view phase
// has no implementation.
var ErrMissingView = errors.New("mechdraw: template needs DrawMainView and DrawAuxiliaryViews")

// Template runs the fixed drawing pipeline for one part drawing:
//
//	SetupDocument → CreateTitleBlock → SetupViewports → DrawMainView →
//	DrawAuxiliaryViews → AddDimensions → AddAnnotations → Finalize
//
// DrawMainView and DrawAuxiliaryViews are mandatory; every other phase
// may be left nil and is skipped. Phases run strictly in order, never
// backward, and the first phase error aborts the rest. Primitives
// already emitted by earlier phases stay on the canvas; the pipeline
// is not transactional.
//
// Part families assign the hooks; see NewShaftTemplate and
// NewGearTemplate for complete assemblies.
type Template struct {
	Canvas   Canvas
	Config   *Config
	Registry *StrategyRegistry

	SetupDocument      PhaseFunc
	CreateTitleBlock   PhaseFunc
	SetupViewports     PhaseFunc
	DrawMainView       PhaseFunc
	DrawAuxiliaryViews PhaseFunc
	AddDimensions      PhaseFunc
	AddAnnotations     PhaseFunc
	Finalize           PhaseFunc
}

// NewTemplate returns a template bound to a canvas with no phases
// assigned. A nil cfg uses DefaultConfig; a nil reg gets a fresh
// registry.
func NewTemplate(c Canvas, cfg *Config, reg *StrategyRegistry) *Template {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = NewStrategyRegistry()
	}
	return &Template{Canvas: c, Config: cfg, Registry: reg}
}

// Draw executes one strategy operation against the template's canvas.
func (t *Template) Draw(kind StrategyKind, op string, p Params) (Result, error) {
	return t.Registry.Draw(kind, t.Canvas, t.Config, op, p)
}

// Generate runs the pipeline. It fails up front, before emitting any
// geometry, when a mandatory view phase is missing.
func (t *Template) Generate() error {
	if t.DrawMainView == nil || t.DrawAuxiliaryViews == nil {
		return ErrMissingView
	}

	phases := []struct {
		phase Phase
		fn    PhaseFunc
	}{
		{PhaseSetupDocument, t.SetupDocument},
		{PhaseCreateTitleBlock, t.CreateTitleBlock},
		{PhaseSetupViewports, t.SetupViewports},
		{PhaseDrawMainView, t.DrawMainView},
		{PhaseDrawAuxiliaryViews, t.DrawAuxiliaryViews},
		{PhaseAddDimensions, t.AddDimensions},
		{PhaseAddAnnotations, t.AddAnnotations},
		{PhaseFinalize, t.Finalize},
	}
	for _, step := range phases {
		if step.fn == nil {
			Logger().Debug("template phase skipped", "phase", step.phase)
			continue
		}
		Logger().Debug("template phase", "phase", step.phase)
		if err := step.fn(t); err != nil {
			return fmt.Errorf("mechdraw: %s phase: %w", step.phase, err)
		}
	}
	return nil
}
