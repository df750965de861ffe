package mechdraw

import (
	"math"
	"strconv"
)

// Deg2Rad converts degrees to radians.
func Deg2Rad(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// ScaleLabel renders a drawing scale factor as its standard "1:n"
// label; whole ratios drop the fraction, so 0.5 becomes "1:2" and
// 1 becomes "1:1".
func ScaleLabel(factor float64) string {
	ratio := 1 / factor
	if ratio == math.Trunc(ratio) {
		return "1:" + strconv.Itoa(int(ratio))
	}
	return "1:" + strconv.FormatFloat(ratio, 'g', -1, 64)
}

// Tools bundles the four strategies over one canvas behind plain
// method calls, for callers that prefer arguments over Params maps.
// Methods cover the common parameter sets; drive the registry directly
// for anything rarer.
type Tools struct {
	canvas Canvas
	cfg    *Config
	reg    *StrategyRegistry
}

// NewTools returns a facade over the canvas. A nil cfg uses
// DefaultConfig; a nil reg gets a fresh registry.
func NewTools(c Canvas, cfg *Config, reg *StrategyRegistry) *Tools {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if reg == nil {
		reg = NewStrategyRegistry()
	}
	return &Tools{canvas: c, cfg: cfg, reg: reg}
}

// Config returns the standards snapshot the facade draws with.
func (t *Tools) Config() *Config { return t.cfg }

func (t *Tools) draw(kind StrategyKind, op string, p Params) (Result, error) {
	return t.reg.Draw(kind, t.canvas, t.cfg, op, p)
}

// DrawCenterline draws a segment in the CENTER linetype.
func (t *Tools) DrawCenterline(start, end Point) (Result, error) {
	return t.draw(KindShapes, "centerline", Params{"start": start, "end": end})
}

// DrawHiddenline draws a segment in the HIDDEN linetype.
func (t *Tools) DrawHiddenline(start, end Point) (Result, error) {
	return t.draw(KindShapes, "hiddenline", Params{"start": start, "end": end})
}

// DrawPhantomline draws a segment in the PHANTOM linetype.
func (t *Tools) DrawPhantomline(start, end Point) (Result, error) {
	return t.draw(KindShapes, "phantomline", Params{"start": start, "end": end})
}

// DrawBorderline draws a segment in the BORDER linetype.
func (t *Tools) DrawBorderline(start, end Point) (Result, error) {
	return t.draw(KindShapes, "borderline", Params{"start": start, "end": end})
}

// DrawVisibleLine draws a plain segment; an empty layer means VISIBLE.
func (t *Tools) DrawVisibleLine(start, end Point, layer string) (Result, error) {
	p := Params{"start": start, "end": end}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "line", p)
}

// DrawCircle draws a circle; an empty layer means PARTS.
func (t *Tools) DrawCircle(center Point, radius float64, layer string) (Result, error) {
	p := Params{"center": center, "radius": radius}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "circle", p)
}

// DrawArc draws a circular arc between two angles in degrees.
func (t *Tools) DrawArc(center Point, radius, startAngle, endAngle float64, layer string) (Result, error) {
	p := Params{"center": center, "radius": radius, "start_angle": startAngle, "end_angle": endAngle}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "arc", p)
}

// DrawEllipse draws a full ellipse from its major axis vector and the
// minor-to-major ratio.
func (t *Tools) DrawEllipse(center, majorAxis Point, ratio float64, layer string) (Result, error) {
	p := Params{"center": center, "major_axis": majorAxis, "ratio": ratio}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "ellipse", p)
}

// DrawRectangle draws an axis-aligned rectangle from its lower-left
// corner.
func (t *Tools) DrawRectangle(lowerLeft Point, width, height float64, layer string) (Result, error) {
	p := Params{"lower_left": lowerLeft, "width": width, "height": height}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "rectangle", p)
}

// DrawPolyline draws a polyline through the points.
func (t *Tools) DrawPolyline(points []Point, closed bool, layer string) (Result, error) {
	p := Params{"points": points, "closed": closed}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "polyline", p)
}

// DrawSpline draws a degree-3 spline through the control points.
func (t *Tools) DrawSpline(points []Point, layer string) (Result, error) {
	p := Params{"points": points}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindShapes, "spline", p)
}

// DrawHatch fills the region bounded by the points with a pattern; an
// empty pattern means ANSI31.
func (t *Tools) DrawHatch(points []Point, pattern string, scale float64) (Result, error) {
	p := Params{"points": points}
	if pattern != "" {
		p["pattern"] = pattern
	}
	if scale != 0 {
		p["scale"] = scale
	}
	return t.draw(KindShapes, "hatch", p)
}

// AddText places a centered text; zero height means the normal 2.5 and
// an empty layer means TEXT.
func (t *Tools) AddText(text string, position Point, height float64, layer string) (Result, error) {
	p := Params{"text": text, "position": position}
	if height != 0 {
		p["height"] = height
	}
	if layer != "" {
		p["layer"] = layer
	}
	return t.draw(KindViews, "text", p)
}

// AddDimension adds a linear dimension dropped distance below the
// measured points; empty text means the measured value.
func (t *Tools) AddDimension(p1, p2 Point, distance float64, text string) (Result, error) {
	p := Params{"p1": p1, "p2": p2, "distance": distance}
	if text != "" {
		p["text"] = text
	}
	return t.draw(KindDimensions, "linear", p)
}

// AddRadiusDimension adds a radius callout at the given angle in
// degrees.
func (t *Tools) AddRadiusDimension(center Point, radius, angle float64, text string) (Result, error) {
	p := Params{"center": center, "radius": radius, "angle": angle}
	if text != "" {
		p["text"] = text
	}
	return t.draw(KindDimensions, "radius", p)
}

// AddDiameterDimension adds a diameter callout at the given angle in
// degrees.
func (t *Tools) AddDiameterDimension(center Point, radius, angle float64, text string) (Result, error) {
	p := Params{"center": center, "radius": radius, "angle": angle}
	if text != "" {
		p["text"] = text
	}
	return t.draw(KindDimensions, "diameter", p)
}

// AddAngularDimension measures the angle at center between the rays
// through p1 and p2.
func (t *Tools) AddAngularDimension(center, p1, p2 Point, text string) (Result, error) {
	p := Params{"center": center, "p1": p1, "p2": p2}
	if text != "" {
		p["text"] = text
	}
	return t.draw(KindDimensions, "angular", p)
}

// AddAlignedDimension adds a dimension parallel to the measured
// segment at the given offset.
func (t *Tools) AddAlignedDimension(p1, p2 Point, distance float64, text string) (Result, error) {
	p := Params{"p1": p1, "p2": p2, "distance": distance}
	if text != "" {
		p["text"] = text
	}
	return t.draw(KindDimensions, "aligned", p)
}

// AddBaselineDimensions dimensions every point from a shared base;
// zero spacing means 10 and a zero direction means +x.
func (t *Tools) AddBaselineDimensions(base Point, points []Point, spacing float64, direction Point) (Result, error) {
	p := Params{"base_point": base, "points": points}
	if spacing != 0 {
		p["spacing"] = spacing
	}
	if direction != (Point{}) {
		p["direction"] = direction
	}
	return t.draw(KindDimensions, "baseline", p)
}

// AddDimensionWithTolerance adds a linear dimension whose text carries
// the deviation pair, like "25+0.05/-0.02".
func (t *Tools) AddDimensionWithTolerance(p1, p2 Point, distance, nominal, upperTol, lowerTol float64) (Result, error) {
	return t.draw(KindDimensions, "tolerance", Params{
		"p1": p1, "p2": p2, "distance": distance,
		"nominal": nominal, "upper_tol": upperTol, "lower_tol": lowerTol,
	})
}

// AddGeometricTolerance adds a feature control frame; an empty datum
// skips the datum compartment.
func (t *Tools) AddGeometricTolerance(position Point, symbol, tolerance, datum string) (Result, error) {
	p := Params{"position": position, "symbol": symbol, "tolerance": tolerance}
	if datum != "" {
		p["datum"] = datum
	}
	return t.draw(KindSymbols, "geometric_tolerance", p)
}

// AddLeaderArrow routes a leader from start to end with the note text
// at its landing.
func (t *Tools) AddLeaderArrow(start, end Point, text string) (Result, error) {
	return t.draw(KindSymbols, "leader_arrow", Params{
		"start_point": start, "end_point": end, "text": text,
	})
}

// AddRoughness adds the basic Ra roughness mark.
func (t *Tools) AddRoughness(position Point, value string) (Result, error) {
	return t.draw(KindSymbols, "roughness", Params{
		"position": position, "roughness_value": value,
	})
}

// SurfaceFinish carries the optional fields of the full surface
// texture symbol.
type SurfaceFinish struct {
	MachiningMethod string
	Waviness        string
	Lay             string
	Cutoff          string
}

// AddAdvancedSurfaceFinish adds the full surface texture symbol.
func (t *Tools) AddAdvancedSurfaceFinish(position Point, raValue string, extra SurfaceFinish) (Result, error) {
	p := Params{"position": position, "ra_value": raValue}
	if extra.MachiningMethod != "" {
		p["machining_method"] = extra.MachiningMethod
	}
	if extra.Waviness != "" {
		p["waviness"] = extra.Waviness
	}
	if extra.Lay != "" {
		p["lay"] = extra.Lay
	}
	if extra.Cutoff != "" {
		p["cutoff"] = extra.Cutoff
	}
	return t.draw(KindSymbols, "advanced_surface_finish", p)
}

// WeldSpec carries the optional fields of a welding symbol.
type WeldSpec struct {
	Size    string
	Length  string
	Process string
	Finish  string
	Field   bool
}

// AddWeldingSymbol adds a weld callout for the given joint type.
func (t *Tools) AddWeldingSymbol(position Point, weldType string, spec WeldSpec) (Result, error) {
	p := Params{"position": position, "weld_type": weldType, "field": spec.Field}
	if spec.Size != "" {
		p["size"] = spec.Size
	}
	if spec.Length != "" {
		p["length"] = spec.Length
	}
	if spec.Process != "" {
		p["process"] = spec.Process
	}
	if spec.Finish != "" {
		p["finish"] = spec.Finish
	}
	return t.draw(KindSymbols, "welding_symbol", p)
}

// AddSectionLine adds a cutting plane trace; an empty label means "A".
func (t *Tools) AddSectionLine(start, end Point, label string) (Result, error) {
	p := Params{"start_point": start, "end_point": end}
	if label != "" {
		p["section_label"] = label
	}
	return t.draw(KindViews, "section_line", p)
}

// AddSectionViewLabel adds the "剖视图" heading for a section view; an
// empty label means "A-A".
func (t *Tools) AddSectionViewLabel(position Point, label string) (Result, error) {
	p := Params{"position": position}
	if label != "" {
		p["section_label"] = label
	}
	return t.draw(KindViews, "section_view_label", p)
}

// AddDetailView adds a detail view indicator circle; empty label and
// scale mean "B" and "2:1".
func (t *Tools) AddDetailView(center Point, radius float64, label, scale string) (Result, error) {
	p := Params{"center": center, "radius": radius}
	if label != "" {
		p["detail_label"] = label
	}
	if scale != "" {
		p["scale"] = scale
	}
	return t.draw(KindViews, "detail_view", p)
}
