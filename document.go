package mechdraw

import (
	"sort"
	"strings"
)

// Layer is one entry of the document layer table.
type Layer struct {
	Name     string
	Color    int
	LineType string
}

// Paper is the sheet the document is laid out on, in millimeters.
type Paper struct {
	Name   string
	Width  float64
	Height float64
}

// Document is the recording Canvas implementation: an append-only list of
// typed entities with dense handles, plus the layer, linetype and text
// style tables bootstrapped from a standards snapshot. A document is
// replayed into an output Backend with Replay.
//
// A Document is not safe for concurrent use; drawing order determines
// entity stacking and must stay deterministic, so callers serialize access.
type Document struct {
	cfg      *Config
	paper    Paper
	entities []Entity

	layers    []Layer
	layerIdx  map[string]int
	lineTypes map[string]LineStyle
	ltNames   []string
	styles    []string
	styleSet  map[string]bool

	textStyle string
}

// NewDocument creates a document bootstrapped from the given standards
// snapshot: every configured linetype, every mapped physical layer (with
// its linetype inferred from the layer's role) and the standard text
// style are registered up front, the way a template document ships them.
// A nil cfg uses DefaultConfig.
func NewDocument(cfg *Config, opts ...Option) *Document {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	o := defaultDocOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}

	d := &Document{
		cfg:       cfg,
		paper:     o.paper,
		layerIdx:  make(map[string]int),
		lineTypes: make(map[string]LineStyle),
		styleSet:  make(map[string]bool),
		textStyle: cfg.FontStyle(),
	}

	for _, name := range cfg.LineTypeNames() {
		style, _ := cfg.LineStyle(name)
		d.lineTypes[name] = style
		d.ltNames = append(d.ltNames, name)
	}

	d.RegisterStyle(cfg.FontStyle())
	for _, extra := range o.styles {
		d.RegisterStyle(extra)
	}

	mappings := cfg.LayerMappings()
	logicals := make([]string, 0, len(mappings))
	for logical := range mappings {
		logicals = append(logicals, logical)
	}
	sort.Strings(logicals)
	for _, logical := range logicals {
		physical := mappings[logical]
		d.ensureLayer(physical, inferLineType(logical, physical))
	}

	Logger().Debug("document created", "paper", d.paper.Name,
		"layers", len(d.layers), "linetypes", len(d.ltNames))
	return d
}

// inferLineType selects the table linetype for a bootstrapped layer from
// its logical role or its physical name.
func inferLineType(logical, physical string) string {
	switch {
	case strings.Contains(physical, "中心线") || logical == "CENTERLINE" || logical == "AXIS":
		return "CENTER"
	case strings.Contains(physical, "虚线") || logical == "HIDDEN":
		return "HIDDEN"
	case strings.Contains(physical, "双点长划线") || logical == "PHANTOM":
		return "PHANTOM"
	case strings.Contains(physical, "边界线") || logical == "BORDER":
		return "BORDER"
	default:
		return "CONTINUOUS"
	}
}

// ensureLayer registers a layer on first use and returns its table index.
func (d *Document) ensureLayer(name, linetype string) int {
	if name == "" {
		name = "0"
	}
	if i, ok := d.layerIdx[name]; ok {
		return i
	}
	if linetype == "" {
		linetype = "CONTINUOUS"
	}
	d.layers = append(d.layers, Layer{Name: name, Color: 7, LineType: linetype})
	i := len(d.layers) - 1
	d.layerIdx[name] = i
	return i
}

// RegisterStyle adds a text style to the document's style table.
// Registering an existing style is a no-op.
func (d *Document) RegisterStyle(name string) {
	if name == "" || d.styleSet[name] {
		return
	}
	d.styleSet[name] = true
	d.styles = append(d.styles, name)
}

// HasStyle reports whether a text style is registered.
func (d *Document) HasStyle(name string) bool { return d.styleSet[name] }

// TextStyles returns the registered text style names in registration order.
func (d *Document) TextStyles() []string {
	return append([]string(nil), d.styles...)
}

// Paper returns the document sheet.
func (d *Document) Paper() Paper { return d.paper }

// Config returns the standards snapshot the document was created with.
func (d *Document) Config() *Config { return d.cfg }

// Layers returns the layer table in registration order.
func (d *Document) Layers() []Layer {
	return append([]Layer(nil), d.layers...)
}

// LineTypes returns the linetype table names in registration order.
func (d *Document) LineTypes() []string {
	return append([]string(nil), d.ltNames...)
}

// LineType returns a linetype definition from the document table.
func (d *Document) LineType(name string) (LineStyle, bool) {
	s, ok := d.lineTypes[name]
	return s, ok
}

// Len returns the number of recorded entities.
func (d *Document) Len() int { return len(d.entities) }

// Entity returns the recorded entity for a handle, or nil if the handle
// is invalid.
func (d *Document) Entity(h Handle) Entity {
	if !h.IsValid() || int(h) >= len(d.entities) {
		return nil
	}
	return d.entities[h]
}

// append records an entity and returns its handle.
func (d *Document) append(e Entity) Handle {
	d.entities = append(d.entities, e)
	return Handle(len(d.entities) - 1)
}

// attr builds entity attributes, registering the layer on first use.
func (d *Document) attr(layer, linetype string) Attr {
	if layer == "" {
		layer = "0"
	}
	d.ensureLayer(layer, "")
	return Attr{Layer: layer, LineType: linetype}
}

// AddLine records a straight segment.
func (d *Document) AddLine(start, end Point, layer, linetype string) (Handle, error) {
	return d.append(&Line{Start: start, End: end, Attr: d.attr(layer, linetype)}), nil
}

// AddCircle records a circle.
func (d *Document) AddCircle(center Point, radius float64, layer string) (Handle, error) {
	return d.append(&Circle{Center: center, Radius: radius, Attr: d.attr(layer, "")}), nil
}

// AddArc records a circular arc. Angles are degrees.
func (d *Document) AddArc(center Point, radius, startAngle, endAngle float64, layer string) (Handle, error) {
	return d.append(&Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Attr:       d.attr(layer, ""),
	}), nil
}

// AddEllipse records an ellipse or elliptical arc. Parameters are radians.
func (d *Document) AddEllipse(center, majorAxis Point, ratio, startParam, endParam float64, layer string) (Handle, error) {
	return d.append(&Ellipse{
		Center:     center,
		MajorAxis:  majorAxis,
		Ratio:      ratio,
		StartParam: startParam,
		EndParam:   endParam,
		Attr:       d.attr(layer, ""),
	}), nil
}

// AddPolyline records a polyline. The points slice is copied.
func (d *Document) AddPolyline(points []Point, closed bool, layer string) (Handle, error) {
	pts := append([]Point(nil), points...)
	return d.append(&Polyline{Points: pts, Closed: closed, Attr: d.attr(layer, "")}), nil
}

// AddSpline records a spline through the given control points.
func (d *Document) AddSpline(points []Point, degree int, layer string) (Handle, error) {
	pts := append([]Point(nil), points...)
	return d.append(&Spline{Points: pts, Degree: degree, Attr: d.attr(layer, "")}), nil
}

// AddHatch records a pattern-filled region. The boundary loop is closed
// by appending the first point as the last.
func (d *Document) AddHatch(points []Point, pattern string, scale float64, layer string) (Handle, error) {
	boundary := make([]Point, 0, len(points)+1)
	boundary = append(boundary, points...)
	if len(points) > 0 {
		boundary = append(boundary, points[0])
	}
	return d.append(&Hatch{
		Boundary: boundary,
		Pattern:  pattern,
		Scale:    scale,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddSolid records a filled triangle.
func (d *Document) AddSolid(p1, p2, p3 Point, layer string) (Handle, error) {
	return d.append(&Solid{P1: p1, P2: p2, P3: p3, Attr: d.attr(layer, "")}), nil
}

// AddText records a single-line text placement. An empty style selects
// the document's standard text style.
func (d *Document) AddText(text string, position Point, height float64, layer, style string, halign HAlign, valign VAlign) (Handle, error) {
	if style == "" {
		style = d.textStyle
	}
	return d.append(&Text{
		Value:    text,
		Position: position,
		Height:   height,
		Style:    style,
		HAlign:   halign,
		VAlign:   valign,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddLinearDim records a linear dimension. Angle is radians.
func (d *Document) AddLinearDim(base, p1, p2 Point, angle float64, text, style string, override DimOverride, layer string) (Handle, error) {
	if style == "" {
		style = "Standard"
	}
	return d.append(&LinearDim{
		Base: base, P1: p1, P2: p2,
		Angle:    angle,
		Text:     text,
		Style:    style,
		Override: override,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddAlignedDim records an aligned dimension.
func (d *Document) AddAlignedDim(p1, p2 Point, distance float64, text, style string, override DimOverride, layer string) (Handle, error) {
	if style == "" {
		style = "Standard"
	}
	return d.append(&AlignedDim{
		P1: p1, P2: p2,
		Distance: distance,
		Text:     text,
		Style:    style,
		Override: override,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddRadiusDim records a radius dimension. Angle is radians.
func (d *Document) AddRadiusDim(center Point, radius, angle float64, text, style string, override DimOverride, layer string) (Handle, error) {
	if style == "" {
		style = "Standard"
	}
	return d.append(&RadiusDim{
		Center:   center,
		Radius:   radius,
		Angle:    angle,
		Text:     text,
		Style:    style,
		Override: override,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddDiameterDim records a diameter dimension. Angle is radians.
func (d *Document) AddDiameterDim(center Point, radius, angle float64, text, style string, override DimOverride, layer string) (Handle, error) {
	if style == "" {
		style = "Standard"
	}
	return d.append(&DiameterDim{
		Center:   center,
		Radius:   radius,
		Angle:    angle,
		Text:     text,
		Style:    style,
		Override: override,
		Attr:     d.attr(layer, ""),
	}), nil
}

// AddAngularDim records an angular dimension between the rays
// vertex→p1 and vertex→p2.
func (d *Document) AddAngularDim(vertex, p1, p2 Point, text, style string, override DimOverride, layer string) (Handle, error) {
	if style == "" {
		style = "Standard"
	}
	return d.append(&AngularDim{
		Vertex: vertex, P1: p1, P2: p2,
		Text:     text,
		Style:    style,
		Override: override,
		Attr:     d.attr(layer, ""),
	}), nil
}

// Replay streams every recorded entity into the backend in recording
// order, bracketed by Begin and End. The first backend error aborts the
// replay; entities already emitted are not rolled back.
func (d *Document) Replay(b Backend) error {
	if err := b.Begin(d); err != nil {
		return err
	}
	for _, e := range d.entities {
		if err := Dispatch(b, e); err != nil {
			return err
		}
	}
	if err := b.End(); err != nil {
		return err
	}
	Logger().Debug("document replayed", "entities", len(d.entities))
	return nil
}

var _ Canvas = (*Document)(nil)
