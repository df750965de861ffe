// Package svg renders documents as SVG. The page is sized in
// millimeters and the view box maps user units to microns, so every
// coordinate is an integer and curves stay smooth without decimal
// output. Layers become stroke styles: color from the AutoCAD color
// index, width from the GB line weight classes, dash arrays from the
// linetype patterns.
package svg

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/mechdraw/mechdraw"
)

// Name is the registry name of the backend.
const Name = "svg"

// scale is the user-unit density in units per millimeter.
const scale = 1000

// dotLen is the tick length substituted for linetype dots, in
// millimeters.
const dotLen = 0.5

// init registers the backend on package import.
func init() {
	mechdraw.RegisterBackend(Name, func(w io.Writer) mechdraw.Backend { return New(w) })
}

// Renderer emits one document as an SVG image. The svgo canvas has no
// error returns, so write failures are captured by a wrapping writer
// and reported by End.
type Renderer struct {
	ew     *errWriter
	canvas *svgo.SVG
	doc    *mechdraw.Document
	dim    mechdraw.DimStyle
	height float64
	styles map[string]string
	colors map[string]string
}

var _ mechdraw.Backend = (*Renderer)(nil)

// errWriter makes the first write failure sticky.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// New creates an SVG renderer emitting to w.
func New(w io.Writer) *Renderer {
	ew := &errWriter{w: w}
	return &Renderer{ew: ew, canvas: svgo.New(ew)}
}

// mm converts millimeters to integer user units.
func mm(v float64) int {
	return int(math.Round(v * scale))
}

// num formats a float attribute value, shortest form that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// px converts a drawing point to user units, flipping Y into the SVG
// top-left origin.
func (r *Renderer) px(p mechdraw.Point) (x, y int) {
	return mm(p.X), mm(r.height - p.Y)
}

// Begin opens the SVG document: page size, white sheet and the layer
// style table.
func (r *Renderer) Begin(doc *mechdraw.Document) error {
	r.doc = doc
	r.dim = mechdraw.DefaultDimStyle(doc.Config())
	paper := doc.Paper()
	r.height = paper.Height

	w := int(math.Round(paper.Width))
	h := int(math.Round(paper.Height))
	r.canvas.Startunit(w, h, "mm",
		fmt.Sprintf(`viewBox="0 0 %d %d"`, mm(paper.Width), mm(paper.Height)))
	r.canvas.Title(paper.Name)
	r.canvas.Rect(0, 0, mm(paper.Width), mm(paper.Height), "fill:#ffffff")

	layers := doc.Layers()
	r.styles = make(map[string]string, len(layers))
	r.colors = make(map[string]string, len(layers))
	for _, l := range layers {
		r.colors[l.Name] = aciColor(l.Color)
		r.styles[l.Name] = fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d",
			aciColor(l.Color), r.strokeWidth(l.Name)) + r.dashFragment(l.LineType)
	}
	return r.ew.err
}

// strokeWidth returns the stroke width in user units: the GB medium
// weight for thick-line layers, the thin weight otherwise.
func (r *Renderer) strokeWidth(layer string) int {
	tag := "THIN"
	if strings.Contains(layer, "粗") {
		tag = "MEDIUM"
	}
	w, ok := r.doc.Config().LineWeight(tag)
	if !ok {
		w = 0.25
	}
	return mm(w)
}

// dashFragment renders a linetype pattern as a stroke-dasharray style
// fragment, empty for continuous linetypes.
func (r *Renderer) dashFragment(name string) string {
	style, ok := r.doc.LineType(name)
	if !ok || style.IsContinuous() {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(";stroke-dasharray:")
	for i, d := range style.Dashes(dotLen) {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", mm(d))
	}
	return sb.String()
}

// style resolves the stroke style for an entity: its layer style, with
// the dash pattern replaced when the entity overrides the linetype.
func (r *Renderer) style(attr mechdraw.Attr) string {
	base, ok := r.styles[attr.Layer]
	if !ok {
		base = "fill:none;stroke:#000000;stroke-width:250"
	}
	if attr.LineType == "" {
		return base
	}
	if i := strings.Index(base, ";stroke-dasharray:"); i >= 0 {
		base = base[:i]
	}
	return base + r.dashFragment(attr.LineType)
}

// fill returns the solid fill style for an entity on its layer color.
func (r *Renderer) fill(attr mechdraw.Attr) string {
	color, ok := r.colors[attr.Layer]
	if !ok {
		color = "#000000"
	}
	return "fill:" + color + ";stroke:none"
}

// aciColor maps an AutoCAD color index to a hex color. Index 7 is the
// foreground color, black on a white sheet.
func aciColor(i int) string {
	switch i {
	case 1:
		return "#ff0000"
	case 2:
		return "#ffff00"
	case 3:
		return "#00ff00"
	case 4:
		return "#00ffff"
	case 5:
		return "#0000ff"
	case 6:
		return "#ff00ff"
	case 8:
		return "#808080"
	case 9:
		return "#c0c0c0"
	default:
		return "#000000"
	}
}

// Line draws a straight segment.
func (r *Renderer) Line(e *mechdraw.Line) error {
	x1, y1 := r.px(e.Start)
	x2, y2 := r.px(e.End)
	r.canvas.Line(x1, y1, x2, y2, r.style(e.Attr))
	return r.ew.err
}

// Circle draws a full circle.
func (r *Renderer) Circle(e *mechdraw.Circle) error {
	x, y := r.px(e.Center)
	r.canvas.Circle(x, y, mm(e.Radius), r.style(e.Attr))
	return r.ew.err
}

// Arc draws a circular arc. The entity runs counter-clockwise in
// drawing space, which the Y flip turns into a negative-angle SVG
// sweep.
func (r *Renderer) Arc(e *mechdraw.Arc) error {
	sweep := e.EndAngle - e.StartAngle
	for sweep <= 0 {
		sweep += 360
	}
	if sweep >= 360 {
		return r.Circle(&mechdraw.Circle{Center: e.Center, Radius: e.Radius, Attr: e.Attr})
	}
	x1, y1 := r.px(e.Center.Polar(e.StartAngle*math.Pi/180, e.Radius))
	x2, y2 := r.px(e.Center.Polar(e.EndAngle*math.Pi/180, e.Radius))
	rr := mm(e.Radius)
	r.canvas.Arc(x1, y1, rr, rr, 0, sweep > 180, false, x2, y2, r.style(e.Attr))
	return r.ew.err
}

// Ellipse draws an ellipse. Full ellipses map onto the native element,
// rotated when the major axis is; partial spans are sampled.
func (r *Renderer) Ellipse(e *mechdraw.Ellipse) error {
	sweep := e.EndParam - e.StartParam
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if sweep < 2*math.Pi-1e-9 {
		return r.polyline(mechdraw.SampleEllipse(e), false, e.Attr)
	}
	cx, cy := r.px(e.Center)
	major := e.MajorAxis.Length()
	rx, ry := mm(major), mm(major*e.Ratio)
	if angle := e.MajorAxis.Angle(); angle != 0 {
		r.canvas.Gtransform(fmt.Sprintf("rotate(%s,%d,%d)", num(-angle*180/math.Pi), cx, cy))
		r.canvas.Ellipse(cx, cy, rx, ry, r.style(e.Attr))
		r.canvas.Gend()
	} else {
		r.canvas.Ellipse(cx, cy, rx, ry, r.style(e.Attr))
	}
	return r.ew.err
}

// Polyline draws a segment chain, closed chains as polygons.
func (r *Renderer) Polyline(e *mechdraw.Polyline) error {
	return r.polyline(e.Points, e.Closed, e.Attr)
}

// Spline draws the sampled spline curve.
func (r *Renderer) Spline(e *mechdraw.Spline) error {
	return r.polyline(mechdraw.SampleSpline(e), false, e.Attr)
}

// Hatch draws the boundary polygon and the flattened section lines.
func (r *Renderer) Hatch(e *mechdraw.Hatch) error {
	pts := e.Boundary
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if err := r.polyline(pts, true, e.Attr); err != nil {
		return err
	}
	for _, fe := range mechdraw.FlattenHatch(e) {
		if err := mechdraw.Dispatch(r, fe); err != nil {
			return err
		}
	}
	return r.ew.err
}

// Solid draws a filled triangle.
func (r *Renderer) Solid(e *mechdraw.Solid) error {
	x1, y1 := r.px(e.P1)
	x2, y2 := r.px(e.P2)
	x3, y3 := r.px(e.P3)
	r.canvas.Polygon([]int{x1, x2, x3}, []int{y1, y2, y3}, r.fill(e.Attr))
	return r.ew.err
}

// Text draws a single-line text placement.
func (r *Renderer) Text(e *mechdraw.Text) error {
	x, y := r.px(e.Position)
	style := r.textStyle(e)
	if e.Rotation != 0 {
		r.canvas.Gtransform(fmt.Sprintf("rotate(%s,%d,%d)", num(-e.Rotation), x, y))
		r.canvas.Text(x, y, e.Value, style)
		r.canvas.Gend()
		return r.ew.err
	}
	r.canvas.Text(x, y, e.Value, style)
	return r.ew.err
}

// textStyle maps a text entity onto SVG font properties. GB drawings
// letter in 仿宋; the fallback families cover systems without it.
func (r *Renderer) textStyle(e *mechdraw.Text) string {
	anchor := "start"
	switch e.HAlign {
	case mechdraw.HCenter:
		anchor = "middle"
	case mechdraw.HRight:
		anchor = "end"
	}
	baseline := "auto"
	switch e.VAlign {
	case mechdraw.VMiddle:
		baseline = "central"
	case mechdraw.VTop:
		baseline = "hanging"
	}
	color, ok := r.colors[e.Attr.Layer]
	if !ok {
		color = "#000000"
	}
	return fmt.Sprintf("fill:%s;font-family:FangSong,SimSun,sans-serif;font-size:%d;text-anchor:%s;dominant-baseline:%s",
		color, mm(e.Height), anchor, baseline)
}

// LinearDim draws the dimension as flattened primitives.
func (r *Renderer) LinearDim(e *mechdraw.LinearDim) error { return r.flatten(e) }

// AlignedDim draws the dimension as flattened primitives.
func (r *Renderer) AlignedDim(e *mechdraw.AlignedDim) error { return r.flatten(e) }

// RadiusDim draws the dimension as flattened primitives.
func (r *Renderer) RadiusDim(e *mechdraw.RadiusDim) error { return r.flatten(e) }

// DiameterDim draws the dimension as flattened primitives.
func (r *Renderer) DiameterDim(e *mechdraw.DiameterDim) error { return r.flatten(e) }

// AngularDim draws the dimension as flattened primitives.
func (r *Renderer) AngularDim(e *mechdraw.AngularDim) error { return r.flatten(e) }

// flatten expands a dimension entity and feeds the primitives back
// through the dispatcher.
func (r *Renderer) flatten(e mechdraw.Entity) error {
	prims, ok := mechdraw.FlattenDim(e, r.dim)
	if !ok {
		return fmt.Errorf("svg: entity %v is not a dimension", e.Kind())
	}
	for _, p := range prims {
		if err := mechdraw.Dispatch(r, p); err != nil {
			return err
		}
	}
	return r.ew.err
}

// polyline draws a point chain, as a polygon when closed.
func (r *Renderer) polyline(pts []mechdraw.Point, closed bool, attr mechdraw.Attr) error {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = r.px(p)
	}
	if closed {
		r.canvas.Polygon(xs, ys, r.style(attr))
	} else {
		r.canvas.Polyline(xs, ys, r.style(attr))
	}
	return r.ew.err
}

// End closes the SVG document and reports any write failure.
func (r *Renderer) End() error {
	r.canvas.End()
	return r.ew.err
}
