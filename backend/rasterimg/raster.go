// Package rasterimg renders documents into PNG images. Strokes are
// tessellated into quadrilaterals and filled through the x/image
// vector rasterizer, so thin GB linework stays antialiased at screen
// densities. Labels use the 7x13 bitmap face; runes outside its
// coverage render as placeholder boxes sized by their East-Asian
// display width.
package rasterimg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/text/width"

	"github.com/mechdraw/mechdraw"
)

// Name is the registry name of the backend.
const Name = "png"

// DefaultPixelsPerMM is the raster density used by the registered
// factory: 4 px/mm, about 102 dpi, 1680x1188 pixels for an A3 sheet.
const DefaultPixelsPerMM = 4

// dotLen is the tick length substituted for linetype dots, in
// millimeters.
const dotLen = 0.5

// init registers the backend on package import.
func init() {
	mechdraw.RegisterBackend(Name, func(w io.Writer) mechdraw.Backend { return New(w) })
}

// Renderer rasterizes one document and encodes it as PNG on End.
type Renderer struct {
	w    io.Writer
	ppmm float64

	doc    *mechdraw.Document
	dim    mechdraw.DimStyle
	img    *image.RGBA
	ras    *vector.Rasterizer
	height float64

	colors    map[string]color.RGBA
	weights   map[string]float64
	linetypes map[string]string
}

var _ mechdraw.Backend = (*Renderer)(nil)

// New creates a PNG renderer at the default density.
func New(w io.Writer) *Renderer {
	return NewScaled(w, DefaultPixelsPerMM)
}

// NewScaled creates a PNG renderer at the given density in pixels per
// millimeter. Densities at or below zero fall back to the default.
func NewScaled(w io.Writer, pixelsPerMM float64) *Renderer {
	if pixelsPerMM <= 0 {
		pixelsPerMM = DefaultPixelsPerMM
	}
	return &Renderer{w: w, ppmm: pixelsPerMM}
}

// Begin allocates the white sheet image and the per-layer stroke
// tables.
func (r *Renderer) Begin(doc *mechdraw.Document) error {
	r.doc = doc
	r.dim = mechdraw.DefaultDimStyle(doc.Config())
	paper := doc.Paper()
	r.height = paper.Height

	w := int(math.Ceil(paper.Width * r.ppmm))
	h := int(math.Ceil(paper.Height * r.ppmm))
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(r.img, r.img.Bounds(), image.White, image.Point{}, draw.Src)
	r.ras = vector.NewRasterizer(w, h)

	cfg := doc.Config()
	layers := doc.Layers()
	r.colors = make(map[string]color.RGBA, len(layers))
	r.weights = make(map[string]float64, len(layers))
	r.linetypes = make(map[string]string, len(layers))
	for _, l := range layers {
		r.colors[l.Name] = aciColor(l.Color)
		r.linetypes[l.Name] = l.LineType
		tag := "THIN"
		if containsThick(l.Name) {
			tag = "MEDIUM"
		}
		weight, ok := cfg.LineWeight(tag)
		if !ok {
			weight = 0.25
		}
		r.weights[l.Name] = weight
	}
	return nil
}

// containsThick reports whether a GB physical layer name marks the
// thick-line class.
func containsThick(layer string) bool {
	for _, c := range layer {
		if c == '粗' {
			return true
		}
	}
	return false
}

// aciColor maps an AutoCAD color index to an RGBA color. Index 7 is
// the foreground color, black on a white sheet.
func aciColor(i int) color.RGBA {
	switch i {
	case 1:
		return color.RGBA{R: 0xff, A: 0xff}
	case 2:
		return color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	case 3:
		return color.RGBA{G: 0xff, A: 0xff}
	case 4:
		return color.RGBA{G: 0xff, B: 0xff, A: 0xff}
	case 5:
		return color.RGBA{B: 0xff, A: 0xff}
	case 6:
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	case 8:
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	case 9:
		return color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
	default:
		return color.RGBA{A: 0xff}
	}
}

// px converts a drawing point to pixel coordinates, flipping Y into
// the image top-left origin.
func (r *Renderer) px(p mechdraw.Point) (x, y float32) {
	return float32(p.X * r.ppmm), float32((r.height - p.Y) * r.ppmm)
}

// layerColor returns the stroke color for a layer.
func (r *Renderer) layerColor(layer string) color.RGBA {
	if c, ok := r.colors[layer]; ok {
		return c
	}
	return color.RGBA{A: 0xff}
}

// layerWidth returns the stroke width for a layer in millimeters.
func (r *Renderer) layerWidth(layer string) float64 {
	if w, ok := r.weights[layer]; ok {
		return w
	}
	return 0.25
}

// pattern resolves the dash pattern for an entity in millimeters:
// the entity linetype override when set, the layer linetype otherwise.
// Continuous strokes return nil.
func (r *Renderer) pattern(attr mechdraw.Attr) []float64 {
	name := attr.LineType
	if name == "" {
		name = r.linetypes[attr.Layer]
	}
	style, ok := r.doc.LineType(name)
	if !ok || style.IsContinuous() {
		return nil
	}
	dashes := style.Dashes(dotLen)
	var total float64
	for _, d := range dashes {
		total += d
	}
	if total <= 0 {
		return nil
	}
	return dashes
}

// strokeChain rasterizes a point chain as butt-capped stroked
// segments, dashed per the entity's pattern, and paints it in the
// layer color.
func (r *Renderer) strokeChain(pts []mechdraw.Point, attr mechdraw.Attr) error {
	if len(pts) < 2 {
		return nil
	}
	half := r.layerWidth(attr.Layer) * r.ppmm / 2
	for _, seg := range dashChain(pts, r.pattern(attr)) {
		r.quad(seg[0], seg[1], half)
	}
	r.paint(r.layerColor(attr.Layer))
	return nil
}

// dashChain splits a point chain into drawn segments per the dash
// pattern, the phase carrying across vertices so sampled curves dash
// evenly. A nil pattern passes the chain through whole.
func dashChain(pts []mechdraw.Point, pattern []float64) [][2]mechdraw.Point {
	var out [][2]mechdraw.Point
	if len(pattern) == 0 {
		for i := 0; i+1 < len(pts); i++ {
			out = append(out, [2]mechdraw.Point{pts[i], pts[i+1]})
		}
		return out
	}
	idx, remain, drawing := 0, pattern[0], true
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		pos := 0.0
		for pos < segLen {
			if remain <= 0 {
				idx = (idx + 1) % len(pattern)
				remain = pattern[idx]
				drawing = !drawing
				continue
			}
			step := math.Min(remain, segLen-pos)
			if drawing {
				out = append(out, [2]mechdraw.Point{
					a.Lerp(b, pos/segLen),
					a.Lerp(b, (pos+step)/segLen),
				})
			}
			pos += step
			remain -= step
		}
	}
	return out
}

// quad accumulates one stroked segment as a filled quadrilateral.
func (r *Renderer) quad(a, b mechdraw.Point, half float64) {
	ax, ay := r.px(a)
	bx, by := r.px(b)
	dx, dy := float64(bx-ax), float64(by-ay)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx := float32(-dy / l * half)
	ny := float32(dx / l * half)
	r.ras.MoveTo(ax+nx, ay+ny)
	r.ras.LineTo(bx+nx, by+ny)
	r.ras.LineTo(bx-nx, by-ny)
	r.ras.LineTo(ax-nx, ay-ny)
	r.ras.ClosePath()
}

// paint fills the accumulated coverage with the given color and
// resets the rasterizer for the next entity.
func (r *Renderer) paint(c color.RGBA) {
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
	r.ras.Reset(r.img.Bounds().Dx(), r.img.Bounds().Dy())
}

// arcPoints samples a circular arc into a point chain. Angles are
// degrees counter-clockwise, full revolutions sample 64 segments.
func arcPoints(center mechdraw.Point, radius, startDeg, endDeg float64) []mechdraw.Point {
	sweep := endDeg - startDeg
	for sweep <= 0 {
		sweep += 360
	}
	if sweep > 360 {
		sweep = 360
	}
	n := int(math.Ceil(sweep / 360 * 64))
	if n < 8 {
		n = 8
	}
	pts := make([]mechdraw.Point, n+1)
	for i := 0; i <= n; i++ {
		a := (startDeg + sweep*float64(i)/float64(n)) * math.Pi / 180
		pts[i] = center.Polar(a, radius)
	}
	return pts
}

// Line strokes a straight segment.
func (r *Renderer) Line(e *mechdraw.Line) error {
	return r.strokeChain([]mechdraw.Point{e.Start, e.End}, e.Attr)
}

// Circle strokes a full circle.
func (r *Renderer) Circle(e *mechdraw.Circle) error {
	return r.strokeChain(arcPoints(e.Center, e.Radius, 0, 360), e.Attr)
}

// Arc strokes a circular arc.
func (r *Renderer) Arc(e *mechdraw.Arc) error {
	return r.strokeChain(arcPoints(e.Center, e.Radius, e.StartAngle, e.EndAngle), e.Attr)
}

// Ellipse strokes the sampled ellipse chain.
func (r *Renderer) Ellipse(e *mechdraw.Ellipse) error {
	return r.strokeChain(mechdraw.SampleEllipse(e), e.Attr)
}

// Polyline strokes a segment chain, closing it when the entity is
// closed.
func (r *Renderer) Polyline(e *mechdraw.Polyline) error {
	pts := e.Points
	if e.Closed && len(pts) > 1 {
		pts = append(append([]mechdraw.Point(nil), pts...), pts[0])
	}
	return r.strokeChain(pts, e.Attr)
}

// Spline strokes the sampled spline curve.
func (r *Renderer) Spline(e *mechdraw.Spline) error {
	return r.strokeChain(mechdraw.SampleSpline(e), e.Attr)
}

// Hatch strokes the boundary and the flattened section lines.
func (r *Renderer) Hatch(e *mechdraw.Hatch) error {
	if err := r.strokeChain(e.Boundary, e.Attr); err != nil {
		return err
	}
	for _, fe := range mechdraw.FlattenHatch(e) {
		if err := mechdraw.Dispatch(r, fe); err != nil {
			return err
		}
	}
	return nil
}

// Solid fills a triangle in the layer color.
func (r *Renderer) Solid(e *mechdraw.Solid) error {
	x1, y1 := r.px(e.P1)
	x2, y2 := r.px(e.P2)
	x3, y3 := r.px(e.P3)
	r.ras.MoveTo(x1, y1)
	r.ras.LineTo(x2, y2)
	r.ras.LineTo(x3, y3)
	r.ras.ClosePath()
	r.paint(r.layerColor(e.Attr.Layer))
	return nil
}

// Text draws a label with the 7x13 bitmap face at the entity's
// alignment point. The requested height is ignored; the face is a
// fixed-size bitmap.
func (r *Renderer) Text(e *mechdraw.Text) error {
	face := basicfont.Face7x13
	total := 0
	for _, c := range e.Value {
		total += advance(c)
	}

	x, y := r.px(e.Position)
	dx := 0
	switch e.HAlign {
	case mechdraw.HCenter:
		dx = -total / 2
	case mechdraw.HRight:
		dx = -total
	}
	asc := face.Metrics().Ascent.Ceil()
	baseline := int(y)
	switch e.VAlign {
	case mechdraw.VMiddle:
		baseline += asc / 2
	case mechdraw.VTop:
		baseline += asc
	}

	col := r.layerColor(e.Attr.Layer)
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(int(x)+dx, baseline),
	}
	for _, c := range e.Value {
		if isWide(c) {
			r.runeBox(d.Dot, col)
			d.Dot.X += fixed.I(advance(c))
			continue
		}
		d.DrawString(string(c))
	}
	return nil
}

// advance returns the pen advance for one rune in pixels.
func advance(c rune) int {
	if isWide(c) {
		return 13
	}
	return 7
}

// isWide reports whether a rune occupies a full-width cell.
func isWide(c rune) bool {
	switch width.LookupRune(c).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// runeBox draws the placeholder outline for a glyph the bitmap face
// does not cover.
func (r *Renderer) runeBox(dot fixed.Point26_6, c color.RGBA) {
	x := dot.X.Floor()
	y := dot.Y.Floor()
	for i := 1; i < 12; i++ {
		r.img.SetRGBA(x+i, y-10, c)
		r.img.SetRGBA(x+i, y-1, c)
	}
	for j := -10; j <= -1; j++ {
		r.img.SetRGBA(x+1, y+j, c)
		r.img.SetRGBA(x+12, y+j, c)
	}
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
		return fmt.Errorf("rasterimg: entity %v is not a dimension", e.Kind())
	}
	for _, p := range prims {
		if err := mechdraw.Dispatch(r, p); err != nil {
			return err
		}
	}
	return nil
}

// End encodes the sheet as PNG.
func (r *Renderer) End() error {
	if r.img == nil {
		return fmt.Errorf("rasterimg: End called before Begin")
	}
	return png.Encode(r.w, r.img)
}
