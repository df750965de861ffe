// Package dxf writes documents as ASCII DXF R12, the oldest exchange
// format the common CAD tools still read. The layer, linetype and text
// style tables are generated from the document tables; entities DXF R12
// does not know (ellipses, splines, hatches, dimensions) are exploded
// into polylines, lines, solids and text before emission.
package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mechdraw/mechdraw"
)

// Name is the registry name of the backend.
const Name = "dxf"

// init registers the backend on package import.
func init() {
	mechdraw.RegisterBackend(Name, func(w io.Writer) mechdraw.Backend { return New(w) })
}

// Writer emits one document as a DXF R12 stream. The zero value is not
// usable; create writers with New. Write errors are sticky: the first
// failure suppresses all further output and is reported by End.
type Writer struct {
	w   *bufio.Writer
	doc *mechdraw.Document
	dim mechdraw.DimStyle
	err error
}

var _ mechdraw.Backend = (*Writer)(nil)

// New creates a DXF writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// num formats a DXF float value, shortest form that round-trips.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// code writes one group code / value pair.
func (wr *Writer) code(g int, v string) {
	if wr.err != nil {
		return
	}
	_, wr.err = fmt.Fprintf(wr.w, "%d\n%s\n", g, v)
}

func (wr *Writer) codef(g int, v float64) { wr.code(g, num(v)) }

func (wr *Writer) codei(g int, v int) { wr.code(g, strconv.Itoa(v)) }

// entity starts an entity record with its layer and linetype override.
func (wr *Writer) entity(name string, attr mechdraw.Attr) {
	wr.code(0, name)
	wr.code(8, attr.Layer)
	if attr.LineType != "" {
		wr.code(6, attr.LineType)
	}
}

// point writes a 2D point as the given base group code pair.
func (wr *Writer) point(base int, p mechdraw.Point) {
	wr.codef(base, p.X)
	wr.codef(base+10, p.Y)
}

// Begin writes the header and tables sections and opens ENTITIES.
func (wr *Writer) Begin(doc *mechdraw.Document) error {
	wr.doc = doc
	wr.dim = mechdraw.DefaultDimStyle(doc.Config())
	paper := doc.Paper()

	wr.code(0, "SECTION")
	wr.code(2, "HEADER")
	wr.code(9, "$ACADVER")
	wr.code(1, "AC1009")
	wr.code(9, "$EXTMIN")
	wr.codef(10, 0)
	wr.codef(20, 0)
	wr.codef(30, 0)
	wr.code(9, "$EXTMAX")
	wr.codef(10, paper.Width)
	wr.codef(20, paper.Height)
	wr.codef(30, 0)
	wr.code(0, "ENDSEC")

	wr.tables()

	wr.code(0, "SECTION")
	wr.code(2, "ENTITIES")
	return wr.err
}

// tables writes the LTYPE, LAYER and STYLE tables from the document.
func (wr *Writer) tables() {
	wr.code(0, "SECTION")
	wr.code(2, "TABLES")

	names := wr.doc.LineTypes()
	wr.code(0, "TABLE")
	wr.code(2, "LTYPE")
	wr.codei(70, len(names))
	for _, name := range names {
		style, _ := wr.doc.LineType(name)
		wr.code(0, "LTYPE")
		wr.code(2, name)
		wr.codei(70, 64)
		wr.code(3, style.Description)
		wr.codei(72, 65)
		wr.codei(73, len(style.Pattern))
		wr.codef(40, style.PatternLength())
		for _, l := range style.Pattern {
			wr.codef(49, l)
		}
	}
	wr.code(0, "ENDTAB")

	layers := wr.doc.Layers()
	wr.code(0, "TABLE")
	wr.code(2, "LAYER")
	wr.codei(70, len(layers))
	for _, l := range layers {
		wr.code(0, "LAYER")
		wr.code(2, l.Name)
		wr.codei(70, 64)
		wr.codei(62, l.Color)
		wr.code(6, l.LineType)
	}
	wr.code(0, "ENDTAB")

	styles := wr.doc.TextStyles()
	if !wr.doc.HasStyle("Standard") {
		styles = append([]string{"Standard"}, styles...)
	}
	wr.code(0, "TABLE")
	wr.code(2, "STYLE")
	wr.codei(70, len(styles))
	for _, s := range styles {
		wr.code(0, "STYLE")
		wr.code(2, s)
		wr.codei(70, 64)
		wr.codef(40, 0)
		wr.codef(41, 1)
		wr.codef(50, 0)
		wr.codei(71, 0)
		wr.codef(42, 2.5)
		wr.code(3, "gbenor.shx")
		wr.code(4, "gbcbig.shx")
	}
	wr.code(0, "ENDTAB")

	wr.code(0, "ENDSEC")
}

// Line writes a LINE entity.
func (wr *Writer) Line(e *mechdraw.Line) error {
	wr.entity("LINE", e.Attr)
	wr.point(10, e.Start)
	wr.point(11, e.End)
	return wr.err
}

// Circle writes a CIRCLE entity.
func (wr *Writer) Circle(e *mechdraw.Circle) error {
	wr.entity("CIRCLE", e.Attr)
	wr.point(10, e.Center)
	wr.codef(40, e.Radius)
	return wr.err
}

// Arc writes an ARC entity. DXF arc angles are degrees counter-clockwise,
// matching the entity.
func (wr *Writer) Arc(e *mechdraw.Arc) error {
	wr.entity("ARC", e.Attr)
	wr.point(10, e.Center)
	wr.codef(40, e.Radius)
	wr.codef(50, e.StartAngle)
	wr.codef(51, e.EndAngle)
	return wr.err
}

// Ellipse writes an ellipse. R12 has no ellipse entity, so the sampled
// chain is emitted as a polyline.
func (wr *Writer) Ellipse(e *mechdraw.Ellipse) error {
	return wr.chain(mechdraw.SampleEllipse(e), false, 0, e.Attr)
}

// Polyline writes a POLYLINE entity with its vertices.
func (wr *Writer) Polyline(e *mechdraw.Polyline) error {
	return wr.chain(e.Points, e.Closed, 0, e.Attr)
}

// Spline writes a spline as its control polygon with the spline-fit
// flag set, the R12 spline representation.
func (wr *Writer) Spline(e *mechdraw.Spline) error {
	return wr.chain(e.Points, false, 4, e.Attr)
}

// Hatch writes a hatch region. R12 has no hatch entity, so the boundary
// is emitted as a closed polyline followed by the flattened section
// lines.
func (wr *Writer) Hatch(e *mechdraw.Hatch) error {
	pts := e.Boundary
	if n := len(pts); n > 1 && pts[0] == pts[n-1] {
		pts = pts[:n-1]
	}
	if err := wr.chain(pts, true, 0, e.Attr); err != nil {
		return err
	}
	for _, fe := range mechdraw.FlattenHatch(e) {
		if err := mechdraw.Dispatch(wr, fe); err != nil {
			return err
		}
	}
	return wr.err
}

// Solid writes a filled triangle as a SOLID entity. The fourth corner
// repeats the third, the DXF convention for triangular solids.
func (wr *Writer) Solid(e *mechdraw.Solid) error {
	wr.entity("SOLID", e.Attr)
	wr.point(10, e.P1)
	wr.point(11, e.P2)
	wr.point(12, e.P3)
	wr.point(13, e.P3)
	return wr.err
}

// Text writes a TEXT entity. When the placement is aligned, the
// position is repeated as the alignment point the way DXF expects.
func (wr *Writer) Text(e *mechdraw.Text) error {
	wr.entity("TEXT", e.Attr)
	wr.point(10, e.Position)
	wr.codef(40, e.Height)
	wr.code(1, e.Value)
	if e.Rotation != 0 {
		wr.codef(50, e.Rotation)
	}
	if e.Style != "" {
		wr.code(7, e.Style)
	}
	if e.HAlign != mechdraw.HLeft || e.VAlign != mechdraw.VBaseline {
		wr.codei(72, int(e.HAlign))
		wr.codei(73, int(e.VAlign))
		wr.point(11, e.Position)
	}
	return wr.err
}

// LinearDim explodes the dimension into primitives.
func (wr *Writer) LinearDim(e *mechdraw.LinearDim) error { return wr.flatten(e) }

// AlignedDim explodes the dimension into primitives.
func (wr *Writer) AlignedDim(e *mechdraw.AlignedDim) error { return wr.flatten(e) }

// RadiusDim explodes the dimension into primitives.
func (wr *Writer) RadiusDim(e *mechdraw.RadiusDim) error { return wr.flatten(e) }

// DiameterDim explodes the dimension into primitives.
func (wr *Writer) DiameterDim(e *mechdraw.DiameterDim) error { return wr.flatten(e) }

// AngularDim explodes the dimension into primitives.
func (wr *Writer) AngularDim(e *mechdraw.AngularDim) error { return wr.flatten(e) }

// flatten expands a dimension entity and feeds the primitives back
// through the dispatcher.
func (wr *Writer) flatten(e mechdraw.Entity) error {
	prims, ok := mechdraw.FlattenDim(e, wr.dim)
	if !ok {
		return fmt.Errorf("dxf: entity %v is not a dimension", e.Kind())
	}
	for _, p := range prims {
		if err := mechdraw.Dispatch(wr, p); err != nil {
			return err
		}
	}
	return wr.err
}

// chain emits a point chain as a POLYLINE / VERTEX / SEQEND sequence.
func (wr *Writer) chain(pts []mechdraw.Point, closed bool, flags int, attr mechdraw.Attr) error {
	wr.entity("POLYLINE", attr)
	wr.codei(66, 1)
	if closed {
		flags |= 1
	}
	wr.codei(70, flags)
	for _, p := range pts {
		wr.code(0, "VERTEX")
		wr.code(8, attr.Layer)
		wr.point(10, p)
	}
	wr.code(0, "SEQEND")
	wr.code(8, attr.Layer)
	return wr.err
}

// End closes the entities section, writes the end-of-file marker and
// flushes the stream.
func (wr *Writer) End() error {
	wr.code(0, "ENDSEC")
	wr.code(0, "EOF")
	if wr.err != nil {
		return wr.err
	}
	return wr.w.Flush()
}
