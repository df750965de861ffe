package mechdraw

import (
	"math"
	"strconv"
)

// DimStyle carries the rendering parameters used when a dimension
// entity is flattened into primitives: arrow size, measurement text
// height and the gap between dimension line and text.
type DimStyle struct {
	ArrowSize  float64
	TextHeight float64
	Gap        float64
}

// DefaultDimStyle derives a dimension style from a standards snapshot.
// A nil cfg uses DefaultConfig.
func DefaultDimStyle(cfg *Config) DimStyle {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	height, ok := cfg.TextHeight("SUBTITLE")
	if !ok {
		height = 3.5
	}
	return DimStyle{
		ArrowSize:  cfg.ArrowSize(),
		TextHeight: height,
		Gap:        0.625,
	}
}

// FlattenDim expands a dimension entity into the lines, solids, arcs
// and text that draw it, honoring the entity's extension overrides.
// The boolean reports whether e was a dimension entity; other entities
// return (nil, false) and should be passed through unchanged.
//
// Backends without a native dimension object call this and feed the
// primitives back through Dispatch.
func FlattenDim(e Entity, st DimStyle) ([]Entity, bool) {
	switch v := e.(type) {
	case *LinearDim:
		return flattenLinear(v, st), true
	case *AlignedDim:
		return flattenAligned(v, st), true
	case *RadiusDim:
		return flattenRadius(v, st), true
	case *DiameterDim:
		return flattenDiameter(v, st), true
	case *AngularDim:
		return flattenAngular(v, st), true
	default:
		return nil, false
	}
}

// measureText renders a measurement rounded to hundredths, without
// trailing zeros.
func measureText(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// arrow builds a filled arrowhead solid with its tip at tip, pointing
// along dir (unit vector). The wings sit one arrow length behind the
// tip at a sixth of the length to each side.
func arrow(tip, dir Point, size float64, attr Attr) *Solid {
	back := tip.Sub(dir.Mul(size))
	n := dir.Perp().Mul(size / 6)
	return &Solid{P1: tip, P2: back.Add(n), P3: back.Sub(n), Attr: attr}
}

// flattenLinear projects both measured points onto the dimension line
// running through Base at Angle, then draws extension lines, the
// dimension line with inward-facing arrowheads and the measurement
// text above the line midpoint.
func flattenLinear(d *LinearDim, st DimStyle) []Entity {
	u := Pt(math.Cos(d.Angle), math.Sin(d.Angle))
	t1 := d.P1.Sub(d.Base).Dot(u)
	t2 := d.P2.Sub(d.Base).Dot(u)
	e1 := d.Base.Add(u.Mul(t1))
	e2 := d.Base.Add(u.Mul(t2))

	out := extensionLines(d.P1, d.P2, e1, e2, d.Override, d.Attr)
	out = append(out, dimLineWithArrows(e1, e2, d.Override.DimDLE, st, d.Attr)...)

	text := d.Text
	if text == "" {
		text = measureText(math.Abs(t2 - t1))
	}
	out = append(out, dimText(text, e1, e2, st, d.Attr))
	return out
}

// flattenAligned offsets the dimension line parallel to the measured
// segment by Distance along its left normal.
func flattenAligned(d *AlignedDim, st DimStyle) []Entity {
	seg := d.P2.Sub(d.P1)
	length := seg.Length()
	if length == 0 {
		text := d.Text
		if text == "" {
			text = measureText(0)
		}
		return []Entity{dimText(text, d.P1, d.P2, st, d.Attr)}
	}
	n := seg.Mul(1 / length).Perp()
	e1 := d.P1.Add(n.Mul(d.Distance))
	e2 := d.P2.Add(n.Mul(d.Distance))

	out := extensionLines(d.P1, d.P2, e1, e2, d.Override, d.Attr)
	out = append(out, dimLineWithArrows(e1, e2, d.Override.DimDLE, st, d.Attr)...)

	text := d.Text
	if text == "" {
		text = measureText(length)
	}
	out = append(out, dimText(text, e1, e2, st, d.Attr))
	return out
}

// flattenRadius draws a ray from the center to the circle point at
// Angle, an arrowhead at the circle and an "R" measurement beside the
// ray midpoint.
func flattenRadius(d *RadiusDim, st DimStyle) []Entity {
	dir := Pt(math.Cos(d.Angle), math.Sin(d.Angle))
	tip := d.Center.Add(dir.Mul(d.Radius))

	text := d.Text
	if text == "" {
		text = "R" + measureText(d.Radius)
	}
	mid := d.Center.Add(dir.Mul(d.Radius / 2))
	return []Entity{
		&Line{Start: d.Center, End: tip, Attr: d.Attr},
		arrow(tip, dir, st.ArrowSize, d.Attr),
		&Text{
			Value:    text,
			Position: mid.Add(dir.Perp().Mul(st.Gap)),
			Height:   st.TextHeight,
			HAlign:   HCenter,
			VAlign:   VBottom,
			Attr:     d.Attr,
		},
	}
}

// flattenDiameter draws the full chord through the center at Angle
// with arrowheads at both circle points and a "Ø" measurement at the
// center.
func flattenDiameter(d *DiameterDim, st DimStyle) []Entity {
	dir := Pt(math.Cos(d.Angle), math.Sin(d.Angle))
	p1 := d.Center.Add(dir.Mul(d.Radius))
	p2 := d.Center.Sub(dir.Mul(d.Radius))

	text := d.Text
	if text == "" {
		text = "Ø" + measureText(2*d.Radius)
	}
	return []Entity{
		&Line{Start: p1, End: p2, Attr: d.Attr},
		arrow(p1, dir, st.ArrowSize, d.Attr),
		arrow(p2, dir.Mul(-1), st.ArrowSize, d.Attr),
		&Text{
			Value:    text,
			Position: d.Center.Add(dir.Perp().Mul(st.Gap)),
			Height:   st.TextHeight,
			HAlign:   HCenter,
			VAlign:   VBottom,
			Attr:     d.Attr,
		},
	}
}

// flattenAngular draws the two rays from the vertex, a measurement arc
// midway between the ray lengths and the included angle in degrees at
// the arc midpoint.
func flattenAngular(d *AngularDim, st DimStyle) []Entity {
	v1 := d.P1.Sub(d.Vertex)
	v2 := d.P2.Sub(d.Vertex)
	r1, r2 := v1.Length(), v2.Length()
	if r1 == 0 || r2 == 0 {
		return nil
	}

	a1 := math.Atan2(v1.Y, v1.X)
	a2 := math.Atan2(v2.Y, v2.X)
	sweep := a2 - a1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}

	arcR := (r1 + r2) / 2
	text := d.Text
	if text == "" {
		text = measureText(sweep*180/math.Pi) + "°"
	}
	bisector := a1 + sweep/2

	return []Entity{
		&Line{Start: d.Vertex, End: d.P1, Attr: d.Attr},
		&Line{Start: d.Vertex, End: d.P2, Attr: d.Attr},
		&Arc{
			Center:     d.Vertex,
			Radius:     arcR,
			StartAngle: a1 * 180 / math.Pi,
			EndAngle:   a2 * 180 / math.Pi,
			Attr:       d.Attr,
		},
		&Text{
			Value:    text,
			Position: d.Vertex.Add(Pt(math.Cos(bisector), math.Sin(bisector)).Mul(arcR + st.Gap)),
			Height:   st.TextHeight,
			HAlign:   HCenter,
			VAlign:   VBottom,
			Attr:     d.Attr,
		},
	}
}

// extensionLines draws one extension line per measured point, offset
// DimEXO from the point and running DimEXE past the dimension line.
func extensionLines(p1, p2, e1, e2 Point, o DimOverride, attr Attr) []Entity {
	out := make([]Entity, 0, 2)
	for _, pair := range [2][2]Point{{p1, e1}, {p2, e2}} {
		from, to := pair[0], pair[1]
		d := to.Sub(from)
		length := d.Length()
		if length == 0 {
			continue
		}
		d = d.Mul(1 / length)
		start := from.Add(d.Mul(math.Min(o.DimEXO, length)))
		end := to.Add(d.Mul(o.DimEXE))
		out = append(out, &Line{Start: start, End: end, Attr: attr})
	}
	return out
}

// dimLineWithArrows draws the dimension line between the projected
// endpoints, extended dle past each, with inward-facing arrowheads.
// A degenerate zero-length extent draws a single arrowhead mark.
func dimLineWithArrows(e1, e2 Point, dle float64, st DimStyle, attr Attr) []Entity {
	d := e2.Sub(e1)
	length := d.Length()
	if length == 0 {
		return []Entity{arrow(e1, Pt(1, 0), st.ArrowSize, attr)}
	}
	d = d.Mul(1 / length)
	return []Entity{
		&Line{Start: e1.Sub(d.Mul(dle)), End: e2.Add(d.Mul(dle)), Attr: attr},
		arrow(e1, d.Mul(-1), st.ArrowSize, attr),
		arrow(e2, d, st.ArrowSize, attr),
	}
}

// dimText centers the measurement above the dimension line midpoint.
func dimText(text string, e1, e2 Point, st DimStyle, attr Attr) Entity {
	mid := e1.Mid(e2)
	d := e2.Sub(e1)
	length := d.Length()
	pos := mid
	if length > 0 {
		pos = mid.Add(d.Mul(1 / length).Perp().Mul(st.Gap))
	}
	return &Text{
		Value:    text,
		Position: pos,
		Height:   st.TextHeight,
		HAlign:   HCenter,
		VAlign:   VBottom,
		Attr:     attr,
	}
}
