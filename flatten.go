package mechdraw

import (
	"math"
	"sort"
)

// ellipseSegments is the sampling density for ellipse approximation,
// in segments per full revolution.
const ellipseSegments = 64

// SampleEllipse approximates an ellipse entity with a chain of points
// along its parameter range. A full revolution uses ellipseSegments
// segments; partial arcs use proportionally fewer, never less than 8.
// Backends without a native ellipse entity draw the chain as a polyline.
func SampleEllipse(e *Ellipse) []Point {
	minor := e.MajorAxis.Perp().Mul(e.Ratio)
	sweep := e.EndParam - e.StartParam
	for sweep <= 0 {
		sweep += 2 * math.Pi
	}
	if sweep > 2*math.Pi {
		sweep = 2 * math.Pi
	}
	n := int(math.Ceil(sweep / (2 * math.Pi) * ellipseSegments))
	if n < 8 {
		n = 8
	}
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		t := e.StartParam + sweep*float64(i)/float64(n)
		pts[i] = e.Center.Add(e.MajorAxis.Mul(math.Cos(t))).Add(minor.Mul(math.Sin(t)))
	}
	return pts
}

// splineRounds is the number of Chaikin subdivision rounds applied when
// sampling a spline.
const splineRounds = 3

// SampleSpline approximates a spline with its Chaikin-subdivided
// control polygon. The end points are kept, so the chain starts and
// ends exactly on the first and last control points.
func SampleSpline(s *Spline) []Point {
	pts := append([]Point(nil), s.Points...)
	if len(pts) < 3 {
		return pts
	}
	for range splineRounds {
		out := make([]Point, 0, 2*len(pts))
		out = append(out, pts[0])
		for i := 0; i+1 < len(pts); i++ {
			a, b := pts[i], pts[i+1]
			out = append(out,
				a.Mul(0.75).Add(b.Mul(0.25)),
				a.Mul(0.25).Add(b.Mul(0.75)))
		}
		out = append(out, pts[len(pts)-1])
		pts = out
	}
	return pts
}

// hatchSpacing is the ANSI31 line spacing in millimeters at scale 1.
const hatchSpacing = 3.175

// FlattenHatch converts a hatch region into its section lines: parallel
// 45 degree lines at the pattern spacing times the hatch scale, clipped
// to the boundary loop. Backends without a native hatch entity draw the
// boundary polyline plus these lines.
func FlattenHatch(h *Hatch) []Entity {
	if len(h.Boundary) < 4 {
		return nil
	}
	spacing := hatchSpacing
	if h.Scale > 0 {
		spacing *= h.Scale
	}
	dir := Pt(math.Cos(math.Pi/4), math.Sin(math.Pi/4))
	norm := dir.Perp()

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range h.Boundary {
		c := p.Dot(norm)
		lo = math.Min(lo, c)
		hi = math.Max(hi, c)
	}

	var out []Entity
	for c := math.Ceil(lo/spacing) * spacing; c < hi; c += spacing {
		hits := hatchHits(h.Boundary, dir, norm, c)
		for i := 0; i+1 < len(hits); i += 2 {
			out = append(out, &Line{
				Start: dir.Mul(hits[i]).Add(norm.Mul(c)),
				End:   dir.Mul(hits[i+1]).Add(norm.Mul(c)),
				Attr:  h.Attr,
			})
		}
	}
	return out
}

// hatchHits intersects one hatch line (the points at offset c along
// norm) with the boundary edges and returns the sorted hit parameters
// along dir. The crossing test is half-open so a vertex lying exactly
// on the line counts once.
func hatchHits(boundary []Point, dir, norm Point, c float64) []float64 {
	var hits []float64
	for i := 0; i+1 < len(boundary); i++ {
		a, b := boundary[i], boundary[i+1]
		ca, cb := a.Dot(norm), b.Dot(norm)
		if (ca <= c) == (cb <= c) {
			continue
		}
		t := (c - ca) / (cb - ca)
		p := a.Add(b.Sub(a).Mul(t))
		hits = append(hits, p.Dot(dir))
	}
	sort.Float64s(hits)
	return hits
}
