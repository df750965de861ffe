package mechdraw

import (
	"errors"
	"math"
	"testing"
)

func TestDimensionsLinear(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "linear", Params{
		"p1":       Pt(10, 5),
		"p2":       Pt(2, 8),
		"distance": 15.0,
		"text":     "8",
	})
	if len(res) != 1 {
		t.Fatalf("result = %v, want one handle", res)
	}
	dim := doc.Entity(res[0]).(*LinearDim)
	// Base sits at the component-wise minimum, dropped by distance.
	if dim.Base != Pt(2, -10) {
		t.Errorf("Base = %v, want (2, -10)", dim.Base)
	}
	if dim.P1 != Pt(10, 5) || dim.P2 != Pt(2, 8) {
		t.Errorf("measured points = %v, %v", dim.P1, dim.P2)
	}
	if dim.Angle != 0 {
		t.Errorf("Angle = %v, want 0", dim.Angle)
	}
	if dim.Text != "8" || dim.Style != "Standard" {
		t.Errorf("Text = %q, Style = %q", dim.Text, dim.Style)
	}
	if dim.Override != (DimOverride{DimDLE: 0.5, DimEXE: 0.5}) {
		t.Errorf("Override = %+v", dim.Override)
	}
	if dim.Attr.Layer != "1细实线" {
		t.Errorf("layer = %q, want 1细实线", dim.Attr.Layer)
	}
}

func TestDimensionsLinearNegativeDistance(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "linear", Params{
		"p1":       Pt(10, 5),
		"p2":       Pt(2, 8),
		"distance": -5.0,
	})
	dim := doc.Entity(res[0]).(*LinearDim)
	// Negative distance raises the dimension line above the geometry.
	if dim.Base != Pt(2, 10) {
		t.Errorf("Base = %v, want (2, 10)", dim.Base)
	}
	if dim.Text != "" {
		t.Errorf("Text = %q, want measured value at render time", dim.Text)
	}
}

func TestDimensionsRadialAngleDegrees(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
	}{
		{"45", 45},
		{"90", 90},
		{"30", 30},
		{"135", 135},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, res := drawOp(t, KindDimensions, "diameter", Params{
				"center": Pt(0, 0),
				"radius": 10.0,
				"angle":  tt.degrees,
			})
			dim := doc.Entity(res[0]).(*DiameterDim)
			want := tt.degrees * math.Pi / 180
			if dim.Angle != want {
				t.Errorf("Angle = %v, want %v rad", dim.Angle, want)
			}
		})
	}
}

func TestDimensionsRadius(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "radius", Params{
		"center": Pt(40, 30),
		"radius": 12.5,
		"text":   "R12.5",
	})
	dim := doc.Entity(res[0]).(*RadiusDim)
	if dim.Center != Pt(40, 30) || dim.Radius != 12.5 {
		t.Errorf("dim = %+v", dim)
	}
	// Callout angle defaults to 45 degrees.
	if dim.Angle != math.Pi/4 {
		t.Errorf("default Angle = %v, want pi/4", dim.Angle)
	}
	if dim.Text != "R12.5" {
		t.Errorf("Text = %q", dim.Text)
	}
}

func TestDimensionsRadialValidation(t *testing.T) {
	reg := NewStrategyRegistry()
	doc := NewDocument(nil)
	for _, op := range []string{"radius", "diameter"} {
		_, err := reg.Draw(KindDimensions, doc, nil, op, Params{
			"center": Pt(0, 0),
			"radius": -1.0,
		})
		var pe *ParamError
		if !errors.As(err, &pe) || pe.Field != "radius" {
			t.Errorf("%s: error = %v, want radius ParamError", op, err)
		}
	}
	if doc.Len() != 0 {
		t.Errorf("failed operations recorded %d entities", doc.Len())
	}
}

func TestDimensionsAngular(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "angular", Params{
		"center": Pt(0, 0),
		"p1":     Pt(10, 0),
		"p2":     Pt(0, 10),
	})
	dim := doc.Entity(res[0]).(*AngularDim)
	if dim.Vertex != Pt(0, 0) || dim.P1 != Pt(10, 0) || dim.P2 != Pt(0, 10) {
		t.Errorf("dim = %+v", dim)
	}
	if dim.Attr.Layer != "1细实线" {
		t.Errorf("layer = %q", dim.Attr.Layer)
	}
}

func TestDimensionsAligned(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "aligned", Params{
		"p1":       Pt(0, 0),
		"p2":       Pt(30, 40),
		"distance": 8.0,
	})
	dim := doc.Entity(res[0]).(*AlignedDim)
	if dim.P1 != Pt(0, 0) || dim.P2 != Pt(30, 40) || dim.Distance != 8 {
		t.Errorf("dim = %+v", dim)
	}
	if dim.Style != "Standard" {
		t.Errorf("Style = %q", dim.Style)
	}
}

func TestDimensionsBaseline(t *testing.T) {
	points := []Point{Pt(30, 0), Pt(50, 0), Pt(80, 0)}

	t.Run("defaults", func(t *testing.T) {
		doc, res := drawOp(t, KindDimensions, "baseline", Params{
			"base_point": Pt(0, 0),
			"points":     points,
			// Baseline chains label their own measured values.
			"text": "ignored",
		})
		if len(res) != 3 {
			t.Fatalf("result = %v, want 3 handles", res)
		}
		wantEXO := []float64{0, 10, 20}
		for i, h := range res {
			dim := doc.Entity(h).(*LinearDim)
			if dim.Base != Pt(0, 0) || dim.P1 != Pt(0, 0) {
				t.Errorf("dim %d base/p1 = %v, %v, want shared base", i, dim.Base, dim.P1)
			}
			if dim.P2 != points[i] {
				t.Errorf("dim %d P2 = %v, want %v", i, dim.P2, points[i])
			}
			if dim.Text != "" {
				t.Errorf("dim %d Text = %q, want empty", i, dim.Text)
			}
			if dim.Angle != 0 {
				t.Errorf("dim %d Angle = %v, want 0", i, dim.Angle)
			}
			if dim.Override.DimEXO != wantEXO[i] {
				t.Errorf("dim %d DimEXO = %v, want %v", i, dim.Override.DimEXO, wantEXO[i])
			}
			if dim.Override.DimDLE != 0.5 || dim.Override.DimEXE != 0.5 {
				t.Errorf("dim %d Override = %+v", i, dim.Override)
			}
		}
	})

	t.Run("spacing", func(t *testing.T) {
		doc, res := drawOp(t, KindDimensions, "baseline", Params{
			"base_point": Pt(0, 0),
			"points":     points,
			"spacing":    5.0,
		})
		wantEXO := []float64{0, 5, 10}
		for i, h := range res {
			dim := doc.Entity(h).(*LinearDim)
			if dim.Override.DimEXO != wantEXO[i] {
				t.Errorf("dim %d DimEXO = %v, want %v", i, dim.Override.DimEXO, wantEXO[i])
			}
		}
	})

	t.Run("vertical direction", func(t *testing.T) {
		doc, res := drawOp(t, KindDimensions, "baseline", Params{
			"base_point": Pt(0, 0),
			"points":     []Point{Pt(0, 30), Pt(0, 50)},
			"direction":  Pt(0, 1),
		})
		for i, h := range res {
			dim := doc.Entity(h).(*LinearDim)
			if dim.Angle != math.Pi/2 {
				t.Errorf("dim %d Angle = %v, want pi/2", i, dim.Angle)
			}
		}
	})

	t.Run("empty points", func(t *testing.T) {
		_, err := NewStrategyRegistry().Draw(KindDimensions, NewDocument(nil), nil, "baseline", Params{
			"base_point": Pt(0, 0),
			"points":     []Point{},
		})
		want := `mechdraw: baseline: parameter "points" needs at least 1 point`
		if err == nil || err.Error() != want {
			t.Errorf("error = %v, want %q", err, want)
		}
	})
}

func TestDimensionsTolerance(t *testing.T) {
	doc, res := drawOp(t, KindDimensions, "tolerance", Params{
		"p1":        Pt(0, 0),
		"p2":        Pt(25, 0),
		"distance":  10.0,
		"nominal":   25.0,
		"upper_tol": 0.05,
		"lower_tol": -0.02,
	})
	dim := doc.Entity(res[0]).(*LinearDim)
	if dim.Text != "25+0.05/-0.02" {
		t.Errorf("Text = %q, want 25+0.05/-0.02", dim.Text)
	}
	if dim.Base != Pt(0, -10) {
		t.Errorf("Base = %v, want (0, -10)", dim.Base)
	}
}

func TestFormatTolerance(t *testing.T) {
	tests := []struct {
		name         string
		nominal      float64
		upper, lower float64
		want         string
	}{
		{"mixed signs", 25, 0.05, -0.02, "25+0.05/-0.02"},
		{"both positive", 10, 0.1, 0.05, "10+0.1/+0.05"},
		{"zero upper", 8, 0, -0.2, "8+0/-0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTolerance(tt.nominal, tt.upper, tt.lower)
			if got != tt.want {
				t.Errorf("FormatTolerance(%v, %v, %v) = %q, want %q",
					tt.nominal, tt.upper, tt.lower, got, tt.want)
			}
		})
	}
}

func TestDimensionsUnknownOp(t *testing.T) {
	_, err := NewStrategyRegistry().Draw(KindDimensions, NewDocument(nil), nil, "ordinate", Params{})
	var oe *OpError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %T (%v), want *OpError", err, err)
	}
	if oe.Strategy != KindDimensions {
		t.Errorf("OpError strategy = %v", oe.Strategy)
	}
}
