package mechdraw

import (
	"math"
	"testing"
)

func TestNewShaftTemplateDefaults(t *testing.T) {
	doc := NewDocument(nil)
	tpl := NewShaftTemplate(doc, nil, nil, ShaftParams{})
	if err := tpl.Generate(); err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if doc.Len() != 10 {
		t.Fatalf("doc.Len() = %d, want 10", doc.Len())
	}

	// Front view outline, 100 long and 20 high around the origin.
	outline := lineAt(t, doc, 0)
	if outline.Start != Pt(-50, -10) || outline.End != Pt(50, -10) {
		t.Errorf("outline bottom = %v -> %v", outline.Start, outline.End)
	}
	if outline.Attr.Layer != "6外框" {
		t.Errorf("outline layer = %q, want 6外框", outline.Attr.Layer)
	}

	axis := lineAt(t, doc, 4)
	if axis.Start != Pt(-60, 0) || axis.End != Pt(60, 0) {
		t.Errorf("axis = %v -> %v, want 10 past each end", axis.Start, axis.End)
	}
	if axis.Attr.Layer != "4中心线" || axis.Attr.LineType != "CENTER" {
		t.Errorf("axis attr = %+v", axis.Attr)
	}

	// End view to the left with crossed centerlines.
	end := doc.Entity(Handle(5)).(*Circle)
	if end.Center != Pt(-80, 0) || end.Radius != 10 {
		t.Errorf("end view = %+v", end)
	}
	horiz := lineAt(t, doc, 6)
	if horiz.Start != Pt(-95, 0) || horiz.End != Pt(-65, 0) {
		t.Errorf("end view horizontal centerline = %v -> %v", horiz.Start, horiz.End)
	}
	vert := lineAt(t, doc, 7)
	if vert.Start != Pt(-80, -15) || vert.End != Pt(-80, 15) {
		t.Errorf("end view vertical centerline = %v -> %v", vert.Start, vert.End)
	}

	length := doc.Entity(Handle(8)).(*LinearDim)
	if length.Base != Pt(-50, -25) {
		t.Errorf("length dimension base = %v, want (-50, -25)", length.Base)
	}
	if length.P1 != Pt(-50, -10) || length.P2 != Pt(50, -10) {
		t.Errorf("length dimension points = %v, %v", length.P1, length.P2)
	}

	bore := doc.Entity(Handle(9)).(*DiameterDim)
	if bore.Center != Pt(-80, 0) || bore.Radius != 10 {
		t.Errorf("diameter callout = %+v", bore)
	}
	if bore.Angle != math.Pi/4 {
		t.Errorf("callout angle = %v, want pi/4", bore.Angle)
	}
}

func TestNewShaftTemplateCustom(t *testing.T) {
	doc := NewDocument(nil)
	tpl := NewShaftTemplate(doc, nil, nil, ShaftParams{
		Origin:   Pt(200, 150),
		Diameter: 40,
		Length:   120,
	})
	if err := tpl.Generate(); err != nil {
		t.Fatalf("Generate() = %v", err)
	}

	outline := lineAt(t, doc, 0)
	if outline.Start != Pt(140, 130) {
		t.Errorf("outline corner = %v, want (140, 130)", outline.Start)
	}
	axis := lineAt(t, doc, 4)
	if axis.Start != Pt(130, 150) || axis.End != Pt(270, 150) {
		t.Errorf("axis = %v -> %v", axis.Start, axis.End)
	}
	end := doc.Entity(Handle(5)).(*Circle)
	if end.Center != Pt(120, 150) || end.Radius != 20 {
		t.Errorf("end view = %+v", end)
	}
	length := doc.Entity(Handle(8)).(*LinearDim)
	if length.Base != Pt(140, 115) {
		t.Errorf("length dimension base = %v, want (140, 115)", length.Base)
	}
}

func TestNewGearTemplateDefaults(t *testing.T) {
	doc := NewDocument(nil)
	tpl := NewGearTemplate(doc, nil, nil, GearParams{})
	if err := tpl.Generate(); err != nil {
		t.Fatalf("Generate() = %v", err)
	}
	if doc.Len() != 11 {
		t.Fatalf("doc.Len() = %d, want 11", doc.Len())
	}

	outer := doc.Entity(Handle(0)).(*Circle)
	inner := doc.Entity(Handle(1)).(*Circle)
	if outer.Radius != 30 || inner.Radius != 10 {
		t.Errorf("circles = r%v, r%v, want r30, r10", outer.Radius, inner.Radius)
	}
	if outer.Center != Pt(0, 0) || inner.Center != Pt(0, 0) {
		t.Errorf("circles at %v, %v, want concentric at origin", outer.Center, inner.Center)
	}

	horiz := lineAt(t, doc, 2)
	if horiz.Start != Pt(-40, 0) || horiz.End != Pt(40, 0) {
		t.Errorf("horizontal centerline = %v -> %v", horiz.Start, horiz.End)
	}
	vert := lineAt(t, doc, 3)
	if vert.Start != Pt(0, -40) || vert.End != Pt(0, 40) {
		t.Errorf("vertical centerline = %v -> %v", vert.Start, vert.End)
	}

	// Side profile to the right, one thickness wide.
	profile := lineAt(t, doc, 4)
	if profile.Start != Pt(72.5, -30) || profile.End != Pt(87.5, -30) {
		t.Errorf("profile bottom = %v -> %v", profile.Start, profile.End)
	}
	profileAxis := lineAt(t, doc, 8)
	if profileAxis.Start != Pt(80, -40) || profileAxis.End != Pt(80, 40) {
		t.Errorf("profile centerline = %v -> %v", profileAxis.Start, profileAxis.End)
	}

	outerDim := doc.Entity(Handle(9)).(*DiameterDim)
	innerDim := doc.Entity(Handle(10)).(*DiameterDim)
	if outerDim.Radius != 30 || innerDim.Radius != 10 {
		t.Errorf("callouts = r%v, r%v", outerDim.Radius, innerDim.Radius)
	}
	if outerDim.Angle != math.Pi/4 {
		t.Errorf("outer callout angle = %v, want pi/4", outerDim.Angle)
	}
	want := 135 * math.Pi / 180
	if innerDim.Angle != want {
		t.Errorf("inner callout angle = %v, want %v", innerDim.Angle, want)
	}
}

func TestNewGearTemplateCustom(t *testing.T) {
	doc := NewDocument(nil)
	tpl := NewGearTemplate(doc, nil, nil, GearParams{
		Origin:        Pt(100, 100),
		OuterDiameter: 80,
		InnerDiameter: 30,
		Thickness:     20,
	})
	if err := tpl.Generate(); err != nil {
		t.Fatalf("Generate() = %v", err)
	}

	outer := doc.Entity(Handle(0)).(*Circle)
	if outer.Center != Pt(100, 100) || outer.Radius != 40 {
		t.Errorf("outer circle = %+v", outer)
	}
	profile := lineAt(t, doc, 4)
	if profile.Start != Pt(170, 60) {
		t.Errorf("profile corner = %v, want (170, 60)", profile.Start)
	}
	profileAxis := lineAt(t, doc, 8)
	if profileAxis.Start != Pt(180, 50) || profileAxis.End != Pt(180, 150) {
		t.Errorf("profile centerline = %v -> %v", profileAxis.Start, profileAxis.End)
	}
}
