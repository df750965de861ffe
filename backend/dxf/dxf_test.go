package dxf

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mechdraw/mechdraw"
)

func render(t *testing.T, build func(doc *mechdraw.Document)) string {
	t.Helper()
	doc := mechdraw.NewDocument(nil)
	if build != nil {
		build(doc)
	}
	var buf bytes.Buffer
	if err := doc.Replay(New(&buf)); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	return buf.String()
}

func TestRegistered(t *testing.T) {
	if !mechdraw.IsBackendRegistered(Name) {
		t.Fatalf("backend %q is not registered", Name)
	}
	b, err := mechdraw.NewBackend(Name, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewBackend(%q) = %v", Name, err)
	}
	if _, ok := b.(*Writer); !ok {
		t.Errorf("NewBackend returned %T, want *Writer", b)
	}
}

func TestStructure(t *testing.T) {
	out := render(t, nil)
	if !strings.HasPrefix(out, "0\nSECTION\n2\nHEADER\n") {
		t.Errorf("output does not start with the header section:\n%.80s", out)
	}
	if !strings.HasSuffix(out, "0\nEOF\n") {
		t.Errorf("output does not end with EOF:\n%.80s", out[len(out)-80:])
	}
	for _, want := range []string{"$ACADVER", "AC1009", "$EXTMIN", "$EXTMAX"} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
	// A3 sheet extents.
	if !strings.Contains(out, "10\n420\n20\n297\n") {
		t.Errorf("output is missing the A3 extents")
	}
	header := strings.Index(out, "2\nHEADER")
	tables := strings.Index(out, "2\nTABLES")
	entities := strings.Index(out, "2\nENTITIES")
	if header < 0 || tables < 0 || entities < 0 || !(header < tables && tables < entities) {
		t.Errorf("section order header=%d tables=%d entities=%d", header, tables, entities)
	}
	if n := strings.Count(out, "0\nENDSEC\n"); n != 3 {
		t.Errorf("found %d ENDSEC records, want 3", n)
	}
	if n := strings.Count(out, "0\nENDTAB\n"); n != 3 {
		t.Errorf("found %d ENDTAB records, want 3", n)
	}
}

func TestLinetypeTable(t *testing.T) {
	out := render(t, nil)
	want := "0\nLTYPE\n2\nCENTER\n70\n64\n3\n中心线\n72\n65\n73\n4\n40\n13.75\n49\n7.5\n49\n5\n49\n-1.25\n49\n0\n"
	if !strings.Contains(out, want) {
		t.Errorf("output is missing the CENTER linetype record:\n%s", want)
	}
	if !strings.Contains(out, "0\nLTYPE\n2\nCONTINUOUS\n70\n64\n3\n连续线\n72\n65\n73\n0\n40\n0\n") {
		t.Errorf("output is missing the CONTINUOUS linetype record")
	}
}

func TestLayerTable(t *testing.T) {
	out := render(t, nil)
	for _, want := range []string{
		"0\nLAYER\n2\n4中心线\n70\n64\n62\n7\n6\nCENTER\n",
		"0\nLAYER\n2\n1细实线\n70\n64\n62\n7\n6\nCONTINUOUS\n",
		"0\nLAYER\n2\n5虚线\n70\n64\n62\n7\n6\nHIDDEN\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing the layer record:\n%s", want)
		}
	}
}

func TestStyleTable(t *testing.T) {
	out := render(t, nil)
	if !strings.Contains(out, "0\nSTYLE\n2\nStandard\n") {
		t.Errorf("output is missing the injected Standard style")
	}
	if !strings.Contains(out, "0\nSTYLE\n2\nchinese\n") {
		t.Errorf("output is missing the chinese style")
	}
	if !strings.Contains(out, "3\ngbenor.shx\n4\ngbcbig.shx\n") {
		t.Errorf("output is missing the GB font pairing")
	}
}

func TestEntities(t *testing.T) {
	out := render(t, func(doc *mechdraw.Document) {
		doc.AddLine(mechdraw.Pt(0, 0), mechdraw.Pt(100, 0), "1细实线", "")
		doc.AddLine(mechdraw.Pt(0, 0), mechdraw.Pt(0, 50), "4中心线", "CENTER")
		doc.AddCircle(mechdraw.Pt(50, 50), 10, "6外框")
		doc.AddArc(mechdraw.Pt(0, 0), 5, 30, 120, "1细实线")
		doc.AddText("孔", mechdraw.Pt(10, 20), 3.5, "3文字", "", mechdraw.HCenter, mechdraw.VMiddle)
		doc.AddPolyline([]mechdraw.Point{mechdraw.Pt(0, 0), mechdraw.Pt(10, 0), mechdraw.Pt(10, 10)}, true, "2粗实线")
	})

	for _, want := range []string{
		"0\nLINE\n8\n1细实线\n10\n0\n20\n0\n11\n100\n21\n0\n",
		"0\nLINE\n8\n4中心线\n6\nCENTER\n10\n0\n20\n0\n11\n0\n21\n50\n",
		"0\nCIRCLE\n8\n6外框\n10\n50\n20\n50\n40\n10\n",
		"0\nARC\n8\n1细实线\n10\n0\n20\n0\n40\n5\n50\n30\n51\n120\n",
		"0\nTEXT\n8\n3文字\n10\n10\n20\n20\n40\n3.5\n1\n孔\n7\nchinese\n72\n1\n73\n2\n11\n10\n21\n20\n",
		"0\nPOLYLINE\n8\n2粗实线\n66\n1\n70\n1\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing the record:\n%s", want)
		}
	}
	if n := strings.Count(out, "0\nVERTEX\n"); n != 3 {
		t.Errorf("found %d VERTEX records, want 3", n)
	}
	if n := strings.Count(out, "0\nSEQEND\n"); n != 1 {
		t.Errorf("found %d SEQEND records, want 1", n)
	}
}

func TestEllipseAsPolyline(t *testing.T) {
	out := render(t, func(doc *mechdraw.Document) {
		doc.AddEllipse(mechdraw.Pt(50, 50), mechdraw.Pt(20, 0), 0.5, 0, 6.283185307, "1细实线")
	})
	if !strings.Contains(out, "0\nPOLYLINE\n8\n1细实线\n66\n1\n70\n0\n") {
		t.Errorf("ellipse did not emit an open polyline")
	}
	if n := strings.Count(out, "0\nVERTEX\n"); n != 65 {
		t.Errorf("found %d VERTEX records, want 65", n)
	}
	if strings.Contains(out, "ELLIPSE") {
		t.Errorf("output contains an ELLIPSE entity, unsupported in R12")
	}
}

func TestSplineFitFlag(t *testing.T) {
	out := render(t, func(doc *mechdraw.Document) {
		doc.AddSpline([]mechdraw.Point{mechdraw.Pt(0, 0), mechdraw.Pt(5, 10), mechdraw.Pt(10, 0)}, 3, "1细实线")
	})
	if !strings.Contains(out, "0\nPOLYLINE\n8\n1细实线\n66\n1\n70\n4\n") {
		t.Errorf("spline did not emit a polyline with the spline-fit flag")
	}
}

func TestDimensionExplosion(t *testing.T) {
	out := render(t, func(doc *mechdraw.Document) {
		doc.AddLinearDim(mechdraw.Pt(0, -15), mechdraw.Pt(0, 0), mechdraw.Pt(100, 0), 0,
			"", "", mechdraw.DimOverride{DimEXE: 0.5}, "1细实线")
	})
	if strings.Contains(out, "DIMENSION") {
		t.Fatalf("output contains a DIMENSION entity, dimensions must be exploded")
	}
	if n := strings.Count(out, "0\nSOLID\n"); n != 2 {
		t.Errorf("found %d SOLID arrowheads, want 2", n)
	}
	if !strings.Contains(out, "40\n3.5\n1\n100\n") {
		t.Errorf("output is missing the measurement text")
	}
	// Extension and dimension lines on the dimension layer.
	if n := strings.Count(out, "0\nLINE\n8\n1细实线\n"); n != 3 {
		t.Errorf("found %d dimension lines, want 3", n)
	}
}

func TestHatchExplosion(t *testing.T) {
	out := render(t, func(doc *mechdraw.Document) {
		doc.AddHatch([]mechdraw.Point{
			mechdraw.Pt(0, 0), mechdraw.Pt(10, 0), mechdraw.Pt(10, 10), mechdraw.Pt(0, 10),
		}, "ANSI31", 1.0, "3剖面线")
	})
	if strings.Contains(out, "HATCH") {
		t.Fatalf("output contains a HATCH entity, unsupported in R12")
	}
	if !strings.Contains(out, "0\nPOLYLINE\n8\n3剖面线\n66\n1\n70\n1\n") {
		t.Errorf("hatch boundary polyline is missing or not closed")
	}
	if n := strings.Count(out, "0\nVERTEX\n"); n != 4 {
		t.Errorf("found %d boundary vertices, want 4", n)
	}
	if n := strings.Count(out, "0\nLINE\n8\n3剖面线\n"); n != 5 {
		t.Errorf("found %d section lines, want 5", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteError(t *testing.T) {
	doc := mechdraw.NewDocument(nil)
	if err := doc.Replay(New(failWriter{})); err == nil {
		t.Fatal("Replay into a failing writer returned nil error")
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{10, "10"},
		{3.5, "3.5"},
		{-1.25, "-1.25"},
		{0, "0"},
		{13.75, "13.75"},
		{0.1, "0.1"},
	}
	for _, tt := range tests {
		if got := num(tt.v); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
