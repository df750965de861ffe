package mechdraw

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// seqColumnTexts collects the sequence-number cell of every table row,
// keyed by printed value, in document order.
func seqColumnTexts(doc *Document) map[string]float64 {
	got := make(map[string]float64)
	for i := 0; i < doc.Len(); i++ {
		if text, ok := doc.Entity(Handle(i)).(*Text); ok && text.Position.X == 1003 {
			got[text.Value] = text.Position.Y
		}
	}
	return got
}

func TestAddPartsTableTemplateRows(t *testing.T) {
	doc := NewDocument(nil)
	parts := map[int]PartRow{
		1: {Code: "GB-001", Name: "轴", Quantity: "1", Material: "45"},
		2: {Code: "GB-002", Name: "齿轮", Quantity: "2", Material: "40Cr"},
		3: {Code: "GB-003", Name: "键", Quantity: "1", Material: "Q235"},
	}
	layout, err := AddPartsTable(doc, nil, parts)
	if err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}

	if layout.BaseX != 999 || layout.BaseY != 53.5 || layout.RowHeight != 7 {
		t.Errorf("layout = %+v", layout)
	}
	if layout.Rows != 16 {
		t.Errorf("Rows = %d, want template 16 without overflow", layout.Rows)
	}

	want := map[string]float64{"1": 53.5, "2": 60.5, "3": 67.5}
	if diff := cmp.Diff(want, seqColumnTexts(doc)); diff != "" {
		t.Errorf("sequence column mismatch (-want +got):\n%s", diff)
	}

	// Without overflow only the cap divider is drawn.
	var lines []*Line
	for i := 0; i < doc.Len(); i++ {
		if line, ok := doc.Entity(Handle(i)).(*Line); ok {
			lines = append(lines, line)
		}
	}
	if len(lines) != 1 {
		t.Fatalf("frame lines = %d, want 1", len(lines))
	}
	divider := lines[0]
	if divider.Start != Pt(999, 71) || divider.End != Pt(1178.5, 71) {
		t.Errorf("cap divider = %v -> %v, want (999, 71) -> (1178.5, 71)", divider.Start, divider.End)
	}
	if divider.Attr.Layer != "2粗实线" {
		t.Errorf("frame layer = %q, want 2粗实线 (TABLE)", divider.Attr.Layer)
	}
}

func TestAddPartsTableOverflow(t *testing.T) {
	doc := NewDocument(nil)
	parts := make(map[int]PartRow)
	for i := 1; i <= 5; i++ {
		parts[i] = PartRow{Name: "件", Quantity: "1"}
	}
	layout, err := AddPartsTable(doc, nil, parts)
	if err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	if layout.Rows != 5 {
		t.Errorf("Rows = %d, want 5", layout.Rows)
	}

	want := map[string]float64{
		"1": 53.5, "2": 60.5, "3": 67.5,
		// Overflow rows stack above the template at the row height.
		"4": 74.5, "5": 81.5,
	}
	if diff := cmp.Diff(want, seqColumnTexts(doc)); diff != "" {
		t.Errorf("sequence column mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPartsTableSparseIndices(t *testing.T) {
	doc := NewDocument(nil)
	parts := map[int]PartRow{
		4:  {Name: "盖"},
		7:  {Name: "垫"},
		10: {Name: "销"},
	}
	layout, err := AddPartsTable(doc, nil, parts)
	if err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	if layout.Rows != 6 {
		t.Errorf("Rows = %d, want 6", layout.Rows)
	}

	// Sparse indices pack densely but keep their sequence numbers.
	want := map[string]float64{"4": 74.5, "7": 81.5, "10": 88.5}
	if diff := cmp.Diff(want, seqColumnTexts(doc)); diff != "" {
		t.Errorf("sequence column mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPartsTableDeterministic(t *testing.T) {
	parts := map[int]PartRow{
		2: {Code: "B", Name: "套"},
		5: {Name: "圈"},
		4: {Name: "环"},
		9: {Code: "X", Name: "栓"},
	}

	build := func() *Document {
		doc := NewDocument(nil)
		if _, err := AddPartsTable(doc, nil, parts); err != nil {
			t.Fatalf("AddPartsTable() = %v", err)
		}
		return doc
	}
	first, second := build(), build()

	if first.Len() != second.Len() {
		t.Fatalf("entity counts differ: %d vs %d", first.Len(), second.Len())
	}
	if diff := cmp.Diff(seqColumnTexts(first), seqColumnTexts(second)); diff != "" {
		t.Errorf("repeated layout differs (-first +second):\n%s", diff)
	}
}

func TestAddPartsTableGeneratedCode(t *testing.T) {
	doc := NewDocument(nil)
	if _, err := AddPartsTable(doc, nil, map[int]PartRow{4: {Name: "挡圈"}}); err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	var code string
	for i := 0; i < doc.Len(); i++ {
		if text, ok := doc.Entity(Handle(i)).(*Text); ok && text.Position.X == 1029 {
			code = text.Value
		}
	}
	if code != "P04" {
		t.Errorf("generated code = %q, want P04", code)
	}
}

func TestAddPartsTableTruncation(t *testing.T) {
	doc := NewDocument(nil)
	parts := map[int]PartRow{
		1: {Code: "C", Name: "零件一二三四五六七八九十超出", Material: "材料甲乙丙丁戊己庚辛壬癸超出"},
	}
	if _, err := AddPartsTable(doc, nil, parts); err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	var name, material string
	for i := 0; i < doc.Len(); i++ {
		text, ok := doc.Entity(Handle(i)).(*Text)
		if !ok {
			continue
		}
		switch text.Position.X {
		case 1071:
			name = text.Value
		case 1118:
			material = text.Value
		}
	}
	if name != "零件一二三四五六七八" {
		t.Errorf("name cell = %q, want 10-rune cut", name)
	}
	if material != "材料甲乙丙丁戊己庚辛" {
		t.Errorf("material cell = %q, want 10-rune cut", material)
	}
}

func TestAddPartsTableStyle(t *testing.T) {
	plain := NewDocument(nil)
	if _, err := AddPartsTable(plain, nil, map[int]PartRow{1: {Name: "轴"}}); err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	text := firstTableText(plain)
	if text.Style != "Standard" {
		t.Errorf("style = %q, want Standard without the table font", text.Style)
	}

	sized := NewDocument(nil, WithTextStyle("5号字体"))
	if _, err := AddPartsTable(sized, nil, map[int]PartRow{1: {Name: "轴"}}); err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}
	text = firstTableText(sized)
	if text.Style != "5号字体" {
		t.Errorf("style = %q, want 5号字体 when registered", text.Style)
	}
	if text.Height != 3.5 {
		t.Errorf("cell height = %v, want 3.5", text.Height)
	}
	if text.HAlign != HCenter || text.VAlign != VBottom {
		t.Errorf("cell alignment = %v, %v", text.HAlign, text.VAlign)
	}
}

func firstTableText(doc *Document) *Text {
	for i := 0; i < doc.Len(); i++ {
		if text, ok := doc.Entity(Handle(i)).(*Text); ok {
			return text
		}
	}
	return nil
}

func TestFramePartsTableOverflowFrame(t *testing.T) {
	doc := NewDocument(nil)
	parts := map[int]PartRow{4: {}, 5: {}}
	if _, err := AddPartsTable(doc, nil, parts); err != nil {
		t.Fatalf("AddPartsTable() = %v", err)
	}

	var horizontals, verticals []*Line
	for i := 0; i < doc.Len(); i++ {
		line, ok := doc.Entity(Handle(i)).(*Line)
		if !ok {
			continue
		}
		if line.Start.Y == line.End.Y {
			horizontals = append(horizontals, line)
		} else {
			verticals = append(verticals, line)
		}
	}

	// Two overflow rows need three boundaries: the cap, the midline
	// between the rows and the closing border.
	if len(horizontals) != 3 {
		t.Fatalf("horizontal boundaries = %d, want 3", len(horizontals))
	}
	wantY := []float64{71, 78, 85}
	for i, line := range horizontals {
		if line.Start.Y != wantY[i] {
			t.Errorf("boundary %d at y=%v, want %v", i, line.Start.Y, wantY[i])
		}
		if line.Start.X != 999 || line.End.X != 1178.5 {
			t.Errorf("boundary %d spans %v -> %v", i, line.Start, line.End)
		}
	}

	// Left frame plus seven inner column dividers; the sheet frame
	// serves as the right edge.
	if len(verticals) != 8 {
		t.Fatalf("vertical dividers = %d, want 8", len(verticals))
	}
	if verticals[0].Start != Pt(999, 71) || verticals[0].End != Pt(999, 85) {
		t.Errorf("left frame = %v -> %v", verticals[0].Start, verticals[0].End)
	}
	wantX := []float64{1007, 1051, 1091, 1099, 1137, 1147, 1159}
	for i, line := range verticals[1:] {
		if line.Start.X != wantX[i] {
			t.Errorf("divider %d at x=%v, want %v", i, line.Start.X, wantX[i])
		}
		if line.Start.Y != 71 || line.End.Y != 85 {
			t.Errorf("divider %d spans %v -> %v", i, line.Start, line.End)
		}
	}
}
