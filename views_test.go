package mechdraw

import "testing"

func TestViewsSectionLine(t *testing.T) {
	doc, res := drawOp(t, KindViews, "section_line", Params{
		"start_point": Pt(0, 0),
		"end_point":   Pt(100, 0),
	})
	if len(res) != 7 {
		t.Fatalf("result length = %d, want 7", len(res))
	}

	main := lineAt(t, doc, res[0])
	if main.Start != Pt(0, 0) || main.End != Pt(100, 0) {
		t.Errorf("trace = %v -> %v", main.Start, main.End)
	}
	if main.Attr.LineType != "CENTER" || main.Attr.Layer != "4中心线" {
		t.Errorf("trace attr = %+v", main.Attr)
	}

	// Double-stroke arrows inset 5 from each end, the first pair
	// pointing along the trace and the second against it.
	wings := [4][2]Point{
		{Pt(2, 3), Pt(5, 0)},
		{Pt(2, -3), Pt(5, 0)},
		{Pt(98, 3), Pt(95, 0)},
		{Pt(98, -3), Pt(95, 0)},
	}
	for i, want := range wings {
		wing := lineAt(t, doc, res[i+1])
		if wing.Start != want[0] || wing.End != want[1] {
			t.Errorf("wing %d = %v -> %v, want %v -> %v", i, wing.Start, wing.End, want[0], want[1])
		}
	}

	head := textAt(t, doc, res[5])
	tail := textAt(t, doc, res[6])
	if head.Value != "A-A" || tail.Value != "A-A" {
		t.Errorf("labels = %q, %q, want A-A", head.Value, tail.Value)
	}
	if head.Position != Pt(-8, 0) || tail.Position != Pt(108, 0) {
		t.Errorf("labels at %v and %v, want (-8, 0) and (108, 0)", head.Position, tail.Position)
	}
	if head.Height != 5 {
		t.Errorf("label height = %v, want 5", head.Height)
	}
}

func TestViewsSectionLineCustomLabel(t *testing.T) {
	doc, res := drawOp(t, KindViews, "section_line", Params{
		"start_point":   Pt(0, 0),
		"end_point":     Pt(0, 50),
		"section_label": "C",
	})
	head := textAt(t, doc, res[5])
	if head.Value != "C-C" {
		t.Errorf("label = %q, want C-C", head.Value)
	}
}

func TestViewsSectionLineZeroLength(t *testing.T) {
	doc := NewDocument(nil)
	res, err := NewStrategyRegistry().Draw(KindViews, doc, nil, "section_line", Params{
		"start_point": Pt(10, 10),
		"end_point":   Pt(10, 10),
	})
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if len(res) != 0 {
		t.Errorf("result = %v, want empty for zero-length trace", res)
	}
	if doc.Len() != 0 {
		t.Errorf("zero-length trace recorded %d entities", doc.Len())
	}
}

func TestViewsSectionViewLabel(t *testing.T) {
	doc, res := drawOp(t, KindViews, "section_view_label", Params{
		"position": Pt(50, 50),
	})
	if len(res) != 2 {
		t.Fatalf("result length = %d, want heading and underline", len(res))
	}

	heading := textAt(t, doc, res[0])
	if heading.Value != "剖视图 A-A" {
		t.Errorf("heading = %q", heading.Value)
	}
	if heading.Position != Pt(50, 50) || heading.Height != 5 {
		t.Errorf("heading at %v height %v", heading.Position, heading.Height)
	}
	if heading.Attr.Layer != "3文字" {
		t.Errorf("heading layer = %q", heading.Attr.Layer)
	}

	// Seven runes at 0.6 height per character give a 21-wide underline
	// centered under the heading, 0.8 heights below it.
	underline := lineAt(t, doc, res[1])
	if underline.Start != Pt(39.5, 46) || underline.End != Pt(60.5, 46) {
		t.Errorf("underline = %v -> %v, want (39.5, 46) -> (60.5, 46)", underline.Start, underline.End)
	}
}

func TestViewsDetailView(t *testing.T) {
	doc, res := drawOp(t, KindViews, "detail_view", Params{
		"center": Pt(10, 10),
		"radius": 5.0,
	})
	if len(res) != 3 {
		t.Fatalf("result length = %d, want 3", len(res))
	}

	ring := doc.Entity(res[0]).(*Circle)
	if ring.Center != Pt(10, 10) || ring.Radius != 5 {
		t.Errorf("ring = %+v", ring)
	}
	if ring.Attr.Layer != "2粗实线" {
		t.Errorf("ring layer = %q, want 2粗实线 (DETAIL)", ring.Attr.Layer)
	}

	label := textAt(t, doc, res[1])
	if label.Value != "B" || label.Position != Pt(10, 16) || label.Height != 5 {
		t.Errorf("label = %q at %v height %v", label.Value, label.Position, label.Height)
	}
	scale := textAt(t, doc, res[2])
	if scale.Value != "2:1" || scale.Position != Pt(10, 4) || scale.Height != 3.5 {
		t.Errorf("scale = %q at %v height %v", scale.Value, scale.Position, scale.Height)
	}

	if _, err := NewStrategyRegistry().Draw(KindViews, NewDocument(nil), nil, "detail_view", Params{
		"center": Pt(0, 0),
		"radius": 0.0,
	}); err == nil {
		t.Error("zero-radius detail view accepted")
	}
}

func TestViewsText(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		doc, res := drawOp(t, KindViews, "text", Params{
			"text":     "技术要求",
			"position": Pt(20, 30),
		})
		text := textAt(t, doc, res[0])
		if text.Value != "技术要求" || text.Position != Pt(20, 30) {
			t.Errorf("text = %q at %v", text.Value, text.Position)
		}
		if text.Height != 2.5 {
			t.Errorf("height = %v, want 2.5", text.Height)
		}
		if text.Attr.Layer != "3文字" {
			t.Errorf("layer = %q, want 3文字", text.Attr.Layer)
		}
		if text.HAlign != HCenter || text.VAlign != VBottom {
			t.Errorf("alignment = %v, %v, want center bottom", text.HAlign, text.VAlign)
		}
		if text.Style != "chinese" {
			t.Errorf("style = %q, want document default", text.Style)
		}
	})

	t.Run("explicit alignment", func(t *testing.T) {
		doc, res := drawOp(t, KindViews, "text", Params{
			"text":     "1. 未注圆角R2",
			"position": Pt(0, 0),
			"height":   3.5,
			"layer":    "ANNOTATION",
			"halign":   int(HLeft),
			"valign":   int(VTop),
		})
		text := textAt(t, doc, res[0])
		if text.HAlign != HLeft || text.VAlign != VTop {
			t.Errorf("alignment = %v, %v, want left top", text.HAlign, text.VAlign)
		}
		if text.Height != 3.5 || text.Attr.Layer != "3文字" {
			t.Errorf("height %v layer %q", text.Height, text.Attr.Layer)
		}
	})
}
