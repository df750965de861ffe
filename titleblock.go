package mechdraw

import "strings"

// TitleInfo fills the title block fields. Empty fields fall back to
// placeholder defaults so a partially filled block stays readable.
type TitleInfo struct {
	Name         string // drawing title
	Code         string // drawing number
	Organization string
	Designer     string
	Reviewer     string
	StandardNo   string
	Material     string
	Date         string
	Weight       string
	Scale        string
}

func (t *TitleInfo) setDefaults() {
	if t.Name == "" {
		t.Name = "Assembly Drawing"
	}
	if t.Code == "" {
		t.Code = "001"
	}
	if t.Organization == "" {
		t.Organization = "Organization"
	}
	if t.Designer == "" {
		t.Designer = "Designer"
	}
	if t.Reviewer == "" {
		t.Reviewer = "Reviewer"
	}
	if t.StandardNo == "" {
		t.StandardNo = "Standard"
	}
	if t.Material == "" {
		t.Material = "Assembly"
	}
	if t.Date == "" {
		t.Date = "Date"
	}
	if t.Weight == "" {
		t.Weight = "45kg"
	}
	if t.Scale == "" {
		t.Scale = "1:2"
	}
}

// Title block region on the standard sheet, directly below the parts
// table. Signature markers sit in two columns; the x thresholds in
// UpdateTitleBlock tell them apart.
const (
	titleBlockLeft   = 999.0
	titleBlockRight  = 1178.5
	titleBlockBottom = 10.0
	titleBlockTop    = 50.0

	designerSignX = 1019.5
	reviewerSignX = 1051.5
)

// DrawTitleBlock draws the title block grid with placeholder marker
// texts. The markers are the substitution targets of UpdateTitleBlock;
// generating them instead of loading a pre-printed sheet keeps the two
// functions coherent.
func DrawTitleBlock(c Canvas, cfg *Config) (Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	frameLayer := cfg.LayerName("TITLE_BLOCK")
	textLayer := cfg.LayerName("TEXT")
	titleHeight, ok := cfg.TextHeight("TITLE")
	if !ok {
		titleHeight = 5
	}
	labelHeight, ok := cfg.TextHeight("SUBTITLE")
	if !ok {
		labelHeight = 3.5
	}

	var res Result
	addLine := func(a, b Point) error {
		h, err := c.AddLine(a, b, frameLayer, "")
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}
	addText := func(text string, at Point, height float64) error {
		h, err := c.AddText(text, at, height, textLayer, "", HCenter, VMiddle)
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}

	lines := [][2]Point{
		{Pt(titleBlockLeft, titleBlockBottom), Pt(titleBlockRight, titleBlockBottom)},
		{Pt(titleBlockRight, titleBlockBottom), Pt(titleBlockRight, titleBlockTop)},
		{Pt(titleBlockRight, titleBlockTop), Pt(titleBlockLeft, titleBlockTop)},
		{Pt(titleBlockLeft, titleBlockTop), Pt(titleBlockLeft, titleBlockBottom)},

		{Pt(titleBlockLeft, 40), Pt(1089, 40)},
		{Pt(titleBlockLeft, 30), Pt(titleBlockRight, 30)},
		{Pt(titleBlockLeft, 20), Pt(1119, 20)},

		{Pt(1089, titleBlockBottom), Pt(1089, titleBlockTop)},
		{Pt(1119, titleBlockBottom), Pt(1119, 30)},

		{Pt(1010, 40), Pt(1010, titleBlockTop)},
		{Pt(1029, 40), Pt(1029, titleBlockTop)},
		{Pt(1044, 40), Pt(1044, titleBlockTop)},
		{Pt(1059, 40), Pt(1059, titleBlockTop)},
	}
	for _, seg := range lines {
		if err := addLine(seg[0], seg[1]); err != nil {
			return nil, err
		}
	}

	texts := []struct {
		value  string
		at     Point
		height float64
	}{
		{"设计", Pt(1004.5, 45), labelHeight},
		{"（签名）", Pt(designerSignX, 45), labelHeight},
		{"审核", Pt(1036.5, 45), labelHeight},
		{"（签名）", Pt(reviewerSignX, 45), labelHeight},
		{"（年月日）", Pt(1074, 45), labelHeight},
		{"标准号", Pt(1044, 35), labelHeight},
		{"材料标记", Pt(1044, 25), labelHeight},
		{"（单位名称）", Pt(1044, 15), labelHeight},
		{"（图样名称）", Pt(1133.75, 40), titleHeight},
		{"weight", Pt(1104, 25), labelHeight},
		{"scale", Pt(1104, 15), labelHeight},
		{"（图样代号）", Pt(1148.75, 20), titleHeight},
	}
	for _, t := range texts {
		if err := addText(t.value, t.at, t.height); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// UpdateTitleBlock substitutes the title block marker texts in place
// with the given field values and upgrades the matched entities to the
// size-5 table font when the document carries it. Which signature cell
// a marker fills depends on its x position: left of 1030 is the
// designer, from there to 1060 the reviewer. It returns the number of
// texts replaced; a document whose markers were already substituted
// reports zero.
func UpdateTitleBlock(doc *Document, info TitleInfo) int {
	info.setDefaults()

	style := "Standard"
	if doc.HasStyle(partsTableStyle) {
		style = partsTableStyle
	}

	replaced := 0
	for _, e := range doc.entities {
		t, ok := e.(*Text)
		if !ok {
			continue
		}
		value, matched := substituteMarker(t.Value, t.Position, info)
		if !matched {
			continue
		}
		t.Value = value
		t.Style = style
		replaced++
	}
	Logger().Debug("title block updated", "replaced", replaced)
	return replaced
}

// substituteMarker maps one marker text to its replacement. The match
// order mirrors the template conventions; signature markers are
// disambiguated by position.
func substituteMarker(text string, pos Point, info TitleInfo) (string, bool) {
	switch {
	case strings.Contains(text, "图样名称"):
		return info.Name, true
	case strings.Contains(text, "图样代号"):
		return info.Code, true
	case strings.Contains(text, "单位名称"):
		return info.Organization, true
	case strings.Contains(text, "（签名）") || strings.Contains(text, "(签名)"):
		if pos.X < 1030 {
			return info.Designer, true
		}
		if pos.X < 1060 {
			return info.Reviewer, true
		}
		return "", false
	case strings.Contains(text, "（年月日）") || strings.Contains(text, "(年月日)") || strings.Contains(text, "年、月、日"):
		return info.Date, true
	case strings.Contains(text, "材料标记"):
		return info.Material, true
	case strings.Contains(text, "标准号"):
		return info.StandardNo, true
	case strings.Contains(text, "weight"):
		return info.Weight, true
	case strings.Contains(text, "scale"):
		return info.Scale, true
	default:
		return "", false
	}
}
