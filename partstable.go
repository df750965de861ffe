package mechdraw

import (
	"fmt"
	"sort"
	"strconv"
)

// PartRow is one record of the assembly parts list. All fields are
// free text; quantity and weights stay strings so callers control
// their formatting.
type PartRow struct {
	Code        string
	Name        string
	Quantity    string
	Material    string
	UnitWeight  string
	TotalWeight string
	Remarks     string
}

// TableLayout reports the computed parts table geometry.
type TableLayout struct {
	BaseX     float64
	BaseY     float64
	RowHeight float64
	Rows      int
}

// Parts table geometry, measured off the standard sheet: the table
// sits above the title block at the right sheet edge and grows upward.
const (
	partsTableLeft       = 999.0
	partsTableRowHeight  = 7.0
	partsTableTextHeight = 3.5
	partsTableStyle      = "5号字体"
)

// partsColumns lists the table columns left to right with their text
// center x and printed width.
var partsColumns = []struct {
	name   string
	center float64
	width  float64
}{
	{"序号", 1003.0, 8},
	{"代号", 1029.0, 44},
	{"名称", 1071.0, 40},
	{"数量", 1095.0, 8},
	{"材料", 1118.0, 38},
	{"单件质量", 1142.0, 10},
	{"总计质量", 1153.0, 12},
	{"备注", 1200.0, 19.5},
}

// partsRowY holds the pre-printed template positions of the first
// three rows.
var partsRowY = map[int]float64{1: 53.5, 2: 60.5, 3: 67.5}

// styleTable is satisfied by canvases that expose their text style
// registrations, such as Document.
type styleTable interface {
	HasStyle(name string) bool
}

// tableTextStyle picks the size-5 table font when the canvas carries
// it, otherwise the plain default.
func tableTextStyle(c Canvas) string {
	if st, ok := c.(styleTable); ok && st.HasStyle(partsTableStyle) {
		return partsTableStyle
	}
	return "Standard"
}

// AddPartsTable lays out the assembly parts list. Indices 1 through 3
// land on the pre-printed template rows; higher indices become new
// rows stacked above row 3 at the fixed row height, in index order,
// keeping their caller-assigned sequence numbers. Each row prints
// eight centered cells; a blank code is substituted with a generated
// "P{index:02d}" code, and name and material are cut to 10 characters.
//
// After the rows the overflow region is framed: one divider at each
// overflow row's lower midline, a closing border past the last row,
// and the left frame plus inner column dividers spanning that extent.
// Without overflow rows only the cap divider above row 3 is drawn and
// the reported row count is the template's 16.
//
// The layout is a pure function of the input mapping; calling it again
// with the same parts yields identical geometry.
func AddPartsTable(c Canvas, cfg *Config, parts map[int]PartRow) (TableLayout, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	textLayer := cfg.LayerName("TEXT")
	frameLayer := cfg.LayerName("TABLE")
	style := tableTextStyle(c)

	for i := 1; i <= 3; i++ {
		row, ok := parts[i]
		if !ok {
			continue
		}
		if err := addPartRow(c, textLayer, style, i, row, partsRowY[i]); err != nil {
			return TableLayout{}, err
		}
	}

	var overflow []int
	for i := range parts {
		if i > 3 {
			overflow = append(overflow, i)
		}
	}
	sort.Ints(overflow)

	startY := partsRowY[3] + partsTableRowHeight
	for k, i := range overflow {
		y := startY + float64(k)*partsTableRowHeight
		if err := addPartRow(c, textLayer, style, i, parts[i], y); err != nil {
			return TableLayout{}, err
		}
	}

	if err := framePartsTable(c, frameLayer, len(overflow)); err != nil {
		return TableLayout{}, err
	}

	rows := 16
	if n := len(overflow); n > 0 {
		rows = min(17, 3+n)
	}
	layout := TableLayout{
		BaseX:     partsTableLeft,
		BaseY:     partsRowY[1],
		RowHeight: partsTableRowHeight,
		Rows:      rows,
	}
	Logger().Debug("parts table laid out", "rows", layout.Rows, "overflow", len(overflow))
	return layout, nil
}

// addPartRow prints the eight cells of one row, centered on the column
// positions at the row's y.
func addPartRow(c Canvas, layer, style string, seq int, row PartRow, y float64) error {
	code := row.Code
	if code == "" {
		code = generatedPartCode(seq)
	}
	cells := [8]string{
		strconv.Itoa(seq),
		code,
		truncateCell(row.Name, "名称", y),
		row.Quantity,
		truncateCell(row.Material, "材料", y),
		row.UnitWeight,
		row.TotalWeight,
		row.Remarks,
	}
	for i, col := range partsColumns {
		if est := DisplayWidth(cells[i]) * partsTableTextHeight; est > col.width {
			Logger().Warn("parts table cell wider than column",
				"column", col.name, "width", col.width, "estimated", est)
		}
		_, err := c.AddText(cells[i], Pt(col.center, y), partsTableTextHeight,
			layer, style, HCenter, VBottom)
		if err != nil {
			return err
		}
	}
	return nil
}

// generatedPartCode substitutes a position code for rows that carry
// no drawing code of their own.
func generatedPartCode(seq int) string {
	return fmt.Sprintf("P%02d", seq)
}

// truncateCell cuts a cell to the 10-character table limit, warning
// when content is lost.
func truncateCell(s, column string, y float64) string {
	cut := TruncateRunes(s, 10)
	if cut != s {
		Logger().Warn("parts table cell truncated", "column", column, "y", y, "text", s)
	}
	return cut
}

// framePartsTable draws the overflow frame: n+1 horizontal boundaries
// at the row midlines, the left frame line and the inner column
// dividers. The rightmost column edge is the sheet frame and is not
// redrawn.
func framePartsTable(c Canvas, layer string, n int) error {
	tableRight := partsTableLeft
	for _, col := range partsColumns {
		tableRight += col.width
	}
	capY := partsRowY[3] + partsTableRowHeight/2

	if n == 0 {
		_, err := c.AddLine(Pt(partsTableLeft, capY), Pt(tableRight, capY), layer, "")
		return err
	}

	bottomY := capY + float64(n)*partsTableRowHeight
	for k := 0; k <= n; k++ {
		y := capY + float64(k)*partsTableRowHeight
		if _, err := c.AddLine(Pt(partsTableLeft, y), Pt(tableRight, y), layer, ""); err != nil {
			return err
		}
	}

	if _, err := c.AddLine(Pt(partsTableLeft, capY), Pt(partsTableLeft, bottomY), layer, ""); err != nil {
		return err
	}

	x := partsTableLeft
	for i, col := range partsColumns {
		x += col.width
		if i == len(partsColumns)-1 {
			break
		}
		if _, err := c.AddLine(Pt(x, capY), Pt(x, bottomY), layer, ""); err != nil {
			return err
		}
	}
	return nil
}
