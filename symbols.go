package mechdraw

import (
	"math"
	"strings"
)

// symbolStrategy draws engineering annotation symbols: surface
// roughness marks, geometric tolerance frames, welding symbols and
// leader arrows with text.
type symbolStrategy struct {
	canvas Canvas
	cfg    *Config
}

func newSymbolStrategy(c Canvas, cfg *Config) *symbolStrategy {
	return &symbolStrategy{canvas: c, cfg: cfg}
}

func (s *symbolStrategy) Kind() StrategyKind { return KindSymbols }

func (s *symbolStrategy) Draw(op string, p Params) (Result, error) {
	switch op {
	case "roughness":
		return s.roughness(p)
	case "advanced_surface_finish":
		return s.advancedSurfaceFinish(p)
	case "geometric_tolerance":
		return s.geometricTolerance(p)
	case "welding_symbol":
		return s.weldingSymbol(p)
	case "leader_arrow":
		return s.leaderArrow(p)
	default:
		return nil, &OpError{Strategy: KindSymbols, Op: op}
	}
}

// roughness draws the basic checkmark symbol with an Ra value to its
// right: a vertical stem, the slanted flank and a horizontal top bar.
func (s *symbolStrategy) roughness(p Params) (Result, error) {
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("roughness", "position")
	}
	value, ok := p.String("roughness_value")
	if !ok {
		return nil, missingParam("roughness", "roughness_value")
	}
	height := p.FloatOr("height", 3)

	x, y := pos.X, pos.Y
	layer := s.cfg.LayerName("DIMENSIONS")
	res := make(Result, 0, 4)

	segs := [3][2]Point{
		{Pt(x, y), Pt(x, y+6)},
		{Pt(x, y+6), Pt(x+4, y+10)},
		{Pt(x+4, y+10), Pt(x+10, y+10)},
	}
	for _, seg := range segs {
		h, err := s.canvas.AddLine(seg[0], seg[1], layer, "")
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}

	h, err := s.canvas.AddText("Ra"+value, Pt(x+15, y+10), height,
		s.cfg.LayerName("TEXT"), "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	return append(res, h), nil
}

// advancedSurfaceFinish draws the full surface texture symbol with
// optional machining method, waviness, lay direction and cutoff
// wavelength fields.
func (s *symbolStrategy) advancedSurfaceFinish(p Params) (Result, error) {
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("advanced_surface_finish", "position")
	}
	raValue, ok := p.String("ra_value")
	if !ok {
		return nil, missingParam("advanced_surface_finish", "ra_value")
	}
	height := p.FloatOr("height", 2.5)

	x, y := pos.X, pos.Y
	layer := s.cfg.LayerName("SURFACE_FINISH")
	const symHeight, symWidth = 10.0, 10.0
	var res Result

	addLine := func(a, b Point) error {
		h, err := s.canvas.AddLine(a, b, layer, "")
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}
	addText := func(text string, at Point, th float64) error {
		h, err := s.canvas.AddText(text, at, th, layer, "", HLeft, VBaseline)
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}

	if err := addLine(Pt(x, y), Pt(x, y+symHeight*0.6)); err != nil {
		return nil, err
	}
	if err := addLine(Pt(x, y+symHeight*0.6), Pt(x+symWidth*0.4, y+symHeight)); err != nil {
		return nil, err
	}
	if err := addLine(Pt(x+symWidth*0.4, y+symHeight), Pt(x+symWidth, y+symHeight)); err != nil {
		return nil, err
	}

	if method := p.StringOr("machining_method", ""); method != "" {
		if err := addLine(Pt(x, y+symHeight*0.6), Pt(x+symWidth, y+symHeight*0.6)); err != nil {
			return nil, err
		}
		if err := addText(method, Pt(x+symWidth*0.5, y+symHeight*0.8), height); err != nil {
			return nil, err
		}
	}

	textX := x + symWidth*1.2
	if err := addText("Ra"+raValue, Pt(textX, y+symHeight*0.5), height); err != nil {
		return nil, err
	}

	var extra []string
	if waviness := p.StringOr("waviness", ""); waviness != "" {
		extra = append(extra, "W"+waviness)
	}
	if lay := p.StringOr("lay", ""); lay != "" {
		extra = append(extra, "Lay "+lay)
	}
	if cutoff := p.StringOr("cutoff", ""); cutoff != "" {
		extra = append(extra, "λc "+cutoff)
	}
	if len(extra) > 0 {
		if err := addText(strings.Join(extra, ", "), Pt(textX, y+symHeight*0.2), height*0.8); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// geometricTolerance draws a feature control frame: the characteristic
// symbol and tolerance value in a 14x7 box, optionally extended by a
// 7-wide datum compartment.
func (s *symbolStrategy) geometricTolerance(p Params) (Result, error) {
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("geometric_tolerance", "position")
	}
	symbol, ok := p.String("symbol")
	if !ok {
		return nil, missingParam("geometric_tolerance", "symbol")
	}
	tolerance, ok := p.String("tolerance")
	if !ok {
		if f, fok := p.Float("tolerance"); fok {
			tolerance = formatDimValue(f)
		} else {
			return nil, missingParam("geometric_tolerance", "tolerance")
		}
	}
	height := p.FloatOr("height", 2.5)

	x, y := pos.X, pos.Y
	layer := s.cfg.LayerName("TOLERANCE")
	const boxWidth, boxHeight = 14.0, 7.0
	var res Result

	addLine := func(a, b Point) error {
		h, err := s.canvas.AddLine(a, b, layer, "")
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}
	addText := func(text string, at Point) error {
		h, err := s.canvas.AddText(text, at, height, layer, "", HLeft, VBaseline)
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}

	box := [4][2]Point{
		{Pt(x, y), Pt(x+boxWidth, y)},
		{Pt(x+boxWidth, y), Pt(x+boxWidth, y+boxHeight)},
		{Pt(x+boxWidth, y+boxHeight), Pt(x, y+boxHeight)},
		{Pt(x, y+boxHeight), Pt(x, y)},
	}
	for _, seg := range box {
		if err := addLine(seg[0], seg[1]); err != nil {
			return nil, err
		}
	}

	if datum := p.StringOr("datum", ""); datum != "" {
		if err := addLine(Pt(x+boxWidth, y), Pt(x+boxWidth+7, y)); err != nil {
			return nil, err
		}
		if err := addLine(Pt(x+boxWidth+7, y), Pt(x+boxWidth+7, y+boxHeight)); err != nil {
			return nil, err
		}
		if err := addLine(Pt(x+boxWidth+7, y+boxHeight), Pt(x+boxWidth, y+boxHeight)); err != nil {
			return nil, err
		}
		if err := addText(datum, Pt(x+boxWidth+3.5, y+boxHeight/2)); err != nil {
			return nil, err
		}
	}

	if err := addText(symbol, Pt(x+3, y+boxHeight/2)); err != nil {
		return nil, err
	}
	if err := addText(tolerance, Pt(x+10, y+boxHeight/2)); err != nil {
		return nil, err
	}
	return res, nil
}

// weldingSymbol draws a weld reference line with an arrow at its left
// end, the weld type above the line, optional size-length and process
// notes below it, and an optional field weld flag.
func (s *symbolStrategy) weldingSymbol(p Params) (Result, error) {
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("welding_symbol", "position")
	}
	weldType, ok := p.String("weld_type")
	if !ok {
		return nil, missingParam("welding_symbol", "weld_type")
	}
	height := p.FloatOr("height", 2.5)

	x, y := pos.X, pos.Y
	layer := s.cfg.LayerName("WELD_SYMBOL")
	const symLength = 30.0
	const arrowSize = 3.0
	const flagHeight = 5.0
	var res Result

	addLine := func(a, b Point) error {
		h, err := s.canvas.AddLine(a, b, layer, "")
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}
	addText := func(text string, at Point, th float64) error {
		h, err := s.canvas.AddText(text, at, th, layer, "", HLeft, VBaseline)
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}

	if err := addLine(Pt(x, y), Pt(x+symLength, y)); err != nil {
		return nil, err
	}
	if err := addLine(Pt(x, y), Pt(x+arrowSize, y+arrowSize)); err != nil {
		return nil, err
	}
	if err := addLine(Pt(x, y), Pt(x+arrowSize, y-arrowSize)); err != nil {
		return nil, err
	}

	if p.BoolOr("field", false) {
		if err := addLine(Pt(x+symLength*0.8, y), Pt(x+symLength*0.8, y+flagHeight)); err != nil {
			return nil, err
		}
		h, err := s.canvas.AddCircle(Pt(x+symLength*0.8, y+flagHeight+1), 1, layer)
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}

	symX := x + symLength*0.5
	if err := addText(weldType, Pt(symX, y+3), height); err != nil {
		return nil, err
	}

	info := p.StringOr("size", "")
	if length := p.StringOr("length", ""); length != "" {
		if info != "" {
			info += "-"
		}
		info += length
	}
	if info != "" {
		if err := addText(info, Pt(symX, y-3), height); err != nil {
			return nil, err
		}
	}

	process := p.StringOr("process", "")
	finish := p.StringOr("finish", "")
	if process != "" || finish != "" {
		proc := process
		if finish != "" {
			if proc != "" {
				proc += ", "
			}
			proc += finish
		}
		if err := addText(proc, Pt(symX, y-6), height*0.8); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// leaderArrow draws a leader from end_point through an extended anchor
// behind start_point, then routes a horizontal landing segment so the
// note text clears the view. Which side the landing runs to depends on
// the leader direction: a clear horizontal offset between the points
// wins, otherwise a near-vertical leader lands away from its pointing
// direction. A leader that is already horizontal is just extended by
// one unit. The note is drawn centered at middle height next to the
// landing end.
func (s *symbolStrategy) leaderArrow(p Params) (Result, error) {
	start, ok := p.Point("start_point")
	if !ok {
		return nil, missingParam("leader_arrow", "start_point")
	}
	end, ok := p.Point("end_point")
	if !ok {
		return nil, missingParam("leader_arrow", "end_point")
	}
	text, ok := p.String("text")
	if !ok {
		return nil, missingParam("leader_arrow", "text")
	}

	dimLayer := s.cfg.LayerName("DIMENSIONS")
	textLayer := s.cfg.LayerName("TEXT")
	const height = 3.5

	dx := end.X - start.X
	dy := end.Y - start.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist > 0 {
		dx /= dist
		dy /= dist
	}

	const extensionFactor = 0.2
	anchor := Pt(start.X-dx*dist*extensionFactor, start.Y-dy*dist*extensionFactor)

	var res Result
	h, err := s.canvas.AddLine(end, anchor, dimLayer, "")
	if err != nil {
		return nil, err
	}
	res = append(res, h)

	const textOffset = 5.0
	var horizEnd, textPoint Point

	if isHorizontal := math.Abs(dy) < 0.05; !isHorizontal {
		const horizontalLength = 10.0

		// The raw horizontal offset decides the landing side; only a
		// near-vertical leader falls back to the pointing direction.
		viewDirectionX := start.X - end.X
		var dir float64
		if math.Abs(viewDirectionX) > 10 {
			dir = 1
			if viewDirectionX < 0 {
				dir = -1
			}
		} else {
			dir = 1
			if dx > 0 {
				dir = -1
			}
		}

		horizEnd = Pt(anchor.X+horizontalLength*dir, anchor.Y)
		textPoint = Pt(horizEnd.X+textOffset*dir, horizEnd.Y)
	} else {
		dir := -1.0
		if start.X < end.X {
			dir = 1
		}
		const extraLength = 1.0

		horizEnd = Pt(anchor.X+extraLength*dir, anchor.Y)
		textPoint = Pt(horizEnd.X+textOffset*dir, horizEnd.Y)
	}

	h, err = s.canvas.AddLine(anchor, horizEnd, dimLayer, "")
	if err != nil {
		return nil, err
	}
	res = append(res, h)

	h, err = s.canvas.AddText(text, textPoint, height, textLayer, "", HCenter, VMiddle)
	if err != nil {
		return nil, err
	}
	return append(res, h), nil
}
