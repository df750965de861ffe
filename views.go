package mechdraw

// viewStrategy draws view bookkeeping marks: section cut lines with
// direction arrows, section view labels, detail view indicators and
// free text placement.
type viewStrategy struct {
	canvas Canvas
	cfg    *Config
}

func newViewStrategy(c Canvas, cfg *Config) *viewStrategy {
	return &viewStrategy{canvas: c, cfg: cfg}
}

func (s *viewStrategy) Kind() StrategyKind { return KindViews }

func (s *viewStrategy) Draw(op string, p Params) (Result, error) {
	switch op {
	case "section_line":
		return s.sectionLine(p)
	case "section_view_label":
		return s.sectionViewLabel(p)
	case "detail_view":
		return s.detailView(p)
	case "text":
		return s.text(p)
	default:
		return nil, &OpError{Strategy: KindViews, Op: op}
	}
}

// sectionLine draws a cutting plane trace: the main line in CENTER
// linetype, a double-stroke viewing arrow inset 5 units from each end,
// and a "{label}-{label}" text beyond each endpoint. A zero-length
// trace has no direction and yields an empty result.
func (s *viewStrategy) sectionLine(p Params) (Result, error) {
	start, ok := p.Point("start_point")
	if !ok {
		return nil, missingParam("section_line", "start_point")
	}
	end, ok := p.Point("end_point")
	if !ok {
		return nil, missingParam("section_line", "end_point")
	}
	label := p.StringOr("section_label", "A")
	arrowSize := p.FloatOr("arrow_size", 3)

	d := end.Sub(start)
	length := d.Length()
	if length == 0 {
		return Result{}, nil
	}
	d = d.Mul(1 / length)
	n := d.Perp()

	layer := s.cfg.LayerName("CUTTING_PLANE")
	var res Result

	addLine := func(a, b Point, linetype string) error {
		h, err := s.canvas.AddLine(a, b, layer, linetype)
		if err != nil {
			return err
		}
		res = append(res, h)
		return nil
	}

	const arrowOffset = 5.0
	arrow1 := start.Add(d.Mul(arrowOffset))
	arrow2 := end.Sub(d.Mul(arrowOffset))

	if err := addLine(start, end, "CENTER"); err != nil {
		return nil, err
	}

	// First arrow points along d, second against it.
	if err := addLine(arrow1.Sub(d.Mul(arrowSize)).Add(n.Mul(arrowSize)), arrow1, ""); err != nil {
		return nil, err
	}
	if err := addLine(arrow1.Sub(d.Mul(arrowSize)).Sub(n.Mul(arrowSize)), arrow1, ""); err != nil {
		return nil, err
	}
	if err := addLine(arrow2.Add(d.Mul(arrowSize)).Add(n.Mul(arrowSize)), arrow2, ""); err != nil {
		return nil, err
	}
	if err := addLine(arrow2.Add(d.Mul(arrowSize)).Sub(n.Mul(arrowSize)), arrow2, ""); err != nil {
		return nil, err
	}

	const textOffset = 8.0
	tag := label + "-" + label
	h, err := s.canvas.AddText(tag, start.Sub(d.Mul(textOffset)), 5, layer, "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	res = append(res, h)
	h, err = s.canvas.AddText(tag, end.Add(d.Mul(textOffset)), 5, layer, "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	return append(res, h), nil
}

// sectionViewLabel places a "剖视图 {label}" heading with an underline
// sized from a per-character width estimate.
func (s *viewStrategy) sectionViewLabel(p Params) (Result, error) {
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("section_view_label", "position")
	}
	label := p.StringOr("section_label", "A-A")
	height := p.FloatOr("height", 5)

	layer := s.cfg.LayerName("TEXT")
	text := "剖视图 " + label

	h, err := s.canvas.AddText(text, pos, height, layer, "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	res := Result{h}

	textLength := float64(len([]rune(text))) * height * 0.6
	underlineY := pos.Y - height*0.8
	h, err = s.canvas.AddLine(Pt(pos.X-textLength/2, underlineY), Pt(pos.X+textLength/2, underlineY), layer, "")
	if err != nil {
		return nil, err
	}
	return append(res, h), nil
}

// detailView marks a region for enlargement: a circle with the detail
// identifier above it and the enlargement scale below it, both offset
// by 1.2 radii.
func (s *viewStrategy) detailView(p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam("detail_view", "center")
	}
	radius, ok := p.Float("radius")
	if !ok {
		return nil, missingParam("detail_view", "radius")
	}
	if radius <= 0 {
		return nil, invalidParam("detail_view", "radius", "must be positive")
	}
	label := p.StringOr("detail_label", "B")
	scale := p.StringOr("scale", "2:1")

	layer := s.cfg.LayerName("DETAIL")

	h, err := s.canvas.AddCircle(center, radius, layer)
	if err != nil {
		return nil, err
	}
	res := Result{h}

	h, err = s.canvas.AddText(label, Pt(center.X, center.Y+radius*1.2), 5, layer, "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	res = append(res, h)

	h, err = s.canvas.AddText(scale, Pt(center.X, center.Y-radius*1.2), 3.5, layer, "", HLeft, VBaseline)
	if err != nil {
		return nil, err
	}
	return append(res, h), nil
}

// text places a free text, centered and bottom-aligned by default.
func (s *viewStrategy) text(p Params) (Result, error) {
	value, ok := p.String("text")
	if !ok {
		return nil, missingParam("text", "text")
	}
	pos, ok := p.Point("position")
	if !ok {
		return nil, missingParam("text", "position")
	}
	height := p.FloatOr("height", 2.5)
	layer := s.cfg.LayerName(p.StringOr("layer", "TEXT"))
	style := p.StringOr("style", "")
	halign := HAlign(p.IntOr("halign", int(HCenter)))
	valign := VAlign(p.IntOr("valign", int(VBottom)))

	h, err := s.canvas.AddText(value, pos, height, layer, style, halign, valign)
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}
