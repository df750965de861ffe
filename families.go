package mechdraw

// ShaftParams sizes a shaft drawing. Zero values fall back to a 20 mm
// diameter, 100 mm long shaft at the origin.
type ShaftParams struct {
	Origin   Point
	Diameter float64
	Length   float64
}

func (p *ShaftParams) setDefaults() {
	if p.Diameter == 0 {
		p.Diameter = 20
	}
	if p.Length == 0 {
		p.Length = 100
	}
}

// NewShaftTemplate assembles the drawing pipeline for rotational parts:
// the front view is the shaft outline with its axis centerline, the
// auxiliary view is the end circle to the left, and the dimensions
// phase adds the length and the end view diameter.
func NewShaftTemplate(c Canvas, cfg *Config, reg *StrategyRegistry, params ShaftParams) *Template {
	params.setDefaults()
	t := NewTemplate(c, cfg, reg)
	x, y := params.Origin.X, params.Origin.Y
	diameter, length := params.Diameter, params.Length

	t.DrawMainView = func(t *Template) error {
		if _, err := t.Draw(KindShapes, "rectangle", Params{
			"lower_left": Pt(x-length/2, y-diameter/2),
			"width":      length,
			"height":     diameter,
			"layer":      "PARTS",
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(x-length/2-10, y),
			"end":   Pt(x+length/2+10, y),
		})
		return err
	}

	t.DrawAuxiliaryViews = func(t *Template) error {
		viewX := x - 80
		if _, err := t.Draw(KindShapes, "circle", Params{
			"center": Pt(viewX, y),
			"radius": diameter / 2,
			"layer":  "PARTS",
		}); err != nil {
			return err
		}
		if _, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(viewX-diameter/2-5, y),
			"end":   Pt(viewX+diameter/2+5, y),
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(viewX, y-diameter/2-5),
			"end":   Pt(viewX, y+diameter/2+5),
		})
		return err
	}

	t.AddDimensions = func(t *Template) error {
		if _, err := t.Draw(KindDimensions, "linear", Params{
			"p1":       Pt(x-length/2, y-diameter/2),
			"p2":       Pt(x+length/2, y-diameter/2),
			"distance": 15.0,
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindDimensions, "diameter", Params{
			"center": Pt(x-80, y),
			"radius": diameter / 2,
			"angle":  45.0,
		})
		return err
	}

	return t
}

// GearParams sizes a gear drawing. Zero values fall back to a 60 mm
// outer diameter, 20 mm bore, 15 mm thick gear at the origin.
type GearParams struct {
	Origin        Point
	OuterDiameter float64
	InnerDiameter float64
	Thickness     float64
}

func (p *GearParams) setDefaults() {
	if p.OuterDiameter == 0 {
		p.OuterDiameter = 60
	}
	if p.InnerDiameter == 0 {
		p.InnerDiameter = 20
	}
	if p.Thickness == 0 {
		p.Thickness = 15
	}
}

// NewGearTemplate assembles the drawing pipeline for gears: the front
// view is the outer circle and bore with crossed centerlines, the
// auxiliary view is the side profile rectangle to the right, and the
// dimensions phase calls out both diameters.
func NewGearTemplate(c Canvas, cfg *Config, reg *StrategyRegistry, params GearParams) *Template {
	params.setDefaults()
	t := NewTemplate(c, cfg, reg)
	x, y := params.Origin.X, params.Origin.Y
	outer, inner, thickness := params.OuterDiameter, params.InnerDiameter, params.Thickness

	t.DrawMainView = func(t *Template) error {
		if _, err := t.Draw(KindShapes, "circle", Params{
			"center": Pt(x, y),
			"radius": outer / 2,
			"layer":  "PARTS",
		}); err != nil {
			return err
		}
		if _, err := t.Draw(KindShapes, "circle", Params{
			"center": Pt(x, y),
			"radius": inner / 2,
			"layer":  "PARTS",
		}); err != nil {
			return err
		}
		if _, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(x-outer/2-10, y),
			"end":   Pt(x+outer/2+10, y),
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(x, y-outer/2-10),
			"end":   Pt(x, y+outer/2+10),
		})
		return err
	}

	t.DrawAuxiliaryViews = func(t *Template) error {
		viewX := x + 80
		if _, err := t.Draw(KindShapes, "rectangle", Params{
			"lower_left": Pt(viewX-thickness/2, y-outer/2),
			"width":      thickness,
			"height":     outer,
			"layer":      "PARTS",
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindShapes, "centerline", Params{
			"start": Pt(viewX, y-outer/2-10),
			"end":   Pt(viewX, y+outer/2+10),
		})
		return err
	}

	t.AddDimensions = func(t *Template) error {
		if _, err := t.Draw(KindDimensions, "diameter", Params{
			"center": Pt(x, y),
			"radius": outer / 2,
			"angle":  45.0,
		}); err != nil {
			return err
		}
		_, err := t.Draw(KindDimensions, "diameter", Params{
			"center": Pt(x, y),
			"radius": inner / 2,
			"angle":  135.0,
		})
		return err
	}

	return t
}
