package mechdraw

import "math"

// shapeStrategy draws the primitive geometry operations: circles,
// rectangles, lines in the standard linetypes, polylines, arcs,
// ellipses, splines and hatches.
type shapeStrategy struct {
	canvas Canvas
	cfg    *Config
}

func newShapeStrategy(c Canvas, cfg *Config) *shapeStrategy {
	return &shapeStrategy{canvas: c, cfg: cfg}
}

func (s *shapeStrategy) Kind() StrategyKind { return KindShapes }

// layer maps a logical layer parameter to its physical table name,
// defaulting to def when the parameter is absent.
func (s *shapeStrategy) layer(p Params, def string) string {
	return s.cfg.LayerName(p.StringOr("layer", def))
}

func (s *shapeStrategy) Draw(op string, p Params) (Result, error) {
	switch op {
	case "circle":
		return s.circle(p)
	case "rectangle":
		return s.rectangle(p)
	case "line":
		return s.line(p)
	case "centerline":
		return s.styledLine(op, p, "CENTERLINE", "CENTER")
	case "hiddenline":
		return s.styledLine(op, p, "HIDDEN", "HIDDEN")
	case "phantomline":
		return s.styledLine(op, p, "PHANTOM", "PHANTOM")
	case "borderline":
		return s.styledLine(op, p, "BORDER", "BORDER")
	case "polyline":
		return s.polyline(p)
	case "arc":
		return s.arc(p)
	case "ellipse":
		return s.ellipse(p)
	case "spline":
		return s.spline(p)
	case "hatch":
		return s.hatch(p)
	default:
		return nil, &OpError{Strategy: KindShapes, Op: op}
	}
}

func (s *shapeStrategy) circle(p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam("circle", "center")
	}
	radius, ok := p.Float("radius")
	if !ok {
		return nil, missingParam("circle", "radius")
	}
	if radius <= 0 {
		return nil, invalidParam("circle", "radius", "must be positive")
	}
	h, err := s.canvas.AddCircle(center, radius, s.layer(p, "PARTS"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

// rectangle draws four edges counterclockwise from the lower-left
// corner: bottom, right, top, left.
func (s *shapeStrategy) rectangle(p Params) (Result, error) {
	ll, ok := p.Point("lower_left")
	if !ok {
		return nil, missingParam("rectangle", "lower_left")
	}
	width, ok := p.Float("width")
	if !ok {
		return nil, missingParam("rectangle", "width")
	}
	height, ok := p.Float("height")
	if !ok {
		return nil, missingParam("rectangle", "height")
	}
	if width <= 0 {
		return nil, invalidParam("rectangle", "width", "must be positive")
	}
	if height <= 0 {
		return nil, invalidParam("rectangle", "height", "must be positive")
	}

	layer := s.layer(p, "PARTS")
	corners := [4]Point{
		ll,
		{X: ll.X + width, Y: ll.Y},
		{X: ll.X + width, Y: ll.Y + height},
		{X: ll.X, Y: ll.Y + height},
	}
	res := make(Result, 0, 4)
	for i := range corners {
		h, err := s.canvas.AddLine(corners[i], corners[(i+1)%4], layer, "")
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}
	return res, nil
}

func (s *shapeStrategy) line(p Params) (Result, error) {
	start, ok := p.Point("start")
	if !ok {
		return nil, missingParam("line", "start")
	}
	end, ok := p.Point("end")
	if !ok {
		return nil, missingParam("line", "end")
	}
	h, err := s.canvas.AddLine(start, end, s.layer(p, "VISIBLE"), "")
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

// styledLine draws a segment on a fixed logical layer with a fixed
// linetype; the caller cannot override either.
func (s *shapeStrategy) styledLine(op string, p Params, logical, linetype string) (Result, error) {
	start, ok := p.Point("start")
	if !ok {
		return nil, missingParam(op, "start")
	}
	end, ok := p.Point("end")
	if !ok {
		return nil, missingParam(op, "end")
	}
	h, err := s.canvas.AddLine(start, end, s.cfg.LayerName(logical), linetype)
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *shapeStrategy) polyline(p Params) (Result, error) {
	points, ok := p.Points("points")
	if !ok {
		return nil, missingParam("polyline", "points")
	}
	if len(points) < 2 {
		return nil, invalidParam("polyline", "points", "needs at least 2 points")
	}
	closed := p.BoolOr("closed", false)
	h, err := s.canvas.AddPolyline(points, closed, s.layer(p, "PARTS"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *shapeStrategy) arc(p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam("arc", "center")
	}
	radius, ok := p.Float("radius")
	if !ok {
		return nil, missingParam("arc", "radius")
	}
	if radius <= 0 {
		return nil, invalidParam("arc", "radius", "must be positive")
	}
	startAngle, ok := p.Float("start_angle")
	if !ok {
		return nil, missingParam("arc", "start_angle")
	}
	endAngle, ok := p.Float("end_angle")
	if !ok {
		return nil, missingParam("arc", "end_angle")
	}
	h, err := s.canvas.AddArc(center, radius, startAngle, endAngle, s.layer(p, "PARTS"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *shapeStrategy) ellipse(p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam("ellipse", "center")
	}
	major, ok := p.Point("major_axis")
	if !ok {
		return nil, missingParam("ellipse", "major_axis")
	}
	ratio, ok := p.Float("ratio")
	if !ok {
		return nil, missingParam("ellipse", "ratio")
	}
	startParam := p.FloatOr("start_param", 0)
	endParam := p.FloatOr("end_param", 2*math.Pi)
	h, err := s.canvas.AddEllipse(center, major, ratio, startParam, endParam, s.layer(p, "PARTS"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *shapeStrategy) spline(p Params) (Result, error) {
	points, ok := p.Points("points")
	if !ok {
		return nil, missingParam("spline", "points")
	}
	if len(points) < 2 {
		return nil, invalidParam("spline", "points", "needs at least 2 points")
	}
	degree := p.IntOr("degree", 3)
	h, err := s.canvas.AddSpline(points, degree, s.layer(p, "PARTS"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *shapeStrategy) hatch(p Params) (Result, error) {
	points, ok := p.Points("points")
	if !ok {
		return nil, missingParam("hatch", "points")
	}
	if len(points) < 3 {
		return nil, invalidParam("hatch", "points", "needs at least 3 points")
	}
	pattern := p.StringOr("pattern", "ANSI31")
	scale := p.FloatOr("scale", 1.0)
	h, err := s.canvas.AddHatch(points, pattern, scale, s.layer(p, "HATCH"))
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}
