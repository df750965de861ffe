package mechdraw

import (
	"math"
	"strconv"
)

// dimensionStrategy draws dimension annotations: linear, radius,
// diameter, angular, aligned, baseline chains and toleranced linear
// dimensions. Every dimension lands on the DIMENSIONS layer with the
// standard extension overrides.
type dimensionStrategy struct {
	canvas Canvas
	cfg    *Config
}

func newDimensionStrategy(c Canvas, cfg *Config) *dimensionStrategy {
	return &dimensionStrategy{canvas: c, cfg: cfg}
}

func (s *dimensionStrategy) Kind() StrategyKind { return KindDimensions }

// stdOverride is the extension line tuning applied to every dimension.
func stdOverride() DimOverride {
	return DimOverride{DimDLE: 0.5, DimEXE: 0.5}
}

func (s *dimensionStrategy) layer() string {
	return s.cfg.LayerName("DIMENSIONS")
}

func (s *dimensionStrategy) Draw(op string, p Params) (Result, error) {
	switch op {
	case "linear":
		return s.linear(p)
	case "radius":
		return s.radial(op, p)
	case "diameter":
		return s.radial(op, p)
	case "angular":
		return s.angular(p)
	case "aligned":
		return s.aligned(p)
	case "baseline":
		return s.baseline(p)
	case "tolerance":
		return s.tolerance(p)
	default:
		return nil, &OpError{Strategy: KindDimensions, Op: op}
	}
}

// linearBase computes the dimension line origin for a horizontal linear
// dimension: the component-wise minimum of the measured points, dropped
// by distance. The drop is applied regardless of the sign of distance,
// so a negative distance places the dimension line above the geometry.
func linearBase(p1, p2 Point, distance float64) Point {
	return Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y) - distance}
}

func (s *dimensionStrategy) linear(p Params) (Result, error) {
	p1, ok := p.Point("p1")
	if !ok {
		return nil, missingParam("linear", "p1")
	}
	p2, ok := p.Point("p2")
	if !ok {
		return nil, missingParam("linear", "p2")
	}
	distance, ok := p.Float("distance")
	if !ok {
		return nil, missingParam("linear", "distance")
	}
	text := p.StringOr("text", "")

	h, err := s.canvas.AddLinearDim(linearBase(p1, p2, distance), p1, p2, 0,
		text, "Standard", stdOverride(), s.layer())
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

// radial handles both the radius and diameter operations; they differ
// only in the recorded entity. The angle parameter is degrees and is
// converted to radians here.
func (s *dimensionStrategy) radial(op string, p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam(op, "center")
	}
	radius, ok := p.Float("radius")
	if !ok {
		return nil, missingParam(op, "radius")
	}
	if radius <= 0 {
		return nil, invalidParam(op, "radius", "must be positive")
	}
	angle := Deg2Rad(p.FloatOr("angle", 45))
	text := p.StringOr("text", "")

	var h Handle
	var err error
	if op == "radius" {
		h, err = s.canvas.AddRadiusDim(center, radius, angle, text, "Standard", stdOverride(), s.layer())
	} else {
		h, err = s.canvas.AddDiameterDim(center, radius, angle, text, "Standard", stdOverride(), s.layer())
	}
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *dimensionStrategy) angular(p Params) (Result, error) {
	center, ok := p.Point("center")
	if !ok {
		return nil, missingParam("angular", "center")
	}
	p1, ok := p.Point("p1")
	if !ok {
		return nil, missingParam("angular", "p1")
	}
	p2, ok := p.Point("p2")
	if !ok {
		return nil, missingParam("angular", "p2")
	}
	text := p.StringOr("text", "")

	h, err := s.canvas.AddAngularDim(center, p1, p2, text, "Standard", stdOverride(), s.layer())
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

func (s *dimensionStrategy) aligned(p Params) (Result, error) {
	p1, ok := p.Point("p1")
	if !ok {
		return nil, missingParam("aligned", "p1")
	}
	p2, ok := p.Point("p2")
	if !ok {
		return nil, missingParam("aligned", "p2")
	}
	distance, ok := p.Float("distance")
	if !ok {
		return nil, missingParam("aligned", "distance")
	}
	text := p.StringOr("text", "")

	h, err := s.canvas.AddAlignedDim(p1, p2, distance, text, "Standard", stdOverride(), s.layer())
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

// baseline draws one linear dimension per point, all measured from the
// shared base point along the given direction. Successive dimension
// lines step away through a growing extension line offset, the first
// one sitting at offset zero. Texts are always the measured values.
func (s *dimensionStrategy) baseline(p Params) (Result, error) {
	base, ok := p.Point("base_point")
	if !ok {
		return nil, missingParam("baseline", "base_point")
	}
	points, ok := p.Points("points")
	if !ok {
		return nil, missingParam("baseline", "points")
	}
	if len(points) == 0 {
		return nil, invalidParam("baseline", "points", "needs at least 1 point")
	}
	spacing := p.FloatOr("spacing", 10)
	direction := p.PointOr("direction", Pt(1, 0))
	angle := math.Atan2(direction.Y, direction.X)

	layer := s.layer()
	res := make(Result, 0, len(points))
	for i, point := range points {
		override := stdOverride()
		override.DimEXO = spacing * float64(i)
		h, err := s.canvas.AddLinearDim(base, base, point, angle, "", "Standard", override, layer)
		if err != nil {
			return nil, err
		}
		res = append(res, h)
	}
	return res, nil
}

// tolerance draws a linear dimension whose text carries a deviation
// pair, for example "25+0.05/-0.02". Non-negative deviations get an
// explicit plus sign.
func (s *dimensionStrategy) tolerance(p Params) (Result, error) {
	p1, ok := p.Point("p1")
	if !ok {
		return nil, missingParam("tolerance", "p1")
	}
	p2, ok := p.Point("p2")
	if !ok {
		return nil, missingParam("tolerance", "p2")
	}
	distance, ok := p.Float("distance")
	if !ok {
		return nil, missingParam("tolerance", "distance")
	}
	nominal, ok := p.Float("nominal")
	if !ok {
		return nil, missingParam("tolerance", "nominal")
	}
	upper, ok := p.Float("upper_tol")
	if !ok {
		return nil, missingParam("tolerance", "upper_tol")
	}
	lower, ok := p.Float("lower_tol")
	if !ok {
		return nil, missingParam("tolerance", "lower_tol")
	}

	text := FormatTolerance(nominal, upper, lower)
	h, err := s.canvas.AddLinearDim(linearBase(p1, p2, distance), p1, p2, 0,
		text, "Standard", stdOverride(), s.layer())
	if err != nil {
		return nil, err
	}
	return Result{h}, nil
}

// FormatTolerance renders a nominal value with upper and lower
// deviations as dimension text, for example FormatTolerance(25, 0.05, -0.02)
// yields "25+0.05/-0.02".
func FormatTolerance(nominal, upper, lower float64) string {
	return formatDimValue(nominal) + signedDimValue(upper) + "/" + signedDimValue(lower)
}

// formatDimValue renders a measurement without trailing zeros.
func formatDimValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// signedDimValue renders a deviation with an explicit sign for
// non-negative values.
func signedDimValue(v float64) string {
	if v >= 0 {
		return "+" + formatDimValue(v)
	}
	return formatDimValue(v)
}
