package mechdraw

// Params is the loosely typed argument bag passed to strategy operations.
// Keys are operation specific; values are read through the comma-ok
// getters, which coerce the numeric types a caller plausibly supplies.
//
// Example:
//
//	res, err := t.Draw(mechdraw.KindShapes, "circle", mechdraw.Params{
//		"center": mechdraw.Pt(100, 80),
//		"radius": 25.0,
//	})
type Params map[string]any

// Has reports whether a key is present.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Float returns a numeric parameter as float64.
// Integer values are widened.
func (p Params) Float(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// FloatOr returns a numeric parameter or def when absent or untyped.
func (p Params) FloatOr(key string, def float64) float64 {
	if v, ok := p.Float(key); ok {
		return v
	}
	return def
}

// Int returns an integer parameter.
func (p Params) Int(key string) (int, bool) {
	switch v := p[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// IntOr returns an integer parameter or def when absent or untyped.
func (p Params) IntOr(key string, def int) int {
	if v, ok := p.Int(key); ok {
		return v
	}
	return def
}

// String returns a string parameter.
func (p Params) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// StringOr returns a string parameter or def when absent or untyped.
func (p Params) StringOr(key, def string) string {
	if v, ok := p.String(key); ok {
		return v
	}
	return def
}

// Bool returns a boolean parameter.
func (p Params) Bool(key string) (bool, bool) {
	v, ok := p[key].(bool)
	return v, ok
}

// BoolOr returns a boolean parameter or def when absent or untyped.
func (p Params) BoolOr(key string, def bool) bool {
	if v, ok := p.Bool(key); ok {
		return v
	}
	return def
}

// Point returns a point parameter.
func (p Params) Point(key string) (Point, bool) {
	switch v := p[key].(type) {
	case Point:
		return v, true
	case *Point:
		if v != nil {
			return *v, true
		}
		return Point{}, false
	case [2]float64:
		return Point{X: v[0], Y: v[1]}, true
	default:
		return Point{}, false
	}
}

// PointOr returns a point parameter or def when absent or untyped.
func (p Params) PointOr(key string, def Point) Point {
	if v, ok := p.Point(key); ok {
		return v
	}
	return def
}

// Points returns a point slice parameter.
func (p Params) Points(key string) ([]Point, bool) {
	v, ok := p[key].([]Point)
	return v, ok
}

// Strings returns a string slice parameter.
func (p Params) Strings(key string) ([]string, bool) {
	v, ok := p[key].([]string)
	return v, ok
}
