package mechdraw

// Canvas is the primitive drawing surface the strategies target.
// Implementations record or emit entities and return opaque handles.
//
// Coordinates are millimeters. Arc angles are degrees; angles on the
// dimension primitives are radians. An empty linetype or style string
// selects the layer default and the document's standard text style.
//
// The provided implementation is Document. Canvas values are used as
// strategy-cache keys, so implementations must be comparable (pointer
// types are).
type Canvas interface {
	AddLine(start, end Point, layer, linetype string) (Handle, error)
	AddCircle(center Point, radius float64, layer string) (Handle, error)
	AddArc(center Point, radius, startAngle, endAngle float64, layer string) (Handle, error)
	AddEllipse(center, majorAxis Point, ratio, startParam, endParam float64, layer string) (Handle, error)
	AddPolyline(points []Point, closed bool, layer string) (Handle, error)
	AddSpline(points []Point, degree int, layer string) (Handle, error)
	AddHatch(points []Point, pattern string, scale float64, layer string) (Handle, error)
	AddText(text string, position Point, height float64, layer, style string, halign HAlign, valign VAlign) (Handle, error)

	AddLinearDim(base, p1, p2 Point, angle float64, text, style string, override DimOverride, layer string) (Handle, error)
	AddAlignedDim(p1, p2 Point, distance float64, text, style string, override DimOverride, layer string) (Handle, error)
	AddRadiusDim(center Point, radius, angle float64, text, style string, override DimOverride, layer string) (Handle, error)
	AddDiameterDim(center Point, radius, angle float64, text, style string, override DimOverride, layer string) (Handle, error)
	AddAngularDim(vertex, p1, p2 Point, text, style string, override DimOverride, layer string) (Handle, error)
}
