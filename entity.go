package mechdraw

// Handle identifies one recorded entity within a Document.
// Handles are dense indices assigned in recording order; they stay valid
// for the lifetime of the document and are opaque to strategies.
type Handle uint32

// InvalidHandle is returned by failed canvas operations.
const InvalidHandle = Handle(^uint32(0))

// IsValid reports whether the handle refers to a recorded entity.
func (h Handle) IsValid() bool { return h != InvalidHandle }

// Result is the ordered sequence of entity handles produced by one
// drawing operation. Single-primitive operations return a length-1 result.
// Callers may reference handles but never mutate entities directly; all
// mutation happens through the canvas that issued them.
type Result []Handle

// EntityKind identifies the concrete type of a recorded entity.
type EntityKind uint8

// Entity kinds recorded by a Document.
const (
	EntLine EntityKind = iota
	EntCircle
	EntArc
	EntEllipse
	EntPolyline
	EntSpline
	EntHatch
	EntSolid
	EntText
	EntLinearDim
	EntAlignedDim
	EntRadiusDim
	EntDiameterDim
	EntAngularDim
)

// String returns the entity kind name.
func (k EntityKind) String() string {
	switch k {
	case EntLine:
		return "line"
	case EntCircle:
		return "circle"
	case EntArc:
		return "arc"
	case EntEllipse:
		return "ellipse"
	case EntPolyline:
		return "polyline"
	case EntSpline:
		return "spline"
	case EntHatch:
		return "hatch"
	case EntSolid:
		return "solid"
	case EntText:
		return "text"
	case EntLinearDim:
		return "linear-dim"
	case EntAlignedDim:
		return "aligned-dim"
	case EntRadiusDim:
		return "radius-dim"
	case EntDiameterDim:
		return "diameter-dim"
	case EntAngularDim:
		return "angular-dim"
	default:
		return "unknown"
	}
}

// Entity is one recorded drawing primitive.
type Entity interface {
	Kind() EntityKind
}

// Attr carries the placement attributes common to all entities.
// An empty LineType means "by layer".
type Attr struct {
	Layer    string
	LineType string
}

// Line is a straight segment between two points.
type Line struct {
	Start, End Point
	Attr       Attr
}

func (*Line) Kind() EntityKind { return EntLine }

// Circle is a full circle.
type Circle struct {
	Center Point
	Radius float64
	Attr   Attr
}

func (*Circle) Kind() EntityKind { return EntCircle }

// Arc is a circular arc. Angles are degrees, counter-clockwise from the
// positive X axis, not normalized.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Attr       Attr
}

func (*Arc) Kind() EntityKind { return EntArc }

// Ellipse is a (partial) ellipse defined by its center, the major axis
// endpoint vector relative to the center, and the minor/major ratio.
// Start and end parameters are radians.
type Ellipse struct {
	Center     Point
	MajorAxis  Point
	Ratio      float64
	StartParam float64
	EndParam   float64
	Attr       Attr
}

func (*Ellipse) Kind() EntityKind { return EntEllipse }

// Polyline is a connected sequence of straight segments.
type Polyline struct {
	Points []Point
	Closed bool
	Attr   Attr
}

func (*Polyline) Kind() EntityKind { return EntPolyline }

// Spline is a curve through the given control points.
type Spline struct {
	Points []Point
	Degree int
	Attr   Attr
}

func (*Spline) Kind() EntityKind { return EntSpline }

// Hatch is a pattern-filled region bounded by a closed polyline loop.
// The boundary is stored closed: the first point is appended as the last.
type Hatch struct {
	Boundary []Point
	Pattern  string
	Scale    float64
	Attr     Attr
}

func (*Hatch) Kind() EntityKind { return EntHatch }

// Solid is a filled triangle, used for dimension arrowheads.
type Solid struct {
	P1, P2, P3 Point
	Attr       Attr
}

func (*Solid) Kind() EntityKind { return EntSolid }

// HAlign is the DXF horizontal text alignment code.
type HAlign int

// Horizontal alignment codes.
const (
	HLeft   HAlign = 0
	HCenter HAlign = 1
	HRight  HAlign = 2
)

// VAlign is the DXF vertical text alignment code.
type VAlign int

// Vertical alignment codes.
const (
	VBaseline VAlign = 0
	VBottom   VAlign = 1
	VMiddle   VAlign = 2
	VTop      VAlign = 3
)

// Text is a single-line text placement. Position is the alignment point;
// Rotation is degrees counter-clockwise.
type Text struct {
	Value    string
	Position Point
	Height   float64
	Style    string
	HAlign   HAlign
	VAlign   VAlign
	Rotation float64
	Attr     Attr
}

func (*Text) Kind() EntityKind { return EntText }

// DimOverride carries the dimension-style override values the engine
// uses: dimdle extends the dimension line past the extension lines,
// dimexe extends the extension lines past the dimension line, and dimexo
// offsets the extension-line origin from the measured point.
type DimOverride struct {
	DimDLE float64
	DimEXE float64
	DimEXO float64
}

// LinearDim measures the distance between two points projected onto a
// dimension line through Base at Angle radians.
type LinearDim struct {
	Base     Point
	P1, P2   Point
	Angle    float64
	Text     string
	Style    string
	Override DimOverride
	Attr     Attr
}

func (*LinearDim) Kind() EntityKind { return EntLinearDim }

// AlignedDim measures the straight distance between two points with the
// dimension line offset Distance perpendicular from their connecting line.
type AlignedDim struct {
	P1, P2   Point
	Distance float64
	Text     string
	Style    string
	Override DimOverride
	Attr     Attr
}

func (*AlignedDim) Kind() EntityKind { return EntAlignedDim }

// RadiusDim annotates a circle radius at the given angle in radians.
type RadiusDim struct {
	Center   Point
	Radius   float64
	Angle    float64
	Text     string
	Style    string
	Override DimOverride
	Attr     Attr
}

func (*RadiusDim) Kind() EntityKind { return EntRadiusDim }

// DiameterDim annotates a circle diameter at the given angle in radians.
type DiameterDim struct {
	Center   Point
	Radius   float64
	Angle    float64
	Text     string
	Style    string
	Override DimOverride
	Attr     Attr
}

func (*DiameterDim) Kind() EntityKind { return EntDiameterDim }

// AngularDim measures the angle at Vertex between the rays through P1
// and P2.
type AngularDim struct {
	Vertex   Point
	P1, P2   Point
	Text     string
	Style    string
	Override DimOverride
	Attr     Attr
}

func (*AngularDim) Kind() EntityKind { return EntAngularDim }
