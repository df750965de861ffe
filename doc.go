// Package mechdraw generates GB-standard mechanical engineering drawing
// annotations on a 2D vector canvas.
//
// # Overview
//
// mechdraw turns semantic drawing intents ("surface finish Ra1.6 at point P",
// "linear dimension between p1 and p2 offset 15mm below") into the concrete
// primitive geometry that realizes them: lines, arcs, text placements and
// dimension entities, with layers, linetypes and text heights resolved from a
// GB standards configuration. Drawing happens through a small strategy
// surface; primitives are recorded into a Document and replayed into
// pluggable output backends (DXF, SVG, PNG).
//
// # Quick Start
//
//	import "github.com/mechdraw/mechdraw"
//
//	cfg := mechdraw.DefaultConfig()
//	doc := mechdraw.NewDocument(cfg, mechdraw.WithPaper(cfg, "A3"))
//	tools := mechdraw.NewTools(doc, cfg, mechdraw.NewStrategyRegistry())
//
//	tools.DrawCircle(mechdraw.Pt(100, 100), 25, "PARTS")
//	tools.AddDiameterDimension(mechdraw.Pt(100, 100), 25, 45, "")
//	tools.AddLeaderArrow(mechdraw.Pt(100, 125), mechdraw.Pt(140, 160), "倒角 C2")
//
// # Architecture
//
// The library is organized into:
//   - Geometry and styling: Point, LineStyle, Config (standards snapshot)
//   - Strategies: shapes, dimensions, symbols, views — one Draw(op, params)
//     entry point each, created through an explicit Registry
//   - Recording: Document implements Canvas as an append-only entity list
//     with uint32 handles, replayable into any registered Backend
//   - Backends: backend/dxf, backend/svg, backend/rasterimg
//   - Orchestration: Template (fixed phase pipeline), Tools (typed facade),
//     parts table and title block generators
//
// # Coordinate System
//
// Drawing units are millimeters with the origin at the lower-left corner of
// the sheet, X increasing right and Y increasing up (DXF model space
// convention). Shape arcs take degrees; dimension primitives take radians.
//
// # Standards
//
// Layer names, linetype dash patterns, text heights and scale lists follow
// GB/T 4457.4, GB/T 14689 and GB/T 4458.4. The built-in configuration can be
// replaced or reloaded at runtime through a Session; see Config.
package mechdraw

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
