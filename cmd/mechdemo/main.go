// Command mechdemo generates a GB-standard part drawing.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/mechdraw/mechdraw"
	_ "github.com/mechdraw/mechdraw/backend/dxf"
	_ "github.com/mechdraw/mechdraw/backend/rasterimg"
	_ "github.com/mechdraw/mechdraw/backend/svg"
)

func main() {
	var (
		family  = flag.String("family", "shaft", "part family: shaft or gear")
		paper   = flag.String("paper", "A3", "paper size name")
		format  = flag.String("format", "dxf", "output backend: dxf, svg or png")
		output  = flag.String("output", "demo.dxf", "output file")
		config  = flag.String("config", "", "standards config file (embedded GB defaults when empty)")
		verbose = flag.Bool("v", false, "log drawing diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		mechdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := mechdraw.DefaultConfig()
	if *config != "" {
		loaded, err := mechdraw.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	doc := mechdraw.NewDocument(cfg, mechdraw.WithPaper(cfg, *paper))
	reg := mechdraw.NewStrategyRegistry()

	// Part views and dimensions
	if err := drawPart(doc, cfg, reg, *family); err != nil {
		log.Fatalf("Failed to draw part: %v", err)
	}

	// Annotations the sheet carries regardless of family
	drawAnnotations(doc, cfg, reg)

	// Sheet furniture
	if _, err := mechdraw.DrawTitleBlock(doc, cfg); err != nil {
		log.Fatalf("Failed to draw title block: %v", err)
	}
	mechdraw.UpdateTitleBlock(doc, mechdraw.TitleInfo{
		Name:     demoTitle(*family),
		Code:     "MD-" + *family + "-001",
		Designer: "mechdemo",
		Material: "45",
	})
	parts := map[int]mechdraw.PartRow{
		1: {Code: "MD-001", Name: demoTitle(*family), Quantity: "1", Material: "45"},
	}
	if _, err := mechdraw.AddPartsTable(doc, cfg, parts); err != nil {
		log.Fatalf("Failed to add parts table: %v", err)
	}

	// Save result
	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	b, err := mechdraw.NewBackend(*format, f)
	if err != nil {
		log.Fatalf("Failed to open backend: %v", err)
	}
	if err := doc.Replay(b); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *output, err)
	}

	log.Printf("Drawing saved to %s (%s, %s, %d entities)\n", *output, *family, *format, doc.Len())
}

func demoTitle(family string) string {
	if family == "gear" {
		return "齿轮"
	}
	return "传动轴"
}

func drawPart(doc *mechdraw.Document, cfg *mechdraw.Config, reg *mechdraw.StrategyRegistry, family string) error {
	center := mechdraw.Pt(220, 180)
	var t *mechdraw.Template
	switch family {
	case "shaft":
		t = mechdraw.NewShaftTemplate(doc, cfg, reg, mechdraw.ShaftParams{
			Origin:   center,
			Diameter: 30,
			Length:   120,
		})
	case "gear":
		t = mechdraw.NewGearTemplate(doc, cfg, reg, mechdraw.GearParams{
			Origin:        center,
			OuterDiameter: 80,
			InnerDiameter: 25,
			Thickness:     20,
		})
	default:
		log.Fatalf("Unknown family %q (want shaft or gear)", family)
	}
	return t.Generate()
}

func drawAnnotations(doc *mechdraw.Document, cfg *mechdraw.Config, reg *mechdraw.StrategyRegistry) {
	tools := mechdraw.NewTools(doc, cfg, reg)

	if _, err := tools.AddRoughness(mechdraw.Pt(250, 210), "3.2"); err != nil {
		log.Fatalf("Failed to add roughness symbol: %v", err)
	}
	if _, err := tools.AddLeaderArrow(mechdraw.Pt(260, 215), mechdraw.Pt(232, 192), "倒角C2"); err != nil {
		log.Fatalf("Failed to add leader: %v", err)
	}
	if _, err := tools.AddGeometricTolerance(mechdraw.Pt(170, 130), "⌖", "0.05", "A"); err != nil {
		log.Fatalf("Failed to add geometric tolerance: %v", err)
	}
	if _, err := tools.AddText("技术要求", mechdraw.Pt(40, 250), 5, "3文字"); err != nil {
		log.Fatalf("Failed to add notes heading: %v", err)
	}
	if _, err := tools.AddText("1. 未注倒角C1。", mechdraw.Pt(40, 242), 3.5, "3文字"); err != nil {
		log.Fatalf("Failed to add note: %v", err)
	}
}
