package mechdraw

// Option configures a Document during creation.
// Use functional options to customize Document behavior.
//
// Example:
//
//	// Default A3 sheet
//	doc := mechdraw.NewDocument(cfg)
//
//	// A4 sheet with an extra text style
//	doc := mechdraw.NewDocument(cfg, mechdraw.WithPaper(cfg, "A4"), mechdraw.WithTextStyle("5号字体"))
type Option func(*docOptions)

// docOptions holds optional configuration for Document creation.
type docOptions struct {
	paper  Paper
	styles []string
}

// defaultDocOptions returns the default document options for a snapshot.
func defaultDocOptions(cfg *Config) docOptions {
	w, h, _ := cfg.PaperSize("A3")
	return docOptions{
		paper: Paper{Name: "A3", Width: w, Height: h},
	}
}

// WithPaper selects a named sheet from the standards snapshot, for
// example "A0" through "A4" or "A4_LANDSCAPE". An unknown name keeps
// the default sheet.
func WithPaper(cfg *Config, name string) Option {
	return func(o *docOptions) {
		if w, h, ok := cfg.PaperSize(name); ok {
			o.paper = Paper{Name: name, Width: w, Height: h}
		}
	}
}

// WithPaperSize sets a custom sheet size in millimeters.
func WithPaperSize(name string, width, height float64) Option {
	return func(o *docOptions) {
		o.paper = Paper{Name: name, Width: width, Height: height}
	}
}

// WithTextStyle registers an additional text style at creation time.
func WithTextStyle(name string) Option {
	return func(o *docOptions) {
		o.styles = append(o.styles, name)
	}
}
