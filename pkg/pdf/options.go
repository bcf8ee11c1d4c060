package pdf

// LayoutOption is a function that modifies how glyphs are grouped into
// spans, lines and blocks
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	YTolerance    float64 // max baseline drift for glyphs on the same row
	WordGapRatio  float64 // gap / font size above which a space is inserted
	ColumnGap     float64 // horizontal gap (points) that splits a row into separate lines
	BlockGapRatio float64 // vertical gap / line height below which lines share a block
}

func defaultLayoutConfig() layoutConfig {
	return layoutConfig{
		YTolerance:    3.0,
		WordGapRatio:  0.3,
		ColumnGap:     12.0,
		BlockGapRatio: 0.7,
	}
}

func newLayoutConfig(opts []LayoutOption) layoutConfig {
	config := defaultLayoutConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// WithYTolerance sets the vertical tolerance for grouping glyphs into rows
func WithYTolerance(tolerance float64) LayoutOption {
	return func(c *layoutConfig) {
		if tolerance > 0 {
			c.YTolerance = tolerance
		}
	}
}

// WithWordGapRatio sets the gap, as a fraction of the font size, that
// separates two words
func WithWordGapRatio(ratio float64) LayoutOption {
	return func(c *layoutConfig) {
		if ratio > 0 {
			c.WordGapRatio = ratio
		}
	}
}

// WithColumnGap sets the horizontal gap in points that splits a row into
// separate line fragments
func WithColumnGap(gap float64) LayoutOption {
	return func(c *layoutConfig) {
		if gap > 0 {
			c.ColumnGap = gap
		}
	}
}

// WithBlockGapRatio sets the vertical gap, as a fraction of line height,
// below which consecutive lines are merged into one block
func WithBlockGapRatio(ratio float64) LayoutOption {
	return func(c *layoutConfig) {
		if ratio > 0 {
			c.BlockGapRatio = ratio
		}
	}
}
