package layoutopts

// ConcentricOptions configures the concentric engine.
type ConcentricOptions struct {
	OptionsBase

	MinNodeSpacing float64 // default 10 (reserved; see concentric package doc)
	ConcentricBy   string  // "degree" or "id"; default "degree"
	LevelWidth     float64 // default 100
}

// Base implements Options.
func (o *ConcentricOptions) Base() *OptionsBase { return &o.OptionsBase }

// ConcentricOption is a functional option for NewConcentricOptions.
type ConcentricOption func(*ConcentricOptions)

// NewConcentricOptions returns ConcentricOptions with its documented defaults.
func NewConcentricOptions(opts ...ConcentricOption) *ConcentricOptions {
	o := &ConcentricOptions{
		OptionsBase:    DefaultBase(),
		MinNodeSpacing: 10,
		ConcentricBy:   "degree",
		LevelWidth:     100,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithConcentricBy overrides the level-assignment criterion ("degree" or "id").
func WithConcentricBy(by string) ConcentricOption {
	return func(o *ConcentricOptions) { o.ConcentricBy = by }
}

// WithLevelWidth overrides the radial spacing between levels.
func WithLevelWidth(width float64) ConcentricOption {
	return func(o *ConcentricOptions) { o.LevelWidth = width }
}

// WithMinNodeSpacing overrides the minimum arc spacing between nodes on a level.
func WithMinNodeSpacing(spacing float64) ConcentricOption {
	return func(o *ConcentricOptions) { o.MinNodeSpacing = spacing }
}
