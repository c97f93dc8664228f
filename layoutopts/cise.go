package layoutopts

// CiseOptions configures the CiSE circular engine.
type CiseOptions struct {
	OptionsBase

	// Clusters groups node IDs that should share a circle. An empty
	// Clusters means "arrange every node on one circle".
	Clusters      [][]string
	CircleSpacing float64 // default 20
	NodeSpacing   float64 // default 10 (reserved for future arc-length spacing)
}

// Base implements Options.
func (o *CiseOptions) Base() *OptionsBase { return &o.OptionsBase }

// CiseOption is a functional option for NewCiseOptions.
type CiseOption func(*CiseOptions)

// NewCiseOptions returns CiseOptions with its documented defaults.
func NewCiseOptions(opts ...CiseOption) *CiseOptions {
	o := &CiseOptions{
		OptionsBase:   DefaultBase(),
		Clusters:      nil,
		CircleSpacing: 20,
		NodeSpacing:   10,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithClusters sets the cluster groupings.
func WithClusters(clusters [][]string) CiseOption {
	return func(o *CiseOptions) { o.Clusters = clusters }
}

// WithCircleSpacing overrides the spacing between cluster circles.
func WithCircleSpacing(spacing float64) CiseOption {
	return func(o *CiseOptions) { o.CircleSpacing = spacing }
}

// WithCiseNodeSpacing overrides the intra-cluster node spacing.
func WithCiseNodeSpacing(spacing float64) CiseOption {
	return func(o *CiseOptions) { o.NodeSpacing = spacing }
}
