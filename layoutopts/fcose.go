package layoutopts

// Quality maps to an fCoSE iteration budget.
type Quality int

const (
	// QualityDraft runs 30 iterations.
	QualityDraft Quality = iota
	// QualityDefault runs 50 iterations.
	QualityDefault
	// QualityProof runs 100 iterations.
	QualityProof
)

// Iterations returns the iteration count a Quality level maps to.
func (q Quality) Iterations() int {
	switch q {
	case QualityDraft:
		return 30
	case QualityProof:
		return 100
	default:
		return 50
	}
}

// FcoseOptions configures the fCoSE force-directed engine.
type FcoseOptions struct {
	OptionsBase

	NodeRepulsion   float64 // C; default 4500
	IdealEdgeLength float64 // k; default 50
	NodeOverlap     float64 // percent; default 10
	Quality         Quality // maps to iteration count
}

// Base implements Options.
func (o *FcoseOptions) Base() *OptionsBase { return &o.OptionsBase }

// FcoseOption is a functional option for NewFcoseOptions.
type FcoseOption func(*FcoseOptions)

// NewFcoseOptions returns FcoseOptions with its documented defaults, overridden by opts.
func NewFcoseOptions(opts ...FcoseOption) *FcoseOptions {
	o := &FcoseOptions{
		OptionsBase:     DefaultBase(),
		NodeRepulsion:   4500,
		IdealEdgeLength: 50,
		NodeOverlap:     10,
		Quality:         QualityDefault,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithNodeRepulsion overrides the repulsion constant C.
func WithNodeRepulsion(c float64) FcoseOption {
	return func(o *FcoseOptions) { o.NodeRepulsion = c }
}

// WithIdealEdgeLength overrides the spring rest length k.
func WithIdealEdgeLength(k float64) FcoseOption {
	return func(o *FcoseOptions) { o.IdealEdgeLength = k }
}

// WithNodeOverlap overrides the allowed overlap percentage.
func WithNodeOverlap(percent float64) FcoseOption {
	return func(o *FcoseOptions) { o.NodeOverlap = percent }
}

// WithQuality overrides the iteration-count tier.
func WithQuality(q Quality) FcoseOption {
	return func(o *FcoseOptions) { o.Quality = q }
}
