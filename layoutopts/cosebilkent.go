package layoutopts

// CoseBilkentIterations is the fixed iteration count for CoSE-Bilkent.
// Unlike fCoSE it has no quality tiers and performs no overlap-removal
// post-pass.
const CoseBilkentIterations = 100

// CoseBilkentOptions configures the CoSE-Bilkent force-directed engine.
type CoseBilkentOptions struct {
	OptionsBase

	NodeRepulsion   float64 // C; default 4500
	IdealEdgeLength float64 // k; default 50
	NodeOverlap     float64 // percent; default 10 (accepted, unused: no overlap pass)
}

// Base implements Options.
func (o *CoseBilkentOptions) Base() *OptionsBase { return &o.OptionsBase }

// CoseBilkentOption is a functional option for NewCoseBilkentOptions.
type CoseBilkentOption func(*CoseBilkentOptions)

// NewCoseBilkentOptions returns CoseBilkentOptions with its documented defaults.
func NewCoseBilkentOptions(opts ...CoseBilkentOption) *CoseBilkentOptions {
	o := &CoseBilkentOptions{
		OptionsBase:     DefaultBase(),
		NodeRepulsion:   4500,
		IdealEdgeLength: 50,
		NodeOverlap:     10,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithCoseBilkentNodeRepulsion overrides the repulsion constant C.
func WithCoseBilkentNodeRepulsion(c float64) CoseBilkentOption {
	return func(o *CoseBilkentOptions) { o.NodeRepulsion = c }
}

// WithCoseBilkentIdealEdgeLength overrides the spring rest length k.
func WithCoseBilkentIdealEdgeLength(k float64) CoseBilkentOption {
	return func(o *CoseBilkentOptions) { o.IdealEdgeLength = k }
}
