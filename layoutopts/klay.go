package layoutopts

// KlayOptions configures the KLay layered engine. The cosmetic fields
// (NodePlacement, CrossMinimization, CycleBreaking, EdgeRouting,
// MergeEdges) are accepted and round-tripped but do not vary the output of
// this core implementation.
type KlayOptions struct {
	OptionsBase

	LayerSpacing float64 // default 50
	NodeSpacing  float64 // default 20

	NodePlacement     string // "SIMPLE" | "LINEAR_SEGMENTS" | "BRANDES_KOEPF"
	CrossMinimization string // "LAYER_SWEEP" | "INTERACTIVE"
	CycleBreaking     string // "GREEDY" | "INTERACTIVE"
	EdgeRouting       string // "ORTHOGONAL" | "SPLINES" | "POLYLINE"
	MergeEdges        bool
}

// Base implements Options.
func (o *KlayOptions) Base() *OptionsBase { return &o.OptionsBase }

// KlayOption is a functional option for NewKlayOptions.
type KlayOption func(*KlayOptions)

// NewKlayOptions returns KlayOptions with its documented defaults.
func NewKlayOptions(opts ...KlayOption) *KlayOptions {
	o := &KlayOptions{
		OptionsBase:       DefaultBase(),
		LayerSpacing:      50,
		NodeSpacing:       20,
		NodePlacement:     "BRANDES_KOEPF",
		CrossMinimization: "LAYER_SWEEP",
		CycleBreaking:     "GREEDY",
		EdgeRouting:       "ORTHOGONAL",
		MergeEdges:        false,
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithLayerSpacing overrides the vertical spacing between layers.
func WithLayerSpacing(spacing float64) KlayOption {
	return func(o *KlayOptions) { o.LayerSpacing = spacing }
}

// WithKlayNodeSpacing overrides the horizontal spacing within a layer.
func WithKlayNodeSpacing(spacing float64) KlayOption {
	return func(o *KlayOptions) { o.NodeSpacing = spacing }
}

// WithNodePlacement sets the cosmetic node-placement strategy label.
func WithNodePlacement(strategy string) KlayOption {
	return func(o *KlayOptions) { o.NodePlacement = strategy }
}

// WithEdgeRouting sets the cosmetic edge-routing strategy label.
func WithEdgeRouting(routing string) KlayOption {
	return func(o *KlayOptions) { o.EdgeRouting = routing }
}

// WithMergeEdges sets the cosmetic merge-parallel-edges flag.
func WithMergeEdges(merge bool) KlayOption {
	return func(o *KlayOptions) { o.MergeEdges = merge }
}
