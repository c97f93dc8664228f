package layoutopts

// DagreOptions configures the Dagre layered engine.
type DagreOptions struct {
	OptionsBase

	NodeSeparation float64 // default 50
	RankSeparation float64 // default 50
	RankDirection  string  // "TB" | "BT" | "LR" | "RL"; default "TB"
	Align          string  // "UL" | "UR" | "DL" | "DR"; accepted, inert
	Acyclic        bool    // whether to break cycles before ordering; default true
	Ranker         string  // "network-simplex" | "tight-tree" | "longest-path"
}

// Base implements Options.
func (o *DagreOptions) Base() *OptionsBase { return &o.OptionsBase }

// DagreOption is a functional option for NewDagreOptions.
type DagreOption func(*DagreOptions)

// NewDagreOptions returns DagreOptions with its documented defaults.
func NewDagreOptions(opts ...DagreOption) *DagreOptions {
	o := &DagreOptions{
		OptionsBase:    DefaultBase(),
		NodeSeparation: 50,
		RankSeparation: 50,
		RankDirection:  "TB",
		Align:          "UL",
		Acyclic:        true,
		Ranker:         "network-simplex",
	}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithRankDirection overrides the rank axis and its direction.
func WithRankDirection(direction string) DagreOption {
	return func(o *DagreOptions) { o.RankDirection = direction }
}

// WithRanker overrides the ranking strategy.
func WithRanker(ranker string) DagreOption {
	return func(o *DagreOptions) { o.Ranker = ranker }
}

// WithAcyclic toggles cycle breaking before ordering.
func WithAcyclic(acyclic bool) DagreOption {
	return func(o *DagreOptions) { o.Acyclic = acyclic }
}

// WithRankSeparation overrides the spacing between ranks.
func WithRankSeparation(spacing float64) DagreOption {
	return func(o *DagreOptions) { o.RankSeparation = spacing }
}

// WithNodeSeparation overrides the spacing between nodes within a rank.
func WithNodeSeparation(spacing float64) DagreOption {
	return func(o *DagreOptions) { o.NodeSeparation = spacing }
}

// WithAlign sets the (currently inert) alignment tie-break label.
func WithAlign(align string) DagreOption {
	return func(o *DagreOptions) { o.Align = align }
}
