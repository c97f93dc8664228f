package layout

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/circular"
	"github.com/katalvlaran/graphlayout/concentric"
	"github.com/katalvlaran/graphlayout/forcelayout"
	"github.com/katalvlaran/graphlayout/graph"
	"github.com/katalvlaran/graphlayout/layered"
	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Apply selects an engine by the concrete type of opts and runs it against
// g, mutating node positions in place. It is the single entry point a
// caller (REST handler, CLI, test) needs regardless of which of the six
// algorithms was requested.
func Apply(g *graph.Graph, opts layoutopts.Options) error {
	engine, err := resolve(opts)
	if err != nil {
		return err
	}

	return engine.Apply(g)
}

// resolve maps an options value to its engine without running it, so
// callers that only need Name()/Description() (e.g. a UI listing
// available algorithms) don't pay for a layout pass.
func resolve(opts layoutopts.Options) (LayoutEngine, error) {
	switch o := opts.(type) {
	case *layoutopts.FcoseOptions:
		return forcelayout.NewFcose(o), nil
	case *layoutopts.CoseBilkentOptions:
		return forcelayout.NewCoseBilkent(o), nil
	case *layoutopts.CiseOptions:
		return circular.NewCise(o), nil
	case *layoutopts.ConcentricOptions:
		return concentric.NewConcentric(o), nil
	case *layoutopts.KlayOptions:
		return layered.NewKlay(o), nil
	case *layoutopts.DagreOptions:
		return layered.NewDagre(o), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedOptions, opts)
	}
}

// Describe returns the engine's name and description without running it.
func Describe(opts layoutopts.Options) (name, description string, err error) {
	engine, err := resolve(opts)
	if err != nil {
		return "", "", err
	}

	return engine.Name(), engine.Description(), nil
}
