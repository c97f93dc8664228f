package api

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/layoutopts"
)

// buildOptions maps an algorithm name to its options type, applying a
// "seed" override from raw when present. Unknown algorithm names produce
// an error rather than a zero-value panic downstream in layout.Apply.
func buildOptions(algorithm string, raw map[string]interface{}) (layoutopts.Options, error) {
	var opts layoutopts.Options

	switch algorithm {
	case "fcose":
		opts = layoutopts.NewFcoseOptions()
	case "cose-bilkent":
		opts = layoutopts.NewCoseBilkentOptions()
	case "cise":
		opts = layoutopts.NewCiseOptions()
	case "concentric":
		opts = layoutopts.NewConcentricOptions()
	case "klay":
		opts = layoutopts.NewKlayOptions()
	case "dagre":
		opts = layoutopts.NewDagreOptions()
	default:
		return nil, fmt.Errorf("api: unknown algorithm %q", algorithm)
	}

	if seed, ok := raw["seed"].(float64); ok {
		opts.Base().Seed = int64(seed)
	}

	return opts, nil
}
