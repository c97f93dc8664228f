package layoutopts_test

import (
	"fmt"

	"github.com/katalvlaran/graphlayout/layoutopts"
)

// Example demonstrates building options with a functional-option override
// and reading shared fields back through the Options interface.
func Example() {
	opts := layoutopts.NewFcoseOptions(layoutopts.WithQuality(layoutopts.QualityProof))
	opts.Seed = 7

	fmt.Println(opts.Quality.Iterations(), opts.Base().Seed)
	// Output:
	// 100 7
}
