// Package layoutopts defines the shared OptionsBase and the tagged union
// of six per-algorithm option types.
//
// Each concrete type (FcoseOptions, CoseBilkentOptions, CiseOptions,
// ConcentricOptions, KlayOptions, DagreOptions) embeds OptionsBase and
// implements the Options interface via a Base() accessor. The dispatcher
// in package layout switches on the concrete type to pick an engine.
package layoutopts

// ComputeLocation is metadata describing where layout computation is
// expected to run; it does not influence the geometry an engine produces.
type ComputeLocation int

const (
	// ComputeFrontend indicates the caller expects to run layout client-side.
	ComputeFrontend ComputeLocation = iota
	// ComputeBackend indicates the caller expects to run layout server-side.
	ComputeBackend
)

// OptionsBase holds the fields common to every algorithm's options.
// Seed is the only one the engines read. Fit and Padding are
// renderer/viewport framing hints for downstream use.
// Animate/AnimationDurationMS are consumed by a viewer; ComputeLocation is
// pure metadata.
type OptionsBase struct {
	Animate             bool
	AnimationDurationMS uint32
	Fit                 bool
	Padding             uint32
	ComputeLocation     ComputeLocation

	// Seed drives every seeded PRNG an engine consults (random
	// initialization, overlap-removal jitter). Zero means "use the
	// package rng default seed".
	Seed int64
}

// DefaultBase returns the shared defaults every algorithm's constructor
// starts from.
func DefaultBase() OptionsBase {
	return OptionsBase{
		Animate:             true,
		AnimationDurationMS: 500,
		Fit:                 true,
		Padding:             30,
		ComputeLocation:     ComputeFrontend,
		Seed:                0,
	}
}

// Options is implemented by every algorithm's option type.
type Options interface {
	// Base returns a pointer to the embedded OptionsBase, permitting both
	// read and mutate access without a type switch at call sites that only
	// care about the shared fields.
	Base() *OptionsBase
}
