package layout

import "errors"

// ErrUnsupportedOptions is returned by Apply when the options value's
// concrete type does not match any known algorithm. An empty graph is
// not an error: every engine returns immediately with an empty result.
var ErrUnsupportedOptions = errors.New("layout: unsupported options type")
