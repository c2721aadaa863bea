package mdconvert

import "errors"

// Sentinel errors for library operations.
//
// Conversion itself never returns errors: malformed input degrades to a
// low-fidelity ConversionResult with warnings. Errors exist only at the
// contract boundary of the dispatching entry point.
var (
	ErrUnsupportedDirection = errors.New("unsupported conversion target")
)
