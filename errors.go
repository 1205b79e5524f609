package uint256

import "github.com/zeebo/errs"

// Error wraps failures surfaced through the encoding interfaces.
var Error = errs.Class("uint256")

// Error kinds.
var (
	// ConstructionError is returned for hex text or byte slices that do
	// not describe a 256-bit value.
	ConstructionError = errs.Class("construction")

	// IndexError is returned for byte indexes outside [0, Size).
	IndexError = errs.Class("index")

	// OverflowError is returned when a narrowing conversion would discard
	// nonzero bytes.
	OverflowError = errs.Class("overflow")
)
