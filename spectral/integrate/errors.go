package integrate

import "errors"

var (
	errMismatchedLength = errors.New("integrate: abscissae and ordinates must have same length")
	errTooShort         = errors.New("integrate: at least two points are required")
	errUnsorted         = errors.New("integrate: abscissae must be sorted ascending")
)
