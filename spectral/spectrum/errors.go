package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch reports wavelengths and values of different length.
	ErrLengthMismatch = errors.New("spectrum: wavelengths and values must have same length")
	// ErrEmpty reports a spectrum without samples.
	ErrEmpty = errors.New("spectrum: at least one sample is required")
	// ErrFile reports a spectrum file that cannot be opened or read.
	ErrFile = errors.New("spectrum: file error")
	// ErrParse reports a malformed spectrum file.
	ErrParse = errors.New("spectrum: parse error")
	// ErrNotFound reports a name missing from a Library.
	ErrNotFound = errors.New("spectrum: not found")
)

func validateLengths(wavelengths, values []float64) error {
	if len(wavelengths) != len(values) {
		return fmt.Errorf("%w: %d wavelengths, %d values", ErrLengthMismatch, len(wavelengths), len(values))
	}
	if len(wavelengths) == 0 {
		return ErrEmpty
	}
	return nil
}
