package sampling

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCount reports a sample count below one.
	ErrInvalidCount = errors.New("sampling: sample count must be >= 1")
	// ErrNoOverlap reports lamp and reflectance ranges that do not intersect.
	ErrNoOverlap = errors.New("sampling: spectra have no overlapping wavelength range")
	// ErrDegenerateDistribution reports a lamp that cannot serve as a
	// probability distribution: negative, non-finite or all-zero values.
	ErrDegenerateDistribution = errors.New("sampling: lamp values do not form a valid distribution")
	// ErrUnknownMethod reports an unsupported method name.
	ErrUnknownMethod = errors.New("sampling: unknown method")
	// ErrNilSpectrum reports a missing lamp or reflectance.
	ErrNilSpectrum = errors.New("sampling: lamp and reflectance must not be nil")
)

func validateCount(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return nil
}
