package sampling

import (
	"fmt"
	"strings"
)

// Method selects a sampling strategy together with its parameters. The set
// of implementations is closed: Fixed, Random and Hero.
type Method interface {
	// Name returns the command-line identifier of the strategy.
	Name() string
	// Samples returns the nominal sample count.
	Samples() int

	isMethod()
}

// Fixed samples Count evenly spaced wavelengths over the visible range.
type Fixed struct {
	Count int
}

// Random draws Count uniform wavelengths over the spectra's common range.
type Random struct {
	Count int
}

// Hero draws a single wavelength with probability proportional to the lamp.
type Hero struct{}

func (Fixed) Name() string  { return "fixed" }
func (Random) Name() string { return "random" }
func (Hero) Name() string   { return "hero" }

func (m Fixed) Samples() int  { return m.Count }
func (m Random) Samples() int { return m.Count }
func (Hero) Samples() int     { return 1 }

func (Fixed) isMethod()  {}
func (Random) isMethod() {}
func (Hero) isMethod()   {}

// MethodNames lists the accepted identifiers for ParseMethod.
func MethodNames() []string {
	return []string{"random", "hero", "fixed"}
}

// ParseMethod maps an identifier to a Method. count is ignored for hero.
func ParseMethod(name string, count int) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fixed":
		return Fixed{Count: count}, nil
	case "random":
		return Random{Count: count}, nil
	case "hero":
		return Hero{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownMethod, name, strings.Join(MethodNames(), ", "))
	}
}
