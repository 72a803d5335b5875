// Package experiment runs sampling strategies against lamp/reflectance
// pairs and reports the resulting color together with the sampling cost.
package experiment

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-spectral/colorspace/srgb"
	"github.com/cwbudde/algo-spectral/spectral/sampling"
	"github.com/cwbudde/algo-spectral/spectral/spectrum"
	"github.com/cwbudde/algo-spectral/spectral/xyz"
)

var (
	errNilLibrary    = errors.New("experiment: spectrum library must not be nil")
	errNilIntegrator = errors.New("experiment: integrator must not be nil")

	// ErrDarkLamp reports a lamp whose white reference has no luminance, so
	// results cannot be normalised against it.
	ErrDarkLamp = errors.New("experiment: lamp white reference has zero luminance")
)

// Spec names one experiment.
type Spec struct {
	Lamp   string
	Refl   string
	Method sampling.Method
}

// Result is the outcome of one experiment.
type Result struct {
	Lamp    string
	Refl    string
	Method  string
	Count   int
	Elapsed time.Duration // sampling call only
	XYZ     xyz.Tristimulus
	RGB     srgb.RGB
	Gamma   bool
}

// Hex returns the result as #rrggbb, encoding first when RGB is linear.
func (r Result) Hex() string {
	if !r.Gamma {
		return r.RGB.Encoded().Hex()
	}
	return r.RGB.Hex()
}

// Encoded returns the gamma-encoded RGB regardless of the run's gamma flag.
func (r Result) Encoded() srgb.RGB {
	if r.Gamma {
		return r.RGB
	}
	return r.RGB.Encoded()
}

// String renders the one-line experiment report.
func (r Result) String() string {
	return fmt.Sprintf("Method: %s, Samples: %d, Time: %.3fs, RGB: %v",
		r.Method, r.Count, r.Elapsed.Seconds(), r.RGB)
}

// Option configures a Runner.
type Option func(*Runner)

// WithGamma enables or disables sRGB gamma encoding. Enabled by default.
func WithGamma(enabled bool) Option {
	return func(r *Runner) { r.gamma = enabled }
}

// WithSampler sets the sampler, e.g. one with a seeded source.
func WithSampler(s *sampling.Sampler) Option {
	return func(r *Runner) {
		if s != nil {
			r.sampler = s
		}
	}
}

// WithNormalize scales XYZ so the lamp's own white reference has Y = 1.
func WithNormalize(enabled bool) Option {
	return func(r *Runner) { r.normalize = enabled }
}

// WithClock replaces the wall clock used to time sampling.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// Runner resolves spectra by name, samples, integrates and transforms.
type Runner struct {
	lib       *spectrum.Library
	integ     *xyz.Integrator
	sampler   *sampling.Sampler
	gamma     bool
	normalize bool
	now       func() time.Time
}

// New returns a Runner over lib using integ for the XYZ projection.
func New(lib *spectrum.Library, integ *xyz.Integrator, opts ...Option) (*Runner, error) {
	if lib == nil {
		return nil, errNilLibrary
	}
	if integ == nil {
		return nil, errNilIntegrator
	}
	r := &Runner{
		lib:     lib,
		integ:   integ,
		sampler: sampling.New(),
		gamma:   true,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Run executes one experiment. Only the sampling call is timed.
func (r *Runner) Run(spec Spec) (Result, error) {
	lamp, err := r.lib.Lookup(spec.Lamp)
	if err != nil {
		return Result{}, fmt.Errorf("lamp: %w", err)
	}
	refl, err := r.lib.Lookup(spec.Refl)
	if err != nil {
		return Result{}, fmt.Errorf("reflectance: %w", err)
	}
	if spec.Method == nil {
		return Result{}, fmt.Errorf("%w: no method", sampling.ErrUnknownMethod)
	}

	start := r.now()
	pts, err := r.sampler.Sample(spec.Method, lamp, refl)
	elapsed := r.now().Sub(start)
	if err != nil {
		return Result{}, fmt.Errorf("%s sampling: %w", spec.Method.Name(), err)
	}

	tri, err := r.integ.Convert(pts)
	if err != nil {
		return Result{}, err
	}
	if r.normalize {
		if tri, err = r.normalized(tri, lamp); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Lamp:    spec.Lamp,
		Refl:    spec.Refl,
		Method:  spec.Method.Name(),
		Count:   pts.Len(),
		Elapsed: elapsed,
		XYZ:     tri,
		RGB:     srgb.FromXYZ(tri, r.gamma),
		Gamma:   r.gamma,
	}
	Logger().Debug("experiment run",
		"lamp", spec.Lamp, "refl", spec.Refl, "method", res.Method,
		"points", res.Count, "elapsed", elapsed, "xyz", tri[:])
	return res, nil
}

// normalized divides tri by the luminance of the lamp integrated over its
// native samples.
func (r *Runner) normalized(tri xyz.Tristimulus, lamp *spectrum.Spectrum) (xyz.Tristimulus, error) {
	white, err := r.integ.SpectrumToXYZ(lamp.Wavelengths(), lamp.Values())
	if err != nil {
		return tri, err
	}
	if !(white.Y() > 0) {
		return tri, ErrDarkLamp
	}
	for i := range tri {
		tri[i] /= white.Y()
	}
	return tri, nil
}
