// Command spectral2rgb converts lamp × reflectance spectra to sRGB using a
// chosen sampling strategy and reports the color and sampling cost.
//
// Usage:
//
//	spectral2rgb --lamp NAME --refl NAME [flags]
//	spectral2rgb --table [flags]
//
// Spectra are loaded from every *.csv file in the data directory and named
// after the file. Illuminants A and E are always available as illuminant_A
// and illuminant_E unless the data directory overrides them.
//
// Examples:
//
//	spectral2rgb --lamp illuminant_A --refl G4_red --method hero
//	spectral2rgb --lamp illuminant_D65 --refl F4_green --method fixed --count 36
//	spectral2rgb --table --method random --count 1000 --no-gamma
//	spectral2rgb --lamp illuminant_A --refl A1_white --trials 200 --seed 7
//	spectral2rgb --list
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/algo-spectral/experiment"
	"github.com/cwbudde/algo-spectral/internal/config"
	"github.com/cwbudde/algo-spectral/spectral/cmf"
	"github.com/cwbudde/algo-spectral/spectral/core"
	"github.com/cwbudde/algo-spectral/spectral/illuminant"
	"github.com/cwbudde/algo-spectral/spectral/sampling"
	"github.com/cwbudde/algo-spectral/spectral/spectrum"
	"github.com/cwbudde/algo-spectral/spectral/xyz"
	"github.com/spf13/pflag"
)

var errUsage = errors.New("usage")

type options struct {
	configPath string
	lamp       string
	refl       string
	method     string
	count      int
	table      bool
	noGamma    bool
	normalize  bool
	dataDir    string
	cmfPath    string
	seed       uint64
	trials     int
	compare    bool
	list       bool
	format     string
	swatch     bool
	logLevel   string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if err := execute(opts, fs, stdout, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, *pflag.FlagSet, error) {
	def := config.Default()
	var o options

	fs := pflag.NewFlagSet("spectral2rgb", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML settings file; flags override its values")
	fs.StringVar(&o.lamp, "lamp", "", "lamp spectrum name (e.g. illuminant_A, illuminant_D65, F11)")
	fs.StringVar(&o.refl, "refl", "", "reflectance spectrum name (e.g. E2_dark_skin, F4_green, A1_white)")
	fs.StringVar(&o.method, "method", def.Method, "sampling method: "+strings.Join(sampling.MethodNames(), ", "))
	fs.IntVar(&o.count, "count", def.Count, "number of samples for random and fixed (ignored for hero)")
	fs.BoolVar(&o.table, "table", false, "print a table over all configured lamp and reflectance combinations")
	fs.BoolVar(&o.noGamma, "no-gamma", false, "disable sRGB gamma encoding")
	fs.BoolVar(&o.normalize, "normalize", false, "scale XYZ so the lamp's own white has Y = 1")
	fs.StringVar(&o.dataDir, "data", def.DataDir, "directory of spectrum CSV files")
	fs.StringVar(&o.cmfPath, "cmf", "", "CIE CMF CSV file (default: built-in analytic CIE 1931)")
	fs.Uint64Var(&o.seed, "seed", 0, "seed for reproducible stochastic sampling")
	fs.IntVar(&o.trials, "trials", def.Trials, "repeat a single experiment and report per-channel statistics")
	fs.BoolVar(&o.compare, "compare", false, "report CIEDE2000 distance to fixed sampling with the same count")
	fs.BoolVar(&o.list, "list", false, "list available spectrum names")
	fs.StringVar(&o.format, "format", "text", "output format: text, yaml")
	fs.BoolVar(&o.swatch, "swatch", false, "print terminal color swatches next to results")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: spectral2rgb [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Runs spectral sampling experiments: a lamp spectrum times a reflectance\n")
		_, _ = fmt.Fprintf(stderr, "spectrum, sampled with the chosen method and converted to sRGB.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return o, fs, err
	}
	return o, fs, nil
}

// settings merges the config file, if any, with explicitly set flags. The
// file is validated on load, so a failure here comes from flag values and is
// reported as a usage error.
func settings(o options, fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}

	if fs.Changed("method") || o.configPath == "" {
		cfg.Method = o.method
	}
	if fs.Changed("count") || o.configPath == "" {
		cfg.Count = o.count
	}
	if fs.Changed("data") || o.configPath == "" {
		cfg.DataDir = o.dataDir
	}
	if fs.Changed("trials") || o.configPath == "" {
		cfg.Trials = o.trials
	}
	if fs.Changed("cmf") {
		cfg.CMFPath = o.cmfPath
	}
	if fs.Changed("no-gamma") {
		cfg.Gamma = !o.noGamma
	}
	if fs.Changed("normalize") {
		cfg.Normalize = o.normalize
	}
	if fs.Changed("seed") {
		seed := o.seed
		cfg.Seed = &seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	return cfg, nil
}

func execute(o options, fs *pflag.FlagSet, stdout, stderr io.Writer) error {
	level, err := parseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	experiment.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := settings(o, fs)
	if err != nil {
		return err
	}

	out, err := newPrinter(o.format, o.swatch, cfg.Count, stdout)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	lib, err := loadLibrary(cfg.DataDir)
	if err != nil {
		return err
	}
	if o.list {
		return out.names(lib.Names())
	}

	if !o.table && (o.lamp == "" || o.refl == "") {
		return fmt.Errorf("%w: must specify --lamp and --refl for single experiment mode", errUsage)
	}

	integ, err := loadIntegrator(cfg.CMFPath)
	if err != nil {
		return err
	}

	var samplerOpts []core.SamplerOption
	if cfg.Seed != nil {
		samplerOpts = append(samplerOpts, core.WithSeed(*cfg.Seed))
	}
	runner, err := experiment.New(lib, integ,
		experiment.WithGamma(cfg.Gamma),
		experiment.WithNormalize(cfg.Normalize),
		experiment.WithSampler(sampling.New(samplerOpts...)),
	)
	if err != nil {
		return err
	}

	method, err := cfg.SamplingMethod()
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	switch {
	case o.table:
		grid, err := runner.Table(cfg.Lamps, cfg.Reflectances, method)
		if err != nil {
			return err
		}
		return out.grid(grid)
	case o.compare:
		cmp, err := runner.Compare(experiment.Spec{Lamp: o.lamp, Refl: o.refl, Method: method}, sampling.Fixed{Count: cfg.Count})
		if err != nil {
			return err
		}
		return out.comparison(cmp)
	case cfg.Trials > 1:
		sum, err := runner.Trials(experiment.Spec{Lamp: o.lamp, Refl: o.refl, Method: method}, cfg.Trials)
		if err != nil {
			return err
		}
		return out.summary(sum)
	default:
		res, err := runner.Run(experiment.Spec{Lamp: o.lamp, Refl: o.refl, Method: method})
		if err != nil {
			return err
		}
		return out.result(res)
	}
}

// loadLibrary reads dir and adds the built-in illuminants. A missing
// directory leaves only the built-ins.
func loadLibrary(dir string) (*spectrum.Library, error) {
	lib, err := spectrum.LoadDir(dir)
	if err != nil {
		if _, statErr := os.Stat(dir); !os.IsNotExist(statErr) {
			return nil, err
		}
		experiment.Logger().Warn("data directory not found, using built-in spectra only", "dir", dir)
		lib = spectrum.NewLibrary()
	}
	if err := illuminant.Register(lib); err != nil {
		return nil, err
	}
	experiment.Logger().Info("spectra loaded", "dir", dir, "count", lib.Len())
	return lib, nil
}

func loadIntegrator(path string) (*xyz.Integrator, error) {
	integ := &xyz.Integrator{}
	if path == "" {
		return integ, integ.SetTable(cmf.Default())
	}
	if err := integ.Load(path); err != nil {
		return nil, err
	}
	return integ, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
