package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectral/colorspace/srgb"
	"github.com/cwbudde/algo-spectral/experiment"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

type printer interface {
	result(experiment.Result) error
	summary(experiment.Summary) error
	comparison(experiment.Comparison) error
	grid(experiment.Grid) error
	names([]string) error
}

// newPrinter returns the printer for format. requested is the sample count
// asked for on the command line; YAML reports it next to the actual count.
func newPrinter(format string, swatch bool, requested int, w io.Writer) (printer, error) {
	switch strings.ToLower(format) {
	case "text", "":
		p := &textPrinter{w: w}
		if swatch {
			p.out = termenv.NewOutput(w)
		}
		return p, nil
	case "yaml":
		return &yamlPrinter{w: w, requested: requested}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
}

type textPrinter struct {
	w   io.Writer
	out *termenv.Output // nil unless swatches are requested
}

// swatch returns a two-cell block painted with hex, or "" when the
// terminal has no color support.
func (p *textPrinter) swatch(hex string) string {
	if p.out == nil {
		return ""
	}
	profile := p.out.Profile
	if profile == termenv.Ascii {
		return ""
	}
	return profile.String("  ").Background(profile.Color(hex)).String()
}

func (p *textPrinter) result(r experiment.Result) error {
	line := r.String()
	if s := p.swatch(r.Hex()); s != "" {
		line += " " + s + " " + r.Hex()
	}
	_, err := fmt.Fprintln(p.w, line)
	return err
}

func (p *textPrinter) summary(s experiment.Summary) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Method: %s, Samples: %d, Trials: %d, Mean time: %.3fs\n",
		s.Last.Method, s.Last.Count, s.Runs, s.Elapsed.Mean)
	fmt.Fprintln(tw, "channel\tmean\tstddev\tmin\tmax")
	for i, name := range []string{"R", "G", "B"} {
		st := s.RGB[i]
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%.6f\t%.6f\n", name, st.Mean, st.StdDev, st.Min, st.Max)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if sw := p.swatch(meanHex(s)); sw != "" {
		_, err := fmt.Fprintf(p.w, "mean %s %s\n", sw, meanHex(s))
		return err
	}
	return nil
}

func (p *textPrinter) comparison(c experiment.Comparison) error {
	if err := p.result(c.Result); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(p.w, "Reference: "); err != nil {
		return err
	}
	if err := p.result(c.Reference); err != nil {
		return err
	}
	_, err := fmt.Fprintf(p.w, "DeltaE2000: %.4f\n", c.DeltaE)
	return err
}

func (p *textPrinter) grid(g experiment.Grid) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s sampling\n", g.Method)
	header := []string{"reflectance"}
	for _, lamp := range g.Lamps {
		header = append(header, lampLabel(lamp))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for i, refl := range g.Refls {
		row := []string{reflLabel(refl)}
		for j := range g.Lamps {
			res := g.At(i, j)
			cell := cellRGB(res.RGB)
			if s := p.swatch(res.Hex()); s != "" {
				cell = s + " " + cell
			}
			row = append(row, cell)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func (p *textPrinter) names(names []string) error {
	for _, n := range names {
		if _, err := fmt.Fprintln(p.w, n); err != nil {
			return err
		}
	}
	return nil
}

// cellRGB formats a table cell with two decimals per channel.
func cellRGB(c srgb.RGB) string {
	return fmt.Sprintf("%.2f, %.2f, %.2f", c[0], c[1], c[2])
}

// lampLabel drops the illuminant_ prefix for column headers.
func lampLabel(name string) string {
	return strings.TrimPrefix(name, "illuminant_")
}

// reflLabel keeps the patch code of names like E2_dark_skin.
func reflLabel(name string) string {
	code, _, _ := strings.Cut(name, "_")
	return code
}

func meanHex(s experiment.Summary) string {
	mean := srgb.RGB(s.Mean())
	if !s.Last.Gamma {
		mean = mean.Encoded()
	}
	return mean.Hex()
}

type yamlPrinter struct {
	w         io.Writer
	requested int
}

type resultDoc struct {
	Lamp      string     `yaml:"lamp"`
	Refl      string     `yaml:"refl"`
	Method    string     `yaml:"method"`
	Samples   int        `yaml:"samples"`
	Requested int        `yaml:"requested"`
	ElapsedMS float64    `yaml:"elapsed_ms"`
	XYZ       [3]float64 `yaml:"xyz,flow"`
	RGB       [3]float64 `yaml:"rgb,flow"`
	Gamma     bool       `yaml:"gamma"`
	Hex       string     `yaml:"hex"`
}

func (p *yamlPrinter) newResultDoc(r experiment.Result) resultDoc {
	return resultDoc{
		Lamp:      r.Lamp,
		Refl:      r.Refl,
		Method:    r.Method,
		Samples:   r.Count,
		Requested: p.requested,
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
		XYZ:       r.XYZ,
		RGB:       r.RGB,
		Gamma:     r.Gamma,
		Hex:       r.Hex(),
	}
}

type channelDoc struct {
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"stddev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
}

type summaryDoc struct {
	Lamp          string                `yaml:"lamp"`
	Refl          string                `yaml:"refl"`
	Method        string                `yaml:"method"`
	Samples       int                   `yaml:"samples"`
	Requested     int                   `yaml:"requested"`
	Trials        int                   `yaml:"trials"`
	MeanElapsedMS float64               `yaml:"mean_elapsed_ms"`
	RGB           map[string]channelDoc `yaml:"rgb"`
}

type comparisonDoc struct {
	Result    resultDoc `yaml:"result"`
	Reference resultDoc `yaml:"reference"`
	DeltaE    float64   `yaml:"delta_e2000"`
}

type gridDoc struct {
	Method string      `yaml:"method"`
	Cells  []resultDoc `yaml:"cells"`
}

func (p *yamlPrinter) encode(v any) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (p *yamlPrinter) result(r experiment.Result) error {
	return p.encode(p.newResultDoc(r))
}

func (p *yamlPrinter) summary(s experiment.Summary) error {
	doc := summaryDoc{
		Lamp:          s.Spec.Lamp,
		Refl:          s.Spec.Refl,
		Method:        s.Last.Method,
		Samples:       s.Last.Count,
		Requested:     p.requested,
		Trials:        s.Runs,
		MeanElapsedMS: s.Elapsed.Mean * 1000,
		RGB:           make(map[string]channelDoc, 3),
	}
	for i, name := range []string{"r", "g", "b"} {
		st := s.RGB[i]
		doc.RGB[name] = channelDoc{Mean: st.Mean, StdDev: st.StdDev, Min: st.Min, Max: st.Max}
	}
	return p.encode(doc)
}

func (p *yamlPrinter) comparison(c experiment.Comparison) error {
	return p.encode(comparisonDoc{
		Result:    p.newResultDoc(c.Result),
		Reference: p.newResultDoc(c.Reference),
		DeltaE:    c.DeltaE,
	})
}

func (p *yamlPrinter) grid(g experiment.Grid) error {
	doc := gridDoc{Method: g.Method}
	for i := range g.Refls {
		for j := range g.Lamps {
			doc.Cells = append(doc.Cells, p.newResultDoc(g.At(i, j)))
		}
	}
	return p.encode(doc)
}

func (p *yamlPrinter) names(names []string) error {
	return p.encode(map[string][]string{"spectra": names})
}
