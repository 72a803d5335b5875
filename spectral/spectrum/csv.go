package spectrum

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cwbudde/algo-spectral/internal/tabular"
)

// Parse reads a two-column CSV (wavelength, value) with a header row.
// Lines starting with '#' are ignored.
func Parse(r io.Reader) (*Spectrum, error) {
	cols, err := tabular.Read(r, 2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return New(cols[0], cols[1])
}

// Load reads the spectrum stored at path.
func Load(path string) (*Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Name returns the lookup name of a spectrum file: its base name without
// extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadDir loads every *.csv file in dir into a new Library.
func LoadDir(dir string) (*Library, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrFile, dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	sort.Strings(paths)

	lib := NewLibrary()
	for _, p := range paths {
		s, err := Load(p)
		if err != nil {
			return nil, err
		}
		lib.Add(Name(p), s)
	}
	return lib, nil
}
