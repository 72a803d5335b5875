package spectrum

import (
	"fmt"
	"sort"
)

// Library maps spectrum names to spectra.
type Library struct {
	byName map[string]*Spectrum
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]*Spectrum)}
}

// Add stores s under name, replacing any previous entry.
func (l *Library) Add(name string, s *Spectrum) {
	l.byName[name] = s
}

// AddMissing stores s under name unless the name is already taken. It reports
// whether s was stored.
func (l *Library) AddMissing(name string, s *Spectrum) bool {
	if _, ok := l.byName[name]; ok {
		return false
	}
	l.byName[name] = s
	return true
}

// Lookup returns the spectrum stored under name.
func (l *Library) Lookup(name string) (*Spectrum, error) {
	s, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return s, nil
}

// Names returns the stored names in sorted order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.byName))
	for n := range l.byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored spectra.
func (l *Library) Len() int { return len(l.byName) }
