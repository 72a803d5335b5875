package xyz

import "sort"

type pairs struct {
	wl, v []float64
}

func (p pairs) Len() int           { return len(p.wl) }
func (p pairs) Less(i, j int) bool { return p.wl[i] < p.wl[j] }
func (p pairs) Swap(i, j int) {
	p.wl[i], p.wl[j] = p.wl[j], p.wl[i]
	p.v[i], p.v[j] = p.v[j], p.v[i]
}

// sortedView returns the samples ordered by wavelength. Random sampling
// yields unordered wavelengths; interpolation needs an ascending table.
// Already-sorted input is returned as is.
func sortedView(wl, v []float64) ([]float64, []float64) {
	if sort.Float64sAreSorted(wl) {
		return wl, v
	}
	p := pairs{
		wl: append([]float64(nil), wl...),
		v:  append([]float64(nil), v...),
	}
	sort.Stable(p)
	return p.wl, p.v
}
