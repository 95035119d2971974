package convolve

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-srf/srf"
)

// Table holds ground reflectance per site, indexed by wavelength.
// Values[s][i] is the reflectance of Sites[s] at Wavelengths[i].
// Wavelengths are integer nanometers, strictly ascending. A NaN cell
// marks an undefined measurement.
type Table struct {
	Wavelengths []int
	Sites       []string
	Values      [][]float64
}

// NewTable builds a reflectance table after shape validation: one value
// row per site, one value per wavelength per row, wavelengths strictly
// ascending.
func NewTable(wavelengths []int, sites []string, values [][]float64) (*Table, error) {
	for i := 1; i < len(wavelengths); i++ {
		if wavelengths[i] <= wavelengths[i-1] {
			return nil, fmt.Errorf("%w: wavelengths not strictly ascending at index %d", ErrTableShape, i)
		}
	}
	if len(values) != len(sites) {
		return nil, fmt.Errorf("%w: %d value rows for %d sites", ErrTableShape, len(values), len(sites))
	}
	for s, row := range values {
		if len(row) != len(wavelengths) {
			return nil, fmt.Errorf("%w: site %q has %d values for %d wavelengths",
				ErrTableShape, sites[s], len(row), len(wavelengths))
		}
	}
	return &Table{Wavelengths: wavelengths, Sites: sites, Values: values}, nil
}

// NewConstantTable builds a table covering [minWl, maxWl] at 1 nm with
// the same reflectance everywhere.
func NewConstantTable(minWl, maxWl int, sites []string, value float64) *Table {
	wavelengths := make([]int, maxWl-minWl+1)
	for i := range wavelengths {
		wavelengths[i] = minWl + i
	}
	values := make([][]float64, len(sites))
	for s := range values {
		row := make([]float64, len(wavelengths))
		for i := range row {
			row[i] = value
		}
		values[s] = row
	}
	return &Table{Wavelengths: wavelengths, Sites: sites, Values: values}
}

// Value returns the reflectance of site at the given wavelength, and
// whether that cell exists in the table.
func (t *Table) Value(site string, wavelength int) (float64, bool) {
	s := t.siteIndex(site)
	if s < 0 {
		return 0, false
	}
	i := sort.SearchInts(t.Wavelengths, wavelength)
	if i >= len(t.Wavelengths) || t.Wavelengths[i] != wavelength {
		return 0, false
	}
	return t.Values[s][i], true
}

func (t *Table) siteIndex(site string) int {
	for s, name := range t.Sites {
		if name == site {
			return s
		}
	}
	return -1
}

// padToGrid expands t to full 350-2500 nm coverage, zero-filling every
// wavelength outside the input's covered span and dropping wavelengths
// outside the grid. Gaps or NaN cells inside the covered span are an
// error. The returned table is t itself when t already covers the grid
// exactly, so callers can observe whether padding occurred.
func padToGrid(t *Table) (*Table, error) {
	if coversGrid(t) {
		if missing := undefinedCells(t, 0, len(t.Wavelengths)); len(missing) > 0 {
			return nil, invalidDataError(missing)
		}
		return t, nil
	}

	// Indices of the first and last in-grid input rows.
	lo := sort.SearchInts(t.Wavelengths, srf.GridMin)
	hi := sort.SearchInts(t.Wavelengths, srf.GridMax+1)
	if lo == hi {
		// Nothing in range: the whole grid is zero-padded.
		return NewConstantTable(srf.GridMin, srf.GridMax, t.Sites, 0), nil
	}

	var missing []int
	next := t.Wavelengths[lo]
	for i := lo; i < hi; i++ {
		for ; next < t.Wavelengths[i]; next++ {
			missing = append(missing, next)
		}
		next++
	}
	missing = append(missing, undefinedCells(t, lo, hi)...)
	if len(missing) > 0 {
		sort.Ints(missing)
		return nil, invalidDataError(missing)
	}

	padded := NewConstantTable(srf.GridMin, srf.GridMax, t.Sites, 0)
	for s := range t.Sites {
		for i := lo; i < hi; i++ {
			padded.Values[s][t.Wavelengths[i]-srf.GridMin] = t.Values[s][i]
		}
	}
	return padded, nil
}

// coversGrid reports whether t is exactly the reference grid.
func coversGrid(t *Table) bool {
	if len(t.Wavelengths) != srf.GridLen {
		return false
	}
	return t.Wavelengths[0] == srf.GridMin && t.Wavelengths[len(t.Wavelengths)-1] == srf.GridMax
}

// undefinedCells returns the wavelengths in rows [lo, hi) holding a NaN
// cell for any site.
func undefinedCells(t *Table, lo, hi int) []int {
	var bad []int
	for i := lo; i < hi; i++ {
		for s := range t.Sites {
			if math.IsNaN(t.Values[s][i]) {
				bad = append(bad, t.Wavelengths[i])
				break
			}
		}
	}
	return bad
}

func invalidDataError(wavelengths []int) error {
	const maxListed = 8
	if len(wavelengths) > maxListed {
		return fmt.Errorf("%w: %d wavelengths, first %v", ErrInvalidReflectanceData,
			len(wavelengths), wavelengths[:maxListed])
	}
	return fmt.Errorf("%w: wavelength(s) %v", ErrInvalidReflectanceData, wavelengths)
}
