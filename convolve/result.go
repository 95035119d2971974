package convolve

// BandTable is a convolution output: one row per site in input order,
// one column per band in profile order. Values[s][b] is the convolved
// value of Sites[s] in Bands[b].
type BandTable struct {
	Bands  []string
	Sites  []string
	Values [][]float64
}

func newBandTable(bands, sites []string) *BandTable {
	values := make([][]float64, len(sites))
	for s := range values {
		values[s] = make([]float64, len(bands))
	}
	return &BandTable{Bands: bands, Sites: sites, Values: values}
}

// Value returns the convolved value of site in band, and whether that
// cell exists.
func (t *BandTable) Value(site, band string) (float64, bool) {
	s := -1
	for i, name := range t.Sites {
		if name == site {
			s = i
			break
		}
	}
	if s < 0 {
		return 0, false
	}
	for b, name := range t.Bands {
		if name == band {
			return t.Values[s][b], true
		}
	}
	return 0, false
}

// Result holds the output of one convolution run. Means is always set.
// Stds is set only for dual-output sensors and shares the row and column
// ordering of Means; the arity is determined by the sensor profile,
// never by the data.
type Result struct {
	Means *BandTable
	Stds  *BandTable
}

// Dual reports whether the result carries a standard deviation table.
func (r *Result) Dual() bool {
	return r.Stds != nil
}
