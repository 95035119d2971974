package convolve

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/cwbudde/algo-srf/srf"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Errors returned by the convolution engine.
var (
	ErrInvalidReflectanceData = errors.New("convolve: invalid reflectance data")
	ErrDegenerateBand         = errors.New("convolve: degenerate band")
	ErrTableShape             = errors.New("convolve: table shape mismatch")
)

// Option configures a Convolver.
type Option func(*config)

type config struct {
	repo        srf.Repository
	parallelism int
}

func defaultConfig() config {
	return config{
		repo:        srf.Default(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithRepository substitutes the profile repository the engine resolves
// sensors against.
func WithRepository(r srf.Repository) Option {
	return func(c *config) {
		if r != nil {
			c.repo = r
		}
	}
}

// WithParallelism caps the number of concurrent band workers.
func WithParallelism(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.parallelism = n
		}
	}
}

// Convolver binds one reflectance table to one sensor profile. It is
// stateless across calls; DoConvolutions may be called repeatedly and
// concurrently.
type Convolver struct {
	sensor  srf.Sensor
	profile *srf.Profile
	data    *Table
	cfg     config
}

// New resolves the sensor profile, validates the table and zero-pads it
// to full 350-2500 nm coverage. Wavelengths outside the grid are
// dropped; gaps or NaN cells inside the input's covered span fail with
// ErrInvalidReflectanceData naming the offending wavelengths.
func New(table *Table, sensor srf.Sensor, opts ...Option) (*Convolver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	profile, err := cfg.repo.Resolve(sensor)
	if err != nil {
		return nil, err
	}

	padded, err := padToGrid(table)
	if err != nil {
		return nil, err
	}

	return &Convolver{sensor: sensor, profile: profile, data: padded, cfg: cfg}, nil
}

// Convolve is a one-shot convolution of table against sensor.
func Convolve(table *Table, sensor srf.Sensor, opts ...Option) (*Result, error) {
	c, err := New(table, sensor, opts...)
	if err != nil {
		return nil, err
	}
	return c.DoConvolutions()
}

// ModifiedReflectanceData returns the table the engine computes on: the
// zero-padded table if padding occurred, else the original.
func (c *Convolver) ModifiedReflectanceData() *Table {
	return c.data
}

// Sensor returns the bound sensor key.
func (c *Convolver) Sensor() srf.Sensor {
	return c.sensor
}

// SRF returns the resolved sensor profile, carrying the mean weights and,
// for dual-output sensors, the standard deviation weights per band.
func (c *Convolver) SRF() *srf.Profile {
	return c.profile
}

// CentralWavelengths returns the band labels and central wavelengths in
// band order.
func (c *Convolver) CentralWavelengths() []srf.BandCenter {
	return c.profile.CentralWavelengths()
}

// DoConvolutions computes the weighted-average reflectance per band per
// site. Dual-output profiles yield a second table computed with the
// identical formula over the standard deviation weights. Bands run as
// independent workers, each writing its own output column.
func (c *Convolver) DoConvolutions() (*Result, error) {
	bands := make([]string, len(c.profile.Bands))
	for i, b := range c.profile.Bands {
		bands[i] = b.Name
	}

	means := newBandTable(bands, c.data.Sites)
	var stds *BandTable
	if c.profile.DualOutput {
		stds = newBandTable(bands, c.data.Sites)
	}

	g := new(errgroup.Group)
	g.SetLimit(c.cfg.parallelism)
	for i, band := range c.profile.Bands {
		g.Go(func() error {
			if err := c.bandColumn(means, i, band, band.Weights); err != nil {
				return err
			}
			if stds != nil {
				return c.bandColumn(stds, i, band, band.StdWeights)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Means: means, Stds: stds}, nil
}

// bandColumn fills column col of dst with the weighted average of each
// site's reflectance over the band support.
func (c *Convolver) bandColumn(dst *BandTable, col int, band srf.Band, weights []float64) error {
	mass := floats.Sum(weights)
	if mass == 0 {
		return fmt.Errorf("%w: %s", ErrDegenerateBand, band.Name)
	}

	off := band.MinWavelength - srf.GridMin
	buf := make([]float64, len(weights))
	for s := range c.data.Sites {
		r := c.data.Values[s][off : off+len(weights)]
		vecmath.MulBlock(buf, r, weights)
		dst.Values[s][col] = floats.Sum(buf) / mass
	}
	return nil
}
