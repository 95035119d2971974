package srf

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Band is one spectral channel of a sensor: a contiguous wavelength
// support on the reference grid and a non-negative weight per wavelength.
// Weights[i] is the response at wavelength MinWavelength+i. Weights need
// not sum to one; the convolution engine normalizes at computation time.
//
// StdWeights is a second weighting vector present only for bands of
// dual-output sensors, encoding the relative standard deviation of the
// response. It spans the same support as Weights.
type Band struct {
	Name          string
	MinWavelength int
	MaxWavelength int
	Weights       []float64
	StdWeights    []float64

	// Center is the weighted mean wavelength of Weights, rounded to
	// two decimals.
	Center float64
}

// BandCenter pairs a band label with its central wavelength.
type BandCenter struct {
	Name       string
	Wavelength float64
}

const fourLn2 = 4 * math.Ln2

// gaussianWeights evaluates a Gaussian response of the given center and
// full width at half maximum at each integer wavelength in [min, max].
func gaussianWeights(center, fwhm float64, minWl, maxWl int) []float64 {
	w := make([]float64, maxWl-minWl+1)
	for i := range w {
		d := float64(minWl+i) - center
		w[i] = math.Exp(-fourLn2 * d * d / (fwhm * fwhm))
	}
	return w
}

// centroid returns the weighted mean wavelength of w, where w[0] sits at
// minWl on the grid, rounded to two decimals.
func centroid(minWl int, w []float64) float64 {
	mass, err := stats.Sum(w)
	if err != nil || mass <= 0 {
		return float64(minWl)
	}
	var moment float64
	for i, v := range w {
		moment += v * float64(minWl+i)
	}
	c, err := stats.Round(moment/mass, 2)
	if err != nil {
		return moment / mass
	}
	return c
}

// NewGaussianBand models a band as a Gaussian window with the given
// center wavelength and full width at half maximum, both in nanometers.
// The support extends 1.5 FWHM to either side of the center, clipped to
// the reference grid. The shipped sensor profiles are built with the same
// window; the constructor is exported for callers simulating instruments
// the package does not ship.
func NewGaussianBand(name string, center, fwhm float64) Band {
	minWl := clampGrid(int(math.Floor(center - 1.5*fwhm)))
	maxWl := clampGrid(int(math.Ceil(center + 1.5*fwhm)))
	w := gaussianWeights(center, fwhm, minWl, maxWl)
	return Band{
		Name:          name,
		MinWavelength: minWl,
		MaxWavelength: maxWl,
		Weights:       w,
		Center:        centroid(minWl, w),
	}
}

func clampGrid(wl int) int {
	if wl < GridMin {
		return GridMin
	}
	if wl > GridMax {
		return GridMax
	}
	return wl
}
