// Package srf models satellite spectral response functions.
//
// A spectral response function (SRF) describes how sensitive one sensor
// band is at each wavelength. The package ships tabulated per-band weight
// vectors for nine satellite instruments on the common 1 nm reference grid
// spanning 350-2500 nm, and resolves a sensor key to an immutable Profile
// describing its bands:
//
//   - band labels and ordering as published for each instrument
//   - per-band weight vectors over the band's wavelength support
//   - the central wavelength derived from the weighting distribution
//   - a dual-output flag for instruments whose SRF tables additionally
//     provide relative standard deviation weights per band
//
// # Usage
//
// Resolve a profile and list its band centers:
//
//	profile, _ := srf.Resolve(srf.SensorSentinel2A)
//	for _, bc := range profile.CentralWavelengths() {
//	    fmt.Println(bc.Name, bc.Wavelength)
//	}
//
// Sensor keys are matched case-insensitively against a fixed canon; any
// other spelling is rejected with ErrUnknownSensor. Resolved profiles are
// built once per process, shared, and must be treated as read-only.
//
// Custom instruments can be approximated with NewGaussianBand, which
// models a band as a Gaussian window with a given center and full width
// at half maximum.
package srf
