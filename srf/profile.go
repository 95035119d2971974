package srf

import "sync"

// Profile is the ordered set of band definitions for one sensor. Band
// order is stable and defines the output column order of the convolution
// engine. DualOutput marks sensors whose bands carry both a mean and a
// relative standard deviation weighting vector.
//
// Profiles handed out by the package are shared and must not be mutated.
type Profile struct {
	Sensor     Sensor
	DualOutput bool
	Bands      []Band
}

// CentralWavelengths returns the band labels and central wavelengths in
// band order.
func (p *Profile) CentralWavelengths() []BandCenter {
	out := make([]BandCenter, len(p.Bands))
	for i, b := range p.Bands {
		out[i] = BandCenter{Name: b.Name, Wavelength: b.Center}
	}
	return out
}

// Repository resolves sensor keys to profiles.
type Repository interface {
	Resolve(sensor Sensor) (*Profile, error)
}

type staticRepository struct {
	profiles map[Sensor]*Profile
}

func (r *staticRepository) Resolve(sensor Sensor) (*Profile, error) {
	key, err := ParseSensor(string(sensor))
	if err != nil {
		return nil, err
	}
	return r.profiles[key], nil
}

var (
	defaultOnce sync.Once
	defaultRepo *staticRepository
)

// Default returns the process-wide repository holding the shipped sensor
// profiles. The profiles are built on first use and read-only afterwards.
func Default() Repository {
	defaultOnce.Do(func() {
		defaultRepo = &staticRepository{profiles: buildProfiles()}
	})
	return defaultRepo
}

// Resolve looks up sensor in the default repository.
func Resolve(sensor Sensor) (*Profile, error) {
	return Default().Resolve(sensor)
}

// CentralWavelengths returns the band labels and central wavelengths of
// sensor in band order.
func CentralWavelengths(sensor Sensor) ([]BandCenter, error) {
	p, err := Resolve(sensor)
	if err != nil {
		return nil, err
	}
	return p.CentralWavelengths(), nil
}

// IsDualOutput reports whether sensor produces both a mean and a
// standard deviation band table.
func IsDualOutput(sensor Sensor) (bool, error) {
	p, err := Resolve(sensor)
	if err != nil {
		return false, err
	}
	return p.DualOutput, nil
}
