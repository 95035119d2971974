package srf

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-srf/internal/testutil"
)

func TestParseSensor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Sensor
		fails bool
	}{
		{"canonical", "Sentinel-2A", SensorSentinel2A, false},
		{"lowercase", "sentinel-2a", SensorSentinel2A, false},
		{"uppercase", "LANDSAT-8 OLI", SensorLandsat8OLI, false},
		{"surrounding space", "  Landsat-7 ETM+ ", SensorLandsat7ETM, false},
		{"superdove mixed case", "planetscope superdove", SensorSuperDove, false},
		{"legacy spelling rejected", "Sentinel2a", "", true},
		{"missing suffix rejected", "Landsat-8", "", true},
		{"unknown sensor", "MODIS", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSensor(tt.input)
			if tt.fails {
				if !errors.Is(err, ErrUnknownSensor) {
					t.Fatalf("expected ErrUnknownSensor, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("ASTER"); !errors.Is(err, ErrUnknownSensor) {
		t.Fatalf("expected ErrUnknownSensor, got %v", err)
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	p, err := Resolve("sentinel-3b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Sensor != SensorSentinel3B {
		t.Fatalf("resolved %q, want %q", p.Sensor, SensorSentinel3B)
	}
}

func TestResolveAllSensors(t *testing.T) {
	wantBands := map[Sensor]int{
		SensorSentinel2A:  13,
		SensorSentinel2B:  13,
		SensorSentinel3A:  21,
		SensorSentinel3B:  21,
		SensorSuperDove:   8,
		SensorLandsat5TM:  6,
		SensorLandsat7ETM: 7,
		SensorLandsat8OLI: 9,
		SensorLandsat9OLI: 9,
	}

	for _, sensor := range Sensors() {
		t.Run(string(sensor), func(t *testing.T) {
			p, err := Resolve(sensor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Bands) != wantBands[sensor] {
				t.Fatalf("got %d bands, want %d", len(p.Bands), wantBands[sensor])
			}
			for _, b := range p.Bands {
				if b.MinWavelength < GridMin || b.MaxWavelength > GridMax {
					t.Fatalf("band %s support [%d, %d] outside grid", b.Name, b.MinWavelength, b.MaxWavelength)
				}
				if got, want := len(b.Weights), b.MaxWavelength-b.MinWavelength+1; got != want {
					t.Fatalf("band %s has %d weights for %d wavelengths", b.Name, got, want)
				}
				testutil.RequireFinite(t, b.Weights)
				mass := 0.0
				for _, w := range b.Weights {
					if w < 0 {
						t.Fatalf("band %s has negative weight %v", b.Name, w)
					}
					mass += w
				}
				if mass <= 0 {
					t.Fatalf("band %s has zero weight mass", b.Name)
				}
				if b.Center < float64(b.MinWavelength) || b.Center > float64(b.MaxWavelength) {
					t.Fatalf("band %s center %v outside support [%d, %d]",
						b.Name, b.Center, b.MinWavelength, b.MaxWavelength)
				}
				if p.DualOutput {
					if len(b.StdWeights) != len(b.Weights) {
						t.Fatalf("band %s std weights span %d, want %d",
							b.Name, len(b.StdWeights), len(b.Weights))
					}
				} else if b.StdWeights != nil {
					t.Fatalf("band %s of single-output sensor carries std weights", b.Name)
				}
			}
		})
	}
}

func TestResolveOrderStable(t *testing.T) {
	first, err := Resolve(SensorSentinel2A)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Resolve(SensorSentinel2A)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.Bands) != len(second.Bands) {
		t.Fatalf("band count changed between resolves")
	}
	for i := range first.Bands {
		if first.Bands[i].Name != second.Bands[i].Name {
			t.Fatalf("band order changed at index %d: %q vs %q",
				i, first.Bands[i].Name, second.Bands[i].Name)
		}
	}

	wantFirst, wantLast := "Band1_443", "Band12_2190"
	if first.Bands[0].Name != wantFirst || first.Bands[len(first.Bands)-1].Name != wantLast {
		t.Fatalf("unexpected band ordering: first %q, last %q",
			first.Bands[0].Name, first.Bands[len(first.Bands)-1].Name)
	}
}

func TestIsDualOutput(t *testing.T) {
	tests := []struct {
		sensor Sensor
		want   bool
	}{
		{SensorSentinel2A, false},
		{SensorSentinel2B, false},
		{SensorSentinel3A, true},
		{SensorSentinel3B, true},
		{SensorSuperDove, false},
		{SensorLandsat5TM, false},
		{SensorLandsat7ETM, false},
		{SensorLandsat8OLI, true},
		{SensorLandsat9OLI, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.sensor), func(t *testing.T) {
			got, err := IsDualOutput(tt.sensor)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := IsDualOutput("AVHRR"); !errors.Is(err, ErrUnknownSensor) {
		t.Fatalf("expected ErrUnknownSensor, got %v", err)
	}
}

func TestCentralWavelengths(t *testing.T) {
	centers, err := CentralWavelengths(SensorSuperDove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, err := Resolve(SensorSuperDove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(centers) != len(p.Bands) {
		t.Fatalf("got %d centers for %d bands", len(centers), len(p.Bands))
	}
	for i, bc := range centers {
		if bc.Name != p.Bands[i].Name {
			t.Fatalf("index %d: center label %q, band %q", i, bc.Name, p.Bands[i].Name)
		}
		if bc.Wavelength != p.Bands[i].Center {
			t.Fatalf("index %d: center %v, band center %v", i, bc.Wavelength, p.Bands[i].Center)
		}
	}
	for i := 1; i < len(centers); i++ {
		if centers[i].Wavelength <= centers[i-1].Wavelength {
			t.Fatalf("centers not ascending at index %d", i)
		}
	}

	if _, err := CentralWavelengths("GOES"); !errors.Is(err, ErrUnknownSensor) {
		t.Fatalf("expected ErrUnknownSensor, got %v", err)
	}
}

func TestNewGaussianBand(t *testing.T) {
	b := NewGaussianBand("custom_800", 800, 40)

	if b.MinWavelength >= 800 || b.MaxWavelength <= 800 {
		t.Fatalf("support [%d, %d] does not contain the center", b.MinWavelength, b.MaxWavelength)
	}
	testutil.RequireFinite(t, b.Weights)

	// The peak sits at the center wavelength.
	peak := 0
	for i, w := range b.Weights {
		if w > b.Weights[peak] {
			peak = i
		}
	}
	if got := b.MinWavelength + peak; got != 800 {
		t.Fatalf("peak at %d nm, want 800", got)
	}

	// Half maximum one half-width out from the center.
	half, ok := weightAt(b, 800+20)
	if !ok {
		t.Fatalf("half-width wavelength outside support")
	}
	testutil.RequireNearlyEqual(t, half, 0.5, 1e-9)

	// A symmetric window centers on its mean.
	testutil.RequireNearlyEqual(t, b.Center, 800, 0.01)
}

func TestNewGaussianBandClipsToGrid(t *testing.T) {
	b := NewGaussianBand("edge_360", 360, 30)
	if b.MinWavelength != GridMin {
		t.Fatalf("support starts at %d, want clipped to %d", b.MinWavelength, GridMin)
	}
	if b.Center <= float64(GridMin) || math.IsNaN(b.Center) {
		t.Fatalf("bad center %v for clipped band", b.Center)
	}
}

func weightAt(b Band, wl int) (float64, bool) {
	if wl < b.MinWavelength || wl > b.MaxWavelength {
		return 0, false
	}
	return b.Weights[wl-b.MinWavelength], true
}
