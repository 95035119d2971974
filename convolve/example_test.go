package convolve_test

import (
	"fmt"

	"github.com/cwbudde/algo-srf/convolve"
	"github.com/cwbudde/algo-srf/srf"
)

func ExampleConvolve() {
	// A flat 25% reflectance curve over the full reference grid.
	table := convolve.NewConstantTable(srf.GridMin, srf.GridMax, []string{"siteA"}, 0.25)

	res, err := convolve.Convolve(table, srf.SensorLandsat5TM)
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := res.Means.Value("siteA", "Band4_840")
	fmt.Printf("Band4_840: %.2f\n", v)
	fmt.Println("dual output:", res.Dual())

	// Output:
	// Band4_840: 0.25
	// dual output: false
}

func ExampleNew() {
	// Measurements covering only 400-900 nm; the engine pads the rest of
	// the grid with zero reflectance.
	table := convolve.NewConstantTable(400, 900, []string{"siteA"}, 0.5)

	c, err := convolve.New(table, srf.SensorSentinel3A)
	if err != nil {
		fmt.Println(err)
		return
	}

	padded := c.ModifiedReflectanceData()
	fmt.Println("padded wavelengths:", len(padded.Wavelengths))

	res, err := c.DoConvolutions()
	if err != nil {
		fmt.Println(err)
		return
	}

	mean, _ := res.Means.Value("siteA", "Band6_560")
	std, _ := res.Stds.Value("siteA", "Band6_560")
	fmt.Printf("Band6_560 mean: %.2f std: %.2f\n", mean, std)

	// Band21_1020 lies entirely outside the measured range.
	far, _ := res.Means.Value("siteA", "Band21_1020")
	fmt.Printf("Band21_1020 mean: %.2f\n", far)

	// Output:
	// padded wavelengths: 2151
	// Band6_560 mean: 0.50 std: 0.50
	// Band21_1020 mean: 0.00
}
