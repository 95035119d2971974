// Package convolve computes band-averaged reflectance values for a
// named satellite sensor from a hyperspectral reflectance curve.
//
// The input is a reflectance Table: one value per site per integer
// wavelength, sampled at 1 nm. The engine requires full coverage of the
// 350-2500 nm reference grid; wavelengths the input does not cover are
// padded with zero reflectance (never interpolated), while gaps or
// undefined cells inside the covered span are rejected. For every band of
// the resolved sensor profile and every site, the convolved value is the
// SRF-weighted average
//
//	value = sum(w[λ] * r[λ]) / sum(w[λ])
//
// over the band's wavelength support. Dual-output sensors yield a second
// table computed with the same formula over the per-band standard
// deviation weights.
//
// # Usage
//
// One-shot convolution:
//
//	table, _ := convolve.NewTable(wavelengths, []string{"siteA"}, values)
//	res, err := convolve.Convolve(table, srf.SensorSentinel2A)
//	if err != nil {
//	    // ...
//	}
//	v, _ := res.Means.Value("siteA", "Band4_665")
//
// For access to the padded input or the resolved profile, construct a
// Convolver explicitly:
//
//	c, _ := convolve.New(table, srf.SensorSentinel3A)
//	padded := c.ModifiedReflectanceData()
//	res, _ := c.DoConvolutions()
//	if res.Dual() {
//	    // res.Stds carries the relative standard deviation bands
//	}
//
// The engine is stateless per call and holds no mutable shared state;
// bands are computed by parallel workers.
package convolve
