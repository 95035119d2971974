package srf

// bandSpec describes one shipped band: its published label and nominal
// center, and the wavelength support of its response table.
type bandSpec struct {
	label    string
	center   float64
	min, max int
}

// Relative standard deviation vectors are modeled over the same support
// as the mean response but with a wider half-maximum, since the spread
// between detectors grows toward the band wings.
const stdWidthFactor = 1.2

// Band supports below follow each instrument's published response tables.
//
// Sentinel-2 MSI:
// https://sentinels.copernicus.eu/web/sentinel/user-guides/sentinel-2-msi/document-library
var sentinel2Bands = []bandSpec{
	{"Band1_443", 443, 412, 456},
	{"Band2_490", 490, 439, 533},
	{"Band3_560", 560, 538, 582},
	{"Band4_665", 665, 646, 693},
	{"Band5_705", 705, 695, 713},
	{"Band6_740", 740, 731, 748},
	{"Band7_783", 783, 769, 796},
	{"Band8_842", 842, 773, 906},
	{"Band8A_865", 865, 847, 880},
	{"Band9_940", 940, 932, 958},
	{"Band10_1375", 1375, 1337, 1412},
	{"Band11_1610", 1610, 1539, 1681},
	{"Band12_2190", 2190, 2078, 2319},
}

// Sentinel-3 OLCI:
// https://sentinels.copernicus.eu/web/sentinel/technical-guides/sentinel-3-olci/olci-instrument/spectral-characterisation-data
var sentinel3Bands = []bandSpec{
	{"Band1_400", 400, 387, 411},
	{"Band2_412.5", 412.5, 402, 421},
	{"Band3_442.5", 442.5, 433, 452},
	{"Band4_490", 490, 481, 499},
	{"Band5_510", 510, 501, 519},
	{"Band6_560", 560, 551, 569},
	{"Band7_620", 620, 611, 629},
	{"Band8_665", 665, 655, 674},
	{"Band9_673.75", 673.75, 665, 682},
	{"Band10_681.25", 681.25, 673, 689},
	{"Band11_708.75", 708.75, 699, 718},
	{"Band12_753.75", 753.75, 746, 762},
	{"Band13_761.25", 761.25, 756, 767},
	{"Band14_764.375", 764.375, 758, 771},
	{"Band15_767.5", 767.5, 762, 773},
	{"Band16_778.75", 778.75, 767, 791},
	{"Band17_865", 865, 851, 879},
	{"Band18_885", 885, 874, 893},
	{"Band19_900", 900, 889, 908},
	{"Band20_940", 940, 925, 953},
	{"Band21_1020", 1020, 995, 1043},
}

// PlanetScope SuperDove:
// https://support.planet.com/hc/en-us/articles/360014290293
var superDoveBands = []bandSpec{
	{"Band1_443", 443, 427, 460},
	{"Band2_490", 490, 458, 521},
	{"Band3_531", 531, 507, 558},
	{"Band4_565", 565, 543, 591},
	{"Band5_610", 610, 593, 634},
	{"Band6_665", 665, 641, 688},
	{"Band7_705", 705, 692, 723},
	{"Band8_865", 865, 840, 894},
}

// Landsat 5/7/8/9: https://landsat.usgs.gov/spectral-characteristics-viewer
var landsat5Bands = []bandSpec{
	{"Band1_485", 485, 410, 552},
	{"Band2_569", 569, 500, 650},
	{"Band3_660", 660, 580, 740},
	{"Band4_840", 840, 730, 945},
	{"Band5_1676", 1676, 1514, 1880},
	{"Band7_2223", 2223, 2000, 2400},
}

var landsat7Bands = []bandSpec{
	{"Band1_483", 483, 410, 523},
	{"Band2_560", 560, 500, 650},
	{"Band3_662", 662, 580, 740},
	{"Band4_835", 835, 730, 945},
	{"Band5_1648", 1648, 1514, 1880},
	{"Band7_2206", 2206, 2000, 2400},
	{"Band8_706", 706, 500, 940},
}

var landsat8Bands = []bandSpec{
	{"Band1_443", 443, 427, 459},
	{"Band2_482", 482, 436, 528},
	{"Band3_561", 561, 512, 610},
	{"Band4_655", 655, 625, 691},
	{"Band5_865", 865, 829, 900},
	{"Band6_1609", 1609, 1515, 1697},
	{"Band7_2201", 2201, 2037, 2355},
	{"Band8_590", 590, 488, 692},
	{"Band9_1373", 1373, 1340, 1409},
}

var landsat9Bands = []bandSpec{
	{"Band1_443", 443, 427, 459},
	{"Band2_482", 482, 436, 530},
	{"Band3_562", 562, 512, 610},
	{"Band4_655", 655, 625, 691},
	{"Band5_865", 865, 829, 900},
	{"Band6_1610", 1610, 1515, 1697},
	{"Band7_2200", 2200, 2037, 2355},
	{"Band8_590", 590, 488, 692},
	{"Band9_1375", 1375, 1340, 1409},
}

func buildBand(spec bandSpec, dual bool) Band {
	fwhm := float64(spec.max-spec.min) / 2
	w := gaussianWeights(spec.center, fwhm, spec.min, spec.max)
	b := Band{
		Name:          spec.label,
		MinWavelength: spec.min,
		MaxWavelength: spec.max,
		Weights:       w,
		Center:        centroid(spec.min, w),
	}
	if dual {
		b.StdWeights = gaussianWeights(spec.center, stdWidthFactor*fwhm, spec.min, spec.max)
	}
	return b
}

func buildProfile(sensor Sensor, specs []bandSpec, dual bool) *Profile {
	bands := make([]Band, len(specs))
	for i, spec := range specs {
		bands[i] = buildBand(spec, dual)
	}
	return &Profile{Sensor: sensor, DualOutput: dual, Bands: bands}
}

func buildProfiles() map[Sensor]*Profile {
	return map[Sensor]*Profile{
		SensorSentinel2A:  buildProfile(SensorSentinel2A, sentinel2Bands, false),
		SensorSentinel2B:  buildProfile(SensorSentinel2B, sentinel2Bands, false),
		SensorSentinel3A:  buildProfile(SensorSentinel3A, sentinel3Bands, true),
		SensorSentinel3B:  buildProfile(SensorSentinel3B, sentinel3Bands, true),
		SensorSuperDove:   buildProfile(SensorSuperDove, superDoveBands, false),
		SensorLandsat5TM:  buildProfile(SensorLandsat5TM, landsat5Bands, false),
		SensorLandsat7ETM: buildProfile(SensorLandsat7ETM, landsat7Bands, false),
		SensorLandsat8OLI: buildProfile(SensorLandsat8OLI, landsat8Bands, true),
		SensorLandsat9OLI: buildProfile(SensorLandsat9OLI, landsat9Bands, true),
	}
}
