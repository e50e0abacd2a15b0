// Package services contains the HVAC sizing engine: unit conversions,
// equipment catalogs and capacity matching, per-domain load calculators,
// the dependency-graph recomputation core, and quotation rollups.
package services

// Unit conversions used across the sizing calculators. Each conversion is a
// fixed linear scale factor; a zero or missing source value converts to
// zero. Rounding is left to the presentation layer.

const (
	kwPerTon     = 3.517 // 1 refrigeration ton = 3.517 kW
	btuPerKw     = 3412  // 1 kW = 3412 BTU/hr
	btuPerWatt   = 3.412 // 1 W = 3.412 BTU/hr
	cmhPerCfm    = 1.699 // 1 CFM = 1.699 m³/hr
	wattsPerTon  = 3517  // 1 refrigeration ton = 3517 W
	wattsPerKw   = 1000
)

// KwToTons converts kilowatts of cooling to refrigeration tons.
func KwToTons(kw float64) float64 {
	return kw / kwPerTon
}

// KwToBTU converts kilowatts to BTU/hr.
func KwToBTU(kw float64) float64 {
	return kw * btuPerKw
}

// WattsToBTU converts watts to BTU/hr.
func WattsToBTU(w float64) float64 {
	return w * btuPerWatt
}

// BTUToWatts converts BTU/hr to watts.
func BTUToWatts(btu float64) float64 {
	return btu / btuPerWatt
}

// WattsToTons converts watts of cooling to refrigeration tons.
func WattsToTons(w float64) float64 {
	return w / wattsPerTon
}

// WattsToKw converts watts to kilowatts.
func WattsToKw(w float64) float64 {
	return w / wattsPerKw
}

// CFMToCMH converts cubic feet per minute to cubic meters per hour.
func CFMToCMH(cfm float64) float64 {
	return cfm * cmhPerCfm
}
