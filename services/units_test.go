package services

import (
	"math"
	"testing"
)

func TestKwToTons(t *testing.T) {
	tests := []struct {
		name   string
		kw     float64
		expect float64
	}{
		{"one ton exactly", 3.517, 1},
		{"zero", 0, 0},
		{"ten kw", 10, 10 / 3.517},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KwToTons(tt.kw)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("KwToTons(%v) = %v, want %v", tt.kw, got, tt.expect)
			}
		})
	}
}

func TestKwToBTU(t *testing.T) {
	tests := []struct {
		name   string
		kw     float64
		expect float64
	}{
		{"one kw", 1, 3412},
		{"zero", 0, 0},
		{"pool heater", 9.6, 9.6 * 3412},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KwToBTU(tt.kw)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("KwToBTU(%v) = %v, want %v", tt.kw, got, tt.expect)
			}
		})
	}
}

func TestWattConversions(t *testing.T) {
	if got := WattsToBTU(1000); math.Abs(got-3412) > 1 {
		t.Errorf("WattsToBTU(1000) = %v, want ~3412", got)
	}
	if got := WattsToTons(3517); math.Abs(got-1) > 1e-9 {
		t.Errorf("WattsToTons(3517) = %v, want 1", got)
	}
	if got := WattsToKw(4500); got != 4.5 {
		t.Errorf("WattsToKw(4500) = %v, want 4.5", got)
	}
	if got := BTUToWatts(WattsToBTU(250)); math.Abs(got-250) > 1e-9 {
		t.Errorf("BTU round trip = %v, want 250", got)
	}
}

func TestCFMToCMH(t *testing.T) {
	tests := []struct {
		name   string
		cfm    float64
		expect float64
	}{
		{"unit", 1, 1.699},
		{"zero", 0, 0},
		{"typical ahu", 2000, 3398},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CFMToCMH(tt.cfm)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("CFMToCMH(%v) = %v, want %v", tt.cfm, got, tt.expect)
			}
		})
	}
}
