package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"No rounding needed", 1.23, 1.23},
		{"Large number", 12345.678, 12345.68},
		{"Negative number round down", -1.234, -1.23},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Round down", 655500.4, 655500},
		{"Round up", 655500.5, 655501},
		{"Negative", -15100.6, -15101},
		{"Whole already", 700000, 700000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundWhole(tt.input)
			if result != tt.expected {
				t.Errorf("RoundWhole(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Months elapsed", 3.4619, 3.5},
		{"Round down", 5.04, 5.0},
		{"Whole", 5.0, 5.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RoundTenth(tt.input)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("RoundTenth(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Exactly zero", 0.0, true},
		{"Within tolerance", 0.005, true},
		{"Above tolerance", 0.02, false},
		{"Negative above tolerance", -0.02, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsZero(tt.input); result != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestPercentageHelpers(t *testing.T) {
	if got := ApplyPercentage(500000, 4); got != 20000 {
		t.Errorf("ApplyPercentage(500000, 4) = %v, expected 20000", got)
	}
	if got := ApplyPercentage(500000, 0); got != 0 {
		t.Errorf("ApplyPercentage(500000, 0) = %v, expected 0", got)
	}
	if got := CalculatePercentage(15100, 655500); math.Abs(got-2.3036) > 0.001 {
		t.Errorf("CalculatePercentage(15100, 655500) = %v, expected ~2.3036", got)
	}
	if got := CalculatePercentage(1, 0); got != 0 {
		t.Errorf("CalculatePercentage(1, 0) = %v, expected 0", got)
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(1.5, 2.5); got != 1.5 {
		t.Errorf("Min(1.5, 2.5) = %v, expected 1.5", got)
	}
	if got := Max(1.5, 2.5); got != 2.5 {
		t.Errorf("Max(1.5, 2.5) = %v, expected 2.5", got)
	}
	if got := WithinTolerance(1.0, 1.0000001, 1e-6); !got {
		t.Errorf("WithinTolerance(1.0, 1.0000001, 1e-6) = false, expected true")
	}
}
