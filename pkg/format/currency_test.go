package format

import "testing"

func TestAED(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Large amount", 655500.0, "AED 655,500.00"},
		{"With fils", 1234.56, "AED 1,234.56"},
		{"Float artifact", 0.1 + 0.2, "AED 0.30"},
		{"Negative", -29400.0, "AED -29,400.00"},
		{"Zero", 0, "AED 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AED(tt.input); got != tt.expected {
				t.Errorf("AED(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWholeAED(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"Rounds up", 688374.5, "AED 688,375"},
		{"Rounds down", 688374.4, "AED 688,374"},
		{"Negative", -11625.75, "AED -11,626"},
		{"Small", 42, "AED 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeAED(tt.input); got != tt.expected {
				t.Errorf("WholeAED(%v) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(2.3036); got != "2.30%" {
		t.Errorf("Percent(2.3036) = %q, expected \"2.30%%\"", got)
	}
	if got := Percent(-5); got != "-5.00%" {
		t.Errorf("Percent(-5) = %q, expected \"-5.00%%\"", got)
	}
}
