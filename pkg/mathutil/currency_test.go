package mathutil

import "testing"

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Round down",
			input:    22266.4,
			expected: 22266,
		},
		{
			name:     "Round up",
			input:    22266.5,
			expected: 22267,
		},
		{
			name:     "Already whole",
			input:    31231,
			expected: 31231,
		},
		{
			name:     "Negative rounds away from zero at half",
			input:    -10.5,
			expected: -11,
		},
		{
			name:     "Zero",
			input:    0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.input); got != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, got, tt.expected)
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
		{name: "Exactly zero", input: 0, expected: true},
		{name: "Sub-unit residue", input: 0.49, expected: true},
		{name: "One unit", input: 1, expected: false},
		{name: "Negative residue", input: -0.25, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.input); got != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	if got := Min(3, 7); got != 3 {
		t.Errorf("Min(3, 7) = %v, expected 3", got)
	}
	if got := Max(3, 7); got != 7 {
		t.Errorf("Max(3, 7) = %v, expected 7", got)
	}
	if got := Max(0, -200000); got != 0 {
		t.Errorf("Max(0, -200000) = %v, expected 0", got)
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(31231, 31233, 2) {
		t.Errorf("expected 31231 and 31233 to be within tolerance 2")
	}
	if WithinTolerance(31231, 31234, 2) {
		t.Errorf("expected 31231 and 31234 to exceed tolerance 2")
	}
}
