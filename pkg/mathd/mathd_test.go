package mathd

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected bool
	}{
		{"exact_zero", 0, true},
		{"below_tolerance", 5e-7, true},
		{"negative_below_tolerance", -5e-7, true},
		{"at_tolerance", ZeroTolerance, false},
		{"large", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsZero(tt.value); got != tt.expected {
				t.Errorf("IsZero(%v) = %v, expected %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestIsOne(t *testing.T) {
	if !IsOne(1.0) {
		t.Error("IsOne(1) = false, expected true")
	}
	if !IsOne(float32(1.0000001)) {
		t.Error("IsOne(float32 1.0000001) = false, expected true")
	}
	if IsOne(1.01) {
		t.Error("IsOne(1.01) = true, expected false")
	}
}

func TestNearEqual(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		epsilon  float64
		def      bool
		explicit bool
	}{
		{"identical", 2, 2, 0, true, true},
		{"tiny_difference", 1.0, 1.0 + 1e-7, 1e-9, true, false},
		{"large_difference", 1.0, 1.1, 0.2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearEqual(tt.a, tt.b); got != tt.def {
				t.Errorf("NearEqual(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.def)
			}
			if got := NearEqualEpsilon(tt.a, tt.b, tt.epsilon); got != tt.explicit {
				t.Errorf("NearEqualEpsilon(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.epsilon, got, tt.explicit)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	a, b := 3.7, -12.25
	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, expected %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, expected %v", got, b)
	}
	if got := Lerp(0.0, 10.0, 2); got != 20 {
		t.Errorf("Lerp(0, 10, 2) = %v, expected extrapolated 20", got)
	}
}

func TestSmoothStep(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"below_range", -1, 0},
		{"start", 0, 0},
		{"middle", 0.5, 0.5},
		{"quarter", 0.25, 0.15625},
		{"end", 1, 1},
		{"above_range", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SmoothStep(tt.amount); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("SmoothStep(%v) = %v, expected %v", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5.0, 0, 1); got != 1 {
		t.Errorf("Clamp(5, 0, 1) = %v, expected 1", got)
	}
	if got := Clamp(-5.0, 0, 1); got != 0 {
		t.Errorf("Clamp(-5, 0, 1) = %v, expected 0", got)
	}
	if got := Clamp(0.5, 2, 1); got != 2 {
		t.Errorf("Clamp(0.5, 2, 1) = %v, expected min to win", got)
	}
}

func TestFrac(t *testing.T) {
	if got := Frac(2.75); got != 0.75 {
		t.Errorf("Frac(2.75) = %v, expected 0.75", got)
	}
	if got := Frac(-2.75); got != -0.75 {
		t.Errorf("Frac(-2.75) = %v, expected -0.75", got)
	}
}

func TestUnwindDegrees(t *testing.T) {
	tests := []struct {
		angle    float64
		expected float64
	}{
		{0, 0},
		{180, 180},
		{190, -170},
		{-190, 170},
		{720, 0},
		{-540, -180},
		{1e20, -80},
		{-1e20, 80},
	}

	for _, tt := range tests {
		if got := UnwindDegrees(tt.angle); got != tt.expected {
			t.Errorf("UnwindDegrees(%v) = %v, expected %v", tt.angle, got, tt.expected)
		}
	}

	for _, angle := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		if got := UnwindDegrees(angle); !math.IsNaN(got) {
			t.Errorf("UnwindDegrees(%v) = %v, expected NaN", angle, got)
		}
	}
	if got := UnwindDegrees(float32(1e20)); got < -180 || got > 180 {
		t.Errorf("UnwindDegrees(float32(1e20)) = %v, expected a value in [-180, 180]", got)
	}
}
