package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("20x15 rect should not be empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(0.5, 0.5, 0.25, 0.5)

	if r.X != 0.375 || r.Y != 0.25 {
		t.Errorf("CenteredRect origin = (%f, %f), expected (0.375, 0.25)", r.X, r.Y)
	}
	if r.Right() != 0.625 {
		t.Errorf("Right() = %f, expected 0.625", r.Right())
	}
	if r.Bottom() != 0.75 {
		t.Errorf("Bottom() = %f, expected 0.75", r.Bottom())
	}
}

func TestRectFScale(t *testing.T) {
	tests := []struct {
		name     string
		r        RectF
		w, h     int
		expected Rect
	}{
		{
			name:     "full field",
			r:        RectF{X: 0, Y: 0, W: 1, H: 1},
			w:        80,
			h:        24,
			expected: NewRect(0, 0, 80, 24),
		},
		{
			name:     "half field",
			r:        RectF{X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
			w:        80,
			h:        24,
			expected: NewRect(40, 12, 40, 12),
		},
		{
			name:     "tiny rect keeps one cell",
			r:        RectF{X: 0.5, Y: 0.5, W: 0.001, H: 0.001},
			w:        80,
			h:        24,
			expected: NewRect(40, 12, 1, 1),
		},
		{
			name:     "degenerate rect stays empty",
			r:        RectF{X: 0.5, Y: 0.5, W: 0, H: 0},
			w:        80,
			h:        24,
			expected: NewRect(40, 12, 0, 0),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.Scale(tc.w, tc.h)
			if result != tc.expected {
				t.Errorf("Scale() = %+v, expected %+v", result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.55, 0.0, 1.0, 0.55},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}
