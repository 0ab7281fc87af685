package core

import "testing"

func TestRectContains(t *testing.T) {
	// Play area under a two-row HUD.
	area := NewRect(0, 2, 80, 21)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"first play row", 0, 2, true},
		{"hud row", 10, 1, false},
		{"last column", 79, 10, true},
		{"right edge (exclusive)", 80, 10, false},
		{"last row", 40, 22, true},
		{"below area", 40, 23, false},
		{"negative", -1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := area.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := area.ContainsPoint(Point{X: tc.x, Y: tc.y}); got != tc.expected {
				t.Errorf("ContainsPoint(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(34, 11, 12, 3)

	if r.Right() != 46 || r.Bottom() != 14 {
		t.Errorf("edges = (%d, %d), expected (46, 14)", r.Right(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 40 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (40, 12)", cx, cy)
	}
}

func TestRectLocal(t *testing.T) {
	area := NewRect(0, 2, 80, 21)

	tests := []struct {
		in, want Point
	}{
		{Point{X: 0, Y: 2}, Point{X: 0, Y: 0}},
		{Point{X: 5, Y: 12}, Point{X: 5, Y: 10}},
		{Point{X: 3, Y: 0}, Point{X: 3, Y: -2}},
	}

	for _, tc := range tests {
		if got := area.Local(tc.in); got != tc.want {
			t.Errorf("Local(%+v) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r     Rect
		empty bool
	}{
		{NewRect(0, 0, 0, 5), true},
		{NewRect(0, 0, 5, 0), true},
		{NewRect(0, 0, -3, 2), true},
		{NewRect(0, 0, 1, 1), false},
	}

	for _, tc := range tests {
		if got := tc.r.Empty(); got != tc.empty {
			t.Errorf("%+v.Empty() = %v, expected %v", tc.r, got, tc.empty)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
