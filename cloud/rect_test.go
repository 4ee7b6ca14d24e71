package cloud

import (
	"math"
	"testing"
)

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Point
	}{
		{"empty", Rect{}, NewPoint(0, 0)},
		{"origin", NewRect(0, 0, 50, 10), NewPoint(25, 5)},
		{"offset", NewRect(100, 100, 20, 30), NewPoint(110, 115)},
		{"odd sides", NewRect(50, 30, 15, 7), NewPoint(57, 33)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Center(); !got.Eq(tt.want) {
				t.Errorf("Center() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNewRectWithCenter(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   Size
		want   Point
	}{
		{"origin", NewPoint(0, 0), NewSize(10, 10), NewPoint(-5, -5)},
		{"offset", NewPoint(50, 50), NewSize(100, 100), NewPoint(0, 0)},
		{"odd sides", NewPoint(20, 30), NewSize(17, 21), NewPoint(12, 20)},
		{"zero size", NewPoint(7, 9), NewSize(0, 0), NewPoint(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRectWithCenter(tt.center, tt.size)
			if !r.TopLeft().Eq(tt.want) {
				t.Errorf("TopLeft() = %s, want %s", r.TopLeft(), tt.want)
			}
			if !r.Size.Eq(tt.size) {
				t.Errorf("Size = %s, want %s", r.Size, tt.size)
			}
		})
	}
}

func TestCenterRoundTrip(t *testing.T) {
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			for w := 0; w <= 5; w++ {
				for h := 0; h <= 5; h++ {
					p := NewPoint(x*17, y*13)
					got := NewRectWithCenter(p, NewSize(w, h)).Center()
					if !got.Eq(p) {
						t.Fatalf("center of rect around %s with size %dx%d = %s", p, w, h, got)
					}
				}
			}
		}
	}
}

func TestRectArea(t *testing.T) {
	tests := []struct {
		rect Rect
		want int
	}{
		{Rect{}, 0},
		{NewRect(0, 0, 5, 4), 20},
		{NewRect(100, 100, 1, 15), 15},
	}
	for _, tt := range tests {
		if got := tt.rect.Area(); got != tt.want {
			t.Errorf("%s.Area() = %d, want %d", tt.rect, got, tt.want)
		}
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		from, to Point
		want     float64
	}{
		{NewPoint(5, 5), NewPoint(5, 5), 0},
		{NewPoint(-1, -1), NewPoint(-1, -1), 0},
		{NewPoint(7, 13), NewPoint(4, 9), 5},
		{NewPoint(-2, 9), NewPoint(1, 13), 5},
	}
	for _, tt := range tests {
		if got := tt.from.DistanceTo(tt.to); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s.DistanceTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", NewRect(0, 0, 10, 10), true},
		{"overlap corner", NewRect(9, 9, 5, 5), true},
		{"inside", NewRect(2, 2, 3, 3), true},
		{"shared right edge", NewRect(10, 0, 5, 10), false},
		{"shared bottom edge", NewRect(0, 10, 10, 5), false},
		{"shared corner", NewRect(10, 10, 5, 5), false},
		{"far away", NewRect(50, 50, 5, 5), false},
		{"zero width inside", NewRect(5, 2, 0, 3), true},
		{"zero width on edge", NewRect(0, 2, 0, 3), false},
		{"zero size inside", NewRect(5, 5, 0, 0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%s) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects(%s) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(-5, 20, 5, 5)
	want := NewRectLTRB(-5, 0, 10, 25)
	if got := a.Union(b); !got.Eq(want) {
		t.Errorf("Union() = %s, want %s", got, want)
	}
}

func TestSizeValid(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{NewSize(0, 0), true},
		{NewSize(10, 0), true},
		{NewSize(-1, 5), false},
		{NewSize(5, -1), false},
	}
	for _, tt := range tests {
		if got := tt.size.IsValid(); got != tt.want {
			t.Errorf("%s.IsValid() = %v, want %v", tt.size, got, tt.want)
		}
	}
}
