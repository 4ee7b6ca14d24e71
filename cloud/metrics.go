package cloud

import (
	"math"

	"github.com/jbeda/geom"
)

// UsedArea 返回所有矩形面积之和。
func UsedArea(rects []Rect) int {
	area := 0
	for _, r := range rects {
		area += r.Area()
	}
	return area
}

// Bounds 返回包含所有矩形的最小矩形。rects 为空时 ok 为 false。
func Bounds(rects []Rect) (bounds Rect, ok bool) {
	if len(rects) == 0 {
		return Rect{}, false
	}
	bounds = rects[0]
	for _, r := range rects[1:] {
		bounds = bounds.Union(r)
	}
	return bounds, true
}

// Radius 返回从第一个矩形的中心到任意矩形左上角的最大距离。
func Radius(rects []Rect) float64 {
	if len(rects) == 0 {
		return 0
	}
	center := rects[0].Center()
	radius := 0.0
	for _, r := range rects {
		radius = math.Max(radius, r.TopLeft().DistanceTo(center))
	}
	return radius
}

// Density 比较以 Radius 为半径的圆面积与矩形总面积，返回两者中较小值与较大值之比，
// 取值在 0.0 到 1.0 之间，越接近 1 说明布局越接近紧凑的圆形。
func Density(rects []Rect) float64 {
	used := float64(UsedArea(rects))
	radius := Radius(rects)
	circle := radius * radius * math.Pi
	if used == 0 || circle == 0 {
		return 0
	}
	return math.Min(circle/used, used/circle)
}

// ViewBox 返回包含所有矩形的 geom.Rect，四周留出 margin。rects 为空时返回零值。
func ViewBox(rects []Rect, margin float64) geom.Rect {
	if len(rects) == 0 {
		return geom.Rect{}
	}
	box := rects[0].Bounds()
	for _, r := range rects[1:] {
		box.ExpandToContainRect(r.Bounds())
	}
	box.Min = box.Min.Minus(geom.Coord{X: margin, Y: margin})
	box.Max = box.Max.Plus(geom.Coord{X: margin, Y: margin})
	return box
}

// Bounds 返回包含所有已放置矩形的最小矩形。
func (l *Layouter) Bounds() (Rect, bool) {
	return Bounds(l.index.Rects())
}

// UsedArea 返回已放置矩形的面积之和。
func (l *Layouter) UsedArea() int {
	return UsedArea(l.index.Rects())
}

// Radius 见 Radius。
func (l *Layouter) Radius() float64 {
	return Radius(l.index.Rects())
}

// Density 见 Density。
func (l *Layouter) Density() float64 {
	return Density(l.index.Rects())
}
