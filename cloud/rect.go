package cloud

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Point 描述了二维空间中的一个整数坐标。
type Point struct {
	// X 是在水平 x 轴上的位置。
	X int `json:"x" yaml:"x"`
	// Y 是在垂直 y 轴上的位置。
	Y int `json:"y" yaml:"y"`
}

// NewPoint 初始化一个具有指定坐标的新点。
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// Eq 判断两个点是否具有相同的值。
func (p Point) Eq(point Point) bool {
	return p.X == point.X && p.Y == point.Y
}

// String 返回点的字符串表示形式。
func (p Point) String() string {
	return fmt.Sprintf("[%v, %v]", p.X, p.Y)
}

// Add 返回两个点按分量相加的结果。
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 返回两个点按分量相减的结果。
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceTo 返回到另一个点的欧氏距离。
func (p Point) DistanceTo(q Point) float64 {
	return p.coord().DistanceFrom(q.coord())
}

func (p Point) coord() geom.Coord {
	return geom.Coord{X: float64(p.X), Y: float64(p.Y)}
}

// Size 描述了二维空间中实体的尺寸。宽高都不能为负数，0 表示退化的矩形。
type Size struct {
	// Width 是在水平 x 轴上的尺寸。
	Width int `json:"w" yaml:"w"`
	// Height 是在垂直 y 轴上的尺寸。
	Height int `json:"h" yaml:"h"`
}

// NewSize 创建具有指定尺寸的新尺寸对象。
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Eq 判断两个尺寸是否具有相同的值。
func (sz Size) Eq(size Size) bool {
	return sz.Width == size.Width && sz.Height == size.Height
}

// String 返回尺寸的字符串表示形式。
func (sz Size) String() string {
	return fmt.Sprintf("[%v, %v]", sz.Width, sz.Height)
}

// Area 返回总面积（宽度 * 高度）。
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// Perimeter 返回所有边的总长度。
func (sz Size) Perimeter() int {
	return (sz.Width + sz.Height) << 1
}

// MaxSide 返回较大边的值。
func (sz Size) MaxSide() int {
	return max(sz.Width, sz.Height)
}

// MinSide 返回较小边的值。
func (sz Size) MinSide() int {
	return min(sz.Width, sz.Height)
}

// Ratio 计算宽度与高度之间的比率。高度为 0 时返回 0。
func (sz Size) Ratio() float64 {
	if sz.Height == 0 {
		return 0
	}
	return float64(sz.Width) / float64(sz.Height)
}

// IsValid 判断宽高是否都不为负数。
func (sz Size) IsValid() bool {
	return sz.Width >= 0 && sz.Height >= 0
}

func (sz Size) half() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}

// Rect 描述了二维空间中的一个位置（左上角）和尺寸。
type Rect struct {
	// Point 表示矩形的左上角坐标。
	Point `yaml:",inline"`
	// Size 表示矩形的宽度和高度。
	Size `yaml:",inline"`
}

// NewRect 初始化一个使用指定点和尺寸值的新矩形。
func NewRect(x, y, w, h int) Rect {
	return Rect{
		Point: Point{X: x, Y: y},
		Size:  Size{Width: w, Height: h},
	}
}

// NewRectLTRB 初始化一个使用指定左/上/右/下值的新矩形。
func NewRectLTRB(l, t, r, b int) Rect {
	return Rect{
		Point: Point{X: l, Y: t},
		Size:  Size{Width: r - l, Height: b - t},
	}
}

// NewRectWithCenter 创建一个中心位于 center 的矩形。
// 左上角为 center - size/2，除法向零截断，因此 NewRectWithCenter(p, s).Center() 总是等于 p。
func NewRectWithCenter(center Point, size Size) Rect {
	return Rect{Point: center.Sub(size.half()), Size: size}
}

// Eq 比较两个矩形以确定位置和尺寸是否相等。
func (r Rect) Eq(rect Rect) bool {
	return r.Point.Eq(rect.Point) && r.Size.Eq(rect.Size)
}

// String 返回描述矩形的字符串。
func (r Rect) String() string {
	return fmt.Sprintf("[%v, %v, %v, %v]", r.X, r.Y, r.Width, r.Height)
}

// Left 返回矩形左边缘在 x 轴上的坐标。
func (r Rect) Left() int {
	return r.X
}

// Top 返回矩形上边缘在 y 轴上的坐标。
func (r Rect) Top() int {
	return r.Y
}

// Right 返回矩形右边缘在 x 轴上的坐标。
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom 返回矩形下边缘在 y 轴上的坐标。
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// TopLeft 返回表示矩形左上角的点。
func (r Rect) TopLeft() Point {
	return r.Point
}

// BottomRight 返回表示矩形右下角的点。
func (r Rect) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// Center 返回表示矩形中心的点。奇数边长时坐标向下取整。
func (r Rect) Center() Point {
	return r.Point.Add(r.Size.half())
}

// Offset 返回按指定相对量平移后的矩形。
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// IsEmpty 测试矩形的宽度或高度是否小于1。
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains 测试指定的坐标是否在接收者的边界内。
func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.X+r.Width && r.Y <= y && y < r.Y+r.Height
}

// ContainsRect 测试指定的矩形是否包含在当前接收者的边界内。
func (r Rect) ContainsRect(rect Rect) bool {
	return r.X <= rect.X &&
		rect.Right() <= r.Right() &&
		r.Y <= rect.Y &&
		rect.Bottom() <= r.Bottom()
}

// Intersects 测试接收者是否与指定的矩形有任何重叠。
// 区间为左闭右开，仅共享一条边的两个矩形不算重叠。
func (r Rect) Intersects(rect Rect) bool {
	return rect.X < r.X+r.Width &&
		r.X < rect.X+rect.Width &&
		rect.Y < r.Y+r.Height &&
		r.Y < rect.Y+rect.Height
}

// IntersectsAny 测试接收者是否与 rects 中的任意一个矩形重叠。
func (r Rect) IntersectsAny(rects []Rect) bool {
	for _, other := range rects {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// Union 返回一个包含目标和自己的最小矩形
func (r Rect) Union(rect Rect) Rect {
	x1 := min(r.X, rect.X)
	x2 := max(r.Right(), rect.Right())
	y1 := min(r.Y, rect.Y)
	y2 := max(r.Bottom(), rect.Bottom())
	return NewRectLTRB(x1, y1, x2, y2)
}

// Bounds 以 geom.Rect 的形式返回矩形，供绘制和度量使用。
func (r Rect) Bounds() geom.Rect {
	return geom.Rect{Min: r.Point.coord(), Max: r.BottomRight().coord()}
}

// sign 返回整数的符号：-1、0 或 1
func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// abs 返回整数的绝对值
func abs(x int) int {
	if x >= 0 {
		return x
	}
	return -x
}
