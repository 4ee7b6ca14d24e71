package cloud

import (
	"iter"
	"math"

	"github.com/jbeda/geom"
)

const (
	// DefaultAngleStep 是螺旋线相邻两点之间的角度增量（弧度）。
	DefaultAngleStep = 1.0
	// DefaultGrowth 是每转过一弧度半径的增长量。
	DefaultGrowth = 1.0
)

// SpiralOption 配置螺旋线的参数
type SpiralOption func(*Spiral)

// WithAngleStep 设置相邻两点之间的角度增量（弧度）。非正数会被忽略。
func WithAngleStep(step float64) SpiralOption {
	return func(s *Spiral) {
		if step > 0 {
			s.step = step
		}
	}
}

// WithGrowth 设置每弧度的半径增长量。非正数会被忽略。
func WithGrowth(growth float64) SpiralOption {
	return func(s *Spiral) {
		if growth > 0 {
			s.growth = growth
		}
	}
}

// Spiral 是一条从中心向外展开的阿基米德螺旋线，按需逐点生成候选中心。
//
// 第 i 个点只取决于中心、i 以及步长参数：
//
//	θ = i * step
//	r = growth * θ
//	point = center + trunc(r*cos θ, r*sin θ)
//
// 第 0 个点就是中心本身。偏移量带符号地加到中心上，因此螺旋线覆盖中心周围的四个象限。
type Spiral struct {
	center Point
	step   float64
	growth float64
	index  int
}

// NewSpiral 创建一个以 center 为中心、游标位于第 0 个点的螺旋线。
func NewSpiral(center Point, opts ...SpiralOption) *Spiral {
	s := &Spiral{
		center: center,
		step:   DefaultAngleStep,
		growth: DefaultGrowth,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Center 返回螺旋线的中心。
func (s *Spiral) Center() Point {
	return s.center
}

// Index 返回下一次 Next 将要生成的点的序号。
func (s *Spiral) Index() int {
	return s.index
}

// At 返回第 i 个点，不移动游标。
func (s *Spiral) At(i int) Point {
	angle := float64(i) * s.step
	offset := geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}.Times(s.growth * angle)
	// int() 向零截断
	return s.center.Add(Point{X: int(offset.X), Y: int(offset.Y)})
}

// Next 返回游标处的点并前进一步。
func (s *Spiral) Next() Point {
	p := s.At(s.index)
	s.index++
	return p
}

// Reset 将游标重置到第 0 个点。
func (s *Spiral) Reset() {
	s.index = 0
}

// Points 返回从当前游标开始的无限序列，迭代时会推进游标。
func (s *Spiral) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			if !yield(s.Next()) {
				return
			}
		}
	}
}
