// Package cloud 把一系列矩形（标签）围绕固定中心排列成紧凑、互不重叠、近似圆形的云。
//
// 每个矩形先沿着从中心向外的螺旋线寻找第一个不与已放置矩形重叠的位置，
// 然后沿 X、Y 两个方向逐像素地向中心收拢，直到两个方向都无法再移动。
//
//	l, err := cloud.NewLayouter(cloud.NewPoint(600, 600))
//	if err != nil {
//		return err
//	}
//	rect, err := l.PlaceNext(cloud.NewSize(120, 40))
package cloud

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// ctxCheckInterval 是两次检查 context 之间螺旋线前进的步数
const ctxCheckInterval = 1024

// Layouter 包含一朵标签云的布局状态。
//
// 已放置的矩形只会追加，返回给调用者之后不再改变。Layouter 不能被多个 goroutine 同时使用。
type Layouter struct {
	// center 是云的中心，构造后不再改变
	center Point

	// spiral 产生候选中心点
	spiral     *Spiral
	spiralOpts []SpiralOption

	// continuous 为 true 时每次放置从上一次停下的位置继续沿螺旋线搜索，
	// 否则每次都从第 0 个点重新开始
	continuous bool

	// index 保存已放置的矩形并负责碰撞检测
	index collider

	// maxSteps 是每次放置最多检查的候选点数，0 表示不限制
	maxSteps int

	logger *log.Logger
}

// NewLayouter 创建一个以 center 为中心的布局器。
//
// 参数:
//
//	center - 云的中心，两个坐标都不能为负数
//	opts - 可选配置
//
// 返回:
//
//	*Layouter - 空的布局器
//	error - 中心坐标为负数时返回包装了 ErrInvalidCenter 的错误
func NewLayouter(center Point, opts ...Option) (*Layouter, error) {
	if center.X < 0 || center.Y < 0 {
		return nil, fmt.Errorf("%w (given %s)", ErrInvalidCenter, center)
	}
	l := &Layouter{
		center: center,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.index == nil {
		l.index = newLinearIndex()
	}
	l.spiral = NewSpiral(center, l.spiralOpts...)
	return l, nil
}

// WithContinuousSpiral 让每次放置从上一次停下的螺旋线位置继续搜索。
// 大量标签时更快，但后放置的小矩形不会再回到靠近中心的空隙。
func WithContinuousSpiral() Option {
	return func(l *Layouter) {
		l.continuous = true
	}
}

// Center 返回云的中心。
func (l *Layouter) Center() Point {
	return l.center
}

// Len 返回已放置的矩形数量。
func (l *Layouter) Len() int {
	return len(l.index.Rects())
}

// Rects 按放置顺序返回已放置的矩形（副本）。
func (l *Layouter) Rects() []Rect {
	return slices.Clone(l.index.Rects())
}

// PlaceNext 放置一个指定尺寸的矩形并返回它的位置。
// 宽或高为 0 的尺寸也会被放置。
func (l *Layouter) PlaceNext(size Size) (Rect, error) {
	return l.PlaceNextContext(context.Background(), size)
}

// PlaceNextContext 与 PlaceNext 相同，但在螺旋搜索过程中会定期检查 ctx。
func (l *Layouter) PlaceNextContext(ctx context.Context, size Size) (Rect, error) {
	if !size.IsValid() {
		return Rect{}, fmt.Errorf("%w (given %s)", ErrInvalidSize, size)
	}
	rect, steps, err := l.search(ctx, size)
	if err != nil {
		return Rect{}, err
	}
	rect, passes := l.compact(rect)
	l.index.Add(rect)
	l.logger.Debug("placed rectangle", "n", l.Len(), "rect", rect, "steps", steps, "passes", passes)
	return rect, nil
}

// Place 依次放置多个尺寸，遇到第一个错误时停止，并返回此前已放置的矩形。
func (l *Layouter) Place(sizes ...Size) ([]Rect, error) {
	rects := make([]Rect, 0, len(sizes))
	for _, size := range sizes {
		rect, err := l.PlaceNext(size)
		if err != nil {
			return rects, err
		}
		rects = append(rects, rect)
	}
	return rects, nil
}

// search 沿螺旋线寻找第一个不与已放置矩形重叠的候选位置
func (l *Layouter) search(ctx context.Context, size Size) (Rect, int, error) {
	if !l.continuous {
		l.spiral.Reset()
	}
	for steps := 1; ; steps++ {
		if l.maxSteps > 0 && steps > l.maxSteps {
			return Rect{}, l.maxSteps, fmt.Errorf("%w: size %s after %d steps", ErrSearchExhausted, size, l.maxSteps)
		}
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Rect{}, steps, err
			}
		}
		candidate := NewRectWithCenter(l.spiral.Next(), size)
		if !l.index.IntersectsAny(candidate) {
			return candidate, steps, nil
		}
	}
}

// compact 把矩形逐像素地移向中心。每一轮先沿 X 再沿 Y 各尝试移动一步，
// 方向由本轮开始时矩形中心指向云中心的向量决定；某一轮没有任何移动时结束。
// 每次成功的移动都使 |dx|+|dy| 减少 1，因此一定会终止。
func (l *Layouter) compact(rect Rect) (Rect, int) {
	passes := 0
	for {
		dir := l.center.Sub(rect.Center())
		moved := l.tryMove(rect, sign(dir.X), 0)
		moved = l.tryMove(moved, 0, sign(dir.Y))
		if moved.Eq(rect) {
			return rect, passes
		}
		rect = moved
		passes++
	}
}

// tryMove 返回平移后的矩形；如果平移后会与已放置的矩形重叠，返回原矩形
func (l *Layouter) tryMove(rect Rect, dx, dy int) Rect {
	if dx == 0 && dy == 0 {
		return rect
	}
	moved := rect.Offset(dx, dy)
	if l.index.IntersectsAny(moved) {
		return rect
	}
	return moved
}
