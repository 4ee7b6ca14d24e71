package cloud

import "github.com/charmbracelet/log"

// Option 配置 Layouter
type Option func(*Layouter)

// WithSpiral 设置螺旋线的参数，见 WithAngleStep 和 WithGrowth。
func WithSpiral(opts ...SpiralOption) Option {
	return func(l *Layouter) {
		l.spiralOpts = append(l.spiralOpts, opts...)
	}
}

// WithMaxSteps 限制每次放置时螺旋线最多检查的候选点数量。
// 0 或负数表示不限制（默认）。
func WithMaxSteps(n int) Option {
	return func(l *Layouter) {
		l.maxSteps = max(n, 0)
	}
}

// WithIndex 选择碰撞检测使用的索引。cell 仅对 IndexGrid 有效，0 表示使用 DefaultGridCell。
func WithIndex(kind IndexKind, cell int) Option {
	return func(l *Layouter) {
		switch kind {
		case IndexGrid:
			l.index = newGridIndex(cell)
		default:
			l.index = newLinearIndex()
		}
	}
}

// WithLogger 设置调试日志。默认不输出任何日志。
func WithLogger(logger *log.Logger) Option {
	return func(l *Layouter) {
		if logger != nil {
			l.logger = logger
		}
	}
}
