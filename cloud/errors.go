package cloud

import "errors"

var (
	// ErrInvalidCenter 在中心点坐标为负数时由 NewLayouter 返回。
	ErrInvalidCenter = errors.New("center must have non-negative coordinates")

	// ErrInvalidSize 在尺寸的宽或高为负数时返回。
	ErrInvalidSize = errors.New("size must have non-negative width and height")

	// ErrSearchExhausted 在设置了 WithMaxSteps 且螺旋搜索超过上限时返回。
	ErrSearchExhausted = errors.New("no free position found within the search limit")
)
