package cloud

import (
	"cmp"
	"fmt"
)

// SortFunc 定义矩形尺寸比较函数的原型
// 返回值:
//
//	-1: a 排在 b 前面
//	 0: a == b
//	 1: a 排在 b 后面
type SortFunc func(a, b Size) int

// SortArea 按矩形面积降序排序(从大到小)
func SortArea(a, b Size) int {
	return cmp.Compare(b.Area(), a.Area())
}

// SortPerimeter 按矩形周长降序排序(从大到小)
func SortPerimeter(a, b Size) int {
	return cmp.Compare(b.Perimeter(), a.Perimeter())
}

// SortDiff 按矩形宽高差降序排序(从大到小)
func SortDiff(a, b Size) int {
	return cmp.Compare(abs(b.Width-b.Height), abs(a.Width-a.Height))
}

// SortMaxSide 按矩形最长边降序排序(从大到小)
func SortMaxSide(a, b Size) int {
	return cmp.Compare(b.MaxSide(), a.MaxSide())
}

// SortRatio 按矩形宽高比降序排序(从大到小)
func SortRatio(a, b Size) int {
	return cmp.Compare(b.Ratio(), a.Ratio())
}

// ResolveSort 根据名称返回比较函数。"none" 或空字符串返回 nil，表示保持输入顺序。
func ResolveSort(name string) (SortFunc, error) {
	switch name {
	case "", "none":
		return nil, nil
	case "area":
		return SortArea, nil
	case "perimeter":
		return SortPerimeter, nil
	case "diff":
		return SortDiff, nil
	case "maxside":
		return SortMaxSide, nil
	case "ratio":
		return SortRatio, nil
	}
	return nil, fmt.Errorf("unknown sort %q", name)
}
