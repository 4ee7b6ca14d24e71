package main

import (
	"fmt"
	"math/rand"

	"tagcloud/cloud"
)

// RandomSizes 产生随机的矩形尺寸：高度在 [MinHeight, MaxHeight) 之间，
// 宽度为高度乘以 [MinRatio, MaxRatio) 之间的整数比例。
type RandomSizes struct {
	MinHeight int
	MaxHeight int
	MinRatio  int
	MaxRatio  int

	rng *rand.Rand
}

// NewRandomSizes 创建使用 rng 的随机尺寸源，rng 为 nil 时 panic
func NewRandomSizes(rng *rand.Rand) *RandomSizes {
	if rng == nil {
		panic("tagcloud: nil rand source")
	}
	return &RandomSizes{MinHeight: 60, MaxHeight: 120, MinRatio: 2, MaxRatio: 4, rng: rng}
}

// Validate 检查区间是否非空
func (s *RandomSizes) Validate() error {
	if s.MinHeight < 0 || s.MaxHeight <= s.MinHeight {
		return fmt.Errorf("invalid height range [%d, %d)", s.MinHeight, s.MaxHeight)
	}
	if s.MinRatio < 1 || s.MaxRatio <= s.MinRatio {
		return fmt.Errorf("invalid ratio range [%d, %d)", s.MinRatio, s.MaxRatio)
	}
	return nil
}

// Next 返回下一个随机尺寸
func (s *RandomSizes) Next() cloud.Size {
	ratio := s.rng.Intn(s.MaxRatio-s.MinRatio) + s.MinRatio
	height := s.rng.Intn(s.MaxHeight-s.MinHeight) + s.MinHeight
	return cloud.NewSize(height*ratio, height)
}

// Tags 返回 n 个未命名、带随机尺寸的标签
func (s *RandomSizes) Tags(n int) []Tag {
	tags := make([]Tag, n)
	for i := range tags {
		tags[i] = NewTag("", s.Next())
	}
	return tags
}

// RandomCenter 返回位于画布中间四分之一区域内的随机点。
// 该区域以画布中心为中心，边长为画布边长的四分之一。
func (s *RandomSizes) RandomCenter(canvas cloud.Size) cloud.Point {
	half := cloud.NewPoint(canvas.Width/2, canvas.Height/2)
	box := cloud.NewRectWithCenter(half, cloud.NewSize(canvas.Width/4, canvas.Height/4))
	return cloud.NewPoint(box.Left()+s.intn(box.Width), box.Top()+s.intn(box.Height))
}

func (s *RandomSizes) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}
