package main

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/maruel/natural"

	"tagcloud/cloud"
)

// Tag 是标签云中的一个元素。放置之前只有 Size 有意义。
type Tag struct {
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Source string  `json:"source,omitempty" yaml:"source,omitempty"` // 图片标签的源文件
	Weight float64 `json:"weight,omitempty" yaml:"weight,omitempty"`

	// Crop 是源图片中被使用的区域，nil 表示整张图片
	Crop *cloud.Rect `json:"crop,omitempty" yaml:"crop,omitempty"`

	cloud.Rect `yaml:",inline"`
}

// NewTag 创建一个尚未放置的标签
func NewTag(name string, size cloud.Size) Tag {
	return Tag{Name: name, Rect: cloud.Rect{Size: size}}
}

// tagRects 返回标签的矩形
func tagRects(tags []Tag) []cloud.Rect {
	rects := make([]cloud.Rect, len(tags))
	for i, t := range tags {
		rects[i] = t.Rect
	}
	return rects
}

// sortTags 按名称对标签做稳定排序，name 的取值见 cloud.ResolveSort，另外支持 "name" 和 "weight"
func sortTags(tags []Tag, name string) error {
	switch name {
	case "name":
		slices.SortStableFunc(tags, func(a, b Tag) int {
			switch {
			case natural.Less(a.Name, b.Name):
				return -1
			case natural.Less(b.Name, a.Name):
				return 1
			}
			return 0
		})
		return nil
	case "weight":
		slices.SortStableFunc(tags, func(a, b Tag) int {
			return cmp.Compare(b.Weight, a.Weight)
		})
		return nil
	}
	fn, err := cloud.ResolveSort(name)
	if err != nil || fn == nil {
		return err
	}
	slices.SortStableFunc(tags, func(a, b Tag) int {
		return fn(a.Size, b.Size)
	})
	return nil
}

// layoutTags 依次放置标签，把结果写回 tags。出错时已放置的标签保留位置。
func layoutTags(ctx context.Context, l *cloud.Layouter, tags []Tag) error {
	for i := range tags {
		rect, err := l.PlaceNextContext(ctx, tags[i].Size)
		if err != nil {
			if tags[i].Name != "" {
				return fmt.Errorf("place %q: %w", tags[i].Name, err)
			}
			return fmt.Errorf("place #%d: %w", i, err)
		}
		tags[i].Rect = rect
	}
	return nil
}

// readTagList 读取标签列表。每行一个标签，格式为 "名称 [权重]"，权重默认为 1。
// 空行和 # 开头的行被忽略，重复的名称权重累加，结果保持首次出现的顺序。
func readTagList(r io.Reader) ([]Tag, error) {
	var tags []Tag
	seen := make(map[string]int)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, weight := text, 1.0
		if i := strings.LastIndexAny(text, " \t"); i > 0 {
			if w, err := strconv.ParseFloat(text[i+1:], 64); err == nil {
				name, weight = strings.TrimSpace(text[:i]), w
			}
		}
		if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			return nil, fmt.Errorf("line %d: invalid weight %v", line, weight)
		}
		if idx, ok := seen[name]; ok {
			tags[idx].Weight += weight
			continue
		}
		seen[name] = len(tags)
		tags = append(tags, Tag{Name: name, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}

// readTagFile 从文件读取标签列表
func readTagFile(path string) ([]Tag, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	tags, err := readTagList(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tags, nil
}

// TagSizer 把标签权重换算成矩形尺寸
type TagSizer struct {
	MinHeight int     // 最小权重对应的高度
	MaxHeight int     // 最大权重对应的高度
	CharRatio float64 // 单个字符宽度与高度之比
}

// DefaultTagSizer 返回默认的尺寸换算
func DefaultTagSizer() TagSizer {
	return TagSizer{MinHeight: 16, MaxHeight: 96, CharRatio: 0.6}
}

// Apply 按权重线性插值出每个标签的高度，宽度由字符数估算
func (s TagSizer) Apply(tags []Tag) {
	if len(tags) == 0 {
		return
	}
	lo, hi := tags[0].Weight, tags[0].Weight
	for _, t := range tags[1:] {
		lo = min(lo, t.Weight)
		hi = max(hi, t.Weight)
	}
	for i := range tags {
		height := s.MaxHeight
		if hi > lo {
			k := (tags[i].Weight - lo) / (hi - lo)
			height = s.MinHeight + int(math.Round(k*float64(s.MaxHeight-s.MinHeight)))
		}
		chars := max(utf8.RuneCountInString(tags[i].Name), 1)
		width := int(math.Ceil(float64(chars) * float64(height) * s.CharRatio))
		tags[i].Size = cloud.NewSize(width, height)
	}
}
