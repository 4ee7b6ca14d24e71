package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tagcloud/cloud"
)

// LayoutMeta 记录布局文件的生成信息和布局质量
type LayoutMeta struct {
	Version   string  `json:"version" yaml:"version"`
	Timestamp string  `json:"timestamp" yaml:"timestamp"`
	Density   float64 `json:"density" yaml:"density"`
	Radius    float64 `json:"radius" yaml:"radius"`
}

// LayoutFile 是保存到磁盘的布局，可以用 render 子命令重新绘制
type LayoutFile struct {
	Meta   LayoutMeta  `json:"meta" yaml:"meta"`
	Center cloud.Point `json:"center" yaml:"center"`
	Canvas cloud.Size  `json:"canvas" yaml:"canvas"` // 零值表示画布收缩到布局边界
	Tags   []Tag       `json:"tags" yaml:"tags"`
}

// NewLayoutFile 根据布局器的状态和已放置的标签创建布局文件
func NewLayoutFile(l *cloud.Layouter, canvas cloud.Size, tags []Tag) *LayoutFile {
	return &LayoutFile{
		Meta: LayoutMeta{
			Version:   VERSION,
			Timestamp: time.Now().Format("2006-01-02 15:04:05"),
			Density:   l.Density(),
			Radius:    l.Radius(),
		},
		Center: l.Center(),
		Canvas: canvas,
		Tags:   tags,
	}
}

// Rects 返回所有标签的矩形
func (lf *LayoutFile) Rects() []cloud.Rect {
	return tagRects(lf.Tags)
}

// isYAML 根据扩展名判断布局文件格式，其他扩展名都按 JSON 处理
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// WriteLayout 把布局写到 path，格式由扩展名决定
func WriteLayout(path string, lf *LayoutFile) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(lf)
	} else {
		data, err = json.MarshalIndent(lf, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayout 读取 WriteLayout 写出的布局文件并检查矩形是否合法
func ReadLayout(path string) (*LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取布局文件失败: %w", err)
	}
	var lf LayoutFile
	if isYAML(path) {
		err = yaml.Unmarshal(data, &lf)
	} else {
		err = json.Unmarshal(data, &lf)
	}
	if err != nil {
		return nil, fmt.Errorf("解析布局文件 %s 失败: %w", path, err)
	}
	for i, t := range lf.Tags {
		if !t.Size.IsValid() {
			return nil, fmt.Errorf("%s: tag #%d: %w (given %s)", path, i, cloud.ErrInvalidSize, t.Size)
		}
	}
	if !lf.Canvas.IsValid() {
		return nil, fmt.Errorf("%s: invalid canvas %s", path, lf.Canvas)
	}
	return &lf, nil
}
