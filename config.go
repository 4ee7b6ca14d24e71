package main

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tagcloud/cloud"
)

// Options 是所有子命令共用的配置。命令行参数优先于 --config 指定的 TOML 文件。
type Options struct {
	OutputPath   string  `toml:"output"`        // 输出图片路径，扩展名决定格式
	LayoutPath   string  `toml:"layout"`        // 布局文件路径 (.json/.yaml)，为空时不写
	CanvasWidth  int     `toml:"canvas_width"`  // 画布宽度
	CanvasHeight int     `toml:"canvas_height"` // 画布高度
	CenterX      int     `toml:"center_x"`      // 云中心，负数表示画布中心
	CenterY      int     `toml:"center_y"`
	Fit          bool    `toml:"fit"`        // 画布收缩到布局边界
	Margin       int     `toml:"margin"`     // 收缩后的留白
	AngleStep    float64 `toml:"angle_step"` // 螺旋线每步的角度(弧度)
	Growth       float64 `toml:"growth"`     // 每弧度半径的增长量
	MaxSteps     int     `toml:"max_steps"`  // 每次放置最多检查的候选点，0 不限制
	Index        string  `toml:"index"`      // 碰撞索引 (linear, grid)
	GridCell     int     `toml:"grid_cell"`  // grid 索引的格子边长
	Continuous   bool    `toml:"continuous"` // 螺旋线不回到起点
	Sort         string  `toml:"sort"`       // 放置前的排序方式
	Background   string  `toml:"background"` // 背景色
	Pen          string  `toml:"pen"`        // 边框颜色
	PenWidth     float64 `toml:"pen_width"`  // 边框宽度
	Fill         bool    `toml:"fill"`       // 用调色板填充矩形
	Labels       bool    `toml:"labels"`     // 在矩形内绘制标签名
	FontPath     string  `toml:"font"`       // TrueType 字体文件，为空时使用内置点阵字体
}

// DefaultOptions 返回默认配置，颜色与画布尺寸沿用经典的标签云示例。
func DefaultOptions() Options {
	return Options{
		OutputPath:   "cloud.png",
		CanvasWidth:  1200,
		CanvasHeight: 1200,
		CenterX:      -1,
		CenterY:      -1,
		Margin:       20,
		AngleStep:    cloud.DefaultAngleStep,
		Growth:       cloud.DefaultGrowth,
		Index:        cloud.IndexLinear.String(),
		GridCell:     cloud.DefaultGridCell,
		Sort:         "none",
		Background:   "#FFE4C4",
		Pen:          "#228B22",
		PenWidth:     2,
	}
}

// bindLayoutFlags 注册与布局有关的参数
func bindLayoutFlags(fs *pflag.FlagSet, o *Options) {
	fs.IntVar(&o.CanvasWidth, "width", o.CanvasWidth, "画布宽度")
	fs.IntVar(&o.CanvasHeight, "height", o.CanvasHeight, "画布高度")
	fs.IntVar(&o.CenterX, "center-x", o.CenterX, "云中心 x 坐标，负数表示画布中心")
	fs.IntVar(&o.CenterY, "center-y", o.CenterY, "云中心 y 坐标，负数表示画布中心")
	fs.Float64Var(&o.AngleStep, "step", o.AngleStep, "螺旋线每步的角度(弧度)")
	fs.Float64Var(&o.Growth, "growth", o.Growth, "螺旋线每弧度的半径增长")
	fs.IntVar(&o.MaxSteps, "max-steps", o.MaxSteps, "每次放置最多检查的候选点，0 表示不限制")
	fs.StringVar(&o.Index, "index", o.Index, "碰撞索引 (linear, grid)")
	fs.IntVar(&o.GridCell, "grid-cell", o.GridCell, "grid 索引的格子边长")
	fs.BoolVar(&o.Continuous, "continuous", o.Continuous, "每次放置从上一次停下的螺旋线位置继续")
	fs.StringVar(&o.Sort, "sort", o.Sort, "放置顺序 (none, area, perimeter, diff, maxside, ratio, name, weight)")
}

// bindOutputFlags 注册与输出有关的参数
func bindOutputFlags(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.OutputPath, "output", "o", o.OutputPath, "输出图片 (.png, .jpg, .bmp, .svg)，为空时不绘制")
	fs.StringVar(&o.LayoutPath, "layout", o.LayoutPath, "布局文件 (.json, .yaml)")
	fs.BoolVar(&o.Fit, "fit", o.Fit, "画布收缩到布局边界")
	fs.IntVar(&o.Margin, "margin", o.Margin, "收缩画布时的留白")
	fs.StringVar(&o.Background, "background", o.Background, "背景色")
	fs.StringVar(&o.Pen, "pen", o.Pen, "边框颜色")
	fs.Float64Var(&o.PenWidth, "pen-width", o.PenWidth, "边框宽度")
	fs.BoolVar(&o.Fill, "fill", o.Fill, "用调色板填充矩形")
	fs.BoolVar(&o.Labels, "labels", o.Labels, "绘制标签名")
	fs.StringVar(&o.FontPath, "font", o.FontPath, "TrueType 字体文件")
}

// applyConfig 读取 TOML 配置文件，然后重新应用命令行上显式给出的参数。
func applyConfig(cmd *cobra.Command, path string, o *Options) error {
	if path == "" {
		return nil
	}
	changed := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})
	if _, err := toml.DecodeFile(path, o); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	for name, value := range changed {
		if err := cmd.Flags().Set(name, value); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}

// Validate 检查不能由布局器自己发现的配置错误
func (o *Options) Validate() error {
	if o.CanvasWidth < 0 || o.CanvasHeight < 0 {
		return fmt.Errorf("invalid canvas size %dx%d", o.CanvasWidth, o.CanvasHeight)
	}
	if o.PenWidth < 0 {
		return fmt.Errorf("invalid pen width %v", o.PenWidth)
	}
	if _, err := cloud.ResolveIndex(o.Index); err != nil {
		return err
	}
	return nil
}

// Center 返回云中心。任一坐标为负数时使用画布中心。
func (o *Options) Center() cloud.Point {
	if o.CenterX < 0 || o.CenterY < 0 {
		return cloud.NewPoint(o.CanvasWidth/2, o.CanvasHeight/2)
	}
	return cloud.NewPoint(o.CenterX, o.CenterY)
}

// Canvas 返回画布尺寸，Fit 时为零值。
func (o *Options) Canvas() cloud.Size {
	if o.Fit {
		return cloud.Size{}
	}
	return cloud.NewSize(o.CanvasWidth, o.CanvasHeight)
}

// NewLayouter 按配置创建布局器
func (o *Options) NewLayouter(logger *log.Logger) (*cloud.Layouter, error) {
	kind, err := cloud.ResolveIndex(o.Index)
	if err != nil {
		return nil, err
	}
	opts := []cloud.Option{
		cloud.WithSpiral(cloud.WithAngleStep(o.AngleStep), cloud.WithGrowth(o.Growth)),
		cloud.WithMaxSteps(o.MaxSteps),
		cloud.WithIndex(kind, o.GridCell),
		cloud.WithLogger(logger),
	}
	if o.Continuous {
		opts = append(opts, cloud.WithContinuousSpiral())
	}
	return cloud.NewLayouter(o.Center(), opts...)
}

// parseColor 解析 "#RRGGBB" 或 "#RGB" 形式的颜色
func parseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
