package main

import (
	"bufio"
	"fmt"
	"html"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"

	"tagcloud/cloud"
)

// goldenAngle 是调色板相邻颜色之间的色相差(度)
const goldenAngle = 137.508

// Painter 把布局绘制成图片
type Painter struct {
	Canvas     cloud.Size  // 画布尺寸，零值表示收缩到布局边界
	Margin     int         // 收缩画布时的留白
	Background color.Color // 背景色
	Pen        color.Color // 边框颜色
	PenWidth   float64     // 边框宽度，0 表示不画边框
	Fill       bool        // 用调色板填充矩形
	Labels     bool        // 在矩形内绘制标签名
	FontPath   string      // TrueType 字体，为空时使用 gg 内置的点阵字体

	faces map[int]font.Face
}

// NewPainter 按配置创建绘制器
func NewPainter(o *Options) (*Painter, error) {
	bg, err := parseColor(o.Background)
	if err != nil {
		return nil, err
	}
	pen, err := parseColor(o.Pen)
	if err != nil {
		return nil, err
	}
	return &Painter{
		Canvas:     o.Canvas(),
		Margin:     o.Margin,
		Background: bg,
		Pen:        pen,
		PenWidth:   o.PenWidth,
		Fill:       o.Fill,
		Labels:     o.Labels,
		FontPath:   o.FontPath,
	}, nil
}

// frame 返回画布左上角在布局坐标系中的位置和画布尺寸
func (p *Painter) frame(rects []cloud.Rect) (origin cloud.Point, size cloud.Size) {
	if p.Canvas.Width > 0 && p.Canvas.Height > 0 {
		return cloud.Point{}, p.Canvas
	}
	box := cloud.ViewBox(rects, float64(p.Margin))
	w, h := int(math.Ceil(box.Width())), int(math.Ceil(box.Height()))
	return cloud.NewPoint(int(math.Floor(box.Min.X)), int(math.Floor(box.Min.Y))), cloud.NewSize(max(w, 1), max(h, 1))
}

// paletteColor 返回第 i 个填充色，相邻的颜色色相相差黄金角
func paletteColor(i int) colorful.Color {
	return colorful.Hsv(math.Mod(float64(i)*goldenAngle, 360), 0.45, 0.95)
}

// Draw 把标签绘制到新图像上
func (p *Painter) Draw(tags []Tag) (image.Image, error) {
	images, err := loadTagImages(tags)
	if err != nil {
		return nil, err
	}
	origin, size := p.frame(tagRects(tags))
	dc := gg.NewContext(size.Width, size.Height)
	dc.SetColor(p.Background)
	dc.Clear()
	dc.Translate(float64(-origin.X), float64(-origin.Y))

	for i, t := range tags {
		x, y := float64(t.X), float64(t.Y)
		w, h := float64(t.Width), float64(t.Height)
		if images[i] != nil {
			dc.DrawImage(images[i], t.X, t.Y)
		} else if p.Fill {
			dc.DrawRectangle(x, y, w, h)
			dc.SetColor(paletteColor(i))
			dc.Fill()
		}
		if p.PenWidth > 0 {
			dc.DrawRectangle(x, y, w, h)
			dc.SetColor(p.Pen)
			dc.SetLineWidth(p.PenWidth)
			dc.Stroke()
		}
		if p.Labels && t.Source == "" && t.Name != "" && !t.IsEmpty() {
			if err := p.drawLabel(dc, t); err != nil {
				return nil, err
			}
		}
	}
	return dc.Image(), nil
}

// drawLabel 在矩形中心绘制标签名，放不下时跳过
func (p *Painter) drawLabel(dc *gg.Context, t Tag) error {
	if p.FontPath != "" {
		face, err := p.face(int(float64(t.Height) * 0.75))
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
	}
	if w, _ := dc.MeasureString(t.Name); w > float64(t.Width) {
		return nil
	}
	c := t.Center()
	dc.SetColor(p.Pen)
	dc.DrawStringAnchored(t.Name, float64(c.X), float64(c.Y), 0.5, 0.5)
	return nil
}

// face 按点数缓存加载的字体
func (p *Painter) face(points int) (font.Face, error) {
	points = max(points, 1)
	if f, ok := p.faces[points]; ok {
		return f, nil
	}
	f, err := gg.LoadFontFace(p.FontPath, float64(points))
	if err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", p.FontPath, err)
	}
	if p.faces == nil {
		p.faces = make(map[int]font.Face)
	}
	p.faces[points] = f
	return f, nil
}

// WriteSVG 把标签写成 SVG 文档
func (p *Painter) WriteSVG(w io.Writer, tags []Tag) error {
	origin, size := p.frame(tagRects(tags))
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%d %d %d %d">`+"\n",
		size.Width, size.Height, origin.X, origin.Y, size.Width, size.Height)
	fmt.Fprintf(bw, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
		origin.X, origin.Y, size.Width, size.Height, hexColor(p.Background))

	stroke := "none"
	if p.PenWidth > 0 {
		stroke = hexColor(p.Pen)
	}
	for i, t := range tags {
		if t.Source != "" {
			writeSVGImage(bw, t)
		}
		fill := "none"
		if p.Fill && t.Source == "" {
			fill = paletteColor(i).Hex()
		}
		fmt.Fprintf(bw, `  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			t.X, t.Y, t.Width, t.Height, fill, stroke, p.PenWidth)
		if p.Labels && t.Source == "" && t.Name != "" && !t.IsEmpty() {
			c := t.Center()
			fmt.Fprintf(bw, `  <text x="%d" y="%d" font-size="%d" text-anchor="middle" dominant-baseline="central" fill="%s">%s</text>`+"\n",
				c.X, c.Y, t.Height*3/4, hexColor(p.Pen), html.EscapeString(t.Name))
		}
	}
	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}

// writeSVGImage 引用标签的源图片，Crop 通过嵌套 svg 的 viewBox 实现
func writeSVGImage(w io.Writer, t Tag) {
	href := html.EscapeString(filepath.ToSlash(t.Source))
	if t.Crop == nil {
		fmt.Fprintf(w, `  <image href="%s" x="%d" y="%d" width="%d" height="%d" preserveAspectRatio="none"/>`+"\n",
			href, t.X, t.Y, t.Width, t.Height)
		return
	}
	fmt.Fprintf(w, `  <svg x="%d" y="%d" width="%d" height="%d" viewBox="%d %d %d %d" preserveAspectRatio="none"><image href="%s"/></svg>`+"\n",
		t.X, t.Y, t.Width, t.Height, t.Crop.X, t.Crop.Y, t.Crop.Width, t.Crop.Height, href)
}

// hexColor 把任意颜色转换成 "#rrggbb"
func hexColor(c color.Color) string {
	if cf, ok := colorful.MakeColor(c); ok {
		return cf.Hex()
	}
	return "none"
}

// Save 绘制标签并保存到 path。".svg" 写 SVG，其他扩展名由 imaging 按格式编码。
func (p *Painter) Save(path string, tags []Tag) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := p.WriteSVG(file, tags); err != nil {
			return err
		}
		return file.Close()
	}
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return err
	}
	img, err := p.Draw(tags)
	if err != nil {
		return err
	}
	return imaging.Save(img, path)
}
