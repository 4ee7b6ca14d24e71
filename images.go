package main

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/maruel/natural"

	"tagcloud/cloud"
)

// imagePatterns 是图片标签目录中会被读取的文件
var imagePatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp"}

// ImageOptions 控制图片标签的读取
type ImageOptions struct {
	Trim      bool    // 裁掉透明边缘
	Threshold uint8   // 透明度阈值，alpha 不超过该值的像素视为透明
	Scale     float64 // 缩放比例
}

// parallel 在不超过 CPU 核心数的 goroutine 中执行 fn(0) ... fn(n-1)
func parallel(n int, fn func(i int)) {
	workers := min(runtime.NumCPU(), n)
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// alphaAt 返回读取像素 alpha 通道(8 bit)的函数，常见格式直接访问 Pix
func alphaAt(img image.Image) func(x, y int) uint8 {
	switch src := img.(type) {
	case *image.NRGBA:
		return func(x, y int) uint8 { return src.Pix[src.PixOffset(x, y)+3] }
	case *image.RGBA:
		return func(x, y int) uint8 { return src.Pix[src.PixOffset(x, y)+3] }
	}
	return func(x, y int) uint8 {
		_, _, _, a := img.At(x, y).RGBA()
		return uint8(a >> 8)
	}
}

// GetImageBBox 返回图像中 alpha 大于 threshold 的区域的边界。图像完全透明时返回整个图像。
func GetImageBBox(img image.Image, threshold uint8) image.Rectangle {
	bounds := img.Bounds()
	if bounds.Empty() {
		return image.Rectangle{}
	}
	alpha := alphaAt(img)
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if alpha(x, y) <= threshold {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < minX {
		return bounds
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// readImageDir 返回目录中按自然顺序排列的图片文件
func readImageDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("输入目录 %s 不可用: %w", dir, err)
	}
	var paths []string
	for _, pattern := range imagePatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("输入目录 %s 中没有找到任何图片文件", dir)
	}
	sort.Sort(natural.StringSlice(paths))
	return paths, nil
}

// scaled 按比例缩放一个边长，结果至少为 1
func scaled(n int, scale float64) int {
	if scale <= 0 || scale == 1 {
		return n
	}
	return max(int(math.Round(float64(n)*scale)), 1)
}

// loadImageTags 为每个图片文件创建一个未放置的标签。
// 不裁边时只解码文件头获取尺寸。
func loadImageTags(paths []string, opts ImageOptions) ([]Tag, error) {
	tags := make([]Tag, len(paths))
	errs := make([]error, len(paths))
	parallel(len(paths), func(i int) {
		path := paths[i]
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		var w, h int
		var crop *cloud.Rect
		if opts.Trim {
			src, err := imaging.Open(path)
			if err != nil {
				errs[i] = fmt.Errorf("无法解码图片 %s: %w", path, err)
				return
			}
			box := GetImageBBox(src, opts.Threshold)
			w, h = box.Dx(), box.Dy()
			if box != src.Bounds() {
				r := cloud.NewRect(box.Min.X, box.Min.Y, w, h)
				crop = &r
			}
		} else {
			file, err := os.Open(path)
			if err != nil {
				errs[i] = err
				return
			}
			cfg, _, err := image.DecodeConfig(file)
			file.Close()
			if err != nil {
				errs[i] = fmt.Errorf("无法解码图片 %s: %w", path, err)
				return
			}
			w, h = cfg.Width, cfg.Height
		}
		tags[i] = NewTag(name, cloud.NewSize(scaled(w, opts.Scale), scaled(h, opts.Scale)))
		tags[i].Source = path
		tags[i].Crop = crop
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return tags, nil
}

// loadTagImages 解码有源文件的标签，裁剪并缩放到标签尺寸。没有源文件的标签对应 nil。
func loadTagImages(tags []Tag) ([]image.Image, error) {
	images := make([]image.Image, len(tags))
	errs := make([]error, len(tags))
	parallel(len(tags), func(i int) {
		t := tags[i]
		if t.Source == "" || t.IsEmpty() {
			return
		}
		img, err := imaging.Open(t.Source)
		if err != nil {
			errs[i] = fmt.Errorf("%s: %w", t.Source, err)
			return
		}
		if t.Crop != nil {
			img = imaging.Crop(img, image.Rect(t.Crop.Left(), t.Crop.Top(), t.Crop.Right(), t.Crop.Bottom()))
		}
		if b := img.Bounds(); b.Dx() != t.Width || b.Dy() != t.Height {
			img = imaging.Resize(img, t.Width, t.Height, imaging.Lanczos)
		}
		images[i] = img
	})
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return images, nil
}
