package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tagcloud/cloud"
)

// execute 运行根命令，返回标准输出
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return stdout.String(), err
}

func assertNoOverlaps(t *testing.T, rects []cloud.Rect) {
	t.Helper()
	if n := countOverlaps(rects); n > 0 {
		t.Errorf("layout has %d overlapping pairs", n)
	}
}

func TestRandomCommand(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "random.png")
	layout := filepath.Join(dir, "random.json")
	out, err := execute(t, "random", "-n", "25", "--seed", "1", "--width", "800", "--height", "800",
		"-o", imgPath, "--layout", layout)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "25/25") {
		t.Errorf("summary does not report 25 placed tags:\n%s", out)
	}
	if _, err := os.Stat(imgPath); err != nil {
		t.Errorf("image not written: %v", err)
	}
	lf, err := ReadLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Tags) != 25 || !lf.Center.Eq(cloud.NewPoint(400, 400)) || !lf.Canvas.Eq(cloud.NewSize(800, 800)) {
		t.Errorf("layout has %d tags, center %s, canvas %s", len(lf.Tags), lf.Center, lf.Canvas)
	}
	if !lf.Tags[0].Center().Eq(lf.Center) {
		t.Errorf("first tag %s not centered", lf.Tags[0].Rect)
	}
	assertNoOverlaps(t, lf.Rects())
}

func TestRandomCommandDeterministic(t *testing.T) {
	dir := t.TempDir()
	var layouts []*LayoutFile
	for _, name := range []string{"a.yaml", "b.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := execute(t, "random", "-n", "15", "--seed", "9", "--index", "grid", "-o", "", "--layout", path); err != nil {
			t.Fatal(err)
		}
		lf, err := ReadLayout(path)
		if err != nil {
			t.Fatal(err)
		}
		layouts = append(layouts, lf)
	}
	for i := range layouts[0].Tags {
		if !layouts[0].Tags[i].Rect.Eq(layouts[1].Tags[i].Rect) {
			t.Fatalf("tag %d differs: %s vs %s", i, layouts[0].Tags[i].Rect, layouts[1].Tags[i].Rect)
		}
	}
}

func TestRandomCommandMaxSteps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capped.json")
	out, err := execute(t, "random", "-n", "5", "--seed", "2", "--max-steps", "1", "-o", "", "--layout", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1/5") {
		t.Errorf("summary does not report 1 of 5 placed:\n%s", out)
	}
	lf, err := ReadLayout(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Tags) != 1 {
		t.Errorf("layout has %d tags, want 1", len(lf.Tags))
	}
}

func TestRandomCommandInvalidCanvas(t *testing.T) {
	_, err := execute(t, "random", "-n", "3", "--center-x", "5", "--center-y", "5", "--width", "-20", "-o", "")
	if err == nil {
		t.Fatal("negative canvas accepted")
	}
}

func TestTagsCommand(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "tags.txt")
	content := "go 10\nlayout 6\ncloud 6\nspiral 3\ntest 1\n"
	if err := os.WriteFile(list, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	svg := filepath.Join(dir, "tags.svg")
	layout := filepath.Join(dir, "tags.yaml")
	if _, err := execute(t, "tags", list, "-o", svg, "--layout", layout, "--fit"); err != nil {
		t.Fatal(err)
	}
	lf, err := ReadLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Tags) != 5 || lf.Tags[0].Name != "go" {
		t.Fatalf("layout tags = %+v", lf.Tags)
	}
	if lf.Tags[0].Height != DefaultTagSizer().MaxHeight {
		t.Errorf("heaviest tag height = %d", lf.Tags[0].Height)
	}
	assertNoOverlaps(t, lf.Rects())
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "<text") != 5 {
		t.Errorf("SVG does not label all tags:\n%s", data)
	}
}

func TestImagesAndRenderCommands(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input")
	if err := os.MkdirAll(input, 0755); err != nil {
		t.Fatal(err)
	}
	for i, name := range []string{"a1.png", "a2.png", "a10.png"} {
		createImage(t, filepath.Join(input, name), 30+i*10, 20, image.Rect(2, 2, 28, 18), color.NRGBA{R: 255, A: 255})
	}
	layout := filepath.Join(dir, "images.json")
	atlas := filepath.Join(dir, "images.png")
	if _, err := execute(t, "images", "-i", input, "-o", atlas, "--layout", layout); err != nil {
		t.Fatal(err)
	}
	lf, err := ReadLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	if len(lf.Tags) != 3 || lf.Tags[2].Name != "a10" {
		t.Fatalf("image tags = %+v", lf.Tags)
	}
	for _, tag := range lf.Tags {
		if !tag.Size.Eq(cloud.NewSize(26, 16)) || tag.Crop == nil {
			t.Errorf("tag %s size %s crop %v, want trimmed 26x16", tag.Name, tag.Size, tag.Crop)
		}
	}
	assertNoOverlaps(t, lf.Rects())

	rendered := filepath.Join(dir, "rendered.svg")
	out, err := execute(t, "render", layout, "-o", rendered)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, rendered) {
		t.Errorf("render output does not name %s:\n%s", rendered, out)
	}
	data, err := os.ReadFile(rendered)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(data), "<image") != 3 {
		t.Errorf("rendered SVG does not reference 3 images:\n%s", data)
	}
}

func TestRenderCommandMissingLayout(t *testing.T) {
	if _, err := execute(t, "render", filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("missing layout returned no error")
	}
}

func TestCommandConfigFile(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, "canvas_width = 400\ncanvas_height = 300\nsort = \"area\"\n")
	layout := filepath.Join(dir, "cfg.json")
	if _, err := execute(t, "random", "--config", config, "-n", "5", "--seed", "4", "--height", "500", "-o", "", "--layout", layout); err != nil {
		t.Fatal(err)
	}
	lf, err := ReadLayout(layout)
	if err != nil {
		t.Fatal(err)
	}
	if !lf.Canvas.Eq(cloud.NewSize(400, 500)) || !lf.Center.Eq(cloud.NewPoint(200, 250)) {
		t.Errorf("canvas %s center %s, want [400, 500] [200, 250]", lf.Canvas, lf.Center)
	}
	for i := 1; i < len(lf.Tags); i++ {
		if lf.Tags[i].Area() > lf.Tags[i-1].Area() {
			t.Errorf("tags not sorted by area: %s before %s", lf.Tags[i-1].Size, lf.Tags[i].Size)
		}
	}
}

func TestCommandCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	root := newRootCommand(&stdout, &stderr)
	root.SetArgs([]string{"examples", "-o", t.TempDir()})
	if err := root.ExecuteContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
