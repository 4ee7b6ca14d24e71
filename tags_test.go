package main

import (
	"context"
	"strings"
	"testing"

	"tagcloud/cloud"
)

func TestReadTagList(t *testing.T) {
	input := `# 注释
go 10
rust 4

go 5
hello world 2.5
lonely
`
	tags, err := readTagList(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		name   string
		weight float64
	}{
		{"go", 15},
		{"rust", 4},
		{"hello world", 2.5},
		{"lonely", 1},
	}
	if len(tags) != len(want) {
		t.Fatalf("read %d tags, want %d: %+v", len(tags), len(want), tags)
	}
	for i, w := range want {
		if tags[i].Name != w.name || tags[i].Weight != w.weight {
			t.Errorf("tag %d = %q %v, want %q %v", i, tags[i].Name, tags[i].Weight, w.name, w.weight)
		}
	}
}

func TestReadTagListInvalidWeight(t *testing.T) {
	for _, input := range []string{"a 0", "b -3", "c NaN"} {
		if _, err := readTagList(strings.NewReader(input)); err == nil {
			t.Errorf("readTagList(%q) returned no error", input)
		}
	}
}

func TestTagSizer(t *testing.T) {
	tags := []Tag{{Name: "big", Weight: 10}, {Name: "small", Weight: 0.5}, {Name: "mid", Weight: 5.25}}
	sizer := TagSizer{MinHeight: 10, MaxHeight: 50, CharRatio: 0.5}
	sizer.Apply(tags)
	wants := []cloud.Size{cloud.NewSize(75, 50), cloud.NewSize(25, 10), cloud.NewSize(45, 30)}
	for i, want := range wants {
		if !tags[i].Size.Eq(want) {
			t.Errorf("%s size = %s, want %s", tags[i].Name, tags[i].Size, want)
		}
	}

	same := []Tag{{Name: "a", Weight: 3}, {Name: "bb", Weight: 3}}
	sizer.Apply(same)
	if same[0].Height != 50 || same[1].Height != 50 {
		t.Errorf("equal weights got heights %d, %d; want max height", same[0].Height, same[1].Height)
	}
}

func TestSortTags(t *testing.T) {
	tags := []Tag{
		{Name: "tag10", Weight: 1, Rect: cloud.NewRect(0, 0, 10, 10)},
		{Name: "tag2", Weight: 3, Rect: cloud.NewRect(0, 0, 30, 20)},
		{Name: "tag1", Weight: 2, Rect: cloud.NewRect(0, 0, 5, 5)},
	}
	tests := []struct {
		sort string
		want []string
	}{
		{"none", []string{"tag10", "tag2", "tag1"}},
		{"name", []string{"tag1", "tag2", "tag10"}},
		{"weight", []string{"tag2", "tag1", "tag10"}},
		{"area", []string{"tag2", "tag10", "tag1"}},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			got := append([]Tag(nil), tags...)
			if err := sortTags(got, tt.sort); err != nil {
				t.Fatal(err)
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("position %d = %s, want %s", i, got[i].Name, name)
				}
			}
		})
	}
	if err := sortTags(tags, "bogus"); err == nil {
		t.Error("sortTags(bogus) returned no error")
	}
}

func TestLayoutTags(t *testing.T) {
	l, err := cloud.NewLayouter(cloud.NewPoint(200, 200))
	if err != nil {
		t.Fatal(err)
	}
	tags := []Tag{NewTag("a", cloud.NewSize(40, 20)), NewTag("b", cloud.NewSize(30, 30)), NewTag("c", cloud.NewSize(-1, 5))}
	err = layoutTags(context.Background(), l, tags)
	if err == nil || !strings.Contains(err.Error(), `"c"`) {
		t.Fatalf("layoutTags error = %v, want error naming tag c", err)
	}
	if l.Len() != 2 {
		t.Fatalf("placed %d tags, want 2", l.Len())
	}
	if !tags[0].Center().Eq(l.Center()) {
		t.Errorf("first tag %s not centered at %s", tags[0].Rect, l.Center())
	}
	if tags[0].Intersects(tags[1].Rect) {
		t.Errorf("%s and %s intersect", tags[0].Rect, tags[1].Rect)
	}
}
