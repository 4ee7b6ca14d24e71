package cloud

import "fmt"

// collider 保存已放置的矩形，并回答候选矩形是否与其中任意一个重叠
type collider interface {
	// 记录一个已放置的矩形。
	Add(rect Rect)

	// 测试 rect 是否与任意已放置的矩形重叠。
	IntersectsAny(rect Rect) bool

	// 按插入顺序返回已放置的矩形。
	Rects() []Rect
}

// IndexKind 选择碰撞检测使用的索引
type IndexKind uint8

const (
	// IndexLinear 对已放置的矩形做线性扫描。
	IndexLinear IndexKind = iota
	// IndexGrid 把矩形分配到固定大小的网格单元中，只检查候选矩形覆盖的单元。
	IndexGrid
)

// DefaultGridCell 是网格索引默认的单元边长。
const DefaultGridCell = 128

// String 返回索引类型的名称。
func (k IndexKind) String() string {
	switch k {
	case IndexLinear:
		return "linear"
	case IndexGrid:
		return "grid"
	}
	return fmt.Sprintf("IndexKind(%d)", k)
}

// ResolveIndex 根据名称返回索引类型
func ResolveIndex(name string) (IndexKind, error) {
	switch name {
	case "", "linear":
		return IndexLinear, nil
	case "grid":
		return IndexGrid, nil
	}
	return 0, fmt.Errorf("unknown index %q (must be 'linear' or 'grid')", name)
}

// indexBase 是碰撞索引的公共部分
type indexBase struct {
	placed []Rect // 已放置的矩形
}

func (b *indexBase) Rects() []Rect {
	return b.placed
}

// linearIndex 逐个比较所有已放置的矩形
type linearIndex struct {
	indexBase
}

func newLinearIndex() *linearIndex {
	return &linearIndex{}
}

func (idx *linearIndex) Add(rect Rect) {
	idx.placed = append(idx.placed, rect)
}

func (idx *linearIndex) IntersectsAny(rect Rect) bool {
	return rect.IntersectsAny(idx.placed)
}

type cellKey struct {
	col, row int
}

// gridIndex 是一个均匀网格。每个矩形登记在它覆盖的所有单元中，
// 查询时只比较候选矩形覆盖单元中的矩形，结果与 linearIndex 完全一致。
type gridIndex struct {
	indexBase
	cell  int
	cells map[cellKey][]int // 单元 -> placed 中的下标
}

func newGridIndex(cell int) *gridIndex {
	if cell <= 0 {
		cell = DefaultGridCell
	}
	return &gridIndex{cell: cell, cells: make(map[cellKey][]int)}
}

// floorDiv 向负无穷取整的除法，保证负坐标落在正确的单元
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// span 返回矩形覆盖的单元范围（闭区间）。退化矩形仍然占据它左上角所在的单元。
func (g *gridIndex) span(rect Rect) (c0, r0, c1, r1 int) {
	c0 = floorDiv(rect.X, g.cell)
	r0 = floorDiv(rect.Y, g.cell)
	c1 = floorDiv(rect.X+max(rect.Width-1, 0), g.cell)
	r1 = floorDiv(rect.Y+max(rect.Height-1, 0), g.cell)
	return
}

func (g *gridIndex) Add(rect Rect) {
	i := len(g.placed)
	g.placed = append(g.placed, rect)
	c0, r0, c1, r1 := g.span(rect)
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			key := cellKey{c, r}
			g.cells[key] = append(g.cells[key], i)
		}
	}
}

func (g *gridIndex) IntersectsAny(rect Rect) bool {
	c0, r0, c1, r1 := g.span(rect)
	for c := c0; c <= c1; c++ {
		for r := r0; r <= r1; r++ {
			for _, i := range g.cells[cellKey{c, r}] {
				if rect.Intersects(g.placed[i]) {
					return true
				}
			}
		}
	}
	return false
}
