// Package pattern provides layout helpers for placing diagram elements.
package pattern

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gogpu/stateautomaton/graphic"
)

// ErrInvalidGrid is returned when a grid is built with non-positive or
// non-finite dimensions.
var ErrInvalidGrid = errors.New("pattern: invalid grid dimensions")

// CellSize is the width and height of one grid cell.
type CellSize struct {
	Width, Height float64
}

// Edge holds the three canonical points along the top or bottom edge of a
// cell.
type Edge struct {
	Left, Center, Right *graphic.Point
}

// Cell is the set of canonical points of one grid cell. Every Cell holds
// fresh Points: moving them does not affect the grid or other cells.
type Cell struct {
	Top, Bottom Edge
	Middle      *graphic.Point // named "(col, row)"
	Size        CellSize
}

// Grid divides a width × height area into rows × cols equal cells.
//
// The cell size is fixed when the grid is built. ExtendCol and ExtendRow
// grow the grid by one cell and count how often they did so, which is what
// Offset reports.
type Grid struct {
	rows, cols    int
	width, height float64
	cell          CellSize

	colExtends, rowExtends int

	style *graphic.Style
}

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithCellStyle sets the Style used to draw cell outlines.
func WithCellStyle(s *graphic.Style) GridOption {
	return func(g *Grid) {
		if s != nil {
			g.style = s
		}
	}
}

// NewGrid returns a grid of rows × cols cells covering width × height.
func NewGrid(rows, cols int, width, height float64, opts ...GridOption) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %d rows, %d cols", ErrInvalidGrid, rows, cols)
	}
	if !(width > 0 && height > 0) || !graphic.C(width, height).Finite() {
		return nil, fmt.Errorf("%w: %v × %v", ErrInvalidGrid, width, height)
	}
	g := &Grid{
		rows:   rows,
		cols:   cols,
		width:  width,
		height: height,
		cell:   CellSize{Width: width / float64(cols), Height: height / float64(rows)},
		style:  graphic.DefaultStyle(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

func (g *Grid) Rows() int             { return g.rows }
func (g *Grid) Cols() int             { return g.cols }
func (g *Grid) Width() float64        { return g.width }
func (g *Grid) Height() float64       { return g.height }
func (g *Grid) CellSize() CellSize    { return g.cell }
func (g *Grid) ColExtends() int       { return g.colExtends }
func (g *Grid) RowExtends() int       { return g.rowExtends }
func (g *Grid) Style() *graphic.Style { return g.style }

// Contains reports whether (col, row) addresses a cell of the grid.
func (g *Grid) Contains(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellAt returns the canonical points of the cell at zero-based (col, row).
// Indices outside the grid are not rejected; the points are extrapolated.
func (g *Grid) CellAt(col, row int) Cell {
	w, h := g.cell.Width, g.cell.Height
	left, right := float64(col)*w, float64(col+1)*w
	top, bottom := float64(row)*h, float64(row+1)*h
	cx, cy := (left+right)/2, (top+bottom)/2

	middle := point(cx, cy)
	middle.SetName("(" + strconv.Itoa(col) + ", " + strconv.Itoa(row) + ")")
	return Cell{
		Top:    Edge{Left: point(left, top), Center: point(cx, top), Right: point(right, top)},
		Bottom: Edge{Left: point(left, bottom), Center: point(cx, bottom), Right: point(right, bottom)},
		Middle: middle,
		Size:   g.cell,
	}
}

func point(x, y float64) *graphic.Point {
	// Grid dimensions are finite, so are products of them.
	return graphic.MustPoint(x, y)
}

// Matrix returns every cell, indexed [col][row].
func (g *Grid) Matrix() [][]Cell {
	m := make([][]Cell, g.cols)
	for col := range m {
		m[col] = make([]Cell, g.rows)
		for row := range m[col] {
			m[col][row] = g.CellAt(col, row)
		}
	}
	return m
}

// ExtendCol adds one column on the right.
func (g *Grid) ExtendCol() {
	g.width += g.cell.Width
	g.cols++
	g.colExtends++
	graphic.Logger().Debug("pattern: grid extended", "cols", g.cols, "width", g.width)
}

// ExtendRow adds one row at the bottom.
func (g *Grid) ExtendRow() {
	g.height += g.cell.Height
	g.rows++
	g.rowExtends++
	graphic.Logger().Debug("pattern: grid extended", "rows", g.rows, "height", g.height)
}

// Offset returns the size added by extensions so far.
func (g *Grid) Offset() graphic.Coord {
	return graphic.C(float64(g.colExtends)*g.cell.Width, float64(g.rowExtends)*g.cell.Height)
}

// DrawCell strokes the outline of cell.
func (g *Grid) DrawCell(c graphic.Context, cell Cell) error {
	if c == nil {
		return graphic.ErrNoContext
	}
	defer g.style.Apply(c).Restore()
	c.BeginPath()
	c.MoveTo(cell.Top.Left.X(), cell.Top.Left.Y())
	c.LineTo(cell.Top.Right.X(), cell.Top.Right.Y())
	c.LineTo(cell.Bottom.Right.X(), cell.Bottom.Right.Y())
	c.LineTo(cell.Bottom.Left.X(), cell.Bottom.Left.Y())
	c.LineTo(cell.Top.Left.X(), cell.Top.Left.Y())
	return c.Stroke()
}

// Draw strokes every cell outline.
func (g *Grid) Draw(c graphic.Context) error {
	if c == nil {
		return graphic.ErrNoContext
	}
	if g == nil {
		return &graphic.MissingInputError{Op: "draw grid", Input: "grid"}
	}
	for _, col := range g.Matrix() {
		for _, cell := range col {
			if err := g.DrawCell(c, cell); err != nil {
				return err
			}
		}
	}
	return nil
}
