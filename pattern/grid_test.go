package pattern

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/recording"
)

const epsilon = 1e-9

func at(t *testing.T, p *graphic.Point, x, y float64) {
	t.Helper()
	if math.Abs(p.X()-x) > epsilon || math.Abs(p.Y()-y) > epsilon {
		t.Errorf("point = (%v, %v), want (%v, %v)", p.X(), p.Y(), x, y)
	}
}

func TestNewGrid_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		rows, cols    int
		width, height float64
	}{
		{"zero rows", 0, 2, 100, 100},
		{"negative cols", 2, -1, 100, 100},
		{"zero width", 2, 2, 0, 100},
		{"NaN height", 2, 2, 100, math.NaN()},
		{"infinite width", 2, 2, math.Inf(1), 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGrid(tt.rows, tt.cols, tt.width, tt.height); !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("error = %v, want ErrInvalidGrid", err)
			}
		})
	}
}

func TestGrid_CellMiddles(t *testing.T) {
	g, err := NewGrid(2, 2, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	at(t, g.CellAt(0, 0).Middle, 25, 25)
	at(t, g.CellAt(1, 1).Middle, 75, 75)
	if name := g.CellAt(1, 0).Middle.Name(); name != "(1, 0)" {
		t.Errorf("middle name = %q, want %q", name, "(1, 0)")
	}
}

func TestGrid_CellPoints(t *testing.T) {
	g, _ := NewGrid(3, 4, 400, 300) // 100 × 100 cells
	cell := g.CellAt(2, 1)

	at(t, cell.Top.Left, 200, 100)
	at(t, cell.Top.Center, 250, 100)
	at(t, cell.Top.Right, 300, 100)
	at(t, cell.Bottom.Left, 200, 200)
	at(t, cell.Bottom.Center, 250, 200)
	at(t, cell.Bottom.Right, 300, 200)
	if cell.Size != (CellSize{Width: 100, Height: 100}) {
		t.Errorf("Size = %+v", cell.Size)
	}
}

func TestGrid_CellAtReturnsFreshPoints(t *testing.T) {
	g, _ := NewGrid(2, 2, 100, 100)
	a, b := g.CellAt(0, 0), g.CellAt(0, 0)
	if a.Middle == b.Middle || a.Top.Left == b.Top.Left {
		t.Fatal("CellAt returned shared points")
	}
	if err := a.Middle.SetCoord(graphic.C(-1, -1)); err != nil {
		t.Fatal(err)
	}
	at(t, g.CellAt(0, 0).Middle, 25, 25)
}

func TestGrid_Matrix(t *testing.T) {
	g, _ := NewGrid(2, 3, 300, 100)
	m := g.Matrix()
	if len(m) != 3 {
		t.Fatalf("len(Matrix) = %d, want 3 columns", len(m))
	}
	for col := range m {
		if len(m[col]) != 2 {
			t.Fatalf("column %d has %d rows, want 2", col, len(m[col]))
		}
	}
	at(t, m[2][1].Middle, 250, 75)
}

func TestGrid_Extend(t *testing.T) {
	g, _ := NewGrid(2, 2, 100, 80)
	g.ExtendCol()
	g.ExtendCol()
	g.ExtendRow()

	if g.Cols() != 4 || g.Rows() != 3 {
		t.Errorf("size = %d cols × %d rows, want 4 × 3", g.Cols(), g.Rows())
	}
	if g.Width() != 200 || g.Height() != 120 {
		t.Errorf("dimensions = %v × %v, want 200 × 120", g.Width(), g.Height())
	}
	if g.ColExtends() != 2 || g.RowExtends() != 1 {
		t.Errorf("extends = %d/%d, want 2/1", g.ColExtends(), g.RowExtends())
	}
	if off := g.Offset(); off != graphic.C(100, 40) {
		t.Errorf("Offset() = %v, want (100, 40)", off)
	}
	// Cell size is fixed at construction.
	if g.CellSize() != (CellSize{Width: 50, Height: 40}) {
		t.Errorf("CellSize() = %+v", g.CellSize())
	}
	if !g.Contains(3, 2) || g.Contains(4, 0) || g.Contains(0, -1) {
		t.Error("Contains does not follow the extended size")
	}
}

func TestGrid_Draw(t *testing.T) {
	dashed := graphic.NewStyle(graphic.WithLineStyle(graphic.LineDashed))
	g, _ := NewGrid(2, 3, 300, 200, WithCellStyle(dashed))
	if g.Style() != dashed {
		t.Fatal("WithCellStyle not applied")
	}

	rec := recording.NewRecorder(300, 200)
	if err := g.DrawCell(rec, g.CellAt(1, 1)); err != nil {
		t.Fatalf("DrawCell: %v", err)
	}
	var (
		sp recording.StrokePathCommand
		ok bool
	)
	cmds := rec.Commands()
	for i := len(cmds) - 1; i >= 0 && !ok; i-- {
		sp, ok = cmds[i].(recording.StrokePathCommand)
	}
	if !ok {
		t.Fatal("DrawCell recorded no StrokePathCommand")
	}
	if _, restored := cmds[len(cmds)-1].(recording.StrokePathCommand); restored {
		t.Error("cell style not restored after the stroke")
	}
	if !sp.Stroke.IsDashed() {
		t.Error("cell outline not dashed")
	}
	elems := rec.Resources().GetPath(sp.Path).Elements()
	if len(elems) != 5 {
		t.Fatalf("outline has %d elements, want 5", len(elems))
	}
	if first := elems[0].(recording.MoveTo); first.P != graphic.C(100, 100) {
		t.Errorf("outline starts at %v, want (100, 100)", first.P)
	}
	if len(rec.LineDash()) != 0 {
		t.Error("cell style leaked into the context")
	}

	rec = recording.NewRecorder(300, 200)
	if err := g.Draw(rec); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if n := rec.Resources().PathCount(); n != 6 {
		t.Errorf("Draw stroked %d outlines, want 6", n)
	}

	if err := g.Draw(nil); !errors.Is(err, graphic.ErrNoContext) {
		t.Errorf("Draw(nil) = %v, want ErrNoContext", err)
	}
}

func TestGrid_DrawNil(t *testing.T) {
	var g *Grid
	if err := g.Draw(recording.NewRecorder(10, 10)); !errors.Is(err, graphic.ErrMissingInput) {
		t.Errorf("nil Grid.Draw() = %v, want ErrMissingInput", err)
	}
}
