package graphic

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoint_NonFinite(t *testing.T) {
	for _, c := range []Coord{
		{math.NaN(), 0},
		{0, math.Inf(1)},
		{math.Inf(-1), math.NaN()},
	} {
		if _, err := NewPoint(c.X, c.Y); !errors.Is(err, ErrNonFinite) {
			t.Errorf("NewPoint(%v, %v) error = %v, want ErrNonFinite", c.X, c.Y, err)
		}
	}
}

func TestMustPoint_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPoint(NaN, 0) did not panic")
		}
	}()
	MustPoint(math.NaN(), 0)
}

func TestPoint_SetCoord(t *testing.T) {
	p := MustPoint(1, 2)
	calls := 0
	s := p.Subscribe(func() { calls++ })
	defer s.Cancel()

	if err := p.SetCoord(C(3, 4)); err != nil {
		t.Fatalf("SetCoord: %v", err)
	}
	if p.Coord() != C(3, 4) {
		t.Errorf("Coord() = %v, want (3, 4)", p.Coord())
	}
	if calls != 1 {
		t.Errorf("dependents notified %d times, want 1", calls)
	}

	err := p.SetCoord(C(math.NaN(), 0))
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("SetCoord(NaN) error = %v, want ErrNonFinite", err)
	}
	if p.Coord() != C(3, 4) || calls != 1 {
		t.Errorf("rejected SetCoord changed the point to %v or notified (%d)", p.Coord(), calls)
	}
}

func TestPoint_Identity(t *testing.T) {
	a, b := MustPoint(1, 1), MustPoint(1, 1)
	if a == b {
		t.Error("two points with equal coordinates share identity")
	}
	if a.Distance(b) != 0 {
		t.Errorf("Distance = %v, want 0", a.Distance(b))
	}
}

func TestPoint_Distance(t *testing.T) {
	if d := MustPoint(0, 0).Distance(MustPoint(3, 4)); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func TestPoint_String(t *testing.T) {
	p, err := NamedPoint(1.5, 2, "q0")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.String(); got != "q0(1.5, 2)" {
		t.Errorf("String() = %q", got)
	}
	p.SetName("")
	if got := p.String(); got != "(1.5, 2)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPoint_Draw(t *testing.T) {
	ctx := newFakeContext()
	ctx.SetLineWidth(7)
	if err := MustPoint(10, 20).Draw(ctx); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"save", "beginPath",
		"moveTo 8 20", "lineTo 12 20",
		"moveTo 10 18", "lineTo 10 22",
		"stroke", "restore",
	}
	if len(ctx.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ctx.ops, want)
	}
	for i := range want {
		if ctx.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, ctx.ops[i], want[i])
		}
	}
	if ctx.painted[0].lineWidth != 1 {
		t.Errorf("marker stroked at width %v, want 1", ctx.painted[0].lineWidth)
	}
	if ctx.LineWidth() != 7 {
		t.Errorf("line width after Draw = %v, want 7", ctx.LineWidth())
	}
}

func TestDraw_NilContext(t *testing.T) {
	a, b := MustPoint(0, 0), MustPoint(10, 10)
	line, _ := NewLine(a, b)
	circle, _ := NewCircle(a, 3)
	arc, _ := NewArc(a, b, 10)
	head, _ := NewHeadArrow(a, 0, 5, 5)
	arrow, _ := NewArrow(a, b)
	arcArrow, _ := NewArcArrow(a, b, 10)
	text, _ := NewText(a, "x")

	for _, d := range []Drawable{a, line, circle, arc, head, arrow, arcArrow, text} {
		if err := d.Draw(nil); !errors.Is(err, ErrNoContext) {
			t.Errorf("%T.Draw(nil) = %v, want ErrNoContext", d, err)
		}
	}
}
