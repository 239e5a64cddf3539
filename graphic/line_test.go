package graphic

import (
	"errors"
	"math"
	"testing"
)

func TestLine_Angle(t *testing.T) {
	tests := []struct {
		name       string
		start, end Coord
		want       float64
	}{
		{"vertical down", C(5, 0), C(5, 10), math.Pi / 2},
		{"vertical up", C(5, 10), C(5, 0), math.Pi / 2},
		{"horizontal right", C(0, 3), C(10, 3), 0},
		{"horizontal left", C(10, 3), C(0, 3), 0},
		{"down right", C(0, 0), C(10, 10), math.Pi / 4},
		{"up left folds onto down right", C(10, 10), C(0, 0), math.Pi / 4},
		{"up right", C(0, 0), C(10, -10), -math.Pi / 4},
		{"shallow", C(1, 2), C(4, 3), math.Atan(1.0 / 3.0)},
		{"degenerate", C(2, 2), C(2, 2), math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLine(MustPoint(tt.start.X, tt.start.Y), MustPoint(tt.end.X, tt.end.Y))
			if err != nil {
				t.Fatal(err)
			}
			if got := l.Angle(); !near(got, tt.want, epsilon) {
				t.Errorf("Angle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLine_MissingPoint(t *testing.T) {
	_, err := NewLine(nil, MustPoint(0, 0))
	if !errors.Is(err, ErrMissingInput) {
		t.Fatalf("NewLine(nil, p) error = %v, want ErrMissingInput", err)
	}
	var mie *MissingInputError
	if !errors.As(err, &mie) || mie.Input != "start point" {
		t.Errorf("error = %#v, want MissingInputError for the start point", err)
	}
	if _, err := NewLine(MustPoint(0, 0), nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("NewLine(p, nil) error = %v, want ErrMissingInput", err)
	}
}

func TestLine_FollowsEndpoints(t *testing.T) {
	a, b := MustPoint(0, 0), MustPoint(10, 10)
	l, err := NewLine(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Middle().Coord(); got != C(5, 5) {
		t.Fatalf("Middle() = %v, want (5, 5)", got)
	}
	before := l.Middle()

	if err := a.SetCoord(C(a.X()+5, a.Y())); err != nil {
		t.Fatal(err)
	}

	if got, want := l.Angle(), math.Atan(10.0/5.0); !near(got, want, epsilon) {
		t.Errorf("Angle() = %v, want %v", got, want)
	}
	if got := l.Middle().Coord(); got != C(7.5, 5) {
		t.Errorf("Middle() = %v, want (7.5, 5)", got)
	}
	if l.Middle() == before {
		t.Error("Middle() returned the same Point after a change")
	}
	if before.Coord() != C(5, 5) {
		t.Errorf("previous middle was moved to %v", before.Coord())
	}
}

func TestLine_NormFrozenLengthLive(t *testing.T) {
	a, b := MustPoint(0, 0), MustPoint(3, 4)
	l, _ := NewLine(a, b)
	_ = b.SetCoord(C(6, 8))

	if l.Norm() != 5 {
		t.Errorf("Norm() = %v, want 5 (measured at construction)", l.Norm())
	}
	if l.Length() != 10 {
		t.Errorf("Length() = %v, want 10", l.Length())
	}
	if v := l.Vector(); v != C(6, 8) {
		t.Errorf("Vector() = %v, want (6, 8)", v)
	}
}

func TestLine_SetStart(t *testing.T) {
	a, b, c := MustPoint(0, 0), MustPoint(10, 0), MustPoint(10, 10)
	l, _ := NewLine(a, b)
	calls := 0
	s := l.Subscribe(func() { calls++ })
	defer s.Cancel()

	if err := l.SetStart(c); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("SetStart notified %d times, want 1", calls)
	}
	if l.Angle() != math.Pi/2 {
		t.Errorf("Angle() = %v, want π/2", l.Angle())
	}

	_ = a.SetCoord(C(-50, -50))
	if calls != 1 {
		t.Error("line still follows its previous start point")
	}
	if a.Dependents() != 0 {
		t.Errorf("previous start has %d dependents, want 0", a.Dependents())
	}

	if err := l.SetEnd(nil); !errors.Is(err, ErrMissingInput) {
		t.Errorf("SetEnd(nil) = %v, want ErrMissingInput", err)
	}
}

func TestLine_Draw(t *testing.T) {
	style := NewStyle(WithLineWidth(3), WithStrokeColor(MustColor("red")), WithLineStyle(LineDashed))
	l, _ := NewLine(MustPoint(1, 2), MustPoint(3, 4), WithStyle(style))
	ctx := newFakeContext()
	before := ctx.state

	if err := l.Draw(ctx); err != nil {
		t.Fatal(err)
	}
	want := []string{"beginPath", "moveTo 1 2", "lineTo 3 4", "stroke"}
	if len(ctx.ops) != len(want) {
		t.Fatalf("ops = %v, want %v", ctx.ops, want)
	}
	for i := range want {
		if ctx.ops[i] != want[i] {
			t.Errorf("op %d = %q, want %q", i, ctx.ops[i], want[i])
		}
	}
	p := ctx.painted[0]
	if p.lineWidth != 3 || p.stroke != MustColor("red") || len(p.dash) != 2 {
		t.Errorf("stroked with %+v", p)
	}
	if !stateEqual(ctx.state, before) {
		t.Errorf("context state after Draw = %+v, want %+v", ctx.state, before)
	}
}
