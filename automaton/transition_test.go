package automaton

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/recording"
)

func TestNewTransitionCurve_MissingState(t *testing.T) {
	s := NewState("q0", Position{})
	if _, err := NewTransitionCurve("a", nil, s); !errors.Is(err, graphic.ErrMissingInput) {
		t.Errorf("nil start: err = %v, want ErrMissingInput", err)
	}
	if _, err := NewTransitionCurve("a", s, nil); !errors.Is(err, graphic.ErrMissingInput) {
		t.Errorf("nil end: err = %v, want ErrMissingInput", err)
	}
}

func TestTransitionCurve_Endpoints(t *testing.T) {
	h := math.Sqrt2 * 90 / 4
	tests := []struct {
		name           string
		endX, endY     float64
		placement      Placement
		sx, sy, ex, ey float64
		wantHeight     float64
	}{
		{"right top", 150, 50, Top, 50, 40, 150, 40, -25},
		{"right bottom", 150, 50, Bottom, 50, 60, 150, 60, -25},
		{"down right", 150, 150, Top, 60, 50, 150, 140, h},
		{"down right bottom", 150, 150, Bottom, 60, 50, 150, 140, -h},
		{"up right", 150, -50, Top, 50, 40, 140, -50, h},
		{"straight down", 50, 150, Top, 40, 50, 40, 150, 25},
		{"straight down bottom", 50, 150, Bottom, 60, 50, 60, 150, -25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := definedState(t, "q0", 50, 50, 10)
			b := definedState(t, "q1", tt.endX, tt.endY, 10)
			tr, err := NewTransitionCurve("a", a, b, WithPlacement(tt.placement))
			if err != nil {
				t.Fatal(err)
			}
			arrow := tr.Arrow()
			if arrow == nil {
				t.Fatal("Arrow() = nil with both states defined")
			}
			coordAt(t, "start", arrow.Start(), tt.sx, tt.sy)
			coordAt(t, "end", arrow.End(), tt.ex, tt.ey)
			if !near(arrow.Height(), tt.wantHeight) {
				t.Errorf("Height() = %v, want %v", arrow.Height(), tt.wantHeight)
			}
		})
	}
}

func TestTransitionCurve_Loop(t *testing.T) {
	a := definedState(t, "q0", 50, 50, 10)
	d := 10 / math.Sqrt2

	top, err := NewTransitionCurve("a", a, a)
	if err != nil {
		t.Fatal(err)
	}
	coordAt(t, "top loop start", top.Arrow().Start(), 50+d, 50-d)
	coordAt(t, "top loop end", top.Arrow().End(), 50-d, 50-d)
	if top.Arrow().Height() != -20 {
		t.Errorf("top loop height = %v, want -20", top.Arrow().Height())
	}
	if y := top.Label().Point().Y(); y >= 50-d {
		t.Errorf("top loop label at y = %v, want above the state", y)
	}

	bottom, err := NewTransitionCurve("b", a, a, WithPlacement(Bottom))
	if err != nil {
		t.Fatal(err)
	}
	coordAt(t, "bottom loop start", bottom.Arrow().Start(), 50-d, 50+d)
	coordAt(t, "bottom loop end", bottom.Arrow().End(), 50+d, 50+d)
	if y := bottom.Label().Point().Y(); y <= 50+d {
		t.Errorf("bottom loop label at y = %v, want below the state", y)
	}
}

func TestTransitionCurve_Label(t *testing.T) {
	a := definedState(t, "q0", 50, 50, 10)
	b := definedState(t, "q1", 150, 50, 10)
	tr, err := NewTransitionCurve("a", a, b)
	if err != nil {
		t.Fatal(err)
	}
	label := tr.Label()
	if label.Text() != "a" {
		t.Errorf("label = %q, want a", label.Text())
	}
	if label.Point() != tr.Arrow().Arc().MiddleControl() {
		t.Error("label is not anchored at the middle control point")
	}
	if !near(label.Point().X(), 100) || label.Point().Y() >= 40 {
		t.Errorf("label anchor = %v, want x = 100 above the states", label.Point())
	}
}

func TestTransitionCurve_FollowsStates(t *testing.T) {
	a, b := NewState("q0", Position{}), NewState("q1", Position{Col: 1})
	tr, err := NewTransitionCurve("a", a, b)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Arrow() != nil {
		t.Fatal("Arrow() != nil before the states are defined")
	}
	rec := recording.NewRecorder(200, 200)
	if err := tr.Draw(rec); !errors.Is(err, ErrStateUndefined) {
		t.Errorf("Draw with undefined states = %v, want ErrStateUndefined", err)
	}

	calls := 0
	sub := tr.Subscribe(func() { calls++ })
	defer sub.Cancel()

	if err := a.Define(graphic.MustPoint(50, 50), 10); err != nil {
		t.Fatal(err)
	}
	if tr.Arrow() != nil {
		t.Error("Arrow() != nil with only one state defined")
	}
	center := graphic.MustPoint(150, 50)
	if err := b.Define(center, 10); err != nil {
		t.Fatal(err)
	}
	if tr.Arrow() == nil {
		t.Fatal("Arrow() = nil after both states are defined")
	}
	if calls != 2 {
		t.Errorf("transition notified %d times, want 2", calls)
	}

	if err := center.SetCoord(graphic.C(150, 150)); err != nil {
		t.Fatal(err)
	}
	coordAt(t, "start after move", tr.Arrow().Start(), 60, 50)
	coordAt(t, "end after move", tr.Arrow().End(), 150, 140)
	if calls != 3 {
		t.Errorf("transition notified %d times after the move, want 3", calls)
	}
}

func TestTransitionCurve_Draw(t *testing.T) {
	a := definedState(t, "q0", 50, 50, 10)
	b := definedState(t, "q1", 150, 50, 10)
	tr, err := NewTransitionCurve("go", a, b)
	if err != nil {
		t.Fatal(err)
	}
	rec := recording.NewRecorder(200, 100)
	if err := tr.Draw(rec); err != nil {
		t.Fatal(err)
	}

	var curves, heads int
	var run *recording.TextRun
	for _, cmd := range rec.Commands() {
		switch c := cmd.(type) {
		case recording.StrokePathCommand:
			for _, e := range rec.Resources().GetPath(c.Path).Elements() {
				if _, ok := e.(recording.CubicTo); ok {
					curves++
				}
			}
		case recording.FillPathCommand:
			heads++
			if c.Color != graphic.Black {
				t.Errorf("head color = %v, want black", c.Color)
			}
		case recording.FillTextCommand:
			r := c.TextRun
			run = &r
		}
	}
	if curves != 1 {
		t.Errorf("stroked %d curves, want 1", curves)
	}
	if heads != 1 {
		t.Errorf("filled %d heads, want 1", heads)
	}
	if run == nil {
		t.Fatal("no label written")
	}
	mid := tr.Arrow().Arc().MiddleControl()
	if run.Text != "go" || !near(run.X, mid.X()) || !near(run.Y, mid.Y()) {
		t.Errorf("label run = %+v, want go at %v", *run, mid)
	}
	if run.Align != graphic.AlignCenter {
		t.Errorf("label align = %v, want center", run.Align)
	}
}
