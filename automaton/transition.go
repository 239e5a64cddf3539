package automaton

import (
	"fmt"
	"math"

	"github.com/gogpu/stateautomaton/graphic"
)

// Placement selects on which side of its states a transition bows.
type Placement uint8

const (
	// Top bows the transition above (or left of) its states. It is the
	// default.
	Top Placement = iota
	// Bottom bows it below (or right of) them.
	Bottom
)

func (p Placement) String() string {
	if p == Bottom {
		return "bottom"
	}
	return "top"
}

// Option configures a TransitionCurve.
type Option func(*TransitionCurve)

// WithPlacement sets the side the transition bows on.
func WithPlacement(p Placement) Option {
	return func(t *TransitionCurve) { t.placement = p }
}

// TransitionCurve is a curved arrow from one State to another, labeled
// with its name at the crest of the curve. The arrow is rebuilt whenever
// either State is defined again or moves. A transition from a State to
// itself is drawn as a loop over (or under) the State.
type TransitionCurve struct {
	graphic.Notifier
	name       string
	start, end *State
	placement  Placement
	style      *graphic.Style

	arrow *graphic.ArcArrow
	label *graphic.Text

	watch []*graphic.Subscription
}

// NewTransitionCurve returns the transition named name from start to end.
// The States need not be defined yet.
func NewTransitionCurve(name string, start, end *State, opts ...Option) (*TransitionCurve, error) {
	if start == nil {
		return nil, &graphic.MissingInputError{Op: "new transition " + name, Input: "start state"}
	}
	if end == nil {
		return nil, &graphic.MissingInputError{Op: "new transition " + name, Input: "end state"}
	}
	t := &TransitionCurve{name: name, start: start, end: end, style: stateStyle()}
	for _, opt := range opts {
		opt(t)
	}
	t.watch = append(t.watch, start.Subscribe(t.changed))
	if end != start {
		t.watch = append(t.watch, end.Subscribe(t.changed))
	}
	if err := t.rebuild(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TransitionCurve) Name() string          { return t.name }
func (t *TransitionCurve) Start() *State         { return t.start }
func (t *TransitionCurve) End() *State           { return t.end }
func (t *TransitionCurve) Placement() Placement  { return t.placement }
func (t *TransitionCurve) Style() *graphic.Style { return t.style }

// Arrow returns the current arrow, or nil while either State is undefined.
func (t *TransitionCurve) Arrow() *graphic.ArcArrow { return t.arrow }

// Label returns the name label, or nil while either State is undefined.
func (t *TransitionCurve) Label() *graphic.Text { return t.label }

func (t *TransitionCurve) changed() {
	if err := t.rebuild(); err != nil {
		graphic.Logger().Warn("automaton: transition not rebuilt", "name", t.name, "err", err)
	}
	t.Notify()
}

// rebuild samples the arrow ends on the state circles. Bearings are
// chosen from the quadrant of the vector between the two centers.
func (t *TransitionCurve) rebuild() error {
	if !t.start.Defined() || !t.end.Defined() {
		t.arrow, t.label = nil, nil
		return nil
	}
	s, e := t.start.Circle(), t.end.Circle()
	u := e.Center().Coord().Sub(s.Center().Coord())

	// Bearings of the arrow ends on the start and end circles.
	var sa, ea float64
	dir := 1.0
	if t.placement == Bottom {
		dir = -1
	}
	height := 0.0
	switch {
	case u.X == 0 && u.Y == 0:
		// Loop over the state, or under it.
		if dir > 0 {
			sa, ea = -math.Pi/4, -3*math.Pi/4
		} else {
			sa, ea = 3*math.Pi/4, math.Pi/4
		}
		height = -dir * 2 * s.Radius()
	case u.X < 0 && u.Y < 0:
		if dir > 0 {
			sa, ea = -math.Pi/4, -math.Pi/4
		} else {
			sa, ea = math.Pi, -3*math.Pi/2
		}
	case u.X > 0 && u.Y < 0:
		sa, ea = -math.Pi/2, math.Pi
	case u.X > 0 && u.Y > 0:
		sa, ea = 0, -math.Pi/2
	case u.X < 0 && u.Y > 0:
		if dir > 0 {
			sa, ea = -3*math.Pi/4, -math.Pi/2
		} else {
			sa, ea = -3*math.Pi/2, 0
		}
	case u.Y == 0:
		if dir > 0 {
			sa, ea = -math.Pi/2, -math.Pi/2
			if u.X > 0 {
				dir = -1
			}
		} else {
			sa, ea = -3*math.Pi/2, -3*math.Pi/2
		}
	default: // u.X == 0
		if dir > 0 {
			sa, ea = math.Pi, math.Pi
		} else {
			sa, ea = 0, 0
		}
	}
	sp, err := s.PointAt(sa)
	if err != nil {
		return fmt.Errorf("transition %q: %w", t.name, err)
	}
	ep, err := e.PointAt(ea)
	if err != nil {
		return fmt.Errorf("transition %q: %w", t.name, err)
	}
	if height == 0 {
		height = dir * sp.Distance(ep) / 4
	}

	arrow, err := graphic.NewArcArrow(sp, ep, height, graphic.WithStyle(t.style), graphic.WithName(t.name))
	if err != nil {
		return fmt.Errorf("transition %q: %w", t.name, err)
	}
	label, err := graphic.NewText(arrow.Arc().MiddleControl(), t.name, graphic.WithStyle(t.style))
	if err != nil {
		return fmt.Errorf("transition %q: %w", t.name, err)
	}
	t.arrow, t.label = arrow, label
	graphic.Logger().Debug("automaton: transition rebuilt", "name", t.name, "from", sp.Coord(), "to", ep.Coord(), "height", height)
	return nil
}

// Draw strokes the arrow and writes the name at the crest of the curve.
// An empty name is not written.
func (t *TransitionCurve) Draw(c graphic.Context) error {
	if c == nil {
		return graphic.ErrNoContext
	}
	if t == nil {
		return &graphic.MissingInputError{Op: "draw transition", Input: "transition"}
	}
	if t.arrow == nil {
		return fmt.Errorf("draw transition %q: %w", t.name, ErrStateUndefined)
	}
	defer t.style.Apply(c).Restore()
	if err := t.arrow.Draw(c); err != nil {
		return err
	}
	if t.name == "" {
		return nil
	}
	return t.label.Draw(c)
}
