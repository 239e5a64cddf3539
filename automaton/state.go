// Package automaton draws the nodes and edges of a state automaton on top
// of the graphic primitives.
//
// A State is placed on a grid cell, usually by an Environment, and becomes
// drawable once Define gives it a center and a size. A TransitionCurve
// joins two States with a curved arrow and follows them when they move.
package automaton

import (
	"errors"
	"fmt"

	"github.com/gogpu/stateautomaton/graphic"
)

// ErrStateUndefined is returned when a State is drawn, or a transition
// built on it is drawn, before the State has been given a center.
var ErrStateUndefined = errors.New("automaton: state has no center")

// Position is the grid cell of a State, zero-based.
type Position struct {
	Col, Row int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Col, p.Row)
}

// State is a node of the automaton: a circle with its name written in the
// middle. State is a graphic.Subject; it notifies after Define and whenever
// its center moves.
type State struct {
	graphic.Notifier
	name     string
	position Position
	style    *graphic.Style

	center *graphic.Point
	size   float64
	circle *graphic.Circle
	label  *graphic.Text

	watch *graphic.Subscription
}

// stateStyle is the look of states and transitions: black strokes and
// text, labels centered on their anchor.
func stateStyle() *graphic.Style {
	return graphic.NewStyle(
		graphic.WithStrokeColor(graphic.Black),
		graphic.WithFillColor(graphic.Black),
		graphic.WithTextAlign(graphic.AlignCenter),
		graphic.WithBaseline(graphic.BaselineMiddle),
	)
}

// NewState returns an undefined State named name for the given cell.
func NewState(name string, pos Position) *State {
	return &State{name: name, position: pos, style: stateStyle()}
}

func (s *State) Name() string           { return s.name }
func (s *State) Position() Position     { return s.position }
func (s *State) Style() *graphic.Style  { return s.style }
func (s *State) Center() *graphic.Point { return s.center }
func (s *State) Size() float64          { return s.size }

// Circle returns the outline, or nil before Define.
func (s *State) Circle() *graphic.Circle { return s.circle }

// Label returns the name label, or nil before Define.
func (s *State) Label() *graphic.Text { return s.label }

// Defined reports whether Define has succeeded.
func (s *State) Defined() bool { return s != nil && s.circle != nil }

// Define places the State: its circle of radius size is centered on
// center and the name is written there. The State keeps center itself, so
// moving that Point moves the State.
func (s *State) Define(center *graphic.Point, size float64) error {
	if center == nil {
		return &graphic.MissingInputError{Op: "define state " + s.name, Input: "center"}
	}
	circle, err := graphic.NewCircle(center, size, graphic.WithStyle(s.style))
	if err != nil {
		return fmt.Errorf("define state %q: %w", s.name, err)
	}
	label, err := graphic.NewText(center, s.name, graphic.WithStyle(s.style))
	if err != nil {
		return fmt.Errorf("define state %q: %w", s.name, err)
	}
	s.watch.Cancel()
	s.center, s.size = center, size
	s.circle, s.label = circle, label
	s.watch = circle.Subscribe(s.Notify)
	graphic.Logger().Debug("automaton: state defined", "name", s.name, "center", center.Coord(), "size", size)
	s.Notify()
	return nil
}

// Draw strokes the circle and writes the name.
func (s *State) Draw(c graphic.Context) error {
	if c == nil {
		return graphic.ErrNoContext
	}
	if s == nil {
		return &graphic.MissingInputError{Op: "draw state", Input: "state"}
	}
	if !s.Defined() {
		return fmt.Errorf("draw state %q: %w", s.name, ErrStateUndefined)
	}
	defer s.style.Apply(c).Restore()
	if err := s.circle.Draw(c); err != nil {
		return err
	}
	return s.label.Draw(c)
}
