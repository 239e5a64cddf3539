// Package environment owns a drawing surface and the elements drawn on
// it. An Environment lays states out on a grid, clears and redraws its
// surface, and grows the grid (and a resizable surface) on demand.
package environment

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/gogpu/stateautomaton/automaton"
	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/pattern"
)

var (
	// ErrNoGrid is returned by operations that need a grid before
	// MakeGrid has been called.
	ErrNoGrid = errors.New("environment: no grid")

	// ErrOutsideGrid is returned when a state is placed on a cell the
	// grid does not have.
	ErrOutsideGrid = errors.New("environment: position outside the grid")
)

// Without antialiasing, one-pixel lines are snapped to pixel centers by
// shifting the surface half a pixel and drawing half-width lines.
const (
	pixelOffset    = 0.5
	crispLineWidth = 0.5
)

// Option configures an Environment.
type Option func(*config)

type config struct {
	antialiasing bool
	rows, cols   int
}

// WithAntialiasing turns antialiasing on or off. It is on by default.
func WithAntialiasing(on bool) Option {
	return func(c *config) { c.antialiasing = on }
}

// WithGrid makes a grid of rows × cols cells covering the surface.
func WithGrid(rows, cols int) Option {
	return func(c *config) { c.rows, c.cols = rows, cols }
}

// Environment draws a list of elements onto a surface it owns.
// It is not safe for concurrent use.
type Environment struct {
	surface      graphic.Surface
	antialiasing bool
	grid         *pattern.Grid
	elements     []graphic.Drawable
}

// New returns an Environment drawing on s.
func New(s graphic.Surface, opts ...Option) (*Environment, error) {
	if s == nil {
		return nil, &graphic.MissingInputError{Op: "new environment", Input: "surface"}
	}
	cfg := config{antialiasing: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Environment{surface: s, antialiasing: cfg.antialiasing}
	if !e.antialiasing {
		s.Translate(pixelOffset, pixelOffset)
		s.SetLineWidth(crispLineWidth)
	}
	if cfg.rows != 0 || cfg.cols != 0 {
		if err := e.MakeGrid(cfg.rows, cfg.cols); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Surface returns the surface drawn on.
func (e *Environment) Surface() graphic.Surface { return e.surface }

// Context returns the surface as a drawing context.
func (e *Environment) Context() graphic.Context { return e.surface }

func (e *Environment) Width() int          { return e.surface.Width() }
func (e *Environment) Height() int         { return e.surface.Height() }
func (e *Environment) Antialiasing() bool  { return e.antialiasing }
func (e *Environment) Grid() *pattern.Grid { return e.grid }

// Elements returns the elements in drawing order.
func (e *Environment) Elements() []graphic.Drawable { return e.elements }

// AddElement appends d to the drawing list.
func (e *Environment) AddElement(d graphic.Drawable) error {
	if isNil(d) {
		return &graphic.MissingInputError{Op: "add element", Input: "element"}
	}
	e.elements = append(e.elements, d)
	return nil
}

// AddElements appends every element of ds, or none of them if one is nil.
func (e *Environment) AddElements(ds ...graphic.Drawable) error {
	for i, d := range ds {
		if isNil(d) {
			return &graphic.MissingInputError{Op: "add elements", Input: fmt.Sprintf("element %d", i)}
		}
	}
	e.elements = append(e.elements, ds...)
	return nil
}

// isNil reports whether d is nil or a nil pointer held in the interface.
func isNil(d graphic.Drawable) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// MakeGrid replaces the grid with rows × cols cells covering the surface.
func (e *Environment) MakeGrid(rows, cols int) error {
	g, err := pattern.NewGrid(rows, cols, float64(e.Width()), float64(e.Height()))
	if err != nil {
		return err
	}
	e.grid = g
	return nil
}

// AddState defines s in the middle of its grid cell, with a radius of a
// quarter of the cell's smaller side, and appends it to the drawing list.
func (e *Environment) AddState(s *automaton.State) error {
	if s == nil {
		return &graphic.MissingInputError{Op: "add state", Input: "state"}
	}
	if e.grid == nil {
		return ErrNoGrid
	}
	pos := s.Position()
	if !e.grid.Contains(pos.Col, pos.Row) {
		return fmt.Errorf("add state %q at %v: %w", s.Name(), pos, ErrOutsideGrid)
	}
	cell := e.grid.CellAt(pos.Col, pos.Row)
	if err := s.Define(cell.Middle, math.Min(cell.Size.Width, cell.Size.Height)/4); err != nil {
		return err
	}
	return e.AddElement(s)
}

// AddStates adds each state in turn and stops at the first failure.
func (e *Environment) AddStates(states ...*automaton.State) error {
	for _, s := range states {
		if err := e.AddState(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *Environment) clearSurface() {
	if !e.antialiasing {
		e.surface.Translate(-pixelOffset, -pixelOffset)
	}
	e.surface.ClearRect(0, 0, float64(e.Width()), float64(e.Height()))
	if !e.antialiasing {
		e.surface.Translate(pixelOffset, pixelOffset)
	}
}

// Clear empties the drawing list and the surface.
func (e *Environment) Clear() {
	e.elements = nil
	e.clearSurface()
}

// Redraw clears the surface and draws every element again, leaving the
// surface state as it found it.
func (e *Environment) Redraw() error {
	e.surface.Save()
	defer e.surface.Restore()
	e.clearSurface()
	return e.Draw()
}

// Draw draws every element in order. An element that fails is logged and
// skipped; the failures are returned together.
func (e *Environment) Draw() error {
	var errs []error
	for i, d := range e.elements {
		if err := d.Draw(e.surface); err != nil {
			graphic.Logger().Warn("environment: element not drawn", "index", i, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ExtendCol adds a column to the grid and widens a resizable surface to
// match. Existing content keeps its place.
func (e *Environment) ExtendCol() error {
	if e.grid == nil {
		return ErrNoGrid
	}
	e.grid.ExtendCol()
	return e.fitSurface()
}

// ExtendRow adds a row to the grid and heightens a resizable surface to
// match.
func (e *Environment) ExtendRow() error {
	if e.grid == nil {
		return ErrNoGrid
	}
	e.grid.ExtendRow()
	return e.fitSurface()
}

func (e *Environment) fitSurface() error {
	r, ok := e.surface.(graphic.Resizer)
	if !ok {
		graphic.Logger().Debug("environment: surface not resizable", "grid", e.grid.Offset())
		return nil
	}
	w, h := int(math.Ceil(e.grid.Width())), int(math.Ceil(e.grid.Height()))
	if err := r.Resize(w, h); err != nil {
		return fmt.Errorf("environment: resize to %dx%d: %w", w, h, err)
	}
	return nil
}
