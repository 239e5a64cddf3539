// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"slices"

	"github.com/gogpu/stateautomaton/graphic"
)

// PathElement is one segment of a Path: MoveTo, LineTo, CubicTo, ArcTo or
// Close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ P graphic.Coord }

// LineTo adds a straight segment.
type LineTo struct{ P graphic.Coord }

// CubicTo adds a cubic Bezier segment.
type CubicTo struct{ C1, C2, P graphic.Coord }

// ArcTo adds a circular arc around Center from angle Start to End. As on
// a canvas, a line joins the current point to the start of the arc.
type ArcTo struct {
	Center           graphic.Coord
	Radius           float64
	Start, End       float64
	CounterClockwise bool
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (ArcTo) isPathElement()   {}
func (Close) isPathElement()   {}

// Path is a sequence of path elements in device coordinates.
type Path struct {
	elems []PathElement
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) add(e PathElement) { p.elems = append(p.elems, e) }

// Elements returns the elements in order. The slice must not be modified.
func (p *Path) Elements() []PathElement { return p.elems }

// Len returns the number of elements.
func (p *Path) Len() int { return len(p.elems) }

// Clone returns an independent copy.
func (p *Path) Clone() *Path {
	return &Path{elems: slices.Clone(p.elems)}
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	clear(p.elems)
	p.elems = p.elems[:0]
}
