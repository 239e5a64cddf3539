// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster replays recordings onto a surface.Canvas, producing a
// pixel image.
//
// Importing the package registers it under the name "raster":
//
//	import _ "github.com/gogpu/stateautomaton/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	if err := rec.FinishRecording().Playback(backend); err != nil {
//		return err
//	}
//	backend.(recording.FileBackend).SaveToFile("automaton.png")
package raster

import (
	"errors"
	"image"
	"io"

	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/recording"
	"github.com/gogpu/stateautomaton/surface"
)

func init() {
	recording.Register(recording.Format{
		Name:      "raster",
		Extension: "png",
		New:       func() recording.Backend { return NewBackend() },
	})
}

// ErrNotStarted is returned by output methods before a successful Begin.
var ErrNotStarted = errors.New("raster: backend not started")

// Backend renders recordings to pixels.
type Backend struct {
	canvas *surface.Canvas
	opts   []surface.Option
	err    error
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
	_ recording.ImageBackend  = (*Backend)(nil)
)

// NewBackend returns a raster backend. The options configure the canvas
// created by Begin.
func NewBackend(opts ...surface.Option) *Backend {
	return &Backend{opts: opts}
}

// Begin allocates a fresh canvas.
func (b *Backend) Begin(width, height int) error {
	if b.canvas != nil {
		_ = b.canvas.Close()
	}
	b.err = nil
	c, err := surface.NewCanvas(width, height, b.opts...)
	if err != nil {
		b.canvas = nil
		return err
	}
	b.canvas = c
	return nil
}

// End reports the first error met while drawing.
func (b *Backend) End() error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	return b.err
}

func (b *Backend) keep(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

// trace replays path elements onto the canvas. Paths are in device space
// and the canvas transform is never changed, so points pass through.
func (b *Backend) trace(path *recording.Path) {
	c := b.canvas
	c.BeginPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case recording.MoveTo:
			c.MoveTo(e.P.X, e.P.Y)
		case recording.LineTo:
			c.LineTo(e.P.X, e.P.Y)
		case recording.CubicTo:
			c.BezierCurveTo(e.C1.X, e.C1.Y, e.C2.X, e.C2.Y, e.P.X, e.P.Y)
		case recording.ArcTo:
			c.Arc(e.Center.X, e.Center.Y, e.Radius, e.Start, e.End, e.CounterClockwise)
		case recording.Close:
			c.ClosePath()
		}
	}
}

func (b *Backend) StrokePath(path *recording.Path, stroke recording.Stroke) {
	if b.canvas == nil || path == nil {
		return
	}
	b.canvas.SetLineWidth(stroke.Width)
	b.canvas.SetStrokeColor(stroke.Color)
	b.canvas.SetLineDash(stroke.Dash)
	b.trace(path)
	b.keep(b.canvas.Stroke())
}

func (b *Backend) FillPath(path *recording.Path, color graphic.Color) {
	if b.canvas == nil || path == nil {
		return
	}
	b.canvas.SetFillColor(color)
	b.trace(path)
	b.keep(b.canvas.Fill())
}

func (b *Backend) FillText(run recording.TextRun) {
	if b.canvas == nil {
		return
	}
	c := b.canvas
	c.SetFont(run.Font)
	c.SetTextAlign(run.Align)
	c.SetTextBaseline(run.Baseline)
	c.SetFillColor(run.Color)
	b.keep(c.FillText(run.Text, run.X, run.Y))
}

func (b *Backend) ClearRect(r recording.Rect) {
	if b.canvas == nil {
		return
	}
	b.canvas.ClearRect(r.X, r.Y, r.W, r.H)
}

// Canvas returns the canvas being drawn on, or nil before Begin.
func (b *Backend) Canvas() *surface.Canvas { return b.canvas }

// Image returns the rendered image, or nil before Begin.
func (b *Backend) Image() image.Image {
	if b.canvas == nil {
		return nil
	}
	return b.canvas.Image()
}

// WriteTo writes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.canvas == nil {
		return 0, ErrNotStarted
	}
	cw := &countingWriter{w: w}
	err := b.canvas.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile writes the image to a PNG file.
func (b *Backend) SaveToFile(path string) error {
	if b.canvas == nil {
		return ErrNotStarted
	}
	return b.canvas.SavePNG(path)
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
