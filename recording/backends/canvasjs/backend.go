// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvasjs replays recordings into an HTML page that redraws them
// with the browser's 2D canvas API. Screenshot rasterizes such a page in
// headless Chrome.
//
// Importing the package registers it under the name "canvasjs".
package canvasjs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/stateautomaton/graphic"
	"github.com/gogpu/stateautomaton/recording"
)

func init() {
	recording.Register(recording.Format{
		Name:      "canvasjs",
		Extension: "html",
		New:       func() recording.Backend { return New() },
	})
}

// CanvasID is the id of the canvas element in generated pages.
const CanvasID = "automaton"

// ErrNotFinished is returned by output methods before End.
var ErrNotFinished = errors.New("canvasjs: page not finished")

// Backend builds an HTML page with an inline drawing script.
type Backend struct {
	title         string
	width, height int
	script        bytes.Buffer
	page          []byte
	done          bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithTitle sets the page title.
func WithTitle(title string) Option {
	return func(b *Backend) { b.title = title }
}

// New returns a canvasjs backend.
func New(opts ...Option) *Backend {
	b := &Backend{title: "automaton"}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new page.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvasjs: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.script.Reset()
	b.page = nil
	b.done = false
	return nil
}

// End assembles the page.
func (b *Backend) End() error {
	var p bytes.Buffer
	p.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&p, "<title>%s</title>\n", html.EscapeString(b.title))
	p.WriteString("<style>body{margin:0}canvas{display:block}</style>\n</head>\n<body>\n")
	fmt.Fprintf(&p, "<canvas id=%q width=\"%d\" height=\"%d\"></canvas>\n", CanvasID, b.width, b.height)
	p.WriteString("<script>\n")
	fmt.Fprintf(&p, "const ctx = document.getElementById(%q).getContext(\"2d\");\n", CanvasID)
	p.Write(b.script.Bytes())
	p.WriteString("</script>\n</body>\n</html>\n")
	b.page = p.Bytes()
	b.done = true
	return nil
}

func (b *Backend) line(format string, args ...any) {
	fmt.Fprintf(&b.script, format, args...)
	b.script.WriteByte('\n')
}

func (b *Backend) trace(path *recording.Path) {
	b.line("ctx.beginPath();")
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case recording.MoveTo:
			b.line("ctx.moveTo(%s, %s);", num(e.P.X), num(e.P.Y))
		case recording.LineTo:
			b.line("ctx.lineTo(%s, %s);", num(e.P.X), num(e.P.Y))
		case recording.CubicTo:
			b.line("ctx.bezierCurveTo(%s, %s, %s, %s, %s, %s);",
				num(e.C1.X), num(e.C1.Y), num(e.C2.X), num(e.C2.Y), num(e.P.X), num(e.P.Y))
		case recording.ArcTo:
			b.line("ctx.arc(%s, %s, %s, %s, %s, %t);",
				num(e.Center.X), num(e.Center.Y), num(e.Radius), angle(e.Start), angle(e.End), e.CounterClockwise)
		case recording.Close:
			b.line("ctx.closePath();")
		}
	}
}

func (b *Backend) StrokePath(path *recording.Path, stroke recording.Stroke) {
	if path == nil || path.Len() == 0 {
		return
	}
	b.line("ctx.lineWidth = %s;", num(stroke.Width))
	b.line("ctx.strokeStyle = %s;", quote(stroke.Color.CSS()))
	dash := make([]string, len(stroke.Dash))
	for i, v := range stroke.Dash {
		dash[i] = num(v)
	}
	b.line("ctx.setLineDash([%s]);", strings.Join(dash, ", "))
	b.trace(path)
	b.line("ctx.stroke();")
}

func (b *Backend) FillPath(path *recording.Path, color graphic.Color) {
	if path == nil || path.Len() == 0 {
		return
	}
	b.line("ctx.fillStyle = %s;", quote(color.CSS()))
	b.trace(path)
	b.line("ctx.fill();")
}

func (b *Backend) FillText(run recording.TextRun) {
	b.line("ctx.font = %s;", quote(run.Font))
	b.line("ctx.textAlign = %s;", quote(run.Align.String()))
	b.line("ctx.textBaseline = %s;", quote(run.Baseline.String()))
	b.line("ctx.fillStyle = %s;", quote(run.Color.CSS()))
	b.line("ctx.fillText(%s, %s, %s);", quote(run.Text), num(run.X), num(run.Y))
}

func (b *Backend) ClearRect(r recording.Rect) {
	b.line("ctx.clearRect(%s, %s, %s, %s);", num(r.X), num(r.Y), num(r.W), num(r.H))
}

// Bytes returns the finished page.
func (b *Backend) Bytes() ([]byte, error) {
	if !b.done {
		return nil, ErrNotFinished
	}
	return b.page, nil
}

// WriteTo writes the finished page.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.page)
	return int64(n), err
}

// SaveToFile writes the finished page to a file.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.page, 0o644)
}

// quote returns s as a JavaScript string literal. JSON strings are valid
// JavaScript; "<" is escaped so the text cannot close the script element.
func quote(s string) string {
	q, _ := json.Marshal(s)
	return string(q)
}

func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// angle keeps full precision so full circles stay closed.
func angle(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
