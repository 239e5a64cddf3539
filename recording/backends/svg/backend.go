// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg replays recordings into a standalone SVG document.
//
// Importing the package registers it under the name "svg".
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
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
		Name:      "svg",
		Extension: "svg",
		New:       func() recording.Backend { return New() },
	})
}

// ErrNotFinished is returned by output methods before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend builds an SVG document.
//
// SVG cannot erase, so ClearRect is approximated: a clear covering the
// whole document drops everything drawn so far, and a partial clear paints
// the background color over the area when one is set.
type Backend struct {
	width, height int
	background    graphic.Color
	body          bytes.Buffer
	doc           []byte
	done          bool
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// Option configures a Backend.
type Option func(*Backend)

// WithBackground fills the document with col before any drawing.
func WithBackground(col graphic.Color) Option {
	return func(b *Backend) { b.background = col }
}

// New returns an SVG backend.
func New(opts ...Option) *Backend {
	b := &Backend{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Begin starts a new document.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid size %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.doc = nil
	b.done = false
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	if b.background.A > 0 {
		fmt.Fprintf(&doc, `  <rect width="%d" height="%d"%s/>`+"\n", b.width, b.height, paint("fill", b.background))
	}
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	b.doc = doc.Bytes()
	b.done = true
	return nil
}

func (b *Backend) StrokePath(path *recording.Path, stroke recording.Stroke) {
	d := pathData(path)
	if d == "" {
		return
	}
	fmt.Fprintf(&b.body, `  <path d="%s" fill="none"%s stroke-width="%s"`, d, paint("stroke", stroke.Color), num(stroke.Width))
	if stroke.IsDashed() {
		parts := make([]string, len(stroke.Dash))
		for i, v := range stroke.Dash {
			parts[i] = num(v)
		}
		fmt.Fprintf(&b.body, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	b.body.WriteString("/>\n")
}

func (b *Backend) FillPath(path *recording.Path, color graphic.Color) {
	d := pathData(path)
	if d == "" {
		return
	}
	fmt.Fprintf(&b.body, `  <path d="%s"%s/>`+"\n", d, paint("fill", color))
}

func (b *Backend) FillText(run recording.TextRun) {
	spec, err := graphic.ParseFont(run.Font)
	if err != nil {
		spec, _ = graphic.ParseFont(graphic.DefaultFont)
	}
	fmt.Fprintf(&b.body, `  <text x="%s" y="%s" font-family="%s" font-size="%s"`,
		num(run.X), num(run.Y), attr(spec.Family), num(spec.Size))
	if spec.Bold {
		b.body.WriteString(` font-weight="bold"`)
	}
	if spec.Italic {
		b.body.WriteString(` font-style="italic"`)
	}
	if a := anchor(run.Align); a != "" {
		fmt.Fprintf(&b.body, ` text-anchor="%s"`, a)
	}
	if bl := baseline(run.Baseline); bl != "" {
		fmt.Fprintf(&b.body, ` dominant-baseline="%s"`, bl)
	}
	b.body.WriteString(paint("fill", run.Color))
	b.body.WriteString(">")
	_ = xml.EscapeText(&b.body, []byte(run.Text))
	b.body.WriteString("</text>\n")
}

func (b *Backend) ClearRect(r recording.Rect) {
	if r.Covers(b.width, b.height) {
		b.body.Reset()
		return
	}
	if b.background.A == 0 {
		graphic.Logger().Debug("svg: partial clear without background skipped", "rect", r)
		return
	}
	fmt.Fprintf(&b.body, `  <rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), paint("fill", b.background))
}

// Bytes returns the finished document.
func (b *Backend) Bytes() ([]byte, error) {
	if !b.done {
		return nil, ErrNotFinished
	}
	return b.doc, nil
}

// WriteTo writes the finished document.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.doc)
	return int64(n), err
}

// SaveToFile writes the finished document to a file.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.doc, 0o644)
}

// pathData converts a path to SVG path data. Arcs become one or two
// elliptical arc commands.
func pathData(path *recording.Path) string {
	if path == nil {
		return ""
	}
	var sb strings.Builder
	open := false
	cmd := func(format string, args ...any) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, format, args...)
	}
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case recording.MoveTo:
			cmd("M%s %s", num(e.P.X), num(e.P.Y))
			open = true
		case recording.LineTo:
			cmd("L%s %s", num(e.P.X), num(e.P.Y))
			open = true
		case recording.CubicTo:
			cmd("C%s %s %s %s %s %s", num(e.C1.X), num(e.C1.Y), num(e.C2.X), num(e.C2.Y), num(e.P.X), num(e.P.Y))
			open = true
		case recording.ArcTo:
			arcData(cmd, e, open)
			open = true
		case recording.Close:
			cmd("Z")
		}
	}
	return sb.String()
}

func arcData(cmd func(string, ...any), a recording.ArcTo, joined bool) {
	at := func(t float64) (string, string) {
		return num(a.Center.X + a.Radius*math.Cos(t)), num(a.Center.Y + a.Radius*math.Sin(t))
	}
	sx, sy := at(a.Start)
	if joined {
		cmd("L%s %s", sx, sy)
	} else {
		cmd("M%s %s", sx, sy)
	}

	sweep := a.End - a.Start
	flag := 1
	if a.CounterClockwise {
		sweep = -sweep
		flag = 0
	}
	const full = 2 * math.Pi
	r := num(a.Radius)
	if math.Abs(sweep) >= full {
		// A single arc command cannot close on itself.
		mx, my := at(a.Start + math.Pi)
		cmd("A%s %s 0 1 %d %s %s", r, r, flag, mx, my)
		cmd("A%s %s 0 1 %d %s %s", r, r, flag, sx, sy)
		return
	}
	sweep = math.Mod(sweep, full)
	if sweep < 0 {
		sweep += full
	}
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	ex, ey := at(a.End)
	cmd("A%s %s 0 %d %d %s %s", r, r, large, flag, ex, ey)
}

func paint(attrName string, c graphic.Color) string {
	s := fmt.Sprintf(` %s="%s"`, attrName, c.Hex())
	if c.A < 1 {
		s += fmt.Sprintf(` %s-opacity="%s"`, attrName, num(c.A))
	}
	return s
}

func anchor(a graphic.TextAlign) string {
	switch a {
	case graphic.AlignCenter:
		return "middle"
	case graphic.AlignRight:
		return "end"
	default:
		return ""
	}
}

func baseline(b graphic.Baseline) string {
	switch b {
	case graphic.BaselineTop:
		return "hanging"
	case graphic.BaselineMiddle:
		return "middle"
	case graphic.BaselineBottom:
		return "text-after-edge"
	default:
		return ""
	}
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func attr(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
