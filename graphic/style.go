package graphic

import "slices"

// TextAlign is the horizontal anchoring of text relative to its point.
type TextAlign uint8

const (
	AlignStart TextAlign = iota // canvas default; left in left-to-right text
	AlignLeft
	AlignCenter
	AlignRight
)

var textAlignNames = [...]string{
	AlignStart:  "start",
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the canvas name of the alignment.
func (a TextAlign) String() string {
	if int(a) < len(textAlignNames) {
		return textAlignNames[a]
	}
	return "start"
}

// Baseline is the vertical anchoring of text relative to its point.
type Baseline uint8

const (
	BaselineAlphabetic Baseline = iota // canvas default
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

var baselineNames = [...]string{
	BaselineAlphabetic: "alphabetic",
	BaselineTop:        "top",
	BaselineMiddle:     "middle",
	BaselineBottom:     "bottom",
}

// String returns the canvas name of the baseline.
func (b Baseline) String() string {
	if int(b) < len(baselineNames) {
		return baselineNames[b]
	}
	return "alphabetic"
}

// LineStyle selects solid or dashed strokes.
type LineStyle uint8

const (
	LineNormal LineStyle = iota
	LineDashed
)

// DashPattern returns the canvas dash segments for the line style:
// [5 15] for dashed, empty for normal.
func (l LineStyle) DashPattern() []float64 {
	if l == LineDashed {
		return []float64{5, 15}
	}
	return []float64{}
}

// Style bundles the context attributes a primitive draws with.
// Apply installs them on a Context and returns a Scope that puts the
// previous values back.
type Style struct {
	lineWidth   float64
	fillColor   Color
	strokeColor Color
	font        string
	textAlign   TextAlign
	baseline    Baseline
	lineStyle   LineStyle

	open []*Scope // scopes not yet restored, oldest first
}

// StyleOption configures a Style.
type StyleOption func(*Style)

// WithLineWidth sets the stroke width. Non-positive or non-finite widths
// are ignored.
func WithLineWidth(w float64) StyleOption {
	return func(s *Style) { s.SetLineWidth(w) }
}

// WithFillColor sets the fill color.
func WithFillColor(c Color) StyleOption {
	return func(s *Style) { s.fillColor = c }
}

// WithStrokeColor sets the stroke color.
func WithStrokeColor(c Color) StyleOption {
	return func(s *Style) { s.strokeColor = c }
}

// WithFont sets the CSS font shorthand.
func WithFont(font string) StyleOption {
	return func(s *Style) { s.font = font }
}

// WithTextAlign sets the text alignment.
func WithTextAlign(a TextAlign) StyleOption {
	return func(s *Style) { s.textAlign = a }
}

// WithBaseline sets the text baseline.
func WithBaseline(b Baseline) StyleOption {
	return func(s *Style) { s.baseline = b }
}

// WithLineStyle sets solid or dashed strokes.
func WithLineStyle(l LineStyle) StyleOption {
	return func(s *Style) { s.lineStyle = l }
}

// NewStyle returns a Style with the defaults: line width 1, white fill,
// black stroke, "20px Helvetica", left aligned, top baseline, solid lines.
func NewStyle(opts ...StyleOption) *Style {
	s := &Style{
		lineWidth:   1,
		fillColor:   White,
		strokeColor: Black,
		font:        DefaultFont,
		textAlign:   AlignLeft,
		baseline:    BaselineTop,
		lineStyle:   LineNormal,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Clone returns a copy without any open scopes.
func (s *Style) Clone() *Style {
	c := *s
	c.open = nil
	return &c
}

func (s *Style) LineWidth() float64     { return s.lineWidth }
func (s *Style) FillColor() Color       { return s.fillColor }
func (s *Style) StrokeColor() Color     { return s.strokeColor }
func (s *Style) Font() string           { return s.font }
func (s *Style) TextAlign() TextAlign   { return s.textAlign }
func (s *Style) Baseline() Baseline     { return s.baseline }
func (s *Style) LineStyle() LineStyle   { return s.lineStyle }
func (s *Style) SetFillColor(c Color)   { s.fillColor = c }
func (s *Style) SetStrokeColor(c Color) { s.strokeColor = c }
func (s *Style) SetFont(font string)    { s.font = font }
func (s *Style) SetTextAlign(a TextAlign) {
	s.textAlign = a
}
func (s *Style) SetBaseline(b Baseline) { s.baseline = b }
func (s *Style) SetLineStyle(l LineStyle) {
	s.lineStyle = l
}

// SetLineWidth sets the stroke width. Non-positive or non-finite widths
// are ignored.
func (s *Style) SetLineWidth(w float64) {
	if w > 0 && finite(w) {
		s.lineWidth = w
	}
}

// Apply snapshots the attributes of c that the Style controls, then
// overwrites them with the Style's values. The returned Scope restores
// the snapshot; the usual form is
//
//	defer style.Apply(c).Restore()
//
// Scopes nest: applying the same or another Style again before restoring
// takes a new snapshot, and restoring in LIFO order returns c to exactly
// its original state.
func (s *Style) Apply(c Context) *Scope {
	sc := &Scope{
		ctx:         c,
		style:       s,
		lineWidth:   c.LineWidth(),
		fillColor:   c.FillColor(),
		strokeColor: c.StrokeColor(),
		font:        c.Font(),
		textAlign:   c.TextAlign(),
		baseline:    c.TextBaseline(),
		dash:        slices.Clone(c.LineDash()),
	}
	s.open = append(s.open, sc)

	c.SetLineWidth(s.lineWidth)
	c.SetFillColor(s.fillColor)
	c.SetStrokeColor(s.strokeColor)
	c.SetTextBaseline(s.baseline)
	c.SetTextAlign(s.textAlign)
	c.SetFont(s.font)
	c.SetLineDash(s.lineStyle.DashPattern())
	return sc
}

// Restore restores the most recent unrestored Scope this Style opened on c.
// It is a no-op when there is none.
func (s *Style) Restore(c Context) {
	for i := len(s.open) - 1; i >= 0; i-- {
		if s.open[i].ctx == c {
			s.open[i].Restore()
			return
		}
	}
}

// Scope is the transient snapshot taken by Style.Apply.
type Scope struct {
	ctx   Context
	style *Style

	lineWidth   float64
	fillColor   Color
	strokeColor Color
	font        string
	textAlign   TextAlign
	baseline    Baseline
	dash        []float64

	restored bool
}

// Restore writes the snapshot back to the context. Calling it more than
// once has no further effect.
func (sc *Scope) Restore() {
	if sc == nil || sc.restored {
		return
	}
	sc.restored = true
	c := sc.ctx
	c.SetLineWidth(sc.lineWidth)
	c.SetFillColor(sc.fillColor)
	c.SetStrokeColor(sc.strokeColor)
	c.SetTextBaseline(sc.baseline)
	c.SetTextAlign(sc.textAlign)
	c.SetFont(sc.font)
	c.SetLineDash(sc.dash)

	open := sc.style.open
	if i := slices.Index(open, sc); i >= 0 {
		sc.style.open = slices.Delete(open, i, i+1)
	}
}
