package graphic

// Context is the immediate-mode 2D drawing surface supplied by the host,
// modeled on the HTML canvas 2D context. The library never creates or
// resizes a Context; it only issues path, paint, transform and attribute
// calls on it.
//
// Path semantics follow the canvas: BeginPath discards the current path,
// Stroke and Fill paint it without discarding it, and points are
// transformed by the current transform when they are added.
type Context interface {
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	// Arc adds a circular arc centered on (x, y). Angles are radians
	// measured from the positive x axis toward positive y.
	Arc(x, y, radius, startAngle, endAngle float64, counterClockwise bool)
	ClosePath()
	Stroke() error
	Fill() error

	// Save and Restore push and pop the whole drawing state, transform
	// included.
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)

	LineWidth() float64
	SetLineWidth(width float64)
	FillColor() Color
	SetFillColor(c Color)
	StrokeColor() Color
	SetStrokeColor(c Color)
	Font() string
	SetFont(font string)
	TextAlign() TextAlign
	SetTextAlign(a TextAlign)
	TextBaseline() Baseline
	SetTextBaseline(b Baseline)
	LineDash() []float64
	SetLineDash(segments []float64)

	FillText(s string, x, y float64) error
	MeasureText(s string) float64
}

// Surface is a Context that also owns a finite pixel area that can be
// cleared, which is what an Environment needs from its host.
type Surface interface {
	Context
	Width() int
	Height() int
	ClearRect(x, y, w, h float64)
}

// Resizer is implemented by surfaces that can change size while keeping
// their content anchored at the top-left corner.
type Resizer interface {
	Resize(width, height int) error
}

// Drawable is anything that renders itself onto a Context.
type Drawable interface {
	Draw(c Context) error
}

var (
	_ Drawable = (*Point)(nil)
	_ Drawable = (*Line)(nil)
	_ Drawable = (*Circle)(nil)
	_ Drawable = (*Arc)(nil)
	_ Drawable = (*HeadArrow)(nil)
	_ Drawable = (*Arrow)(nil)
	_ Drawable = (*ArcArrow)(nil)
	_ Drawable = (*Text)(nil)

	_ Subject = (*Point)(nil)
	_ Subject = (*Line)(nil)
	_ Subject = (*Circle)(nil)
	_ Subject = (*Arc)(nil)
	_ Subject = (*Arrow)(nil)
	_ Subject = (*ArcArrow)(nil)
	_ Subject = (*Text)(nil)
)
