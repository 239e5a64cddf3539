package graphic

import "golang.org/x/text/unicode/norm"

// Text is a label drawn at a Point with a Style's font, alignment,
// baseline and fill color. The label is stored in Unicode NFC form so
// that equal strings measure and render alike.
type Text struct {
	notifier
	point *Point
	text  string
	style *Style

	watch *Subscription
}

// NewText returns a label anchored at p.
// Recognized options: WithStyle.
func NewText(p *Point, text string, opts ...Option) (*Text, error) {
	if p == nil {
		return nil, missing("new text", "point")
	}
	t := &Text{point: p, text: norm.NFC.String(text), style: applyOptions(opts).style}
	t.watch = p.Subscribe(t.notify)
	return t, nil
}

// Text returns the label.
func (t *Text) Text() string { return t.text }

// SetText replaces the label.
func (t *Text) SetText(s string) {
	t.text = norm.NFC.String(s)
	t.notify()
}

// Point returns the anchor.
func (t *Text) Point() *Point { return t.point }

// SetPoint moves the anchor to another Point.
func (t *Text) SetPoint(p *Point) error {
	if p == nil {
		return missing("set text point", "point")
	}
	t.watch.Cancel()
	t.point = p
	t.watch = p.Subscribe(t.notify)
	t.notify()
	return nil
}

// Style returns the Style the label draws with.
func (t *Text) Style() *Style { return t.style }

// SetStyle replaces the Style. A nil Style is ignored.
func (t *Text) SetStyle(s *Style) {
	if s != nil {
		t.style = s
	}
}

// PxLength measures the rendered width of the label on c with the
// label's Style.
func (t *Text) PxLength(c Context) (float64, error) {
	if c == nil {
		return 0, ErrNoContext
	}
	defer t.style.Apply(c).Restore()
	return c.MeasureText(t.text), nil
}

// Draw fills the label.
func (t *Text) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if t == nil {
		return missing("draw text", "text")
	}
	defer t.style.Apply(c).Restore()
	c.BeginPath()
	return c.FillText(t.text, t.point.x, t.point.y)
}
