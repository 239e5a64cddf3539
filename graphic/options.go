package graphic

import (
	"fmt"
	"strings"
)

// Direction selects which ends of an Arrow or ArcArrow carry a head.
type Direction uint8

const (
	// Right draws a head at the end point only. It is the default.
	Right Direction = iota
	// Left draws a head at the start point only.
	Left
	// Both draws heads at both ends.
	Both
)

var directionNames = [...]string{Right: "right", Left: "left", Both: "both"}

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	if d.valid() {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) valid() bool { return d <= Both }

// hasStart reports whether a head is drawn at the start point.
func (d Direction) hasStart() bool { return d == Left || d == Both }

// hasEnd reports whether a head is drawn at the end point.
func (d Direction) hasEnd() bool { return d == Right || d == Both }

// ParseDirection parses "left", "right" or "both". The empty string
// yields Right.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return Right, nil
	case "left":
		return Left, nil
	case "both":
		return Both, nil
	}
	return Right, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// defaultHeadSize is the arrowhead width and height used by composites.
const defaultHeadSize = 5

var defaultStyle = NewStyle()

// DefaultStyle returns the Style shared by primitives built without
// WithStyle. It is shared: changes to it affect every such primitive.
func DefaultStyle() *Style { return defaultStyle }

// options holds the optional construction parameters of primitives.
type options struct {
	style      *Style
	direction  Direction
	headWidth  float64
	headHeight float64
	name       string
}

func defaultOptions() options {
	return options{
		style:      defaultStyle,
		direction:  Right,
		headWidth:  defaultHeadSize,
		headHeight: defaultHeadSize,
	}
}

// Option configures a primitive at construction. Options that do not apply
// to a primitive are ignored by it.
type Option func(*options)

// WithStyle sets the Style the primitive draws with. A nil Style keeps the
// default.
func WithStyle(s *Style) Option {
	return func(o *options) {
		if s != nil {
			o.style = s
		}
	}
}

// WithDirection sets the head placement of Arrow and ArcArrow.
func WithDirection(d Direction) Option {
	return func(o *options) { o.direction = d }
}

// WithHeadSize sets the arrowhead width and height of Arrow and ArcArrow.
func WithHeadSize(width, height float64) Option {
	return func(o *options) {
		o.headWidth = width
		o.headHeight = height
	}
}

// WithName attaches a descriptive name, reported by the primitive's Name
// method and in debug log records.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
