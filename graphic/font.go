package graphic

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFont is the font shorthand used by a default Style.
const DefaultFont = "20px Helvetica"

// FontSpec is the parsed form of a CSS font shorthand such as
// "bold 14px Helvetica".
type FontSpec struct {
	Size   float64 // pixels
	Family string
	Bold   bool
	Italic bool
}

// ParseFont parses a CSS font shorthand. Only px and pt sizes are
// understood; pt is converted at 96 dpi.
func ParseFont(s string) (FontSpec, error) {
	var spec FontSpec
	fields := strings.Fields(s)
	for i, f := range fields {
		switch lf := strings.ToLower(f); {
		case lf == "bold":
			spec.Bold = true
		case lf == "italic" || lf == "oblique":
			spec.Italic = true
		case isFontSize(lf):
			tok, _, _ := strings.Cut(lf, "/") // drop line height
			size, err := strconv.ParseFloat(tok[:len(tok)-2], 64)
			if err != nil || size <= 0 {
				return FontSpec{}, fmt.Errorf("graphic: bad font size in %q", s)
			}
			if strings.HasSuffix(tok, "pt") {
				size = size * 96 / 72
			}
			spec.Size = size
			spec.Family = strings.Trim(strings.Join(fields[i+1:], " "), `"'`)
			return spec, nil
		}
	}
	return FontSpec{}, fmt.Errorf("graphic: no font size in %q", s)
}

func isFontSize(f string) bool {
	tok, _, _ := strings.Cut(f, "/")
	return strings.HasSuffix(tok, "px") || strings.HasSuffix(tok, "pt")
}

// String formats the spec back into shorthand form.
func (f FontSpec) String() string {
	var b strings.Builder
	if f.Italic {
		b.WriteString("italic ")
	}
	if f.Bold {
		b.WriteString("bold ")
	}
	b.WriteString(strconv.FormatFloat(f.Size, 'f', -1, 64))
	b.WriteString("px")
	if f.Family != "" {
		b.WriteByte(' ')
		b.WriteString(f.Family)
	}
	return b.String()
}
