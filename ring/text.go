package ring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/shapekit"
)

// Placeholder is the token in a custom template replaced by the progress text.
const Placeholder = "%progress"

// ProgressText returns the label for c. Percent renders
// floor(current*100/total) (0 when total is zero); Value renders
// floor(current). A non-empty template has every Placeholder replaced by
// that number.
func ProgressText(c Config, template string) string {
	var n float64
	switch c.Type {
	case Value:
		n = math.Floor(c.current)
	default:
		if c.total != 0 {
			n = math.Floor(c.current * 100 / c.total)
		}
	}
	s := formatInt(int64(n), c.Language)
	if template == "" {
		return s
	}
	return strings.ReplaceAll(template, Placeholder, s)
}

// Text returns the label using the config's own CustomText template.
func (c *Config) Text() string {
	return ProgressText(*c, c.CustomText)
}

func formatInt(n int64, tag language.Tag) string {
	if tag == language.Und {
		return strconv.FormatInt(n, 10)
	}
	return message.NewPrinter(tag).Sprintf("%d", n)
}

// TextLayout positions text so it is horizontally centered on center and
// roughly vertically centered: the baseline sits one third of the font
// height (ascent + descent) below the center. This is an approximation,
// not exact optical centering.
func TextLayout(face font.Face, text string, center shapekit.Point) shapekit.Point {
	width := fixedToFloat(font.MeasureString(face, text))
	m := face.Metrics()
	height := fixedToFloat(m.Ascent + m.Descent)
	return shapekit.Pt(center.X-width/2, center.Y+height/3)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// LabelFont returns the parsed Go Regular font used for ring labels. The
// font is parsed once and shared.
func LabelFont() (*opentype.Font, error) {
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("ring: parse label font: %w", err)
	}
	return f, nil
}

// NewFace returns a Go Regular face at size pixels, suitable for the
// ring label at Geometry.TextSize.
func NewFace(size float64) (font.Face, error) {
	f, err := LabelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("ring: create label face: %w", err)
	}
	return face, nil
}
