// Package scene loads the YAML scene files drawn by cmd/shapedemo and
// compiles them into render scenes.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("scene: invalid")

// Document is the root of a scene file.
type Document struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`

	Rings     []Ring     `yaml:"rings"`
	Bubbles   []Bubble   `yaml:"bubbles"`
	Grids     []Grid     `yaml:"grids"`
	Lists     []List     `yaml:"lists"`
	Flows     []Flow     `yaml:"flows"`
	Triangles []Triangle `yaml:"triangles"`
	Cards     []Card     `yaml:"cards"`
	Markers   []Marker   `yaml:"markers"`
}

// Position is the top-left corner of an element on the canvas.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Ring is a progress ring in a square of side Size at (X, Y).
type Ring struct {
	Position `yaml:",inline"`

	Size      float64 `yaml:"size"`
	Current   float64 `yaml:"current"`
	Total     float64 `yaml:"total"`
	Direction string  `yaml:"direction"` // cw, ccw
	Start     string  `yaml:"start"`     // top, bottom, left, right
	Type      string  `yaml:"type"`      // percent, value
	Text      string  `yaml:"text"`
	Thickness float64 `yaml:"thickness"`
	TextSize  float64 `yaml:"text_size"`
	Language  string  `yaml:"language"`

	Color     string `yaml:"color"`
	Track     string `yaml:"track"`
	TextColor string `yaml:"text_color"`
}

// Bubble is a speech bubble. Omitted lengths are derived from the box.
type Bubble struct {
	Position `yaml:",inline"`

	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	Direction    string   `yaml:"direction"`
	ArrowWidth   *float64 `yaml:"arrow_width"`
	ArrowHeight  *float64 `yaml:"arrow_height"`
	ArrowOffset  *float64 `yaml:"arrow_offset"`
	CornerRadius *float64 `yaml:"corner_radius"`
	Color        string   `yaml:"color"`
	Shadow       *Shadow  `yaml:"shadow"`
}

// Shadow enables a bubble shadow. An omitted radius is derived.
type Shadow struct {
	Radius *float64 `yaml:"radius"`
	Dx     float64  `yaml:"dx"`
	Dy     float64  `yaml:"dy"`
	Color  string   `yaml:"color"`
}

// Divider mirrors divider.Spec.
type Divider struct {
	Color     string  `yaml:"color"`
	Thickness float64 `yaml:"thickness"`
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Top       float64 `yaml:"top"`
	Bottom    float64 `yaml:"bottom"`
	Literal   bool    `yaml:"literal"`
}

// Grid is a grid of equal cells with optional dividers on each axis.
type Grid struct {
	Position `yaml:",inline"`

	Items       int      `yaml:"items"`
	Span        int      `yaml:"span"`
	Orientation string   `yaml:"orientation"` // vertical, horizontal
	CellWidth   float64  `yaml:"cell_width"`
	CellHeight  float64  `yaml:"cell_height"`
	CellColor   string   `yaml:"cell_color"`
	Column      *Divider `yaml:"column"`
	Row         *Divider `yaml:"row"`
}

// List is a single-axis list with one divider spec.
type List struct {
	Position `yaml:",inline"`

	Items       int     `yaml:"items"`
	Orientation string  `yaml:"orientation"`
	ItemWidth   float64 `yaml:"item_width"`
	ItemHeight  float64 `yaml:"item_height"`
	ItemColor   string  `yaml:"item_color"`
	Divider     Divider `yaml:"divider"`
}

// Flow is a wrapping flow of boxes.
type Flow struct {
	Position `yaml:",inline"`

	Width       float64    `yaml:"width"`
	Height      float64    `yaml:"height"`
	Orientation string     `yaml:"orientation"`
	Gravity     string     `yaml:"gravity"` // center, start, end
	RowSpace    float64    `yaml:"row_space"`
	ColumnSpace float64    `yaml:"column_space"`
	Padding     float64    `yaml:"padding"`
	ItemColor   string     `yaml:"item_color"`
	Items       []FlowItem `yaml:"items"`
}

// FlowItem is one box of a flow.
type FlowItem struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// Triangle is an isosceles triangle filling a rectangle.
type Triangle struct {
	Position `yaml:",inline"`

	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Direction string  `yaml:"direction"` // up, down, left, right
	Color     string  `yaml:"color"`
}

// Card is a content block on a card sized around it. The card carries the
// default shadow unless Flat is set; Shadow overrides its fields.
type Card struct {
	Position `yaml:",inline"`

	ContentWidth  float64 `yaml:"content_width"`
	ContentHeight float64 `yaml:"content_height"`
	Margin        float64 `yaml:"margin"`
	Padding       float64 `yaml:"padding"`
	CornerRadius  float64 `yaml:"corner_radius"`
	Color         string  `yaml:"color"`
	ContentColor  string  `yaml:"content_color"`
	Flat          bool    `yaml:"flat"`
	Shadow        *Shadow `yaml:"shadow"`
}

// Marker is a corner marker. Omitted lengths are derived from its size.
type Marker struct {
	Position `yaml:",inline"`

	Width        float64  `yaml:"width"`
	Height       float64  `yaml:"height"`
	Padding      float64  `yaml:"padding"`
	Corner       string   `yaml:"corner"` // top-left, top-right, bottom-left, bottom-right
	Style        string   `yaml:"style"`  // plain, rounded, cut
	Text         string   `yaml:"text"`
	TextSize     *float64 `yaml:"text_size"`
	CornerRadius *float64 `yaml:"corner_radius"`
	CutLength    *float64 `yaml:"cut_length"`
	Offset       float64  `yaml:"offset"`
	Color        string   `yaml:"color"`
	TextColor    string   `yaml:"text_color"`
}

// Load reads and validates a scene file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse decodes and validates a scene document. Unknown keys are errors.
func Parse(data []byte) (*Document, error) {
	var d Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("scene: decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks sizes, enum names and colors.
func (d *Document) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, d.Width, d.Height)
	}
	var errs []error
	check := func(what string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", what, err))
		}
	}
	check("background", validColor(d.Background))
	for i, r := range d.Rings {
		what := fmt.Sprintf("rings[%d]", i)
		if r.Size <= 0 {
			check(what, fmt.Errorf("%w: size %v", ErrInvalid, r.Size))
		}
		_, err := ringDirection(r.Direction)
		check(what, err)
		_, err = ringStart(r.Start)
		check(what, err)
		_, err = ringType(r.Type)
		check(what, err)
		_, err = ringLanguage(r.Language)
		check(what, err)
		check(what, validColors(r.Color, r.Track, r.TextColor))
	}
	for i, b := range d.Bubbles {
		what := fmt.Sprintf("bubbles[%d]", i)
		if b.Width <= 0 || b.Height <= 0 {
			check(what, fmt.Errorf("%w: size %vx%v", ErrInvalid, b.Width, b.Height))
		}
		_, err := bubbleDirection(b.Direction)
		check(what, err)
		check(what, validColor(b.Color))
		if b.Shadow != nil {
			check(what, validColor(b.Shadow.Color))
		}
	}
	for i, g := range d.Grids {
		what := fmt.Sprintf("grids[%d]", i)
		_, err := orientation(g.Orientation)
		check(what, err)
		check(what, validColor(g.CellColor))
		for _, dv := range []*Divider{g.Column, g.Row} {
			if dv != nil {
				check(what, validColor(dv.Color))
			}
		}
	}
	for i, l := range d.Lists {
		what := fmt.Sprintf("lists[%d]", i)
		_, err := orientation(l.Orientation)
		check(what, err)
		check(what, validColors(l.ItemColor, l.Divider.Color))
	}
	for i, f := range d.Flows {
		what := fmt.Sprintf("flows[%d]", i)
		_, err := orientation(f.Orientation)
		check(what, err)
		_, err = gravity(f.Gravity)
		check(what, err)
		check(what, validColor(f.ItemColor))
	}
	for i, t := range d.Triangles {
		what := fmt.Sprintf("triangles[%d]", i)
		_, err := triangleDirection(t.Direction)
		check(what, err)
		check(what, validColor(t.Color))
	}
	for i, c := range d.Cards {
		what := fmt.Sprintf("cards[%d]", i)
		if c.ContentWidth < 0 || c.ContentHeight < 0 {
			check(what, fmt.Errorf("%w: content size %vx%v", ErrInvalid, c.ContentWidth, c.ContentHeight))
		}
		check(what, validColors(c.Color, c.ContentColor))
		if c.Shadow != nil {
			check(what, validColor(c.Shadow.Color))
		}
	}
	for i, m := range d.Markers {
		what := fmt.Sprintf("markers[%d]", i)
		if m.Width <= 0 || m.Height <= 0 {
			check(what, fmt.Errorf("%w: size %vx%v", ErrInvalid, m.Width, m.Height))
		}
		_, err := markerPosition(m.Corner)
		check(what, err)
		_, err = markerStyle(m.Style)
		check(what, err)
		check(what, validColors(m.Color, m.TextColor))
	}
	return errors.Join(errs...)
}

// validColor accepts "", #rgb, #rgba, #rrggbb and #rrggbbaa.
func validColor(s string) error {
	if s == "" {
		return nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, s)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return fmt.Errorf("%w: color %q", ErrInvalid, s)
		}
	}
	return nil
}

func validColors(ss ...string) error {
	for _, s := range ss {
		if err := validColor(s); err != nil {
			return err
		}
	}
	return nil
}

// parseColor returns the color for a validated string, or def when empty.
func parseColor(s string, def color.Color) color.Color {
	if s == "" {
		return def
	}
	return gg.Hex(s).Color()
}
