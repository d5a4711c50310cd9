package scene

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"

	"github.com/gogpu/shapekit"
	"github.com/gogpu/shapekit/bubble"
	"github.com/gogpu/shapekit/card"
	"github.com/gogpu/shapekit/divider"
	"github.com/gogpu/shapekit/flow"
	"github.com/gogpu/shapekit/marker"
	"github.com/gogpu/shapekit/render"
	"github.com/gogpu/shapekit/ring"
)

// Colors used when a scene leaves one out.
var (
	defaultAccent  = color.RGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xff}
	defaultTrack   = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	defaultText    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	defaultCell    = color.RGBA{R: 0xf4, G: 0xf4, B: 0xf4, A: 0xff}
	defaultDivider = color.RGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	defaultMarker  = color.RGBA{R: 0xff, A: 0xff}
)

const cellRadius = 4

// Build compiles d into a render scene. Elements are drawn in file order
// by kind: rings, bubbles, grids, lists, flows, triangles, cards, markers.
func (d *Document) Build() (*render.Scene, error) {
	s := render.NewScene(d.Width, d.Height)
	s.SetBackground(parseColor(d.Background, nil))

	for i, r := range d.Rings {
		if err := addRing(s, r); err != nil {
			return nil, fmt.Errorf("rings[%d]: %w", i, err)
		}
	}
	for i, b := range d.Bubbles {
		if err := addBubble(s, b); err != nil {
			return nil, fmt.Errorf("bubbles[%d]: %w", i, err)
		}
	}
	for i, g := range d.Grids {
		if err := addGrid(s, g); err != nil {
			return nil, fmt.Errorf("grids[%d]: %w", i, err)
		}
	}
	for i, l := range d.Lists {
		if err := addList(s, l); err != nil {
			return nil, fmt.Errorf("lists[%d]: %w", i, err)
		}
	}
	for i, f := range d.Flows {
		if err := addFlow(s, f); err != nil {
			return nil, fmt.Errorf("flows[%d]: %w", i, err)
		}
	}
	for i, t := range d.Triangles {
		if err := addTriangle(s, t); err != nil {
			return nil, fmt.Errorf("triangles[%d]: %w", i, err)
		}
	}
	for _, c := range d.Cards {
		addCard(s, c)
	}
	for i, m := range d.Markers {
		if err := addMarker(s, m); err != nil {
			return nil, fmt.Errorf("markers[%d]: %w", i, err)
		}
	}

	shapekit.Logger().Info("scene: built",
		"width", d.Width, "height", d.Height, "commands", s.CommandCount())
	return s, nil
}

func (p Position) transform() shapekit.Matrix {
	return shapekit.Translate(p.X, p.Y)
}

func addRing(s *render.Scene, r Ring) error {
	dir, err := ringDirection(r.Direction)
	if err != nil {
		return err
	}
	start, err := ringStart(r.Start)
	if err != nil {
		return err
	}
	typ, err := ringType(r.Type)
	if err != nil {
		return err
	}
	lang, err := ringLanguage(r.Language)
	if err != nil {
		return err
	}
	total := r.Total
	if total == 0 {
		total = 100
	}
	cfg := ring.New(
		ring.WithProgress(r.Current, total),
		ring.WithDirection(dir),
		ring.WithStart(start),
		ring.WithType(typ),
		ring.WithCustomText(r.Text),
		ring.WithThickness(r.Thickness),
		ring.WithTextSize(r.TextSize),
		ring.WithLanguage(lang),
	)

	geo := ring.Layout(cfg, r.Size, r.Size)
	at := r.transform()
	s.Stroke(geo.Background.Transform(at), parseColor(r.Track, defaultTrack), geo.Thickness)
	if geo.Arc.Sweep != 0 {
		s.Stroke(geo.Progress.Transform(at), parseColor(r.Color, defaultAccent), geo.Thickness)
	}

	text := cfg.Text()
	face, err := ring.NewFace(geo.TextSize)
	if err != nil {
		return err
	}
	defer face.Close()
	f, err := ring.LabelFont()
	if err != nil {
		return err
	}
	label, err := render.GlyphPath(f, geo.TextSize, text, ring.TextLayout(face, text, geo.Center))
	if err != nil {
		return err
	}
	s.Fill(label.Transform(at), parseColor(r.TextColor, defaultText))
	return nil
}

func addBubble(s *render.Scene, b Bubble) error {
	dir, err := bubbleDirection(b.Direction)
	if err != nil {
		return err
	}
	c := bubble.NewConfig(b.Width, b.Height)
	c.Direction = dir
	setIf(&c.ArrowWidth, b.ArrowWidth)
	setIf(&c.ArrowHeight, b.ArrowHeight)
	setIf(&c.ArrowOffset, b.ArrowOffset)
	setIf(&c.CornerRadius, b.CornerRadius)
	if sh := b.Shadow; sh != nil {
		c.Shadow.Enabled = true
		setIf(&c.Shadow.Radius, sh.Radius)
		c.Shadow.Dx, c.Shadow.Dy = sh.Dx, sh.Dy
		c.Shadow.Color = parseColor(sh.Color, nil)
	}

	r := bubble.Resolve(c)
	outline := bubble.BuildOutline(r).Transform(b.transform())
	fill := parseColor(b.Color, color.White)
	if sh, ok := r.ShadowLayer(); ok {
		s.FillShadow(outline, fill, render.Shadow{Radius: sh.Radius, Dx: sh.Dx, Dy: sh.Dy, Color: sh.Color})
		return nil
	}
	s.Fill(outline, fill)
	return nil
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func dividerSpec(d *Divider) *divider.Spec {
	if d == nil {
		return nil
	}
	return &divider.Spec{
		Color:     parseColor(d.Color, defaultDivider),
		Thickness: d.Thickness,
		Left:      d.Left,
		Right:     d.Right,
		Top:       d.Top,
		Bottom:    d.Bottom,
		Literal:   d.Literal,
	}
}

func addGrid(s *render.Scene, g Grid) error {
	o, err := orientation(g.Orientation)
	if err != nil {
		return err
	}
	dg := divider.Grid{
		Column:      dividerSpec(g.Column),
		Row:         dividerSpec(g.Row),
		SpanCount:   g.Span,
		Orientation: o,
	}
	if err := dg.Validate(g.Items); err != nil {
		return err
	}
	placements := dg.Arrange(g.Items, g.CellWidth, g.CellHeight)
	addCells(s, placements, g.transform(), parseColor(g.CellColor, defaultCell))
	addStrokes(s, dg.Draw(placements), g.transform())
	return nil
}

func addList(s *render.Scene, l List) error {
	o, err := orientation(l.Orientation)
	if err != nil {
		return err
	}
	lin := divider.Linear{Spec: *dividerSpec(&l.Divider), Orientation: o}
	if err := lin.Validate(l.Items); err != nil {
		return err
	}
	placements := lin.Arrange(l.Items, l.ItemWidth, l.ItemHeight)
	addCells(s, placements, l.transform(), parseColor(l.ItemColor, defaultCell))
	addStrokes(s, lin.Draw(placements), l.transform())
	return nil
}

func addCells(s *render.Scene, placements []divider.Placement, at shapekit.Matrix, c color.Color) {
	for _, p := range placements {
		b := p.Bounds
		cell := shapekit.BuildPath().RoundRect(b.Left, b.Top, b.Width(), b.Height(), cellRadius).Build()
		s.Fill(cell.Transform(at), c)
	}
}

func addStrokes(s *render.Scene, strokes []divider.Stroke, at shapekit.Matrix) {
	for _, st := range strokes {
		l := shapekit.Line{P1: at.TransformPoint(st.P1), P2: at.TransformPoint(st.P2)}
		s.StrokeLine(l, st.Color, st.Thickness)
	}
}

func addFlow(s *render.Scene, f Flow) error {
	o, err := orientation(f.Orientation)
	if err != nil {
		return err
	}
	g, err := gravity(f.Gravity)
	if err != nil {
		return err
	}
	lay := flow.Layout{
		Orientation: o,
		Gravity:     g,
		RowSpace:    f.RowSpace,
		ColumnSpace: f.ColumnSpace,
		Padding:     shapekit.UniformInsets(f.Padding),
	}
	if err := lay.Validate(); err != nil {
		return err
	}
	items := make([]flow.Item, len(f.Items))
	for i, it := range f.Items {
		items[i] = flow.Item{Width: it.Width, Height: it.Height, Margin: shapekit.UniformInsets(it.Margin)}
	}
	at := f.transform()
	c := parseColor(f.ItemColor, defaultAccent)
	for _, r := range lay.Place(items, lay.Measure(items, f.Width, f.Height)) {
		box := shapekit.BuildPath().RoundRect(r.Left, r.Top, r.Width(), r.Height(), cellRadius).Build()
		s.Fill(box.Transform(at), c)
	}
	return nil
}

func addTriangle(s *render.Scene, t Triangle) error {
	dir, err := triangleDirection(t.Direction)
	if err != nil {
		return err
	}
	p := shapekit.Triangle(shapekit.RectWH(t.X, t.Y, t.Width, t.Height), dir)
	s.Fill(p, parseColor(t.Color, defaultAccent))
	return nil
}

func addCard(s *render.Scene, c Card) {
	cfg := card.NewConfig()
	cfg.CornerRadius = c.CornerRadius
	cfg.ShadowEnabled = !c.Flat
	if sh := c.Shadow; sh != nil {
		setIf(&cfg.ShadowRadius, sh.Radius)
		cfg.ShadowDx, cfg.ShadowDy = sh.Dx, sh.Dy
		cfg.ShadowColor = parseColor(sh.Color, card.DefaultShadowColor)
	}

	margin := shapekit.UniformInsets(c.Margin)
	padding := shapekit.UniformInsets(c.Padding)
	w, h := card.Measure(c.ContentWidth, c.ContentHeight, margin, padding, cfg)
	at := c.transform()

	outline := card.Outline(w, h, cfg).Transform(at)
	fill := parseColor(c.Color, color.White)
	if sh, ok := cfg.ShadowLayer(); ok {
		s.FillShadow(outline, fill, render.Shadow{Radius: sh.Radius, Dx: sh.Dx, Dy: sh.Dy, Color: sh.Color})
	} else {
		s.Fill(outline, fill)
	}

	r := card.Layout(c.ContentWidth, c.ContentHeight, margin, padding, cfg)
	content := shapekit.BuildPath().RoundRect(r.Left, r.Top, r.Width(), r.Height(), cellRadius).Build()
	s.Fill(content.Transform(at), parseColor(c.ContentColor, defaultCell))
}

func addMarker(s *render.Scene, m Marker) error {
	pos, err := markerPosition(m.Corner)
	if err != nil {
		return err
	}
	style, err := markerStyle(m.Style)
	if err != nil {
		return err
	}
	c := marker.NewConfig(m.Width, m.Height)
	c.Padding = shapekit.UniformInsets(m.Padding)
	c.Position = pos
	c.Style = style
	c.Text = m.Text
	c.Offset = m.Offset
	setIf(&c.TextSize, m.TextSize)
	setIf(&c.CornerRadius, m.CornerRadius)
	setIf(&c.CutLength, m.CutLength)

	r := marker.Resolve(c)
	at := m.transform()
	s.Fill(marker.BuildOutline(r).Transform(at), parseColor(m.Color, defaultMarker))
	if r.Text == "" || r.TextSize <= 0 {
		return nil
	}

	face, err := ring.NewFace(r.TextSize)
	if err != nil {
		return err
	}
	defer face.Close()
	f, err := ring.LabelFont()
	if err != nil {
		return err
	}
	width := float64(font.MeasureString(face, r.Text)) / 64
	label, err := render.GlyphPath(f, r.TextSize, r.Text, shapekit.Pt(-width/2, 0))
	if err != nil {
		return err
	}
	base, angle := marker.Label(r)
	place := at.Multiply(shapekit.Translate(base.X, base.Y)).Multiply(shapekit.Rotate(angle))
	s.Fill(label.Transform(place), parseColor(m.TextColor, color.White))
	return nil
}
