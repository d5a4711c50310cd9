package ring

import (
	"errors"

	"golang.org/x/text/language"
)

// ErrZeroTotal is returned by Validate when the total progress is zero,
// which would divide by zero in every ratio the ring computes.
var ErrZeroTotal = errors.New("ring: total progress is zero")

// Direction is the direction the progress arc grows in.
type Direction int

const (
	// Clockwise sweeps are positive.
	Clockwise Direction = iota
	// CounterClockwise sweeps are negative.
	CounterClockwise
)

// String returns the direction name.
func (d Direction) String() string {
	if d == CounterClockwise {
		return "ccw"
	}
	return "cw"
}

// StartPosition is the edge point the progress arc begins at.
type StartPosition int

const (
	Top StartPosition = iota
	Bottom
	Left
	Right
)

// String returns the position name.
func (p StartPosition) String() string {
	switch p {
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "top"
	}
}

// ProgressType selects how the label renders progress.
type ProgressType int

const (
	// Percent renders floor(current*100/total).
	Percent ProgressType = iota
	// Value renders floor(current).
	Value
)

// Config describes a progress ring. The zero value is not useful; build
// one with New.
type Config struct {
	Direction  Direction
	Start      StartPosition
	Type       ProgressType
	CustomText string // template; Placeholder is replaced by the progress text

	// Thickness is the stroke width; 0 selects size/15.
	Thickness float64
	// TextSize is the label size; 0 selects size/2.2.
	TextSize float64

	// Language formats label digits for a locale (grouping separators).
	// language.Und prints plain digits.
	Language language.Tag

	current float64
	total   float64
}

// Option configures a Config during creation.
type Option func(*Config)

// New returns a Config with 0 of 100 progress, clockwise from the top,
// showing a percentage, then applies opts.
func New(opts ...Option) Config {
	c := Config{total: 100}
	for _, opt := range opts {
		opt(&c)
	}
	c.clamp()
	return c
}

// WithProgress sets current and total progress.
func WithProgress(current, total float64) Option {
	return func(c *Config) {
		c.current = current
		c.total = total
	}
}

// WithDirection sets the sweep direction.
func WithDirection(d Direction) Option {
	return func(c *Config) { c.Direction = d }
}

// WithStart sets the start position.
func WithStart(p StartPosition) Option {
	return func(c *Config) { c.Start = p }
}

// WithType sets the label progress type.
func WithType(t ProgressType) Option {
	return func(c *Config) { c.Type = t }
}

// WithCustomText sets the label template.
func WithCustomText(tpl string) Option {
	return func(c *Config) { c.CustomText = tpl }
}

// WithThickness sets the stroke width.
func WithThickness(px float64) Option {
	return func(c *Config) { c.Thickness = px }
}

// WithTextSize sets the label size.
func WithTextSize(px float64) Option {
	return func(c *Config) { c.TextSize = px }
}

// WithLanguage sets the locale used to format label digits.
func WithLanguage(tag language.Tag) Option {
	return func(c *Config) { c.Language = tag }
}

// Current returns the current progress.
func (c *Config) Current() float64 { return c.current }

// Total returns the total progress.
func (c *Config) Total() float64 { return c.total }

// SetCurrent stores current progress, clamped to the total.
func (c *Config) SetCurrent(v float64) {
	c.current = v
	c.clamp()
}

// SetTotal stores total progress and re-clamps current progress.
func (c *Config) SetTotal(v float64) {
	c.total = v
	c.clamp()
}

// SetProgress stores both values at once.
func (c *Config) SetProgress(current, total float64) {
	c.current = current
	c.total = total
	c.clamp()
}

// Validate reports configurations the geometry functions treat as no-ops.
func (c *Config) Validate() error {
	if c.total == 0 {
		return ErrZeroTotal
	}
	return nil
}

func (c *Config) clamp() {
	if c.current > c.total {
		c.current = c.total
	}
}
