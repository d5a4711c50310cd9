package ring

import (
	"errors"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	if c.Current() != 0 || c.Total() != 100 {
		t.Errorf("progress = %v/%v, want 0/100", c.Current(), c.Total())
	}
	if c.Direction != Clockwise || c.Start != Top || c.Type != Percent {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestClampOnWrite(t *testing.T) {
	tests := []struct {
		name  string
		apply func(c *Config)
		want  float64
	}{
		{"current above total", func(c *Config) { c.SetCurrent(150) }, 100},
		{"current below total", func(c *Config) { c.SetCurrent(42) }, 42},
		{"total lowered under current", func(c *Config) { c.SetCurrent(80); c.SetTotal(50) }, 50},
		{"both at once", func(c *Config) { c.SetProgress(9, 3) }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.apply(&c)
			if c.Current() != tt.want {
				t.Errorf("Current() = %v, want %v", c.Current(), tt.want)
			}
			if c.Current() > c.Total() {
				t.Errorf("current %v exceeds total %v", c.Current(), c.Total())
			}
		})
	}
}

func TestNewClampsOptions(t *testing.T) {
	c := New(WithProgress(500, 200))
	if c.Current() != 200 {
		t.Errorf("Current() = %v, want 200", c.Current())
	}
}

func TestValidate(t *testing.T) {
	c := New(WithProgress(0, 0))
	if err := c.Validate(); !errors.Is(err, ErrZeroTotal) {
		t.Errorf("Validate() = %v, want ErrZeroTotal", err)
	}
	ok := New()
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
