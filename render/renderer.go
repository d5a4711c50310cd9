package render

// Renderer executes a Scene against its backend target.
//
// Renderers hold their target and are not safe for concurrent use. The
// scene is not modified and can be rendered again, by the same or another
// renderer.
type Renderer interface {
	Render(s *Scene) error
}

// Option configures a renderer.
type Option func(*options)

// options holds optional renderer configuration.
type options struct {
	title       string
	shadowSteps int
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		shadowSteps: 4,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the document title written by SVGRenderer.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithShadowSteps sets how many translucent layers CanvasRenderer stacks
// to approximate a blurred shadow. Values below 1 are ignored.
func WithShadowSteps(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.shadowSteps = n
		}
	}
}
