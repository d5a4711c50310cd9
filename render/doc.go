// Package render draws shapekit geometry.
//
// Geometry is recorded into a Scene, an ordered list of fill and stroke
// commands. A Renderer executes a Scene against one backend:
//
//   - ImageRenderer rasterizes fills into an *image.RGBA with golang.org/x/image/vector
//     and strokes through the software surface of github.com/gogpu/gg
//   - SVGRenderer writes an SVG document with github.com/ajstarks/svgo
//   - CanvasRenderer draws onto a *gg.Context from github.com/gogpu/gg
//
// The same Scene can be rendered any number of times by any backend.
//
// Example:
//
//	s := render.NewScene(200, 120)
//	s.SetBackground(color.White)
//	s.FillShadow(outline, color.RGBA{0x33, 0x99, 0xff, 0xff}, render.Shadow{Radius: 6, Dy: 2, Color: shadowColor})
//
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 120))
//	if err := render.NewImageRenderer(dst).Render(s); err != nil {
//	    log.Fatal(err)
//	}
package render
