// Package shapekit computes the geometry behind custom-drawn widgets.
//
// # Overview
//
// shapekit is the math core of a small widget collection: a progress ring,
// a speech-bubble background, a flow layout, list/grid dividers, a shadow
// card and a corner marker. It turns plain numeric configuration into
// concrete geometry (paths made of lines and arcs, divider line endpoints,
// per-cell offsets) and never touches a rendering surface. Hosts hand the
// results to their own drawing primitive, or to one of the adapters in the
// render package.
//
// # Packages
//
//   - shapekit: Point, Matrix, Rect, Insets, Line and Path primitives
//   - ring: sweep angle, arc placement and progress text for a progress ring
//   - bubble: rounded-rectangle outline with an arrow notch on one side
//   - grid: row/column inference for grid and staggered-grid cells
//   - divider: item offsets and divider lines for linear and grid lists
//   - flow: line-breaking flow layout
//   - card: content block on a rounded card with a drop shadow
//   - marker: corner marker triangle with a rotated label
//   - render: rasterization, SVG export and gogpu/gg canvas replay
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc angles in degrees, 0 is right, positive sweeps run clockwise on screen
//
// # Concurrency
//
// Every geometry function is a pure function of its inputs and is safe to
// call from any goroutine. Hosts that require single-threaded rendering must
// marshal redraw requests onto their render thread before calling in.
package shapekit
