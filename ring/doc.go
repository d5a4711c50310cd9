// Package ring computes the geometry and label of a circular progress ring.
//
// A ring is a background circle plus a foreground arc whose sweep is
// proportional to current/total progress. The arc starts at one of four
// edge positions and runs clockwise or counter-clockwise. The label shows
// either a floored percentage or the floored raw value, optionally spliced
// into a caller template at the Placeholder token.
//
// Config keeps current progress clamped to the total at the moment either
// value is written, so every reader observes current <= total.
package ring
