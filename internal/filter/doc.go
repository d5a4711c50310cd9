// Package filter blurs alpha masks for drop shadows.
//
// The blur is a separable Gaussian: one horizontal and one vertical
// convolution with a normalized 1D kernel, so the cost grows with the
// radius rather than its square. Pixels outside the mask count as
// transparent, so a shadow fades out at the image border instead of
// smearing the edge.
package filter
