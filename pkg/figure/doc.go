// Package figure builds publication-ready canvases: a single styled plot
// area, or a two-pad ratio figure. It owns the reference geometry (canvas
// pixel sizes, margin fractions, title offsets) and delegates the annotation
// blocks to the annotate package, so a figure comes out fully captioned.
//
// Construction is deterministic: the same inputs always produce the same
// canvas, so figures can be rebuilt freely.
package figure
