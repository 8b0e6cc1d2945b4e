// Package overlay repositions the floating boxes that sit on top of a plot
// frame: the statistics box and the color-scale bar. Corner placement is
// declarative (a corner token plus optional scale factors); the box size
// adapts to its line count and text size so content never overflows.
package overlay
