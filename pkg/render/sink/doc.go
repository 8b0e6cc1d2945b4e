// Package sink serializes a rendered canvas to output formats. The SVG sink
// is the reference output; the PNG sink rasterizes the same scene. Both walk
// the canvas primitive list in draw order, so what was added last paints on
// top.
package sink
