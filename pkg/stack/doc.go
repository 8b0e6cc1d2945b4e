// Package stack assembles stacked displays from binned series: color
// assignment from the curated palettes, per-series style overrides through a
// closed property set, legend filling and the recommended y-axis maximum.
package stack
