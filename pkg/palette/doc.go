// Package palette provides the color palettes used to disambiguate plotted
// elements: curated qualitative sets for categorical series and continuous
// gradient tables for scalar-intensity displays.
//
// The qualitative sets are the three Petroff families (six, eight and ten
// colors) recommended for accessible categorical coloring. Curated picks the
// smallest family that covers a requested number of series.
//
// Gradient tables are materialized from control points spanning [0,1] with
// piecewise-linear RGB interpolation. The most recent table is cached
// process-wide as the active table and is only replaced by an explicit
// regeneration call.
package palette
