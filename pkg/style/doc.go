// Package style holds the shared visual configuration for styled figures:
// caption text (wordmark, extra status text, energy and luminosity strings,
// free-form info lines), fonts and relative text sizes, margin ratios, grid
// enablement, the optional logo image and the active color palette.
//
// At most one style is active at a time. Apply installs a style wholesale
// and replaces any previous one; call sites obtain the handle with Current
// (or Ensure) and pass it explicitly into geometry and placement calls.
// Mutating a style concurrently with an in-progress placement call is not
// supported.
package style
