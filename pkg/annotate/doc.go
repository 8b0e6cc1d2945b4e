// Package annotate places the standardized annotation blocks on a styled
// pad: the experiment wordmark (text or graphical logo), the extra status
// text, the luminosity caption and any free-form info lines.
//
// Placement is driven by a compact integer position code which is decoded
// once, at the boundary, into a tagged Position value. The anchor math works
// in normalized device coordinates relative to the pad's current margins, so
// annotations land correctly for any margin set the geometry layer produces.
package annotate
