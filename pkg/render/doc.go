// Package render is the drawing model the styling layer operates on.
//
// It provides canvases and pads with margins in normalized device
// coordinates, a declarative primitive list (text, images, overlay boxes,
// legends, data series), and an axis frame per pad. Primitives carry
// placement intent only; serialization to an output format is done by the
// sinks in render/sink.
//
// Coordinates are NDC throughout: [0,1]x[0,1] across the full pad regardless
// of pixel size, x growing right and y growing up. Text alignment codes are
// two-digit integers 10*h+v with h,v in {1,2,3} meaning left/center/right and
// bottom/center/top respectively.
package render
