package sink

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hepviz/figstyle/pkg/errors"
	"github.com/hepviz/figstyle/pkg/render"
)

// SaveCanvas writes the canvas to path, picking the format from the file
// extension (.svg or .png).
func SaveCanvas(c *render.Canvas, path string) error {
	var data []byte

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		data = RenderSVG(c)
	case ".png":
		var err error
		data, err = RenderPNG(c)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "rasterizing %q", c.Name())
		}
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"unsupported output format %q (want .svg or .png)", filepath.Ext(path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
	}
	return nil
}
