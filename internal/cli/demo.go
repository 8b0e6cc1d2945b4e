package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hepviz/figstyle/pkg/figure"
	"github.com/hepviz/figstyle/pkg/render"
	"github.com/hepviz/figstyle/pkg/render/sink"
	"github.com/hepviz/figstyle/pkg/stack"
	"github.com/hepviz/figstyle/pkg/style"
)

const (
	kindSingle = "single" // square single-pad figure
	kindWide   = "wide"   // wide single-pad figure
	kindRatio  = "ratio"  // two-pad ratio figure
	kindStack  = "stack"  // stacked series with a legend
)

// demoOpts holds the command-line flags for the demo command.
type demoOpts struct {
	output   string   // output base path
	kinds    []string // figure kinds: single, wide, ratio, stack
	formats  []string // output formats: svg, png
	position int      // annotation position code
	grid     bool     // enable grid lines
	config   string   // optional TOML defaults file
}

// newDemoCmd creates the demo command for rendering example figures.
func newDemoCmd() *cobra.Command {
	var kindsStr, formatsStr string
	opts := demoOpts{position: 11}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render demonstration figures with the house style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.kinds = splitList(kindsStr, kindSingle)
			opts.formats = splitList(formatsStr, "svg")
			if err := validateKinds(opts.kinds); err != nil {
				return err
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return runDemo(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "figstyle_demo", "output base path")
	cmd.Flags().StringVarP(&kindsStr, "kind", "k", "", "figure kind(s): single (default), wide, ratio, stack (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png (comma-separated)")
	cmd.Flags().IntVar(&opts.position, "position", opts.position, "annotation position code (0, 11, 22, 33, ...)")
	cmd.Flags().BoolVar(&opts.grid, "grid", false, "enable grid lines")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML defaults file for captions and style")

	return cmd
}

// splitList parses a comma-separated flag value with a default for empty.
func splitList(s, def string) []string {
	if s == "" {
		return []string{def}
	}
	return strings.Split(s, ",")
}

var validDemoKinds = map[string]bool{kindSingle: true, kindWide: true, kindRatio: true, kindStack: true}

func validateKinds(kinds []string) error {
	for _, k := range kinds {
		if !validDemoKinds[k] {
			return fmt.Errorf("invalid kind: %s (must be 'single', 'wide', 'ratio', or 'stack')", k)
		}
	}
	return nil
}

var validFormats = map[string]bool{"svg": true, "png": true}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", f)
		}
	}
	return nil
}

// runDemo applies the configured style and renders each requested kind to
// each requested format.
func runDemo(ctx context.Context, opts *demoOpts) error {
	logger := loggerFromContext(ctx)

	st := style.New()
	if opts.config != "" {
		cfg, err := style.LoadConfig(opts.config)
		if err != nil {
			return err
		}
		if err := st.ApplyConfig(cfg); err != nil {
			return err
		}
		logger.Debugf("Applied defaults from %s", opts.config)
	}
	st.SetGrid(opts.grid)
	style.Apply(st)

	prog := newProgress(logger)
	count := 0
	for _, kind := range opts.kinds {
		c, err := buildDemoFigure(kind, opts.position)
		if err != nil {
			return err
		}
		for _, format := range opts.formats {
			path := fmt.Sprintf("%s_%s.%s", opts.output, kind, format)
			sp := newSpinner(fmt.Sprintf("rendering %s", path))
			sp.Start()
			err := sink.SaveCanvas(c, path)
			sp.Stop()
			if err != nil {
				printError("%s", err)
				return err
			}
			printFile(path)
			count++
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", count))
	printSuccess("demo figures written")
	return nil
}

// buildDemoFigure assembles one canvas per kind, with representative data.
func buildDemoFigure(kind string, position int) (*render.Canvas, error) {
	switch kind {
	case kindSingle, kindWide:
		opts := []figure.Option{figure.WithPosition(position)}
		if kind == kindWide {
			opts = append(opts, figure.Wide())
		}
		c, err := figure.New("demo_"+kind,
			figure.Range{Min: 0, Max: 100}, figure.Range{Min: 0, Max: 60},
			"m_{ll} [GeV]", "Events / 10 GeV", opts...)
		if err != nil {
			return nil, err
		}
		sr := render.NewSeries("signal", []float64{2, 8, 21, 48, 32, 14, 6, 3, 1, 1})
		stack.Draw(&c.Pad, sr, "hist", map[string]string{
			"LineColor": "p6.Blue",
			"FillColor": "p6.Blue",
		})
		return c, nil

	case kindRatio:
		c, err := figure.NewRatio("demo_ratio",
			figure.Range{Min: 0, Max: 100}, figure.Range{Min: 0, Max: 60},
			figure.Range{Min: 0.5, Max: 1.5},
			"m_{ll} [GeV]", "Events / 10 GeV", "Data/Pred.",
			figure.WithPosition(position))
		if err != nil {
			return nil, err
		}
		upper := c.Pads()[0]
		sr := render.NewSeries("pred", []float64{3, 9, 24, 50, 30, 12, 5, 2, 1, 1})
		stack.Draw(upper, sr, "hist", map[string]string{
			"LineColor": "p6.Yellow",
			"FillColor": "p6.Yellow",
		})
		lower := c.Pads()[1]
		ratio := &render.Graph{GraphName: "ratio", Y: []float64{1.1, 0.95, 1.02, 0.98, 1.05, 0.9, 1.0, 1.1, 0.85, 1.0}}
		lower.Add(ratio)
		return c, nil

	case kindStack:
		c, err := figure.New("demo_stack",
			figure.Range{Min: 0, Max: 100}, figure.Range{Min: 0, Max: 90},
			"m_{ll} [GeV]", "Events / 10 GeV",
			figure.WithPosition(position))
		if err != nil {
			return nil, err
		}
		leg := render.NewLegend(0.62, 0.65, 0.92, 0.88)
		leg.SetHeader("Processes", false)
		items := []stack.Item{
			{Series: render.NewSeries("dy", []float64{5, 12, 20, 30, 22, 10, 4, 2, 1, 1}), Label: "Drell-Yan", Opt: "f"},
			{Series: render.NewSeries("tt", []float64{2, 6, 12, 16, 12, 6, 3, 1, 1, 0}), Label: "t#bar{t}", Opt: "f"},
			{Series: render.NewSeries("vv", []float64{1, 2, 4, 6, 4, 2, 1, 1, 0, 0}), Label: "Diboson", Opt: "f"},
		}
		stack.BuildAndDraw(&c.Pad, items, leg, true, nil, "", nil)
		c.Add(leg)
		return c, nil
	}
	return nil, fmt.Errorf("unknown kind: %s", kind)
}
