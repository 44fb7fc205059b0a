package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/fractal"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/pipeline"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/plane"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/sink"
)

// renderFlags holds the command-line flags for the render command.
type renderFlags struct {
	formats     string // comma-separated output formats
	limit       int    // iteration cap
	rowsPerBand int    // rows per parallel band (0 = one band per CPU)
	noCache     bool   // disable caching
	refresh     bool   // ignore cached results
	pick        bool   // choose the schema interactively
}

// renderRequest is a fully resolved render invocation.
type renderRequest struct {
	file    string
	opts    pipeline.Options
	noCache bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [flags] FILE PIXELS UPPER_LEFT LOWER_RIGHT [SCHEMA]",
		Short: "Render a region of the Mandelbrot set to an image",
		Long: `Render a region of the Mandelbrot set to an image.

PIXELS is the image size as WIDTHxHEIGHT. UPPER_LEFT and LOWER_RIGHT are the
corners of the region on the complex plane, each written RE,IM. SCHEMA is one
of palette, custom, hue, log, cubic or linear; an unknown name falls back to
palette.

The schema name is appended to the output file name, so mandel.png rendered
with the hue schema is written to mandel_hue.png.

Flags must come before FILE so that negative coordinates are not mistaken
for flags. Results are cached, so re-rendering the same region is instant.`,
		Example: `  mandelplot render mandel.png 1000x750 -1.20,0.35 -1,0.20 palette
  mandelplot render --format png,tiff --limit 1000 deep.png 1920x1080 -0.75,0.1 -0.74,0.09 hue`,
		Args: cobra.RangeArgs(4, 5),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 4 {
				return palette.Names(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.resolveRender(cmd, args, flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), req)
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): png, tiff, ppm (comma-separated; default from FILE extension)")
	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 0, "iteration limit (default 255)")
	cmd.Flags().IntVar(&flags.rowsPerBand, "rows-per-band", 0, "rows per parallel band (default: height/CPUs + 1)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "ignore cached results and re-render")
	cmd.Flags().BoolVar(&flags.pick, "pick", false, "choose the color schema interactively")

	return cmd
}

// resolveRender turns positional arguments, flags and config into a request.
// Explicit flags win over config values, which win over built-in defaults.
func (c *CLI) resolveRender(cmd *cobra.Command, args []string, flags renderFlags) (renderRequest, error) {
	file := args[0]
	if err := errors.ValidateOutputPath(file); err != nil {
		return renderRequest{}, err
	}

	bounds, err := plane.ParseBounds(args[1])
	if err != nil {
		return renderRequest{}, err
	}
	rect, err := plane.ParseRect(args[2], args[3])
	if err != nil {
		return renderRequest{}, err
	}

	schemaName := c.Config.Schema
	if len(args) == 5 {
		schemaName = args[4]
	}
	schema := palette.ParseSchema(schemaName)
	if _, err := palette.ParseSchemaStrict(schemaName); err != nil {
		printWarning("Unknown color schema %q, using %s", schemaName, schema)
	}
	if flags.pick {
		picked, ok, err := pickSchema(schema)
		if err != nil {
			return renderRequest{}, err
		}
		if !ok {
			return renderRequest{}, context.Canceled
		}
		schema = picked
	}

	formats := c.Config.Formats
	if f := formatFromPath(file); f != "" {
		formats = []string{f}
	}
	if cmd.Flags().Changed("format") {
		formats = parseFormats(flags.formats)
	}
	if err := sink.ValidateFormats(formats); err != nil {
		return renderRequest{}, err
	}

	limit := c.Config.Limit
	if cmd.Flags().Changed("limit") {
		if err := errors.ValidatePositive("iteration limit", flags.limit); err != nil {
			return renderRequest{}, err
		}
		limit = flags.limit
	}
	rows := c.Config.RowsPerBand
	if cmd.Flags().Changed("rows-per-band") {
		if err := errors.ValidatePositive("rows per band", flags.rowsPerBand); err != nil {
			return renderRequest{}, err
		}
		rows = flags.rowsPerBand
	}

	return renderRequest{
		file: file,
		opts: pipeline.Options{
			Width:       bounds.Width,
			Height:      bounds.Height,
			UpperLeft:   rect.UpperLeft,
			LowerRight:  rect.LowerRight,
			Schema:      schema,
			Limit:       limit,
			RowsPerBand: rows,
			Formats:     formats,
			Refresh:     flags.refresh,
		},
		noCache: flags.noCache,
	}, nil
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, req renderRequest) error {
	opts := req.opts
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, req.noCache, nil)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	total := opts.BandCount()
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s (%d bands)...", opts.Bounds(), total))
	var finished atomic.Int64
	opts.OnBand = func(fractal.Band) {
		spinner.SetMessage(fmt.Sprintf("Rendering %s... %d/%d bands", opts.Bounds(), finished.Add(1), total))
	}
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	prog := newProgress(c.Logger)
	paths, err := writeArtifacts(req.file, opts.Schema, opts.Formats, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done("wrote outputs", "files", len(paths))

	printSuccess("Image saved with color schema %s", StyleHighlight.Render(opts.Schema.String()))
	for i, p := range paths {
		printFile(p, len(result.Artifacts[opts.Formats[i]]))
	}
	printStats(result.Stats.Bands, result.Stats.RenderTime+result.Stats.EncodeTime, result.CacheInfo.RenderHit)
	printNewline()
	printNextStep("Compare color schemas", appName+" schemas")
	return nil
}

// writeArtifacts writes each format to its schema-suffixed path and returns
// the paths in format order.
func writeArtifacts(file string, schema palette.Schema, formats []string, artifacts map[string][]byte) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, errors.New(errors.ErrCodeInternal, "no %s output produced", format)
		}
		path := outputPath(file, schema, format)
		if err := writeFileAtomic(path, data); err != nil {
			return paths, fmt.Errorf("write output %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeFileAtomic writes data beside path under a unique temporary name and
// renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp-" + uuid.NewString()
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
