package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/RustyDaemon/mandelbrot-plot/internal/server"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/cache"
	"github.com/RustyDaemon/mandelbrot-plot/pkg/errors"
)

// apiKeyPrefix scopes entries written by the HTTP service so they can be told
// apart from CLI renders in a shared cache.
const apiKeyPrefix = "api:"

// serveCommand creates the command that runs the HTTP render service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		maxPixels int
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve renders over HTTP",
		Long: `Serve renders over HTTP.

GET /render takes the render parameters as query values and responds with the
encoded image. GET /render/ws streams band progress over a websocket before
sending the image. GET /schemas lists the color schemas.`,
		Example: `  mandelplot serve --addr :8080
  curl -o mandel.png 'http://localhost:8080/render?size=1000x750&ul=-1.2,0.35&lr=-1,0.2&schema=hue'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("max-pixels") {
				maxPixels = c.Config.Server.MaxPixels
			}
			if maxPixels == 0 {
				maxPixels = server.DefaultMaxPixels
			}
			if err := errors.ValidatePositive("max pixels", maxPixels); err != nil {
				return err
			}
			if _, _, err := net.SplitHostPort(addr); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid listen address %q", addr)
			}

			runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, apiKeyPrefix))
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			printKeyValue("Listening", StyleLink.Render("http://"+displayAddr(addr)))
			printKeyValue("Cache", c.cacheLocation())
			printKeyValue("Max pixels", fmt.Sprintf("%d", maxPixels))
			printNewline()

			srv := server.New(runner, logger, server.WithMaxPixels(maxPixels))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().IntVar(&maxPixels, "max-pixels", 0, "largest image area a request may ask for")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// displayAddr turns a listen address into something a browser can open.
func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host == "" || host == "0.0.0.0" || host == "::" {
		return net.JoinHostPort("localhost", port)
	}
	return addr
}
