package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RustyDaemon/mandelbrot-plot/pkg/palette"
)

// schemasCommand creates the command listing the available color schemas.
func (c *CLI) schemasCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List the available color schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if plain {
				fmt.Fprint(cmd.OutOrStdout(), plainSchemaList())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), schemaTable(-1))
			printDetail("Default: %s", c.Config.Schema)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print names and descriptions without styling")
	return cmd
}

// plainSchemaList returns one "name<TAB>description" line per schema.
func plainSchemaList() string {
	var b strings.Builder
	for _, s := range palette.Schemas {
		fmt.Fprintf(&b, "%s\t%s\n", s, s.Description())
	}
	return b.String()
}
