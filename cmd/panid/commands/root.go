// Package commands implements the CLI commands for the panid tool.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.panid.dev/panid/internal/app"
)

// CLI represents the command line interface for panid.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance over the wired components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "panid",
		Short:         "Convert between gene IDs quickly",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Increase verbosity")

	c := &CLI{
		components: components,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if v, ok := components.Logger.(interface{ SetVerbose(bool) }); ok {
			v.SetVerbose(verbose)
		}
	}

	rootCmd.AddCommand(c.newConvertCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newTypesCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
