package commands

import (
	"github.com/spf13/cobra"
	"go.panid.dev/panid/internal/core/domain"
)

func (c *CLI) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the identifier types usable in conversion strings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, t := range domain.Types() {
				cmd.Println(string(t))
			}
		},
	}
}
