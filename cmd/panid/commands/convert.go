package commands

import (
	"github.com/spf13/cobra"
	"go.panid.dev/panid/internal/app"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [conversions...]",
		Short: "Convert ID columns of a tabular file between naming schemes",
		Long: `Convert applies one or more conversion strings to a CSV file, in the
order given. A conversion string has the form

    <column>:<type><symbol><column>:<type>

where <symbol> is "+" to keep the source column alongside the new one,
or ">" to replace it. Run "panid types" to list the known ID types.`,
		Example: `  panid convert -i genes.csv "ensembl_gene_id:ensg_version>ensembl:ensg"
  panid convert -i genes.csv -o out.csv "ensembl:ensg+refseq_id:refseq_rna_id"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			return c.components.App.Convert(cmd.Context(), app.ConvertOptions{
				InputPath:   input,
				OutputPath:  output,
				Conversions: args,
			})
		},
	}

	cmd.Flags().StringP("input", "i", "", "Input CSV file (defaults to stdin)")
	cmd.Flags().StringP("output", "o", "", "Output CSV file (defaults to stdout)")

	return cmd
}
