package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cerrgen "github.com/reoring/cerrgen"
)

func validateCmd() *cobra.Command {
	var input string
	var opt optionFlags

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a schema document without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cerrgen.LoadFile(input, opt.options())
			if err != nil {
				return reportIssues(cmd.ErrOrStderr(), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d domains, %d codes\n", len(doc.Domains), doc.Len())
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Schema document, .json or .yaml (required)")
	opt.register(c)

	_ = c.MarkFlagRequired("input")
	return c
}
