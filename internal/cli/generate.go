package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	cerrgen "github.com/reoring/cerrgen"
)

func generateCmd() *cobra.Command {
	var input string
	var header string
	var source string
	var opt optionFlags

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate the error-code header and toString stub",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := cerrgen.LoadFile(input, opt.options())
			if err != nil {
				return reportIssues(cmd.ErrOrStderr(), err)
			}
			if err := cerrgen.GenerateFiles(doc, header, source, opt.options()); err != nil {
				return err
			}
			slog.Debug("generate.done",
				"input", input, "header", header, "source", source,
				"domains", len(doc.Domains), "codes", doc.Len())
			return nil
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "Schema document, .json or .yaml (required)")
	c.Flags().StringVar(&header, "header", "", "Output path for the generated header (required)")
	c.Flags().StringVar(&source, "source", "", "Output path for the generated source stub (required)")
	opt.register(c)

	_ = c.MarkFlagRequired("input")
	_ = c.MarkFlagRequired("header")
	_ = c.MarkFlagRequired("source")
	return c
}

// optionFlags maps the naming flags shared by subcommands onto cerrgen.Options.
// Empty values fall back to the library defaults.
type optionFlags struct {
	rootKey  string
	enumName string
	funcName string
	include  string
}

func (f *optionFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.rootKey, "root-key", "", "Top-level key holding the domain list (default OS_Error_t)")
	c.Flags().StringVar(&f.enumName, "enum-name", "", "Name of the generated enum type (default OS_Error_t)")
	c.Flags().StringVar(&f.funcName, "func-name", "", "Name of the generated lookup function (default OS_Error_toString)")
	c.Flags().StringVar(&f.include, "include", "", "Header name referenced by the source stub (default OS_Error.h)")
}

func (f *optionFlags) options() cerrgen.Options {
	return cerrgen.Options{
		RootKey:       f.rootKey,
		EnumTypeName:  f.enumName,
		ToStringFn:    f.funcName,
		HeaderInclude: f.include,
	}
}
