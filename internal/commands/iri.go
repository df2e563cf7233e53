package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reoring/ols"
)

func newIRICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iri",
		Short: "Encode IRIs for use in API paths",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "encode <iri>",
		Short:   "Double-encode an IRI as the API expects in paths",
		Example: `  olsq iri encode http://purl.obolibrary.org/obo/GO_0043226`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), ols.QuoteIRI(args[0]))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode <encoded>",
		Short: "Reverse iri encode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iri, err := ols.UnquoteIRI(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), iri)
			return err
		},
	})

	return cmd
}
