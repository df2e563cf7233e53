package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/ols/model"
)

func newAPICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "api",
		Short: "Show the links of the API root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			info, err := c.APIInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info)
		},
	}
}

type ontologiesOptions struct {
	page   pageFlags
	output string
}

func newOntologiesCmd(a *app) *cobra.Command {
	opts := &ontologiesOptions{}

	cmd := &cobra.Command{
		Use:   "ontologies",
		Short: "List loaded ontologies",
		Example: `  # First page, table format
  olsq ontologies

  # Second page of 50, as JSON
  olsq ontologies --page 1 --size 50 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.Ontologies(cmd.Context(), opts.page.params(cmd))
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printOntologies(cmd.OutOrStdout(), list)
		},
	}

	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

func printOntologies(w io.Writer, list model.OntologyList) error {
	tw := newTable(w, "ID", "STATUS", "TERMS", "PROPERTIES", "LANGUAGES")
	for _, o := range list.Items() {
		langs := "-"
		if len(o.Languages) > 0 {
			langs = fmt.Sprint(o.Languages)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", o.OntologyID, truncate(o.Status, 12), o.NumberOfTerms, o.NumberOfProperties, langs)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printPageFooter(w, list.Page)
	return nil
}

func newOntologyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ontology <id>",
		Short:   "Show one ontology",
		Example: `  olsq ontology go`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			o, err := c.Ontology(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), o)
		},
	}
}
