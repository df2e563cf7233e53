package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/ols/model"
)

func newPropertyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "property <ontology> <iri>",
		Short:   "Show one property of an ontology",
		Example: `  olsq property go http://purl.obolibrary.org/obo/BFO_0000050`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			p, err := c.Property(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newPropertiesCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "properties <ontology>",
		Short: "List the properties of an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.Properties(cmd.Context(), args[0], opts.page.params(cmd))
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			rows := make([][2]string, 0, len(list.Items()))
			for _, p := range list.Items() {
				rows = append(rows, [2]string{p.Label, p.IRI})
			}
			return printEntities(cmd.OutOrStdout(), rows, list.Page)
		},
	}

	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

func newIndividualCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "individual <ontology> <iri>",
		Short: "Show one individual of an ontology",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			ind, err := c.Individual(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ind)
		},
	}
}

func newIndividualsCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "individuals <ontology>",
		Short: "List the individuals of an ontology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.Individuals(cmd.Context(), args[0], opts.page.params(cmd))
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			rows := make([][2]string, 0, len(list.Items()))
			for _, ind := range list.Items() {
				rows = append(rows, [2]string{ind.Label, ind.IRI})
			}
			return printEntities(cmd.OutOrStdout(), rows, list.Page)
		},
	}

	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

// printEntities prints label/IRI pairs.
func printEntities(w io.Writer, rows [][2]string, page model.PageInfo) error {
	tw := newTable(w, "LABEL", "IRI")
	for _, r := range rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", truncate(r[0], 40), r[1])
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printPageFooter(w, page)
	return nil
}
