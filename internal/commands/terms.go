package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/ols"
	"github.com/reoring/ols/model"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "term <ontology> <iri>",
		Short:   "Show one term of an ontology",
		Example: `  olsq term go http://purl.obolibrary.org/obo/GO_0043226`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			t, err := c.Term(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), t)
		},
	}
}

type lookupFlags struct {
	iri       string
	shortForm string
	oboID     string
	id        string
}

func addLookupFlags(cmd *cobra.Command, l *lookupFlags) {
	cmd.Flags().StringVar(&l.iri, "iri", "", "Term IRI")
	cmd.Flags().StringVar(&l.shortForm, "short-form", "", "Short form, e.g. GO_0043226")
	cmd.Flags().StringVar(&l.oboID, "obo-id", "", "OBO id, e.g. GO:0043226")
	cmd.Flags().StringVar(&l.id, "id", "", "Any of the above")
}

func (l *lookupFlags) params() ols.TermLookupParams {
	return ols.TermLookupParams{IRI: l.iri, ShortForm: l.shortForm, OboID: l.oboID, ID: l.id}
}

type termsOptions struct {
	lookup lookupFlags
	page   pageFlags
	output string
}

func newTermsCmd(a *app) *cobra.Command {
	opts := &termsOptions{}

	cmd := &cobra.Command{
		Use:   "terms [ontology]",
		Short: "List the terms of an ontology, or find a term in every ontology",
		Example: `  # Terms of one ontology
  olsq terms go --size 5

  # Every ontology that uses an OBO id
  olsq terms --obo-id GO:0043226`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			lookup, page := opts.lookup.params(), opts.page.params(cmd)
			var list model.TermList
			if len(args) == 1 {
				list, err = c.Terms(cmd.Context(), args[0], lookup, page)
			} else {
				list, err = c.FindTerms(cmd.Context(), lookup, page)
			}
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printTerms(cmd.OutOrStdout(), list)
		},
	}

	addLookupFlags(cmd, &opts.lookup)
	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

type listOptions struct {
	page   pageFlags
	output string
}

func newRelativesCmd(a *app) *cobra.Command {
	opts := &listOptions{}
	names := make([]string, len(ols.Relations))
	for i, r := range ols.Relations {
		names[i] = string(r)
	}

	cmd := &cobra.Command{
		Use:   "relatives <relation> <ontology> <iri>",
		Short: "List related terms along the hierarchy",
		Long: fmt.Sprintf(`List the terms related to a term along the class hierarchy.

Relations: %s.`, strings.Join(names, ", ")),
		Example:   `  olsq relatives hierarchicalAncestors go http://purl.obolibrary.org/obo/GO_0043226`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			rel, err := ols.ParseRelation(args[0])
			if err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.TermRelatives(cmd.Context(), rel, args[1], args[2], opts.page.params(cmd))
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printTerms(cmd.OutOrStdout(), list)
		},
	}

	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

func newRelatedCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "related <ontology> <term-iri> <property-iri>",
		Short:   "List terms linked to a term by a property",
		Example: `  olsq related go http://purl.obolibrary.org/obo/GO_0043226 http://purl.obolibrary.org/obo/BFO_0000050`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.RelatedTerms(cmd.Context(), args[0], args[1], args[2], opts.page.params(cmd))
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printTerms(cmd.OutOrStdout(), list)
		},
	}

	addPageFlags(cmd, &opts.page)
	addOutputFlag(cmd, &opts.output)

	return cmd
}

type definingOptions struct {
	lookup lookupFlags
	output string
}

func newDefiningCmd(a *app) *cobra.Command {
	opts := &definingOptions{}

	cmd := &cobra.Command{
		Use:   "defining [iri]",
		Short: "Find a term in the ontology that defines it",
		Example: `  olsq defining http://purl.obolibrary.org/obo/GO_0043226
  olsq defining --obo-id GO:0043226`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			iri := opts.lookup.iri
			if len(args) == 1 {
				if iri != "" {
					return errors.New("give the IRI as an argument or with --iri, not both")
				}
				iri = args[0]
			}
			lookup := opts.lookup.params()
			lookup.IRI = ""
			var params *ols.TermLookupParams
			if !lookup.IsZero() {
				params = &lookup
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			list, err := c.TermInDefiningOntology(cmd.Context(), iri, params)
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), list)
			}
			return printTerms(cmd.OutOrStdout(), list)
		},
	}

	addLookupFlags(cmd, &opts.lookup)
	addOutputFlag(cmd, &opts.output)

	return cmd
}
