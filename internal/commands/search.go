package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reoring/ols"
	"github.com/reoring/ols/model"
)

type searchOptions struct {
	paramsFile    string
	ontology      []string
	entityType    string
	slim          []string
	fields        []string
	queryFields   []string
	childrenOf    []string
	allChildrenOf []string
	exact         bool
	groupField    bool
	obsoletes     bool
	local         bool
	rows          int
	start         int
	wildcards     bool
	selectMode    bool
	output        string
}

func newSearchCmd(a *app) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search terms, properties and individuals",
		Long: `Search the whole instance. Query words are joined with spaces.

Parameters can also come from a YAML file given with --params; flags set on
the command line win over the file. Any list parameter in the file may be
a single string.`,
		Example: `  # Classes matching "heart" in two ontologies
  olsq search heart --ontology uberon,fma --type class

  # Prefix match on every word, via the autocomplete endpoint
  olsq search --select --wildcards "multiple term"

  # Parameters from a file
  olsq search cow --params search.yaml -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			params, err := opts.params(cmd)
			if err != nil {
				return err
			}
			c, err := a.clientFor(cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			so := ols.SearchOptions{AddWildcards: opts.wildcards}
			var res model.SearchResponse
			if opts.selectMode {
				res, err = c.Select(cmd.Context(), query, &params, so)
			} else {
				res, err = c.Search(cmd.Context(), query, &params, so)
			}
			if err != nil {
				return err
			}
			if opts.output == "json" {
				return printJSON(cmd.OutOrStdout(), res)
			}
			return printSearch(cmd.OutOrStdout(), res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.paramsFile, "params", "", "YAML file with search parameters")
	f.StringSliceVar(&opts.ontology, "ontology", nil, "Restrict to these ontologies")
	f.StringVar(&opts.entityType, "type", "", "Restrict to an entity type (class, property, individual, ontology)")
	f.StringSliceVar(&opts.slim, "slim", nil, "Restrict to these subsets")
	f.StringSliceVar(&opts.fields, "field", nil, "Fields to return")
	f.StringSliceVar(&opts.queryFields, "query-field", nil, "Fields to search in")
	f.StringSliceVar(&opts.childrenOf, "children-of", nil, "Restrict to children of these IRIs")
	f.StringSliceVar(&opts.allChildrenOf, "all-children-of", nil, "Restrict to children of these IRIs, following part_of and similar")
	f.BoolVar(&opts.exact, "exact", false, "Exact matches only")
	f.BoolVar(&opts.groupField, "group", false, "Group results by IRI")
	f.BoolVar(&opts.obsoletes, "obsoletes", false, "Include obsolete entities")
	f.BoolVar(&opts.local, "local", false, "Only entities defined in the ontology itself")
	f.IntVar(&opts.rows, "rows", 10, "Number of results")
	f.IntVar(&opts.start, "start", 0, "Offset of the first result")
	f.BoolVar(&opts.wildcards, "wildcards", false, "Append * to every query word")
	f.BoolVar(&opts.selectMode, "select", false, "Use the autocomplete endpoint")
	addOutputFlag(cmd, &opts.output)

	return cmd
}

// params merges the --params file with the flags the user set.
func (o *searchOptions) params(cmd *cobra.Command) (ols.SearchParams, error) {
	var p ols.SearchParams
	if o.paramsFile != "" {
		fromFile, err := loadSearchParams(o.paramsFile)
		if err != nil {
			return p, err
		}
		p = fromFile
	}
	changed := cmd.Flags().Changed
	lists := []struct {
		flag string
		dst  *ols.List
		val  []string
	}{
		{"ontology", &p.Ontology, o.ontology},
		{"slim", &p.Slim, o.slim},
		{"field", &p.FieldList, o.fields},
		{"query-field", &p.QueryFields, o.queryFields},
		{"children-of", &p.ChildrenOf, o.childrenOf},
		{"all-children-of", &p.AllChildrenOf, o.allChildrenOf},
	}
	for _, l := range lists {
		if changed(l.flag) {
			*l.dst = ols.List(l.val)
		}
	}
	if changed("type") {
		p.Type = model.EntityType(o.entityType)
	}
	flags := []struct {
		flag string
		dst  **bool
		val  bool
	}{
		{"exact", &p.Exact, o.exact},
		{"group", &p.GroupField, o.groupField},
		{"obsoletes", &p.Obsoletes, o.obsoletes},
		{"local", &p.Local, o.local},
	}
	for _, b := range flags {
		if changed(b.flag) {
			*b.dst = ols.Bool(b.val)
		}
	}
	if changed("rows") {
		p.Rows = ols.Int(o.rows)
	}
	if changed("start") {
		p.Start = ols.Int(o.start)
	}
	return p, nil
}

// loadSearchParams reads a YAML mapping and checks it like any other loosely
// typed parameter source, so unknown keys are rejected.
func loadSearchParams(path string) (ols.SearchParams, error) {
	b, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return ols.SearchParams{}, err
	}
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return ols.SearchParams{}, fmt.Errorf("%s: %w", path, err)
	}
	p, err := ols.SearchParamsFrom(raw)
	if err != nil {
		return ols.SearchParams{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func printSearch(w io.Writer, res model.SearchResponse) error {
	tw := newTable(w, "OBO ID", "LABEL", "ONTOLOGY", "TYPE", "IRI")
	for _, d := range res.Response.Docs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", truncate(d.OboID, 20), truncate(d.Label, 40), truncate(d.OntologyName, 12), truncate(string(d.Type), 12), d.IRI)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "\n%d of %d results from %d\n", len(res.Response.Docs), res.Response.NumFound, res.Response.Start)
	return nil
}
