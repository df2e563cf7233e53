package commands

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/reoring/ols"
	"github.com/reoring/ols/model"
)

// printJSON writes v as indented JSON. goccy's MarshalIndent runs away on
// recursive types like *jsonschema.Schema, so the compact form is indented.
func printJSON(w io.Writer, v any) error {
	b, err := gojson.Marshal(v)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, b, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = buf.WriteTo(w)
	return err
}

type pageFlags struct {
	page int
	size int
}

func addPageFlags(cmd *cobra.Command, p *pageFlags) {
	cmd.Flags().IntVar(&p.page, "page", 0, "Page number, starting at 0")
	cmd.Flags().IntVar(&p.size, "size", 20, "Page size")
}

// params returns only the flags the user set, so the server keeps its own
// defaults otherwise.
func (p *pageFlags) params(cmd *cobra.Command) ols.PageParams {
	var out ols.PageParams
	if cmd.Flags().Changed("page") {
		out.Page = ols.Int(p.page)
	}
	if cmd.Flags().Changed("size") {
		out.Size = ols.Int(p.size)
	}
	return out
}

func addOutputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "output", "o", "table", "Output format (table, json)")
}

func checkOutput(output string) error {
	switch output {
	case "table", "json":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table or json)", output)
}

func truncate(s string, n int) string {
	if s == "" {
		return "-"
	}
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	return tw
}

func printPageFooter(w io.Writer, p model.PageInfo) {
	if p.TotalPages == 0 {
		return
	}
	_, _ = fmt.Fprintf(w, "\npage %d of %d, %d total\n", p.Number+1, p.TotalPages, p.TotalElements)
}

func printTerms(w io.Writer, list model.TermList) error {
	tw := newTable(w, "OBO ID", "LABEL", "ONTOLOGY", "IRI")
	for _, t := range list.Items() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", truncate(t.OboID, 20), truncate(t.Label, 40), t.OntologyName, t.IRI)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printPageFooter(w, list.Page)
	return nil
}
