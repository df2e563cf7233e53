package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/ols/model"
)

func newSchemaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema [name]",
		Short: "Print the JSON Schema a response is validated against",
		Long: `Print the JSON Schema of one response type for the selected API version.
Without a name, list the known names.`,
		Example: `  olsq schema term
  olsq schema search --api-version v3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.config()
			if err != nil {
				return err
			}
			v, err := cfg.Version()
			if err != nil {
				return err
			}
			set, ok := model.SchemasFor(v)
			if !ok {
				return fmt.Errorf("no schemas for API version %s", v)
			}
			if len(args) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(set.Names(), "\n"))
				return err
			}
			js, err := set.JSONSchema(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), js)
		},
	}
	return cmd
}
