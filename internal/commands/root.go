// Package commands contains all olsq command definitions.
package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/reoring/ols"
	"github.com/reoring/ols/config"
)

type rootOptions struct {
	configPath string
	baseURL    string
	apiVersion string
	timeout    time.Duration
	verbose    bool
}

// app holds what every command shares. The client is built on first use so
// commands that need no API access never read the config file.
type app struct {
	getenv func(string) string
	opts   rootOptions
	cfg    *config.Config
	client *ols.Client
}

// NewRootCmd creates and returns the root command for the CLI. getenv
// supplies the OLS_* overrides.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv}

	rootCmd := &cobra.Command{
		Use:   "olsq",
		Short: "Query an Ontology Lookup Service",
		Long: `Query an Ontology Lookup Service (OLS) instance: list ontologies, look up
terms, properties and individuals, walk term hierarchies and search.

The instance is taken from --base-url, then OLS_BASE_URL, then the config
file, and defaults to the EBI OLS4 deployment. Short instance names such as
"tib" or "ebi-ols3" are accepted wherever a base URL is.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.opts.configPath, "config", "", "Path to an olsq.yaml config file")
	pf.StringVar(&a.opts.baseURL, "base-url", "", "API base URL or instance name")
	pf.StringVar(&a.opts.apiVersion, "api-version", "", "API version of the instance (v3, v4)")
	pf.DurationVar(&a.opts.timeout, "timeout", 0, "Per-request timeout (0 keeps the configured value)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Log every request to stderr")

	rootCmd.AddCommand(
		newAPICmd(a),
		newOntologiesCmd(a),
		newOntologyCmd(a),
		newTermCmd(a),
		newTermsCmd(a),
		newRelativesCmd(a),
		newRelatedCmd(a),
		newDefiningCmd(a),
		newSearchCmd(a),
		newPropertyCmd(a),
		newPropertiesCmd(a),
		newIndividualCmd(a),
		newIndividualsCmd(a),
		newSchemaCmd(a),
		newIRICmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// config resolves the effective configuration: file or defaults, then the
// environment, then flags.
func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg := config.Default()
	if a.opts.configPath != "" {
		loaded, err := config.Load(a.opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if a.getenv != nil {
		cfg.ApplyEnv(a.getenv)
	}
	if a.opts.baseURL != "" {
		cfg.BaseURL = a.opts.baseURL
	}
	if a.opts.apiVersion != "" {
		cfg.APIVersion = a.opts.apiVersion
	}
	if a.opts.timeout > 0 {
		cfg.Timeout = a.opts.timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) clientFor(cmd *cobra.Command) (*ols.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	level := slog.LevelWarn
	if a.opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	c, err := cfg.NewClient(ols.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}
