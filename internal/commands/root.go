package commands

import (
	"github.com/spf13/cobra"

	"github.com/bandabooks/stmtparse/internal/buildinfo"
	"github.com/bandabooks/stmtparse/internal/config"
	"github.com/bandabooks/stmtparse/internal/normalize"
	"github.com/bandabooks/stmtparse/internal/statement"
)

// globalOptions holds flags shared by every subcommand. Flags override the
// config file.
type globalOptions struct {
	configPath  string
	strictDates bool
	logLevel    string
	output      string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "stmtparse",
		Short:   "Bank statement ingestion and normalization",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to stmtparse.yaml")
	flags.BoolVar(&opts.strictDates, "strict-dates", false, "drop rows with unparseable dates instead of dating them today")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVarP(&opts.output, "output", "o", "", "output format (table, json)")

	rootCmd.AddCommand(
		newInitCommand(),
		newParseCommand(opts),
		newValidateCommand(opts),
		newScanCommand(opts),
		newBanksCommand(opts),
	)

	return rootCmd
}

// loadConfig reads the config file, if any, and applies flag overrides.
func (o *globalOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("strict-dates") {
		cfg.Parser.StrictDates = o.strictDates
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.output != "" {
		cfg.Output.Format = o.output
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds a statement service from the effective config.
func (o *globalOptions) newService(cmd *cobra.Command) (*statement.Service, *config.Config, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	svc := statement.NewService(
		statement.WithNormalizer(normalize.New(normalize.WithStrictDates(cfg.Parser.StrictDates))),
		statement.WithLogger(logger),
	)
	return svc, cfg, nil
}
