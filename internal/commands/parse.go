package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bandabooks/stmtparse/internal/config"
)

func newParseCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a statement into normalized transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading statement: %w", err)
			}

			res := svc.ParseStatement(data, filepath.Base(args[0]))
			out := cmd.OutOrStdout()
			if cfg.Output.Format == config.FormatJSON {
				return writeJSON(out, res)
			}
			renderParseResult(out, res)
			return nil
		},
	}
}
