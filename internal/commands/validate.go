package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bandabooks/stmtparse/internal/config"
)

// errRejected makes the process exit non-zero for an invalid statement.
var errRejected = errors.New("statement rejected")

func newValidateCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check whether a statement is acceptable for upload",
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

			v := svc.ValidateStatementFile(data, filepath.Base(args[0]))
			out := cmd.OutOrStdout()
			if cfg.Output.Format == config.FormatJSON {
				if err := writeJSON(out, v); err != nil {
					return err
				}
			} else {
				renderValidation(out, v)
			}

			if !v.IsValid {
				return errRejected
			}
			return nil
		},
	}
}
