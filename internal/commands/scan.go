package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bandabooks/stmtparse/internal/config"
	"github.com/bandabooks/stmtparse/internal/importer"
	"github.com/bandabooks/stmtparse/internal/model"
	"github.com/bandabooks/stmtparse/internal/statement"
)

// scanResult is one file's validation outcome.
type scanResult struct {
	File       string                 `json:"file"`
	Validation model.ValidationResult `json:"validation"`
	Archived   bool                   `json:"archived"`
}

func newScanCommand(opts *globalOptions) *cobra.Command {
	var archive bool

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Validate every statement in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			results, err := runScan(svc, args[0], archive)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cfg.Output.Format == config.FormatJSON {
				return writeJSON(out, results)
			}
			renderScan(out, results)
			return nil
		},
	}

	cmd.Flags().BoolVar(&archive, "archive", false, "move valid statements into processed/")

	return cmd
}

func runScan(svc *statement.Service, dir string, archive bool) ([]scanResult, error) {
	files, err := importer.Scan(dir)
	if err != nil {
		return nil, err
	}

	results := make([]scanResult, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}

		r := scanResult{File: f.Name, Validation: svc.ValidateStatementFile(data, f.Name)}
		if archive && r.Validation.IsValid {
			if err := importer.MarkProcessed(dir, f.Name); err != nil {
				return nil, err
			}
			r.Archived = true
		}
		results = append(results, r)
	}
	return results, nil
}
