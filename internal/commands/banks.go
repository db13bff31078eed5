package commands

import (
	"github.com/spf13/cobra"

	"github.com/bandabooks/stmtparse/internal/config"
)

func newBanksCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List recognized banks in identification order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cfg, err := opts.newService(cmd)
			if err != nil {
				return err
			}

			names := svc.SupportedBanks()
			if cfg.Output.Format == config.FormatJSON {
				return writeJSON(cmd.OutOrStdout(), names)
			}
			renderBanks(cmd.OutOrStdout(), names)
			return nil
		},
	}
}
