package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonvault/internal/domain"
)

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <segment>...",
		Short: "Print the value at a path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.P(args...)
			v, ok := appCtx.Store.Get(p)
			if !ok {
				return fmt.Errorf("%s: not found", p)
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}
