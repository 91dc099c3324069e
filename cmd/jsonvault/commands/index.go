package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"jsonvault/internal/domain"
)

func indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <i> <segment>...",
		Short: "Print element i of the array at a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index %q: %w", args[0], err)
			}
			p := domain.P(args[1:]...)
			v, ok := appCtx.Store.Index(i, p)
			if !ok {
				return fmt.Errorf("%s[%d]: not found", p, i)
			}
			return printJSON(cmd.OutOrStdout(), v)
		},
	}
}
