package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonvault/internal/domain"
)

func appendCmd() *cobra.Command {
	var asString bool
	cmd := &cobra.Command{
		Use:   "append <value> <segment>...",
		Short: "Append a value to the array at a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.P(args[1:]...)
			if err := appCtx.Store.Append(parseValue(args[0], asString), p); err != nil {
				return fmt.Errorf("append %s: %w", p, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "appended")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asString, "string", "s", false, "store the value as a string even if it parses as JSON")
	return cmd
}
