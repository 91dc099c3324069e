package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonvault/internal/domain"
)

// set <value> <segment>...: write a JSON (or plain string) value at a path.
func setCmd() *cobra.Command {
	var asString bool
	cmd := &cobra.Command{
		Use:   "set <value> <segment>...",
		Short: "Write a value at a path",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.P(args[1:]...)
			changed, err := appCtx.Store.Set(parseValue(args[0], asString), p)
			if err != nil {
				return fmt.Errorf("set %s: %w", p, err)
			}
			if changed {
				fmt.Fprintln(cmd.OutOrStdout(), "updated")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "unchanged")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&asString, "string", "s", false, "store the value as a string even if it parses as JSON")
	return cmd
}
