package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsonvault/internal/domain"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key> [parent-segment]...",
		Short: "Remove a key from the mapping at a path (the root by default)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent := domain.P(args[1:]...)
			removed, err := appCtx.Store.Delete(args[0], parent)
			if err != nil {
				return fmt.Errorf("delete %s: %w", parent.Append(args[0]), err)
			}
			if removed {
				fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "not found")
			}
			return nil
		},
	}
}
