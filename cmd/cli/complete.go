package cli

import (
	"fmt"
	"strings"

	"github.com/kcaldas/craftkit/pkg/sender"
	"github.com/spf13/cobra"
)

func newCompleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <line>",
		Short: "Print tab-completion suggestions for a partial command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadServer(opts)
			if err != nil {
				return err
			}
			line := strings.Join(args, " ")
			for _, suggestion := range s.commands.TabComplete(sender.NewConsole(cmd.OutOrStdout()), line, nil) {
				fmt.Fprintln(cmd.OutOrStdout(), suggestion)
			}
			return nil
		},
	}
}
