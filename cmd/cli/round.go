package cli

import (
	"fmt"
	"strconv"

	"github.com/kcaldas/craftkit/pkg/mathutil"
	"github.com/spf13/cobra"
)

func newRoundCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "round <original> <value>...",
		Short: "Print the value closest to original",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, len(args))
			for i, a := range args {
				n, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", a, err)
				}
				nums[i] = n
			}
			fmt.Fprintln(cmd.OutOrStdout(), mathutil.RoundToClosest(nums[0], nums[1:]...))
			return nil
		},
	}
}
