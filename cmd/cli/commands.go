package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kcaldas/craftkit/pkg/command"
	"github.com/spf13/cobra"
)

func newCommandsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the plugin's commands and their sub-commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadServer(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", s.plugin.Name(), s.plugin.Descriptor().Version)
			for _, c := range s.plugin.Commands() {
				printTree(out, c, 1)
			}
			return nil
		},
	}
}

func printTree(out io.Writer, c *command.Command, depth int) {
	line := strings.Repeat("  ", depth) + c.Name()
	if c.HasAliases() {
		line += " [" + strings.Join(c.Aliases(), ", ") + "]"
	}
	if c.Description() != "" {
		line += " - " + c.Description()
	}
	if c.Permission() != "" {
		line += " (" + c.Permission() + ")"
	}
	fmt.Fprintln(out, line)
	for _, sub := range c.SubCommands() {
		printTree(out, sub, depth+1)
	}
}
