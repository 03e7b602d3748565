package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kcaldas/craftkit/pkg/config"
	"github.com/kcaldas/craftkit/pkg/host"
	"github.com/kcaldas/craftkit/pkg/sender"
	"github.com/spf13/cobra"
)

// consoleSettings is stored as console.json in the plugin's data folder.
type consoleSettings struct {
	Prompt        string `json:"prompt"`
	StopCommand   string `json:"stopCommand"`
	UsageOnFailed bool   `json:"usageOnFailed"`
}

func defaultConsoleSettings() consoleSettings {
	return consoleSettings{Prompt: "> ", StopCommand: "stop", UsageOnFailed: true}
}

func newConsoleCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Read command lines from stdin and dispatch them as the console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadServer(opts)
			if err != nil {
				return err
			}
			defer s.plugin.Disable(s.commands)

			settings, err := config.LoadConfig(s.plugin.Configs(), "console", defaultConsoleSettings())
			if err != nil {
				return err
			}
			return s.runConsole(cmd.InOrStdin(), cmd.OutOrStdout(), settings.Get())
		},
	}
}

// runConsole dispatches every input line until EOF or the stop command.
func (s *server) runConsole(in io.Reader, out io.Writer, settings consoleSettings) error {
	console := sender.NewConsole(out)
	prompt := interactive(in)
	scanner := bufio.NewScanner(in)

	for {
		if prompt {
			fmt.Fprint(out, settings.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.isStop(line, settings) {
			return nil
		}
		s.dispatch(console, line, settings)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read console input: %w", err)
	}
	return nil
}

func (s *server) isStop(line string, settings consoleSettings) bool {
	if settings.StopCommand == "" || !strings.EqualFold(line, settings.StopCommand) {
		return false
	}
	_, registered := s.commands.Get(settings.StopCommand)
	return !registered
}

func (s *server) dispatch(console *sender.Console, line string, settings consoleSettings) {
	ok, err := s.commands.Dispatch(console, line)
	if errors.Is(err, host.ErrUnknownCommand) {
		console.SendMessage("&cUnknown command. Type \"commands\" outside the console for a list.")
		return
	}
	if err != nil {
		s.logger.Error("dispatch failed", "line", line, "error", err)
		return
	}
	if ok || !settings.UsageOnFailed {
		return
	}
	label := strings.Fields(strings.TrimPrefix(line, "/"))[0]
	if a, found := s.commands.Get(label); found && a.Usage() != "" {
		console.SendMessage(a.Usage())
	}
}
