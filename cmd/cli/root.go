package cli

import (
	"fmt"

	"github.com/kcaldas/craftkit/pkg/config"
	"github.com/kcaldas/craftkit/pkg/host"
	"github.com/kcaldas/craftkit/pkg/logging"
	"github.com/kcaldas/craftkit/pkg/plugin"
	"github.com/kcaldas/craftkit/pkg/version"
	"github.com/spf13/cobra"
)

const (
	envPluginFile = "CRAFTKIT_PLUGIN"
	envDataDir    = "CRAFTKIT_DATA_DIR"
	envLogLevel   = "CRAFTKIT_LOG_LEVEL"
)

// options are the global flags shared by every sub-command.
type options struct {
	pluginFile string
	dataDir    string
	verbose    bool
	quiet      bool
}

// server is the plugin loaded for one CLI run.
type server struct {
	plugin   *plugin.Plugin
	commands *host.CommandMap
	logger   logging.Logger
}

// NewRootCommand builds the craftkit command tree.
func NewRootCommand() *cobra.Command {
	settings := config.NewManager(".env")
	opts := &options{}

	root := &cobra.Command{
		Use:     "craftkit",
		Short:   "Load a plugin descriptor and drive its commands from a console",
		Version: version.GetInfo().Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts, settings)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.pluginFile, "plugin",
		settings.GetStringWithDefault(envPluginFile, "plugin.yml"), "path to the plugin.yml descriptor")
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir",
		settings.GetStringWithDefault(envDataDir, config.DefaultDataDir()), "folder holding plugin data folders")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug level)")
	root.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "quiet output (errors only)")

	root.AddCommand(
		newCommandsCommand(opts),
		newConsoleCommand(opts),
		newCompleteCommand(opts),
		newRoundCommand(),
		newVersionCommand(),
	)
	return root
}

func configureLogging(opts *options, settings config.Manager) {
	var logger logging.Logger
	switch {
	case opts.quiet:
		logger = logging.NewQuietLogger()
	case opts.verbose:
		logger = logging.NewVerboseLogger()
	default:
		logger = logging.NewDefaultLogger()
		logger.SetLevel(logging.ParseLevel(settings.GetStringWithDefault(envLogLevel, "info")))
	}
	logging.SetGlobalLogger(logger)
}

// loadServer reads the descriptor, creates the plugin and enables it with
// the echo handlers.
func loadServer(opts *options) (*server, error) {
	d, err := plugin.LoadDescriptor(opts.pluginFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load plugin %s: %w", opts.pluginFile, err)
	}

	p, err := plugin.New(d, opts.dataDir)
	if err != nil {
		return nil, err
	}

	s := &server{
		plugin:   p,
		commands: host.NewCommandMap(logging.NewComponentLogger("host")),
		logger:   logging.NewComponentLogger("cli"),
	}
	if err := p.Enable(s.commands, echoHandlers(p)); err != nil {
		return nil, err
	}
	return s, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
		},
	}
}
