package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/doot/internal/version"
	"github.com/arthur-debert/doot/pkg/config"
	"github.com/arthur-debert/doot/pkg/display"
	"github.com/arthur-debert/doot/pkg/logging"
)

// rootOptions holds the persistent flag values shared by all commands.
type rootOptions struct {
	verbosity  int
	yes        bool
	configPath string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "doot",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			display.InitColor(os.Stdout)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVarP(&opts.yes, "yes", "y", false,
		"Skip the confirmation prompt")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "doot.yaml",
		"Path to the config file")

	rootCmd.AddCommand(
		newImportCmd(opts),
		newExportCmd(opts),
		newListCmd(opts),
		newStatusCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig loads the configured file and the repository root (the
// working directory, as group directories live next to the config).
func loadConfig(opts *rootOptions) (*config.Config, string, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, "", err
	}
	root, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	return cfg, root, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("doot version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
