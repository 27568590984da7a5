package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/doot/pkg/commands"
	"github.com/arthur-debert/doot/pkg/filesystem"
	"github.com/arthur-debert/doot/pkg/sync"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import",
		Short:   MsgImportShort,
		Long:    MsgImportLong,
		Example: MsgExampleImport,
	}
	cmd.AddCommand(
		newTargetCmd(opts, sync.Import, commands.TargetGroup),
		newTargetCmd(opts, sync.Import, commands.TargetPlan),
	)
	return cmd
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExampleExport,
	}
	cmd.AddCommand(
		newTargetCmd(opts, sync.Export, commands.TargetGroup),
		newTargetCmd(opts, sync.Export, commands.TargetPlan),
	)
	return cmd
}

func newTargetCmd(opts *rootOptions, direction sync.Direction, target commands.TargetKind) *cobra.Command {
	use := string(target) + " NAME RESOLVER"
	short := MsgGroupShort
	if target == commands.TargetPlan {
		short = MsgPlanShort
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, root, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return commands.RunSync(commands.SyncOptions{
				Config:      cfg,
				FS:          filesystem.NewOS(),
				Out:         cmd.OutOrStdout(),
				Root:        root,
				Direction:   direction,
				Target:      target,
				Name:        args[0],
				ResolverTag: args[1],
				Yes:         opts.yes,
			})
		},
	}
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: MsgListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return commands.RunList(cfg, cmd.OutOrStdout())
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var showFiles, asYAML bool

	cmd := &cobra.Command{
		Use:     "status RESOLVER",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgExampleStatus,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, root, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return commands.RunStatus(commands.StatusOptions{
				Config:      cfg,
				FS:          filesystem.NewOS(),
				Out:         cmd.OutOrStdout(),
				Root:        root,
				ResolverTag: args[0],
				ShowFiles:   showFiles,
				AsYAML:      asYAML,
			})
		},
	}

	cmd.Flags().BoolVar(&showFiles, "files", false, "List per-file states under each group")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Emit machine-readable YAML")
	cmd.MarkFlagsMutuallyExclusive("files", "yaml")

	return cmd
}
