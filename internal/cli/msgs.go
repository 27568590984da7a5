package cli

// Message constants
const (
	MsgRootShort = "Sync dotfiles between a repository and the system"
	MsgRootLong  = `doot syncs files between a version-controlled dotfiles repository and
locations on your filesystem, in either direction. Files are organized in
groups (one directory each), groups are batched into plans, and each group
maps resolver tags to per-OS destination paths.

doot never versions files itself and never deletes files that exist only
on the destination side; git owns history, doot owns placement.`

	MsgImportShort = "Import files from the system into the repository"
	MsgImportLong  = `Import copies files from their resolved system locations into the
repository's group directories. The plan is previewed and confirmed before
anything is written.`

	MsgExportShort = "Export files from the repository onto the system"
	MsgExportLong  = `Export places the repository's files at their resolved system locations,
either by copying them or by symlinking them back into the repository,
depending on the configured mode. The plan is previewed and confirmed
before anything is written.`

	MsgGroupShort = "Operate on a single group"
	MsgPlanShort  = "Operate on a plan (multiple groups)"

	MsgListShort = "List all plans, groups, and resolvers"

	MsgStatusShort = "Show how groups compare against the system"
	MsgStatusLong  = `Status checks every group's files against their resolved destinations for
the given resolver tag and reports which groups are in sync, out of sync,
or not yet exported. Groups that do not define the tag are skipped.`

	MsgVersionShort = "Print version information"

	MsgExampleImport = `  # Import the bash group using the 'nux' resolver
  doot import group bash nux

  # Import every group in the 'minimal' plan
  doot import plan minimal nux`

	MsgExampleExport = `  # Export the bash group using the 'mac' resolver
  doot export group bash mac

  # Export everything without prompting
  doot export plan all mac --yes`

	MsgExampleStatus = `  # Check all groups for the 'nux' resolver
  doot status nux

  # Include per-file states, or emit YAML for scripts
  doot status nux --files
  doot status nux --yaml`
)
