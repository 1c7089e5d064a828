// Package messages centralizes user-facing strings and error formats so the
// CLI surface stays consistent and greppable.
package messages

// CLI messages.
const (
	// RootUse is the root command usage line.
	RootUse = "ramalama-install [get_installation_dir]"
	// RootShort is the one-line root command description.
	RootShort = "Install RamaLama onto this machine"
	RootLong  = `ramalama-install bootstraps RamaLama: it detects the host operating system
and package manager, provisions a container engine when one is missing, and
places the ramalama entry point plus its library modules into a discoverable
system location.

When a native package manager can install RamaLama directly, that path is
preferred: the OS then owns integrity checking and uninstall support.`

	FlagLocalHelp  = "install from the local source tree instead of fetching from the remote host"
	FlagYesHelp    = "skip the confirmation prompt when overwriting an existing installation"
	FlagBranchHelp = "fetch artifacts from the named branch (overrides the BRANCH environment variable)"

	VersionTemplate  = "ramalama-install {{.Version}}\n"
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"

	// QueryPrefix marks a positional argument that queries a resolved path
	// instead of installing.
	QueryPrefix = "get_"

	UnexpectedArgFmt = "unexpected argument %q"
)
