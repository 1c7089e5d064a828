package messages

// Fetcher and installer messages.
const (
	// FetchCreateRequestErrFmt formats request construction errors.
	FetchCreateRequestErrFmt = "create request for %s: %w"
	FetchFailedFmt           = "fetch %s: %w"
	FetchUnexpectedStatusFmt = "fetch %s: unexpected status %s"
	FetchInsecureRedirectFmt = "refusing redirect to non-HTTPS url %s"
	FetchWriteDestFmt        = "write %s: %w"
	FetchDownloadedFmt       = "Downloaded %s\n"

	CopySourceMissingFmt = "local source %s: %w"
	CopyCreateDestFmt    = "create %s: %w"
	CopiedFmt            = "Copied %s\n"

	// InstallNoShareDir is fatal: there is nowhere to install to.
	InstallNoShareDir = "no suitable installation directory exists (tried /opt/homebrew/share, /usr/local/share, /usr/share)"
	// InstallNoBinDir is fatal: the entry point would not be reachable.
	InstallNoBinDir = "no suitable bin directory found on PATH (tried /opt/homebrew/bin, /usr/local/bin, /usr/bin, /bin)"

	InstallCreateDirFailedFmt = "create directory %s: %w"
	InstallPlaceFailedFmt     = "install %s to %s: %w"
	InstallCompleteFmt        = "RamaLama installed: %s and %s\n"

	InstallOverwritePromptFmt = "ramalama is already installed at %s. Reinstall?"
	InstallCancelled          = "installation cancelled"

	WorkspaceCreateFailedFmt = "create temporary workspace: %w"
)
