package messages

// Platform detection and dependency provisioning messages.
const (
	// PlatformUnsupportedFmt names an operating system the installer cannot handle.
	PlatformUnsupportedFmt = "unsupported operating system %q"
	// PlatformRootOnDarwin rejects root invocations on macOS, where Homebrew
	// refuses to run as root.
	PlatformRootOnDarwin = "ramalama-install must not be run as root on macOS"
	PlatformBrewMissing  = "Homebrew is required on macOS; install it from https://brew.sh and re-run the installer"
	PlatformSudoMissing  = "this installer must run as root or have the sudo command available"

	PlatformDetectedFmt     = "Detected %s host%s\n"
	PlatformDistroSuffixFmt = " (%s)"

	PkgInstallFailedFmt   = "Warning: %s failed to install %s; continuing\n"
	PkgIndexRefreshFailed = "Warning: package index refresh failed; continuing\n"
	RuntimePresentFmt     = "Container engine %s is already installed\n"
	RuntimeProvisionedFmt = "Installed container engine %s\n"
	RuntimeUnavailable    = "Warning: no container engine could be installed; RamaLama will run models on the host\n"

	NativeInstalledFmt = "Installed ramalama with %s\n"
)
