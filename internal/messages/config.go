package messages

// Installer configuration messages.
const (
	// ConfigReadFailedFmt formats a config file read failure.
	ConfigReadFailedFmt = "read config %s: %w"
	// ConfigParseFailedFmt formats a TOML parse failure.
	ConfigParseFailedFmt = "parse config %s: %w"
	// ConfigExpandHomeFailedFmt formats a home-directory expansion failure.
	ConfigExpandHomeFailedFmt = "expand config path %s: %w"
)
