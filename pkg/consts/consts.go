package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the configuration file looked up in the working directory
	ConfigFile = "prettify.yaml"

	// ConfigFileTOML is looked up when ConfigFile does not exist
	ConfigFileTOML = "prettify.toml"

	// ConfigEnvVar names an alternative configuration file
	ConfigEnvVar = "PRETTIFY_CONFIG"

	// DefaultIndentUnit is the string added per nesting level
	DefaultIndentUnit = "  "

	// DefaultMaxDepth is the number of nesting levels held by the indent table
	DefaultMaxDepth = 100

	// DefaultConcurrency bounds how many files are processed at once
	DefaultConcurrency = 4
)
