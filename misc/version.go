// Package misc keeps build time information about the program.
package misc

// Set by the linker: -X cldump/misc.version=... -X cldump/misc.gitHash=...
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "cldump"

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns git hash of the source program was built from.
func GetGitHash() string {
	return gitHash
}

// GetAppName returns program name, suitable for file and logger names.
func GetAppName() string {
	return appName
}
