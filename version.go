// Package workreport creates daily work report files from a template and
// archives previous reports into a year/month directory tree.
package workreport

import (
	"fmt"
)

// AppName is the name of the command-line tool.
const AppName = "workreport"

var (
	version string
	build   string
)

// Version returns the application version and build information.
// The version and build values are injected at compile time via ldflags.
func Version() string {
	return fmt.Sprintf("%s (%s)", version, build)
}
