// Package contracts holds cross-cutting definitions shared by every
// component: the version identity and, under domain/, the table record
// types.
package contracts

import (
	"fmt"
	"runtime"
)

const (
	// Version is the current version of the generator
	Version = "0.1.0"

	// DataFormatVersion is the version of the table layouts
	DataFormatVersion = "v1"
)

// VersionString returns the full version string with build info
func VersionString() string {
	return fmt.Sprintf("finsynth %s (%s, %s/%s)",
		Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
