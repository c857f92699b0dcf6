// Package version carries build-time metadata for the eff binary.
package version

import "fmt"

// Populated by the Go linker at build time; see the Build mage target.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String renders the metadata the way eff --version prints it.
func String() string {
	return fmt.Sprintf("eff %s (%s, built %s)", Version, CommitHash, BuildDate)
}
