// Package buildinfo carries version data injected at link time:
//
//	go build -ldflags "-X github.com/dmitrijs2005/neumodiag/internal/buildinfo.Version=v1.2.0"
package buildinfo

const notAvailable = "N/A"

var (
	Version = notAvailable
	Date    = notAvailable
	Commit  = notAvailable
)

// LogArgs returns the build data as key-value pairs for a structured logger.
func LogArgs() []any {
	return []any{"version", Version, "date", Date, "commit", Commit}
}
