package version

import (
	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	promversion "github.com/prometheus/common/version"
)

// Set at build time with -ldflags "-X jobportal-auth/internal/version.Version=...".
var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ")"
}

// Collector exposes <program>_build_info labelled with the values above.
func Collector(program string) prometheus.Collector {
	promversion.Version = Version
	promversion.Revision = GitCommit
	promversion.BuildDate = BuildTime
	return versioncollector.NewCollector(program)
}
