package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set with -ldflags "-X github.com/Sepeciuc/Laborator-6/internal/version.Version=..."
var (
	Version   = "0.3.0"
	GitCommit = "dev"
	BuildDate = "unknown"
)

const name = "firma"

// Info describes the running binary
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns the one-line form used in log output
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s)", name, i.Version, shortCommit(i.GitCommit))
}

// Full returns the multi-line block printed by the version command
func (i Info) Full() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Firma Version Information:\n")
	fmt.Fprintf(&b, "  Version:    %s\n", i.Version)
	fmt.Fprintf(&b, "  Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "  Build Date: %s\n", i.BuildDate)
	fmt.Fprintf(&b, "  Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "  Platform:   %s", i.Platform)
	return b.String()
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	if commit == "" {
		return "unknown"
	}
	return commit
}
