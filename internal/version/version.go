package version

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Format selects how build information is rendered
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// BuildInfo contains build and runtime information
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`

	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Module    string `json:"module" yaml:"module"`

	BuildDeps []Module `json:"build_deps,omitempty" yaml:"build_deps,omitempty"`
}

// Module represents a Go module dependency
type Module struct {
	Path    string `json:"path" yaml:"path"`
	Version string `json:"version" yaml:"version"`
}

// GetBuildInfo returns build information for the running binary
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Module = buildInfo.Main.Path
	for _, dep := range buildInfo.Deps {
		info.BuildDeps = append(info.BuildDeps, Module{
			Path:    dep.Path,
			Version: dep.Version,
		})
	}

	// vcs settings stand in for ldflags that were not provided
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = setting.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = setting.Value
			}
		}
	}

	return info
}

// Render formats build information in the requested format
func Render(info BuildInfo, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return renderText(info), nil
	case FormatJSON:
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal build info: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(info)
		if err != nil {
			return "", fmt.Errorf("failed to marshal build info: %w", err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return "", fmt.Errorf("unsupported build info format: %s", format)
	}
}

func renderText(info BuildInfo) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("minigrep %s\n", info.Version))
	b.WriteString(fmt.Sprintf("  Commit:     %s\n", info.GitCommit))
	b.WriteString(fmt.Sprintf("  Built:      %s\n", info.BuildDate))
	b.WriteString(fmt.Sprintf("  Go Version: %s\n", info.GoVersion))
	b.WriteString(fmt.Sprintf("  Platform:   %s", info.Platform))

	if len(info.BuildDeps) > 0 {
		b.WriteString("\n  Dependencies:")
		for _, dep := range info.BuildDeps {
			b.WriteString(fmt.Sprintf("\n    - %s@%s", dep.Path, dep.Version))
		}
	}

	return b.String()
}
