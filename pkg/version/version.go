// Package version exposes the build version of intersections.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// version is set at build time:
//
//	go build -ldflags "-X github.com/rshade/intersections/pkg/version.version=1.2.3"
var version = "0.1.0-dev" //nolint:gochecknoglobals // Overridden via ldflags.

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}

// Parse returns the build version as a semantic version.
func Parse() (*semver.Version, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("build version %q is not a semantic version: %w", version, err)
	}
	return v, nil
}

// IsDevelopment reports whether this is an unreleased build, i.e. the version
// carries a prerelease tag or cannot be parsed.
func IsDevelopment() bool {
	v, err := Parse()
	return err != nil || v.Prerelease() != ""
}
