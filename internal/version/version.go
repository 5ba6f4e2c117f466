// Package version reports the build version of hidbridge.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is set via ldflags at build time: -ldflags "-X github.com/Alia5/hidbridge/internal/version.Version=x.y.z"
var Version = ""

// Get returns the version string set at build time, or "0.0.1-dev" for
// development builds.
func Get() (string, error) {
	if Version == "" {
		return "0.0.1-dev", nil
	}

	v := strings.TrimPrefix(Version, "v")
	base := strings.SplitN(v, "-", 2)[0]
	if !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return v, nil
}

// Parse extracts major, minor, patch from a string like "1.2.3" or "1.2.3-dirty".
func Parse(v string) (major, minor, patch int) {
	v = strings.SplitN(v, "-", 2)[0]
	nums := strings.Split(v, ".")
	if len(nums) >= 1 {
		major, _ = strconv.Atoi(nums[0])
	}
	if len(nums) >= 2 {
		minor, _ = strconv.Atoi(nums[1])
	}
	if len(nums) >= 3 {
		patch, _ = strconv.Atoi(nums[2])
	}
	return
}
