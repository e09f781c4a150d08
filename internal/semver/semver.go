// Package semver parses the version strings carried by OpenAPI documents.
//
// Both "major.minor" (Swagger's "2.0") and "major.minor.patch" forms are
// accepted, with an optional "-prerelease" and "+build" suffix.
package semver

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is a parsed document version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

// Parse parses s into a Version.
func Parse(s string) (Version, error) {
	var v Version
	core := strings.TrimSpace(s)
	if idx := strings.IndexByte(core, '+'); idx >= 0 {
		v.Build = core[idx+1:]
		core = core[:idx]
	}
	if idx := strings.IndexByte(core, '-'); idx >= 0 {
		v.Prerelease = core[idx+1:]
		core = core[:idx]
	}

	parts := strings.Split(core, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	var err error
	if v.Major, err = component(parts[0]); err != nil {
		return Version{}, fmt.Errorf("invalid major version: %q", parts[0])
	}
	if v.Minor, err = component(parts[1]); err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %q", parts[1])
	}
	if len(parts) == 3 {
		if v.Patch, err = component(parts[2]); err != nil {
			return Version{}, fmt.Errorf("invalid patch version: %q", parts[2])
		}
	}
	return v, nil
}

func component(s string) (int, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n > math.MaxInt32 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

// MajorVersion returns the leading component of s.
func MajorVersion(s string) (int, error) {
	v, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return v.Major, nil
}
