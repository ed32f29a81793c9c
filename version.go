package inkline

import (
	_ "embed"
	"regexp"
	"strings"
)

//go:embed VERSION
var rawVersion string

// SemVer 2.0.0 core grammar, pre-release and build metadata included.
var semverRE = regexp.MustCompile(
	`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?` +
		`(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the library version, without the leading "v".
func Version() string {
	return strings.TrimSpace(rawVersion)
}

// VersionTag returns the version as a git tag, "v" prefix included.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a valid SemVer 2.0.0 version string.
// Surrounding whitespace is ignored; a leading "v" is not accepted.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded version parses as
// SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
