// Package version provides the action version strings.
package version

import (
	_ "embed"
	"runtime"
	"strings"
)

// You can override buildVersion at compile time by using:
//
//	go run -ldflags "-X github.com/dave-wwg/load-secrets-action/version.buildVersion=abc" . --version
//
// On CI, the binaries are always built with the buildVersion variable set.

//go:embed VERSION
var baseVersion string
var buildVersion string

func Version() string {
	return strings.TrimSpace(baseVersion)
}

func BuildVersion() string {
	if buildVersion == "" {
		return "x"
	}
	return buildVersion
}

// BuildNumber renders the version as the integer-style string the 1Password
// CLI expects in OP_INTEGRATION_BUILDNUMBER: each dotted component padded to
// two digits and concatenated, so "1.2.0" becomes "010200".
func BuildNumber() string {
	var b strings.Builder
	for _, p := range strings.Split(Version(), ".") {
		if len(p) < 2 {
			b.WriteString("0")
		}
		b.WriteString(p)
	}
	return b.String()
}

func UserAgent() string {
	return "load-secrets-action/" + Version() + "." + BuildVersion() + " (" + runtime.GOOS + "; " + runtime.GOARCH + ")"
}
