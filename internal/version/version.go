// Package version resolves the version string printed by the sveasm CLI.
package version

import (
	"runtime/debug"
	"strings"
)

// Default is the version reported when neither the build info nor the linker
// flag carry one.
const Default = "dev"

// modulePath is the path of this module in go.mod require statements.
const modulePath = "github.com/tetratelabs/sveasm"

// version is set with -ldflags "-X github.com/tetratelabs/sveasm/internal/version.version=..."
// for release builds of the CLI.
var version string

// GetSveasmVersion returns the version of sveasm, either set by ldflag or found
// in the build info.
//
// When sveasm is a dependency, the returned string matches its require
// statement, e.g. "v0.1.2-12314124-abcd". When it is the main module, such as
// in the CLI, the main module version is used.
func GetSveasmVersion() (ret string) {
	if len(version) != 0 {
		return version
	}

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, dep := range info.Deps {
			if strings.HasPrefix(dep.Path, modulePath) {
				ret = dep.Version
			}
		}
		if versionMissing(ret) {
			ret = info.Main.Version
		}
	}
	if versionMissing(ret) {
		return Default
	}

	version = ret
	return ret
}

func versionMissing(ret string) bool {
	return ret == "" || ret == "(devel)"
}
