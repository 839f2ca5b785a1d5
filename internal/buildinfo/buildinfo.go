// Package buildinfo reports how the running binary was built.
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var readBuildInfo = debug.ReadBuildInfo

// Version returns the module version or "dev" when unset.
func Version() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return "dev"
}

// Tags returns the build tags recorded at compile time, e.g.
// "nosyntaxhighlight".
func Tags() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "-tags" {
			return setting.Value
		}
	}
	return ""
}

// Describe renders the --version line for name.
func Describe(name string) string {
	details := []string{runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH}
	if tags := Tags(); tags != "" {
		details = append(details, "tags: "+tags)
	}
	return fmt.Sprintf("%s %s (%s)", name, Version(), strings.Join(details, ", "))
}
