package buildinfo

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestVersion(t *testing.T) {
	stubBuildInfo(t, nil, false)
	assert.Equal(t, "dev", Version())
	assert.Empty(t, Tags())

	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true)
	assert.Equal(t, "dev", Version())

	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{{Key: "-tags", Value: "nosyntaxhighlight"}},
	}, true)
	assert.Equal(t, "v1.2.3", Version())
	assert.Equal(t, "nosyntaxhighlight", Tags())
}

func TestDescribe(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v1.2.3"}}, true)
	assert.Equal(t,
		"gitnav v1.2.3 ("+runtime.Version()+", "+runtime.GOOS+"/"+runtime.GOARCH+")",
		Describe("gitnav"),
	)

	stubBuildInfo(t, &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "-tags", Value: "nosyntaxhighlight"}},
	}, true)
	assert.Contains(t, Describe("gitnav"), "gitnav dev (")
	assert.Contains(t, Describe("gitnav"), ", tags: nosyntaxhighlight)")
}
