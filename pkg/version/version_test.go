package version

import (
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBuild replaces the ldflags values and the embedded build info for one test.
func stubBuild(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()

	oldVersion, oldCommit, oldDate, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() {
		Version, Commit, Date, readBuildInfo = oldVersion, oldCommit, oldDate, oldRead
	})

	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetInfo_LdflagsWin(t *testing.T) {
	// Given: stamped values and conflicting VCS info
	stubBuild(t, "v1.2.0", "abc1234", "2026-01-02T03:04:05Z", &debug.BuildInfo{
		Main: debug.Module{Version: "v0.9.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "ffffffffffffffffffff"},
			{Key: "vcs.time", Value: "2020-01-01T00:00:00Z"},
		},
	})

	// When: reading build info
	info := GetInfo()

	// Then: the ldflags values are kept
	assert.Equal(t, "v1.2.0", info.Version)
	assert.Equal(t, "abc1234", info.Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", info.Date)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}

func TestGetInfo_FallsBackToEmbeddedBuildInfo(t *testing.T) {
	stubBuild(t, "dev", "unknown", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	})

	info := GetInfo()

	assert.Equal(t, "v0.3.1", info.Version)
	assert.Equal(t, "0123456789ab-dirty", info.Commit)
	assert.Equal(t, "2026-10-01T12:00:00Z", info.Date)
}

func TestGetInfo_DevelBuildStaysDev(t *testing.T) {
	stubBuild(t, "dev", "unknown", "unknown", &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
	})

	info := GetInfo()

	assert.Equal(t, "dev", info.Version)
	assert.Equal(t, "unknown", info.Commit)
	assert.Equal(t, "unknown", info.Date)
}

func TestGetInfo_NoBuildInfo(t *testing.T) {
	stubBuild(t, "dev", "unknown", "unknown", nil)

	assert.Equal(t, "dev", Short())
}

func TestString_OneLineForm(t *testing.T) {
	stubBuild(t, "v1.0.0", "abc", "2026-01-01", nil)

	assert.Equal(t,
		"logargs v1.0.0 (commit: abc, built: 2026-01-01, go: "+runtime.Version()+", "+runtime.GOOS+"/"+runtime.GOARCH+")",
		String())
	assert.Equal(t, "v1.0.0", Short())
}

func TestBuildInfo_JSONKeys(t *testing.T) {
	data, err := json.Marshal(GetInfo())
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(data, &parsed))

	for _, key := range []string{"version", "commit", "date", "go_version", "os", "arch"} {
		assert.Contains(t, parsed, key)
	}
}
