package main

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "imagesearch 1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-03")
}

func TestResolveBuildDetails(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})
	version, commit, date = "", "", ""

	fromModule := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v0.4.1"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.time", Value: "2026-09-30T12:00:00Z"},
			},
		}, true
	}

	got := resolveBuildDetails(fromModule)
	require.Equal(t, buildDetails{Version: "v0.4.1", Commit: "0123456", Date: "2026-09-30T12:00:00Z"}, got)

	devel := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	}
	require.Equal(t, buildDetails{Version: "dev", Commit: "none", Date: "unknown"}, resolveBuildDetails(devel))

	unavailable := func() (*debug.BuildInfo, bool) { return nil, false }
	require.Equal(t, "dev", resolveBuildDetails(unavailable).Version)

	version, commit = "1.0.0", "feedbee"
	got = resolveBuildDetails(fromModule)
	require.Equal(t, "1.0.0", got.Version, "ldflags take precedence")
	require.Equal(t, "feedbee", got.Commit)
	require.Equal(t, "2026-09-30T12:00:00Z", got.Date)
}
