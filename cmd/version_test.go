package cmd

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Runs(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.NotEmpty(t, out.String())
}

func TestWriteVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		ok   bool
		want string
	}{
		{"no build info", nil, false, "version: unknown\n"},
		{"no version", &debug.BuildInfo{}, true, "version: unknown\n"},
		{
			"release",
			&debug.BuildInfo{GoVersion: "go1.25.1", Main: debug.Module{Version: "v0.3.0"}},
			true,
			"wirefuzz\tv0.3.0\ngo\t\tgo1.25.1\n",
		},
		{
			"with revision",
			&debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      debug.Module{Version: "(devel)"},
				Settings:  []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}, {Key: "vcs.modified", Value: "false"}},
			},
			true,
			"wirefuzz\t(devel)\nrevision\tabc123\ngo\t\tgo1.25.1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			writeVersion(&out, tt.info, tt.ok)
			assert.Equal(t, tt.want, out.String())
		})
	}
}
