package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wintz-generator/internal/config"
	"wintz-generator/internal/gen"
)

const windowsZones = `<supplementalData>
	<windowsZones>
		<mapTimezones type="windows">
			<mapZone other="Pacific Standard Time" territory="001" type="America/Los_Angeles"/>
			<mapZone other="Eastern Standard Time" territory="001" type="America/New_York"/>
			<mapZone other="Pacific Standard Time" territory="CA" type="America/Vancouver"/>
		</mapTimezones>
	</windowsZones>
</supplementalData>`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeSource(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "windowsZones.xml")
	require.NoError(t, os.WriteFile(path, []byte(windowsZones), 0o644))

	return path
}

func TestRootCommand_WritesOutput(t *testing.T) {
	src := writeSource(t)
	out := filepath.Join(t.TempDir(), "windows_tznames.zig")

	_, stderr, err := execute(t, "--url", src, "--output", out)
	require.NoError(t, err)

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Contains(t, string(content), "pub const windows_names = [_][]const u8{\n    \"Eastern Standard Time\",\n    \"Pacific Standard Time\",\n};")
	assert.Contains(t, string(content), "pub const iana_names = [_][]const u8{\n    \"America/New_York\",\n    \"America/Los_Angeles\",\n};")
	assert.Contains(t, stderr, "Done")
}

func TestRootCommand_DryRunGo(t *testing.T) {
	src := writeSource(t)

	stdout, _, err := execute(t, "--url", "file://"+filepath.ToSlash(src), "--format", "go", "--package", "tz", "--dry-run", "--log-level", "error")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "// Code generated by wintz-generator. DO NOT EDIT."))
	assert.Contains(t, stdout, "package tz\n")
}

func TestRootCommand_Failures(t *testing.T) {
	src := writeSource(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing source", []string{"--url", filepath.Join(t.TempDir(), "missing.xml"), "--dry-run"}},
		{"unknown format", []string{"--url", src, "--format", "rust", "--dry-run"}},
		{"bad log level", []string{"--url", src, "--log-level", "loud", "--dry-run"}},
		{"missing output dir", []string{"--url", src, "--output", filepath.Join(t.TempDir(), "no", "such", "dir.zig")}},
		{"positional args", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestResolve_Precedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "wintz.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: from-file.go\nformat: go\npackage: fromfile\n"), 0o644))

	opts := &rootOptions{}
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--package", "fromflag", "--debug-dir", "/tmp/debug"}))

	opts.configFile, _ = cmd.Flags().GetString("config")
	opts.pkg, _ = cmd.Flags().GetString("package")
	opts.debugDir, _ = cmd.Flags().GetString("debug-dir")

	cfg, err := opts.resolve(cmd.Flags())
	require.NoError(t, err)

	assert.Equal(t, "from-file.go", cfg.Output)
	assert.Equal(t, gen.FormatGo, cfg.Format)
	assert.Equal(t, "fromflag", cfg.Package)
	assert.Equal(t, "/tmp/debug", cfg.DebugDir)
	assert.Equal(t, config.DefaultURL, cfg.URL)
}

func TestResolve_Defaults(t *testing.T) {
	cmd := newRootCommand()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := (&rootOptions{}).resolve(cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
