package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ayn2op/spinwheel/internal/config"
	"github.com/ayn2op/spinwheel/internal/demo"
	"github.com/ayn2op/spinwheel/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	cmd := NewRootCmd()
	assert.True(t, strings.HasPrefix(cmd.Use, "spinwheel "))
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, demo.Names(), cmd.ValidArgs)

	for _, name := range []string{"config", "verbose", "log-file"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"visible", "cyclic", "horizontal", "snapshot"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestListCmd(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(demo.Names(), "\n")+"\n", out)
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "--config", filepath.Join(dir, "missing.conf"), "--snapshot", "60x20", "cities")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 20)
	assert.Contains(t, lines[0], "Cities")
	assert.Contains(t, out, "Selected: Montreal, Canada")
}

func TestSnapshotWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "spinwheel.log")
	_, err := execute(t, "--config", filepath.Join(dir, "missing.conf"), "--log-file", logPath, "--snapshot", "40x12", "slot")
	require.NoError(t, err)
	assert.FileExists(t, logPath)
}

func TestSnapshotInvalidSize(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", filepath.Join(dir, "missing.conf"), "--snapshot", "wide", "time")
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestUnknownDemo(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "--config", filepath.Join(dir, "missing.conf"), "--snapshot", "40x12", "roulette")
	require.ErrorIs(t, err, demo.ErrUnknownDemo)
}

func TestTooManyArgs(t *testing.T) {
	_, err := execute(t, "time", "date")
	require.Error(t, err)
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in            string
		width, height int
		ok            bool
	}{
		{"80x24", 80, 24, true},
		{"120X40", 120, 40, true},
		{" 10 x 5 ", 10, 5, true},
		{"80", 0, 0, false},
		{"0x24", 0, 0, false},
		{"80x-1", 0, 0, false},
		{"axb", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			width, height, err := parseSize(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.width, width)
			assert.Equal(t, tt.height, height)
		})
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spinwheel.conf")
	cfg := config.New()
	cfg.Wheel.VisibleItems = 7
	cfg.Wheel.Cyclic = true
	require.NoError(t, config.Save(cfg, path))

	opts := &rootOptions{cfgFile: path, logger: logging.Nop()}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--visible", "3", "--horizontal"}))

	loaded, err := opts.loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Wheel.VisibleItems)
	assert.True(t, loaded.Wheel.Cyclic)
	assert.True(t, loaded.Horizontal())

	demoOpts := opts.demoOptions(loaded)
	assert.Equal(t, 3, demoOpts.Engine.VisibleItems)
	assert.True(t, demoOpts.Engine.Cyclic)
	assert.True(t, demoOpts.Horizontal)
	assert.Equal(t, cfg.Wheel.DimmedAlpha, demoOpts.DimmedAlpha)
}

func TestFlagsAreValidated(t *testing.T) {
	opts := &rootOptions{cfgFile: filepath.Join(t.TempDir(), "missing.conf"), logger: logging.Nop()}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--visible", "0"}))

	_, err := opts.loadConfig(cmd)
	require.ErrorIs(t, err, config.ErrInvalidVisibleItems)
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "spinwheel.conf")

	out, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	out, err = execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	assert.FileExists(t, path)

	_, err = execute(t, "--config", path, "config", "init")
	require.ErrorIs(t, err, ErrConfigExists)

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	out, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[wheel]")
	assert.Contains(t, out, "visible_items")
	assert.Contains(t, out, "[scroller]")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), out)
}
