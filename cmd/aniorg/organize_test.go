package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/aniorg/internal/config"
	"github.com/vmunix/aniorg/internal/organizer"
)

func testConfig() *config.Config {
	return config.Default()
}

func setFlag(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, organizeCmd.Flags().Set(name, value))
	t.Cleanup(func() {
		f := organizeCmd.Flags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestBuildOrganizeOptions_FlagsOverrideConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Organize.Source = "/cfg/source"
	cfg.Organize.Mode = "copy"

	setFlag(t, "source", "/flag/source")
	setFlag(t, "mode", "move")

	opts, err := buildOrganizeOptions(organizeCmd, cfg)
	require.NoError(t, err)

	assert.Equal(t, "/flag/source", opts.source)
	assert.Equal(t, organizer.ModeMove, opts.mode)
	// Target defaults to source when neither flag nor config sets it.
	assert.Equal(t, "/flag/source", opts.target)
}

func TestBuildOrganizeOptions_ConfigFallback(t *testing.T) {
	cfg := testConfig()
	cfg.Organize.Source = "/cfg/source"
	cfg.Organize.Target = "/cfg/target"
	cfg.Organize.Fallback = "copy"

	opts, err := buildOrganizeOptions(organizeCmd, cfg)
	require.NoError(t, err)

	assert.Equal(t, "/cfg/source", opts.source)
	assert.Equal(t, "/cfg/target", opts.target)
	assert.Equal(t, organizer.ModeLink, opts.mode) // config default
	require.NotNil(t, opts.fallback)
	assert.Equal(t, organizer.ModeCopy, *opts.fallback)
}

func TestBuildOrganizeOptions_SourceRequired(t *testing.T) {
	_, err := buildOrganizeOptions(organizeCmd, testConfig())
	assert.Error(t, err)
}

func TestBuildOrganizeOptions_LinkFallbackRejected(t *testing.T) {
	cfg := testConfig()
	cfg.Organize.Source = "/src"
	cfg.Organize.Fallback = "move"

	setFlag(t, "fallback", "link")

	_, err := buildOrganizeOptions(organizeCmd, cfg)
	assert.Error(t, err)
}

func TestIsLinkFallbackError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"cross device", fmt.Errorf("%w: link a b", organizer.ErrCrossDevice), true},
		{"unsupported", fmt.Errorf("%w: link a b", organizer.ErrLinkUnsupported), true},
		{"generic io", errors.New("disk exploded"), false},
		{"missing source", syscall.ENOENT, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isLinkFallbackError(tt.err))
		})
	}
}

func TestListTitleDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "葬送的芙莉蓮"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "SPY x FAMILY"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.mp4"), []byte("x"), 0o644))

	titles := listTitleDirs(root)
	assert.ElementsMatch(t, []string{"葬送的芙莉蓮", "SPY x FAMILY"}, titles)
}

func TestListTitleDirs_MissingRoot(t *testing.T) {
	assert.Nil(t, listTitleDirs(filepath.Join(t.TempDir(), "missing")))
}

func useTestConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aniorg.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	prev := configPath
	configPath = path
	t.Cleanup(func() { configPath = prev })
}

func TestRunOrganize_Batch(t *testing.T) {
	useTestConfigFile(t, "")

	source := t.TempDir()
	target := t.TempDir()
	writeTestFile(t, source, "[ANi] 测试 - 1 [1080P].mp4", "episode one")
	writeTestFile(t, source, "[ANi] 测试 - 2 [1080P].mp4", "episode two")
	writeTestFile(t, source, "unparseable.mp4", "skipped")
	writeTestFile(t, source, "notes.txt", "not a video")

	setFlag(t, "source", source)
	setFlag(t, "target", target)
	setFlag(t, "mode", "copy")

	require.NoError(t, runOrganize(organizeCmd, nil))

	assert.FileExists(t, filepath.Join(target, "测试", "01 [1080P].mp4"))
	assert.FileExists(t, filepath.Join(target, "测试", "02 [1080P].mp4"))
	// Skipped files stay put and produce no output.
	assert.FileExists(t, filepath.Join(source, "unparseable.mp4"))
	assert.NoFileExists(t, filepath.Join(target, "unparseable.mp4"))
}

func TestRunOrganize_DryRunTouchesNothing(t *testing.T) {
	useTestConfigFile(t, "")

	source := t.TempDir()
	target := t.TempDir()
	writeTestFile(t, source, "[ANi] 测试 - 1 [1080P].mp4", "content")

	setFlag(t, "source", source)
	setFlag(t, "target", target)
	setFlag(t, "mode", "move")
	setFlag(t, "dry-run", "true")

	require.NoError(t, runOrganize(organizeCmd, nil))

	assert.FileExists(t, filepath.Join(source, "[ANi] 测试 - 1 [1080P].mp4"))
	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunOrganize_MissingSource(t *testing.T) {
	useTestConfigFile(t, "")

	setFlag(t, "source", filepath.Join(t.TempDir(), "missing"))

	err := runOrganize(organizeCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, organizer.ErrSourceNotFound)
}

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
