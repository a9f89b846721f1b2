package cli

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/imagefile"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/render"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driven/storage/memory"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/services"
)

// setupTestServices wires real services over in-memory stores with the
// image size check disabled. It returns a cleanup function.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	settings := services.NewSettingsService(memory.NewConfigStore())
	require.NoError(t, settings.Set("image.width", "0"))
	require.NoError(t, settings.Set("image.height", "0"))

	diff := services.NewDiffService()
	SetServices(&Services{
		Diff:     diff,
		Game:     services.NewGameService(memory.NewGameStore(), diff, settings),
		Settings: settings,
		Images:   imagefile.NewLoader(),
		Preview:  render.NewRenderer(),
	})

	return func() {
		SetServices(nil)
	}
}

// execute runs the root command with args and returns its output.
// Flags are reset afterwards so tests do not leak state.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writePair writes a 120x40 white original and a modified copy with three
// black 5x5 squares at x = 10, 50 and 90, y = 10.
func writePair(t *testing.T, dir, name string) (original, modified string) {
	t.Helper()

	orig := image.NewRGBA(image.Rect(0, 0, 120, 40))
	mod := image.NewRGBA(image.Rect(0, 0, 120, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 120; x++ {
			orig.Set(x, y, color.White)
			mod.Set(x, y, color.White)
		}
	}
	for _, x0 := range []int{10, 50, 90} {
		for y := 10; y < 15; y++ {
			for x := x0; x < x0+5; x++ {
				mod.Set(x, y, color.Black)
			}
		}
	}

	loader := imagefile.NewLoader()
	original = filepath.Join(dir, name+"_original.png")
	modified = filepath.Join(dir, name+"_modified.png")
	require.NoError(t, loader.SavePNG(original, orig))
	require.NoError(t, loader.SavePNG(modified, mod))
	return original, modified
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "polydiff", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)

	flag = rootCmd.PersistentFlags().Lookup("config-dir")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_BootstrapSetsServices(t *testing.T) {
	defer SetServices(nil)
	defer SetBootstrap(nil)

	var gotDir string
	closed := false
	SetBootstrap(func(_ context.Context, dir string) (*Services, func() error, error) {
		gotDir = dir
		return &Services{Settings: services.NewSettingsService(memory.NewConfigStore())},
			func() error { closed = true; return nil }, nil
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--config-dir", "/tmp/polydiff-test", "settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/tmp/polydiff-test", gotDir)
	assert.True(t, closed)
	assert.Contains(t, buf.String(), "Current Settings")
}

func TestRootCmd_BootstrapFailure(t *testing.T) {
	defer SetBootstrap(nil)

	SetBootstrap(func(_ context.Context, _ string) (*Services, func() error, error) {
		return nil, nil, errors.New("database locked")
	})

	_, err := execute(t, "game", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialisation failed")
	assert.Contains(t, err.Error(), "database locked")
}

func TestRootCmd_VersionSkipsBootstrap(t *testing.T) {
	defer SetBootstrap(nil)

	called := false
	SetBootstrap(func(_ context.Context, _ string) (*Services, func() error, error) {
		called = true
		return &Services{}, nil, nil
	})

	_, err := execute(t, "version")

	require.NoError(t, err)
	assert.False(t, called)
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
