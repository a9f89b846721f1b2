// Package cli provides the polydiff command-line interface.
//
// Commands read their dependencies from package-level service variables
// that are populated by the bootstrap function registered with
// SetBootstrap, or directly through SetServices in tests.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driven"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/ports/driving"
	"github.com/sucyhan/polydiff-2023-sub000/internal/logger"
)

// version is set at build time.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services used by commands.
var (
	diffService     driving.DiffService
	gameService     driving.GameService
	settingsService driving.SettingsService
	imageLoader     driven.ImageLoader
	previewRenderer driven.PreviewRenderer
)

// Services groups the ports the commands operate on.
type Services struct {
	Diff     driving.DiffService
	Game     driving.GameService
	Settings driving.SettingsService
	Images   driven.ImageLoader
	Preview  driven.PreviewRenderer
}

// BootstrapFunc builds the services once global flags are parsed.
// The returned closer is called after the command finishes.
type BootstrapFunc func(ctx context.Context, configDir string) (*Services, func() error, error)

var (
	bootstrap BootstrapFunc
	closer    func() error
)

// skipBootstrap marks commands that run without services.
const skipBootstrap = "skip-bootstrap"

var rootCmd = &cobra.Command{
	Use:   "polydiff",
	Short: "Create and validate spot-the-difference games",
	Long: `polydiff compares two same-size images, extracts the regions that differ
and encodes each region as a set of rectangles. Games built from those
regions are stored and can be played by checking clicks against them.`,
	SilenceUsage:      true,
	PersistentPreRunE: persistentPreRun,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.polydiff)")
}

func persistentPreRun(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipBootstrap] == "true" || bootstrap == nil {
		return nil
	}

	services, cleanup, err := bootstrap(cmd.Context(), configDir)
	if err != nil {
		return fmt.Errorf("initialisation failed: %w", err)
	}
	SetServices(services)
	closer = cleanup
	return nil
}

// SetBootstrap registers the function that builds services before a
// command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices sets the services used by commands.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	diffService = s.Diff
	gameService = s.Game
	settingsService = s.Settings
	imageLoader = s.Images
	previewRenderer = s.Preview
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closer != nil {
		if cerr := closer(); cerr != nil {
			logger.Warn("closing resources: %v", cerr)
		}
		closer = nil
	}
	return err
}
