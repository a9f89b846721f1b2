package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/styles"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure game rules, the expected image size and storage.

Use subcommands to show or change individual settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting and save it to the configuration file.

Keys:
  game.default_radius    radius used when none is given
  game.allowed_radii     radii a creator may pick, e.g. "0,3,9,15"
  game.min_differences   fewest differences a game may have
  game.max_differences   most differences a game may have
  image.width            expected image width (0 = any)
  image.height           expected image height (0 = any)
  storage.driver         sqlite, postgres or memory
  storage.dsn            PostgreSQL connection string
  storage.data_dir       SQLite database directory`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	st := styles.For(out)

	fmt.Fprintln(out, st.Title.Render("Current Settings"))
	fmt.Fprintln(out)

	fmt.Fprintln(out, st.Subtitle.Render("[Game]"))
	fmt.Fprintf(out, "  Default radius: %d\n", settings.Game.DefaultRadius)
	fmt.Fprintf(out, "  Allowed radii: %s\n", joinInts(settings.Game.AllowedRadii))
	fmt.Fprintf(out, "  Differences: %d to %d\n", settings.Game.MinDifferences, settings.Game.MaxDifferences)
	fmt.Fprintln(out)

	fmt.Fprintln(out, st.Subtitle.Render("[Image]"))
	if settings.Image.Enforced() {
		fmt.Fprintf(out, "  Size: %dx%d\n", settings.Image.Width, settings.Image.Height)
	} else {
		fmt.Fprintln(out, "  Size: any")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, st.Subtitle.Render("[Storage]"))
	fmt.Fprintf(out, "  Driver: %s\n", settings.Storage.Driver.Description())
	if settings.Storage.Driver.RequiresDSN() {
		if settings.Storage.DSN != "" {
			fmt.Fprintf(out, "  DSN: %s\n", maskDSN(settings.Storage.DSN))
		} else {
			fmt.Fprintln(out, "  DSN: (not set)")
		}
	}
	if settings.Storage.DataDir != "" {
		fmt.Fprintf(out, "  Data dir: %s\n", settings.Storage.DataDir)
	}
	fmt.Fprintln(out)

	if err := settings.Validate(); err != nil {
		fmt.Fprintln(out, st.Warning.Render(fmt.Sprintf("Warning: %v", err)))
		fmt.Fprintln(out, "Run 'polydiff settings set' to fix configuration issues.")
	} else {
		fmt.Fprintln(out, st.Success.Render("Configuration is valid."))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "any"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// maskDSN hides the password of a connection URL.
func maskDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); !ok {
		return dsn
	}
	u.User = url.UserPassword(u.User.Username(), "xxxxx")
	return u.String()
}
