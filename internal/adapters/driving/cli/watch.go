package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/styles"
	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Create games from image pairs dropped into a directory",
	Long: `Watch a directory and create a game for every image pair.

A pair is two files named <name>_original.<ext> and <name>_modified.<ext>.
Pairs already in the directory are imported first. Replacing either half
of a pair imports it again. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntP("radius", "r", -1, "Dilation radius in pixels (-1 = configured default)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}
	if imageLoader == nil {
		return errors.New("image loader not configured")
	}

	radius, _ := cmd.Flags().GetInt("radius")

	out := cmd.OutOrStdout()
	st := styles.For(out)

	w := watcher.New(args[0], gameService, imageLoader)
	w.Radius = radius
	w.OnEvent = func(ev watcher.Event) {
		if ev.Err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", st.Error.Render("✗"), ev.Name, ev.Err)
			return
		}
		fmt.Fprintf(out, "%s %s: game %s, %d difference(s) %s\n",
			st.Success.Render("✓"), ev.Name, ev.Game.ID, len(ev.Game.Differences),
			st.Difficulty(ev.Game.Difficulty))
	}

	fmt.Fprintf(out, "Watching %s for image pairs (Ctrl+C to stop)\n", args[0])
	if err := w.Run(cmd.Context()); err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
