package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/styles"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

const timeLayout = "2006-01-02 15:04"

var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Manage spot-the-difference games",
	Long:  `Create, list, inspect and delete games, and check clicks against them.`,
}

var gameCreateCmd = &cobra.Command{
	Use:   "create <name> <original> <modified>",
	Short: "Create a game from two images",
	Long: `Create a game from an original and a modified image.

The images must match the configured size and the radius must be one of
the allowed radii. The game is rejected unless the number of differences
is within the configured bounds.`,
	Args: cobra.ExactArgs(3),
	RunE: runGameCreate,
}

var gameListCmd = &cobra.Command{
	Use:   "list",
	Short: "List games",
	Args:  cobra.NoArgs,
	RunE:  runGameList,
}

var gameShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a game and its differences",
	Args:  cobra.ExactArgs(1),
	RunE:  runGameShow,
}

var gameDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runGameDelete,
}

var gameCheckCmd = &cobra.Command{
	Use:   "check <id> <x> <y>",
	Short: "Check a click against a game",
	Long: `Check whether the pixel (x, y) lies inside a difference of the game.

Differences already found can be excluded with --found, so a second click
on a found difference counts as a miss.`,
	Args: cobra.ExactArgs(3),
	RunE: runGameCheck,
}

func init() {
	gameCreateCmd.Flags().IntP("radius", "r", -1, "Dilation radius in pixels (-1 = configured default)")
	gameShowCmd.Flags().Bool("json", false, "Print the game as JSON")
	gameCheckCmd.Flags().IntSlice("found", nil, "Indexes of differences already found")

	gameCmd.AddCommand(gameCreateCmd)
	gameCmd.AddCommand(gameListCmd)
	gameCmd.AddCommand(gameShowCmd)
	gameCmd.AddCommand(gameDeleteCmd)
	gameCmd.AddCommand(gameCheckCmd)
	rootCmd.AddCommand(gameCmd)
}

func runGameCreate(cmd *cobra.Command, args []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}
	if imageLoader == nil {
		return errors.New("image loader not configured")
	}

	radius, _ := cmd.Flags().GetInt("radius")

	original, err := imageLoader.Load(args[1])
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}
	modified, err := imageLoader.Load(args[2])
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	game, err := gameService.Create(cmd.Context(), domain.GameDraft{
		Name:     args[0],
		Original: original,
		Modified: modified,
		Radius:   radius,
	})
	if err != nil {
		return fmt.Errorf("create failed: %w", err)
	}

	out := cmd.OutOrStdout()
	st := styles.For(out)
	fmt.Fprintf(out, "%s %s\n", st.Success.Render("Created game "+game.ID), st.Difficulty(game.Difficulty))
	fmt.Fprintf(out, "  Name: %s\n", game.Name)
	fmt.Fprintf(out, "  Differences: %d (radius %d)\n", len(game.Differences), game.Radius)
	return nil
}

func runGameList(cmd *cobra.Command, _ []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}

	games, err := gameService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	out := cmd.OutOrStdout()
	st := styles.For(out)
	if len(games) == 0 {
		fmt.Fprintln(out, st.Muted.Render("No games. Create one with 'polydiff game create'."))
		return nil
	}

	fmt.Fprintln(out, st.Title.Render(fmt.Sprintf("Games (%d)", len(games))))
	for _, g := range games {
		fmt.Fprintf(out, "  %s  %-24s %2d diff(s)  r=%-2d %s  %s\n",
			g.ID, g.Name, g.DifferenceCount, g.Radius,
			st.Difficulty(g.Difficulty),
			st.Muted.Render(g.CreatedAt.Local().Format(timeLayout)))
	}
	return nil
}

func runGameShow(cmd *cobra.Command, args []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}

	asJSON, _ := cmd.Flags().GetBool("json")

	game, err := gameService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("show failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, game)
	}

	st := styles.For(out)
	fmt.Fprintf(out, "%s %s\n", st.Title.Render(game.Name), st.Difficulty(game.Difficulty))
	fmt.Fprintf(out, "  ID: %s\n", game.ID)
	fmt.Fprintf(out, "  Size: %dx%d\n", game.Width, game.Height)
	fmt.Fprintf(out, "  Radius: %d\n", game.Radius)
	fmt.Fprintf(out, "  Difficulty: %s\n", game.Difficulty.Description())
	fmt.Fprintf(out, "  Created: %s\n", game.CreatedAt.Local().Format(timeLayout))
	fmt.Fprintln(out)
	fmt.Fprintln(out, st.Subtitle.Render(fmt.Sprintf("Differences (%d)", len(game.Differences))))
	printDifferences(out, st, game.Differences)
	return nil
}

func runGameDelete(cmd *cobra.Command, args []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}

	if err := gameService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	cmd.Printf("Deleted game %s\n", args[0])
	return nil
}

func runGameCheck(cmd *cobra.Command, args []string) error {
	if gameService == nil {
		return errors.New("game service not configured")
	}

	x, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[1], err)
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[2], err)
	}
	found, _ := cmd.Flags().GetIntSlice("found")

	res, err := gameService.Check(cmd.Context(), args[0], domain.Point{X: x, Y: y}, found)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	out := cmd.OutOrStdout()
	st := styles.For(out)
	if !res.Hit {
		fmt.Fprintf(out, "%s (%d remaining)\n", st.Warning.Render("Miss"), res.Remaining)
		return nil
	}
	fmt.Fprintf(out, "%s difference #%d %s (%d remaining)\n",
		st.Success.Render("Hit!"), res.Index, res.Difference.Bounds(), res.Remaining)
	return nil
}
