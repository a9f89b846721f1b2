package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sucyhan/polydiff-2023-sub000/internal/adapters/driving/styles"
	"github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"
)

var diffCmd = &cobra.Command{
	Use:   "diff <original> <modified>",
	Short: "Find the differences between two images",
	Long: `Compare two same-size images and print the differing regions.

Each region is a set of inclusive rectangles that exactly covers it.
The radius widens every region before regions are separated, so nearby
changes merge into one difference.

Examples:
  polydiff diff park.bmp park_modified.bmp
  polydiff diff a.png b.png --radius 9 --json
  polydiff diff a.png b.png --mask mask.png --preview preview.png`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().IntP("radius", "r", -1, "Dilation radius in pixels (-1 = configured default)")
	diffCmd.Flags().Bool("json", false, "Print the differences as JSON")
	diffCmd.Flags().String("mask", "", "Write the dilated difference mask to this PNG file")
	diffCmd.Flags().String("preview", "", "Write a preview with outlined differences to this PNG file")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	if diffService == nil {
		return errors.New("diff service not configured")
	}
	if imageLoader == nil {
		return errors.New("image loader not configured")
	}

	radius, _ := cmd.Flags().GetInt("radius")
	asJSON, _ := cmd.Flags().GetBool("json")
	maskPath, _ := cmd.Flags().GetString("mask")
	previewPath, _ := cmd.Flags().GetString("preview")

	if previewPath != "" && previewRenderer == nil {
		return errors.New("preview renderer not configured")
	}

	original, err := imageLoader.Load(args[0])
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}
	modified, err := imageLoader.Load(args[1])
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	res, err := diffService.Find(cmd.Context(), original, modified, resolveRadius(radius))
	if err != nil {
		return fmt.Errorf("diff failed: %w", err)
	}

	if maskPath != "" {
		if err := imageLoader.SavePNG(maskPath, res.Mask); err != nil {
			return fmt.Errorf("writing mask failed: %w", err)
		}
	}
	if previewPath != "" {
		if err := previewRenderer.Render(original, res, previewPath); err != nil {
			return fmt.Errorf("writing preview failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, imageDiffs(res))
	}

	st := styles.For(out)
	fmt.Fprintf(out, "%s %s\n",
		st.Title.Render(fmt.Sprintf("%d difference(s)", len(res.Differences))),
		st.Difficulty(res.Difficulty))
	fmt.Fprintln(out, st.Muted.Render(fmt.Sprintf("%dx%d, %.2f%% covered", res.Width, res.Height, res.Coverage())))
	printDifferences(out, st, res.Differences)

	if maskPath != "" {
		fmt.Fprintf(out, "Mask written to %s\n", maskPath)
	}
	if previewPath != "" {
		fmt.Fprintf(out, "Preview written to %s\n", previewPath)
	}
	return nil
}

// resolveRadius replaces a negative radius with the configured default.
func resolveRadius(radius int) int {
	if radius >= 0 {
		return radius
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			return settings.Game.DefaultRadius
		}
	}
	return domain.DefaultAppSettings().Game.DefaultRadius
}

// imageDiffs returns the answer key of res with a non-nil difference list.
func imageDiffs(res *domain.DiffResult) domain.ImageDiffs {
	diffs := res.ImageDiffs
	if diffs.Differences == nil {
		diffs.Differences = []domain.Difference{}
	}
	return diffs
}

func printDifferences(out io.Writer, st *styles.Styles, differences []domain.Difference) {
	for i, d := range differences {
		fmt.Fprintf(out, "  #%-3d %4d rect(s) %7d px  bounds %s\n",
			i, len(d), d.PixelCount(), d.Bounds())
	}
	if len(differences) == 0 {
		fmt.Fprintln(out, st.Muted.Render("  No differences found."))
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
