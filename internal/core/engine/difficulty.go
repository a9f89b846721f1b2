package engine

import "github.com/sucyhan/polydiff-2023-sub000/internal/core/domain"

// A result is Difficile when it has at least HardMinDifferences differences
// covering at most HardMaxCoverage percent of the image. Both bounds are
// inclusive.
const (
	HardMinDifferences = 7
	HardMaxCoverage    = 15.0
)

// Classify rates a set of differences found on an image of totalPixels.
func Classify(differences []domain.Difference, totalPixels int) domain.Difficulty {
	covered := 0
	for _, d := range differences {
		covered += d.PixelCount()
	}
	return Rate(len(differences), Coverage(covered, totalPixels))
}

// Coverage returns covered as a percentage of total.
func Coverage(covered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(covered) / float64(total)
}

// Rate returns the difficulty for count differences covering coverage
// percent of the image.
func Rate(count int, coverage float64) domain.Difficulty {
	if count >= HardMinDifferences && coverage <= HardMaxCoverage {
		return domain.DifficultyHard
	}
	return domain.DifficultyEasy
}
