package domain

import (
	"image"
	"time"
)

// Game is a persisted spot-the-difference record. Its differences are the
// authoritative answer key used to validate player clicks.
type Game struct {
	// ID is the unique identifier for the game.
	ID string `json:"id"`

	// Name is the human-readable title chosen by the creator.
	Name string `json:"name"`

	// Radius is the dilation radius the differences were computed with.
	Radius int `json:"radius"`

	// Width and Height are the dimensions of both images.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Differences is the answer key.
	Differences []Difference `json:"differences"`

	// Difficulty is the rating computed alongside the differences.
	Difficulty Difficulty `json:"difficulty"`

	// CreatedAt is when the game was created.
	CreatedAt time.Time `json:"created_at"`
}

// Summary returns the listing view of the game.
func (g *Game) Summary() GameSummary {
	return GameSummary{
		ID:              g.ID,
		Name:            g.Name,
		Radius:          g.Radius,
		DifferenceCount: len(g.Differences),
		Difficulty:      g.Difficulty,
		CreatedAt:       g.CreatedAt,
	}
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	c := *g
	if g.Differences != nil {
		c.Differences = make([]Difference, len(g.Differences))
		for i, d := range g.Differences {
			c.Differences[i] = append(Difference(nil), d...)
		}
	}
	return &c
}

// GameSummary is a compact view of a game for listings.
type GameSummary struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Radius          int        `json:"radius"`
	DifferenceCount int        `json:"difference_count"`
	Difficulty      Difficulty `json:"difficulty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// GameDraft is the creator's input to the game creation workflow.
type GameDraft struct {
	// Name is the title of the new game.
	Name string

	// Original and Modified are the two images to compare.
	Original *image.RGBA
	Modified *image.RGBA

	// Radius is the dilation radius. A negative value selects the
	// configured default.
	Radius int
}

// CheckResult is the outcome of validating a player's click.
type CheckResult struct {
	// Hit is true when the click landed inside an undiscovered difference.
	Hit bool `json:"hit"`

	// Index is the position of the hit difference in the game's answer
	// key, or -1 on a miss.
	Index int `json:"index"`

	// Difference is the hit difference, nil on a miss.
	Difference Difference `json:"difference,omitempty"`

	// Remaining is the number of differences still undiscovered after
	// this click.
	Remaining int `json:"remaining"`
}
