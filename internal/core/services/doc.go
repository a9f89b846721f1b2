// Package services implements the driving port interfaces.
// Services contain the game-creation logic and orchestrate
// calls to the difference engine and the driven ports (adapters).
//
// Services are pure Go with no CGO or external dependencies.
package services
