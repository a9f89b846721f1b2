// Package postgres provides a PostgreSQL implementation of driven.GameStore.
//
// The store talks to the server through database/sql using the pgx stdlib
// driver, so several CLI processes and the MCP server can share one game
// catalogue. The schema is versioned with the same migration scheme as the
// SQLite store.
package postgres
