// Package memory provides in-memory implementations of driven ports.
// They back the "memory" storage driver and the service tests.
package memory
