// Package storage provides the per-node in-memory key-value store with
// last-writer-wins update semantics.
package storage
