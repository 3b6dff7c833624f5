// Package storage provides the durable slot that mirrors the task
// collection across sessions. A slot holds one opaque value under one fixed
// name; it carries no knowledge of the task shape.
package storage

// Slot is a single named durable entry. Load returns nil when nothing has
// been stored yet. Save overwrites the previous value; callers never observe
// a partial write.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}
