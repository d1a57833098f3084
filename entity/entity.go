package entity

import "sync/atomic"

// ID is a stable handle for an entity known to the world. The zero value is
// never allocated and can be used as a "no entity" sentinel.
type ID uint64

var lastID atomic.Uint64

// NextID allocates a fresh entity ID. IDs are process-wide unique.
func NextID() ID {
	return ID(lastID.Add(1))
}
