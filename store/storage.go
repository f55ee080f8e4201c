// Package store keeps submitted response records in one named slot of a
// key-value Storage. The slot holds a JSON array that is read and
// rewritten wholesale on every append.
package store

import (
	"context"
	"errors"
)

// ErrCorrupted marks a slot whose content is not a JSON array of records.
var ErrCorrupted = errors.New("stored responses are corrupted")

// Storage is a durable get/set-by-key capability. Get reports found=false
// for a key that was never set.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
