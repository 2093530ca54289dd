// Package service owns the live task collection and its persistence.
package service

import (
	"context"

	"ltask/internal/task"
)

// Service is the surface the command layer drives.
// Commands never touch storage or codecs directly.
type Service interface {
	// Load reads the stored collection, falling back to the seed collection
	// when nothing valid is stored. It never fails.
	Load(ctx context.Context) task.Collection

	// Save writes c in full and makes it the current collection.
	Save(ctx context.Context, c task.Collection) error

	// Tasks returns the current collection, loading it on first use.
	Tasks(ctx context.Context) task.Collection

	// Add prepends a task. Blank text leaves the collection unchanged.
	Add(ctx context.Context, text string) (task.Collection, error)

	// Edit replaces a task's text. Blank text or an unknown id is a no-op.
	Edit(ctx context.Context, id int64, text string) (task.Collection, error)

	// Toggle flips a task's completion flag. Unknown ids are a no-op.
	Toggle(ctx context.Context, id int64) (task.Collection, error)

	// Delete removes a task. Unknown ids are a no-op.
	// The caller is responsible for obtaining consent first.
	Delete(ctx context.Context, id int64) (task.Collection, error)

	// DeleteCompleted removes every completed task.
	// The caller is responsible for obtaining consent first.
	DeleteCompleted(ctx context.Context) (task.Collection, error)

	// DeleteAll removes every task.
	// The caller is responsible for obtaining consent first.
	DeleteAll(ctx context.Context) (task.Collection, error)

	// Close releases the underlying storage.
	Close() error
}
