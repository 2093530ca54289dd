package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"ltask/internal/codec"
	"ltask/internal/kv"
	"ltask/internal/task"
)

// DefaultKey is the storage key the collection lives under.
const DefaultKey = "todos"

// ErrUnreadable is returned by writes while the stored collection exists but
// cannot be read. Writing then would replace the user's tasks with the seed.
var ErrUnreadable = errors.New("stored tasks unreadable")

// TaskStore implements Service on top of a kv.Store.
//
// Every mutation computes the next collection, writes it, and only then adopts
// it. A failed write leaves the current collection in place, so what a caller
// is handed back always matches what storage holds.
type TaskStore struct {
	kv     kv.Store
	codec  codec.Codec
	key    string
	ids    task.IDFunc
	seed   func() task.Collection
	logger *slog.Logger

	tasks  task.Collection
	loaded bool

	// readErr is the last read failure. While set, the current collection
	// is the seed standing in for data that may still exist.
	readErr error
}

var _ Service = (*TaskStore)(nil)

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithCodec sets the storage encoding. Defaults to JSON.
func WithCodec(c codec.Codec) Option {
	return func(s *TaskStore) { s.codec = c }
}

// WithKey sets the storage key. Defaults to DefaultKey.
func WithKey(key string) Option {
	return func(s *TaskStore) { s.key = key }
}

// WithIDs sets the id source for new tasks. Defaults to the wall clock.
func WithIDs(ids task.IDFunc) Option {
	return func(s *TaskStore) { s.ids = ids }
}

// WithSeed sets the fallback collection. Defaults to task.Seed.
func WithSeed(seed func() task.Collection) Option {
	return func(s *TaskStore) { s.seed = seed }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *TaskStore) { s.logger = l }
}

// New creates a TaskStore over store. Nothing is read until first use.
func New(store kv.Store, opts ...Option) *TaskStore {
	s := &TaskStore{
		kv:     store,
		codec:  codec.JSON{},
		key:    DefaultKey,
		ids:    task.ClockIDs(nil),
		seed:   task.Seed,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Service.
func (s *TaskStore) Load(ctx context.Context) task.Collection {
	s.tasks = s.read(ctx)
	s.loaded = true
	return s.tasks.Clone()
}

func (s *TaskStore) read(ctx context.Context) task.Collection {
	log := s.logger.With("key", s.key, "format", s.codec.Format())

	s.readErr = nil
	data, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		log.Warn("stored tasks unreadable, showing seed", "err", err)
		s.readErr = err
		return s.seed()
	}
	if !ok {
		log.Debug("no stored tasks, using seed")
		return s.seed()
	}
	c, err := s.codec.Decode(data)
	if err != nil {
		log.Debug("stored tasks corrupt, using seed", "err", err)
		return s.seed()
	}
	if c == nil {
		log.Debug("stored tasks empty, using seed")
		return s.seed()
	}
	c, changed := task.Sanitize(c)
	if changed {
		log.Debug("dropped invalid stored tasks", "kept", len(c))
	}
	log.Debug("loaded tasks", "count", len(c))
	return c
}

// Save implements Service. It refuses to write while the stored collection
// cannot be read.
func (s *TaskStore) Save(ctx context.Context, c task.Collection) error {
	if err := s.reread(ctx); err != nil {
		return err
	}
	if c == nil {
		c = task.Collection{}
	}
	data, err := s.codec.Encode(c)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	s.tasks = c.Clone()
	s.loaded = true
	s.logger.Debug("saved tasks", "key", s.key, "count", len(c))
	return nil
}

// Tasks implements Service.
func (s *TaskStore) Tasks(ctx context.Context) task.Collection {
	if !s.loaded {
		return s.Load(ctx)
	}
	return s.tasks.Clone()
}

// Add implements Service.
func (s *TaskStore) Add(ctx context.Context, text string) (task.Collection, error) {
	return s.apply(ctx, func(c task.Collection) task.Collection {
		return task.Add(c, text, s.ids)
	})
}

// Edit implements Service.
func (s *TaskStore) Edit(ctx context.Context, id int64, text string) (task.Collection, error) {
	return s.apply(ctx, func(c task.Collection) task.Collection {
		return task.Edit(c, id, text)
	})
}

// Toggle implements Service.
func (s *TaskStore) Toggle(ctx context.Context, id int64) (task.Collection, error) {
	return s.apply(ctx, func(c task.Collection) task.Collection {
		return task.Toggle(c, id)
	})
}

// Delete implements Service.
func (s *TaskStore) Delete(ctx context.Context, id int64) (task.Collection, error) {
	return s.apply(ctx, func(c task.Collection) task.Collection {
		return task.Delete(c, id)
	})
}

// DeleteCompleted implements Service.
func (s *TaskStore) DeleteCompleted(ctx context.Context) (task.Collection, error) {
	return s.apply(ctx, task.DeleteCompleted)
}

// DeleteAll implements Service.
func (s *TaskStore) DeleteAll(ctx context.Context) (task.Collection, error) {
	return s.apply(ctx, task.DeleteAll)
}

// Close implements Service.
func (s *TaskStore) Close() error {
	return s.kv.Close()
}

// apply runs a transition against the current collection and persists the
// result. Transitions that change nothing are not written.
func (s *TaskStore) apply(ctx context.Context, fn func(task.Collection) task.Collection) (task.Collection, error) {
	cur := s.Tasks(ctx)
	if s.readErr != nil {
		if err := s.reread(ctx); err != nil {
			return cur, err
		}
		cur = s.tasks.Clone()
	}
	next := fn(cur)
	if slices.Equal(cur, next) {
		return cur, nil
	}
	if err := s.Save(ctx, next); err != nil {
		return s.tasks.Clone(), err
	}
	return next.Clone(), nil
}

// reread retries a failed read so that a write never lands on data that was
// never seen. Absent or undecodable data counts as read.
func (s *TaskStore) reread(ctx context.Context) error {
	if s.readErr == nil {
		return nil
	}
	s.tasks = s.read(ctx)
	s.loaded = true
	if s.readErr != nil {
		return fmt.Errorf("%w: %w", ErrUnreadable, s.readErr)
	}
	return nil
}
