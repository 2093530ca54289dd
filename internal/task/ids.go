package task

import "time"

// MaxTaskID is the largest task id. Ids stay within the range a float64
// holds exactly, so they survive JSON readers that decode numbers as doubles.
const MaxTaskID int64 = 1<<53 - 1

// IDFunc proposes an id for a new task given the current collection.
type IDFunc func(c Collection) int64

// ClockIDs returns an IDFunc deriving ids from now in milliseconds. When the
// clock would not produce an id above every existing one (clock skew, two adds
// in the same millisecond) the id is bumped to MaxID+1, so ids keep increasing
// in creation order.
func ClockIDs(now func() time.Time) IDFunc {
	if now == nil {
		now = time.Now
	}
	return func(c Collection) int64 {
		id := now().UnixMilli()
		if max := c.MaxID(); id <= max && max < MaxTaskID {
			id = max + 1
		}
		return id
	}
}

// nextID asks next for an id and repairs it if it would break uniqueness.
func nextID(c Collection, next IDFunc) int64 {
	if next == nil {
		next = ClockIDs(nil)
	}
	id := next(c)
	if id > 0 && id <= MaxTaskID && c.Index(id) < 0 {
		return id
	}
	if max := c.MaxID(); max < MaxTaskID {
		return max + 1
	}
	// No room above the largest id: take the lowest free one.
	for id = 1; c.Index(id) >= 0; id++ {
	}
	return id
}
