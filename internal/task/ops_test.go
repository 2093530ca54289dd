package task

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(ms int64) IDFunc {
	return ClockIDs(func() time.Time { return time.UnixMilli(ms) })
}

func sample() Collection {
	return Collection{
		{ID: 30, Text: "Write report"},
		{ID: 20, Text: "Call mom", Completed: true},
		{ID: 10, Text: "Buy milk"},
	}
}

func TestAdd_PrependsTrimmedOpenTask(t *testing.T) {
	c := sample()
	out := Add(c, "  Feed the cat \n", fixedClock(1000))

	require.Len(t, out, len(c)+1)
	assert.Equal(t, Task{ID: 1000, Text: "Feed the cat"}, out[0])
	assert.Equal(t, c, out[1:])
	assert.Equal(t, sample(), c, "input must not be modified")
}

func TestAdd_BlankTextIsNoop(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n  "} {
		c := sample()
		assert.Equal(t, c, Add(c, text, nil), "text %q", text)
	}
}

func TestAdd_IDsStayUniqueWhenClockLags(t *testing.T) {
	out := Add(sample(), "late", fixedClock(5))
	assert.Equal(t, int64(31), out[0].ID)

	out = Add(out, "same millisecond", fixedClock(5))
	assert.Equal(t, int64(32), out[0].ID)
}

func TestAdd_RepairsCollidingID(t *testing.T) {
	collide := func(Collection) int64 { return 20 }
	out := Add(sample(), "x", collide)
	assert.Equal(t, int64(31), out[0].ID)

	out = Add(Collection{}, "first", func(Collection) int64 { return 0 })
	assert.Equal(t, int64(1), out[0].ID)
}

func TestAdd_IDsNearTheUpperBound(t *testing.T) {
	out := Add(Collection{{ID: MaxTaskID - 1, Text: "a"}}, "b", fixedClock(5))
	assert.Equal(t, MaxTaskID, out[0].ID)

	// The clock no longer bumps once MaxTaskID is taken.
	out = Add(out, "c", fixedClock(5))
	assert.Equal(t, int64(5), out[0].ID)

	// Nothing fits above MaxTaskID, so a colliding id becomes the lowest free one.
	out = Add(out, "d", func(Collection) int64 { return MaxTaskID })
	assert.Equal(t, int64(1), out[0].ID)

	out = Add(Collection{{ID: math.MaxInt64, Text: "a"}, {ID: 1, Text: "b"}}, "c", fixedClock(5))
	assert.Equal(t, int64(5), out[0].ID)

	out = Add(Collection{{ID: math.MaxInt64, Text: "a"}}, "b", func(Collection) int64 { return math.MaxInt64 })
	assert.Equal(t, int64(1), out[0].ID)

	out = Add(Collection{}, "x", func(Collection) int64 { return MaxTaskID + 1 })
	assert.Equal(t, int64(1), out[0].ID)
}

func TestEdit(t *testing.T) {
	c := sample()
	out := Edit(c, 20, "  Call dad ")

	assert.Equal(t, Task{ID: 20, Text: "Call dad", Completed: true}, out[1])
	assert.Equal(t, c[0], out[0])
	assert.Equal(t, c[2], out[2])
	assert.Equal(t, "Call mom", c[1].Text, "input must not be modified")
}

func TestEdit_Noops(t *testing.T) {
	c := sample()
	assert.Equal(t, c, Edit(c, 99, "anything"))
	assert.Equal(t, c, Edit(c, 20, "   "))
}

func TestToggle(t *testing.T) {
	c := sample()
	out := Toggle(c, 10)
	assert.True(t, out[2].Completed)
	assert.False(t, c[2].Completed)

	assert.Equal(t, c, Toggle(out, 10), "toggle twice restores the collection")
	assert.Equal(t, c, Toggle(c, 99))
}

func TestDelete(t *testing.T) {
	c := sample()
	out := Delete(c, 20)
	assert.Equal(t, Collection{c[0], c[2]}, out)
	assert.Equal(t, c, Delete(c, 99))
	assert.Len(t, c, 3)
}

func TestDeleteCompleted(t *testing.T) {
	out := DeleteCompleted(sample())
	require.Len(t, out, 2)
	for _, tk := range out {
		assert.False(t, tk.Completed)
	}
	assert.Empty(t, DeleteCompleted(Collection{{ID: 1, Text: "x", Completed: true}}))
}

func TestDeleteAll(t *testing.T) {
	assert.Len(t, DeleteAll(sample()), 0)
	assert.NotNil(t, DeleteAll(nil))
}

func TestSanitize(t *testing.T) {
	in := Collection{
		{ID: 3, Text: " keep me "},
		{ID: 2, Text: "   "},
		{ID: 3, Text: "duplicate id"},
		{ID: 1, Text: "fine", Completed: true},
	}
	out, changed := Sanitize(in)
	assert.True(t, changed)
	assert.Equal(t, Collection{{ID: 3, Text: "keep me"}, {ID: 1, Text: "fine", Completed: true}}, out)

	out, changed = Sanitize(Collection{
		{ID: 0, Text: "zero"},
		{ID: -3, Text: "negative"},
		{ID: MaxTaskID + 1, Text: "too large"},
		{ID: math.MaxInt64, Text: "max"},
		{ID: MaxTaskID, Text: "largest allowed"},
	})
	assert.True(t, changed)
	assert.Equal(t, Collection{{ID: MaxTaskID, Text: "largest allowed"}}, out)

	out, changed = Sanitize(sample())
	assert.False(t, changed)
	assert.Equal(t, sample(), out)

	out, changed = Sanitize(nil)
	assert.False(t, changed)
	assert.Nil(t, out)
}

func TestSeedSatisfiesInvariants(t *testing.T) {
	seed := Seed()
	require.NotEmpty(t, seed)
	_, changed := Sanitize(seed)
	assert.False(t, changed)
	for i := 1; i < len(seed); i++ {
		assert.Greater(t, seed[i-1].ID, seed[i].ID, "seed is newest first")
	}
}

func TestScenario_AddToggle(t *testing.T) {
	c := Collection{{ID: 1, Text: "Buy milk"}}

	c = Add(c, "Call mom", fixedClock(0))
	require.Equal(t, Collection{{ID: 2, Text: "Call mom"}, {ID: 1, Text: "Buy milk"}}, c)

	c = Toggle(c, 1)
	assert.True(t, c[1].Completed)
	assert.False(t, c[0].Completed)
}
