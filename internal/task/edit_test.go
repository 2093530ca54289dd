package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditSession_BeginCopiesText(t *testing.T) {
	var s EditSession
	_, active := s.Active()
	assert.False(t, active)

	assert.True(t, s.Begin(sample(), 20))
	id, active := s.Active()
	assert.True(t, active)
	assert.Equal(t, int64(20), id)
	assert.Equal(t, "Call mom", s.Buffer())
}

func TestEditSession_BeginUnknownKeepsSession(t *testing.T) {
	var s EditSession
	s.Begin(sample(), 10)
	assert.False(t, s.Begin(sample(), 99))
	id, _ := s.Active()
	assert.Equal(t, int64(10), id)
}

func TestEditSession_Commit(t *testing.T) {
	c := sample()
	var s EditSession
	s.Begin(c, 30)
	s.SetBuffer(" Write summary ")

	out, ok := s.Commit(c)
	assert.True(t, ok)
	assert.Equal(t, "Write summary", out[0].Text)
	_, active := s.Active()
	assert.False(t, active)
}

func TestEditSession_BlankCommitKeepsSessionOpen(t *testing.T) {
	c := sample()
	var s EditSession
	s.Begin(c, 30)
	s.SetBuffer("  ")

	out, ok := s.Commit(c)
	assert.False(t, ok)
	assert.Equal(t, c, out)
	_, active := s.Active()
	assert.True(t, active)
}

func TestEditSession_SwitchingAbandonsPrevious(t *testing.T) {
	c := sample()
	var s EditSession
	s.Begin(c, 30)
	s.SetBuffer("never saved")
	s.Begin(c, 10)

	assert.Equal(t, "Buy milk", s.Buffer())
	out, ok := s.Commit(c)
	assert.True(t, ok)
	assert.Equal(t, c, out, "committing the unchanged buffer is a no-op on the collection")
}

func TestEditSession_Cancel(t *testing.T) {
	c := sample()
	var s EditSession
	s.Begin(c, 30)
	s.SetBuffer("changed")
	s.Cancel()

	out, ok := s.Commit(c)
	assert.False(t, ok)
	assert.Equal(t, c, out)

	s.SetBuffer("ignored while idle")
	assert.Equal(t, "", s.Buffer())
}
