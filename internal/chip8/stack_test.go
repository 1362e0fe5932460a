package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStackPushPull(t *testing.T) {
	s := &Stack{}

	s.Push(0x300)
	assert.Equal(t, uint16(0x300), s.Pull())
}

func TestStackLIFOOrder(t *testing.T) {
	s := &Stack{}

	s.Push(0x200)
	s.Push(0x400)
	s.Push(0x600)

	assert.Equal(t, uint16(0x600), s.Pull())
	assert.Equal(t, uint16(0x400), s.Pull())
	assert.Equal(t, uint16(0x200), s.Pull())
}

func TestStackOverflow(t *testing.T) {
	s := &Stack{}

	for j := 0; j < stackDepth; j++ {
		s.Push(uint16(j))
	}

	assertPanics(t, func() {
		s.Push(0x123)
	})
}

func TestStackUnderflow(t *testing.T) {
	s := &Stack{}

	assertPanics(t, func() {
		s.Pull()
	})
}

func assertPanics(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	f()
}
