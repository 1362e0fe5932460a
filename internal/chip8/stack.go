package chip8

import "fmt"

// stackDepth is the maximum number of nested subroutine calls.
const stackDepth = 16

// Stack is the fixed depth return address stack used by CALL and RET.
// Overflow and underflow indicate a broken ROM and abort execution.
type Stack struct {
	index int
	data  [stackDepth]uint16
}

// Push stores a return address on the stack.
// It panics if the stack is already full.
func (s *Stack) Push(value uint16) {
	if s.index == stackDepth {
		panic(fmt.Sprintf("chip8: push of $%03X onto a full stack", value))
	}
	s.data[s.index] = value
	s.index++
}

// Pull removes and returns the most recently pushed address.
// It panics if the stack is empty.
func (s *Stack) Pull() uint16 {
	if s.index == 0 {
		panic("chip8: pull from an empty stack")
	}
	s.index--
	return s.data[s.index]
}
