package asm

// Stack is the call return stack, a LIFO of instruction indexes.
// There is no depth limit.
type Stack struct {
	Data []int
}

func (s *Stack) Push(index int) {
	s.Data = append(s.Data, index)
}

func (s *Stack) Pop() (index int, ok bool) {
	index, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Peek() (index int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Depth() int {
	return len(s.Data)
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
