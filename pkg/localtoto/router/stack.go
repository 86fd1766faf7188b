package router

import "github.com/google/uuid"

// Frame represents a single entry in the navigation stack.
// It stores the screen identifier and the params the screen was opened with.
// ID is unique per push, so two frames of the same screen are distinguishable.
type Frame struct {
	ID     string
	Screen Screen
	Params Params
}

func newFrame(params Params) Frame {
	return Frame{
		ID:     uuid.NewString(),
		Screen: params.Screen(),
		Params: params,
	}
}

// Stack is the navigation history of a mounted graph.
// The last frame is the visible one.
type Stack struct {
	frames []Frame
}

// NewStack creates a stack seeded with a single root frame.
func NewStack(root Params) *Stack {
	return &Stack{
		frames: []Frame{newFrame(root)},
	}
}

// Push appends a frame and returns it.
func (s *Stack) Push(params Params) Frame {
	f := newFrame(params)
	s.frames = append(s.frames, f)
	return f
}

// Pop removes and returns the top frame.
// The root frame is never removed: Pop returns nil when only one frame is left.
func (s *Stack) Pop() *Frame {
	if len(s.frames) <= 1 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	return &f
}

// Peek returns the top frame.
func (s *Stack) Peek() Frame {
	return s.frames[len(s.frames)-1]
}

// Reset replaces every frame with a single new root frame and returns the
// frames that were discarded.
func (s *Stack) Reset(params Params) []Frame {
	dropped := s.frames
	s.frames = []Frame{newFrame(params)}
	return dropped
}

// Len returns the number of frames in the stack.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frames returns a copy of the frames, root first.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}
