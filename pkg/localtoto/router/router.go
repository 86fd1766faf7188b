package router

import (
	"log/slog"
)

// Op names a stack mutation.
type Op string

const (
	OpMount    Op = "mount"
	OpNavigate Op = "navigate"
	OpBack     Op = "back"
	OpReset    Op = "reset"
)

// Change describes a completed stack mutation.
// Dropped holds the frames removed by the mutation (popped or reset away).
type Change struct {
	Op      Op
	Visible Frame
	Depth   int
	Dropped []Frame
}

// ChangeFunc is called synchronously after every stack mutation.
type ChangeFunc func(Change)

// Navigator owns the navigation stack of one mounted graph.
// All requests are validated against the graph; requesting a screen the
// graph does not declare panics with an *InvariantError.
type Navigator struct {
	graph    *Graph
	stack    *Stack
	logger   *slog.Logger
	onChange []ChangeFunc
}

// NewNavigator mounts graph with root as its only frame. The root does not
// have to be the graph's declared entry, but it must be declared.
func NewNavigator(graph *Graph, root Params, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.Default()
	}
	n := &Navigator{
		graph:  graph,
		logger: logger,
	}
	n.validate(OpMount, root)
	n.stack = NewStack(root)

	n.logger.Debug("graph mounted", "graph", graph.Name().String(), "screen", root.Screen().String())
	return n
}

// OnChange registers fn to be called after each mutation.
func (n *Navigator) OnChange(fn ChangeFunc) *Navigator {
	n.onChange = append(n.onChange, fn)
	return n
}

// Graph returns the mounted graph.
func (n *Navigator) Graph() *Graph {
	return n.graph
}

// Navigate pushes a frame for params and makes it visible.
func (n *Navigator) Navigate(params Params) {
	n.validate(OpNavigate, params)
	f := n.stack.Push(params)
	n.emit(Change{Op: OpNavigate, Visible: f, Depth: n.stack.Len()})
}

// GoBack removes the visible frame. At the root it does nothing and returns false.
func (n *Navigator) GoBack() bool {
	dropped := n.stack.Pop()
	if dropped == nil {
		n.logger.Debug("back ignored at root", "screen", n.stack.Peek().Screen.String())
		return false
	}
	n.emit(Change{Op: OpBack, Visible: n.stack.Peek(), Depth: n.stack.Len(), Dropped: []Frame{*dropped}})
	return true
}

// CanGoBack reports whether GoBack would change the stack.
func (n *Navigator) CanGoBack() bool {
	return n.stack.Len() > 1
}

// Reset replaces the whole history with a single frame for params.
func (n *Navigator) Reset(params Params) {
	n.validate(OpReset, params)
	dropped := n.stack.Reset(params)
	n.emit(Change{Op: OpReset, Visible: n.stack.Peek(), Depth: 1, Dropped: dropped})
}

// Visible returns the top frame.
func (n *Navigator) Visible() Frame {
	return n.stack.Peek()
}

// Depth returns the number of frames on the stack.
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// Frames returns a copy of the stack, root first.
func (n *Navigator) Frames() []Frame {
	return n.stack.Frames()
}

func (n *Navigator) validate(op Op, params Params) {
	if params == nil {
		panic(&InvariantError{Op: string(op), Graph: n.graph.Name(), Err: ErrNilParams})
	}
	if !n.graph.Declares(params.Screen()) {
		err := &InvariantError{Op: string(op), Graph: n.graph.Name(), Screen: params.Screen(), Err: ErrUndeclaredScreen}
		n.logger.Error("navigation invariant violated", "error", err)
		panic(err)
	}
}

func (n *Navigator) emit(c Change) {
	n.logger.Debug("navigation",
		"op", string(c.Op),
		"screen", c.Visible.Screen.String(),
		"frame_id", c.Visible.ID,
		"depth", c.Depth,
	)
	for _, fn := range n.onChange {
		fn(c)
	}
}
