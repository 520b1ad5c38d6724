package runtime

import (
	"errors"
	"fmt"
)

// ErrStackOverflow is returned by Push if a call stack is full.
var ErrStackOverflow = errors.New("maximum call depth exceeded")

// DefaultCallDepth is the call depth limit for stacks created with a limit ≤ 0.
const DefaultCallDepth = 4000

// CallFrame is a frame on the call stack, representing a single active
// function application.
type CallFrame struct {
	Name   string
	Parent *CallFrame
	UData  interface{} // extension point
	depth  int
}

func (cf *CallFrame) String() string {
	return fmt.Sprintf("<frame %s @%d>", cf.Name, cf.depth)
}

// IsRoot is a predicate: Is this a root frame?
func (cf *CallFrame) IsRoot() bool {
	return (cf.Parent == nil)
}

// Depth returns the number of frames below and including cf.
func (cf *CallFrame) Depth() int {
	return cf.depth
}

// ---------------------------------------------------------------------------

// CallStack is a stack of call frames with a maximum depth.
// The zero value is an empty stack with DefaultCallDepth.
type CallStack struct {
	callFrameTOS *CallFrame
	limit        int
}

// NewCallStack creates an empty call stack which holds at most limit frames.
// If limit ≤ 0, DefaultCallDepth is used.
func NewCallStack(limit int) *CallStack {
	return &CallStack{limit: limit}
}

// Limit returns the maximum depth of the stack.
func (cs *CallStack) Limit() int {
	if cs.limit <= 0 {
		return DefaultCallDepth
	}
	return cs.limit
}

// Depth returns the number of active frames.
func (cs *CallStack) Depth() int {
	if cs.callFrameTOS == nil {
		return 0
	}
	return cs.callFrameTOS.depth
}

// Current gets the current call frame of a stack (TOS), or nil if the stack is empty.
func (cs *CallStack) Current() *CallFrame {
	return cs.callFrameTOS
}

// Push pushes a new call frame as TOS. If the stack is full, no frame is
// pushed and ErrStackOverflow is returned.
func (cs *CallStack) Push(name string) (*CallFrame, error) {
	if cs.Depth() >= cs.Limit() {
		tracer().P("frame", name).Errorf("call stack overflow at depth %d", cs.Depth())
		return nil, ErrStackOverflow
	}
	cf := &CallFrame{
		Name:   name,
		Parent: cs.callFrameTOS,
		depth:  cs.Depth() + 1,
	}
	cs.callFrameTOS = cf
	tracer().P("frame", name).Debugf("pushing call frame")
	return cf, nil
}

// Pop pops the top-most call frame. Returns the popped frame.
func (cs *CallStack) Pop() *CallFrame {
	if cs.callFrameTOS == nil {
		panic("attempt to pop call frame from empty call stack")
	}
	cf := cs.callFrameTOS
	tracer().Debugf("popping call frame [%s]", cf.Name)
	cs.callFrameTOS = cf.Parent
	return cf
}

// Reset drops all frames, e.g. after an evaluation has been aborted.
func (cs *CallStack) Reset() {
	cs.callFrameTOS = nil
}

// Backtrace returns the names of the active frames, innermost first.
// At most n names are returned; n ≤ 0 means all of them.
func (cs *CallStack) Backtrace(n int) []string {
	var names []string
	for cf := cs.callFrameTOS; cf != nil; cf = cf.Parent {
		if n > 0 && len(names) == n {
			break
		}
		names = append(names, cf.Name)
	}
	return names
}
