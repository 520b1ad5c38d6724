package runtime

import (
	"testing"
)

func TestNewCallStack(t *testing.T) {
	cs := NewCallStack(0)
	if cs.Depth() != 0 || cs.Current() != nil {
		t.Error("new call stack should be empty")
	}
	if cs.Limit() != DefaultCallDepth {
		t.Errorf("expected default limit %d, got %d", DefaultCallDepth, cs.Limit())
	}
}

func TestPushPop(t *testing.T) {
	cs := NewCallStack(10)
	f1, _ := cs.Push("f")
	f2, _ := cs.Push("g")
	if cs.Depth() != 2 || f2.Parent != f1 || !f1.IsRoot() {
		t.Errorf("frames not chained correctly: %v, %v", f1, f2)
	}
	if cf := cs.Pop(); cf != f2 {
		t.Errorf("expected to pop %v, got %v", f2, cf)
	}
	if cs.Current() != f1 || cs.Depth() != 1 {
		t.Errorf("expected %v as TOS", f1)
	}
}

func TestStackOverflow(t *testing.T) {
	cs := NewCallStack(3)
	for i := 0; i < 3; i++ {
		if _, err := cs.Push("rec"); err != nil {
			t.Fatalf("push #%d failed: %v", i+1, err)
		}
	}
	if _, err := cs.Push("rec"); err != ErrStackOverflow {
		t.Errorf("expected stack overflow, got %v", err)
	}
	if cs.Depth() != 3 {
		t.Errorf("failed push must not change depth, have %d", cs.Depth())
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected pop from empty stack to panic")
		}
	}()
	NewCallStack(1).Pop()
}

func TestBacktrace(t *testing.T) {
	cs := NewCallStack(0)
	cs.Push("a")
	cs.Push("b")
	cs.Push("c")
	bt := cs.Backtrace(2)
	if len(bt) != 2 || bt[0] != "c" || bt[1] != "b" {
		t.Errorf("expected backtrace [c b], got %v", bt)
	}
	if len(cs.Backtrace(0)) != 3 {
		t.Errorf("expected full backtrace of 3 frames")
	}
	cs.Reset()
	if cs.Depth() != 0 {
		t.Errorf("expected empty stack after reset")
	}
}
