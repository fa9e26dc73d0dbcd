package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taglog-labs/taglog/internal/logger"
)

func TestComposedFollowsEveryMutation(t *testing.T) {
	stack := logger.NewTagStack("main")
	assert.Equal(t, "main", stack.Composed())

	stack.Push("a")
	assert.Equal(t, "main.a", stack.Composed())
	stack.Push("b")
	assert.Equal(t, "main.a.b", stack.Composed())
	stack.Push("c")
	assert.Equal(t, "main.a.b.c", stack.Composed())

	stack.Pop()
	assert.Equal(t, "main.a.b", stack.Composed())
	stack.Pop()
	assert.Equal(t, "main.a", stack.Composed())
	stack.Pop()
	assert.Equal(t, "main", stack.Composed())
}

func TestPushEmptyTagIsNoOp(t *testing.T) {
	stack := logger.NewTagStack("main")
	stack.Push("")
	assert.Equal(t, "main", stack.Composed())
	assert.Zero(t, stack.Depth())

	stack.Push("a")
	stack.Push("")
	assert.Equal(t, "main.a", stack.Composed())
	assert.Equal(t, 1, stack.Depth())
}

// TestOverPop pins that popping more times than pushed never panics and
// leaves the composed value at the main tag.
func TestOverPop(t *testing.T) {
	stack := logger.NewTagStack("main")
	assert.NotPanics(t, func() {
		stack.Pop()
		stack.Pop()
	})
	assert.Equal(t, "main", stack.Composed())

	stack.Push("a")
	stack.Pop()
	stack.Pop()
	assert.Equal(t, "main", stack.Composed())
}

// TestSetMainResetsBaseButKeepsSegments verifies the re-identification
// behavior: the composed value resets to the new un-scoped main tag while
// pushed segments survive and reappear on the next mutation.
func TestSetMainResetsBaseButKeepsSegments(t *testing.T) {
	stack := logger.NewTagStack("old")
	stack.Push("a")
	stack.Push("b")
	assert.Equal(t, "old.a.b", stack.Composed())

	stack.SetMain("new")
	assert.Equal(t, "new", stack.Composed())
	assert.Equal(t, 2, stack.Depth())

	// The next mutation recomposes the full path, stale segments included.
	stack.Pop()
	assert.Equal(t, "new.a", stack.Composed())
}
