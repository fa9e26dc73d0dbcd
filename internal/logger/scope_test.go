package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) *Logger {
	t.Helper()
	l, err := New("Main")
	require.NoError(t, err)
	return l
}

func TestReleasePopsExactlyOneTag(t *testing.T) {
	l := newTestLogger(t)
	l.PushTag("outer")

	token := openScope(l, "inner")
	assert.Equal(t, "Main.outer.inner", l.ComposedTag())

	token.Release()
	assert.Equal(t, "Main.outer", l.ComposedTag())
}

// TestReleaseIsIdempotent pins that a second release does not pop an
// unrelated tag.
func TestReleaseIsIdempotent(t *testing.T) {
	l := newTestLogger(t)
	l.PushTag("outer")

	token := openScope(l, "inner")
	token.Release()
	token.Release()
	assert.Equal(t, "Main.outer", l.ComposedTag(),
		"second release must not pop the outer tag")
}

// TestEmptyTagScope verifies that opening a scope with an empty tag still
// yields a releasable token, and that its release leaves the stack alone.
func TestEmptyTagScope(t *testing.T) {
	l := newTestLogger(t)
	l.PushTag("outer")

	token := openScope(l, "")
	require.NotNil(t, token)
	assert.Equal(t, "Main.outer", l.ComposedTag(), "empty push is a no-op")

	token.Release()
	assert.Equal(t, "Main.outer", l.ComposedTag(),
		"release of an empty-tag scope must not pop the outer tag")
}

// TestTokenReuse verifies that a released token is reused by the next
// acquisition instead of allocating a fresh record.
func TestTokenReuse(t *testing.T) {
	l := newTestLogger(t)

	first := openScope(l, "a")
	first.Release()

	second := openScope(l, "b")
	defer second.Release()
	assert.Same(t, first, second, "the free-list hands back the released token")
}

// TestPoolSteadyState runs open/release churn and checks the free-list
// stops growing once warmed up.
func TestPoolSteadyState(t *testing.T) {
	l := newTestLogger(t)

	// Warm up with a burst of nested scopes.
	const depth = 8
	warm := make([]*scopeToken, 0, depth)
	for i := 0; i < depth; i++ {
		warm = append(warm, openScope(l, "warm"))
	}
	for i := len(warm) - 1; i >= 0; i-- {
		warm[i].Release()
	}

	stable := tokens.size()
	for cycle := 0; cycle < 100; cycle++ {
		token := openScope(l, "churn")
		token.Release()
	}
	assert.Equal(t, stable, tokens.size(), "steady-state churn must not grow the pool")
}

// TestScopeBindingClearedOnRelease pins that a released token no longer
// references its logger.
func TestScopeBindingClearedOnRelease(t *testing.T) {
	l := newTestLogger(t)
	token := openScope(l, "a")
	require.Same(t, l, token.owner)

	token.Release()
	assert.Nil(t, token.owner)
	assert.True(t, token.disposed)
}
