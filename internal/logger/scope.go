package logger

import (
	"sync"

	v1 "github.com/taglog-labs/taglog/pkg/taglog/v1"
)

// scopeToken is a reusable handle for one open/close bracket of a nested
// tag scope. Its Release pops exactly the tag it pushed and returns the
// token to the process-wide pool. Releasing an already-released token is a
// no-op, so a second Release never pops an unrelated tag.
type scopeToken struct {
	owner    *Logger
	pushed   bool
	disposed bool
}

// Release implements v1.Scope.
func (t *scopeToken) Release() {
	if t.disposed {
		return
	}
	if t.owner != nil && t.pushed {
		t.owner.tags.Pop()
	}
	t.owner = nil
	t.pushed = false
	t.disposed = true
	tokens.put(t)
}

var _ v1.Scope = (*scopeToken)(nil)

// tokenPool is an explicit free-list of released scope tokens. Scope
// open/close can run once per frame or per request, so reusing token
// records keeps the hot path allocation-free. Unlike sync.Pool the
// free-list never discards entries, which keeps steady-state churn at zero
// allocations and makes reuse observable.
type tokenPool struct {
	mu   sync.Mutex
	free []*scopeToken
}

// tokens is the process-wide pool shared by all loggers.
var tokens tokenPool

func (p *tokenPool) get() *scopeToken {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		t := p.free[n-1]
		p.free = p.free[:n-1]
		return t
	}
	return new(scopeToken)
}

func (p *tokenPool) put(t *scopeToken) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, t)
}

func (p *tokenPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}

// openScope acquires a token, binds it to l, and pushes tag onto l's tag
// stack. An empty tag pushes nothing, but a token is still returned and
// must still be released; the token remembers whether it pushed so that
// its Release pops only what it contributed.
func openScope(l *Logger, tag string) *scopeToken {
	t := tokens.get()
	t.owner = l
	t.pushed = tag != ""
	t.disposed = false
	l.tags.Push(tag)
	return t
}
