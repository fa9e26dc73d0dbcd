package logger

import "strings"

// TagStack is an ordered, mutable sequence of tag segments representing
// nested logical scopes. It derives a single composed tag string: the main
// tag followed by "." and each segment in push order. The composed value is
// recomputed synchronously on every mutation, so callers never observe a
// stale value between a push/pop and the next log call.
//
// TagStack is not safe for concurrent use; it follows the logger's
// single-logical-owner model.
type TagStack struct {
	main     string
	segments []string
	composed string
}

// NewTagStack returns a TagStack rooted at the given main tag.
func NewTagStack(main string) *TagStack {
	return &TagStack{main: main, composed: main}
}

// Push appends tag as the new top segment. An empty tag is a silent no-op.
func (s *TagStack) Push(tag string) {
	if tag == "" {
		return
	}
	s.segments = append(s.segments, tag)
	s.recompose()
}

// Pop removes the most-recently-pushed segment. An empty stack is a silent
// no-op.
func (s *TagStack) Pop() {
	if len(s.segments) == 0 {
		return
	}
	s.segments = s.segments[:len(s.segments)-1]
	s.recompose()
}

// Composed returns the current composed tag.
func (s *TagStack) Composed() string { return s.composed }

// Depth returns the number of pushed segments.
func (s *TagStack) Depth() int { return len(s.segments) }

// Main returns the identity tag the stack is rooted at.
func (s *TagStack) Main() string { return s.main }

// SetMain re-establishes the identity tag and resets the composed value to
// the un-scoped main tag. Pushed segments are deliberately NOT cleared:
// scopes survive reconfiguration, and clearing stale entries is the
// caller's responsibility. The next mutation recomposes the full path,
// stale segments included.
func (s *TagStack) SetMain(main string) {
	s.main = main
	s.composed = main
}

func (s *TagStack) recompose() {
	if len(s.segments) == 0 {
		s.composed = s.main
		return
	}
	s.composed = s.main + "." + strings.Join(s.segments, ".")
}
