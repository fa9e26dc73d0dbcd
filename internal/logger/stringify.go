package logger

import "fmt"

// nullMessage is the fixed literal substituted for a nil message. A nil
// message never fails to stringify.
const nullMessage = "Null"

// stringify converts an arbitrary message value to its display text.
// Values that provide their own locale-invariant rendering (fmt.Stringer)
// use it in preference to the generic default representation; errors use
// their Error text; everything else falls back to %v.
func stringify(message any) string {
	if message == nil {
		return nullMessage
	}
	switch m := message.(type) {
	case string:
		return m
	case fmt.Stringer:
		return m.String()
	case error:
		return m.Error()
	default:
		return fmt.Sprintf("%v", message)
	}
}
