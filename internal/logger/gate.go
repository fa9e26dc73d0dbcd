package logger

import (
	"github.com/taglog-labs/taglog/pkg/taglog/v1/severity"
	"github.com/taglog-labs/taglog/pkg/taglog/v1/store"
)

// SeverityGate decides whether a call at a given severity is allowed. The
// threshold names the least severe level still shown; a call passes iff its
// rank is at or above the threshold's inclusion rule (rank <= threshold
// rank, smaller rank meaning more severe). The Exception severity is always
// allowed while the gate is enabled.
//
// The threshold is read from the persisted store lazily on every evaluation
// rather than cached, so changes written by an external editor take effect
// on the next call. Writes go straight through to the store for the same
// reason.
type SeverityGate struct {
	enabled bool
	key     string
	def     severity.Severity
	store   store.Store
}

// NewSeverityGate returns an enabled gate reading the threshold under key,
// falling back to def when no persisted value exists.
func NewSeverityGate(key string, def severity.Severity, st store.Store) *SeverityGate {
	return &SeverityGate{enabled: true, key: key, def: def, store: st}
}

// Allowed reports whether a call at sev currently passes the gate.
func (g *SeverityGate) Allowed(sev severity.Severity) bool {
	if !g.enabled {
		return false
	}
	if sev == severity.Exception {
		return true
	}
	return sev.Rank() <= g.Threshold().Rank()
}

// Threshold reads the current threshold through the store.
func (g *SeverityGate) Threshold() severity.Severity {
	return severity.FromRank(g.store.GetInt(g.key, g.def.Rank()))
}

// SetThreshold writes the threshold through to the store immediately. Store
// failures are the store's concern; the gate does not retry or report them.
func (g *SeverityGate) SetThreshold(sev severity.Severity) {
	_ = g.store.SetInt(g.key, sev.Rank())
}

// Enabled reports the state of the global kill switch.
func (g *SeverityGate) Enabled() bool { return g.enabled }

// SetEnabled flips the global kill switch.
func (g *SeverityGate) SetEnabled(enabled bool) { g.enabled = enabled }

// SetKey rebinds the gate to a new derived store key. Called when the
// owning logger's identity tag is re-established.
func (g *SeverityGate) SetKey(key string) { g.key = key }

// SetDefault replaces the fallback threshold.
func (g *SeverityGate) SetDefault(def severity.Severity) { g.def = def }

// SetStore replaces the backing store.
func (g *SeverityGate) SetStore(st store.Store) { g.store = st }
