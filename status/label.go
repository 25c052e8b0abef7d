package status

import "sync/atomic"

// MaxLabelLen bounds stored labels; phase and round names fit well within it
const MaxLabelLen = 32

// Label is an atomically replaced short string; the zero value is empty
type Label struct {
	ptr atomic.Pointer[string]
}

// Store replaces the label, truncating to MaxLabelLen bytes
func (l *Label) Store(val string) {
	if len(val) > MaxLabelLen {
		val = val[:MaxLabelLen]
	}
	l.ptr.Store(&val)
}

// Load returns the current label
func (l *Label) Load() string {
	if p := l.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
