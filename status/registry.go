// Package status keeps session counters and labels for the debug log
package status

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Metric keys written outside the collector
const (
	KeyFrames   = "loop.frames"
	KeySeconds  = "loop.seconds"
	KeyXPEarned = "xp.earned"
	KeyPhase    = "session.phase"
	KeyRound    = "session.round"
)

// Registry groups the counter and label maps
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Labels   *MetricMap[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Labels:   NewMetricMap[Label](),
	}
}

// Count returns the number of registered metrics
func (r *Registry) Count() int {
	return r.Counters.Count() + r.Labels.Count()
}

// Dict renders every metric into a zerolog dictionary, keys sorted
func (r *Registry) Dict() *zerolog.Event {
	d := zerolog.Dict()
	r.Counters.Range(func(key string, v *atomic.Int64) {
		d.Int64(key, v.Load())
	})
	r.Labels.Range(func(key string, v *Label) {
		d.Str(key, v.Load())
	})
	return d
}
