package profiler

import (
	"log"
	"time"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
)

// StatsSource is anything that reports camera cache statistics.
type StatsSource interface {
	Stats() camera.Stats
}

// Profiler tracks how much work a camera's cache does per frame.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	source StatsSource
	logger *log.Logger
	now    func() time.Time

	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	last           camera.Stats
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often statistics are logged.
//
// Parameters:
//   - d: the update interval
//
// Returns:
//   - ProfilerOption: option function to apply
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = d
	}
}

// WithLogger sets the logger statistics are written to. Defaults to log.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - ProfilerOption: option function to apply
func WithLogger(logger *log.Logger) ProfilerOption {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProfiler creates a new Profiler reading from source.
// Update interval defaults to 1 second.
//
// Parameters:
//   - source: the camera (or other StatsSource) to profile
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(source StatsSource, options ...ProfilerOption) *Profiler {
	p := &Profiler{
		source:         source,
		logger:         log.Default(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	p.last = source.Stats()
	return p
}

// Tick should be called once per frame.
// Logs cache statistics when the update interval has elapsed: frames per second plus controller
// reads, transform recomputes and derived recomputes per frame since the last log line.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed < p.updateInterval {
		return false
	}

	st := p.source.Stats()
	frames := float64(p.frameCount)
	fps := frames
	if elapsed > 0 {
		fps = frames / elapsed.Seconds()
	}

	p.logger.Printf("[Profiler] FPS: %.2f | Version: %d | Reads/frame: %.2f | Transforms/frame: %.2f | Derived/frame: %.2f",
		fps, st.Version,
		float64(st.ControllerReads-p.last.ControllerReads)/frames,
		float64(st.TransformRecomputes-p.last.TransformRecomputes)/frames,
		float64(st.DerivedRecomputes-p.last.DerivedRecomputes)/frames,
	)

	p.frameCount = 0
	p.lastTime = currentTime
	p.last = st
	return true
}
