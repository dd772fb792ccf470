package renderer

import (
	"sync"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// progressSteps is how many evenly spaced progress messages a render emits
const progressSteps = 10

// Progress counts committed rows and logs at each significant step
type Progress struct {
	mu           sync.Mutex
	completed    int
	total        int
	lastReported int
	start        time.Time
	logger       core.Logger
}

// NewProgress creates a tracker for total units of work
func NewProgress(total int, logger core.Logger) *Progress {
	return &Progress{
		total:  total,
		start:  time.Now(),
		logger: logger,
	}
}

// Increment records one completed unit, logging when a new step is reached
func (p *Progress) Increment() {
	p.mu.Lock()
	p.completed++
	completed := p.completed
	step := completed * progressSteps / p.total
	report := step > p.lastReported
	if report {
		p.lastReported = step
	}
	p.mu.Unlock()

	if report {
		p.logger.Printf("Rendered %d/%d scanlines (%d%%) in %v\n",
			completed, p.total, step*100/progressSteps, time.Since(p.start).Round(time.Millisecond))
	}
}

// Completed returns the number of units recorded so far
func (p *Progress) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// Total returns the number of units expected
func (p *Progress) Total() int {
	return p.total
}
