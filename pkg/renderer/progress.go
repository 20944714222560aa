package renderer

import (
	"sync/atomic"
)

// Progress is a completed-pixel counter that may be polled from any goroutine.
// It only observes the render and never influences the result.
type Progress struct {
	done  atomic.Int64
	total atomic.Int64
}

// NewProgress creates an empty progress counter
func NewProgress() *Progress {
	return &Progress{}
}

func (p *Progress) start(total int) {
	p.done.Store(0)
	p.total.Store(int64(total))
}

func (p *Progress) add(n int) {
	p.done.Add(int64(n))
}

// Done returns the number of finished pixels
func (p *Progress) Done() int64 {
	return p.done.Load()
}

// Total returns the number of pixels in the render, 0 before it starts
func (p *Progress) Total() int64 {
	return p.total.Load()
}

// Fraction returns the completed share in [0, 1]
func (p *Progress) Fraction() float64 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return float64(p.Done()) / float64(total)
}

// Percent returns the completed share as a whole percentage, rounded down
func (p *Progress) Percent() int {
	total := p.Total()
	if total == 0 {
		return 0
	}
	return int(p.Done() * 100 / total)
}
