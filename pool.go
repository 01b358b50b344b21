package pdfcomposer

import (
	"errors"
	"runtime"
	"sync"
)

// Pool sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps browser instances to limit memory (~200MB each).
	MaxWorkers = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// rendererPool manages a pool of pdfRenderer instances for parallel
// processing. Each renderer has its own browser instance, enabling true
// parallelism. Renderers are created lazily on first acquire to avoid
// startup delay.
type rendererPool struct {
	size      int
	newRender func() pdfRenderer
	renderers []pdfRenderer
	sem       chan pdfRenderer
	mu        sync.Mutex
	created   int
	closed    bool
}

// newRendererPool creates a pool with capacity for n renderer instances.
func newRendererPool(n int, factory func() pdfRenderer) *rendererPool {
	if n < 1 {
		n = 1
	}
	return &rendererPool{
		size:      n,
		newRender: factory,
		renderers: make([]pdfRenderer, 0, n),
		sem:       make(chan pdfRenderer, n),
	}
}

// acquire gets a renderer from the pool, creating one if needed.
// Blocks if all renderers are in use. Returns nil once the pool is
// closed; callers must treat a nil renderer as shutdown.
func (p *rendererPool) acquire() pdfRenderer {
	// Try to get an existing renderer (non-blocking)
	select {
	case r, ok := <-p.sem:
		if !ok {
			return nil
		}
		return r
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new renderer outside the lock
		r := p.newRender()

		p.mu.Lock()
		p.renderers = append(p.renderers, r)
		p.mu.Unlock()

		return r
	}
	p.mu.Unlock()

	// All renderers created, wait for one to be released. A closed
	// channel yields the zero value, which signals shutdown.
	r, ok := <-p.sem
	if !ok {
		return nil
	}
	return r
}

// release returns a renderer to the pool. After close, the renderer is
// shut down instead of re-queued.
func (p *rendererPool) release(r pdfRenderer) {
	if r == nil {
		return
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		_ = r.Close()
		return
	}
	p.sem <- r
	p.mu.Unlock()
}

// close releases all browser resources.
// Returns an aggregated error if multiple renderers fail to close.
func (p *rendererPool) close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	renderers := p.renderers
	p.mu.Unlock()

	var errs []error
	for _, r := range renderers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResolveWorkers determines the worker-pool size.
// Priority: explicit value > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs in the CLI)
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
