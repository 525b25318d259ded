package run

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/flarebyte/t9search/internal/directory"
)

const defaultProgressInterval = 500 * time.Millisecond

type progressReporter struct {
	enabled  bool
	interval time.Duration
	w        io.Writer

	mu     sync.Mutex
	read   int
	errors int
}

func newProgressReporter(enabled bool, w io.Writer) *progressReporter {
	if !enabled {
		return &progressReporter{enabled: false}
	}
	return &progressReporter{
		enabled:  true,
		interval: defaultProgressInterval,
		w:        w,
	}
}

// wrap returns src, counting every record it yields when progress is on.
func (p *progressReporter) wrap(src directory.Source) directory.Source {
	if p == nil || !p.enabled {
		return src
	}
	return &countingSource{src: src, p: p}
}

// start emits a line every interval until the returned func is called, which
// emits a final line.
func (p *progressReporter) start(ctx context.Context) func() {
	if p == nil || !p.enabled {
		return func() {}
	}
	ticker := time.NewTicker(p.interval)
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ticker.C:
				p.emit()
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
		wg.Wait()
		p.emit()
	}
}

func (p *progressReporter) observe(err error) {
	p.mu.Lock()
	if err == nil {
		p.read++
	} else if !errors.Is(err, io.EOF) {
		p.errors++
	}
	p.mu.Unlock()
}

func (p *progressReporter) emit() {
	if p == nil || !p.enabled || p.w == nil {
		return
	}
	p.mu.Lock()
	_, _ = fmt.Fprintf(p.w, "progress read=%d errors=%d\n", p.read, p.errors)
	p.mu.Unlock()
}

type countingSource struct {
	src directory.Source
	p   *progressReporter
}

func (c *countingSource) Next(ctx context.Context) (directory.Record, error) {
	r, err := c.src.Next(ctx)
	c.p.observe(err)
	return r, err
}
