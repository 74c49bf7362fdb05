// Package parallel provides a small worker pool used to fan tile generation
// out across CPUs. Tiles are independent, so the pool needs no ordering or
// work-stealing machinery: a single shared queue is enough.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed-size pool of worker goroutines.
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
}

// New creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// ExecuteAll runs every task on the pool and waits for all to complete.
// A closed pool runs the tasks inline instead of dropping them.
func (p *Pool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 {
		return
	}
	if p.closed.Load() {
		for _, task := range tasks {
			task()
		}
		return
	}

	var done sync.WaitGroup
	done.Add(len(tasks))
	for _, task := range tasks {
		task := task
		p.tasks <- func() {
			defer done.Done()
			task()
		}
	}
	done.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// Close shuts the pool down after all queued tasks finish.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}
	close(p.tasks)
	p.wg.Wait()
}
