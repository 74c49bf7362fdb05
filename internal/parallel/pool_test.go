package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestExecuteAllRunsEveryTask(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	tasks := make([]func(), 100)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}

	p.ExecuteAll(tasks)

	if got := counter.Load(); got != 100 {
		t.Errorf("ran %d tasks, want 100", got)
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	p := New(2)
	defer p.Close()

	p.ExecuteAll(nil)
	p.ExecuteAll([]func(){})
}

func TestExecuteAllWaitsForCompletion(t *testing.T) {
	p := New(2)
	defer p.Close()

	// If ExecuteAll returned before all tasks finished, results would be
	// observed partially written.
	results := make([]int, 50)
	tasks := make([]func(), 50)
	for i := range tasks {
		i := i
		tasks[i] = func() { results[i] = i + 1 }
	}
	p.ExecuteAll(tasks)

	for i, v := range results {
		if v != i+1 {
			t.Fatalf("results[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestNewDefaultWorkers(t *testing.T) {
	p := New(0)
	defer p.Close()

	if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want GOMAXPROCS %d", got, want)
	}

	q := New(-3)
	defer q.Close()
	if q.Workers() <= 0 {
		t.Errorf("Workers() = %d, want positive", q.Workers())
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := New(2)
	p.Close()
	p.Close()
}

func TestExecuteAllAfterClose(t *testing.T) {
	p := New(2)
	p.Close()

	// A closed pool must still run tasks (inline) rather than drop them.
	var counter atomic.Int64
	p.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if got := counter.Load(); got != 2 {
		t.Errorf("ran %d tasks after Close, want 2", got)
	}
}

func TestExecuteAllConcurrentCallers(t *testing.T) {
	p := New(4)
	defer p.Close()

	var counter atomic.Int64
	done := make(chan struct{})
	for c := 0; c < 8; c++ {
		go func() {
			defer func() { done <- struct{}{} }()
			tasks := make([]func(), 25)
			for i := range tasks {
				tasks[i] = func() { counter.Add(1) }
			}
			p.ExecuteAll(tasks)
		}()
	}
	for c := 0; c < 8; c++ {
		<-done
	}

	if got := counter.Load(); got != 200 {
		t.Errorf("ran %d tasks, want 200", got)
	}
}
