package worker

import (
	"sync/atomic"
	"testing"

	"github.com/circuithack/codee-chess/internal/chess"
)

// echo returns each item's move and index unchanged.
func echo(item WorkItem) ProcessResult {
	return ProcessResult{Move: item.Move, Index: item.Index}
}

// runAll submits n items to a started pool, closes it and returns the
// results keyed by index.
func runAll(pool *Pool, n int) map[int]ProcessResult {
	go func() {
		for i := 0; i < n; i++ {
			pool.Submit(WorkItem{Move: chess.NewMove(i%8, 6, i%8, 4), Index: i})
		}
		pool.Close()
	}()
	got := make(map[int]ProcessResult)
	for r := range pool.Results() {
		got[r.Index] = r
	}
	return got
}

func TestPool_EveryItemHasOneResult(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		var calls int32
		pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
			atomic.AddInt32(&calls, 1)
			return echo(item)
		}, WithWorkers(workers), WithBufferSize(4))
		pool.Start()

		const n = 40
		got := runAll(pool, n)
		if len(got) != n {
			t.Errorf("workers=%d: %d results, want %d", workers, len(got), n)
		}
		for i := 0; i < n; i++ {
			if r, ok := got[i]; !ok || r.Move != chess.NewMove(i%8, 6, i%8, 4) {
				t.Errorf("workers=%d: result %d = %+v, %v", workers, i, r, ok)
			}
		}
		if c := atomic.LoadInt32(&calls); c != n {
			t.Errorf("workers=%d: processFunc called %d times, want %d", workers, c, n)
		}
	}
}

func TestPool_StoppedPoolSkipsQueuedItems(t *testing.T) {
	var calls int32
	pool := NewPoolWithOptions(func(item WorkItem) ProcessResult {
		atomic.AddInt32(&calls, 1)
		return echo(item)
	}, WithWorkers(2), WithBufferSize(16))

	if pool.IsStopped() {
		t.Fatal("new pool reports stopped")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Fatal("IsStopped() = false after Stop()")
	}
	pool.Start()

	if got := runAll(pool, 10); len(got) != 0 {
		t.Errorf("stopped pool produced %d results, want 0", len(got))
	}
	if c := atomic.LoadInt32(&calls); c != 0 {
		t.Errorf("processFunc called %d times after Stop, want 0", c)
	}
}

func TestNewPoolWithOptions(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"workers and buffer", []PoolOption{WithWorkers(4), WithBufferSize(50)}, 4, 50},
		{"invalid values ignored", []PoolOption{WithWorkers(0), WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPoolWithOptions(echo, tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d, want %d", pool.numWorkers, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer || cap(pool.workChan) != tt.wantBuffer {
				t.Errorf("bufferSize = %d (cap %d), want %d", pool.bufferSize, cap(pool.workChan), tt.wantBuffer)
			}
		})
	}
}
