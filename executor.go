package timingwheel

import "github.com/panjf2000/ants/v2"

// Executor runs expired callbacks. The wheel only submits; anything that
// accepts a task and eventually runs it qualifies. A non-nil error from
// Submit is treated as a non-fatal fault and forwarded to the wheel's
// fault handler; the timer is considered dispatched and is not retried.
type Executor interface {
	Submit(task func()) error
}

// directExecutor runs the task inline on the submitting goroutine, which
// during dispatch is the wheel worker. Reserved for short, non-blocking
// work; a panicking task is recovered so it cannot take the worker down.
type directExecutor struct {
	onPanic func(any)
}

func (d *directExecutor) Submit(task func()) error {
	defer func() {
		if p := recover(); p != nil && d.onPanic != nil {
			d.onPanic(p)
		}
	}()
	task()
	return nil
}

// goExecutor degrades to one goroutine per task.
type goExecutor struct{}

func (goExecutor) Submit(task func()) error {
	go task()
	return nil
}

// GoExecutor returns an executor that runs every task on a fresh goroutine.
func GoExecutor() Executor {
	return goExecutor{}
}

// PoolExecutor runs tasks on a bounded ants goroutine pool. The pool is
// non-blocking: when it is saturated Submit returns ants.ErrPoolOverload,
// which the wheel reports through its fault handler.
type PoolExecutor struct {
	pool *ants.Pool
}

func NewPoolExecutor(size int) (*PoolExecutor, error) {
	pool, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &PoolExecutor{pool: pool}, nil
}

func (p *PoolExecutor) Submit(task func()) error {
	return p.pool.Submit(task)
}

// Release frees the underlying pool. Pending tasks are not waited for.
func (p *PoolExecutor) Release() {
	p.pool.Release()
}
