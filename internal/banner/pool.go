package banner

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
)

const DefaultWorkers = 4

var ErrPoolClosed = errors.New("banner pool is closed")

type Emitter interface {
	Emit(name string, args ...interface{})
}

type Composer interface {
	Compose(data *Data) ([]byte, error)
}

// Pool bounds the number of simultaneously running compositions
type Pool struct {
	Composer
	Emitter

	size   int64
	slots  *semaphore.Weighted
	closed atomic.Bool
}

func NewPool(composer Composer, workers int, emitter Emitter) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Pool{
		Composer: composer,
		Emitter:  emitter,
		size:     int64(workers),
		slots:    semaphore.NewWeighted(int64(workers)),
	}
}

// Render waits for a free slot and composes the banner. Composition failures aren't returned:
// the composer already substituted the result, the failure is only reported through the emitter.
func (p *Pool) Render(ctx context.Context, data *Data) ([]byte, error) {
	if p.closed.Load() {
		return nil, ErrPoolClosed
	}

	if err := p.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer p.slots.Release(1)

	if p.closed.Load() {
		return nil, ErrPoolClosed
	}

	start := time.Now()
	result, err := p.Compose(data)
	p.Emit("banner:after_render", time.Since(start), err)

	return result, nil
}

// Close rejects new renders and waits for the running ones to finish
func (p *Pool) Close() {
	if p.closed.Swap(true) {
		return
	}

	_ = p.slots.Acquire(context.Background(), p.size)
	p.slots.Release(p.size)
}
