// internal/store/async.go
//
// Fire-and-forget writer in front of a Storage.
//
// Set and Remove only record the latest operation per key and return; a
// single background goroutine applies them to the inner store. Reads see
// pending writes first, so callers always read what they last wrote. Write
// failures are logged and dropped: gameplay state lives in memory and is
// never rolled back because the disk said no.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrClosed is returned by operations on a closed Async.
var ErrClosed = errors.New("store: writer closed")

// writeTimeout bounds a single background write.
const writeTimeout = 5 * time.Second

type op struct {
	value  string
	remove bool
}

// Async buffers writes to an inner Storage.
type Async struct {
	inner Storage

	mu       sync.Mutex
	pending  map[string]op   // queued, not yet started
	inflight map[string]op   // batch currently being written
	barriers []chan struct{} // Flush waiters, released once queues drain
	closed   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
}

// NewAsync starts the background writer for inner.
func NewAsync(inner Storage) *Async {
	a := &Async{
		inner:   inner,
		pending: make(map[string]op),
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

func (a *Async) Get(ctx context.Context, key string) (string, bool, error) {
	a.mu.Lock()
	o, ok := a.pending[key]
	if !ok {
		o, ok = a.inflight[key]
	}
	a.mu.Unlock()
	if ok {
		return o.value, !o.remove, nil
	}
	return a.inner.Get(ctx, key)
}

func (a *Async) Set(ctx context.Context, key, value string) error {
	return a.enqueue(key, op{value: value})
}

// Create is written through synchronously: the caller needs to know whether
// the key was free, which a queued write cannot tell it. The lock is held
// across the inner call so no queued write for key can slip in between.
func (a *Async) Create(ctx context.Context, key, value string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return false, ErrClosed
	}
	o, ok := a.pending[key]
	if !ok {
		o, ok = a.inflight[key]
	}
	if ok && !o.remove {
		return false, nil
	}
	if ok {
		// A queued remove still has to reach the backend; replacing it with
		// the new value gives the same end state.
		a.pending[key] = op{value: value}
		a.signal()
		return true, nil
	}
	return a.inner.Create(ctx, key, value)
}

func (a *Async) Remove(ctx context.Context, key string) error {
	return a.enqueue(key, op{remove: true})
}

func (a *Async) enqueue(key string, o op) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return ErrClosed
	}
	a.pending[key] = o
	a.mu.Unlock()
	a.signal()
	return nil
}

func (a *Async) signal() {
	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Flush waits until every write queued before the call has been attempted.
func (a *Async) Flush(ctx context.Context) error {
	ch := make(chan struct{})
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		// Close's final drain attempts everything that was queued.
		select {
		case <-a.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	a.barriers = append(a.barriers, ch)
	a.mu.Unlock()
	a.signal()

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains queued writes and stops the writer.
func (a *Async) Close(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	a.mu.Unlock()
	close(a.stop)

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *Async) run() {
	defer close(a.done)
	for {
		select {
		case <-a.wake:
			a.drain()
		case <-a.stop:
			a.drain()
			return
		}
	}
}

// drain writes batches until the queue is empty, then releases Flush waiters.
func (a *Async) drain() {
	for {
		a.mu.Lock()
		if len(a.pending) == 0 {
			waiters := a.barriers
			a.barriers = nil
			a.mu.Unlock()
			for _, ch := range waiters {
				close(ch)
			}
			return
		}
		batch := a.pending
		a.pending = make(map[string]op)
		a.inflight = batch
		a.mu.Unlock()

		for key, o := range batch {
			a.apply(key, o)
		}

		a.mu.Lock()
		a.inflight = nil
		a.mu.Unlock()
	}
}

func (a *Async) apply(key string, o op) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var err error
	if o.remove {
		err = a.inner.Remove(ctx, key)
	} else {
		err = a.inner.Set(ctx, key, o.value)
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("storage write dropped")
	}
}
