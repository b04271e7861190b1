package inference

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPoolClosed is returned by Acquire after Close.
var ErrPoolClosed = errors.New("inference: pool closed")

// Pool hands out ONNX sessions to concurrent callers. Sessions are created
// lazily up to the pool's capacity; the first one is created eagerly so that
// a bad model path fails at construction rather than on first use.
type Pool struct {
	modelPath string
	capacity  int
	idle      chan *Session

	mu      sync.Mutex
	created int
	closed  bool
}

// NewPool creates a pool of up to capacity sessions for the given model.
func NewPool(modelPath string, capacity int) (*Pool, error) {
	if capacity <= 0 {
		capacity = 1
	}

	first, err := NewSession(modelPath)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	p := &Pool{
		modelPath: modelPath,
		capacity:  capacity,
		idle:      make(chan *Session, capacity),
		created:   1,
	}
	p.idle <- first
	return p, nil
}

// Acquire returns a session, creating one if the pool is below capacity,
// otherwise blocking until a session is released or ctx is done.
func (p *Pool) Acquire(ctx context.Context) (*Session, error) {
	select {
	case s, ok := <-p.idle:
		if !ok {
			return nil, ErrPoolClosed
		}
		return s, nil
	default:
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, ErrPoolClosed
	}
	if p.created < p.capacity {
		p.created++
		p.mu.Unlock()

		s, err := NewSession(p.modelPath)
		if err != nil {
			p.mu.Lock()
			p.created--
			p.mu.Unlock()
			return nil, fmt.Errorf("creating session: %w", err)
		}
		return s, nil
	}
	p.mu.Unlock()

	select {
	case s, ok := <-p.idle:
		if !ok {
			return nil, ErrPoolClosed
		}
		return s, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Release returns a session to the pool. Sessions released after Close are
// closed instead.
func (p *Pool) Release(s *Session) {
	if s == nil {
		return
	}

	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		_ = s.Close()
		return
	}

	select {
	case p.idle <- s:
	default:
		_ = s.Close() // over capacity, drop it
	}
}

// Capacity returns the maximum number of sessions the pool will create.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Close closes all idle sessions and marks the pool closed. Sessions still
// checked out are closed when released.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.idle)

	var errs []error
	for s := range p.idle {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
