package permitr

import (
	"context"
	"sync"
	"time"

	"github.com/xh3b4sd/tracer"
)

type Config struct {
	Backoff Backoff
	// Closer is the optional signal channel stopping the coordinator from
	// outside. Closing it is equivalent to calling Permitr.Close. Processes
	// receiving kill signals may forward shutdown signals to the coordinator
	// this way.
	Closer <-chan struct{}
	Pacing Pacing
	Queue  Queue
}

type Permitr struct {
	bac Backoff
	don chan struct{}
	onc sync.Once
	pac Pacing
	que chan chan *Permit
}

func Default() *Permitr {
	return New(Config{})
}

func New(config Config) *Permitr {
	{
		if config.Backoff.Initial == 0 {
			config.Backoff.Initial = 500 * time.Millisecond
		}
		if config.Backoff.Cap == 0 {
			config.Backoff.Cap = 30 * time.Second
		}
	}

	{
		if config.Pacing.Between == 0 {
			config.Pacing.Between = 1 * time.Second
		}
	}

	{
		if config.Queue.Buffer == 0 {
			config.Queue.Buffer = 256
		}
	}

	p := &Permitr{
		bac: config.Backoff,
		don: make(chan struct{}),
		pac: config.Pacing,
		que: make(chan chan *Permit, config.Queue.Buffer),
	}

	{
		go p.daemon()
	}

	if config.Closer != nil {
		go func() {
			select {
			case <-config.Closer:
				p.Close()
			case <-p.don:
			}
		}()
	}

	return p
}

// Close stops the coordinator permanently. Waiters queued at the time of the
// call, and anybody calling Permitr.Wait afterwards, receive the Closed
// error. Outcomes reported on permits granted before the call are silently
// discarded. Close may be called any number of times from any goroutine.
func (p *Permitr) Close() {
	p.onc.Do(func() {
		close(p.don)
	})
}

// Wait suspends the calling goroutine until the coordinator grants it a
// permit. Requests are serviced strictly in arrival order, and at most one
// permit is outstanding at any point in time, across all goroutines sharing
// this instance. The next permit is granted once the current one got
// resolved, delayed according to the reported outcome. Cancelling the given
// context releases the caller and forfeits its place in line.
func (p *Permitr) Wait(ctx context.Context) (*Permit, error) {
	rep := make(chan *Permit, 1)

	select {
	case p.que <- rep:
	case <-p.don:
		return nil, tracer.Mask(Closed)
	case <-ctx.Done():
		return nil, tracer.Mask(ctx.Err())
	}

	select {
	case per := <-rep:
		return per, nil
	case <-p.don:
		return nil, tracer.Mask(Closed)
	case <-ctx.Done():
		// The request is already queued. Somebody has to resolve the permit
		// once the coordinator delivers it, or the coordinator would await
		// its outcome forever.
		go func() {
			select {
			case per := <-rep:
				per.Abandon()
			case <-p.don:
			}
		}()

		return nil, tracer.Mask(ctx.Err())
	}
}

func (p *Permitr) daemon() {
	cur := p.bac.Initial

	for {
		var rep chan *Permit
		{
			select {
			case rep = <-p.que:
			case <-p.don:
				return
			}
		}

		var per *Permit
		{
			per = &Permit{out: make(chan outcome, 1)}
			rep <- per
		}

		var out outcome
		var res bool
		{
			select {
			case out, res = <-per.out:
			case <-p.don:
				return
			}
		}

		// Abandoned without an outcome. No interval adjustment, no delay.
		if !res {
			continue
		}

		var del time.Duration
		switch out {
		case failure:
			cur *= 2
			if cur > p.bac.Cap {
				cur = p.bac.Cap
			}

			del = cur
		case success:
			cur = p.bac.Initial

			del = p.pac.Between
		}

		select {
		case <-time.After(del):
		case <-p.don:
			return
		}
	}
}
