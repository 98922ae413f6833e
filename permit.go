package permitr

import "sync"

type outcome int

const (
	failure outcome = iota
	success
)

// Permit grants its holder the exclusive current turn on the guarded
// resource, paired with the obligation to report how the interaction went.
// Exactly one of Success, Fail and Abandon takes effect per permit. Any
// later call is a no-op, so Abandon is safe to defer alongside either
// report.
type Permit struct {
	onc sync.Once
	out chan outcome
}

// Abandon gives the permit up without reporting an outcome. The coordinator
// moves on to the next waiter immediately, without any delay and without
// touching its backoff interval.
func (p *Permit) Abandon() {
	p.onc.Do(func() {
		close(p.out)
	})
}

// Fail reports that the interaction with the guarded resource failed. The
// coordinator doubles its backoff interval, clamped at the configured cap,
// and delays the next permit by the doubled interval.
func (p *Permit) Fail() {
	p.onc.Do(func() {
		p.out <- failure
	})
}

// Success reports that the interaction with the guarded resource went
// through. The coordinator resets its backoff interval to the configured
// initial and delays the next permit by the configured pacing.
func (p *Permit) Success() {
	p.onc.Do(func() {
		p.out <- success
	})
}
