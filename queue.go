package permitr

type Queue struct {
	// Buffer is the maximum amount of requests allowed to be queued at the
	// same time. Waiters beyond Buffer block on enqueue until the
	// coordinator drains the queue, which applies backpressure under
	// sustained overload instead of growing memory without bound. Requests
	// keep their arrival order either way. Defaults to 256.
	Buffer uint
}
