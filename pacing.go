package permitr

import "time"

type Pacing struct {
	// Between is the fixed delay the coordinator imposes between two
	// consecutive permits while the guarded resource is healthy, that is
	// after a permit got resolved via Permit.Success. Pacing spaces permits
	// out at a steady cautious rate instead of letting waiters burst right
	// after a recovery. Defaults to 1s.
	Between time.Duration
}
