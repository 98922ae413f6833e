package permitr

import "time"

type Backoff struct {
	// Initial is the backoff interval the coordinator starts out with and
	// falls back to after every permit resolved via Permit.Success. Defaults
	// to 500ms.
	Initial time.Duration
	// Cap is the upper bound the backoff interval can never exceed. The
	// interval doubles on every consecutive failure and clamps at Cap. Given
	// an Initial of 100ms and a Cap of 800ms an uninterrupted run of
	// failures delays consecutive permits as follows. Defaults to 30s.
	//
	//     * first failure, wait 200ms
	//     * second failure, wait 400ms
	//     * third failure, wait 800ms
	//     * fourth failure, wait 800ms
	//
	// Note that the configured durations are not validated. An Initial
	// larger than Cap simply clamps down to Cap on the first failure.
	Cap time.Duration
}
