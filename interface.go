package permitr

import "context"

type Interface interface {
	Close()
	Wait(ctx context.Context) (*Permit, error)
}
