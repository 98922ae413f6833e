package permitr

import (
	"errors"

	"github.com/xh3b4sd/tracer"
)

var Closed = &tracer.Error{
	Kind: "closed",
	Desc: "Closed is the error returned by Permitr.Wait if the coordinator got stopped, either via Permitr.Close or via the configured closer channel. A stopped coordinator does not grant permits anymore, neither to waiters queued before the shutdown nor to anybody waiting afterwards.",
}

func IsClosed(err error) bool {
	return errors.Is(err, Closed)
}
