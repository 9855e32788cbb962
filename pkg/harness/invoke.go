package harness

// Awaiter is a deferred candidate result. Await blocks until the result is
// available and returns it.
type Awaiter interface {
	Await() any
}

// invoke runs a candidate on one input and waits for full completion, so
// timing callers observe the complete latency of deferred work.
func invoke(fn Func, input any) any {
	return settle(fn(input))
}

// settle unwraps deferred results until a plain value remains. Deferral can
// nest (an Awaiter resolving to a channel and so on).
func settle(v any) any {
	for {
		switch d := v.(type) {
		case Awaiter:
			v = d.Await()
		case <-chan any:
			v = <-d
		case chan any:
			v = <-d
		case func() any:
			v = d()
		default:
			return v
		}
	}
}
