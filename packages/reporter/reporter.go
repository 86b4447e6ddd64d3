package reporter

import (
	"github.com/abdul-hamid-achik/chaigo/packages/failure"
	"github.com/jtolds/gls"
)

var contexts = gls.NewContextManager()

type frameKey struct{}

// frame is the aggregation state of one collecting run.
type frame struct {
	collecting bool
	buffer     []failure.Signal
}

func (f *frame) add(sig failure.Signal) {
	f.buffer = append(f.buffer, sig)
}

// run executes body, turning an escaping error or panic into a buffered signal.
func (f *frame) run(body func() error) {
	defer func() {
		if r := recover(); r != nil {
			f.add(failure.Recovered(r))
		}
	}()
	if err := body(); err != nil {
		f.add(failure.FromError(err))
	}
}

// release switches collecting off and hands back the buffered signals.
func (f *frame) release() []failure.Signal {
	signals := f.buffer
	f.collecting = false
	f.buffer = nil
	return signals
}

func current() *frame {
	v, ok := contexts.GetValue(frameKey{})
	if !ok {
		return nil
	}
	f, _ := v.(*frame)
	return f
}

// Report buffers sig when the calling goroutine is collecting, otherwise it
// panics with sig.
func Report(sig failure.Signal) {
	if sig == nil {
		panic("reporter: Report called with nil signal")
	}
	if f := current(); f != nil && f.collecting {
		f.add(sig)
		return
	}
	panic(sig)
}

// Collecting reports whether failures on the calling goroutine are buffered.
func Collecting() bool {
	f := current()
	return f != nil && f.collecting
}

// Pending returns the number of failures buffered for the calling goroutine.
func Pending() int {
	if f := current(); f != nil {
		return len(f.buffer)
	}
	return 0
}

// RunCollecting runs body with failure collection enabled for the calling
// goroutine. Errors returned by body and panics escaping it are recorded next
// to the reported failures. The collecting state is always released before
// RunCollecting returns.
//
// A body that leaves through runtime.Goexit never returns here; use
// RunCollectingOrAbort to keep its failures.
func RunCollecting(body func() error) error {
	return RunCollectingOrAbort(body, nil)
}

// RunCollectingOrAbort is RunCollecting for bodies that may stop the
// goroutine with runtime.Goexit, such as t.FailNow. In that case the failures
// buffered so far are passed to onAbort before the goroutine exits.
func RunCollectingOrAbort(body func() error, onAbort func(error)) error {
	f := &frame{collecting: true}
	var signals []failure.Signal
	contexts.SetValues(gls.Values{frameKey{}: f}, func() {
		completed := false
		defer func() {
			signals = f.release()
			if !completed && onAbort != nil {
				if err := failure.Combine(signals); err != nil {
					onAbort(err)
				}
			}
		}()
		f.run(body)
		completed = true
	})
	return failure.Combine(signals)
}

// Catch runs body in fail-fast mode and returns the first failure instead of
// letting it panic. Panics that are not failures are re-raised. Catch is
// fail-fast even when called from inside a collecting run.
func Catch(body func() error) (err error) {
	contexts.SetValues(gls.Values{frameKey{}: &frame{}}, func() {
		err = catch(body)
	})
	return err
}

func catch(body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(failure.Signal)
			if !ok {
				panic(r)
			}
			err = sig
		}
	}()
	return body()
}

// Run dispatches body to Catch or RunCollecting.
func Run(mode Mode, body func() error) error {
	if mode == Multiple {
		return RunCollecting(body)
	}
	return Catch(body)
}
