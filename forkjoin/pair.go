package forkjoin

// Pair runs f1 and f2 and returns both results once both have completed.
//
// work is the caller's estimate of the combined work of both branches, e.g.
// the number of tree nodes involved. The pool forks f1 into a new goroutine
// only if work reaches its cutoff and a task slot is free; f2 always runs in
// the calling goroutine.
//
// If a branch panics, the panic is re-raised here after both branches are done.
// A panic of the spawned branch is wrapped in a *PanicError.
func Pair[A, B any](p *Pool, work int, f1 func() A, f2 func() B) (A, B) {
	if !p.acquire(work) {
		a := f1()
		return a, f2()
	}
	var a A
	var perr *PanicError
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer p.release()
		defer func() {
			if v := recover(); v != nil {
				perr = newPanicError(v)
			}
		}()
		a = f1()
	}()
	b := joinAfter(done, f2)
	if perr != nil {
		tracer().Errorf("forkjoin: re-raising panic of forked branch: %v", perr.Value)
		panic(perr)
	}
	return a, b
}

// joinAfter runs f in the calling goroutine and waits for done, even if f panics.
func joinAfter[B any](done <-chan struct{}, f func() B) B {
	defer func() {
		<-done
	}()
	return f()
}

// Run is Pair for computations without results.
func Run(p *Pool, work int, f1, f2 func()) {
	Pair(p, work,
		func() struct{} { f1(); return struct{}{} },
		func() struct{} { f2(); return struct{}{} },
	)
}
