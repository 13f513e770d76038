package coordinator

// Handle lets the holder wait for one spawned goroutine to terminate.
type Handle struct {
	done chan struct{}
}

// spawn starts fn on a new goroutine. The handle is released even if fn
// exits through panic or runtime.Goexit.
func spawn(fn func()) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		fn()
	}()
	return h
}

// Join blocks until the goroutine has terminated.
func (h *Handle) Join() {
	<-h.done
}

// Done is closed once the goroutine has terminated.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
