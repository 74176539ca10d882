//go:build unix

package term

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent carries new terminal dimensions.
type ResizeEvent struct {
	Width  int
	Height int
}

// ResizeWatcher converts SIGWINCH into ResizeEvents on a 1-deep channel.
// A newer event replaces an unconsumed older one, so the reader always
// sees the latest size. The watcher never touches render state itself;
// the render loop drains Events at frame boundaries.
type ResizeWatcher struct {
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchResize installs the SIGWINCH handler and starts the watcher.
func WatchResize() *ResizeWatcher {
	w := &ResizeWatcher{
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	signal.Notify(w.sigCh, syscall.SIGWINCH)
	go w.loop()
	return w
}

// Events returns the resize event channel.
func (w *ResizeWatcher) Events() <-chan ResizeEvent {
	return w.eventCh
}

// Stop detaches the signal handler and waits for the watcher to exit.
func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sigCh)
	close(w.stopCh)
	<-w.doneCh
}

func (w *ResizeWatcher) loop() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case <-w.sigCh:
			width, height, err := WindowSize()
			if err != nil {
				// Probe failure is non-fatal; prior dimensions stand.
				continue
			}
			// Non-blocking send, replacing any stale event.
			select {
			case w.eventCh <- ResizeEvent{Width: width, Height: height}:
			default:
				select {
				case <-w.eventCh:
				default:
				}
				w.eventCh <- ResizeEvent{Width: width, Height: height}
			}
		}
	}
}
