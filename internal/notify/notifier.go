package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Notifier displays transient per-operation feedback without touching domain
// state. Messages are queued and drained by a single goroutine; each one is
// held on screen for the configured duration and then forgotten.
type Notifier struct {
	out    io.Writer
	logger *zap.Logger
	hold   time.Duration
	queue  chan string
	wg     sync.WaitGroup
	stop   chan struct{}
}

func New(out io.Writer, logger *zap.Logger, hold time.Duration) *Notifier {
	return &Notifier{
		out:    out,
		logger: logger,
		hold:   hold,
		queue:  make(chan string, 16),
		stop:   make(chan struct{}),
	}
}

func (n *Notifier) Start() {
	n.wg.Add(1)
	go n.drain()
}

// Push enqueues a message and returns immediately. When the queue is
// saturated the message is dropped; notifications are best-effort.
func (n *Notifier) Push(format string, args ...any) {
	select {
	case n.queue <- fmt.Sprintf(format, args...):
	default:
		n.logger.Warn("notification dropped")
	}
}

// Stop flushes queued messages and waits for the drain goroutine to exit.
func (n *Notifier) Stop() {
	close(n.stop)
	n.wg.Wait()
}

func (n *Notifier) drain() {
	defer n.wg.Done()

	for {
		select {
		case msg := <-n.queue:
			n.show(msg)
		case <-n.stop:
			// flush whatever is still queued, without the hold delay
			for {
				select {
				case msg := <-n.queue:
					fmt.Fprintf(n.out, "* %s\n", msg)
				default:
					return
				}
			}
		}
	}
}

func (n *Notifier) show(msg string) {
	fmt.Fprintf(n.out, "* %s\n", msg)
	select {
	case <-time.After(n.hold):
	case <-n.stop:
	}
}
