package notify

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// syncBuffer guards the writer: the drain goroutine and the test both touch it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNotifier_DeliversBeforeStop(t *testing.T) {
	out := &syncBuffer{}
	n := New(out, zap.NewNop(), time.Millisecond)
	n.Start()

	n.Push("added task %d", 1)
	n.Push("deleted task %d", 2)
	n.Stop()

	got := out.String()
	assert.Contains(t, got, "* added task 1")
	assert.Contains(t, got, "* deleted task 2")
}

func TestNotifier_StopWithoutMessages(t *testing.T) {
	out := &syncBuffer{}
	n := New(out, zap.NewNop(), time.Millisecond)
	n.Start()
	n.Stop()

	assert.Empty(t, out.String())
}

func TestNotifier_PushNeverBlocks(t *testing.T) {
	out := &syncBuffer{}
	n := New(out, zap.NewNop(), time.Minute) // long hold so the queue backs up

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			n.Push("message %d", i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Push blocked on a saturated queue")
	}
}
