package checkoutControllers

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingConn struct {
	messages atomic.Int64
}

func (r *recordingConn) WriteMessage(messageType int, data []byte) error {
	r.messages.Add(1)
	return nil
}

func TestOrderFeedBroadcastReachesAllClients(t *testing.T) {
	f := &orderFeed{clients: make(map[feedConn]bool)}
	a, b := &recordingConn{}, &recordingConn{}
	f.add(a)
	f.add(b)

	f.broadcast([]byte(`{"summary":"x"}`))
	assert.Equal(t, int64(1), a.messages.Load())
	assert.Equal(t, int64(1), b.messages.Load())

	f.remove(a)
	f.broadcast([]byte(`{"summary":"y"}`))
	assert.Equal(t, int64(1), a.messages.Load())
	assert.Equal(t, int64(2), b.messages.Load())
}

// Clients connect and drop while checkouts broadcast; run with -race to catch
// any unguarded access to the client set.
func TestOrderFeedConcurrentClientsAndBroadcasts(t *testing.T) {
	f := &orderFeed{clients: make(map[feedConn]bool)}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				conn := &recordingConn{}
				f.add(conn)
				f.remove(conn)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				f.broadcast([]byte(`{"summary":"order"}`))
			}
		}()
	}
	wg.Wait()
}
