package checkoutControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/premstore-git/premium-store-api/checkout"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// feedConn is the slice of *websocket.Conn the feed needs.
type feedConn interface {
	WriteMessage(messageType int, data []byte) error
}

// orderFeed tracks connected listeners. Gin serves the feed handler and the
// checkout handler on separate goroutines, so the client set is mutex-guarded;
// the lock is also held across broadcast writes, which keeps a single writer
// per connection as gorilla requires.
type orderFeed struct {
	mu      sync.Mutex
	clients map[feedConn]bool
}

var feed = &orderFeed{clients: make(map[feedConn]bool)}

func (f *orderFeed) add(conn feedConn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[conn] = true
}

func (f *orderFeed) remove(conn feedConn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients, conn)
}

func (f *orderFeed) broadcast(data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		client.WriteMessage(websocket.TextMessage, data)
	}
}

// GET /ws/orders
//
// Streams every completed order summary to connected listeners. This is the
// outbound side channel: the seller keeps a client open and receives each
// handed-off order as it happens.
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()
	feed.add(conn)
	defer feed.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func broadcastOrder(order checkout.Order) {
	data, err := json.Marshal(gin.H{"summary": order.Summary})
	if err != nil {
		return
	}
	feed.broadcast(data)
}
