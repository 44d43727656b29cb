package orderControllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ISSA5922/ambertek-export/i18n"
	"github.com/ISSA5922/ambertek-export/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Feed pushes freshly created orders to connected admin dashboards. It is
// wired into the assembler as a post-commit hook.
type Feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewFeed() *Feed {
	return &Feed{clients: make(map[*websocket.Conn]bool)}
}

// GET /admin/orders/feed (websocket)
func (f *Feed) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			delete(f.clients, conn)
			f.mu.Unlock()
			break
		}
	}
}

// OrderCreated broadcasts the new order to every connected client.
// Signature matches orders.PostCommitHook.
func (f *Feed) OrderCreated(order *models.Order, items []models.OrderItem, _ i18n.Locale) {
	payload := struct {
		Event string        `json:"event"`
		Order *models.Order `json:"order"`
	}{Event: "order_created", Order: order}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal order %s for feed: %v", order.OrderNumber, err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for client := range f.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(f.clients, client)
		}
	}
}
