package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// KitchenHub กระจาย event แบบ realtime ให้จอครัว/จอแคชเชียร์
// ห้องเดียวทั้งร้าน — ทุกจอเห็นทุก event แล้วกรองเอาเอง
type KitchenHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type Event struct {
	// order_created / item_status / table_status / order_completed
	Type string    `json:"type"`
	Data any       `json:"data"`
	At   time.Time `json:"at"`
}

func NewKitchenHub() *KitchenHub {
	return &KitchenHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// ยิง event เข้า hub — ไม่ block ผู้เรียก ถ้า buffer เต็มทิ้งเลย
// (จอครัว refresh เองได้ event เป็นแค่ตัวกระตุ้น)
func (h *KitchenHub) Publish(eventType string, data any) {
	ev := Event{Type: eventType, Data: data, At: time.Now()}
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws hub full, dropping %s event", eventType)
	}
}

// คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *KitchenHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/kitchen (หลัง AuthMiddleware)
func (h *KitchenHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.listen(conn)
}

// จอครัวไม่ส่งอะไรกลับมา — อ่านไว้แค่รอ close
func (h *KitchenHub) listen(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
