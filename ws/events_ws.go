package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sauravtand/restaurant-management-system/utils"
)

// Event คือการเปลี่ยนแปลงข้อมูลหนึ่งครั้ง ส่งให้ dashboard ที่เปิดค้างอยู่
// Type เช่น "menu.created", "table.updated", "order.deleted"
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// EventHub กระจาย event ให้ client แยกตาม restaurant code
type EventHub struct {
	clients    map[string]map[*websocket.Conn]bool // restaurantCode -> set of clients
	broadcast  chan broadcastEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
}

type subscription struct {
	Conn           *websocket.Conn
	RestaurantCode string
}

type broadcastEvent struct {
	RestaurantCode string
	Event          Event
}

func NewEventHub() *EventHub {
	return &EventHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		broadcast:  make(chan broadcastEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

// Run คอยฟัง register/unregister/broadcast ตลอดเวลา
func (h *EventHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantCode] == nil {
				h.clients[sub.RestaurantCode] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantCode][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantCode][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantCode], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[msg.RestaurantCode] {
				if err := conn.WriteJSON(msg.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.RestaurantCode], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish ส่ง event เข้า broadcast channel (drop ถ้า buffer เต็ม ไม่ block CRUD)
func (h *EventHub) Publish(restaurantCode string, ev Event) {
	select {
	case h.broadcast <- broadcastEvent{RestaurantCode: restaurantCode, Event: ev}:
	default:
		log.Printf("ws broadcast buffer full, dropping %s", ev.Type)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/events (ผ่าน WSAuthMiddleware มาก่อน)
func (h *EventHub) HandleWebSocket(c *gin.Context) {
	code := utils.CurrentRestaurantCode(c)
	if code == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no restaurant"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantCode: code}
	h.register <- sub

	// อ่านทิ้งจนกว่า client จะปิด connection
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
