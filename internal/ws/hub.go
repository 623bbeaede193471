package ws

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"
	"time"

	"golang.org/x/net/websocket"
)

// Предельное время записи одного сообщения наблюдателю. Зависший клиент
// не должен останавливать рассылку остальным
const writeWait = 5 * time.Second

// envelope - формат сообщения рассылки
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// OnConnectFunc готовит приветственное событие для нового наблюдателя
// (снапшот текущего джекпота). Прошлые события не доигрываются
type OnConnectFunc func(ctx context.Context) (event string, payload any, err error)

// Hub - рассылка событий всем подключенным наблюдателям.
// Доставка best-effort: отвалившийся клиент просто пропускает события
// и при следующем подключении получает снапшот
type Hub struct {
	mu        sync.Mutex
	clients   map[*websocket.Conn]struct{}
	onConnect OnConnectFunc
}

func NewHub(onConnect OnConnectFunc) *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		onConnect: onConnect,
	}
}

// Broadcast отправляет событие всем текущим подключениям.
// Ошибки записи только логируются
func (h *Hub) Broadcast(event string, payload any) {
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		log.Println("ws: failed to marshal event:", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Println("ws: failed to set write deadline:", err)
			continue
		}
		if _, err := c.Write(msg); err != nil {
			log.Println("ws: failed to write to client:", err)
		}
	}
}

// Handler - обработчик входящих websocket подключений
func (h *Hub) Handler() websocket.Handler {
	return websocket.Handler(h.serve)
}

func (h *Hub) serve(conn *websocket.Conn) {
	// Снапшот состояния новому наблюдателю до включения в рассылку
	if h.onConnect != nil {
		event, payload, err := h.onConnect(conn.Request().Context())
		if err != nil {
			log.Println("ws: failed to build connect snapshot:", err)
		} else if msg, err := json.Marshal(envelope{Event: event, Data: payload}); err == nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if _, err := conn.Write(msg); err != nil {
				log.Println("ws: failed to send connect snapshot:", err)
			}
		}
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		_ = conn.Close()
	}()

	// Держим соединение до закрытия клиентом, входящие данные игнорируем
	_, _ = io.Copy(io.Discard, conn)
}

// ClientCount - количество активных подключений
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
