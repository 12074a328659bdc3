package appointments

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins — adjust for production if needed
		return true
	},
}

var (
	subscribers []*websocket.Conn
	mu          sync.Mutex
)

type wsMessage struct {
	Type string `json:"type"`
}

// HandleWS subscribes a client to calendar update notifications. The client
// is expected to reload its appointment list on each "update" message.
func HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers = append(subscribers, conn)
	mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	newList := make([]*websocket.Conn, 0, len(subscribers))
	for _, c := range subscribers {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers = newList
	mu.Unlock()

	conn.Close()
}

func broadcastUpdate() {
	data, _ := json.Marshal(wsMessage{Type: "update"})

	mu.Lock()
	defer mu.Unlock()

	newList := subscribers[:0]
	for _, conn := range subscribers {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers = newList
}
