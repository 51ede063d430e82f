package dashboard

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/openexhibits/exhibits-admin/internal/activity"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// feed pushes activity entries to every open dashboard tab.
type feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newFeed() *feed {
	return &feed{clients: make(map[*websocket.Conn]bool)}
}

func (f *feed) add(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clients[conn] = true
}

func (f *feed) remove(conn *websocket.Conn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients, conn)
}

// broadcast sends one entry to all connected tabs. Dead connections are
// dropped on write failure.
func (f *feed) broadcast(e activity.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.clients {
		if err := conn.WriteJSON(e); err != nil {
			conn.Close()
			delete(f.clients, conn)
		}
	}
}

func (d *Dashboard) handleActivityFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("dashboard: websocket upgrade: %v", err)
		return
	}

	d.feed.add(conn)
	defer func() {
		d.feed.remove(conn)
		conn.Close()
	}()

	// The feed is push-only; reads only detect the tab closing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("dashboard: websocket read: %v", err)
			}
			return
		}
	}
}
