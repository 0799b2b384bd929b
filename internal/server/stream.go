package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/logging"
	"github.com/Katastrophique/projet-agile-carte-du-ciel/internal/state"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced at the router level.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Stream pushes visible-sky snapshots over a WebSocket at the manager's
// refresh cadence. Clients only receive; any inbound message is drained
// and used to detect disconnects.
type Stream struct {
	log *logging.Logger
	mgr *state.Manager
}

// NewStream creates the snapshot streamer.
func NewStream(log *logging.Logger, mgr *state.Manager) *Stream {
	return &Stream{log: log.WithPrefix("stream"), mgr: mgr}
}

// Serve handles GET /v1/sky/stream.
func (s *Stream) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	s.log.Debug("client connected: %s", c.Request.RemoteAddr)

	send := func(snap state.Snapshot) error {
		return conn.WriteJSON(VisibleResponse{
			At:       snap.At,
			Observer: snap.Observer,
			Twilight: snap.Twilight.String(),
			Count:    len(snap.Stars),
			Stars:    snap.Stars,
		})
	}

	// First frame immediately, then follow the recompute cadence.
	if snap, ok := s.mgr.Snapshot(); ok {
		if err := send(snap); err != nil {
			return
		}
	}

	ticker := time.NewTicker(s.mgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-done:
			s.log.Debug("client disconnected: %s", c.Request.RemoteAddr)
			return
		case <-ticker.C:
			snap, ok := s.mgr.Snapshot()
			if !ok {
				continue
			}
			if err := send(snap); err != nil {
				return
			}
		}
	}
}
