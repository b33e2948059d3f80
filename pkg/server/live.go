package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vango-dev/selectdemo/internal/gallery"
	"github.com/vango-dev/selectdemo/pkg/render"
	"github.com/vango-dev/selectdemo/pkg/toast"
)

// clientMessage is a message from the browser.
type clientMessage struct {
	Type   string            `json:"type"`
	Widget string            `json:"widget,omitempty"`
	Key    string            `json:"key,omitempty"`
	Form   string            `json:"form,omitempty"`
	Values map[string]string `json:"values,omitempty"`
}

// serverMessage is a message to the browser. Type is "update", "toast"
// or "error".
type serverMessage struct {
	Type    string         `json:"type"`
	Anchor  string         `json:"anchor,omitempty"`
	HTML    string         `json:"html,omitempty"`
	Detail  map[string]any `json:"detail,omitempty"`
	Message string         `json:"message,omitempty"`
}

// liveConn is one WebSocket connection bound to a session. Only the read
// goroutine writes data frames; pings use WriteControl, which gorilla
// allows concurrently.
type liveConn struct {
	s    *Server
	conn *websocket.Conn
	sess *Session
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	var header http.Header
	sess, ok := s.liveSession(r)
	if !ok {
		sess = s.sessions.Create()
		header = http.Header{}
		header.Add("Set-Cookie", s.sessionCookie(sess.ID).String())
	}

	conn, err := s.upgrader.Upgrade(w, r, header)
	if err != nil {
		s.deps.Metrics.WebSocketError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	s.deps.Metrics.LiveConnected()
	defer s.deps.Metrics.LiveDisconnected()
	defer conn.Close()
	// Shutdown does not track hijacked connections; unblock the reader.
	stop := context.AfterFunc(r.Context(), func() { conn.Close() })
	defer stop()

	lc := &liveConn{s: s, conn: conn, sess: sess}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go lc.heartbeat(ctx)

	s.logger.Debug("live connected", "session_id", sess.ID)
	lc.readLoop(ctx)
	s.logger.Debug("live disconnected", "session_id", sess.ID)
}

func (s *Server) liveSession(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(s.config.SessionCookie)
	if err != nil {
		return nil, false
	}
	return s.sessions.Get(c.Value)
}

// readLoop reads messages until the connection closes or fails.
func (lc *liveConn) readLoop(ctx context.Context) {
	cfg := lc.s.config
	lc.conn.SetReadLimit(cfg.MaxMessageBytes)
	lc.conn.SetReadDeadline(time.Now().Add(cfg.WSReadTimeout))
	lc.conn.SetPongHandler(func(string) error {
		return lc.conn.SetReadDeadline(time.Now().Add(cfg.WSReadTimeout))
	})

	for {
		_, data, err := lc.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				lc.s.deps.Metrics.WebSocketError("read")
				lc.s.logger.Warn("read error", "session_id", lc.sess.ID, "error", err)
			}
			return
		}
		lc.conn.SetReadDeadline(time.Now().Add(cfg.WSReadTimeout))

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			lc.s.deps.Metrics.WebSocketError("decode")
			if lc.send(serverMessage{Type: "error", Message: "malformed message"}) != nil {
				return
			}
			continue
		}
		if err := lc.handle(ctx, msg); err != nil {
			lc.s.deps.Metrics.WebSocketError("write")
			return
		}
	}
}

// handle applies one event and answers with the re-rendered card content
// followed by any notifications. The returned error is a write failure.
func (lc *liveConn) handle(ctx context.Context, msg clientMessage) error {
	ev := event{Kind: msg.Type, Widget: msg.Widget, Key: msg.Key, Form: msg.Form, Values: msg.Values}
	_, done := lc.s.eventTimer(ctx, ev, lc.sess.ID, "live")

	var (
		rec  toast.Recorder
		upd  gallery.Update
		html string
		err  error
	)
	lc.sess.Do(func(g *gallery.Gallery) {
		upd, err = dispatch(g, ev, &rec)
		if err != nil {
			return
		}
		// Rendered under the session lock: the content reads widget state.
		html, err = render.NewRenderer(render.RendererConfig{}).RenderToString(upd.Card.Content())
	})
	done(err)

	if err != nil {
		lc.s.logger.Debug("event rejected", "session_id", lc.sess.ID, "target", ev.target(), "error", err)
		return lc.send(serverMessage{Type: "error", Message: err.Error()})
	}

	if err := lc.send(serverMessage{Type: "update", Anchor: upd.Card.Anchor, HTML: html}); err != nil {
		return err
	}
	toasts := rec.Toasts()
	lc.s.recordToasts(toasts)
	for _, t := range toasts {
		if err := lc.send(serverMessage{Type: "toast", Detail: t}); err != nil {
			return err
		}
	}
	return nil
}

func (lc *liveConn) send(msg serverMessage) error {
	lc.conn.SetWriteDeadline(time.Now().Add(lc.s.config.WSWriteTimeout))
	return lc.conn.WriteJSON(msg)
}

// heartbeat pings at half the read timeout so idle connections stay open.
func (lc *liveConn) heartbeat(ctx context.Context) {
	ticker := time.NewTicker(lc.s.config.WSReadTimeout / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			deadline := time.Now().Add(lc.s.config.WSWriteTimeout)
			if err := lc.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
