package server

import (
	"log/slog"
	"net/http"

	"nhooyr.io/websocket"
)

// handleWSEvents streams session events as WebSocket text messages. Incoming
// messages are ignored.
func handleWSEvents(logger *slog.Logger, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r)
		ch := broker.Subscribe(sess.ID)
		defer broker.Unsubscribe(sess.ID, ch)

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "session", sess.ID, "error", err)
			return
		}
		defer conn.CloseNow()

		ctx := conn.CloseRead(r.Context())

		for {
			select {
			case <-ctx.Done():
				logger.Debug("websocket closed by peer", "session", sess.ID)
				return
			case msg, ok := <-ch:
				if !ok {
					conn.Close(websocket.StatusGoingAway, "session closed")
					return
				}
				if err := conn.Write(ctx, websocket.MessageText, msg.Data); err != nil {
					logger.Debug("websocket write failed", "session", sess.ID, "error", err)
					return
				}
			}
		}
	}
}
