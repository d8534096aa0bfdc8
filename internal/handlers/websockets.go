package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"


	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

const (
	wsTypeStatus     = "status"
	wsTypePrediction = "prediction"
	wsTypeError      = "error"
)

type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
	Code  int         `json:"code,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live predictions
// @Description  WebSocket. Each text message is an InputRecord; each reply is a prediction or error envelope. A status envelope is sent on connect.
// @Tags         predictions
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := c.Request.Context()
	out := make(chan wsEnvelope, 1)
	quit := make(chan struct{})
	done := make(chan struct{})
	defer close(quit)
	go h.startReader(ctx, conn, out, quit, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if h.services != nil && h.services.ModelStatus != nil {
		if err := writeEnvelope(conn, wsEnvelope{Type: wsTypeStatus, Data: h.services.Status()}); err != nil {
			if h.log != nil {
				h.log.Infow("ws_write_failed_initial", "err", err)
			}
			return
		}
	}

	// only this loop writes to conn
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case env := <-out:
			if err := writeEnvelope(conn, env); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// startReader turns each incoming message into a reply on out until the
// connection closes or quit is closed.
func (h *Handler) startReader(ctx context.Context, conn *websocket.Conn, out chan<- wsEnvelope, quit <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}

		select {
		case out <- h.predictMessage(ctx, msg):
		case <-quit:
			return
		}
	}
}

// predictMessage decodes msg like a POST body and runs a prediction.
func (h *Handler) predictMessage(ctx context.Context, msg []byte) wsEnvelope {
	in, err := decodeInput(bytes.NewReader(msg))
	if err != nil {
		return wsEnvelope{Type: wsTypeError, Error: errInvalidBodyPref + err.Error(), Code: http.StatusBadRequest}
	}

	est, err := h.services.Estimate(ctx, in)
	if err != nil {
		code, text := predictionFailure(err)
		if h.log != nil {
			h.log.Infow("ws_prediction_failed", "err", err, "status", code)
		}
		return wsEnvelope{Type: wsTypeError, Error: text, Code: code}
	}
	return wsEnvelope{Type: wsTypePrediction, Data: newPredictionResponse(est)}
}

func writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
