package protocol

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

var _ Transport = (*WebSocketTransport)(nil)

// WebSocketTransport carries one line per text frame.
type WebSocketTransport struct {
	conn   *websocket.Conn
	config Config
	closed int32
}

// DialWebSocket connects to a visualizer bridge at a ws:// or wss:// URL.
func DialWebSocket(ctx context.Context, url string, config Config) (*WebSocketTransport, error) {
	if !strings.HasPrefix(url, "ws://") && !strings.HasPrefix(url, "wss://") {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q is not a websocket url", url)
	}

	dialer := websocket.Dialer{HandshakeTimeout: config.DialTimeout}
	conn, _, err := dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial visualizer at %s", url)
	}
	return NewWebSocketTransport(conn, config), nil
}

// NewWebSocketTransport wraps an established websocket connection.
func NewWebSocketTransport(conn *websocket.Conn, config Config) *WebSocketTransport {
	return &WebSocketTransport{conn: conn, config: config}
}

func (t *WebSocketTransport) WriteLine(line string) error {
	if atomic.LoadInt32(&t.closed) == 1 {
		return ErrTransportClosed
	}
	if t.config.WriteTimeout > 0 {
		_ = t.conn.SetWriteDeadline(time.Now().Add(t.config.WriteTimeout))
	}
	if err := t.conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
		return connectionLost(err)
	}
	return nil
}

func (t *WebSocketTransport) ReadLine() (string, error) {
	if atomic.LoadInt32(&t.closed) == 1 {
		return "", ErrTransportClosed
	}
	if t.config.ReadTimeout > 0 {
		_ = t.conn.SetReadDeadline(time.Now().Add(t.config.ReadTimeout))
	}
	messageType, data, err := t.conn.ReadMessage()
	if err != nil {
		return "", connectionLost(err)
	}
	if messageType != websocket.TextMessage {
		return "", ErrUnsupportedFrame
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func (t *WebSocketTransport) Close() error {
	if !atomic.CompareAndSwapInt32(&t.closed, 0, 1) {
		return nil
	}
	deadline := time.Now().Add(time.Second)
	_ = t.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return t.conn.Close()
}
