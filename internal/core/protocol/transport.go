package protocol

import (
	"bufio"
	"context"
	"io"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
)

// Transport moves single text lines to and from the visualizer. Line
// terminators are handled by the transport and never seen by callers.
type Transport interface {
	WriteLine(line string) error
	ReadLine() (string, error)
	Close() error
}

var _ Transport = (*TCPTransport)(nil)

// TCPTransport frames lines with CRLF over a plain TCP stream.
type TCPTransport struct {
	conn   net.Conn
	reader *bufio.Reader
	config Config
	closed int32
}

// DialTCP connects to a visualizer at addr (host:port).
func DialTCP(ctx context.Context, addr string, config Config) (*TCPTransport, error) {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, errors.Wrapf(ErrInvalidAddress, "%q: %v", addr, err)
	}

	dialer := net.Dialer{Timeout: config.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial visualizer at %s", addr)
	}
	return NewTCPTransport(conn, config), nil
}

// NewTCPTransport wraps an established connection.
func NewTCPTransport(conn net.Conn, config Config) *TCPTransport {
	return &TCPTransport{
		conn:   conn,
		reader: bufio.NewReader(conn),
		config: config,
	}
}

func (t *TCPTransport) WriteLine(line string) error {
	if t.isClosed() {
		return ErrTransportClosed
	}
	if t.config.WriteTimeout > 0 {
		_ = t.conn.SetWriteDeadline(time.Now().Add(t.config.WriteTimeout))
	}
	if _, err := io.WriteString(t.conn, line+"\r\n"); err != nil {
		return connectionLost(err)
	}
	return nil
}

func (t *TCPTransport) ReadLine() (string, error) {
	if t.isClosed() {
		return "", ErrTransportClosed
	}
	if t.config.ReadTimeout > 0 {
		_ = t.conn.SetReadDeadline(time.Now().Add(t.config.ReadTimeout))
	}
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", connectionLost(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *TCPTransport) Close() error {
	if !atomic.CompareAndSwapInt32(&t.closed, 0, 1) {
		return nil
	}
	return t.conn.Close()
}

func (t *TCPTransport) isClosed() bool {
	return atomic.LoadInt32(&t.closed) == 1
}
