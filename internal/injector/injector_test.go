package injector

import (
	"bufio"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/cleanerbot/internal/core/observability/log"
	"github.com/zeusync/cleanerbot/internal/core/protocol"
)

// serveOnce accepts one connection, answers the first command with reply
// and reports whether the client closed the connection afterwards.
func serveOnce(t *testing.T, reply string) (string, <-chan bool) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	closed := make(chan bool, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			closed <- false
			return
		}
		defer conn.Close()

		reader := bufio.NewReader(conn)
		if _, err := reader.ReadString('\n'); err != nil {
			closed <- false
			return
		}
		if _, err := io.WriteString(conn, reply+"\r\n"); err != nil {
			closed <- false
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for {
			if _, err := reader.ReadString('\n'); err != nil {
				closed <- err == io.EOF
				return
			}
		}
	}()
	return ln.Addr().String(), closed
}

func TestInitializeWorldClosesConnectionOnFailedAnnounce(t *testing.T) {
	addr, closed := serveOnce(t, "garbage")

	w, cleanup, err := InitializeWorld(context.Background(), addr, protocol.DefaultConfig(), log.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, protocol.ErrInvalidResponse)
	assert.Nil(t, w)
	assert.Nil(t, cleanup)

	assert.True(t, <-closed, "connection should be closed by the client")
}

func TestInitializeWorldCleanupClosesConnection(t *testing.T) {
	addr, closed := serveOnce(t, "200 OK")

	w, cleanup, err := InitializeWorld(context.Background(), addr, protocol.DefaultConfig(), log.Nop())
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NotNil(t, cleanup)
	assert.True(t, w.Online())

	cleanup()
	assert.True(t, <-closed, "connection should be closed by the cleanup")
}

func TestInitializeWorldDialFailure(t *testing.T) {
	_, cleanup, err := InitializeWorld(context.Background(), "not-an-address", protocol.DefaultConfig(), log.Nop())
	assert.ErrorIs(t, err, protocol.ErrInvalidAddress)
	assert.Nil(t, cleanup)
}
