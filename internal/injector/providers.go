package injector

import (
	"context"

	"github.com/zeusync/cleanerbot/internal/core/protocol"
)

// provideTCPTransport dials the visualizer. The cleanup closes the
// connection and is safe to run after the client already closed it.
func provideTCPTransport(ctx context.Context, addr string, config protocol.Config) (*protocol.TCPTransport, func(), error) {
	transport, err := protocol.DialTCP(ctx, addr, config)
	if err != nil {
		return nil, nil, err
	}
	return transport, func() { _ = transport.Close() }, nil
}
