//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"context"

	"github.com/google/wire"

	"github.com/zeusync/cleanerbot/internal/core/observability/log"
	"github.com/zeusync/cleanerbot/internal/core/protocol"
	"github.com/zeusync/cleanerbot/internal/core/world"
)

var visualizerSet = wire.NewSet(
	provideTCPTransport,
	protocol.NewClient,
	world.New,
	wire.Bind(new(protocol.Transport), new(*protocol.TCPTransport)),
	wire.Bind(new(world.Commander), new(*protocol.Client)),
	wire.Bind(new(log.Log), new(*log.Logger)),
)

// InitializeWorld connects to the visualizer over TCP and announces a new
// world. The returned cleanup closes the connection.
func InitializeWorld(ctx context.Context, addr string, config protocol.Config, logger *log.Logger) (*world.World, func(), error) {
	wire.Build(visualizerSet)
	return nil, nil, nil
}
