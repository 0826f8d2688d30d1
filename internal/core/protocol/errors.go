package protocol

import (
	"errors"
	"fmt"
)

// Visualizer link errors
var (
	ErrConnectionLost   = errors.New("connection to visualizer lost")
	ErrInvalidResponse  = errors.New("invalid visualizer response")
	ErrClientClosed     = errors.New("client is closed")
	ErrInvalidAddress   = errors.New("invalid address")
	ErrTransportClosed  = errors.New("transport is closed")
	ErrUnsupportedFrame = errors.New("unsupported websocket frame")
)

// connectionLost marks err as ErrConnectionLost and keeps it in the chain
// so timeouts stay matchable.
func connectionLost(err error) error {
	return fmt.Errorf("%w: %w", ErrConnectionLost, err)
}
