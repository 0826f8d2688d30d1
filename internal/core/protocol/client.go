package protocol

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/zeusync/cleanerbot/internal/core/observability/log"
)

// Response is the final reply to a command. Codes follow the usual three
// digit scheme: 1xx provisional, 2xx success, anything else a failure.
type Response struct {
	Code int
	Rest string
}

func (r Response) Class() int { return r.Code / 100 }

func (r Response) IsSuccess() bool { return r.Class() == 2 }

// Client sends commands to the visualizer and waits for their final reply.
// A Client is safe for use by several goroutines; commands are serialized.
type Client struct {
	transport Transport
	logger    log.Log
	trace     atomic.Bool

	mu     sync.Mutex
	closed bool
}

func NewClient(transport Transport, logger log.Log) *Client {
	if logger == nil {
		logger = log.Nop()
	}
	return &Client{
		transport: transport,
		logger:    logger.With(log.String("component", "visualizer")),
	}
}

// SetTrace turns logging of every command and response line on or off.
func (c *Client) SetTrace(trace bool) { c.trace.Store(trace) }

func (c *Client) Trace() bool { return c.trace.Load() }

// Send writes the command and reads response lines until one carries a
// non-provisional code.
func (c *Client) Send(cmd string) (Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Response{}, ErrClientClosed
	}
	return c.send(cmd)
}

func (c *Client) send(cmd string) (Response, error) {
	trace := c.trace.Load()
	if trace {
		c.logger.Info("command", log.String("line", cmd))
	}
	if err := c.transport.WriteLine(cmd); err != nil {
		return Response{}, errors.Wrapf(err, "send %q", cmd)
	}

	for {
		line, err := c.transport.ReadLine()
		if err != nil {
			return Response{}, errors.Wrapf(err, "await reply to %q", cmd)
		}
		if trace {
			c.logger.Info("response", log.String("line", line))
		}

		resp, err := ParseResponse(line)
		if err != nil {
			return Response{}, err
		}
		if resp.Class() != 1 {
			return resp, nil
		}
	}
}

// Close says goodbye to the visualizer and closes the transport.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if _, err := c.send("CLOSE"); err != nil {
		c.logger.Debug("close handshake failed", log.Error(err))
	}
	return c.transport.Close()
}

// ParseResponse splits a response line into its code and the text
// following the code and its separator.
func ParseResponse(line string) (Response, error) {
	if len(line) < 3 {
		return Response{}, errors.Wrapf(ErrInvalidResponse, "%q", line)
	}
	code, err := strconv.Atoi(line[:3])
	if err != nil || code < 0 {
		return Response{}, errors.Wrapf(ErrInvalidResponse, "%q", line)
	}

	resp := Response{Code: code}
	if len(line) > 4 {
		resp.Rest = line[4:]
	}
	return resp, nil
}
