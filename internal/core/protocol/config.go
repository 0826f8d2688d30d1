package protocol

import (
	"net"
	"strconv"
	"time"
)

const (
	DefaultHost = "localhost"
	DefaultPort = 23454
)

// Config holds transport settings. Zero timeouts disable the deadline.
type Config struct {
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		DialTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// DefaultAddress is the address the visualizer listens on by default.
func DefaultAddress() string {
	return net.JoinHostPort(DefaultHost, strconv.Itoa(DefaultPort))
}
