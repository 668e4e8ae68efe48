// Package transport owns the interactive device connection: SSH dial,
// prompt detection, pager handling, and output scrubbing. The engine sees
// only the Session capability.
package transport

import (
	"context"
	"time"
)

// Session executes command strings against a connected device and returns
// decoded output text. Implementations are not safe for concurrent use; the
// verification run owns the connection and issues one command at a time.
type Session interface {
	Execute(ctx context.Context, command string) (string, error)
	Close() error
}

// Config holds connection settings for one device.
type Config struct {
	Host           string
	Port           int
	Username       string
	Password       string
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
}

const (
	defaultPort           = 22
	defaultConnectTimeout = 30 * time.Second
	defaultCommandTimeout = 15 * time.Second
)

func (c Config) withDefaults() Config {
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = defaultConnectTimeout
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = defaultCommandTimeout
	}
	return c
}
