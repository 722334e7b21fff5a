package model

import (
	"context"
	"net"
)

// SecurityLayer opens the listener the API is served on.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running API server. Start blocks until the server stops.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
