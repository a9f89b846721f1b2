package mcp

import (
	"fmt"
	"net"
)

// Ports searched when the HTTP port is chosen automatically.
const (
	AutoPortStart = 8765
	AutoPortEnd   = 8865
)

// FindAvailablePort returns the first port in [start, end] that can be
// bound on localhost.
func FindAvailablePort(start, end int) (int, error) {
	for port := start; port <= end; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", start, end)
}
