package scanner

import (
	"context"
	"net"
)

//go:generate mockgen -destination=../mock/scanner/mock_scanner.go -package=mock_scanner . PortChecker,ServiceIdentifier

// ServiceIdentifier interface for naming the service behind an
// established connection
type ServiceIdentifier interface {
	Identify(conn net.Conn, port uint16) string
}

// PortChecker interface for checking reachability of a single port
type PortChecker interface {
	Check(ctx context.Context, ip string, port uint16, identify bool) *Result
}
