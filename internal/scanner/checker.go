package scanner

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/portsweep/portsweep/internal/catalog"
	"github.com/portsweep/portsweep/internal/logger"
)

// DefaultConnectTimeout bounds every connection attempt so one stalled
// port can never block a worker indefinitely
const DefaultConnectTimeout = time.Second

// Checker implements PortChecker using TCP connect scans
type Checker struct {
	timeout    time.Duration
	identifier ServiceIdentifier
	log        logger.Logger
}

// NewChecker returns a new Checker delegating service identification to
// identifier
func NewChecker(identifier ServiceIdentifier, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	return &Checker{
		timeout:    timeout,
		identifier: identifier,
		log:        logger.New(),
	}
}

// Check attempts a bounded-timeout connection to ip:port. An
// unreachable port yields a closed Result; an established connection
// yields an open Result, identified when identify is true. Identification
// failure downgrades the service name, never the open status. The
// connection is closed on every path and errors never escape the check.
func (c *Checker) Check(ctx context.Context, ip string, port uint16, identify bool) *Result {
	addr := net.JoinHostPort(ip, strconv.Itoa(int(port)))

	dialer := net.Dialer{Timeout: c.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr)

	if err != nil {
		// refused, timed out, and unreachable all mean "not open"
		c.log.Debug().Err(err).Uint16("port", port).Msg("connection failed")

		return &Result{Port: port, Status: PortClosed}
	}

	defer conn.Close()

	service := catalog.ServiceUnknown

	if identify {
		service = c.identifier.Identify(conn, port)
	}

	return &Result{Port: port, Status: PortOpen, Service: service}
}
