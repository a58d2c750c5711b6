package probe

import (
	"net"
	"strings"
	"time"

	"github.com/portsweep/portsweep/internal/catalog"
	"github.com/portsweep/portsweep/internal/logger"
)

// DefaultTimeout bounds the probe write and the single response read
const DefaultTimeout = time.Second

// maxResponseBytes caps the single response read. Identification uses
// whatever arrived in one read, it never loops for more data.
const maxResponseBytes = 1024

// Prober identifies services listening on open ports by sending a
// catalog probe over an established connection and classifying the
// response
type Prober struct {
	timeout time.Duration
	log     logger.Logger
}

// New returns a new Prober with the given per-probe I/O timeout
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Prober{
		timeout: timeout,
		log:     logger.New(),
	}
}

// Identify returns the name of the service listening on the far end of
// conn, or catalog.ServiceUnknown. The connection must already be
// established; port selects the probe payload. Probing never fails:
// every send, receive, or decode error collapses to ServiceUnknown.
func (p *Prober) Identify(conn net.Conn, port uint16) string {
	payload, ok := catalog.ProbeFor(port)

	if !ok {
		// no probe for this port, nothing is sent
		return catalog.ServiceUnknown
	}

	if err := conn.SetDeadline(time.Now().Add(p.timeout)); err != nil {
		return catalog.ServiceUnknown
	}

	if _, err := conn.Write(payload); err != nil {
		p.log.Debug().Err(err).Uint16("port", port).Msg("probe write failed")
		return catalog.ServiceUnknown
	}

	buf := make([]byte, maxResponseBytes)
	n, err := conn.Read(buf)

	if n == 0 {
		if err != nil {
			p.log.Debug().Err(err).Uint16("port", port).Msg("probe read failed")
		}
		return catalog.ServiceUnknown
	}

	// binary responses (TLS handshakes etc) must not break
	// classification, so undecodable sequences are dropped
	response := strings.ToValidUTF8(string(buf[:n]), "")

	service, ok := catalog.Classify(response)

	if !ok {
		return catalog.ServiceUnknown
	}

	return service
}
