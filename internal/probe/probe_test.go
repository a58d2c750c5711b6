package probe_test

import (
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/portsweep/portsweep/internal/probe"
	"github.com/stretchr/testify/assert"
)

// writeCountingConn wraps a net.Conn and counts bytes written so tests
// can assert no probe was sent
type writeCountingConn struct {
	net.Conn
	written int64
}

func (c *writeCountingConn) Write(b []byte) (int, error) {
	atomic.AddInt64(&c.written, int64(len(b)))
	return c.Conn.Write(b)
}

func TestIdentify(t *testing.T) {
	prober := probe.New(500 * time.Millisecond)

	t.Run("identifies ftp from a 220 greeting", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()

		go func() {
			defer server.Close()

			buf := make([]byte, 64)
			n, err := server.Read(buf)

			if err != nil {
				return
			}

			assert.Equal(st, "HELLO\r\n", string(buf[:n]))

			_, _ = server.Write([]byte("220 Welcome"))
		}()

		service := prober.Identify(client, 21)

		assert.Equal(st, "FTP", service)
	})

	t.Run("sends nothing for a port without a probe", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()
		defer server.Close()

		counting := &writeCountingConn{Conn: client}

		service := prober.Identify(counting, 9999)

		assert.Equal(st, "Unknown", service)
		assert.Equal(st, int64(0), atomic.LoadInt64(&counting.written))
	})

	t.Run("maps probe io failure to unknown", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()

		// close immediately so the probe write fails
		server.Close()

		service := prober.Identify(client, 21)

		assert.Equal(st, "Unknown", service)
	})

	t.Run("maps short dead read to unknown", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()

		go func() {
			defer server.Close()

			// drain the probe then close without replying
			_, _ = io.ReadAtLeast(server, make([]byte, 7), 7)
		}()

		service := prober.Identify(client, 21)

		assert.Equal(st, "Unknown", service)
	})

	t.Run("tolerates binary response bytes", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()

		go func() {
			defer server.Close()

			buf := make([]byte, 64)
			if _, err := server.Read(buf); err != nil {
				return
			}

			// invalid utf-8 surrounding a recognizable banner
			_, _ = server.Write([]byte{0xff, 0xfe, 'S', 'S', 'H', '-', '2', 0xc0})
		}()

		service := prober.Identify(client, 22)

		assert.Equal(st, "SSH", service)
	})

	t.Run("unrecognized response yields unknown", func(st *testing.T) {
		client, server := net.Pipe()
		defer client.Close()

		go func() {
			defer server.Close()

			buf := make([]byte, 64)
			if _, err := server.Read(buf); err != nil {
				return
			}

			_, _ = server.Write([]byte("no banner here"))
		}()

		service := prober.Identify(client, 21)

		assert.Equal(st, "Unknown", service)
	})
}
