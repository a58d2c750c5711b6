package catalog_test

import (
	"testing"

	"github.com/portsweep/portsweep/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestProbeFor(t *testing.T) {
	t.Run("returns probe for well-known port", func(st *testing.T) {
		payload, ok := catalog.ProbeFor(21)

		assert.True(st, ok)
		assert.Equal(st, []byte("HELLO\r\n"), payload)
	})

	t.Run("returns no probe for unlisted port", func(st *testing.T) {
		payload, ok := catalog.ProbeFor(9999)

		assert.False(st, ok)
		assert.Nil(st, payload)
	})
}

func TestClassify(t *testing.T) {
	t.Run("classifies ftp greeting by response code", func(st *testing.T) {
		service, ok := catalog.Classify("220 Welcome to ftp server")

		assert.True(st, ok)
		assert.Equal(st, "FTP", service)
	})

	t.Run("classifies ssh banner", func(st *testing.T) {
		service, ok := catalog.Classify("SSH-2.0-OpenSSH_8.9p1")

		assert.True(st, ok)
		assert.Equal(st, "SSH", service)
	})

	t.Run("first configured keyword wins over text order", func(st *testing.T) {
		// "220" appears before "HTTP" in the response but "HTTP" comes
		// first in the keyword table
		service, ok := catalog.Classify("220 proxy HTTP/1.0 ready")

		assert.True(st, ok)
		assert.Equal(st, "HTTP", service)
	})

	t.Run("matching is case-sensitive", func(st *testing.T) {
		_, ok := catalog.Classify("http/1.1 302 found")

		assert.False(st, ok)
	})

	t.Run("returns no match for unrecognized response", func(st *testing.T) {
		service, ok := catalog.Classify("gopher burrow v3")

		assert.False(st, ok)
		assert.Equal(st, "", service)
	})
}
