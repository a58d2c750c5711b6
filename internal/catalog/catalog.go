package catalog

import "strings"

// ServiceUnknown is reported whenever a port has no probe or a response
// matches no keyword
const ServiceUnknown = "Unknown"

// probes maps well-known ports to the payload sent after connecting to
// elicit an identifying response from the listening service
var probes = map[uint16][]byte{
	20:  []byte("NOOP\r\n"),
	21:  []byte("HELLO\r\n"),
	22:  []byte("\n"),
	23:  []byte("\r\n"),
	25:  []byte("EHLO example.com\r\n"),
	53:  {0x00, 0x00, 0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 0x03, 'c', 'o', 'm', 0x00, 0x00, 0x01, 0x00, 0x01},
	80:  []byte("HEAD / HTTP/1.0\r\n\r\n"),
	110: []byte("USER test\r\n"),
	143: []byte("TAG LOGIN test test\r\n"),
	// TLS client hello fragment
	443:  {0x16, 0x03, 0x01, 0x00, 0x01, 0x01},
	587:  []byte("EHLO example.com\r\n"),
	3306: {0x00},
	// RDP negotiation request
	3389: {0x03, 0x00, 0x00, 0x13, 0x0e, 0xe0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x08, 0x03, 0x00, 0x00, 0x00},
	5900: []byte("RFB 003.003\n"),
	8080: []byte("HEAD / HTTP/1.0\r\n\r\n"),
}

// keywords maps response substrings to service names. This is a slice
// rather than a map: classification returns the first keyword found in
// the response, so iteration order matters. Matching is case-sensitive.
var keywords = []struct {
	Substr  string
	Service string
}{
	{"HTTP", "HTTP"},
	{"220", "FTP"},
	{"FTP", "FTP"},
	{"SSH", "SSH"},
	{"Telnet", "Telnet"},
	{"Login", "Telnet"},
	{"POP3", "POP3"},
	{"IMAP", "IMAP"},
	{"SMTP", "SMTP"},
	{"MySQL", "MySQL"},
	{"RFB", "VNC"},
	{"RDP", "Remote Desktop"},
	{"HTTPS", "HTTPS"},
}

// ProbeFor returns the probe payload for port if one exists
func ProbeFor(port uint16) ([]byte, bool) {
	payload, ok := probes[port]
	return payload, ok
}

// Classify matches response text against the keyword table and returns
// the service bound to the first matching keyword
func Classify(response string) (string, bool) {
	for _, k := range keywords {
		if strings.Contains(response, k.Substr) {
			return k.Service, true
		}
	}

	return "", false
}
