package scanner

// PortStatus represents the probed status of a single port
type PortStatus string

const (
	PortOpen   PortStatus = "open"
	PortClosed PortStatus = "closed"
)

// Result represents the outcome of checking a single port
type Result struct {
	Port    uint16
	Status  PortStatus
	Service string
}
