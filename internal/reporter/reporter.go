package reporter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/portsweep/portsweep/internal/scanner"
)

// Console writes human readable scan results to an io.Writer, one line
// per result
type Console struct {
	out    io.Writer
	open   func(a ...interface{}) string
	closed func(a ...interface{}) string
}

// NewConsole returns a new Console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		open:   color.New(color.FgGreen).SprintFunc(),
		closed: color.New(color.FgRed).SprintFunc(),
	}
}

// Resolved announces the address a target resolved to
func (c *Console) Resolved(target, ip string) {
	fmt.Fprintf(c.out, "Resolved IP for %s: %s\n", target, ip)
}

// Unresolved announces a target that could not be resolved
func (c *Console) Unresolved(target string) {
	fmt.Fprintf(c.out, "Error: Unable to resolve %s\n", target)
}

// ScanHeader announces the start of a scan over a port range
func (c *Console) ScanHeader(ip string, minPort, maxPort int) {
	fmt.Fprintf(c.out, "Scanning IP: %s from port %d to %d\n\n", ip, minPort, maxPort)
}

// Report writes one line for a single scan result
func (c *Console) Report(result *scanner.Result) {
	switch result.Status {
	case scanner.PortOpen:
		fmt.Fprintf(
			c.out,
			"Port %d is %s (Service: %s)\n",
			result.Port,
			c.open("open"),
			result.Service,
		)
	case scanner.PortClosed:
		fmt.Fprintf(c.out, "Port %d is %s\n", result.Port, c.closed("closed"))
	}
}

// Stream consumes results until the channel is closed
func (c *Console) Stream(results <-chan *scanner.Result) {
	for result := range results {
		c.Report(result)
	}
}
