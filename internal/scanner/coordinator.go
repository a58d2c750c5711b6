package scanner

import (
	"context"
	"fmt"
	"sync"

	"github.com/portsweep/portsweep/internal/exception"
	"github.com/portsweep/portsweep/internal/logger"
)

const (
	// MaxWorkers caps concurrent in-flight connection attempts
	MaxWorkers = 100

	// IdentifyThreshold is the highest port number for which service
	// identification probes are sent. Probing every open port in a
	// full-range scan would be slow and noisy, so identification is
	// restricted to the well-known ports regardless of scan bounds.
	IdentifyThreshold = 100
)

// Coordinator drives a fixed-size worker pool over a range of ports and
// streams results as workers produce them
type Coordinator struct {
	checker    PortChecker
	showClosed bool
	log        logger.Logger
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithShowClosed emits results for closed ports in addition to open
// ones. Closed ports are suppressed by default.
func WithShowClosed() Option {
	return func(c *Coordinator) {
		c.showClosed = true
	}
}

// NewCoordinator returns a new Coordinator dispatching port checks to
// checker
func NewCoordinator(checker PortChecker, opts ...Option) *Coordinator {
	c := &Coordinator{
		checker: checker,
		log:     logger.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WorkerCount returns the pool size used for a range of totalPorts
// ports: one worker per port up to the MaxWorkers ceiling
func WorkerCount(totalPorts int) int {
	if totalPorts < MaxWorkers {
		return totalPorts
	}

	return MaxWorkers
}

// Scan checks every port in [minPort, maxPort] against ip exactly once
// and sends each emitted Result on resultChan. It blocks until all
// requested ports have been fully processed, so once Scan returns no
// further results will be produced. The caller owns resultChan and must
// drain it concurrently; Scan never closes it.
//
// Canceling ctx stops the pool early; Scan then returns the context's
// error after in-flight checks settle.
func (c *Coordinator) Scan(ctx context.Context, ip string, minPort, maxPort int, resultChan chan<- *Result) error {
	if minPort < 1 || maxPort > 65535 || minPort > maxPort {
		return fmt.Errorf("%w: %d-%d", exception.ErrInvalidPortRange, minPort, maxPort)
	}

	totalPorts := maxPort - minPort + 1
	workers := WorkerCount(totalPorts)

	c.log.Info().
		Str("ip", ip).
		Int("minPort", minPort).
		Int("maxPort", maxPort).
		Int("workers", workers).
		Msg("Scanning target")

	// buffered to the full range so enqueueing never blocks on a busy
	// pool; the queue is the single source of what remains to be scanned
	ports := make(chan uint16, totalPorts)

	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.worker(ctx, ip, ports, resultChan)
		}()
	}

	for port := minPort; port <= maxPort; port++ {
		ports <- uint16(port)
	}

	close(ports)

	// join barrier: every enqueued port has been dequeued and its check
	// resolved once all workers return
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	c.log.Debug().Int("ports", totalPorts).Msg("scan complete")

	return nil
}

func (c *Coordinator) worker(ctx context.Context, ip string, ports <-chan uint16, resultChan chan<- *Result) {
	for {
		select {
		case <-ctx.Done():
			return
		case port, ok := <-ports:
			if !ok {
				return
			}

			result := c.checker.Check(ctx, ip, port, port <= IdentifyThreshold)

			if result == nil {
				continue
			}

			if result.Status == PortClosed && !c.showClosed {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case resultChan <- result:
			}
		}
	}
}
