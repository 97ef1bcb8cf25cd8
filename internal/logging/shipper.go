package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

var errBackoff = errors.New("logging: reconnect backoff in effect")

// Shipper forwards newline-delimited log lines to a TCP log collector, such
// as a Logstash tcp input. Writes never block the caller on network trouble:
// while the collector is unreachable, lines are dropped and reconnection is
// attempted after a backoff window.
type Shipper struct {
	addr        string
	dialTimeout time.Duration
	sendTimeout time.Duration
	backoff     time.Duration

	mu       sync.Mutex
	conn     net.Conn
	retryAt  time.Time
	shutdown bool
}

// ShipperOption configures a Shipper.
type ShipperOption func(*Shipper)

// WithDialTimeout overrides the connect timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) ShipperOption {
	return func(s *Shipper) { s.dialTimeout = d }
}

// WithSendTimeout overrides the per-write deadline. Defaults to 1 second.
func WithSendTimeout(d time.Duration) ShipperOption {
	return func(s *Shipper) { s.sendTimeout = d }
}

// WithBackoff overrides the wait between reconnect attempts. Defaults to
// 5 seconds.
func WithBackoff(d time.Duration) ShipperOption {
	return func(s *Shipper) { s.backoff = d }
}

// NewShipper returns a Shipper for the given host:port address. The returned
// value is safe for concurrent use.
func NewShipper(addr string, opts ...ShipperOption) (*Shipper, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logging: empty collector address")
	}

	s := &Shipper{
		addr:        addr,
		dialTimeout: 2 * time.Second,
		sendTimeout: time.Second,
		backoff:     5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Write implements io.Writer. The reported length always covers the full
// payload; delivery failures surface as dropped lines, not as errors to the
// log package.
func (s *Shipper) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	line := make([]byte, len(p))
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return 0, io.ErrClosedPipe
	}
	if err := s.connect(); err != nil {
		return len(p), nil
	}

	if s.sendTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.sendTimeout))
	}
	if _, err := s.conn.Write(line); err != nil {
		s.dropConn()
		return len(p), nil
	}
	return len(p), nil
}

// Close shuts the shipper down. Subsequent writes fail with io.ErrClosedPipe.
func (s *Shipper) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		return nil
	}
	s.shutdown = true

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func (s *Shipper) connect() error {
	if s.conn != nil {
		return nil
	}
	if !s.retryAt.IsZero() && time.Now().Before(s.retryAt) {
		return errBackoff
	}

	conn, err := net.DialTimeout("tcp", s.addr, s.dialTimeout)
	if err != nil {
		s.retryAt = time.Now().Add(s.backoff)
		return err
	}

	s.conn = conn
	s.retryAt = time.Time{}
	return nil
}

func (s *Shipper) dropConn() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
	s.retryAt = time.Now().Add(s.backoff)
}
