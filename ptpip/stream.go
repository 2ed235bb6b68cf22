package ptpip

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/hanwen/go-ptpip/log"
)

// DefaultPort is the IANA port for PTP/IP.
const DefaultPort = 15740

const readChunk = 64 << 10

// Channel names one of the two connections of a stream.
type Channel int

const (
	ControlChannel Channel = iota
	EventChannel
)

func (c Channel) String() string {
	if c == EventChannel {
		return "event"
	}
	return "control"
}

// DialFunc opens one channel to the camera.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// streamHandler receives everything a stream reads. gen identifies the
// connection the call belongs to.
type streamHandler interface {
	streamPackets(gen uint64, ch Channel, pkts []Packet)
	streamDisconnected(gen uint64, err error)
}

type channel struct {
	kind Channel
	conn net.Conn

	// Owned by the reader goroutine.
	acc      Buffer
	awaiting *CommandResponse

	qmu   sync.Mutex
	queue []Packet
	ready chan struct{}
}

func newChannel(kind Channel, conn net.Conn) *channel {
	return &channel{
		kind:  kind,
		conn:  conn,
		ready: make(chan struct{}, 1),
	}
}

func (c *channel) push(p Packet) {
	c.qmu.Lock()
	c.queue = append(c.queue, p)
	c.qmu.Unlock()
	select {
	case c.ready <- struct{}{}:
	default:
	}
}

func (c *channel) head() (Packet, int) {
	c.qmu.Lock()
	defer c.qmu.Unlock()
	if len(c.queue) == 0 {
		return nil, 0
	}
	return c.queue[0], len(c.queue)
}

func (c *channel) pop() {
	c.qmu.Lock()
	defer c.qmu.Unlock()
	c.queue[0] = nil
	c.queue = c.queue[1:]
}

// parse decodes the packets at the front of the accumulation buffer.
// Responses awaiting more bytes are only continued on the control channel;
// elsewhere the whole declared packet is waited for.
func (c *channel) parse() ([]Packet, error) {
	var pkts []Packet
	for c.acc.Len() > 0 {
		if c.awaiting != nil {
			p, used, done := c.awaiting.Continue(c.acc.Bytes())
			c.acc.Slice(used)
			if !done {
				break
			}
			c.awaiting = nil
			pkts = append(pkts, p)
			continue
		}

		if c.kind != ControlChannel {
			if l, ok := c.acc.Uint32(0); ok && l <= maxPacketLength && uint32(c.acc.Len()) < l {
				break
			}
		}
		p, n, err := DecodePacket(c.acc.Bytes())
		if err != nil {
			return pkts, err
		}
		if n == 0 {
			break
		}
		c.acc.Slice(n)

		if rep, ok := p.(*CommandResponse); ok && rep.AwaitingFurtherData {
			if c.kind == ControlChannel {
				c.awaiting = rep
			} else {
				cleared := *rep
				cleared.AwaitingFurtherData = false
				c.acc.Slice(rep.remaining())
				p = &cleared
			}
		}
		pkts = append(pkts, p)
	}
	return pkts, nil
}

// Stream owns the control and event connections to one camera and turns
// each into a sequence of packets.
type Stream struct {
	address string
	dial    DialFunc
	log     *log.Children
	stats   *Stats
	handler streamHandler

	gen *atomic.Uint64

	mu      sync.Mutex
	control *channel
	event   *channel
	eg      *errgroup.Group
	ctx     context.Context
	cancel  context.CancelFunc
}

func newStream(address string, dial DialFunc, logs *log.Children, h streamHandler) *Stream {
	if dial == nil {
		var d net.Dialer
		dial = d.DialContext
	}
	return &Stream{
		address: address,
		dial:    dial,
		log:     logs,
		stats:   NewStats(),
		handler: h,
		gen:     atomic.NewUint64(0),
	}
}

// Address joins host and port the way the stream dials them.
func Address(host string, port int) string {
	if port == 0 {
		port = DefaultPort
	}
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// Generation identifies the current connection. It changes on every
// connect and disconnect.
func (s *Stream) Generation() uint64 {
	return s.gen.Load()
}

func (s *Stream) Stats() *Stats {
	return s.stats
}

// Connect closes any previous connection and opens the control channel.
// It returns the generation of the new connection.
func (s *Stream) Connect(ctx context.Context) (uint64, error) {
	s.Disconnect()
	gen := s.gen.Load()

	s.log.Stream.Debugf("creating control channel to %s", s.address)
	conn, err := s.dial(ctx, "tcp", s.address)
	if err != nil {
		return 0, fmt.Errorf("%w %s: %v", ErrFailedToCreateStreams, s.address, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen {
		conn.Close()
		return 0, fmt.Errorf("%w: superseded while connecting", ErrSocketClosed)
	}

	// Writers stop on cancel, not on the first failing goroutine.
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.eg = &errgroup.Group{}
	s.control = newChannel(ControlChannel, conn)
	s.start(gen, s.control)
	s.log.Stream.Infof("control channel open to %s", s.address)
	return gen, nil
}

// SetupEventLoop opens the event channel of connection gen.
func (s *Stream) SetupEventLoop(ctx context.Context, gen uint64) error {
	s.log.Stream.Debugf("creating event channel to %s", s.address)
	conn, err := s.dial(ctx, "tcp", s.address)
	if err != nil {
		return fmt.Errorf("%w %s: %v", ErrFailedToCreateStreams, s.address, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen.Load() != gen || s.control == nil {
		conn.Close()
		return fmt.Errorf("%w: connection closed while opening event channel", ErrSocketClosed)
	}
	if s.event != nil {
		s.event.conn.Close()
	}
	s.event = newChannel(EventChannel, conn)
	s.start(gen, s.event)
	s.log.Stream.Infof("event channel open to %s", s.address)
	return nil
}

func (s *Stream) start(gen uint64, c *channel) {
	ctx := s.ctx
	s.eg.Go(func() error {
		err := s.readLoop(gen, c)
		s.fail(gen, c, err)
		return err
	})
	s.eg.Go(func() error {
		err := s.writeLoop(ctx, c)
		if err != nil {
			s.fail(gen, c, err)
		}
		return err
	})
}

// Disconnect closes both channels and drops queued packets and partial
// input. It does not notify the handler.
func (s *Stream) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Inc()
	s.closeLocked()
}

func (s *Stream) closeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	for _, c := range []*channel{s.control, s.event} {
		if c != nil {
			c.conn.Close()
		}
	}
	if s.control != nil {
		s.log.Stream.Debugf("closed channels to %s", s.address)
	}
	s.control = nil
	s.event = nil
	if eg := s.eg; eg != nil {
		s.eg = nil
		go func() {
			err := eg.Wait()
			s.log.Stream.Debugf("stream goroutines done: %v", err)
		}()
	}
}

// fail tears the connection down after a channel error.
func (s *Stream) fail(gen uint64, c *channel, err error) {
	s.mu.Lock()
	if s.gen.Load() != gen || (c != s.control && c != s.event) {
		s.mu.Unlock()
		return
	}
	s.gen.Inc()
	s.closeLocked()
	s.mu.Unlock()

	var se SyncError
	if errors.As(err, &se) {
		s.log.Stream.Errorf("%s channel lost sync: %v", c.kind, err)
	} else {
		s.log.Stream.Warningf("%s channel failed: %v", c.kind, err)
	}
	s.handler.streamDisconnected(gen, err)
}

func (s *Stream) chanFor(kind Channel) *channel {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind == EventChannel {
		return s.event
	}
	return s.control
}

// SendControlPacket queues p on the control channel. Packets are written in
// the order they were queued.
func (s *Stream) SendControlPacket(p Packet) error {
	return s.send(ControlChannel, p)
}

func (s *Stream) SendEventPacket(p Packet) error {
	return s.send(EventChannel, p)
}

func (s *Stream) send(kind Channel, p Packet) error {
	c := s.chanFor(kind)
	if c == nil {
		return fmt.Errorf("%w: no %s channel", ErrNotConnected, kind)
	}
	s.log.Stream.Debugf("queue %s packet %v", kind, p)
	c.push(p)
	return nil
}

func (s *Stream) writeLoop(ctx context.Context, c *channel) error {
	for {
		p, n := c.head()
		if p == nil {
			select {
			case <-c.ready:
				continue
			case <-ctx.Done():
				return nil
			}
		}
		if n > 1 {
			s.log.Stream.Debugf("flushing %s queue, %d packets", c.kind, n)
		}
		data := p.Encode()
		if s.log.Data.IsDebug() {
			s.log.Data.Debugf("%s out:\n%s", c.kind, hexDump(data))
		}
		if _, err := c.conn.Write(data); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return Catastrophic(fmt.Sprintf("%s write: %v", c.kind, err))
		}
		c.pop()
	}
}

func (s *Stream) readLoop(gen uint64, c *channel) error {
	buf := make([]byte, readChunk)
	stats := s.stats.control
	if c.kind == EventChannel {
		stats = s.stats.event
	}
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			if s.log.Data.IsDebug() {
				s.log.Data.Debugf("%s in:\n%s", c.kind, hexDump(buf[:n]))
			}
			c.acc.Append(buf[:n])
			pkts, perr := c.parse()
			stats.add(len(pkts), n)
			if len(pkts) > 0 && s.gen.Load() == gen {
				s.handler.streamPackets(gen, c.kind, pkts)
			}
			if perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return fmt.Errorf("%w: %s channel", ErrSocketClosed, c.kind)
		}
		if err != nil {
			return Catastrophic(fmt.Sprintf("%s read: %v", c.kind, err))
		}
	}
}

// defaultDialTimeout bounds each channel dial when the caller's context
// has no deadline.
const defaultDialTimeout = 5 * time.Second
