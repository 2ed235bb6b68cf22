package ptpip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"

	"github.com/hanwen/go-ptpip/log"
)

// Options configures a Session.
type Options struct {
	Host string
	Port int

	// DeviceID is the camera identifier the client GUID is derived from.
	DeviceID string

	// ClientName is sent to the camera during the handshake.
	ClientName string

	// Dial opens the control and event channels. Defaults to TCP.
	Dial        DialFunc
	DialTimeout time.Duration

	// Keepalive is the ping interval once connected; zero disables it.
	Keepalive time.Duration

	Debug DebugFlags

	// Logger is the parent of the session loggers; defaults to log.Root.
	Logger *logrus.Logger
}

const defaultClientName = "go-ptpip"

// Pongs a connection may miss before keepalive gives up on it.
const keepaliveMisses = 3

var ErrPingTimeout = errors.New("ptpip: camera stopped answering pings")

type State int32

const (
	StateDisconnected State = iota
	StateAwaitingCommandAck
	StateAwaitingEventOpen
	StateAwaitingEventAck
	StateConnected
)

var stateNames = map[State]string{
	StateDisconnected:       "disconnected",
	StateAwaitingCommandAck: "awaiting command ack",
	StateAwaitingEventOpen:  "awaiting event channel",
	StateAwaitingEventAck:   "awaiting event ack",
	StateConnected:          "connected",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// ResponseCallback receives the command response of a transaction. Device
// errors are reported through the response code.
type ResponseCallback func(rep *CommandResponse)

// DataCallback receives the data phase of a transaction, or the reason it
// failed.
type DataCallback func(data []byte, err error)

type pendingResponse struct {
	cb          ResponseCallback
	anyResponse bool
}

// Session runs the PTP/IP protocol over a Stream: the init handshake,
// transaction ids, response and data correlation, and event delivery.
//
// Callbacks run on the goroutine that reads the channel the packet arrived
// on, after the session lock is released. Packets of one channel are
// handled in arrival order.
type Session struct {
	opts   Options
	log    *log.Children
	stream *Stream
	state  *atomic.Int32

	mu            sync.Mutex
	gen           uint64
	done          chan struct{}
	connectDone   chan error
	sessionID     uint32
	peerGUID      [16]byte
	peerName      string
	nextTID       uint32
	callbacks     map[uint32]pendingResponse
	dataCallbacks map[uint32]DataCallback
	containers    map[uint32]*Buffer
	pongs         []func(error)
	ticker        *MutableTicker
	onEvent       func(*Event)
	onDisconnect  func(error)
}

func NewSession(opts Options) *Session {
	if opts.ClientName == "" {
		opts.ClientName = defaultClientName
	}
	if opts.DialTimeout == 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	parent := opts.Logger
	if parent == nil {
		parent = log.Root
	}
	s := &Session{
		opts:  opts,
		log:   log.PrepareChildren(parent, opts.Debug.Stream, opts.Debug.Session, opts.Debug.Data, opts.Debug.Relay),
		state: atomic.NewInt32(int32(StateDisconnected)),
	}
	s.stream = newStream(Address(opts.Host, opts.Port), opts.Dial, s.log, s)
	s.resetLocked()
	return s
}

func (s *Session) SetDebug(flags DebugFlags) {
	s.log.Stream.SetDebug(flags.Stream)
	s.log.Session.SetDebug(flags.Session)
	s.log.Data.SetDebug(flags.Data)
	s.log.Relay.SetDebug(flags.Relay)
}

// Log returns the session loggers.
func (s *Session) Log() *log.Children {
	return s.log
}

func (s *Session) State() State {
	return State(s.state.Load())
}

func (s *Session) setState(st State) {
	old := State(s.state.Swap(int32(st)))
	if old != st {
		s.log.Session.Debugf("state %v -> %v", old, st)
	}
}

func (s *Session) Stats() *Stats {
	return s.stream.Stats()
}

// SessionID is the connection number from the camera's InitCommandAck.
func (s *Session) SessionID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

// Peer returns the GUID and name the camera sent in its InitCommandAck.
func (s *Session) Peer() ([16]byte, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peerGUID, s.peerName
}

// OnEvent sets the subscriber for camera events.
func (s *Session) OnEvent(f func(*Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEvent = f
}

// OnDisconnect is called when the connection is lost. It is not called for
// Disconnect.
func (s *Session) OnDisconnect(f func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDisconnect = f
}

// Done is closed when the current connection goes away.
func (s *Session) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done == nil {
		c := make(chan struct{})
		close(c)
		return c
	}
	return s.done
}

// resetLocked drops all state of the current connection. Pending
// callbacks are never called.
func (s *Session) resetLocked() {
	s.gen = 0
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	if s.ticker != nil {
		s.ticker.Close()
		s.ticker = nil
	}
	s.callbacks = map[uint32]pendingResponse{}
	s.dataCallbacks = map[uint32]DataCallback{}
	s.containers = map[uint32]*Buffer{}
	s.pongs = nil
	s.sessionID = 0
	s.setState(StateDisconnected)
}

// GetNextTransactionID returns 0 first, then counts up, wrapping from the
// maximum back to 1.
func (s *Session) GetNextTransactionID() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	tid := s.nextTID
	if s.nextTID == math.MaxUint32 {
		s.nextTID = 1
	} else {
		s.nextTID++
	}
	return tid
}

// ResetTransactionID makes to the next id handed out.
func (s *Session) ResetTransactionID(to uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTID = to
}

// Connect runs ConnectContext in the background and reports the result to
// cb.
func (s *Session) Connect(cb func(error)) {
	go func() {
		err := s.ConnectContext(context.Background())
		if cb != nil {
			cb(err)
		}
	}()
}

// ConnectContext closes any previous connection, opens the control channel,
// and runs the handshake. It returns once InitEventAck has arrived.
func (s *Session) ConnectContext(ctx context.Context) error {
	s.stream.Disconnect()

	done := make(chan error, 1)
	s.mu.Lock()
	s.finishConnectLocked(ErrSocketClosed)
	s.resetLocked()
	s.nextTID = 0
	s.connectDone = done
	s.setState(StateAwaitingCommandAck)
	s.mu.Unlock()

	dialCtx, cancel := context.WithTimeout(ctx, s.opts.DialTimeout)
	gen, err := s.stream.Connect(dialCtx)
	cancel()
	if err != nil {
		s.abortConnect(done)
		return err
	}

	s.mu.Lock()
	if s.connectDone != done || s.stream.Generation() != gen {
		s.mu.Unlock()
		s.abortConnect(done)
		return fmt.Errorf("%w: connection lost during connect", ErrSocketClosed)
	}
	s.gen = gen
	s.done = make(chan struct{})
	s.mu.Unlock()

	req := NewInitCommandRequest(GUIDFromIdentifier(s.opts.DeviceID), s.opts.ClientName)
	s.log.Session.Debugf("sending InitCommandRequest as %q", req.Name)
	if err := s.stream.SendControlPacket(req); err != nil {
		s.abortConnect(done)
		return err
	}

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		s.abortConnect(done)
		return ctx.Err()
	}
}

// abortConnect closes the connection if done still belongs to the running
// connect.
func (s *Session) abortConnect(done chan error) {
	s.mu.Lock()
	if s.connectDone != done {
		s.mu.Unlock()
		return
	}
	s.connectDone = nil
	s.resetLocked()
	s.mu.Unlock()
	s.stream.Disconnect()
}

// finishConnectLocked hands err to a waiting connect.
func (s *Session) finishConnectLocked(err error) {
	if s.connectDone == nil {
		return
	}
	s.connectDone <- err
	s.connectDone = nil
}

// Disconnect closes both channels. Pending callbacks are dropped.
func (s *Session) Disconnect() {
	s.stream.Disconnect()
	s.mu.Lock()
	s.finishConnectLocked(ErrSocketClosed)
	s.resetLocked()
	s.mu.Unlock()
	s.log.Session.Info("disconnected")
}

// lost tears down connection gen after a local failure.
func (s *Session) lost(gen uint64, err error) {
	s.stream.Disconnect()
	s.streamDisconnected(gen, err)
}

func (s *Session) streamDisconnected(gen uint64, err error) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.finishConnectLocked(err)
	s.resetLocked()
	cb := s.onDisconnect
	s.mu.Unlock()

	s.log.Session.Warningf("connection lost: %v", err)
	if cb != nil {
		cb(err)
	}
}

func (s *Session) openEventChannel(gen uint64, sessionID uint32) {
	ctx, cancel := context.WithTimeout(context.Background(), s.opts.DialTimeout)
	defer cancel()
	if err := s.stream.SetupEventLoop(ctx, gen); err != nil {
		s.mu.Lock()
		current := gen == s.gen
		s.mu.Unlock()
		if current {
			s.lost(gen, err)
		}
		return
	}

	s.mu.Lock()
	if gen != s.gen || s.State() != StateAwaitingEventOpen {
		s.mu.Unlock()
		return
	}
	s.setState(StateAwaitingEventAck)
	s.mu.Unlock()

	if err := s.stream.SendEventPacket(&InitEventRequest{SessionID: sessionID}); err != nil {
		s.lost(gen, err)
	}
}

// SendCommandRequest registers cb for req's transaction and queues req.
// With callForAnyResponse, cb also accepts a response that carries no
// transaction id.
func (s *Session) SendCommandRequest(req *CommandRequest, cb ResponseCallback, callForAnyResponse bool) error {
	s.mu.Lock()
	if s.gen == 0 {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if cb != nil {
		s.callbacks[req.TransactionID] = pendingResponse{cb: cb, anyResponse: callForAnyResponse}
	}
	s.mu.Unlock()

	s.log.Session.Debugf("request %v", req)
	if err := s.stream.SendControlPacket(req); err != nil {
		s.mu.Lock()
		delete(s.callbacks, req.TransactionID)
		s.mu.Unlock()
		return err
	}
	return nil
}

// AwaitData registers cb for the data phase of transaction tid. It must be
// called before the request is sent.
func (s *Session) AwaitData(tid uint32, cb DataCallback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == 0 {
		return ErrNotConnected
	}
	s.dataCallbacks[tid] = cb
	return nil
}

func (s *Session) dropData(tid uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.dataCallbacks, tid)
}

// SendData queues the data out phase of transaction tid.
func (s *Session) SendData(tid uint32, payload []byte) error {
	for _, p := range DataSendPackets(tid, payload) {
		if err := s.stream.SendControlPacket(p); err != nil {
			return err
		}
	}
	return nil
}

// Ping sends a ping on the event channel; cb runs when the pong arrives.
func (s *Session) Ping(cb func(error)) error {
	s.mu.Lock()
	if s.gen == 0 {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if cb != nil {
		s.pongs = append(s.pongs, cb)
	}
	s.mu.Unlock()
	return s.stream.SendEventPacket(&Ping{})
}

// SetKeepalive changes the ping interval; zero pauses it. On a connection
// that had no keepalive yet, it starts one.
func (s *Session) SetKeepalive(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts.Keepalive = d
	if s.ticker == nil {
		if d > 0 && s.gen != 0 && s.State() == StateConnected {
			s.startKeepaliveLocked()
		}
		return
	}
	if d <= 0 {
		s.ticker.Stop()
		return
	}
	s.ticker.SetInterval(d)
	s.ticker.Start()
}

func (s *Session) keepalive(gen uint64, t *MutableTicker, stop <-chan struct{}) {
	answered := atomic.NewBool(true)
	misses := 0
	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}
		if answered.Load() {
			misses = 0
		} else {
			misses++
			s.log.Session.Warningf("no pong for %d keepalive intervals", misses)
			if misses >= keepaliveMisses {
				s.lost(gen, ErrPingTimeout)
				return
			}
		}
		answered.Store(false)
		if err := s.Ping(func(error) { answered.Store(true) }); err != nil {
			return
		}
	}
}

func (s *Session) streamPackets(gen uint64, ch Channel, pkts []Packet) {
	for _, p := range pkts {
		s.handle(gen, ch, p)
	}
}

func (s *Session) handle(gen uint64, ch Channel, p Packet) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.log.Session.Debugf("dropping %s from a closed connection", PacketName(p))
		return
	}
	if rep, ok := p.(*CommandResponse); !ok || !rep.AwaitingFurtherData {
		s.log.Session.Debugf("%s: received %v", ch, p)
	}

	var run []func()
	switch p := p.(type) {
	case *InitCommandAck:
		run = s.handleInitCommandAck(gen, p)
	case *InitEventAck:
		s.handleInitEventAck()
	case *InitFail:
		s.log.Session.Errorf("camera refused connection, reason 0x%x", p.Reason)
		s.finishConnectLocked(InitFailError(p.Reason))
		s.resetLocked()
		run = append(run, s.stream.Disconnect)
	case *CommandResponse:
		run = s.handleCommandResponse(p)
	case *StartData:
		if _, ok := s.containers[p.TransactionID]; ok {
			s.log.Session.Warningf("restarting data phase of transaction %d", p.TransactionID)
		}
		size := p.DataLength
		if size > maxPacketLength {
			size = 0
		}
		s.containers[p.TransactionID] = NewBuffer(make([]byte, 0, size))
	case *Data:
		s.appendData(p.TransactionID, p.Payload)
	case *EndData:
		s.appendData(p.TransactionID, p.Payload)
	case *Cancel:
		s.log.Session.Warningf("camera cancelled transaction %d", p.TransactionID)
		delete(s.containers, p.TransactionID)
	case *Event:
		if f := s.onEvent; f != nil {
			run = append(run, func() { f(p) })
		}
	case *Ping:
		run = append(run, func() {
			if err := s.stream.send(ch, &Pong{}); err != nil {
				s.log.Session.Warningf("pong: %v", err)
			}
		})
	case *Pong:
		for _, f := range s.pongs {
			f := f
			run = append(run, func() { f(nil) })
		}
		s.pongs = nil
	case *RawPacket:
		s.log.Session.Debugf("skipping %v", p)
	default:
		s.log.Session.Warningf("unexpected %s packet on %s channel", PacketName(p), ch)
	}
	s.mu.Unlock()

	for _, f := range run {
		f()
	}
}

func (s *Session) handleInitCommandAck(gen uint64, p *InitCommandAck) []func() {
	if s.State() != StateAwaitingCommandAck {
		s.log.Session.Warningf("ignoring InitCommandAck in state %v", s.State())
		return nil
	}
	s.sessionID = p.SessionID
	s.peerGUID = p.GUID
	s.peerName = p.Name
	s.setState(StateAwaitingEventOpen)
	s.log.Session.Infof("session %d with %q", p.SessionID, p.Name)
	sid := p.SessionID
	return []func(){func() { go s.openEventChannel(gen, sid) }}
}

func (s *Session) handleInitEventAck() {
	if s.State() != StateAwaitingEventAck {
		s.log.Session.Warningf("ignoring InitEventAck in state %v", s.State())
		return
	}
	s.setState(StateConnected)
	s.finishConnectLocked(nil)
	s.log.Session.Info("connected")

	if s.opts.Keepalive > 0 {
		s.startKeepaliveLocked()
	}
}

func (s *Session) startKeepaliveLocked() {
	t := NewMutableTicker(s.opts.Keepalive)
	s.ticker = t
	go s.keepalive(s.gen, t, s.done)
}

func (s *Session) appendData(tid uint32, payload []byte) {
	c, ok := s.containers[tid]
	if !ok {
		s.log.Session.Warningf("dropping %d bytes for transaction %d without data phase", len(payload), tid)
		return
	}
	c.Append(payload)
}

func (s *Session) handleCommandResponse(p *CommandResponse) []func() {
	if p.AwaitingFurtherData {
		return nil
	}

	var run []func()
	if !p.Tagged {
		for tid, pending := range s.callbacks {
			if !pending.anyResponse {
				continue
			}
			delete(s.callbacks, tid)
			cb := pending.cb
			run = append(run, func() { cb(p) })
		}
		if len(run) == 0 {
			s.log.Session.Warningf("untagged response %v without a taker", p)
		}
		return run
	}

	tid := p.TransactionID
	pending, hasCallback := s.callbacks[tid]
	delete(s.callbacks, tid)
	if hasCallback {
		run = append(run, func() { pending.cb(p) })
	}

	dataCB, hasDataCB := s.dataCallbacks[tid]
	delete(s.dataCallbacks, tid)
	container, hasData := s.containers[tid]
	delete(s.containers, tid)

	switch {
	case p.Code != RC_OK && hasDataCB:
		if hasData {
			s.log.Session.Debugf("discarding %d bytes of failed transaction %d", container.Len(), tid)
		}
		err := RCError(p.Code)
		run = append(run, func() { dataCB(nil, err) })
	case hasDataCB && hasData:
		data := container.Bytes()
		run = append(run, func() { dataCB(data, nil) })
	case hasDataCB:
		err := fmt.Errorf("%w: transaction %d completed without data", ErrInvalidResponse, tid)
		run = append(run, func() { dataCB(nil, err) })
	case hasData:
		s.log.Session.Debugf("nobody waits for %d bytes of transaction %d", container.Len(), tid)
	case !hasCallback:
		s.log.Session.Warningf("response for unknown transaction %d", tid)
	}
	return run
}
