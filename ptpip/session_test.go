package ptpip

import (
	"bytes"
	"context"
	"errors"
	"math"
	"net"
	"reflect"
	"testing"
	"time"
)

const testTimeout = 5 * time.Second

// fakeCamera hands out the far ends of the connections a session dials,
// in dial order.
type fakeCamera struct {
	conns chan net.Conn
}

func newFakeCamera() *fakeCamera {
	return &fakeCamera{conns: make(chan net.Conn, 4)}
}

func (c *fakeCamera) dial(ctx context.Context, network, address string) (net.Conn, error) {
	client, server := net.Pipe()
	c.conns <- server
	return client, nil
}

func (c *fakeCamera) accept(t *testing.T) *peer {
	t.Helper()
	select {
	case conn := <-c.conns:
		return &peer{t: t, conn: conn}
	case <-time.After(testTimeout):
		t.Fatal("session did not dial")
	}
	return nil
}

// peer is the camera side of one channel. Only the test goroutine may use
// it.
type peer struct {
	t    *testing.T
	conn net.Conn
	acc  []byte
}

func (p *peer) read() Packet {
	p.t.Helper()
	buf := make([]byte, 4096)
	for {
		pkt, n, err := DecodePacket(p.acc)
		if err != nil {
			p.t.Fatalf("camera: %v", err)
		}
		if n > 0 {
			p.acc = p.acc[n:]
			return pkt
		}
		p.conn.SetReadDeadline(time.Now().Add(testTimeout))
		m, err := p.conn.Read(buf)
		if err != nil {
			p.t.Fatalf("camera read: %v", err)
		}
		p.acc = append(p.acc, buf[:m]...)
	}
}

func (p *peer) request() *CommandRequest {
	p.t.Helper()
	pkt := p.read()
	req, ok := pkt.(*CommandRequest)
	if !ok {
		p.t.Fatalf("got %s, want CommandRequest", PacketName(pkt))
	}
	return req
}

func (p *peer) writeBytes(b []byte) {
	p.t.Helper()
	p.conn.SetWriteDeadline(time.Now().Add(testTimeout))
	if _, err := p.conn.Write(b); err != nil {
		p.t.Fatalf("camera write: %v", err)
	}
}

func (p *peer) write(pkts ...Packet) {
	p.t.Helper()
	for _, pkt := range pkts {
		p.writeBytes(pkt.Encode())
	}
}

func (p *peer) respond(req *CommandRequest, code uint16, params ...uint32) {
	p.t.Helper()
	p.write(&CommandResponse{Code: code, TransactionID: req.TransactionID, Tagged: true, Param: params})
}

func newTestSession(cam *fakeCamera, keepalive time.Duration) *Session {
	return NewSession(Options{
		Host:       "camera.local",
		DeviceID:   "uuid:00000000-0000-1000-8000-0123456789ab",
		ClientName: "test",
		Dial:       cam.dial,
		Keepalive:  keepalive,
	})
}

func connect(t *testing.T, s *Session, cam *fakeCamera) (ctrl, evt *peer) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- s.ConnectContext(context.Background()) }()

	ctrl = cam.accept(t)
	pkt := ctrl.read()
	req, ok := pkt.(*InitCommandRequest)
	if !ok {
		t.Fatalf("got %s, want InitCommandRequest", PacketName(pkt))
	}
	if req.Name != "test" || req.Version != protocolVersion {
		t.Errorf("got name %q version %x", req.Name, req.Version)
	}
	if req.GUID != GUIDFromIdentifier("uuid:00000000-0000-1000-8000-0123456789ab") {
		t.Errorf("got GUID %x", req.GUID)
	}
	ctrl.write(&InitCommandAck{SessionID: 7, GUID: [16]byte{1}, Name: "fake camera", Version: protocolVersion})

	evt = cam.accept(t)
	pkt = evt.read()
	if er, ok := pkt.(*InitEventRequest); !ok || er.SessionID != 7 {
		t.Fatalf("got %v, want InitEventRequest for session 7", pkt)
	}
	evt.write(&InitEventAck{})

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("ConnectContext: %v", err)
		}
	case <-time.After(testTimeout):
		t.Fatal("connect did not finish")
	}
	return ctrl, evt
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	t.Cleanup(cancel)
	return ctx
}

func TestHandshake(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	if s.State() != StateDisconnected {
		t.Fatalf("state %v before connect", s.State())
	}
	connect(t, s, cam)

	if s.State() != StateConnected {
		t.Errorf("state %v", s.State())
	}
	if s.SessionID() != 7 {
		t.Errorf("session id %d", s.SessionID())
	}
	if guid, name := s.Peer(); name != "fake camera" || guid[0] != 1 {
		t.Errorf("peer %x %q", guid, name)
	}
	select {
	case <-s.Done():
		t.Error("Done closed while connected")
	default:
	}
}

func TestInitFail(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()

	errc := make(chan error, 1)
	go func() { errc <- s.ConnectContext(context.Background()) }()
	ctrl := cam.accept(t)
	ctrl.read()
	ctrl.write(&InitFail{Reason: 1})

	var err error
	select {
	case err = <-errc:
	case <-time.After(testTimeout):
		t.Fatal("connect did not finish")
	}
	var fail InitFailError
	if !errors.As(err, &fail) || fail != 1 {
		t.Fatalf("got %v, want InitFailError(1)", err)
	}
	if s.State() != StateDisconnected {
		t.Errorf("state %v", s.State())
	}
}

func TestNotConnected(t *testing.T) {
	s := newTestSession(newFakeCamera(), 0)
	if err := s.Ping(nil); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Ping: got %v", err)
	}
	if _, err := s.GetStorageIDs(testContext(t)); !errors.Is(err, ErrNotConnected) {
		t.Errorf("GetStorageIDs: got %v", err)
	}
}

func TestTransactionIDs(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	connect(t, s, cam)

	for want := uint32(0); want < 3; want++ {
		if got := s.GetNextTransactionID(); got != want {
			t.Fatalf("got tid %d, want %d", got, want)
		}
	}
	s.ResetTransactionID(math.MaxUint32)
	if got := s.GetNextTransactionID(); got != math.MaxUint32 {
		t.Fatalf("got %d", got)
	}
	if got := s.GetNextTransactionID(); got != 1 {
		t.Fatalf("after wrap: got %d, want 1", got)
	}
}

func TestResponsesOutOfOrder(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	reps := make(chan *CommandResponse, 2)
	for i := 0; i < 2; i++ {
		_, err := s.Run(&Transaction{Code: OC_GetDevicePropDesc, Param: []uint32{uint32(i)}},
			func(rep *CommandResponse, data []byte, err error) { reps <- rep })
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	}
	first, second := ctrl.request(), ctrl.request()
	if first.TransactionID != 0 || second.TransactionID != 1 {
		t.Fatalf("got tids %d, %d", first.TransactionID, second.TransactionID)
	}

	// Nobody waits for transaction 42.
	ctrl.write(&Data{TransactionID: 42, Payload: []byte{1}},
		&CommandResponse{Code: RC_OK, TransactionID: 42, Tagged: true})
	ctrl.respond(second, RC_OK, 11)
	ctrl.respond(first, RC_OK, 10)

	for i := 0; i < 2; i++ {
		select {
		case rep := <-reps:
			if rep.Param[0] != rep.TransactionID+10 {
				t.Errorf("response %v delivered to the wrong transaction", rep)
			}
		case <-time.After(testTimeout):
			t.Fatal("missing response")
		}
	}
	select {
	case rep := <-reps:
		t.Errorf("extra response %v", rep)
	default:
	}
}

func TestDataIn(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	type result struct {
		ids []uint32
		err error
	}
	res := make(chan result, 1)
	go func() {
		ids, err := s.GetStorageIDs(testContext(t))
		res <- result{ids, err}
	}()

	req := ctrl.request()
	if req.Code != OC_GetStorageIDs || req.DataPhase != DP_NoDataOrDataIn {
		t.Fatalf("got %v phase %d", req, req.DataPhase)
	}
	payload := parseHex("0200 0000 0100 0100 0200 0100")
	tid := req.TransactionID
	ctrl.write(
		&StartData{TransactionID: tid, DataLength: uint64(len(payload))},
		&Data{TransactionID: tid, Payload: payload[:3]},
		&Data{TransactionID: tid, Payload: payload[3:7]},
		&EndData{TransactionID: tid, Payload: payload[7:]})
	ctrl.respond(req, RC_OK)

	r := <-res
	if r.err != nil {
		t.Fatalf("GetStorageIDs: %v", r.err)
	}
	if !reflect.DeepEqual(r.ids, []uint32{0x00010001, 0x00010002}) {
		t.Errorf("got %x", r.ids)
	}
}

func TestDeviceInfo(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	want := &DeviceInfo{
		StandardVersion:     100,
		VendorExtensionID:   0x11,
		VendorExtensionDesc: "Sony PTP Extensions",
		OperationsSupported: []uint16{OC_GetDeviceInfo, OC_OpenSession, OC_SONY_SDIOConnect},
		Manufacturer:        "Sony Corporation",
		Model:               "ILCE-7M3",
		DeviceVersion:       "3.10",
		SerialNumber:        "00000000000000003283733004520132",
	}
	var buf bytes.Buffer
	if err := Encode(&buf, want); err != nil {
		t.Fatal(err)
	}

	type result struct {
		info *DeviceInfo
		err  error
	}
	res := make(chan result, 1)
	go func() {
		info, err := s.GetDeviceInfo(testContext(t))
		res <- result{info, err}
	}()

	req := ctrl.request()
	for _, p := range DataSendPackets(req.TransactionID, buf.Bytes()) {
		ctrl.write(p)
	}
	ctrl.respond(req, RC_OK)

	r := <-res
	if r.err != nil {
		t.Fatalf("GetDeviceInfo: %v", r.err)
	}
	if r.info.Model != want.Model || !reflect.DeepEqual(r.info.OperationsSupported, want.OperationsSupported) {
		t.Errorf("got %v", r.info)
	}
}

func TestDataInFailures(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	errc := make(chan error, 1)
	go func() {
		_, err := s.GetDeviceInfo(testContext(t))
		errc <- err
	}()
	req := ctrl.request()
	ctrl.write(&StartData{TransactionID: req.TransactionID, DataLength: 2},
		&EndData{TransactionID: req.TransactionID, Payload: []byte{1, 2}})
	ctrl.respond(req, RC_GeneralError)

	var rc RCError
	if err := <-errc; !errors.As(err, &rc) || rc != RC_GeneralError {
		t.Errorf("got %v, want GeneralError", err)
	}

	go func() {
		_, err := s.GetStorageIDs(testContext(t))
		errc <- err
	}()
	ctrl.respond(ctrl.request(), RC_OK)
	if err := <-errc; !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("OK without data: got %v", err)
	}
}

func TestDataOut(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	errc := make(chan error, 1)
	go func() {
		errc <- s.SetControlDeviceA(testContext(t), DPC_SONY_ISO, DTC_UINT32, uint32(200))
	}()

	req := ctrl.request()
	if req.Code != OC_SONY_SetControlDeviceA || req.DataPhase != DP_DataOut {
		t.Fatalf("got %v phase %d", req, req.DataPhase)
	}
	if !reflect.DeepEqual(req.Param, []uint32{DPC_SONY_ISO}) {
		t.Errorf("params %x", req.Param)
	}
	sd, ok := ctrl.read().(*StartData)
	if !ok || sd.TransactionID != req.TransactionID || sd.DataLength != 4 {
		t.Fatalf("got %v", sd)
	}
	end, ok := ctrl.read().(*EndData)
	if !ok {
		t.Fatal("missing EndData")
	}
	if err := diffIndex(end.Payload, parseHex("c800 0000")); err != nil {
		t.Error(err)
	}
	ctrl.respond(req, RC_OK)

	if err := <-errc; err != nil {
		t.Errorf("SetControlDeviceA: %v", err)
	}
}

func TestUntaggedResponse(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	errc := make(chan error, 1)
	go func() { errc <- s.OpenSession(testContext(t), 1) }()
	req := ctrl.request()
	if req.Code != OC_OpenSession || !reflect.DeepEqual(req.Param, []uint32{1}) {
		t.Fatalf("got %v", req)
	}
	// The reply some Sony bodies send: no response code at all.
	ctrl.writeBytes(parseHex("0e00 0000 0700 0000 0000 0102 0304"))
	if err := <-errc; err != nil {
		t.Fatalf("OpenSession: %v", err)
	}

	go func() { errc <- s.SDIOConnect(testContext(t), 1) }()
	req = ctrl.request()
	if !reflect.DeepEqual(req.Param, []uint32{1, 0, 0}) {
		t.Errorf("params %v", req.Param)
	}
	ctrl.write(&CommandResponse{Code: RC_SessionNotOpen})
	var rc RCError
	if err := <-errc; !errors.As(err, &rc) || rc != RC_SessionNotOpen {
		t.Errorf("got %v, want SessionNotOpen", err)
	}
}

func TestEvents(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	events := make(chan *Event, 1)
	s.OnEvent(func(e *Event) { events <- e })
	_, evt := connect(t, s, cam)

	evt.write(&Event{Code: EC_DevicePropChanged, TransactionID: 0xffffffff, Tagged: true, Param: []uint32{DPC_SONY_ISO}})
	select {
	case e := <-events:
		if e.Code != EC_DevicePropChanged || !reflect.DeepEqual(e.Param, []uint32{DPC_SONY_ISO}) {
			t.Errorf("got %v", e)
		}
	case <-time.After(testTimeout):
		t.Fatal("no event")
	}
}

func TestPingPong(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	_, evt := connect(t, s, cam)

	pong := make(chan error, 1)
	if err := s.Ping(func(err error) { pong <- err }); err != nil {
		t.Fatal(err)
	}
	if _, ok := evt.read().(*Ping); !ok {
		t.Fatal("camera did not get a ping")
	}
	evt.write(&Pong{})
	select {
	case err := <-pong:
		if err != nil {
			t.Error(err)
		}
	case <-time.After(testTimeout):
		t.Fatal("no pong")
	}

	evt.write(&Ping{})
	if _, ok := evt.read().(*Pong); !ok {
		t.Fatal("session did not answer the camera's ping")
	}
}

func TestKeepaliveGivesUp(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 10*time.Millisecond)
	defer s.Disconnect()
	lost := make(chan error, 1)
	s.OnDisconnect(func(err error) { lost <- err })
	connect(t, s, cam)

	// The camera never reads, so no ping is ever answered.
	select {
	case err := <-lost:
		if !errors.Is(err, ErrPingTimeout) {
			t.Errorf("got %v, want ErrPingTimeout", err)
		}
	case <-time.After(testTimeout):
		t.Fatal("keepalive did not give up")
	}
	if s.State() != StateDisconnected {
		t.Errorf("state %v", s.State())
	}
}

func TestConnectionLost(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	lost := make(chan error, 1)
	s.OnDisconnect(func(err error) { lost <- err })
	ctrl, _ := connect(t, s, cam)

	errc := make(chan error, 1)
	go func() {
		_, err := s.GetStorageIDs(testContext(t))
		errc <- err
	}()
	ctrl.request()
	ctrl.conn.Close()

	select {
	case err := <-lost:
		if err == nil {
			t.Error("OnDisconnect without a reason")
		}
	case <-time.After(testTimeout):
		t.Fatal("OnDisconnect not called")
	}
	if err := <-errc; !errors.Is(err, ErrSocketClosed) {
		t.Errorf("pending transaction: got %v", err)
	}
	select {
	case <-s.Done():
	default:
		t.Error("Done still open")
	}

	// A new connection starts counting transactions from zero.
	s.GetNextTransactionID()
	ctrl, _ = connect(t, s, cam)
	go func() { errc <- s.OpenSession(testContext(t), 1) }()
	req := ctrl.request()
	if req.TransactionID != 0 {
		t.Errorf("first tid after reconnect %d", req.TransactionID)
	}
	ctrl.respond(req, RC_OK)
	if err := <-errc; err != nil {
		t.Errorf("OpenSession: %v", err)
	}
}

func TestDisconnectIsQuiet(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	lost := make(chan error, 1)
	s.OnDisconnect(func(err error) { lost <- err })
	connect(t, s, cam)

	s.Disconnect()
	select {
	case err := <-lost:
		t.Errorf("OnDisconnect called with %v", err)
	case <-time.After(50 * time.Millisecond):
	}
	if s.State() != StateDisconnected {
		t.Errorf("state %v", s.State())
	}
}

func TestReconnectDuringHandshake(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()

	first := make(chan error, 1)
	go func() { first <- s.ConnectContext(context.Background()) }()
	old := cam.accept(t)
	if _, ok := old.read().(*InitCommandRequest); !ok {
		t.Fatal("first connect sent no InitCommandRequest")
	}
	s.mu.Lock()
	oldGen := s.gen
	s.mu.Unlock()

	ctrl, _ := connect(t, s, cam)
	select {
	case err := <-first:
		if !errors.Is(err, ErrSocketClosed) {
			t.Errorf("first connect: got %v, want ErrSocketClosed", err)
		}
	case <-time.After(testTimeout):
		t.Fatal("first connect did not return")
	}

	// The old control channel is closed, and anything it read late
	// belongs to a dead connection.
	if _, err := old.conn.Write((&InitCommandAck{SessionID: 99, Name: "stale"}).Encode()); err == nil {
		t.Error("old control channel still open")
	}
	s.handle(oldGen, ControlChannel, &InitCommandAck{SessionID: 99, Name: "stale"})

	errc := make(chan error, 1)
	go func() { errc <- s.OpenSession(testContext(t), 1) }()
	req := ctrl.request()
	s.handle(oldGen, ControlChannel, &CommandResponse{Code: RC_GeneralError, TransactionID: req.TransactionID, Tagged: true})
	ctrl.respond(req, RC_OK)
	if err := <-errc; err != nil {
		t.Errorf("OpenSession: %v", err)
	}

	if s.SessionID() != 7 || s.State() != StateConnected {
		t.Errorf("session %d state %v", s.SessionID(), s.State())
	}
	if _, name := s.Peer(); name != "fake camera" {
		t.Errorf("peer %q", name)
	}
}

// answerDataIn checks the next request and answers it with payload as its
// data phase.
func answerDataIn(t *testing.T, ctrl *peer, code uint16, params []uint32, payload []byte) {
	t.Helper()
	req := ctrl.request()
	if req.Code != code || req.DataPhase != DP_NoDataOrDataIn {
		t.Fatalf("got %v phase %d", req, req.DataPhase)
	}
	if !reflect.DeepEqual(req.Param, params) {
		t.Errorf("%v: got params %x, want %x", req, req.Param, params)
	}
	ctrl.write(DataSendPackets(req.TransactionID, payload)...)
	ctrl.respond(req, RC_OK)
}

func TestGetDevicePropDesc(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	type result struct {
		prop *DeviceProperty
		err  error
	}
	res := make(chan result, 1)
	go func() {
		p, err := s.GetDevicePropDescContext(testContext(t), DPC_SONY_ISO)
		res <- result{p, err}
	}()
	answerDataIn(t, ctrl, OC_GetDevicePropDesc, []uint32{DPC_SONY_ISO}, parseHex(isoPropStr))

	r := <-res
	if r.err != nil {
		t.Fatalf("GetDevicePropDesc: %v", r.err)
	}
	if r.prop.Code != DPC_SONY_ISO || r.prop.Current != uint32(100) {
		t.Errorf("got %v", r.prop)
	}
}

func TestGetAllDevicePropDesc(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	type result struct {
		props []*DeviceProperty
		err   error
	}
	res := make(chan result, 1)
	fetch := func(partial bool) {
		go func() {
			props, err := s.GetAllDevicePropDescContext(testContext(t), partial)
			res <- result{props, err}
		}()
	}

	fetch(true)
	answerDataIn(t, ctrl, OC_SONY_GetAllDevicePropData, []uint32{1},
		parseHex("0200 0000 0000 0000"+isoPropStr+fnumberPropStr))
	r := <-res
	if r.err != nil {
		t.Fatalf("GetAllDevicePropDesc: %v", r.err)
	}
	if len(r.props) != 2 || r.props[0].Code != DPC_SONY_ISO || r.props[1].Code != DPC_FNumber {
		t.Errorf("got %v", r.props)
	}

	// A record with an unknown form flag.
	fetch(false)
	answerDataIn(t, ctrl, OC_SONY_GetAllDevicePropData, []uint32{0},
		parseHex("0100 0000 0000 0000 0750 0400 0101 1801 1801 07"))
	if r := <-res; !errors.Is(r.err, ErrInvalidResponse) {
		t.Errorf("got %v, want ErrInvalidResponse", r.err)
	}
	if s.State() != StateConnected {
		t.Fatalf("state %v after a bad record", s.State())
	}

	fetch(false)
	answerDataIn(t, ctrl, OC_SONY_GetAllDevicePropData, []uint32{0}, parseHex("0000 0000 0000 0000"))
	if r := <-res; r.err != nil || len(r.props) != 0 {
		t.Errorf("empty dump: got %v, %v", r.props, r.err)
	}
}

func TestGetObjectInfo(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	ctrl, _ := connect(t, s, cam)

	fixed := objectInfoFixed()
	var buf bytes.Buffer
	if err := Encode(&buf, &fixed); err != nil {
		t.Fatal(err)
	}

	type result struct {
		info *ObjectInfo
		err  error
	}
	res := make(chan result, 1)
	fetch := func() {
		go func() {
			info, err := s.GetObjectInfoContext(testContext(t), 0xffffc001)
			res <- result{info, err}
		}()
	}

	fetch()
	answerDataIn(t, ctrl, OC_GetObjectInfo, []uint32{0xffffc001}, buf.Bytes())
	r := <-res
	if r.err != nil {
		t.Fatalf("GetObjectInfo: %v", r.err)
	}
	if r.info.Filename != "DSC00001.JPG" || r.info.CompressedSize != 4096 {
		t.Errorf("got %#v", r.info.ObjectInfoFixed)
	}

	fetch()
	answerDataIn(t, ctrl, OC_GetObjectInfo, []uint32{0xffffc001}, buf.Bytes()[:10])
	if r := <-res; !errors.Is(r.err, ErrInvalidResponse) || r.info != nil {
		t.Errorf("truncated: got %v, %v", r.info, r.err)
	}
	if s.State() != StateConnected {
		t.Errorf("state %v", s.State())
	}
}

func TestSetKeepalive(t *testing.T) {
	cam := newFakeCamera()
	s := newTestSession(cam, 0)
	defer s.Disconnect()
	_, evt := connect(t, s, cam)

	s.SetKeepalive(5 * time.Millisecond)
	if _, ok := evt.read().(*Ping); !ok {
		t.Fatal("no keepalive ping")
	}
	evt.write(&Pong{})
	s.SetKeepalive(0)
	if s.State() != StateConnected {
		t.Errorf("state %v", s.State())
	}

	s.Disconnect()
	s.SetKeepalive(time.Millisecond)
	s.mu.Lock()
	running := s.ticker != nil
	s.mu.Unlock()
	if running {
		t.Error("keepalive started without a connection")
	}
}
