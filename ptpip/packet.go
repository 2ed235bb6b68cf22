package ptpip

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

const headerLength = 8

// Payloads shorter than this are carried in the EndData packet of a data
// out phase instead of a separate Data packet.
const inlineDataLimit = 128

const protocolVersion = 0x00010000

const maxNameLength = 80

// Packet is one PTP/IP packet. Encode returns the wire form including the
// 8 byte length/type header.
type Packet interface {
	Type() uint32
	Encode() []byte
}

// Transactional packets carry the transaction they belong to.
type Transactional interface {
	Transaction() (uint32, bool)
}

type InitCommandRequest struct {
	GUID    [16]byte
	Name    string
	Version uint32
}

type InitCommandAck struct {
	SessionID uint32
	GUID      [16]byte
	Name      string
	Version   uint32
}

type InitEventRequest struct {
	SessionID uint32
}

type InitEventAck struct{}

type InitFail struct {
	Reason uint32
}

// CommandRequest starts a transaction on the control channel.
type CommandRequest struct {
	DataPhase     uint32
	Code          uint16
	TransactionID uint32
	Param         []uint32
}

// CommandResponse closes a transaction. Tagged is false for responses
// whose payload stops after the response code.
//
// AwaitingFurtherData is a local parsing annotation: the packet was cut
// short, or its payload was not a response code, and more control bytes
// are expected to complete it. See Continue.
type CommandResponse struct {
	Code          uint16
	TransactionID uint32
	Tagged        bool
	Param         []uint32

	AwaitingFurtherData bool

	declared uint32
	partial  []byte
}

type Event struct {
	Code          uint16
	TransactionID uint32
	Tagged        bool
	Param         []uint32
}

type StartData struct {
	TransactionID uint32
	DataLength    uint64
}

type Data struct {
	TransactionID uint32
	Payload       []byte
}

type EndData struct {
	TransactionID uint32
	Payload       []byte
}

type Cancel struct {
	TransactionID uint32
}

type Ping struct{}

type Pong struct{}

// RawPacket holds packets of unknown type, vendor filler packets and
// known packets whose payload could not be decoded.
type RawPacket struct {
	PacketType uint32
	Payload    []byte
}

func (*InitCommandRequest) Type() uint32 { return PT_InitCommandRequest }
func (*InitCommandAck) Type() uint32     { return PT_InitCommandAck }
func (*InitEventRequest) Type() uint32   { return PT_InitEventRequest }
func (*InitEventAck) Type() uint32       { return PT_InitEventAck }
func (*InitFail) Type() uint32           { return PT_InitFail }
func (*CommandRequest) Type() uint32     { return PT_CommandRequest }
func (*CommandResponse) Type() uint32    { return PT_CommandResponse }
func (*Event) Type() uint32              { return PT_Event }
func (*StartData) Type() uint32          { return PT_StartData }
func (*Data) Type() uint32               { return PT_Data }
func (*EndData) Type() uint32            { return PT_EndData }
func (*Cancel) Type() uint32             { return PT_Cancel }
func (*Ping) Type() uint32               { return PT_Ping }
func (*Pong) Type() uint32               { return PT_Pong }
func (p *RawPacket) Type() uint32        { return p.PacketType }

func (p *CommandRequest) Transaction() (uint32, bool)  { return p.TransactionID, true }
func (p *CommandResponse) Transaction() (uint32, bool) { return p.TransactionID, p.Tagged }
func (p *Event) Transaction() (uint32, bool)           { return p.TransactionID, p.Tagged }
func (p *StartData) Transaction() (uint32, bool)       { return p.TransactionID, true }
func (p *Data) Transaction() (uint32, bool)            { return p.TransactionID, true }
func (p *EndData) Transaction() (uint32, bool)         { return p.TransactionID, true }
func (p *Cancel) Transaction() (uint32, bool)          { return p.TransactionID, true }

func frame(typ uint32, payload *Buffer) []byte {
	var b Buffer
	n := 0
	if payload != nil {
		n = payload.Len()
	}
	b.AppendUint32(uint32(headerLength + n))
	b.AppendUint32(typ)
	if payload != nil {
		b.Append(payload.Bytes())
	}
	return b.Bytes()
}

func (p *InitCommandRequest) Encode() []byte {
	var b Buffer
	b.Append(p.GUID[:])
	name := []rune(p.Name)
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}
	b.AppendString(string(name), false)
	b.AppendUint32(p.Version)
	return frame(PT_InitCommandRequest, &b)
}

func (p *InitCommandAck) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.SessionID)
	b.Append(p.GUID[:])
	b.AppendString(p.Name, false)
	b.AppendUint32(p.Version)
	return frame(PT_InitCommandAck, &b)
}

func (p *InitEventRequest) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.SessionID)
	return frame(PT_InitEventRequest, &b)
}

func (p *InitEventAck) Encode() []byte {
	return frame(PT_InitEventAck, nil)
}

func (p *InitFail) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.Reason)
	return frame(PT_InitFail, &b)
}

func (p *CommandRequest) Encode() []byte {
	var b Buffer
	phase := p.DataPhase
	if phase == 0 {
		phase = DP_NoDataOrDataIn
	}
	b.AppendUint32(phase)
	b.AppendUint16(p.Code)
	b.AppendUint32(p.TransactionID)
	for _, a := range p.Param {
		b.AppendUint32(a)
	}
	return frame(PT_CommandRequest, &b)
}

func (p *CommandResponse) Encode() []byte {
	var b Buffer
	b.AppendUint16(p.Code)
	if p.Tagged {
		b.AppendUint32(p.TransactionID)
		for _, a := range p.Param {
			b.AppendUint32(a)
		}
	}
	return frame(PT_CommandResponse, &b)
}

func (p *Event) Encode() []byte {
	var b Buffer
	b.AppendUint16(p.Code)
	if p.Tagged {
		b.AppendUint32(p.TransactionID)
		for _, a := range p.Param {
			b.AppendUint32(a)
		}
	}
	return frame(PT_Event, &b)
}

func (p *StartData) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.TransactionID)
	b.AppendUint64(p.DataLength)
	return frame(PT_StartData, &b)
}

func (p *Data) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.TransactionID)
	b.Append(p.Payload)
	return frame(PT_Data, &b)
}

func (p *EndData) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.TransactionID)
	b.Append(p.Payload)
	return frame(PT_EndData, &b)
}

func (p *Cancel) Encode() []byte {
	var b Buffer
	b.AppendUint32(p.TransactionID)
	return frame(PT_Cancel, &b)
}

func (p *Ping) Encode() []byte { return frame(PT_Ping, nil) }
func (p *Pong) Encode() []byte { return frame(PT_Pong, nil) }

func (p *RawPacket) Encode() []byte {
	return frame(p.PacketType, NewBuffer(p.Payload))
}

// NewInitCommandRequest builds the first packet of the handshake.
func NewInitCommandRequest(guid [16]byte, name string) *InitCommandRequest {
	return &InitCommandRequest{
		GUID:    guid,
		Name:    name,
		Version: protocolVersion,
	}
}

// GUIDFromIdentifier derives the client GUID from a device identifier: a
// "uuid" marker is dropped, only letters and digits are kept and the last
// 16 of those are used, zero padded.
func GUIDFromIdentifier(id string) [16]byte {
	id = strings.Replace(id, "uuid", "", -1)
	var kept []byte
	for _, r := range id {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			kept = append(kept, byte(r))
		}
	}
	if len(kept) > 16 {
		kept = kept[len(kept)-16:]
	}
	var guid [16]byte
	copy(guid[:], kept)
	return guid
}

// DataSendPackets splits an outgoing payload into the packets of a data
// out phase for transaction tid.
func DataSendPackets(tid uint32, payload []byte) []Packet {
	start := &StartData{TransactionID: tid, DataLength: uint64(len(payload))}
	if len(payload) < inlineDataLimit {
		return []Packet{start, &EndData{TransactionID: tid, Payload: payload}}
	}
	return []Packet{
		start,
		&Data{TransactionID: tid, Payload: payload},
		&EndData{TransactionID: tid},
	}
}

func readParams(b *Buffer, off, max int) []uint32 {
	var params []uint32
	for len(params) < max {
		v, ok := b.Uint32(off)
		if !ok {
			break
		}
		params = append(params, v)
		off += 4
	}
	return params
}

// DecodePacket decodes the packet at the front of b and reports how many
// bytes it used. A zero count with a nil error means b holds an incomplete
// packet and more bytes are needed.
//
// A command response that is cut short, or whose payload does not start
// with a known response code, is returned with AwaitingFurtherData set.
func DecodePacket(b []byte) (Packet, int, error) {
	if len(b) < headerLength {
		return nil, 0, nil
	}
	buf := NewBuffer(b)
	length, _ := buf.Uint32(0)
	typ, _ := buf.Uint32(4)
	if length < headerLength || length > maxPacketLength {
		return nil, 0, SyncError(fmt.Sprintf("implausible packet length %d (type 0x%x)", length, typ))
	}

	if typ == PT_CommandResponse {
		return decodeCommandResponse(buf, length)
	}
	if uint32(len(b)) < length {
		return nil, 0, nil
	}

	payload := buf.Sub(headerLength, int(length))
	n := int(length)
	raw := func() (Packet, int, error) {
		return &RawPacket{PacketType: typ, Payload: payload.Bytes()}, n, nil
	}

	switch typ {
	case PT_InitCommandRequest:
		if payload.Len() < 16+2+4 {
			return raw()
		}
		p := &InitCommandRequest{}
		copy(p.GUID[:], payload.Bytes()[:16])
		name, sz := decodeName(payload, 16)
		p.Name = name
		p.Version, _ = payload.Uint32(16 + sz)
		return p, n, nil
	case PT_InitCommandAck:
		sid, ok := payload.Uint32(0)
		if !ok {
			return raw()
		}
		p := &InitCommandAck{SessionID: sid}
		if payload.Len() >= 4+16 {
			copy(p.GUID[:], payload.Bytes()[4:20])
			name, sz := decodeName(payload, 20)
			p.Name = name
			p.Version, _ = payload.Uint32(20 + sz)
		}
		return p, n, nil
	case PT_InitEventRequest:
		sid, ok := payload.Uint32(0)
		if !ok {
			return raw()
		}
		return &InitEventRequest{SessionID: sid}, n, nil
	case PT_InitEventAck:
		return &InitEventAck{}, n, nil
	case PT_InitFail:
		reason, _ := payload.Uint32(0)
		return &InitFail{Reason: reason}, n, nil
	case PT_CommandRequest:
		phase, ok1 := payload.Uint32(0)
		code, ok2 := payload.Uint16(4)
		tid, ok3 := payload.Uint32(6)
		if !ok1 || !ok2 || !ok3 {
			return raw()
		}
		return &CommandRequest{
			DataPhase:     phase,
			Code:          code,
			TransactionID: tid,
			Param:         readParams(payload, 10, 5),
		}, n, nil
	case PT_Event:
		code, ok := payload.Uint16(0)
		if !ok {
			return raw()
		}
		p := &Event{Code: code}
		p.TransactionID, p.Tagged = payload.Uint32(2)
		p.Param = readParams(payload, 6, 3)
		return p, n, nil
	case PT_StartData:
		tid, ok1 := payload.Uint32(0)
		size, ok2 := payload.Uint64(4)
		if !ok1 {
			return raw()
		}
		if !ok2 {
			// Some firmware sends only the low dword.
			lo, _ := payload.Uint32(4)
			size = uint64(lo)
		}
		return &StartData{TransactionID: tid, DataLength: size}, n, nil
	case PT_Data, PT_EndData:
		tid, ok := payload.Uint32(0)
		if !ok {
			return raw()
		}
		data := payload.Bytes()[4:]
		if typ == PT_Data {
			return &Data{TransactionID: tid, Payload: data}, n, nil
		}
		return &EndData{TransactionID: tid, Payload: data}, n, nil
	case PT_Cancel:
		tid, ok := payload.Uint32(0)
		if !ok {
			return raw()
		}
		return &Cancel{TransactionID: tid}, n, nil
	case PT_Ping:
		return &Ping{}, n, nil
	case PT_Pong:
		return &Pong{}, n, nil
	}
	return raw()
}

func decodeName(b *Buffer, off int) (string, int) {
	var units []uint16
	sz := 0
	for {
		u, ok := b.Uint16(off + sz)
		if !ok {
			break
		}
		sz += 2
		if u == 0 {
			break
		}
		units = append(units, u)
	}
	return string(utf16.Decode(units)), sz
}

func decodeCommandResponse(buf *Buffer, length uint32) (Packet, int, error) {
	avail := buf.Len()
	if uint32(avail) < length {
		return &CommandResponse{
			Code:                RC_OK,
			AwaitingFurtherData: true,
			declared:            length,
			partial:             buf.Sub(headerLength, avail).Bytes(),
		}, avail, nil
	}

	payload := buf.Sub(headerLength, int(length))
	code, ok := payload.Uint16(0)
	if _, known := RC_names[int(code)]; !ok || !known {
		// Only the header is trusted; whatever follows may be the next
		// packet. Sony sends its session open reply this way and expects
		// it to be taken as OK.
		return &CommandResponse{
			Code:                RC_OK,
			AwaitingFurtherData: length > headerLength,
			declared:            length,
		}, headerLength, nil
	}

	p := &CommandResponse{Code: code, declared: length}
	p.TransactionID, p.Tagged = payload.Uint32(2)
	p.Param = readParams(payload, 6, 5)
	return p, int(length), nil
}

// Continue completes an awaiting response with bytes that arrived later on
// the same channel. It returns the finished packet and the number of bytes
// of more it consumed. When more still falls short of the declared length
// the bytes are held, all of more is consumed and done is false.
//
// If the completed bytes still do not form a valid response the awaiting
// packet itself is returned with its flag cleared, and the bytes belonging
// to its declared length are consumed.
func (r *CommandResponse) Continue(more []byte) (p *CommandResponse, used int, done bool) {
	var full Buffer
	full.AppendUint32(r.declared)
	full.AppendUint32(PT_CommandResponse)
	full.Append(r.partial)
	full.Append(more)
	if uint32(full.Len()) < r.declared {
		r.partial = append(r.partial, more...)
		return nil, len(more), false
	}

	pkt, n, err := DecodePacket(full.Bytes())
	if err == nil {
		if rep, ok := pkt.(*CommandResponse); ok && !rep.AwaitingFurtherData {
			return rep, n - headerLength - len(r.partial), true
		}
	}
	stale := *r
	stale.AwaitingFurtherData = false
	stale.partial = nil
	return &stale, r.remaining(), true
}

// remaining is the number of payload bytes still missing.
func (r *CommandResponse) remaining() int {
	n := int(r.declared) - headerLength - len(r.partial)
	if n < 0 {
		return 0
	}
	return n
}

// Length is the declared packet length including the header.
func (r *CommandResponse) Length() uint32 {
	return r.declared
}

// ParsePackets decodes all whole packets at the front of b. It returns
// them along with the number of bytes they used.
func ParsePackets(b []byte) ([]Packet, int, error) {
	var pkts []Packet
	off := 0
	for off < len(b) {
		p, n, err := DecodePacket(b[off:])
		if err != nil {
			return pkts, off, err
		}
		if n == 0 {
			break
		}
		pkts = append(pkts, p)
		off += n
	}
	return pkts, off, nil
}
