package ptpip

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeCommandRequest(t *testing.T) {
	p := &CommandRequest{Code: OC_OpenSession, TransactionID: 0, Param: []uint32{1}}
	want := parseHex(`1600 0000 0600 0000
0100 0000 0210 0000 0000 0100 0000`)
	if err := diffIndex(p.Encode(), want); err != nil {
		t.Fatal(err)
	}

	p = &CommandRequest{DataPhase: DP_DataOut, Code: OC_SetDevicePropValue, TransactionID: 0x0102}
	want = parseHex(`1200 0000 0600 0000
0200 0000 1610 0201 0000`)
	if err := diffIndex(p.Encode(), want); err != nil {
		t.Fatal(err)
	}
}

func TestEncodeInitCommandRequest(t *testing.T) {
	p := NewInitCommandRequest([16]byte{}, "ab")
	want := parseHex(`2200 0000 0100 0000
0000 0000 0000 0000 0000 0000 0000 0000
6100 6200 0000 0000 0100`)
	if err := diffIndex(p.Encode(), want); err != nil {
		t.Fatal(err)
	}

	long := NewInitCommandRequest([16]byte{}, strings.Repeat("x", 100))
	got, n, err := DecodePacket(long.Encode())
	if err != nil || n == 0 {
		t.Fatalf("DecodePacket: %v, %d", err, n)
	}
	if name := got.(*InitCommandRequest).Name; len(name) != maxNameLength {
		t.Errorf("name has %d characters, want %d", len(name), maxNameLength)
	}
}

const initCommandAckStr = `2800 0000 0200 0000
0700 0000
0102 0304 0506 0708 090a 0b0c 0d0e 0f10
6300 6100 6d00 0000
0000 0100`

func TestDecodeInitCommandAck(t *testing.T) {
	bin := parseHex(initCommandAckStr)
	p, n, err := DecodePacket(bin)
	if err != nil {
		t.Fatalf("DecodePacket: %v", err)
	}
	if n != len(bin) {
		t.Fatalf("used %d of %d bytes", n, len(bin))
	}
	want := &InitCommandAck{
		SessionID: 7,
		GUID:      [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		Name:      "cam",
		Version:   protocolVersion,
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("got %#v, want %#v", p, want)
	}
	if err := diffIndex(want.Encode(), bin); err != nil {
		t.Error(err)
	}
}

func TestDecodeEvent(t *testing.T) {
	bin := parseHex(`1600 0000 0800 0000
0640 ffff ffff 1ed2 0000 0100 0000`)
	p, _, err := DecodePacket(bin)
	if err != nil {
		t.Fatal(err)
	}
	want := &Event{Code: EC_DevicePropChanged, TransactionID: 0xffffffff, Tagged: true, Param: []uint32{0xd21e, 1}}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("got %#v, want %#v", p, want)
	}

	p, _, err = DecodePacket(parseHex("0a00 0000 0800 0000 03c2"))
	if err != nil {
		t.Fatal(err)
	}
	if ev := p.(*Event); ev.Tagged || ev.Code != EC_SONY_PropertyChanged {
		t.Errorf("got %v, want untagged %x", ev, EC_SONY_PropertyChanged)
	}
}

func TestDecodeStartData(t *testing.T) {
	p, _, err := DecodePacket(parseHex(`1400 0000 0900 0000
0300 0000 0010 0000 0100 0000`))
	if err != nil {
		t.Fatal(err)
	}
	if sd := p.(*StartData); sd.TransactionID != 3 || sd.DataLength != 0x100001000 {
		t.Errorf("got %#v", sd)
	}

	// Only the low dword of the length.
	p, _, err = DecodePacket(parseHex(`1000 0000 0900 0000
0300 0000 0010 0000`))
	if err != nil {
		t.Fatal(err)
	}
	if sd := p.(*StartData); sd.DataLength != 0x1000 {
		t.Errorf("got %#v", sd)
	}
}

func TestDecodeIncomplete(t *testing.T) {
	bin := parseHex(`1600 0000 0800 0000
0640 ffff ffff 1ed2 0000 0100 0000`)
	for _, n := range []int{0, 7, 8, 21} {
		p, used, err := DecodePacket(bin[:n])
		if p != nil || used != 0 || err != nil {
			t.Errorf("%d bytes: got %v, %d, %v", n, p, used, err)
		}
	}
}

func TestDecodeBadLength(t *testing.T) {
	for _, s := range []string{
		"0400 0000 0d00 0000",
		"ffff ffff 0a00 0000",
	} {
		_, _, err := DecodePacket(parseHex(s))
		var se SyncError
		if !errors.As(err, &se) {
			t.Errorf("%s: got %v, want SyncError", s, err)
		}
	}
}

func TestDecodeRaw(t *testing.T) {
	p, n, err := DecodePacket(parseHex("0a00 0000 ffff 0000 abcd"))
	if err != nil || n != 10 {
		t.Fatalf("got %d, %v", n, err)
	}
	raw, ok := p.(*RawPacket)
	if !ok || raw.PacketType != PT_SonyFiller {
		t.Fatalf("got %#v, want filler", p)
	}
	if err := diffIndex(raw.Payload, []byte{0xab, 0xcd}); err != nil {
		t.Error(err)
	}
	if got, want := raw.String(), "RawPacket{SonyFiller payload: abcd}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// A cancel without its transaction id.
	p, _, err = DecodePacket(parseHex("0800 0000 0b00 0000"))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(*RawPacket); !ok {
		t.Errorf("got %#v, want RawPacket", p)
	}
}

func TestDecodeCommandResponse(t *testing.T) {
	p, n, err := DecodePacket(parseHex(`1200 0000 0700 0000
0120 0500 0000 0900 0000`))
	if err != nil || n != 18 {
		t.Fatalf("got %d, %v", n, err)
	}
	rep := p.(*CommandResponse)
	if rep.Code != RC_OK || !rep.Tagged || rep.TransactionID != 5 || rep.AwaitingFurtherData {
		t.Errorf("got %#v", rep)
	}
	if !reflect.DeepEqual(rep.Param, []uint32{9}) {
		t.Errorf("params %v", rep.Param)
	}

	p, _, err = DecodePacket(parseHex("0a00 0000 0700 0000 0320"))
	if err != nil {
		t.Fatal(err)
	}
	if rep := p.(*CommandResponse); rep.Tagged || rep.Code != RC_SessionNotOpen {
		t.Errorf("got %#v, want untagged SessionNotOpen", rep)
	}
}

func TestCommandResponseTruncated(t *testing.T) {
	bin := parseHex(`0e00 0000 0700 0000
0120 0500 0000
0c00 0000 0b00 0000 0100 0000`)
	p, n, err := DecodePacket(bin[:10])
	if err != nil {
		t.Fatal(err)
	}
	rep := p.(*CommandResponse)
	if !rep.AwaitingFurtherData || n != 10 || rep.Length() != 14 {
		t.Fatalf("got %#v, used %d", rep, n)
	}

	got, used, done := rep.Continue(bin[10:12])
	if done || got != nil || used != 2 {
		t.Fatalf("short continue: got %v, %d, %v", got, used, done)
	}

	got, used, done = rep.Continue(bin[12:])
	if !done || used != 2 {
		t.Fatalf("got %v, %d, %v", got, used, done)
	}
	if got.Code != RC_OK || got.TransactionID != 5 || !got.Tagged || got.AwaitingFurtherData {
		t.Errorf("got %#v", got)
	}

	next, _, err := DecodePacket(bin[12+used:])
	if err != nil {
		t.Fatal(err)
	}
	if c, ok := next.(*Cancel); !ok || c.TransactionID != 1 {
		t.Errorf("following packet: got %#v", next)
	}
}

func TestCommandResponseUnknownCode(t *testing.T) {
	bin := parseHex(`0e00 0000 0700 0000
0000 0102 0304`)
	p, n, err := DecodePacket(bin)
	if err != nil {
		t.Fatal(err)
	}
	rep := p.(*CommandResponse)
	if n != headerLength || !rep.AwaitingFurtherData || rep.Code != RC_OK {
		t.Fatalf("got %#v, used %d", rep, n)
	}

	got, used, done := rep.Continue(bin[n:])
	if !done || used != 6 {
		t.Fatalf("got %v, %d, %v", got, used, done)
	}
	if got.AwaitingFurtherData || got.Tagged || got.Code != RC_OK {
		t.Errorf("got %#v, want plain OK", got)
	}

	// Without payload there is nothing to wait for.
	p, n, err = DecodePacket(parseHex("0800 0000 0700 0000"))
	if err != nil || n != 8 {
		t.Fatalf("got %d, %v", n, err)
	}
	if rep := p.(*CommandResponse); rep.AwaitingFurtherData || rep.Code != RC_OK {
		t.Errorf("got %#v", rep)
	}
}

func TestParsePackets(t *testing.T) {
	bin := parseHex(`0800 0000 0d00 0000
0c00 0000 0b00 0000 0200 0000
0800 0000 0e`)
	pkts, n, err := ParsePackets(bin)
	if err != nil {
		t.Fatal(err)
	}
	if n != 20 || len(pkts) != 2 {
		t.Fatalf("got %d packets in %d bytes", len(pkts), n)
	}
	if _, ok := pkts[0].(*Ping); !ok {
		t.Errorf("got %#v, want Ping", pkts[0])
	}
}

func TestDataSendPackets(t *testing.T) {
	pkts := DataSendPackets(4, []byte{1, 2})
	if len(pkts) != 2 {
		t.Fatalf("got %d packets", len(pkts))
	}
	if sd := pkts[0].(*StartData); sd.TransactionID != 4 || sd.DataLength != 2 {
		t.Errorf("got %#v", sd)
	}
	want := parseHex("0e00 0000 0c00 0000 0400 0000 0102")
	if err := diffIndex(pkts[1].Encode(), want); err != nil {
		t.Error(err)
	}

	big := make([]byte, inlineDataLimit)
	pkts = DataSendPackets(4, big)
	if len(pkts) != 3 {
		t.Fatalf("got %d packets", len(pkts))
	}
	if d := pkts[1].(*Data); len(d.Payload) != inlineDataLimit {
		t.Errorf("data packet carries %d bytes", len(d.Payload))
	}
	if e := pkts[2].(*EndData); len(e.Payload) != 0 {
		t.Errorf("end packet carries %d bytes", len(e.Payload))
	}
}

func TestGUIDFromIdentifier(t *testing.T) {
	got := GUIDFromIdentifier("uuid:00000000-0000-1000-8000-0123456789ab")
	if string(got[:]) != "80000123456789ab" {
		t.Errorf("got %q", got[:])
	}

	got = GUIDFromIdentifier("cam-1")
	want := [16]byte{'c', 'a', 'm', '1'}
	if got != want {
		t.Errorf("got %q, want %q", got[:], want[:])
	}
}
