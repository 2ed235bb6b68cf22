package ptpip

import (
	"errors"
	"fmt"
)

// RCError are response codes from the CommandResponse.Code field.
type RCError uint16

func (e RCError) Error() string {
	n, ok := RC_names[int(e)]
	if ok {
		return n
	}
	return fmt.Sprintf("RetCode %x", uint16(e))
}

// SyncError is an error type that indicates lost framing
// synchronization on one of the channels.
type SyncError string

func (s SyncError) Error() string {
	return string(s)
}

// Catastrophic marks transport failures; the stream is torn down when one
// is raised.
type Catastrophic string

func (f Catastrophic) Error() string {
	return string(f)
}

var (
	ErrInvalidResponse       = errors.New("ptpip: invalid response")
	ErrFailedToCreateStreams = errors.New("ptpip: failed to create streams to host")
	ErrSocketClosed          = errors.New("ptpip: socket closed")
	ErrNotConnected          = errors.New("ptpip: not connected")
)

// InitFailError is returned from Connect when the camera rejects the
// handshake with an InitFail packet.
type InitFailError uint32

func (e InitFailError) Error() string {
	return fmt.Sprintf("ptpip: init failed, reason 0x%x", uint32(e))
}

// Upper bound for a single packet. Object data travels as many data
// packets, so anything above this means framing was lost.
const maxPacketLength = 64 << 20

type DebugFlags struct {
	Stream  bool
	Session bool
	Data    bool
	Relay   bool
}
