package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

type FocusMode uint16

const (
	FocusManual         FocusMode = 0x0001
	FocusAutoSingle     FocusMode = 0x0002
	FocusAutoContinuous FocusMode = 0x8004
	FocusAuto           FocusMode = 0x8005
	FocusDirectManual   FocusMode = 0x8006
)

var focusModes = &enum{
	code: ptpip.DPC_FocusMode,
	typ:  ptpip.DTC_UINT16,
	names: map[uint32]string{
		uint32(FocusManual):         "MF",
		uint32(FocusAutoSingle):     "AF-S",
		uint32(FocusAutoContinuous): "AF-C",
		uint32(FocusAuto):           "AF-A",
		uint32(FocusDirectManual):   "DMF",
	},
}

func FocusModeFromWire(raw ptpip.DataDependentType) (FocusMode, bool) {
	v, ok := focusModes.decode(raw)
	return FocusMode(v), ok
}

func (f FocusMode) ToWire() Wire   { return focusModes.wire(uint32(f)) }
func (f FocusMode) String() string { return focusModes.name(uint32(f)) }

// FocusStatus is the autofocus state. The camera reports only whether it
// has focus, so Focusing and Failed are sent as NotFocusing.
type FocusStatus int

const (
	NotFocusing FocusStatus = iota
	Focused
	Focusing
	FocusFailed
)

var focusStatusNames = map[FocusStatus]string{
	NotFocusing: "not focusing",
	Focused:     "focused",
	Focusing:    "focusing",
	FocusFailed: "failed",
}

// FocusStatusFromWire maps 1 to NotFocusing and both 2 and 3 to Focused.
func FocusStatusFromWire(raw ptpip.DataDependentType) (FocusStatus, bool) {
	v, ok := raw8(raw)
	if !ok {
		return 0, false
	}
	switch v {
	case 0x01:
		return NotFocusing, true
	case 0x02, 0x03:
		return Focused, true
	}
	return 0, false
}

func (f FocusStatus) ToWire() Wire {
	v := uint8(0x01)
	if f == Focused {
		v = 0x02
	}
	return Wire{Code: ptpip.DPC_SONY_FocusFound, Type: ptpip.DTC_UINT8, Value: v}
}

func (f FocusStatus) String() string {
	return focusStatusNames[f]
}
