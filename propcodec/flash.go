package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

type FlashMode uint16

const (
	FlashAuto        FlashMode = 0x0001
	FlashOff         FlashMode = 0x0002
	FlashFill        FlashMode = 0x0003
	FlashSlowSynchro FlashMode = 0x8001
	FlashRearSync    FlashMode = 0x8003
)

var flashModes = &enum{
	code: ptpip.DPC_FlashMode,
	typ:  ptpip.DTC_UINT16,
	names: map[uint32]string{
		uint32(FlashAuto):        "auto",
		uint32(FlashOff):         "off",
		uint32(FlashFill):        "fill",
		uint32(FlashSlowSynchro): "slow sync",
		uint32(FlashRearSync):    "rear sync",
	},
}

func FlashModeFromWire(raw ptpip.DataDependentType) (FlashMode, bool) {
	v, ok := flashModes.decode(raw)
	return FlashMode(v), ok
}

func (f FlashMode) ToWire() Wire   { return flashModes.wire(uint32(f)) }
func (f FlashMode) String() string { return flashModes.name(uint32(f)) }
