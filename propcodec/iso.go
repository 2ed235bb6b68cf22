package propcodec

import (
	"fmt"

	"github.com/hanwen/go-ptpip/ptpip"
)

// ISOKind tells how an ISO value is produced.
type ISOKind int

const (
	ISONative ISOKind = iota
	ISOExtended
	ISOMultiFrameNR
	ISOMultiFrameNRHigh
	ISOAuto
	ISOMultiFrameNRAuto
	ISOMultiFrameNRHighAuto
)

// Sentinels for the auto variants; they carry no magnitude.
const (
	isoAutoWire                 = 0x00ffffff
	isoMultiFrameNRAutoWire     = 0x01ffffff
	isoMultiFrameNRHighAutoWire = 0x02ffffff
)

// Tags in the high word of a valued ISO.
var isoTags = map[uint16]ISOKind{
	0x0000: ISONative,
	0x1000: ISOExtended,
	0x0100: ISOMultiFrameNR,
	0x0200: ISOMultiFrameNRHigh,
}

// ISO is a sensitivity setting. Value is unused for the auto kinds.
type ISO struct {
	Kind  ISOKind
	Value uint16
}

func ISOFromWire(raw ptpip.DataDependentType) (ISO, bool) {
	v, ok := raw32(raw)
	if !ok {
		return ISO{}, false
	}
	switch v {
	case isoAutoWire:
		return ISO{Kind: ISOAuto}, true
	case isoMultiFrameNRAutoWire:
		return ISO{Kind: ISOMultiFrameNRAuto}, true
	case isoMultiFrameNRHighAutoWire:
		return ISO{Kind: ISOMultiFrameNRHighAuto}, true
	}
	kind, ok := isoTags[uint16(v>>16)]
	if !ok {
		return ISO{}, false
	}
	return ISO{Kind: kind, Value: uint16(v)}, true
}

func (i ISO) ToWire() Wire {
	var v uint32
	switch i.Kind {
	case ISOAuto:
		v = isoAutoWire
	case ISOMultiFrameNRAuto:
		v = isoMultiFrameNRAutoWire
	case ISOMultiFrameNRHighAuto:
		v = isoMultiFrameNRHighAutoWire
	default:
		for tag, k := range isoTags {
			if k == i.Kind {
				v = uint32(tag)<<16 | uint32(i.Value)
			}
		}
	}
	return Wire{Code: ptpip.DPC_SONY_ISO, Type: ptpip.DTC_UINT32, Value: v}
}

func (i ISO) String() string {
	switch i.Kind {
	case ISOAuto:
		return "AUTO"
	case ISOMultiFrameNRAuto:
		return "MFNR AUTO"
	case ISOMultiFrameNRHighAuto:
		return "MFNR HIGH AUTO"
	case ISOExtended:
		return fmt.Sprintf("%d (ext)", i.Value)
	case ISOMultiFrameNR:
		return fmt.Sprintf("MFNR %d", i.Value)
	case ISOMultiFrameNRHigh:
		return fmt.Sprintf("MFNR HIGH %d", i.Value)
	}
	return fmt.Sprintf("%d", i.Value)
}
