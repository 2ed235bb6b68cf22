package propcodec

import (
	"fmt"

	"github.com/hanwen/go-ptpip/ptpip"
)

// ShutterSpeed is an exposure time of Numerator/Denominator seconds. The
// zero value is bulb.
type ShutterSpeed struct {
	Numerator   uint16
	Denominator uint16
}

var Bulb = ShutterSpeed{}

func (s ShutterSpeed) IsBulb() bool {
	return s == Bulb
}

// ShutterSpeedFromWire splits the value: the low word is the denominator,
// the high word the numerator.
func ShutterSpeedFromWire(raw ptpip.DataDependentType) (ShutterSpeed, bool) {
	v, ok := raw32(raw)
	if !ok {
		return ShutterSpeed{}, false
	}
	return ShutterSpeed{Numerator: uint16(v >> 16), Denominator: uint16(v)}, true
}

func (s ShutterSpeed) ToWire() Wire {
	return Wire{
		Code:  ptpip.DPC_SONY_ShutterSpeed,
		Type:  ptpip.DTC_UINT32,
		Value: uint32(s.Numerator)<<16 | uint32(s.Denominator),
	}
}

// Seconds returns the exposure time, or 0 for bulb.
func (s ShutterSpeed) Seconds() float64 {
	if s.Denominator == 0 {
		return 0
	}
	return float64(s.Numerator) / float64(s.Denominator)
}

func (s ShutterSpeed) String() string {
	switch {
	case s.IsBulb():
		return "BULB"
	case s.Denominator == 1:
		return fmt.Sprintf("%d\"", s.Numerator)
	case s.Numerator == 1:
		return fmt.Sprintf("1/%d", s.Denominator)
	case s.Denominator == 0:
		return fmt.Sprintf("%d/0", s.Numerator)
	}
	return fmt.Sprintf("%g\"", s.Seconds())
}
