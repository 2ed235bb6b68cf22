package propcodec

import (
	"fmt"
	"math"

	"github.com/hanwen/go-ptpip/ptpip"
)

// Aperture is an f-number. It travels in hundredths.
type Aperture float64

func ApertureFromWire(raw ptpip.DataDependentType) (Aperture, bool) {
	v, ok := raw16(raw)
	if !ok {
		return 0, false
	}
	return Aperture(float64(v) / 100), true
}

func (a Aperture) ToWire() Wire {
	return Wire{
		Code:  ptpip.DPC_FNumber,
		Type:  ptpip.DTC_UINT16,
		Value: uint16(math.Round(float64(a) * 100)),
	}
}

func (a Aperture) String() string {
	return fmt.Sprintf("f/%g", float64(a))
}

// ExposureCompensation is a bias in stops. It travels in thousandths of a
// stop as a signed word.
type ExposureCompensation float64

func ExposureCompensationFromWire(raw ptpip.DataDependentType) (ExposureCompensation, bool) {
	var n int16
	switch x := raw.(type) {
	case int16:
		n = x
	case uint16:
		n = int16(x)
	default:
		v, ok := ptpip.ValueToUint64(raw)
		if !ok || int64(v) < math.MinInt16 || int64(v) > math.MaxInt16 {
			return 0, false
		}
		n = int16(v)
	}
	return ExposureCompensation(float64(n) / 1000), true
}

func (e ExposureCompensation) ToWire() Wire {
	return Wire{
		Code:  ptpip.DPC_ExposureBiasCompensation,
		Type:  ptpip.DTC_INT16,
		Value: int16(math.Round(float64(e) * 1000)),
	}
}

func (e ExposureCompensation) String() string {
	return fmt.Sprintf("%+.1f EV", float64(e))
}
