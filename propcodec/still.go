package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

type StillFormat uint8

const (
	StillRaw        StillFormat = 0x01
	StillRawAndJPEG StillFormat = 0x02
	StillJPEG       StillFormat = 0x03
)

var stillFormats = &enum{
	code: ptpip.DPC_SONY_StillFormat,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(StillRaw):        "RAW",
		uint32(StillRawAndJPEG): "RAW+JPEG",
		uint32(StillJPEG):       "JPEG",
	},
}

func StillFormatFromWire(raw ptpip.DataDependentType) (StillFormat, bool) {
	v, ok := stillFormats.decode(raw)
	return StillFormat(v), ok
}

func (f StillFormat) ToWire() Wire   { return stillFormats.wire(uint32(f)) }
func (f StillFormat) String() string { return stillFormats.name(uint32(f)) }

type StillQuality uint8

const (
	QualityExtraFine StillQuality = 0x01
	QualityFine      StillQuality = 0x02
	QualityStandard  StillQuality = 0x03
)

var stillQualities = &enum{
	code: ptpip.DPC_SONY_StillQuality,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(QualityExtraFine): "extra fine",
		uint32(QualityFine):      "fine",
		uint32(QualityStandard):  "standard",
	},
}

func StillQualityFromWire(raw ptpip.DataDependentType) (StillQuality, bool) {
	v, ok := stillQualities.decode(raw)
	return StillQuality(v), ok
}

func (q StillQuality) ToWire() Wire   { return stillQualities.wire(uint32(q)) }
func (q StillQuality) String() string { return stillQualities.name(uint32(q)) }
