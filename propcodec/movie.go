package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

type MovieFormat uint8

const (
	MovieNone    MovieFormat = 0x00
	MovieDVD     MovieFormat = 0x01
	MovieM2PS    MovieFormat = 0x02
	MovieAVCHD   MovieFormat = 0x03
	MovieMP4     MovieFormat = 0x04
	MovieDV      MovieFormat = 0x05
	MovieXAVC    MovieFormat = 0x06
	MovieMXF     MovieFormat = 0x07
	MovieXAVCS4K MovieFormat = 0x08
	MovieXAVCSHD MovieFormat = 0x09
)

var movieFormats = &enum{
	code: ptpip.DPC_SONY_MovieFormat,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(MovieNone):    "none",
		uint32(MovieDVD):     "DVD",
		uint32(MovieM2PS):    "M2PS",
		uint32(MovieAVCHD):   "AVCHD",
		uint32(MovieMP4):     "MP4",
		uint32(MovieDV):      "DV",
		uint32(MovieXAVC):    "XAVC",
		uint32(MovieMXF):     "MXF",
		uint32(MovieXAVCS4K): "XAVC S 4K",
		uint32(MovieXAVCSHD): "XAVC S HD",
	},
}

func MovieFormatFromWire(raw ptpip.DataDependentType) (MovieFormat, bool) {
	v, ok := movieFormats.decode(raw)
	return MovieFormat(v), ok
}

func (f MovieFormat) ToWire() Wire   { return movieFormats.wire(uint32(f)) }
func (f MovieFormat) String() string { return movieFormats.name(uint32(f)) }

// MovieQuality is a frame rate and bit rate pair. Names follow the camera
// menus; the FX, FH and PS suffixes are AVCHD profiles.
type MovieQuality uint16

const (
	MovieQualityNone MovieQuality = 0x0000
	Movie60p50M      MovieQuality = 0x0001
	Movie30p50M      MovieQuality = 0x0002
	Movie24p50M      MovieQuality = 0x0003
	Movie50p50M      MovieQuality = 0x0004
	Movie25p50M      MovieQuality = 0x0005
	Movie60i24MFX    MovieQuality = 0x0006
	Movie50i24MFX    MovieQuality = 0x0007
	Movie60i17MFH    MovieQuality = 0x0008
	Movie50i17MFH    MovieQuality = 0x0009
	Movie60p28MPS    MovieQuality = 0x000a
	Movie50p28MPS    MovieQuality = 0x000b
	Movie24p24MFX    MovieQuality = 0x000c
	Movie25p24MFX    MovieQuality = 0x000d
	Movie24p17MFH    MovieQuality = 0x000e
	Movie25p17MFH    MovieQuality = 0x000f
	Movie120p50M     MovieQuality = 0x0010
	Movie100p50M     MovieQuality = 0x0011
	Movie30p16M      MovieQuality = 0x0012
	Movie25p16M      MovieQuality = 0x0013
	Movie30p6M       MovieQuality = 0x0014
	Movie25p6M       MovieQuality = 0x0015
	Movie60p28M      MovieQuality = 0x0016
	Movie50p28M      MovieQuality = 0x0017
	Movie60p25M      MovieQuality = 0x0018
	Movie50p25M      MovieQuality = 0x0019
	Movie30p16MAlt   MovieQuality = 0x001a
	Movie25p16MAlt   MovieQuality = 0x001b
	Movie120p100M    MovieQuality = 0x001c
	Movie100p100M    MovieQuality = 0x001d
	Movie120p60M     MovieQuality = 0x001e
	Movie100p60M     MovieQuality = 0x001f
	Movie30p100M     MovieQuality = 0x0020
	Movie25p100M     MovieQuality = 0x0021
	Movie24p100M     MovieQuality = 0x0022
	Movie30p60M      MovieQuality = 0x0023
	Movie25p60M      MovieQuality = 0x0024
	Movie24p60M      MovieQuality = 0x0025
)

var movieQualities = &enum{
	code: ptpip.DPC_SONY_MovieQuality,
	typ:  ptpip.DTC_UINT16,
	names: map[uint32]string{
		uint32(MovieQualityNone): "none",
		uint32(Movie60p50M):      "60p 50M",
		uint32(Movie30p50M):      "30p 50M",
		uint32(Movie24p50M):      "24p 50M",
		uint32(Movie50p50M):      "50p 50M",
		uint32(Movie25p50M):      "25p 50M",
		uint32(Movie60i24MFX):    "60i 24M FX",
		uint32(Movie50i24MFX):    "50i 24M FX",
		uint32(Movie60i17MFH):    "60i 17M FH",
		uint32(Movie50i17MFH):    "50i 17M FH",
		uint32(Movie60p28MPS):    "60p 28M PS",
		uint32(Movie50p28MPS):    "50p 28M PS",
		uint32(Movie24p24MFX):    "24p 24M FX",
		uint32(Movie25p24MFX):    "25p 24M FX",
		uint32(Movie24p17MFH):    "24p 17M FH",
		uint32(Movie25p17MFH):    "25p 17M FH",
		uint32(Movie120p50M):     "120p 50M",
		uint32(Movie100p50M):     "100p 50M",
		uint32(Movie30p16M):      "30p 16M",
		uint32(Movie25p16M):      "25p 16M",
		uint32(Movie30p6M):       "30p 6M",
		uint32(Movie25p6M):       "25p 6M",
		uint32(Movie60p28M):      "60p 28M",
		uint32(Movie50p28M):      "50p 28M",
		uint32(Movie60p25M):      "60p 25M",
		uint32(Movie50p25M):      "50p 25M",
		uint32(Movie30p16MAlt):   "30p 16M (alt)",
		uint32(Movie25p16MAlt):   "25p 16M (alt)",
		uint32(Movie120p100M):    "120p 100M",
		uint32(Movie100p100M):    "100p 100M",
		uint32(Movie120p60M):     "120p 60M",
		uint32(Movie100p60M):     "100p 60M",
		uint32(Movie30p100M):     "30p 100M",
		uint32(Movie25p100M):     "25p 100M",
		uint32(Movie24p100M):     "24p 100M",
		uint32(Movie30p60M):      "30p 60M",
		uint32(Movie25p60M):      "25p 60M",
		uint32(Movie24p60M):      "24p 60M",
	},
}

func MovieQualityFromWire(raw ptpip.DataDependentType) (MovieQuality, bool) {
	v, ok := movieQualities.decode(raw)
	return MovieQuality(v), ok
}

func (q MovieQuality) ToWire() Wire   { return movieQualities.wire(uint32(q)) }
func (q MovieQuality) String() string { return movieQualities.name(uint32(q)) }
