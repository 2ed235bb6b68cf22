package propcodec

import (
	"github.com/hanwen/go-ptpip/ptpip"
)

// ExposureLockStatus is the state of the exposure settings lock.
type ExposureLockStatus uint8

const (
	ExposureLockNormal    ExposureLockStatus = 0x01
	ExposureLockStandby   ExposureLockStatus = 0x02
	ExposureLockLocked    ExposureLockStatus = 0x03
	ExposureLockBuffering ExposureLockStatus = 0x04
	ExposureLockRecording ExposureLockStatus = 0x05
)

var exposureLockStatuses = &enum{
	code: ptpip.DPC_SONY_ExposureSettingsLockStatus,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(ExposureLockNormal):    "normal",
		uint32(ExposureLockStandby):   "standby",
		uint32(ExposureLockLocked):    "locked",
		uint32(ExposureLockBuffering): "buffering",
		uint32(ExposureLockRecording): "recording",
	},
}

func ExposureLockStatusFromWire(raw ptpip.DataDependentType) (ExposureLockStatus, bool) {
	v, ok := exposureLockStatuses.decode(raw)
	return ExposureLockStatus(v), ok
}

func (s ExposureLockStatus) ToWire() Wire   { return exposureLockStatuses.wire(uint32(s)) }
func (s ExposureLockStatus) String() string { return exposureLockStatuses.name(uint32(s)) }

// LiveViewQuality trades live view frame rate against image quality.
type LiveViewQuality uint8

const (
	LiveViewDisplaySpeed LiveViewQuality = 0x01
	LiveViewImageQuality LiveViewQuality = 0x02
)

var liveViewQualities = &enum{
	code: ptpip.DPC_SONY_LiveViewQuality,
	typ:  ptpip.DTC_UINT8,
	names: map[uint32]string{
		uint32(LiveViewDisplaySpeed): "display speed",
		uint32(LiveViewImageQuality): "image quality",
	},
}

func LiveViewQualityFromWire(raw ptpip.DataDependentType) (LiveViewQuality, bool) {
	v, ok := liveViewQualities.decode(raw)
	return LiveViewQuality(v), ok
}

func (q LiveViewQuality) ToWire() Wire   { return liveViewQualities.wire(uint32(q)) }
func (q LiveViewQuality) String() string { return liveViewQualities.name(uint32(q)) }
