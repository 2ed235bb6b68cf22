package propcodec

import (
	"sort"

	"github.com/hanwen/go-ptpip/ptpip"
)

// Strategy decodes the raw value of one property.
type Strategy func(raw ptpip.DataDependentType) (Value, bool)

func value(v Value, ok bool) (Value, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

var strategies = map[uint16]Strategy{
	ptpip.DPC_SONY_ISO: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ISOFromWire(r))
	},
	ptpip.DPC_SONY_ShutterSpeed: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ShutterSpeedFromWire(r))
	},
	ptpip.DPC_FNumber: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ApertureFromWire(r))
	},
	ptpip.DPC_ExposureBiasCompensation: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ExposureCompensationFromWire(r))
	},
	ptpip.DPC_ExposureProgramMode: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ExposureModeFromWire(r))
	},
	ptpip.DPC_SONY_ExposureProgramModeControl: func(r ptpip.DataDependentType) (Value, bool) {
		return value(DialControlFromWire(r))
	},
	ptpip.DPC_WhiteBalance: func(r ptpip.DataDependentType) (Value, bool) {
		return value(WhiteBalanceFromWire(r))
	},
	ptpip.DPC_FocusMode: func(r ptpip.DataDependentType) (Value, bool) {
		return value(FocusModeFromWire(r))
	},
	ptpip.DPC_SONY_FocusFound: func(r ptpip.DataDependentType) (Value, bool) {
		return value(FocusStatusFromWire(r))
	},
	ptpip.DPC_FlashMode: func(r ptpip.DataDependentType) (Value, bool) {
		return value(FlashModeFromWire(r))
	},
	ptpip.DPC_SONY_StillFormat: func(r ptpip.DataDependentType) (Value, bool) {
		return value(StillFormatFromWire(r))
	},
	ptpip.DPC_SONY_StillQuality: func(r ptpip.DataDependentType) (Value, bool) {
		return value(StillQualityFromWire(r))
	},
	ptpip.DPC_SONY_MovieFormat: func(r ptpip.DataDependentType) (Value, bool) {
		return value(MovieFormatFromWire(r))
	},
	ptpip.DPC_SONY_MovieQuality: func(r ptpip.DataDependentType) (Value, bool) {
		return value(MovieQualityFromWire(r))
	},
	ptpip.DPC_StillCaptureMode: func(r ptpip.DataDependentType) (Value, bool) {
		return value(StillCaptureModeFromWire(r))
	},
	ptpip.DPC_SONY_ExposureSettingsLockStatus: func(r ptpip.DataDependentType) (Value, bool) {
		return value(ExposureLockStatusFromWire(r))
	},
	ptpip.DPC_SONY_LiveViewQuality: func(r ptpip.DataDependentType) (Value, bool) {
		return value(LiveViewQualityFromWire(r))
	},
}

// Lookup returns the decoder for property code.
func Lookup(code uint16) (Strategy, bool) {
	s, ok := strategies[code]
	return s, ok
}

// Codes lists the properties with a decoder, in ascending order.
func Codes() []uint16 {
	var codes []uint16
	for c := range strategies {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// FromWire decodes raw as a value of property code.
func FromWire(code uint16, raw ptpip.DataDependentType) (Value, bool) {
	s, ok := strategies[code]
	if !ok {
		return nil, false
	}
	return s(raw)
}

// Property is a property record with its values decoded. Values the
// codec does not recognise are left out of the lists and leave Current
// nil.
type Property struct {
	Code      uint16
	Current   Value
	Available []Value
	Supported []Value
	Writable  bool

	Raw *ptpip.DeviceProperty
}

func (p *Property) Name() string {
	return ptpip.DPC_names[int(p.Code)]
}

// Find returns the settable value whose String is name.
func (p *Property) Find(name string) (Value, bool) {
	for _, list := range [][]Value{p.Available, p.Supported} {
		for _, v := range list {
			if v.String() == name {
				return v, true
			}
		}
	}
	if p.Current != nil && p.Current.String() == name {
		return p.Current, true
	}
	return nil, false
}

// Decode decodes a property record. It returns false if the property has
// no decoder.
func Decode(d *ptpip.DeviceProperty) (*Property, bool) {
	s, ok := strategies[d.Code]
	if !ok {
		return nil, false
	}
	p := &Property{
		Code:     d.Code,
		Writable: d.Writable(),
		Raw:      d,
	}
	p.Current, _ = s(d.Current)
	if form, ok := d.Form.(*ptpip.PropDescEnumForm); ok {
		p.Available = decodeAll(s, form.Values)
		p.Supported = decodeAll(s, form.Supported)
	}
	return p, true
}

func decodeAll(s Strategy, raw []ptpip.DataDependentType) []Value {
	var vals []Value
	for _, r := range raw {
		if v, ok := s(r); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// DecodeAll decodes the records that have a decoder, keyed by code.
func DecodeAll(props []*ptpip.DeviceProperty) map[uint16]*Property {
	out := map[uint16]*Property{}
	for _, d := range props {
		if p, ok := Decode(d); ok {
			out[d.Code] = p
		}
	}
	return out
}
