// Package propcodec converts camera property values between their wire
// encoding and typed settings.
package propcodec

import (
	"fmt"
	"math"

	"github.com/hanwen/go-ptpip/ptpip"
)

// Wire is the encoded form of a setting: the property it belongs to, the
// data type it is sent as and the raw value.
type Wire struct {
	Code  uint16
	Type  ptpip.DataTypeSelector
	Value ptpip.DataDependentType
}

func (w Wire) String() string {
	return fmt.Sprintf("%s %s=%v", ptpip.DPC_names[int(w.Code)], ptpip.DTC_names[int(w.Type)], w.Value)
}

// Value is a decoded camera setting.
type Value interface {
	ToWire() Wire
	String() string
}

// rawUint extracts an unsigned wire value that must fit in max.
func rawUint(raw ptpip.DataDependentType, max uint64) (uint64, bool) {
	v, ok := ptpip.ValueToUint64(raw)
	if !ok || v > max {
		return 0, false
	}
	return v, true
}

func raw8(raw ptpip.DataDependentType) (uint8, bool) {
	v, ok := rawUint(raw, math.MaxUint8)
	return uint8(v), ok
}

func raw16(raw ptpip.DataDependentType) (uint16, bool) {
	v, ok := rawUint(raw, math.MaxUint16)
	return uint16(v), ok
}

func raw32(raw ptpip.DataDependentType) (uint32, bool) {
	v, ok := rawUint(raw, math.MaxUint32)
	return uint32(v), ok
}

func name(names map[uint32]string, v uint32, prefix string) string {
	if n, ok := names[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(0x%x)", prefix, v)
}

// enum is a closed table of wire codes for one property.
type enum struct {
	code  uint16
	typ   ptpip.DataTypeSelector
	names map[uint32]string
}

func (e *enum) decode(raw ptpip.DataDependentType) (uint32, bool) {
	v, ok := raw32(raw)
	if !ok {
		return 0, false
	}
	_, ok = e.names[v]
	return v, ok
}

func (e *enum) wire(v uint32) Wire {
	return Wire{Code: e.code, Type: e.typ, Value: sized(e.typ, v)}
}

func (e *enum) name(v uint32) string {
	return name(e.names, v, ptpip.DPC_names[int(e.code)])
}

// sized converts v to the Go type carried by dt.
func sized(dt ptpip.DataTypeSelector, v uint32) ptpip.DataDependentType {
	switch dt {
	case ptpip.DTC_UINT8:
		return uint8(v)
	case ptpip.DTC_UINT16:
		return uint16(v)
	}
	return v
}
