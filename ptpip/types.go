// Package ptpip implements the PTP/IP camera control protocol: packet
// framing over a control and an event TCP connection, the init handshake,
// transaction correlation, data phase reassembly and event delivery.
// Beyond the protocol engine, it implements the common read operations in
// ops.go; these may serve as an example how to implement further ones.
package ptpip

import (
	"io"
	"time"
)

type DeviceInfo struct {
	StandardVersion           uint16
	VendorExtensionID         uint32
	VendorExtensionVersion    uint16
	VendorExtensionDesc       string
	FunctionalMode            uint16
	OperationsSupported       []uint16
	EventsSupported           []uint16
	DevicePropertiesSupported []uint16
	CaptureFormats            []uint16
	ImageFormats              []uint16
	Manufacturer              string
	Model                     string
	DeviceVersion             string
	SerialNumber              string
}

// DataTypeSelector is the wire tag (DTC_) that selects the Go type held in
// a DataDependentType.
type DataTypeSelector uint16

// DataDependentType holds int8, uint8, int16, uint16, int32, uint32,
// int64, uint64, [16]byte, string or []DataDependentType for the array
// types, as selected by a DataTypeSelector.
type DataDependentType interface{}

// The Decoder interface is for types that need special decoding
// support.
type Decoder interface {
	Decode(r io.Reader) error
}

type Encoder interface {
	Encode(w io.Writer) error
}

type PropDescRangeForm struct {
	MinimumValue DataDependentType
	MaximumValue DataDependentType
	StepSize     DataDependentType
}

// PropDescEnumForm lists the values that can be set right now and the
// values the camera supports at all.
type PropDescEnumForm struct {
	Values    []DataDependentType
	Supported []DataDependentType
}

// DeviceProperty is one self describing property record as returned by
// GetDevicePropDesc and the Sony all-properties dump.
type DeviceProperty struct {
	Code            uint16
	DataType        DataTypeSelector
	GetSetSupported uint8
	GetSetAvailable uint8
	Factory         DataDependentType
	Current         DataDependentType
	FormFlag        uint8

	// Form is nil, *PropDescRangeForm or *PropDescEnumForm.
	Form interface{}

	// Length is the number of bytes the record occupied.
	Length int
}

// Writable reports whether the camera currently accepts a new value.
func (d *DeviceProperty) Writable() bool {
	return d.GetSetSupported == DPGS_GetSet && d.GetSetAvailable == DPGA_GetSet
}

type ObjectInfoFixed struct {
	StorageID           uint32
	ObjectFormat        uint16
	ProtectionStatus    uint16
	CompressedSize      uint32
	ThumbFormat         uint16
	ThumbCompressedSize uint32
	ThumbPixWidth       uint32
	ThumbPixHeight      uint32
	ImagePixWidth       uint32
	ImagePixHeight      uint32
	ImageBitDepth       uint32
	ParentObject        uint32
	AssociationType     uint16
	AssociationDesc     uint32
	SequenceNumber      uint32
	Filename            string
}

// ObjectInfo describes an object on the camera. Sony cameras stop the
// dataset after the file name, leaving the trailing fields zero.
type ObjectInfo struct {
	ObjectInfoFixed
	CaptureDate      time.Time
	ModificationDate time.Time
	Keywords         string
}

type Uint32Array struct {
	Values []uint32
}
