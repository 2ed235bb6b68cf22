package ptpip

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"
	"unicode/utf16"
)

func decodeStr(r io.Reader) (string, error) {
	var szSlice [1]byte
	if _, err := io.ReadFull(r, szSlice[:]); err != nil {
		return "", err
	}
	sz := int(szSlice[0])
	if sz == 0 {
		return "", nil
	}
	data := make([]byte, 2*sz)
	if _, err := io.ReadFull(r, data); err != nil {
		return "", fmt.Errorf("underflow: %w", err)
	}
	units := make([]uint16, 0, sz)
	for i := 0; i < 2*sz; i += 2 {
		units = append(units, byteOrder.Uint16(data[i:]))
	}
	if units[len(units)-1] == 0 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units)), nil
}

func encodeStr(s string) ([]byte, error) {
	var b Buffer
	b.AppendString(s, true)
	if b.Len() > 1+2*255 {
		return nil, fmt.Errorf("string too long")
	}
	return b.Bytes(), nil
}

func kindSize(k reflect.Kind) int {
	switch k {
	case reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32:
		return 4
	case reflect.Int64, reflect.Uint64:
		return 8
	default:
		panic(fmt.Sprintf("unknown kind %v", k))
	}
}

var nullValue reflect.Value

func decodeArray(r io.Reader, t reflect.Type) (reflect.Value, error) {
	var s uint32
	if err := binary.Read(r, byteOrder, &s); err != nil {
		return nullValue, err
	}
	sz := int(s)
	ksz := kindSize(t.Elem().Kind())
	if sz > maxPacketLength/ksz {
		return nullValue, fmt.Errorf("array of %d elements", sz)
	}

	data := make([]byte, sz*ksz)
	n, err := io.ReadFull(r, data)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nullValue, err
	}
	if n < len(data) {
		sz = n / ksz
	}

	slice := reflect.MakeSlice(t, sz, sz)
	for i := 0; i < sz; i++ {
		from := data[i*ksz:]
		var val uint64
		switch ksz {
		case 1:
			val = uint64(from[0])
		case 2:
			val = uint64(byteOrder.Uint16(from))
		case 4:
			val = uint64(byteOrder.Uint32(from))
		case 8:
			val = byteOrder.Uint64(from)
		}
		slice.Index(i).SetUint(val)
	}
	return slice, nil
}

func encodeArray(w io.Writer, val reflect.Value) error {
	sz := uint32(val.Len())
	if err := binary.Write(w, byteOrder, &sz); err != nil {
		return err
	}
	for i := 0; i < int(sz); i++ {
		if err := binary.Write(w, byteOrder, val.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

var timeType = reflect.ValueOf(time.Now()).Type()

const timeFormat = "20060102T150405"
const timeFormatNumTZ = "20060102T150405-0700"

func encodeTime(w io.Writer, f reflect.Value) error {
	t := f.Interface().(time.Time)
	s := ""
	if !t.IsZero() {
		s = t.Format(timeFormat)
	}
	enc, err := encodeStr(s)
	if err != nil {
		return err
	}
	_, err = w.Write(enc)
	return err
}

func decodeTime(r io.Reader, f reflect.Value) error {
	s, err := decodeStr(r)
	if err != nil {
		return err
	}
	var t time.Time
	if s != "" {
		// Sony appends tenths of a second.
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimRight(s, "Z")

		t, err = time.Parse(timeFormat, s)
		if err != nil {
			t, err = time.Parse(timeFormatNumTZ, s)
			if err != nil {
				return err
			}
		}
	}
	f.Set(reflect.ValueOf(t))
	return nil
}

func decodeField(r io.Reader, f reflect.Value) error {
	if !f.CanAddr() {
		return fmt.Errorf("canaddr false")
	}

	if f.Type() == timeType {
		return decodeTime(r, f)
	}

	switch f.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.Read(r, byteOrder, f.Addr().Interface())
	case reflect.String:
		s, err := decodeStr(r)
		if err != nil {
			return err
		}
		f.SetString(s)
	case reflect.Slice:
		sl, err := decodeArray(r, f.Type())
		if err != nil {
			return err
		}
		f.Set(sl)
	case reflect.Struct:
		return decodeStruct(r, f)
	default:
		return fmt.Errorf("unimplemented kind %v", f.Kind())
	}
	return nil
}

func encodeField(w io.Writer, f reflect.Value) error {
	if f.Type() == timeType {
		return encodeTime(w, f)
	}

	switch f.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return binary.Write(w, byteOrder, f.Interface())
	case reflect.String:
		enc, err := encodeStr(f.String())
		if err != nil {
			return err
		}
		_, err = w.Write(enc)
		return err
	case reflect.Slice:
		return encodeArray(w, f)
	case reflect.Struct:
		for i := 0; i < f.NumField(); i++ {
			if err := encodeField(w, f.Field(i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unimplemented kind %v", f.Kind())
	}
}

func decodeStruct(r io.Reader, val reflect.Value) error {
	for i := 0; i < val.NumField(); i++ {
		if err := decodeField(r, val.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

// Decode PTP dataset into data structure.
func Decode(r io.Reader, iface interface{}) error {
	if decoder, ok := iface.(Decoder); ok {
		return decoder.Decode(r)
	}
	val := reflect.ValueOf(iface)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("need ptr argument: %T", iface)
	}
	return decodeStruct(r, val.Elem())
}

// Encode data structure into a PTP dataset.
func Encode(w io.Writer, iface interface{}) error {
	if encoder, ok := iface.(Encoder); ok {
		return encoder.Encode(w)
	}
	val := reflect.ValueOf(iface)
	if val.Kind() != reflect.Ptr {
		return fmt.Errorf("need ptr argument: %T", iface)
	}
	return encodeField(w, val.Elem())
}

func (oi *ObjectInfo) Decode(r io.Reader) error {
	if err := Decode(r, &oi.ObjectInfoFixed); err != nil {
		return err
	}
	val := reflect.ValueOf(oi).Elem()
	for i := 1; i < val.NumField(); i++ {
		err := decodeField(r, val.Field(i))
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (oi *ObjectInfo) Encode(w io.Writer) error {
	return encodeField(w, reflect.ValueOf(oi).Elem())
}

// Property records.

// ReadValue decodes one value of type dt at off, returning the value and
// its encoded size.
func ReadValue(b *Buffer, dt DataTypeSelector, off int) (DataDependentType, int, bool) {
	if isArrayType(dt) {
		count, ok := b.Uint32(off)
		if !ok || int64(count) > int64(b.Len()) {
			return nil, 0, false
		}
		n := 4
		vals := make([]DataDependentType, 0, count)
		for i := uint32(0); i < count; i++ {
			v, sz, ok := ReadValue(b, dt&^0x4000, off+n)
			if !ok {
				return nil, 0, false
			}
			vals = append(vals, v)
			n += sz
		}
		return vals, n, true
	}

	switch dt {
	case DTC_INT8:
		v, ok := b.Uint8(off)
		return int8(v), 1, ok
	case DTC_UINT8:
		v, ok := b.Uint8(off)
		return v, 1, ok
	case DTC_INT16:
		v, ok := b.Uint16(off)
		return int16(v), 2, ok
	case DTC_UINT16:
		v, ok := b.Uint16(off)
		return v, 2, ok
	case DTC_INT32:
		v, ok := b.Uint32(off)
		return int32(v), 4, ok
	case DTC_UINT32:
		v, ok := b.Uint32(off)
		return v, 4, ok
	case DTC_INT64:
		v, ok := b.Uint64(off)
		return int64(v), 8, ok
	case DTC_UINT64:
		v, ok := b.Uint64(off)
		return v, 8, ok
	case DTC_INT128, DTC_UINT128:
		var v [16]byte
		if b.Len() < off+16 || off < 0 {
			return nil, 0, false
		}
		copy(v[:], b.Bytes()[off:off+16])
		return v, 16, true
	case DTC_STR:
		s, n, ok := b.ReadString(off)
		return s, n, ok
	case DTC_SONY_U8STR:
		sz, ok := b.Uint8(off)
		if !ok || b.Len() < off+1+int(sz) {
			return nil, 0, false
		}
		s := string(b.Bytes()[off+1 : off+1+int(sz)])
		return strings.TrimRight(s, "\x00"), 1 + int(sz), true
	}
	return nil, 0, false
}

// AppendValue writes v using the wire encoding for dt.
func AppendValue(b *Buffer, dt DataTypeSelector, v DataDependentType) error {
	if isArrayType(dt) {
		vals, ok := v.([]DataDependentType)
		if !ok {
			return fmt.Errorf("value %v (%T) is not an array", v, v)
		}
		b.AppendUint32(uint32(len(vals)))
		for _, e := range vals {
			if err := AppendValue(b, dt&^0x4000, e); err != nil {
				return err
			}
		}
		return nil
	}

	switch dt {
	case DTC_STR:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("value %v (%T) is not a string", v, v)
		}
		b.AppendString(s, true)
		return nil
	case DTC_INT128, DTC_UINT128:
		a, ok := v.([16]byte)
		if !ok {
			return fmt.Errorf("value %v (%T) is not 128 bits", v, v)
		}
		b.Append(a[:])
		return nil
	}
	n, ok := ValueToUint64(v)
	if !ok {
		return fmt.Errorf("value %v (%T) is not an integer", v, v)
	}
	switch dt {
	case DTC_INT8, DTC_UINT8:
		b.AppendUint8(uint8(n))
	case DTC_INT16, DTC_UINT16:
		b.AppendUint16(uint16(n))
	case DTC_INT32, DTC_UINT32:
		b.AppendUint32(uint32(n))
	case DTC_INT64, DTC_UINT64:
		b.AppendUint64(n)
	default:
		return fmt.Errorf("data type 0x%x not supported", uint16(dt))
	}
	return nil
}

func isArrayType(dt DataTypeSelector) bool {
	return dt >= DTC_AINT8 && dt <= DTC_AUINT64
}

// ValueToUint64 returns the bit pattern of an integer value, sign
// extended for signed types. Strings and other types report false.
func ValueToUint64(v DataDependentType) (uint64, bool) {
	switch x := v.(type) {
	case int8:
		return uint64(int64(x)), true
	case uint8:
		return uint64(x), true
	case int16:
		return uint64(int64(x)), true
	case uint16:
		return uint64(x), true
	case int32:
		return uint64(int64(x)), true
	case uint32:
		return uint64(x), true
	case int64:
		return uint64(x), true
	case uint64:
		return x, true
	case int:
		return uint64(int64(x)), true
	}
	return 0, false
}

func readValues(b *Buffer, dt DataTypeSelector, off int) ([]DataDependentType, int, bool) {
	count, ok := b.Uint16(off)
	if !ok {
		return nil, 0, false
	}
	n := 2
	vals := make([]DataDependentType, 0, count)
	for i := 0; i < int(count); i++ {
		v, sz, ok := ReadValue(b, dt, off+n)
		if !ok {
			return nil, 0, false
		}
		vals = append(vals, v)
		n += sz
	}
	return vals, n, true
}

// DecodeDeviceProperty decodes the property record starting at off.
func DecodeDeviceProperty(b *Buffer, off int) (*DeviceProperty, error) {
	start := off
	bad := func(what string) (*DeviceProperty, error) {
		return nil, fmt.Errorf("%w: property record at %d: short %s", ErrInvalidResponse, start, what)
	}

	code, ok := b.Uint16(off)
	if !ok {
		return bad("code")
	}
	dt, ok := b.Uint16(off + 2)
	if !ok {
		return bad("data type")
	}
	p := &DeviceProperty{Code: code, DataType: DataTypeSelector(dt)}
	if p.GetSetSupported, ok = b.Uint8(off + 4); !ok {
		return bad("get/set")
	}
	if p.GetSetAvailable, ok = b.Uint8(off + 5); !ok {
		return bad("get/set")
	}
	off += 6

	var sz int
	if p.Factory, sz, ok = ReadValue(b, p.DataType, off); !ok {
		return bad(fmt.Sprintf("factory value (type 0x%x)", dt))
	}
	off += sz
	if p.Current, sz, ok = ReadValue(b, p.DataType, off); !ok {
		return bad("current value")
	}
	off += sz
	if p.FormFlag, ok = b.Uint8(off); !ok {
		return bad("form flag")
	}
	off++

	switch p.FormFlag {
	case DPFF_Range:
		f := &PropDescRangeForm{}
		for _, dst := range []*DataDependentType{&f.MinimumValue, &f.MaximumValue, &f.StepSize} {
			if *dst, sz, ok = ReadValue(b, p.DataType, off); !ok {
				return bad("range form")
			}
			off += sz
		}
		p.Form = f
	case DPFF_Enumeration:
		f := &PropDescEnumForm{}
		if f.Values, sz, ok = readValues(b, p.DataType, off); !ok {
			return bad("enumeration")
		}
		off += sz
		if f.Supported, sz, ok = readValues(b, p.DataType, off); !ok {
			return bad("enumeration")
		}
		off += sz
		p.Form = f
	case DPFF_None:
	default:
		return nil, fmt.Errorf("%w: property 0x%x: unknown form flag %d", ErrInvalidResponse, code, p.FormFlag)
	}

	p.Length = off - start
	return p, nil
}

// DecodeDeviceProperties decodes the all-properties dump: a 64-bit record
// count followed by that many records.
func DecodeDeviceProperties(b *Buffer) ([]*DeviceProperty, error) {
	count, ok := b.Uint64(0)
	if !ok {
		return nil, fmt.Errorf("%w: property dump without count", ErrInvalidResponse)
	}
	if count > uint64(b.Len()) {
		return nil, fmt.Errorf("%w: property dump claims %d records in %d bytes", ErrInvalidResponse, count, b.Len())
	}
	props := make([]*DeviceProperty, 0, count)
	off := 8
	for i := uint64(0); i < count; i++ {
		p, err := DecodeDeviceProperty(b, off)
		if err != nil {
			return props, err
		}
		props = append(props, p)
		off += p.Length
	}
	return props, nil
}

// EncodeDeviceProperty is the inverse of DecodeDeviceProperty.
func EncodeDeviceProperty(p *DeviceProperty) ([]byte, error) {
	var b Buffer
	b.AppendUint16(p.Code)
	b.AppendUint16(uint16(p.DataType))
	b.AppendUint8(p.GetSetSupported)
	b.AppendUint8(p.GetSetAvailable)
	if err := AppendValue(&b, p.DataType, p.Factory); err != nil {
		return nil, err
	}
	if err := AppendValue(&b, p.DataType, p.Current); err != nil {
		return nil, err
	}
	b.AppendUint8(p.FormFlag)
	switch f := p.Form.(type) {
	case *PropDescRangeForm:
		for _, v := range []DataDependentType{f.MinimumValue, f.MaximumValue, f.StepSize} {
			if err := AppendValue(&b, p.DataType, v); err != nil {
				return nil, err
			}
		}
	case *PropDescEnumForm:
		for _, list := range [][]DataDependentType{f.Values, f.Supported} {
			b.AppendUint16(uint16(len(list)))
			for _, v := range list {
				if err := AppendValue(&b, p.DataType, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return b.Bytes(), nil
}
