package ptpip

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"
)

const isoPropStr = `1ed2 0600 0101
0000 0000 6400 0000 02
0300 ffff ff00 6400 0000 c800 0000
0200 6400 0000 c800 0000`

const fnumberPropStr = `0750 0400 0101
1801 1801 01
1801 0807 6400`

func parseHex(s string) []byte {
	hex := strings.Replace(s, " ", "", -1)
	hex = strings.Replace(hex, "\n", "", -1)
	buf := bytes.NewBufferString(hex)
	bin := make([]byte, len(hex)/2)

	_, err := fmt.Fscanf(buf, "%x", &bin)
	if err != nil {
		panic(err)
	}
	if buf.Len() > 0 {
		panic("consume")
	}
	return bin
}

func diffIndex(a, b []byte) error {
	l := len(b)
	if len(a) < len(b) {
		l = len(a)
	}

	for i := 0; i < l; i++ {
		if a[i] != b[i] {
			return fmt.Errorf("data idx 0x%x got %x want %x",
				i, a[i], b[i])
		}
	}

	if len(a) != len(b) {
		return fmt.Errorf("length mismatch got %d want %d",
			len(a), len(b))
	}
	return nil
}

func TestDecodeDevicePropertyEnum(t *testing.T) {
	bin := parseHex(isoPropStr)
	p, err := DecodeDeviceProperty(NewBuffer(bin), 0)
	if err != nil {
		t.Fatalf("DecodeDeviceProperty: %v", err)
	}
	if p.Code != DPC_SONY_ISO || p.DataType != DTC_UINT32 || p.Length != len(bin) {
		t.Fatalf("got %v, length %d", p, p.Length)
	}
	if p.Current != uint32(100) || !p.Writable() {
		t.Errorf("got current %v writable %v", p.Current, p.Writable())
	}
	form, ok := p.Form.(*PropDescEnumForm)
	if !ok {
		t.Fatalf("got form %T", p.Form)
	}
	want := []DataDependentType{uint32(0x00ffffff), uint32(100), uint32(200)}
	if !reflect.DeepEqual(form.Values, want) {
		t.Errorf("got values %v, want %v", form.Values, want)
	}
	if len(form.Supported) != 2 {
		t.Errorf("got %d supported values", len(form.Supported))
	}

	enc, err := EncodeDeviceProperty(p)
	if err != nil {
		t.Fatalf("EncodeDeviceProperty: %v", err)
	}
	if err := diffIndex(enc, bin); err != nil {
		t.Error(err)
	}
}

func TestDecodeDevicePropertyRange(t *testing.T) {
	p, err := DecodeDeviceProperty(NewBuffer(parseHex(fnumberPropStr)), 0)
	if err != nil {
		t.Fatalf("DecodeDeviceProperty: %v", err)
	}
	want := &PropDescRangeForm{
		MinimumValue: uint16(280),
		MaximumValue: uint16(1800),
		StepSize:     uint16(100),
	}
	if !reflect.DeepEqual(p.Form, want) {
		t.Errorf("got %#v, want %#v", p.Form, want)
	}
}

func TestDecodeDeviceProperties(t *testing.T) {
	bin := parseHex("0200 0000 0000 0000" + isoPropStr + fnumberPropStr)
	props, err := DecodeDeviceProperties(NewBuffer(bin))
	if err != nil {
		t.Fatalf("DecodeDeviceProperties: %v", err)
	}
	if len(props) != 2 || props[1].Code != DPC_FNumber {
		t.Fatalf("got %v", props)
	}

	_, err = DecodeDeviceProperties(NewBuffer(bin[:len(bin)-1]))
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("truncated dump: got %v", err)
	}

	_, err = DecodeDeviceProperties(NewBuffer(parseHex("ffff 0000 0000 0000")))
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("oversized count: got %v", err)
	}
}

func TestDecodeDevicePropertyBadForm(t *testing.T) {
	_, err := DecodeDeviceProperty(NewBuffer(parseHex("0750 0400 0101 1801 1801 07")), 0)
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("got %v", err)
	}
}

func TestReadValueStrings(t *testing.T) {
	var b Buffer
	if err := AppendValue(&b, DTC_STR, "ILCE"); err != nil {
		t.Fatal(err)
	}
	v, n, ok := ReadValue(&b, DTC_STR, 0)
	if !ok || v != "ILCE" || n != b.Len() {
		t.Errorf("got %v %d %v", v, n, ok)
	}

	b.Reset()
	b.Append(parseHex("05 3132 3300 00"))
	v, n, ok = ReadValue(&b, DTC_SONY_U8STR, 0)
	if !ok || v != "123" || n != 6 {
		t.Errorf("got %q %d %v", v, n, ok)
	}
}

func TestReadValueArray(t *testing.T) {
	var b Buffer
	vals := []DataDependentType{uint16(1), uint16(0x8004)}
	if err := AppendValue(&b, DTC_AUINT16, vals); err != nil {
		t.Fatal(err)
	}
	if err := diffIndex(b.Bytes(), parseHex("0200 0000 0100 0480")); err != nil {
		t.Fatal(err)
	}
	got, _, ok := ReadValue(&b, DTC_AUINT16, 0)
	if !ok || !reflect.DeepEqual(got, vals) {
		t.Errorf("got %v %v", got, ok)
	}

	if err := AppendValue(&b, DTC_UINT16, "x"); err == nil {
		t.Error("AppendValue accepted a string for UINT16")
	}
}

func TestValueToUint64(t *testing.T) {
	if v, ok := ValueToUint64(int8(-1)); !ok || v != ^uint64(0) {
		t.Errorf("int8(-1): got %x %v", v, ok)
	}
	if _, ok := ValueToUint64("1"); ok {
		t.Error("string converted")
	}
}

func objectInfoFixed() ObjectInfoFixed {
	return ObjectInfoFixed{
		StorageID:      0x00010001,
		ObjectFormat:   0x3801,
		CompressedSize: 4096,
		ParentObject:   0xffffffff,
		Filename:       "DSC00001.JPG",
	}
}

func TestObjectInfoSony(t *testing.T) {
	fixed := objectInfoFixed()
	var buf bytes.Buffer
	if err := Encode(&buf, &fixed); err != nil {
		t.Fatal(err)
	}

	var info ObjectInfo
	if err := Decode(bytes.NewReader(buf.Bytes()), &info); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if info.ObjectInfoFixed != fixed {
		t.Errorf("got %#v, want %#v", info.ObjectInfoFixed, fixed)
	}
	if !info.CaptureDate.IsZero() {
		t.Errorf("capture date %v", info.CaptureDate)
	}
}

func TestObjectInfoDates(t *testing.T) {
	fixed := objectInfoFixed()
	var buf bytes.Buffer
	if err := Encode(&buf, &fixed); err != nil {
		t.Fatal(err)
	}
	var b Buffer
	b.AppendString("20240102T030405.0", true)
	b.AppendString("20240102T030405Z", true)
	b.AppendString("", true)
	buf.Write(b.Bytes())

	var info ObjectInfo
	if err := Decode(bytes.NewReader(buf.Bytes()), &info); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if !info.CaptureDate.Equal(want) || !info.ModificationDate.Equal(want) {
		t.Errorf("got %v and %v, want %v", info.CaptureDate, info.ModificationDate, want)
	}
}

func TestDecodeUint32Array(t *testing.T) {
	var arr Uint32Array
	err := Decode(bytes.NewReader(parseHex("0200 0000 0100 0100 0200 0100")), &arr)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(arr.Values, []uint32{0x00010001, 0x00010002}) {
		t.Errorf("got %x", arr.Values)
	}
}
