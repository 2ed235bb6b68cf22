package ptpip

import (
	"bytes"
	"context"
	"fmt"
)

// Transaction describes one request with its optional data phases.
type Transaction struct {
	Code  uint16
	Param []uint32

	// DataIn asks for the data phase the camera sends before its response.
	DataIn bool

	// DataOut, if not nil, is sent after the request.
	DataOut []byte

	// DataPhase overrides the data phase field of the request; by default
	// it follows DataOut.
	DataPhase uint32

	// AnyResponse accepts a response that carries no transaction id.
	AnyResponse bool
}

// TransactionCallback receives the outcome of a transaction. err is an
// RCError when the camera answered with an error code.
type TransactionCallback func(rep *CommandResponse, data []byte, err error)

// Err returns the response code as an error, or nil for OK.
func (r *CommandResponse) Err() error {
	if r.Code == RC_OK {
		return nil
	}
	return RCError(r.Code)
}

// Run starts t under the next transaction id and returns that id.
func (s *Session) Run(t *Transaction, cb TransactionCallback) (uint32, error) {
	tid := s.GetNextTransactionID()
	req := &CommandRequest{
		DataPhase:     t.DataPhase,
		Code:          t.Code,
		TransactionID: tid,
		Param:         t.Param,
	}
	if req.DataPhase == 0 && t.DataOut != nil {
		req.DataPhase = DP_DataOut
	}

	var onResponse ResponseCallback
	if t.DataIn {
		var rep *CommandResponse
		onResponse = func(r *CommandResponse) { rep = r }
		err := s.AwaitData(tid, func(data []byte, err error) {
			if rep == nil {
				rep = &CommandResponse{Code: RC_OK, TransactionID: tid, Tagged: true}
			}
			cb(rep, data, err)
		})
		if err != nil {
			return tid, err
		}
	} else {
		onResponse = func(r *CommandResponse) { cb(r, nil, r.Err()) }
	}

	if err := s.SendCommandRequest(req, onResponse, t.AnyResponse); err != nil {
		s.dropData(tid)
		return tid, err
	}
	if t.DataOut != nil {
		if err := s.SendData(tid, t.DataOut); err != nil {
			return tid, err
		}
	}
	return tid, nil
}

type transactionResult struct {
	rep  *CommandResponse
	data []byte
	err  error
}

// RunTransaction runs t and waits for its outcome, for ctx, or for the
// connection to go away.
func (s *Session) RunTransaction(ctx context.Context, t *Transaction) (*CommandResponse, []byte, error) {
	done := s.Done()
	ch := make(chan transactionResult, 1)
	tid, err := s.Run(t, func(rep *CommandResponse, data []byte, err error) {
		ch <- transactionResult{rep, data, err}
	})
	if err != nil {
		return nil, nil, err
	}
	select {
	case r := <-ch:
		return r.rep, r.data, r.err
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("%s transaction %d: %w", getName(OC_names, int(t.Code)), tid, ctx.Err())
	case <-done:
		return nil, nil, fmt.Errorf("%s transaction %d: %w", getName(OC_names, int(t.Code)), tid, ErrSocketClosed)
	}
}

// fetch runs a data-in transaction and hands the data to decode.
func (s *Session) fetch(t *Transaction, decode func([]byte) error, cb func(error)) {
	t.DataIn = true
	_, err := s.Run(t, func(rep *CommandResponse, data []byte, err error) {
		if err == nil {
			err = decode(data)
		}
		cb(err)
	})
	if err != nil {
		cb(err)
	}
}

func wait(ctx context.Context, done <-chan struct{}, start func(cb func(error))) error {
	ch := make(chan error, 1)
	start(func(err error) { ch <- err })
	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return ErrSocketClosed
	}
}

// GetDevicePropDescFor fetches the description of one property.
func (s *Session) GetDevicePropDescFor(code uint16, cb func(*DeviceProperty, error)) {
	var prop *DeviceProperty
	s.fetch(&Transaction{Code: OC_GetDevicePropDesc, Param: []uint32{uint32(code)}},
		func(data []byte) error {
			var err error
			prop, err = DecodeDeviceProperty(NewBuffer(data), 0)
			return err
		},
		func(err error) { cb(prop, err) })
}

// GetAllDevicePropDesc fetches every property record. With partial set the
// camera only sends the properties that changed since the last call.
func (s *Session) GetAllDevicePropDesc(partial bool, cb func([]*DeviceProperty, error)) {
	arg := uint32(0)
	if partial {
		arg = 1
	}
	var props []*DeviceProperty
	s.fetch(&Transaction{Code: OC_SONY_GetAllDevicePropData, Param: []uint32{arg}},
		func(data []byte) error {
			var err error
			props, err = DecodeDeviceProperties(NewBuffer(data))
			return err
		},
		func(err error) { cb(props, err) })
}

// GetObjectInfoFor fetches the dataset describing object handle.
func (s *Session) GetObjectInfoFor(handle uint32, cb func(*ObjectInfo, error)) {
	info := &ObjectInfo{}
	s.fetch(&Transaction{Code: OC_GetObjectInfo, Param: []uint32{handle}},
		func(data []byte) error {
			if err := Decode(bytes.NewReader(data), info); err != nil {
				return fmt.Errorf("%w: object info: %v", ErrInvalidResponse, err)
			}
			return nil
		},
		func(err error) {
			if err != nil {
				cb(nil, err)
				return
			}
			cb(info, nil)
		})
}

func (s *Session) GetDevicePropDescContext(ctx context.Context, code uint16) (*DeviceProperty, error) {
	var prop *DeviceProperty
	err := wait(ctx, s.Done(), func(cb func(error)) {
		s.GetDevicePropDescFor(code, func(p *DeviceProperty, err error) {
			prop = p
			cb(err)
		})
	})
	return prop, err
}

func (s *Session) GetAllDevicePropDescContext(ctx context.Context, partial bool) ([]*DeviceProperty, error) {
	var props []*DeviceProperty
	err := wait(ctx, s.Done(), func(cb func(error)) {
		s.GetAllDevicePropDesc(partial, func(p []*DeviceProperty, err error) {
			props = p
			cb(err)
		})
	})
	return props, err
}

func (s *Session) GetObjectInfoContext(ctx context.Context, handle uint32) (*ObjectInfo, error) {
	var info *ObjectInfo
	err := wait(ctx, s.Done(), func(cb func(error)) {
		s.GetObjectInfoFor(handle, func(i *ObjectInfo, err error) {
			info = i
			cb(err)
		})
	})
	return info, err
}

func (s *Session) GetDeviceInfo(ctx context.Context) (*DeviceInfo, error) {
	_, data, err := s.RunTransaction(ctx, &Transaction{Code: OC_GetDeviceInfo, DataIn: true})
	if err != nil {
		return nil, err
	}
	info := &DeviceInfo{}
	if err := Decode(bytes.NewReader(data), info); err != nil {
		return nil, fmt.Errorf("%w: device info: %v", ErrInvalidResponse, err)
	}
	return info, nil
}

// OpenSession opens PTP session sessionID. Some cameras answer without a
// transaction id, so any response is accepted.
func (s *Session) OpenSession(ctx context.Context, sessionID uint32) error {
	_, _, err := s.RunTransaction(ctx, &Transaction{
		Code:        OC_OpenSession,
		Param:       []uint32{sessionID},
		AnyResponse: true,
	})
	return err
}

func (s *Session) CloseSession(ctx context.Context) error {
	_, _, err := s.RunTransaction(ctx, &Transaction{Code: OC_CloseSession, AnyResponse: true})
	return err
}

// SDIOConnect runs one step of the Sony remote control handshake.
func (s *Session) SDIOConnect(ctx context.Context, phase uint32) error {
	_, _, err := s.RunTransaction(ctx, &Transaction{
		Code:        OC_SONY_SDIOConnect,
		Param:       []uint32{phase, 0, 0},
		AnyResponse: true,
	})
	return err
}

func (s *Session) SetDevicePropValue(ctx context.Context, code uint16, dt DataTypeSelector, value DataDependentType) error {
	return s.sendValue(ctx, OC_SetDevicePropValue, code, dt, value)
}

// SetControlDeviceA sets a Sony camera setting such as ISO or shutter
// speed.
func (s *Session) SetControlDeviceA(ctx context.Context, code uint16, dt DataTypeSelector, value DataDependentType) error {
	return s.sendValue(ctx, OC_SONY_SetControlDeviceA, code, dt, value)
}

// SetControlDeviceB sends a Sony control value. A nil value sends the
// request with a data out phase but no data, which ends a running control
// such as zoom.
func (s *Session) SetControlDeviceB(ctx context.Context, code uint16, dt DataTypeSelector, value DataDependentType) error {
	if value == nil {
		_, _, err := s.RunTransaction(ctx, &Transaction{
			Code:      OC_SONY_SetControlDeviceB,
			Param:     []uint32{uint32(code)},
			DataPhase: DP_DataOut,
		})
		return err
	}
	return s.sendValue(ctx, OC_SONY_SetControlDeviceB, code, dt, value)
}

func (s *Session) sendValue(ctx context.Context, op uint16, code uint16, dt DataTypeSelector, value DataDependentType) error {
	var b Buffer
	if err := AppendValue(&b, dt, value); err != nil {
		return err
	}
	_, _, err := s.RunTransaction(ctx, &Transaction{
		Code:    op,
		Param:   []uint32{uint32(code)},
		DataOut: b.Bytes(),
	})
	return err
}

func (s *Session) GetStorageIDs(ctx context.Context) ([]uint32, error) {
	return s.getUint32Array(ctx, &Transaction{Code: OC_GetStorageIDs})
}

func (s *Session) GetObjectHandles(ctx context.Context, storageID uint32, format uint16, parent uint32) ([]uint32, error) {
	return s.getUint32Array(ctx, &Transaction{
		Code:  OC_GetObjectHandles,
		Param: []uint32{storageID, uint32(format), parent},
	})
}

func (s *Session) getUint32Array(ctx context.Context, t *Transaction) ([]uint32, error) {
	t.DataIn = true
	_, data, err := s.RunTransaction(ctx, t)
	if err != nil {
		return nil, err
	}
	var arr Uint32Array
	if err := Decode(bytes.NewReader(data), &arr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return arr.Values, nil
}
