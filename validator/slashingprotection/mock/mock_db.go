// Package mock provides hand-written gomock doubles for the Durable Log
// capabilities the Guarded Protector depends on (validator/db/kv's
// BlockLog and AttestationLog), following the shape mockgen would produce
// for validator/slashingprotection's unexported blockLog/attestationLog
// interfaces. They let tests exercise the StoreError path deterministically,
// without touching disk.
package mock

import (
	"reflect"

	"github.com/attestguard/slashguard/validator/db/kv"
	"github.com/golang/mock/gomock"
)

// MockBlockLog is a mock of the blockLog capability.
type MockBlockLog struct {
	ctrl     *gomock.Controller
	recorder *MockBlockLogRecorder
}

// MockBlockLogRecorder is the EXPECT() handle for MockBlockLog.
type MockBlockLogRecorder struct {
	mock *MockBlockLog
}

// NewMockBlockLog constructs a MockBlockLog registered with ctrl.
func NewMockBlockLog(ctrl *gomock.Controller) *MockBlockLog {
	m := &MockBlockLog{ctrl: ctrl}
	m.recorder = &MockBlockLogRecorder{m}
	return m
}

// EXPECT returns the recorder used to set up expectations.
func (m *MockBlockLog) EXPECT() *MockBlockLogRecorder {
	return m.recorder
}

// Insert mocks the blockLog.Insert method.
func (m *MockBlockLog) Insert(rec kv.BlockRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", rec)
	err, _ := ret[0].(error)
	return err
}

// Insert sets up an expectation for a call to Insert.
func (mr *MockBlockLogRecorder) Insert(rec interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockBlockLog)(nil).Insert), rec)
}

// LoadAll mocks the blockLog.LoadAll method.
func (m *MockBlockLog) LoadAll() ([]kv.BlockRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadAll")
	recs, _ := ret[0].([]kv.BlockRecord)
	err, _ := ret[1].(error)
	return recs, err
}

// LoadAll sets up an expectation for a call to LoadAll.
func (mr *MockBlockLogRecorder) LoadAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadAll", reflect.TypeOf((*MockBlockLog)(nil).LoadAll))
}

// Close mocks the blockLog.Close method.
func (m *MockBlockLog) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	err, _ := ret[0].(error)
	return err
}

// Close sets up an expectation for a call to Close.
func (mr *MockBlockLogRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockBlockLog)(nil).Close))
}

// MockAttestationLog is a mock of the attestationLog capability.
type MockAttestationLog struct {
	ctrl     *gomock.Controller
	recorder *MockAttestationLogRecorder
}

// MockAttestationLogRecorder is the EXPECT() handle for MockAttestationLog.
type MockAttestationLogRecorder struct {
	mock *MockAttestationLog
}

// NewMockAttestationLog constructs a MockAttestationLog registered with ctrl.
func NewMockAttestationLog(ctrl *gomock.Controller) *MockAttestationLog {
	m := &MockAttestationLog{ctrl: ctrl}
	m.recorder = &MockAttestationLogRecorder{m}
	return m
}

// EXPECT returns the recorder used to set up expectations.
func (m *MockAttestationLog) EXPECT() *MockAttestationLogRecorder {
	return m.recorder
}

// Insert mocks the attestationLog.Insert method.
func (m *MockAttestationLog) Insert(rec kv.AttestationRecord) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Insert", rec)
	err, _ := ret[0].(error)
	return err
}

// Insert sets up an expectation for a call to Insert.
func (mr *MockAttestationLogRecorder) Insert(rec interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Insert", reflect.TypeOf((*MockAttestationLog)(nil).Insert), rec)
}

// LoadAll mocks the attestationLog.LoadAll method.
func (m *MockAttestationLog) LoadAll() ([]kv.AttestationRecord, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LoadAll")
	recs, _ := ret[0].([]kv.AttestationRecord)
	err, _ := ret[1].(error)
	return recs, err
}

// LoadAll sets up an expectation for a call to LoadAll.
func (mr *MockAttestationLogRecorder) LoadAll() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LoadAll", reflect.TypeOf((*MockAttestationLog)(nil).LoadAll))
}

// Close mocks the attestationLog.Close method.
func (m *MockAttestationLog) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	err, _ := ret[0].(error)
	return err
}

// Close sets up an expectation for a call to Close.
func (mr *MockAttestationLogRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockAttestationLog)(nil).Close))
}
