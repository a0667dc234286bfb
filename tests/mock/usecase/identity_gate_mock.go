// Code generated by MockGen. DO NOT EDIT.
// Source: identity_gate.go
//
// Generated by this command:
//
//	mockgen -source=identity_gate.go -destination=../../tests/mock/usecase/identity_gate_mock.go -package=usecasemock
//

// Package usecasemock is a generated GoMock package.
package usecasemock

import (
	reflect "reflect"
	identity "reservation-hub/internal/domain/identity"

	gomock "go.uber.org/mock/gomock"
)

// MockIdentityGate is a mock of IdentityGate interface.
type MockIdentityGate struct {
	ctrl     *gomock.Controller
	recorder *MockIdentityGateMockRecorder
	isgomock struct{}
}

// MockIdentityGateMockRecorder is the mock recorder for MockIdentityGate.
type MockIdentityGateMockRecorder struct {
	mock *MockIdentityGate
}

// NewMockIdentityGate creates a new mock instance.
func NewMockIdentityGate(ctrl *gomock.Controller) *MockIdentityGate {
	mock := &MockIdentityGate{ctrl: ctrl}
	mock.recorder = &MockIdentityGateMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIdentityGate) EXPECT() *MockIdentityGateMockRecorder {
	return m.recorder
}

// Validate mocks base method.
func (m *MockIdentityGate) Validate(token string) (identity.Identity, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Validate", token)
	ret0, _ := ret[0].(identity.Identity)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Validate indicates an expected call of Validate.
func (mr *MockIdentityGateMockRecorder) Validate(token any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Validate", reflect.TypeOf((*MockIdentityGate)(nil).Validate), token)
}
