// Code generated by MockGen. DO NOT EDIT.
// Source: resource.go
//
// Generated by this command:
//
//	mockgen -source=resource.go -destination=../../../tests/mock/commands/resource_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	reflect "reflect"
	identity "reservation-hub/internal/domain/identity"
	commands "reservation-hub/internal/usecase/commands"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockResourceCommands is a mock of ResourceCommands interface.
type MockResourceCommands struct {
	ctrl     *gomock.Controller
	recorder *MockResourceCommandsMockRecorder
	isgomock struct{}
}

// MockResourceCommandsMockRecorder is the mock recorder for MockResourceCommands.
type MockResourceCommandsMockRecorder struct {
	mock *MockResourceCommands
}

// NewMockResourceCommands creates a new mock instance.
func NewMockResourceCommands(ctrl *gomock.Controller) *MockResourceCommands {
	mock := &MockResourceCommands{ctrl: ctrl}
	mock.recorder = &MockResourceCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceCommands) EXPECT() *MockResourceCommandsMockRecorder {
	return m.recorder
}

// Register mocks base method.
func (m *MockResourceCommands) Register(ctx context.Context, req commands.RegisterResourceRequest, actor identity.Identity) (uuid.UUID, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Register", ctx, req, actor)
	ret0, _ := ret[0].(uuid.UUID)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Register indicates an expected call of Register.
func (mr *MockResourceCommandsMockRecorder) Register(ctx, req, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Register", reflect.TypeOf((*MockResourceCommands)(nil).Register), ctx, req, actor)
}
