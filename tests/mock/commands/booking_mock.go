// Code generated by MockGen. DO NOT EDIT.
// Source: booking.go
//
// Generated by this command:
//
//	mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
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

// MockBookingCommands is a mock of BookingCommands interface.
type MockBookingCommands struct {
	ctrl     *gomock.Controller
	recorder *MockBookingCommandsMockRecorder
	isgomock struct{}
}

// MockBookingCommandsMockRecorder is the mock recorder for MockBookingCommands.
type MockBookingCommandsMockRecorder struct {
	mock *MockBookingCommands
}

// NewMockBookingCommands creates a new mock instance.
func NewMockBookingCommands(ctrl *gomock.Controller) *MockBookingCommands {
	mock := &MockBookingCommands{ctrl: ctrl}
	mock.recorder = &MockBookingCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingCommands) EXPECT() *MockBookingCommandsMockRecorder {
	return m.recorder
}

// Cancel mocks base method.
func (m *MockBookingCommands) Cancel(ctx context.Context, bookingID uuid.UUID, actor identity.Identity) (*commands.CancelResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Cancel", ctx, bookingID, actor)
	ret0, _ := ret[0].(*commands.CancelResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Cancel indicates an expected call of Cancel.
func (mr *MockBookingCommandsMockRecorder) Cancel(ctx, bookingID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Cancel", reflect.TypeOf((*MockBookingCommands)(nil).Cancel), ctx, bookingID, actor)
}

// Reserve mocks base method.
func (m *MockBookingCommands) Reserve(ctx context.Context, req commands.ReserveRequest, actor identity.Identity) (*commands.ReserveResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reserve", ctx, req, actor)
	ret0, _ := ret[0].(*commands.ReserveResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Reserve indicates an expected call of Reserve.
func (mr *MockBookingCommandsMockRecorder) Reserve(ctx, req, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reserve", reflect.TypeOf((*MockBookingCommands)(nil).Reserve), ctx, req, actor)
}
