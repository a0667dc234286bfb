// Code generated by MockGen. DO NOT EDIT.
// Source: booking.go
//
// Generated by this command:
//
//	mockgen -source=booking.go -destination=../../../tests/mock/repository/booking_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingWriteQueries is a mock of BookingWriteQueries interface.
type MockBookingWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingWriteQueriesMockRecorder
	isgomock struct{}
}

// MockBookingWriteQueriesMockRecorder is the mock recorder for MockBookingWriteQueries.
type MockBookingWriteQueriesMockRecorder struct {
	mock *MockBookingWriteQueries
}

// NewMockBookingWriteQueries creates a new mock instance.
func NewMockBookingWriteQueries(ctrl *gomock.Controller) *MockBookingWriteQueries {
	mock := &MockBookingWriteQueries{ctrl: ctrl}
	mock.recorder = &MockBookingWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingWriteQueries) EXPECT() *MockBookingWriteQueriesMockRecorder {
	return m.recorder
}

// CreateBooking mocks base method.
func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateBooking", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateBooking indicates an expected call of CreateBooking.
func (mr *MockBookingWriteQueriesMockRecorder) CreateBooking(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateBooking", reflect.TypeOf((*MockBookingWriteQueries)(nil).CreateBooking), ctx, db, arg)
}

// GetBookingByIDForUpdate mocks base method.
func (m *MockBookingWriteQueries) GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByIDForUpdate", ctx, db, id)
	ret0, _ := ret[0].(sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByIDForUpdate indicates an expected call of GetBookingByIDForUpdate.
func (mr *MockBookingWriteQueriesMockRecorder) GetBookingByIDForUpdate(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByIDForUpdate", reflect.TypeOf((*MockBookingWriteQueries)(nil).GetBookingByIDForUpdate), ctx, db, id)
}

// GetBookingByIdempotencyKey mocks base method.
func (m *MockBookingWriteQueries) GetBookingByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIdempotencyKeyParams) (sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByIdempotencyKey", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByIdempotencyKey indicates an expected call of GetBookingByIdempotencyKey.
func (mr *MockBookingWriteQueriesMockRecorder) GetBookingByIdempotencyKey(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByIdempotencyKey", reflect.TypeOf((*MockBookingWriteQueries)(nil).GetBookingByIdempotencyKey), ctx, db, arg)
}

// UpdateBookingStatus mocks base method.
func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateBookingStatus", ctx, db, arg)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateBookingStatus indicates an expected call of UpdateBookingStatus.
func (mr *MockBookingWriteQueriesMockRecorder) UpdateBookingStatus(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateBookingStatus", reflect.TypeOf((*MockBookingWriteQueries)(nil).UpdateBookingStatus), ctx, db, arg)
}
