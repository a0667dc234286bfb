// Code generated by MockGen. DO NOT EDIT.
// Source: booking.go
//
// Generated by this command:
//
//	mockgen -source=booking.go -destination=../../../tests/mock/readstore/booking_mock.go -package=readstoremock
//

// Package readstoremock is a generated GoMock package.
package readstoremock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingReadQueries is a mock of BookingReadQueries interface.
type MockBookingReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingReadQueriesMockRecorder
	isgomock struct{}
}

// MockBookingReadQueriesMockRecorder is the mock recorder for MockBookingReadQueries.
type MockBookingReadQueriesMockRecorder struct {
	mock *MockBookingReadQueries
}

// NewMockBookingReadQueries creates a new mock instance.
func NewMockBookingReadQueries(ctrl *gomock.Controller) *MockBookingReadQueries {
	mock := &MockBookingReadQueries{ctrl: ctrl}
	mock.recorder = &MockBookingReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingReadQueries) EXPECT() *MockBookingReadQueriesMockRecorder {
	return m.recorder
}

// GetBookingByID mocks base method.
func (m *MockBookingReadQueries) GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByID", ctx, db, id)
	ret0, _ := ret[0].(sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByID indicates an expected call of GetBookingByID.
func (mr *MockBookingReadQueriesMockRecorder) GetBookingByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByID", reflect.TypeOf((*MockBookingReadQueries)(nil).GetBookingByID), ctx, db, id)
}

// GetBookingByIdempotencyKey mocks base method.
func (m *MockBookingReadQueries) GetBookingByIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetBookingByIdempotencyKeyParams) (sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBookingByIdempotencyKey", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBookingByIdempotencyKey indicates an expected call of GetBookingByIdempotencyKey.
func (mr *MockBookingReadQueriesMockRecorder) GetBookingByIdempotencyKey(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBookingByIdempotencyKey", reflect.TypeOf((*MockBookingReadQueries)(nil).GetBookingByIdempotencyKey), ctx, db, arg)
}

// ListBookingsByResourceFirstPage mocks base method.
func (m *MockBookingReadQueries) ListBookingsByResourceFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResourceFirstPageParams) ([]sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByResourceFirstPage", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByResourceFirstPage indicates an expected call of ListBookingsByResourceFirstPage.
func (mr *MockBookingReadQueriesMockRecorder) ListBookingsByResourceFirstPage(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByResourceFirstPage", reflect.TypeOf((*MockBookingReadQueries)(nil).ListBookingsByResourceFirstPage), ctx, db, arg)
}

// ListBookingsByResourceKeyset mocks base method.
func (m *MockBookingReadQueries) ListBookingsByResourceKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByResourceKeysetParams) ([]sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByResourceKeyset", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByResourceKeyset indicates an expected call of ListBookingsByResourceKeyset.
func (mr *MockBookingReadQueriesMockRecorder) ListBookingsByResourceKeyset(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByResourceKeyset", reflect.TypeOf((*MockBookingReadQueries)(nil).ListBookingsByResourceKeyset), ctx, db, arg)
}

// ListBookingsByUserFirstPage mocks base method.
func (m *MockBookingReadQueries) ListBookingsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserFirstPageParams) ([]sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByUserFirstPage", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByUserFirstPage indicates an expected call of ListBookingsByUserFirstPage.
func (mr *MockBookingReadQueriesMockRecorder) ListBookingsByUserFirstPage(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByUserFirstPage", reflect.TypeOf((*MockBookingReadQueries)(nil).ListBookingsByUserFirstPage), ctx, db, arg)
}

// ListBookingsByUserKeyset mocks base method.
func (m *MockBookingReadQueries) ListBookingsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByUserKeysetParams) ([]sqlc.Bookings, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListBookingsByUserKeyset", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Bookings)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListBookingsByUserKeyset indicates an expected call of ListBookingsByUserKeyset.
func (mr *MockBookingReadQueriesMockRecorder) ListBookingsByUserKeyset(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListBookingsByUserKeyset", reflect.TypeOf((*MockBookingReadQueries)(nil).ListBookingsByUserKeyset), ctx, db, arg)
}
