// Code generated by MockGen. DO NOT EDIT.
// Source: booking.go
//
// Generated by this command:
//
//	mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	reflect "reflect"
	identity "reservation-hub/internal/domain/identity"
	queries "reservation-hub/internal/usecase/queries"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockBookingReadStore is a mock of BookingReadStore interface.
type MockBookingReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockBookingReadStoreMockRecorder
	isgomock struct{}
}

// MockBookingReadStoreMockRecorder is the mock recorder for MockBookingReadStore.
type MockBookingReadStoreMockRecorder struct {
	mock *MockBookingReadStore
}

// NewMockBookingReadStore creates a new mock instance.
func NewMockBookingReadStore(ctrl *gomock.Controller) *MockBookingReadStore {
	mock := &MockBookingReadStore{ctrl: ctrl}
	mock.recorder = &MockBookingReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingReadStore) EXPECT() *MockBookingReadStoreMockRecorder {
	return m.recorder
}

// FindByID mocks base method.
func (m *MockBookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockBookingReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockBookingReadStore)(nil).FindByID), ctx, id)
}

// FindByResourceFirstPage mocks base method.
func (m *MockBookingReadStore) FindByResourceFirstPage(ctx context.Context, resourceID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByResourceFirstPage", ctx, resourceID, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByResourceFirstPage indicates an expected call of FindByResourceFirstPage.
func (mr *MockBookingReadStoreMockRecorder) FindByResourceFirstPage(ctx, resourceID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByResourceFirstPage", reflect.TypeOf((*MockBookingReadStore)(nil).FindByResourceFirstPage), ctx, resourceID, limit)
}

// FindByResourceKeyset mocks base method.
func (m *MockBookingReadStore) FindByResourceKeyset(ctx context.Context, resourceID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByResourceKeyset", ctx, resourceID, lastCreatedAt, lastID, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByResourceKeyset indicates an expected call of FindByResourceKeyset.
func (mr *MockBookingReadStoreMockRecorder) FindByResourceKeyset(ctx, resourceID, lastCreatedAt, lastID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByResourceKeyset", reflect.TypeOf((*MockBookingReadStore)(nil).FindByResourceKeyset), ctx, resourceID, lastCreatedAt, lastID, limit)
}

// FindByUserFirstPage mocks base method.
func (m *MockBookingReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByUserFirstPage", ctx, userID, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByUserFirstPage indicates an expected call of FindByUserFirstPage.
func (mr *MockBookingReadStoreMockRecorder) FindByUserFirstPage(ctx, userID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByUserFirstPage", reflect.TypeOf((*MockBookingReadStore)(nil).FindByUserFirstPage), ctx, userID, limit)
}

// FindByUserKeyset mocks base method.
func (m *MockBookingReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByUserKeyset", ctx, userID, lastCreatedAt, lastID, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByUserKeyset indicates an expected call of FindByUserKeyset.
func (mr *MockBookingReadStoreMockRecorder) FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByUserKeyset", reflect.TypeOf((*MockBookingReadStore)(nil).FindByUserKeyset), ctx, userID, lastCreatedAt, lastID, limit)
}

// MockBookingQueries is a mock of BookingQueries interface.
type MockBookingQueries struct {
	ctrl     *gomock.Controller
	recorder *MockBookingQueriesMockRecorder
	isgomock struct{}
}

// MockBookingQueriesMockRecorder is the mock recorder for MockBookingQueries.
type MockBookingQueriesMockRecorder struct {
	mock *MockBookingQueries
}

// NewMockBookingQueries creates a new mock instance.
func NewMockBookingQueries(ctrl *gomock.Controller) *MockBookingQueries {
	mock := &MockBookingQueries{ctrl: ctrl}
	mock.recorder = &MockBookingQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingQueries) EXPECT() *MockBookingQueriesMockRecorder {
	return m.recorder
}

// GetByID mocks base method.
func (m *MockBookingQueries) GetByID(ctx context.Context, id uuid.UUID, actor identity.Identity) (*queries.BookingView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id, actor)
	ret0, _ := ret[0].(*queries.BookingView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockBookingQueriesMockRecorder) GetByID(ctx, id, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockBookingQueries)(nil).GetByID), ctx, id, actor)
}

// ListByResource mocks base method.
func (m *MockBookingQueries) ListByResource(ctx context.Context, resourceID uuid.UUID, actor identity.Identity, cursor *queries.Cursor, limit int) ([]*queries.BookingView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByResource", ctx, resourceID, actor, cursor, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByResource indicates an expected call of ListByResource.
func (mr *MockBookingQueriesMockRecorder) ListByResource(ctx, resourceID, actor, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByResource", reflect.TypeOf((*MockBookingQueries)(nil).ListByResource), ctx, resourceID, actor, cursor, limit)
}

// ListByUser mocks base method.
func (m *MockBookingQueries) ListByUser(ctx context.Context, userID uuid.UUID, actor identity.Identity, cursor *queries.Cursor, limit int) ([]*queries.BookingView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByUser", ctx, userID, actor, cursor, limit)
	ret0, _ := ret[0].([]*queries.BookingView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByUser indicates an expected call of ListByUser.
func (mr *MockBookingQueriesMockRecorder) ListByUser(ctx, userID, actor, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByUser", reflect.TypeOf((*MockBookingQueries)(nil).ListByUser), ctx, userID, actor, cursor, limit)
}
