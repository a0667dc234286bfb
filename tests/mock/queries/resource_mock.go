// Code generated by MockGen. DO NOT EDIT.
// Source: resource.go
//
// Generated by this command:
//
//	mockgen -source=resource.go -destination=../../../tests/mock/queries/resource_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	reflect "reflect"
	queries "reservation-hub/internal/usecase/queries"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockResourceReadStore is a mock of ResourceReadStore interface.
type MockResourceReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockResourceReadStoreMockRecorder
	isgomock struct{}
}

// MockResourceReadStoreMockRecorder is the mock recorder for MockResourceReadStore.
type MockResourceReadStoreMockRecorder struct {
	mock *MockResourceReadStore
}

// NewMockResourceReadStore creates a new mock instance.
func NewMockResourceReadStore(ctrl *gomock.Controller) *MockResourceReadStore {
	mock := &MockResourceReadStore{ctrl: ctrl}
	mock.recorder = &MockResourceReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceReadStore) EXPECT() *MockResourceReadStoreMockRecorder {
	return m.recorder
}

// ConsumedCapacity mocks base method.
func (m *MockResourceReadStore) ConsumedCapacity(ctx context.Context, resourceID uuid.UUID, timeUnit string) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsumedCapacity", ctx, resourceID, timeUnit)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConsumedCapacity indicates an expected call of ConsumedCapacity.
func (mr *MockResourceReadStoreMockRecorder) ConsumedCapacity(ctx, resourceID, timeUnit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumedCapacity", reflect.TypeOf((*MockResourceReadStore)(nil).ConsumedCapacity), ctx, resourceID, timeUnit)
}

// FindByID mocks base method.
func (m *MockResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByID", ctx, id)
	ret0, _ := ret[0].(*queries.ResourceView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByID indicates an expected call of FindByID.
func (mr *MockResourceReadStoreMockRecorder) FindByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByID", reflect.TypeOf((*MockResourceReadStore)(nil).FindByID), ctx, id)
}

// MockResourceQueries is a mock of ResourceQueries interface.
type MockResourceQueries struct {
	ctrl     *gomock.Controller
	recorder *MockResourceQueriesMockRecorder
	isgomock struct{}
}

// MockResourceQueriesMockRecorder is the mock recorder for MockResourceQueries.
type MockResourceQueriesMockRecorder struct {
	mock *MockResourceQueries
}

// NewMockResourceQueries creates a new mock instance.
func NewMockResourceQueries(ctrl *gomock.Controller) *MockResourceQueries {
	mock := &MockResourceQueries{ctrl: ctrl}
	mock.recorder = &MockResourceQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceQueries) EXPECT() *MockResourceQueriesMockRecorder {
	return m.recorder
}

// Availability mocks base method.
func (m *MockResourceQueries) Availability(ctx context.Context, resourceID uuid.UUID, timeUnit string) (*queries.AvailabilityView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Availability", ctx, resourceID, timeUnit)
	ret0, _ := ret[0].(*queries.AvailabilityView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Availability indicates an expected call of Availability.
func (mr *MockResourceQueriesMockRecorder) Availability(ctx, resourceID, timeUnit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Availability", reflect.TypeOf((*MockResourceQueries)(nil).Availability), ctx, resourceID, timeUnit)
}

// GetByID mocks base method.
func (m *MockResourceQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, id)
	ret0, _ := ret[0].(*queries.ResourceView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockResourceQueriesMockRecorder) GetByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockResourceQueries)(nil).GetByID), ctx, id)
}
