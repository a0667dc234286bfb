// Code generated by MockGen. DO NOT EDIT.
// Source: resource.go
//
// Generated by this command:
//
//	mockgen -source=resource.go -destination=../../../tests/mock/readstore/resource_mock.go -package=readstoremock
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

// MockResourceReadQueries is a mock of ResourceReadQueries interface.
type MockResourceReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockResourceReadQueriesMockRecorder
	isgomock struct{}
}

// MockResourceReadQueriesMockRecorder is the mock recorder for MockResourceReadQueries.
type MockResourceReadQueriesMockRecorder struct {
	mock *MockResourceReadQueries
}

// NewMockResourceReadQueries creates a new mock instance.
func NewMockResourceReadQueries(ctrl *gomock.Controller) *MockResourceReadQueries {
	mock := &MockResourceReadQueries{ctrl: ctrl}
	mock.recorder = &MockResourceReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceReadQueries) EXPECT() *MockResourceReadQueriesMockRecorder {
	return m.recorder
}

// GetCapacityCounter mocks base method.
func (m *MockResourceReadQueries) GetCapacityCounter(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCapacityCounterParams) (sqlc.CapacityCounters, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCapacityCounter", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.CapacityCounters)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCapacityCounter indicates an expected call of GetCapacityCounter.
func (mr *MockResourceReadQueriesMockRecorder) GetCapacityCounter(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCapacityCounter", reflect.TypeOf((*MockResourceReadQueries)(nil).GetCapacityCounter), ctx, db, arg)
}

// GetResourceByID mocks base method.
func (m *MockResourceReadQueries) GetResourceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Resources, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetResourceByID", ctx, db, id)
	ret0, _ := ret[0].(sqlc.Resources)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetResourceByID indicates an expected call of GetResourceByID.
func (mr *MockResourceReadQueriesMockRecorder) GetResourceByID(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetResourceByID", reflect.TypeOf((*MockResourceReadQueries)(nil).GetResourceByID), ctx, db, id)
}

// ListResourceTimeUnits mocks base method.
func (m *MockResourceReadQueries) ListResourceTimeUnits(ctx context.Context, db sqlc.DBTX, resourceID uuid.UUID) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListResourceTimeUnits", ctx, db, resourceID)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListResourceTimeUnits indicates an expected call of ListResourceTimeUnits.
func (mr *MockResourceReadQueriesMockRecorder) ListResourceTimeUnits(ctx, db, resourceID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListResourceTimeUnits", reflect.TypeOf((*MockResourceReadQueries)(nil).ListResourceTimeUnits), ctx, db, resourceID)
}
