// Code generated by MockGen. DO NOT EDIT.
// Source: capacity.go
//
// Generated by this command:
//
//	mockgen -source=capacity.go -destination=../../../tests/mock/repository/capacity_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	gomock "go.uber.org/mock/gomock"
)

// MockCapacityWriteQueries is a mock of CapacityWriteQueries interface.
type MockCapacityWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockCapacityWriteQueriesMockRecorder
	isgomock struct{}
}

// MockCapacityWriteQueriesMockRecorder is the mock recorder for MockCapacityWriteQueries.
type MockCapacityWriteQueriesMockRecorder struct {
	mock *MockCapacityWriteQueries
}

// NewMockCapacityWriteQueries creates a new mock instance.
func NewMockCapacityWriteQueries(ctrl *gomock.Controller) *MockCapacityWriteQueries {
	mock := &MockCapacityWriteQueries{ctrl: ctrl}
	mock.recorder = &MockCapacityWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCapacityWriteQueries) EXPECT() *MockCapacityWriteQueriesMockRecorder {
	return m.recorder
}

// ConsumeCapacity mocks base method.
func (m *MockCapacityWriteQueries) ConsumeCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ConsumeCapacityParams) (int32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ConsumeCapacity", ctx, db, arg)
	ret0, _ := ret[0].(int32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ConsumeCapacity indicates an expected call of ConsumeCapacity.
func (mr *MockCapacityWriteQueriesMockRecorder) ConsumeCapacity(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ConsumeCapacity", reflect.TypeOf((*MockCapacityWriteQueries)(nil).ConsumeCapacity), ctx, db, arg)
}

// ReleaseCapacity mocks base method.
func (m *MockCapacityWriteQueries) ReleaseCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleaseCapacityParams) (int32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReleaseCapacity", ctx, db, arg)
	ret0, _ := ret[0].(int32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ReleaseCapacity indicates an expected call of ReleaseCapacity.
func (mr *MockCapacityWriteQueriesMockRecorder) ReleaseCapacity(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReleaseCapacity", reflect.TypeOf((*MockCapacityWriteQueries)(nil).ReleaseCapacity), ctx, db, arg)
}
