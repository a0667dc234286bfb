// Code generated by MockGen. DO NOT EDIT.
// Source: resource.go
//
// Generated by this command:
//
//	mockgen -source=resource.go -destination=../../../tests/mock/repository/resource_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	gomock "go.uber.org/mock/gomock"
)

// MockResourceWriteQueries is a mock of ResourceWriteQueries interface.
type MockResourceWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockResourceWriteQueriesMockRecorder
	isgomock struct{}
}

// MockResourceWriteQueriesMockRecorder is the mock recorder for MockResourceWriteQueries.
type MockResourceWriteQueriesMockRecorder struct {
	mock *MockResourceWriteQueries
}

// NewMockResourceWriteQueries creates a new mock instance.
func NewMockResourceWriteQueries(ctrl *gomock.Controller) *MockResourceWriteQueries {
	mock := &MockResourceWriteQueries{ctrl: ctrl}
	mock.recorder = &MockResourceWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceWriteQueries) EXPECT() *MockResourceWriteQueriesMockRecorder {
	return m.recorder
}

// CreateResource mocks base method.
func (m *MockResourceWriteQueries) CreateResource(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResource", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateResource indicates an expected call of CreateResource.
func (mr *MockResourceWriteQueriesMockRecorder) CreateResource(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResource", reflect.TypeOf((*MockResourceWriteQueries)(nil).CreateResource), ctx, db, arg)
}

// CreateResourceTimeUnit mocks base method.
func (m *MockResourceWriteQueries) CreateResourceTimeUnit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateResourceTimeUnitParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateResourceTimeUnit", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateResourceTimeUnit indicates an expected call of CreateResourceTimeUnit.
func (mr *MockResourceWriteQueriesMockRecorder) CreateResourceTimeUnit(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateResourceTimeUnit", reflect.TypeOf((*MockResourceWriteQueries)(nil).CreateResourceTimeUnit), ctx, db, arg)
}
