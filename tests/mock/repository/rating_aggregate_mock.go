// Code generated by MockGen. DO NOT EDIT.
// Source: rating_aggregate.go
//
// Generated by this command:
//
//	mockgen -source=rating_aggregate.go -destination=../../../tests/mock/repository/rating_aggregate_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	gomock "go.uber.org/mock/gomock"
)

// MockRatingAggregateQueries is a mock of RatingAggregateQueries interface.
type MockRatingAggregateQueries struct {
	ctrl     *gomock.Controller
	recorder *MockRatingAggregateQueriesMockRecorder
	isgomock struct{}
}

// MockRatingAggregateQueriesMockRecorder is the mock recorder for MockRatingAggregateQueries.
type MockRatingAggregateQueriesMockRecorder struct {
	mock *MockRatingAggregateQueries
}

// NewMockRatingAggregateQueries creates a new mock instance.
func NewMockRatingAggregateQueries(ctrl *gomock.Controller) *MockRatingAggregateQueries {
	mock := &MockRatingAggregateQueries{ctrl: ctrl}
	mock.recorder = &MockRatingAggregateQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRatingAggregateQueries) EXPECT() *MockRatingAggregateQueriesMockRecorder {
	return m.recorder
}

// EnsureRatingAggregate mocks base method.
func (m *MockRatingAggregateQueries) EnsureRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.EnsureRatingAggregateParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureRatingAggregate", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnsureRatingAggregate indicates an expected call of EnsureRatingAggregate.
func (mr *MockRatingAggregateQueriesMockRecorder) EnsureRatingAggregate(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureRatingAggregate", reflect.TypeOf((*MockRatingAggregateQueries)(nil).EnsureRatingAggregate), ctx, db, arg)
}

// GetRatingAggregateForUpdate mocks base method.
func (m *MockRatingAggregateQueries) GetRatingAggregateForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingAggregateForUpdateParams) (sqlc.RatingAggregates, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRatingAggregateForUpdate", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.RatingAggregates)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRatingAggregateForUpdate indicates an expected call of GetRatingAggregateForUpdate.
func (mr *MockRatingAggregateQueriesMockRecorder) GetRatingAggregateForUpdate(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRatingAggregateForUpdate", reflect.TypeOf((*MockRatingAggregateQueries)(nil).GetRatingAggregateForUpdate), ctx, db, arg)
}

// IncrementRatingAggregate mocks base method.
func (m *MockRatingAggregateQueries) IncrementRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementRatingAggregateParams) (sqlc.IncrementRatingAggregateRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementRatingAggregate", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.IncrementRatingAggregateRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IncrementRatingAggregate indicates an expected call of IncrementRatingAggregate.
func (mr *MockRatingAggregateQueriesMockRecorder) IncrementRatingAggregate(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementRatingAggregate", reflect.TypeOf((*MockRatingAggregateQueries)(nil).IncrementRatingAggregate), ctx, db, arg)
}

// OverwriteRatingAggregate mocks base method.
func (m *MockRatingAggregateQueries) OverwriteRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.OverwriteRatingAggregateParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OverwriteRatingAggregate", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// OverwriteRatingAggregate indicates an expected call of OverwriteRatingAggregate.
func (mr *MockRatingAggregateQueriesMockRecorder) OverwriteRatingAggregate(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OverwriteRatingAggregate", reflect.TypeOf((*MockRatingAggregateQueries)(nil).OverwriteRatingAggregate), ctx, db, arg)
}
