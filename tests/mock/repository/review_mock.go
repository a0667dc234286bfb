// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/repository/review_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	gomock "go.uber.org/mock/gomock"
)

// MockReviewWriteQueries is a mock of ReviewWriteQueries interface.
type MockReviewWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewWriteQueriesMockRecorder
	isgomock struct{}
}

// MockReviewWriteQueriesMockRecorder is the mock recorder for MockReviewWriteQueries.
type MockReviewWriteQueriesMockRecorder struct {
	mock *MockReviewWriteQueries
}

// NewMockReviewWriteQueries creates a new mock instance.
func NewMockReviewWriteQueries(ctrl *gomock.Controller) *MockReviewWriteQueries {
	mock := &MockReviewWriteQueries{ctrl: ctrl}
	mock.recorder = &MockReviewWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewWriteQueries) EXPECT() *MockReviewWriteQueriesMockRecorder {
	return m.recorder
}

// CreateReview mocks base method.
func (m *MockReviewWriteQueries) CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateReview", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateReview indicates an expected call of CreateReview.
func (mr *MockReviewWriteQueriesMockRecorder) CreateReview(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateReview", reflect.TypeOf((*MockReviewWriteQueries)(nil).CreateReview), ctx, db, arg)
}

// SumReviewsByEntity mocks base method.
func (m *MockReviewWriteQueries) SumReviewsByEntity(ctx context.Context, db sqlc.DBTX, arg sqlc.SumReviewsByEntityParams) (sqlc.SumReviewsByEntityRow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumReviewsByEntity", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.SumReviewsByEntityRow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumReviewsByEntity indicates an expected call of SumReviewsByEntity.
func (mr *MockReviewWriteQueriesMockRecorder) SumReviewsByEntity(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumReviewsByEntity", reflect.TypeOf((*MockReviewWriteQueries)(nil).SumReviewsByEntity), ctx, db, arg)
}
