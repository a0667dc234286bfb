// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/readstore/review_mock.go -package=readstoremock
//

// Package readstoremock is a generated GoMock package.
package readstoremock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	gomock "go.uber.org/mock/gomock"
)

// MockReviewReadQueries is a mock of ReviewReadQueries interface.
type MockReviewReadQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewReadQueriesMockRecorder
	isgomock struct{}
}

// MockReviewReadQueriesMockRecorder is the mock recorder for MockReviewReadQueries.
type MockReviewReadQueriesMockRecorder struct {
	mock *MockReviewReadQueries
}

// NewMockReviewReadQueries creates a new mock instance.
func NewMockReviewReadQueries(ctrl *gomock.Controller) *MockReviewReadQueries {
	mock := &MockReviewReadQueries{ctrl: ctrl}
	mock.recorder = &MockReviewReadQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewReadQueries) EXPECT() *MockReviewReadQueriesMockRecorder {
	return m.recorder
}

// GetRatingAggregate mocks base method.
func (m *MockReviewReadQueries) GetRatingAggregate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingAggregateParams) (sqlc.RatingAggregates, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRatingAggregate", ctx, db, arg)
	ret0, _ := ret[0].(sqlc.RatingAggregates)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRatingAggregate indicates an expected call of GetRatingAggregate.
func (mr *MockReviewReadQueriesMockRecorder) GetRatingAggregate(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRatingAggregate", reflect.TypeOf((*MockReviewReadQueries)(nil).GetRatingAggregate), ctx, db, arg)
}

// ListReviewsByEntityFirstPage mocks base method.
func (m *MockReviewReadQueries) ListReviewsByEntityFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByEntityFirstPageParams) ([]sqlc.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReviewsByEntityFirstPage", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListReviewsByEntityFirstPage indicates an expected call of ListReviewsByEntityFirstPage.
func (mr *MockReviewReadQueriesMockRecorder) ListReviewsByEntityFirstPage(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReviewsByEntityFirstPage", reflect.TypeOf((*MockReviewReadQueries)(nil).ListReviewsByEntityFirstPage), ctx, db, arg)
}

// ListReviewsByEntityKeyset mocks base method.
func (m *MockReviewReadQueries) ListReviewsByEntityKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByEntityKeysetParams) ([]sqlc.Reviews, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListReviewsByEntityKeyset", ctx, db, arg)
	ret0, _ := ret[0].([]sqlc.Reviews)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListReviewsByEntityKeyset indicates an expected call of ListReviewsByEntityKeyset.
func (mr *MockReviewReadQueriesMockRecorder) ListReviewsByEntityKeyset(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListReviewsByEntityKeyset", reflect.TypeOf((*MockReviewReadQueries)(nil).ListReviewsByEntityKeyset), ctx, db, arg)
}
