// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/queries/review_mock.go -package=queriesmock
//

// Package queriesmock is a generated GoMock package.
package queriesmock

import (
	context "context"
	reflect "reflect"
	review "reservation-hub/internal/domain/review"
	queries "reservation-hub/internal/usecase/queries"
	time "time"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewReadStore is a mock of ReviewReadStore interface.
type MockReviewReadStore struct {
	ctrl     *gomock.Controller
	recorder *MockReviewReadStoreMockRecorder
	isgomock struct{}
}

// MockReviewReadStoreMockRecorder is the mock recorder for MockReviewReadStore.
type MockReviewReadStoreMockRecorder struct {
	mock *MockReviewReadStore
}

// NewMockReviewReadStore creates a new mock instance.
func NewMockReviewReadStore(ctrl *gomock.Controller) *MockReviewReadStore {
	mock := &MockReviewReadStore{ctrl: ctrl}
	mock.recorder = &MockReviewReadStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewReadStore) EXPECT() *MockReviewReadStoreMockRecorder {
	return m.recorder
}

// FindByEntityFirstPage mocks base method.
func (m *MockReviewReadStore) FindByEntityFirstPage(ctx context.Context, entityType string, entityID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByEntityFirstPage", ctx, entityType, entityID, limit)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByEntityFirstPage indicates an expected call of FindByEntityFirstPage.
func (mr *MockReviewReadStoreMockRecorder) FindByEntityFirstPage(ctx, entityType, entityID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByEntityFirstPage", reflect.TypeOf((*MockReviewReadStore)(nil).FindByEntityFirstPage), ctx, entityType, entityID, limit)
}

// FindByEntityKeyset mocks base method.
func (m *MockReviewReadStore) FindByEntityKeyset(ctx context.Context, entityType string, entityID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByEntityKeyset", ctx, entityType, entityID, lastCreatedAt, lastID, limit)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByEntityKeyset indicates an expected call of FindByEntityKeyset.
func (mr *MockReviewReadStoreMockRecorder) FindByEntityKeyset(ctx, entityType, entityID, lastCreatedAt, lastID, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByEntityKeyset", reflect.TypeOf((*MockReviewReadStore)(nil).FindByEntityKeyset), ctx, entityType, entityID, lastCreatedAt, lastID, limit)
}

// GetAggregate mocks base method.
func (m *MockReviewReadStore) GetAggregate(ctx context.Context, entityType string, entityID uuid.UUID) (review.Aggregate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAggregate", ctx, entityType, entityID)
	ret0, _ := ret[0].(review.Aggregate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAggregate indicates an expected call of GetAggregate.
func (mr *MockReviewReadStoreMockRecorder) GetAggregate(ctx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAggregate", reflect.TypeOf((*MockReviewReadStore)(nil).GetAggregate), ctx, entityType, entityID)
}

// MockReviewQueries is a mock of ReviewQueries interface.
type MockReviewQueries struct {
	ctrl     *gomock.Controller
	recorder *MockReviewQueriesMockRecorder
	isgomock struct{}
}

// MockReviewQueriesMockRecorder is the mock recorder for MockReviewQueries.
type MockReviewQueriesMockRecorder struct {
	mock *MockReviewQueries
}

// NewMockReviewQueries creates a new mock instance.
func NewMockReviewQueries(ctrl *gomock.Controller) *MockReviewQueries {
	mock := &MockReviewQueries{ctrl: ctrl}
	mock.recorder = &MockReviewQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewQueries) EXPECT() *MockReviewQueriesMockRecorder {
	return m.recorder
}

// Aggregate mocks base method.
func (m *MockReviewQueries) Aggregate(ctx context.Context, entityType string, entityID uuid.UUID) (*queries.RatingAggregateView, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Aggregate", ctx, entityType, entityID)
	ret0, _ := ret[0].(*queries.RatingAggregateView)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Aggregate indicates an expected call of Aggregate.
func (mr *MockReviewQueriesMockRecorder) Aggregate(ctx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Aggregate", reflect.TypeOf((*MockReviewQueries)(nil).Aggregate), ctx, entityType, entityID)
}

// ListByEntity mocks base method.
func (m *MockReviewQueries) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID, cursor *queries.Cursor, limit int) ([]*queries.ReviewView, *queries.Cursor, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListByEntity", ctx, entityType, entityID, cursor, limit)
	ret0, _ := ret[0].([]*queries.ReviewView)
	ret1, _ := ret[1].(*queries.Cursor)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// ListByEntity indicates an expected call of ListByEntity.
func (mr *MockReviewQueriesMockRecorder) ListByEntity(ctx, entityType, entityID, cursor, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListByEntity", reflect.TypeOf((*MockReviewQueries)(nil).ListByEntity), ctx, entityType, entityID, cursor, limit)
}
