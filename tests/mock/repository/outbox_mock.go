// Code generated by MockGen. DO NOT EDIT.
// Source: outbox.go
//
// Generated by this command:
//
//	mockgen -source=outbox.go -destination=../../../tests/mock/repository/outbox_mock.go -package=repositorymock
//

// Package repositorymock is a generated GoMock package.
package repositorymock

import (
	context "context"
	reflect "reflect"
	sqlc "reservation-hub/internal/infra/sqlc/generated"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockOutboxWriteQueries is a mock of OutboxWriteQueries interface.
type MockOutboxWriteQueries struct {
	ctrl     *gomock.Controller
	recorder *MockOutboxWriteQueriesMockRecorder
	isgomock struct{}
}

// MockOutboxWriteQueriesMockRecorder is the mock recorder for MockOutboxWriteQueries.
type MockOutboxWriteQueriesMockRecorder struct {
	mock *MockOutboxWriteQueries
}

// NewMockOutboxWriteQueries creates a new mock instance.
func NewMockOutboxWriteQueries(ctrl *gomock.Controller) *MockOutboxWriteQueries {
	mock := &MockOutboxWriteQueries{ctrl: ctrl}
	mock.recorder = &MockOutboxWriteQueriesMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOutboxWriteQueries) EXPECT() *MockOutboxWriteQueriesMockRecorder {
	return m.recorder
}

// ClaimPendingOutboxEvents mocks base method.
func (m *MockOutboxWriteQueries) ClaimPendingOutboxEvents(ctx context.Context, db sqlc.DBTX, batchSize int32) ([]sqlc.OutboxEvents, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimPendingOutboxEvents", ctx, db, batchSize)
	ret0, _ := ret[0].([]sqlc.OutboxEvents)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimPendingOutboxEvents indicates an expected call of ClaimPendingOutboxEvents.
func (mr *MockOutboxWriteQueriesMockRecorder) ClaimPendingOutboxEvents(ctx, db, batchSize any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimPendingOutboxEvents", reflect.TypeOf((*MockOutboxWriteQueries)(nil).ClaimPendingOutboxEvents), ctx, db, batchSize)
}

// EnqueueOutboxEvent mocks base method.
func (m *MockOutboxWriteQueries) EnqueueOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.EnqueueOutboxEventParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnqueueOutboxEvent", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// EnqueueOutboxEvent indicates an expected call of EnqueueOutboxEvent.
func (mr *MockOutboxWriteQueriesMockRecorder) EnqueueOutboxEvent(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnqueueOutboxEvent", reflect.TypeOf((*MockOutboxWriteQueries)(nil).EnqueueOutboxEvent), ctx, db, arg)
}

// MarkOutboxEventFailed mocks base method.
func (m *MockOutboxWriteQueries) MarkOutboxEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventFailedParams) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkOutboxEventFailed", ctx, db, arg)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkOutboxEventFailed indicates an expected call of MarkOutboxEventFailed.
func (mr *MockOutboxWriteQueriesMockRecorder) MarkOutboxEventFailed(ctx, db, arg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkOutboxEventFailed", reflect.TypeOf((*MockOutboxWriteQueries)(nil).MarkOutboxEventFailed), ctx, db, arg)
}

// MarkOutboxEventPublished mocks base method.
func (m *MockOutboxWriteQueries) MarkOutboxEventPublished(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkOutboxEventPublished", ctx, db, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkOutboxEventPublished indicates an expected call of MarkOutboxEventPublished.
func (mr *MockOutboxWriteQueriesMockRecorder) MarkOutboxEventPublished(ctx, db, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkOutboxEventPublished", reflect.TypeOf((*MockOutboxWriteQueries)(nil).MarkOutboxEventPublished), ctx, db, id)
}
