// Code generated by MockGen. DO NOT EDIT.
// Source: review.go
//
// Generated by this command:
//
//	mockgen -source=review.go -destination=../../../tests/mock/commands/review_mock.go -package=commandsmock
//

// Package commandsmock is a generated GoMock package.
package commandsmock

import (
	context "context"
	reflect "reflect"
	identity "reservation-hub/internal/domain/identity"
	commands "reservation-hub/internal/usecase/commands"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockReviewCommands is a mock of ReviewCommands interface.
type MockReviewCommands struct {
	ctrl     *gomock.Controller
	recorder *MockReviewCommandsMockRecorder
	isgomock struct{}
}

// MockReviewCommandsMockRecorder is the mock recorder for MockReviewCommands.
type MockReviewCommandsMockRecorder struct {
	mock *MockReviewCommands
}

// NewMockReviewCommands creates a new mock instance.
func NewMockReviewCommands(ctrl *gomock.Controller) *MockReviewCommands {
	mock := &MockReviewCommands{ctrl: ctrl}
	mock.recorder = &MockReviewCommandsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewCommands) EXPECT() *MockReviewCommandsMockRecorder {
	return m.recorder
}

// RecomputeAggregate mocks base method.
func (m *MockReviewCommands) RecomputeAggregate(ctx context.Context, entityType string, entityID uuid.UUID, actor identity.Identity) (*commands.RecomputeResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RecomputeAggregate", ctx, entityType, entityID, actor)
	ret0, _ := ret[0].(*commands.RecomputeResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RecomputeAggregate indicates an expected call of RecomputeAggregate.
func (mr *MockReviewCommandsMockRecorder) RecomputeAggregate(ctx, entityType, entityID, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RecomputeAggregate", reflect.TypeOf((*MockReviewCommands)(nil).RecomputeAggregate), ctx, entityType, entityID, actor)
}

// Submit mocks base method.
func (m *MockReviewCommands) Submit(ctx context.Context, req commands.SubmitReviewRequest, actor identity.Identity) (*commands.SubmitReviewResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Submit", ctx, req, actor)
	ret0, _ := ret[0].(*commands.SubmitReviewResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Submit indicates an expected call of Submit.
func (mr *MockReviewCommandsMockRecorder) Submit(ctx, req, actor any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Submit", reflect.TypeOf((*MockReviewCommands)(nil).Submit), ctx, req, actor)
}
