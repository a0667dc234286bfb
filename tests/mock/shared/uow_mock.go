// Code generated by MockGen. DO NOT EDIT.
// Source: uow.go
//
// Generated by this command:
//
//	mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock
//

// Package sharedmock is a generated GoMock package.
package sharedmock

import (
	context "context"
	reflect "reflect"
	booking "reservation-hub/internal/domain/booking"
	resource "reservation-hub/internal/domain/resource"
	review "reservation-hub/internal/domain/review"
	sqlc "reservation-hub/internal/infra/sqlc/generated"
	shared "reservation-hub/internal/usecase/shared"

	uuid "github.com/google/uuid"
	gomock "go.uber.org/mock/gomock"
)

// MockUnitOfWork is a mock of UnitOfWork interface.
type MockUnitOfWork struct {
	ctrl     *gomock.Controller
	recorder *MockUnitOfWorkMockRecorder
	isgomock struct{}
}

// MockUnitOfWorkMockRecorder is the mock recorder for MockUnitOfWork.
type MockUnitOfWorkMockRecorder struct {
	mock *MockUnitOfWork
}

// NewMockUnitOfWork creates a new mock instance.
func NewMockUnitOfWork(ctrl *gomock.Controller) *MockUnitOfWork {
	mock := &MockUnitOfWork{ctrl: ctrl}
	mock.recorder = &MockUnitOfWorkMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockUnitOfWork) EXPECT() *MockUnitOfWorkMockRecorder {
	return m.recorder
}

// CommandReads mocks base method.
func (m *MockUnitOfWork) CommandReads() shared.CommandReads {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CommandReads")
	ret0, _ := ret[0].(shared.CommandReads)
	return ret0
}

// CommandReads indicates an expected call of CommandReads.
func (mr *MockUnitOfWorkMockRecorder) CommandReads() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CommandReads", reflect.TypeOf((*MockUnitOfWork)(nil).CommandReads))
}

// Within mocks base method.
func (m *MockUnitOfWork) Within(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Within", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Within indicates an expected call of Within.
func (mr *MockUnitOfWorkMockRecorder) Within(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Within", reflect.TypeOf((*MockUnitOfWork)(nil).Within), ctx, fn)
}

// WithinReadOnly mocks base method.
func (m *MockUnitOfWork) WithinReadOnly(ctx context.Context, fn func(context.Context, sqlc.DBTX) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "WithinReadOnly", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// WithinReadOnly indicates an expected call of WithinReadOnly.
func (mr *MockUnitOfWorkMockRecorder) WithinReadOnly(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "WithinReadOnly", reflect.TypeOf((*MockUnitOfWork)(nil).WithinReadOnly), ctx, fn)
}

// MockTx is a mock of Tx interface.
type MockTx struct {
	ctrl     *gomock.Controller
	recorder *MockTxMockRecorder
	isgomock struct{}
}

// MockTxMockRecorder is the mock recorder for MockTx.
type MockTxMockRecorder struct {
	mock *MockTx
}

// NewMockTx creates a new mock instance.
func NewMockTx(ctrl *gomock.Controller) *MockTx {
	mock := &MockTx{ctrl: ctrl}
	mock.recorder = &MockTxMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTx) EXPECT() *MockTxMockRecorder {
	return m.recorder
}

// Bookings mocks base method.
func (m *MockTx) Bookings() shared.BookingRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Bookings")
	ret0, _ := ret[0].(shared.BookingRepository)
	return ret0
}

// Bookings indicates an expected call of Bookings.
func (mr *MockTxMockRecorder) Bookings() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Bookings", reflect.TypeOf((*MockTx)(nil).Bookings))
}

// Capacity mocks base method.
func (m *MockTx) Capacity() shared.CapacityRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Capacity")
	ret0, _ := ret[0].(shared.CapacityRepository)
	return ret0
}

// Capacity indicates an expected call of Capacity.
func (mr *MockTxMockRecorder) Capacity() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Capacity", reflect.TypeOf((*MockTx)(nil).Capacity))
}

// DB mocks base method.
func (m *MockTx) DB() sqlc.DBTX {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DB")
	ret0, _ := ret[0].(sqlc.DBTX)
	return ret0
}

// DB indicates an expected call of DB.
func (mr *MockTxMockRecorder) DB() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DB", reflect.TypeOf((*MockTx)(nil).DB))
}

// Outbox mocks base method.
func (m *MockTx) Outbox() shared.OutboxRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Outbox")
	ret0, _ := ret[0].(shared.OutboxRepository)
	return ret0
}

// Outbox indicates an expected call of Outbox.
func (mr *MockTxMockRecorder) Outbox() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Outbox", reflect.TypeOf((*MockTx)(nil).Outbox))
}

// RatingAggregates mocks base method.
func (m *MockTx) RatingAggregates() shared.RatingAggregateRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RatingAggregates")
	ret0, _ := ret[0].(shared.RatingAggregateRepository)
	return ret0
}

// RatingAggregates indicates an expected call of RatingAggregates.
func (mr *MockTxMockRecorder) RatingAggregates() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RatingAggregates", reflect.TypeOf((*MockTx)(nil).RatingAggregates))
}

// Resources mocks base method.
func (m *MockTx) Resources() shared.ResourceRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Resources")
	ret0, _ := ret[0].(shared.ResourceRepository)
	return ret0
}

// Resources indicates an expected call of Resources.
func (mr *MockTxMockRecorder) Resources() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Resources", reflect.TypeOf((*MockTx)(nil).Resources))
}

// Reviews mocks base method.
func (m *MockTx) Reviews() shared.ReviewRepository {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Reviews")
	ret0, _ := ret[0].(shared.ReviewRepository)
	return ret0
}

// Reviews indicates an expected call of Reviews.
func (mr *MockTxMockRecorder) Reviews() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Reviews", reflect.TypeOf((*MockTx)(nil).Reviews))
}

// MockCommandReads is a mock of CommandReads interface.
type MockCommandReads struct {
	ctrl     *gomock.Controller
	recorder *MockCommandReadsMockRecorder
	isgomock struct{}
}

// MockCommandReadsMockRecorder is the mock recorder for MockCommandReads.
type MockCommandReadsMockRecorder struct {
	mock *MockCommandReads
}

// NewMockCommandReads creates a new mock instance.
func NewMockCommandReads(ctrl *gomock.Controller) *MockCommandReads {
	mock := &MockCommandReads{ctrl: ctrl}
	mock.recorder = &MockCommandReadsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCommandReads) EXPECT() *MockCommandReadsMockRecorder {
	return m.recorder
}

// BookingByID mocks base method.
func (m *MockCommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BookingByID", ctx, id)
	ret0, _ := ret[0].(*shared.BookingSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BookingByID indicates an expected call of BookingByID.
func (mr *MockCommandReadsMockRecorder) BookingByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BookingByID", reflect.TypeOf((*MockCommandReads)(nil).BookingByID), ctx, id)
}

// BookingByIdempotencyKey mocks base method.
func (m *MockCommandReads) BookingByIdempotencyKey(ctx context.Context, userID, key uuid.UUID) (*shared.BookingSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BookingByIdempotencyKey", ctx, userID, key)
	ret0, _ := ret[0].(*shared.BookingSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BookingByIdempotencyKey indicates an expected call of BookingByIdempotencyKey.
func (mr *MockCommandReadsMockRecorder) BookingByIdempotencyKey(ctx, userID, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BookingByIdempotencyKey", reflect.TypeOf((*MockCommandReads)(nil).BookingByIdempotencyKey), ctx, userID, key)
}

// ResourceByID mocks base method.
func (m *MockCommandReads) ResourceByID(ctx context.Context, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResourceByID", ctx, id)
	ret0, _ := ret[0].(*shared.ResourceSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ResourceByID indicates an expected call of ResourceByID.
func (mr *MockCommandReadsMockRecorder) ResourceByID(ctx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResourceByID", reflect.TypeOf((*MockCommandReads)(nil).ResourceByID), ctx, id)
}

// MockResourceRepository is a mock of ResourceRepository interface.
type MockResourceRepository struct {
	ctrl     *gomock.Controller
	recorder *MockResourceRepositoryMockRecorder
	isgomock struct{}
}

// MockResourceRepositoryMockRecorder is the mock recorder for MockResourceRepository.
type MockResourceRepositoryMockRecorder struct {
	mock *MockResourceRepository
}

// NewMockResourceRepository creates a new mock instance.
func NewMockResourceRepository(ctrl *gomock.Controller) *MockResourceRepository {
	mock := &MockResourceRepository{ctrl: ctrl}
	mock.recorder = &MockResourceRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockResourceRepository) EXPECT() *MockResourceRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockResourceRepository) Create(ctx context.Context, tx sqlc.DBTX, res *resource.Resource) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, res)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockResourceRepositoryMockRecorder) Create(ctx, tx, res any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockResourceRepository)(nil).Create), ctx, tx, res)
}

// MockBookingRepository is a mock of BookingRepository interface.
type MockBookingRepository struct {
	ctrl     *gomock.Controller
	recorder *MockBookingRepositoryMockRecorder
	isgomock struct{}
}

// MockBookingRepositoryMockRecorder is the mock recorder for MockBookingRepository.
type MockBookingRepositoryMockRecorder struct {
	mock *MockBookingRepository
}

// NewMockBookingRepository creates a new mock instance.
func NewMockBookingRepository(ctrl *gomock.Controller) *MockBookingRepository {
	mock := &MockBookingRepository{ctrl: ctrl}
	mock.recorder = &MockBookingRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBookingRepository) EXPECT() *MockBookingRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockBookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, b)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockBookingRepositoryMockRecorder) Create(ctx, tx, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockBookingRepository)(nil).Create), ctx, tx, b)
}

// FindByIDForUpdate mocks base method.
func (m *MockBookingRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*booking.Booking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIDForUpdate", ctx, tx, id)
	ret0, _ := ret[0].(*booking.Booking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIDForUpdate indicates an expected call of FindByIDForUpdate.
func (mr *MockBookingRepositoryMockRecorder) FindByIDForUpdate(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIDForUpdate", reflect.TypeOf((*MockBookingRepository)(nil).FindByIDForUpdate), ctx, tx, id)
}

// FindByIdempotencyKey mocks base method.
func (m *MockBookingRepository) FindByIdempotencyKey(ctx context.Context, tx sqlc.DBTX, userID, key uuid.UUID) (*booking.Booking, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FindByIdempotencyKey", ctx, tx, userID, key)
	ret0, _ := ret[0].(*booking.Booking)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FindByIdempotencyKey indicates an expected call of FindByIdempotencyKey.
func (mr *MockBookingRepositoryMockRecorder) FindByIdempotencyKey(ctx, tx, userID, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FindByIdempotencyKey", reflect.TypeOf((*MockBookingRepository)(nil).FindByIdempotencyKey), ctx, tx, userID, key)
}

// UpdateStatus mocks base method.
func (m *MockBookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking, from booking.Status) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, tx, b, from)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockBookingRepositoryMockRecorder) UpdateStatus(ctx, tx, b, from any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockBookingRepository)(nil).UpdateStatus), ctx, tx, b, from)
}

// MockCapacityRepository is a mock of CapacityRepository interface.
type MockCapacityRepository struct {
	ctrl     *gomock.Controller
	recorder *MockCapacityRepositoryMockRecorder
	isgomock struct{}
}

// MockCapacityRepositoryMockRecorder is the mock recorder for MockCapacityRepository.
type MockCapacityRepositoryMockRecorder struct {
	mock *MockCapacityRepository
}

// NewMockCapacityRepository creates a new mock instance.
func NewMockCapacityRepository(ctrl *gomock.Controller) *MockCapacityRepository {
	mock := &MockCapacityRepository{ctrl: ctrl}
	mock.recorder = &MockCapacityRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCapacityRepository) EXPECT() *MockCapacityRepositoryMockRecorder {
	return m.recorder
}

// Consume mocks base method.
func (m *MockCapacityRepository) Consume(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, capacityTotal, quantity int) (int, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Consume", ctx, tx, resourceID, timeUnit, capacityTotal, quantity)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Consume indicates an expected call of Consume.
func (mr *MockCapacityRepositoryMockRecorder) Consume(ctx, tx, resourceID, timeUnit, capacityTotal, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Consume", reflect.TypeOf((*MockCapacityRepository)(nil).Consume), ctx, tx, resourceID, timeUnit, capacityTotal, quantity)
}

// Release mocks base method.
func (m *MockCapacityRepository) Release(ctx context.Context, tx sqlc.DBTX, resourceID uuid.UUID, timeUnit string, quantity int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Release", ctx, tx, resourceID, timeUnit, quantity)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Release indicates an expected call of Release.
func (mr *MockCapacityRepositoryMockRecorder) Release(ctx, tx, resourceID, timeUnit, quantity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Release", reflect.TypeOf((*MockCapacityRepository)(nil).Release), ctx, tx, resourceID, timeUnit, quantity)
}

// MockReviewRepository is a mock of ReviewRepository interface.
type MockReviewRepository struct {
	ctrl     *gomock.Controller
	recorder *MockReviewRepositoryMockRecorder
	isgomock struct{}
}

// MockReviewRepositoryMockRecorder is the mock recorder for MockReviewRepository.
type MockReviewRepositoryMockRecorder struct {
	mock *MockReviewRepository
}

// NewMockReviewRepository creates a new mock instance.
func NewMockReviewRepository(ctrl *gomock.Controller) *MockReviewRepository {
	mock := &MockReviewRepository{ctrl: ctrl}
	mock.recorder = &MockReviewRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockReviewRepository) EXPECT() *MockReviewRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rv *review.Review) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, tx, rv)
	ret0, _ := ret[0].(error)
	return ret0
}

// Create indicates an expected call of Create.
func (mr *MockReviewRepositoryMockRecorder) Create(ctx, tx, rv any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockReviewRepository)(nil).Create), ctx, tx, rv)
}

// SumByEntity mocks base method.
func (m *MockReviewRepository) SumByEntity(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SumByEntity", ctx, tx, entityType, entityID)
	ret0, _ := ret[0].(review.Aggregate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SumByEntity indicates an expected call of SumByEntity.
func (mr *MockReviewRepositoryMockRecorder) SumByEntity(ctx, tx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SumByEntity", reflect.TypeOf((*MockReviewRepository)(nil).SumByEntity), ctx, tx, entityType, entityID)
}

// MockRatingAggregateRepository is a mock of RatingAggregateRepository interface.
type MockRatingAggregateRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRatingAggregateRepositoryMockRecorder
	isgomock struct{}
}

// MockRatingAggregateRepositoryMockRecorder is the mock recorder for MockRatingAggregateRepository.
type MockRatingAggregateRepositoryMockRecorder struct {
	mock *MockRatingAggregateRepository
}

// NewMockRatingAggregateRepository creates a new mock instance.
func NewMockRatingAggregateRepository(ctrl *gomock.Controller) *MockRatingAggregateRepository {
	mock := &MockRatingAggregateRepository{ctrl: ctrl}
	mock.recorder = &MockRatingAggregateRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRatingAggregateRepository) EXPECT() *MockRatingAggregateRepositoryMockRecorder {
	return m.recorder
}

// Increment mocks base method.
func (m *MockRatingAggregateRepository) Increment(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, rating review.Rating) (review.Aggregate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Increment", ctx, tx, entityType, entityID, rating)
	ret0, _ := ret[0].(review.Aggregate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Increment indicates an expected call of Increment.
func (mr *MockRatingAggregateRepositoryMockRecorder) Increment(ctx, tx, entityType, entityID, rating any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Increment", reflect.TypeOf((*MockRatingAggregateRepository)(nil).Increment), ctx, tx, entityType, entityID, rating)
}

// LockForRecompute mocks base method.
func (m *MockRatingAggregateRepository) LockForRecompute(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LockForRecompute", ctx, tx, entityType, entityID)
	ret0, _ := ret[0].(review.Aggregate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LockForRecompute indicates an expected call of LockForRecompute.
func (mr *MockRatingAggregateRepositoryMockRecorder) LockForRecompute(ctx, tx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LockForRecompute", reflect.TypeOf((*MockRatingAggregateRepository)(nil).LockForRecompute), ctx, tx, entityType, entityID)
}

// Overwrite mocks base method.
func (m *MockRatingAggregateRepository) Overwrite(ctx context.Context, tx sqlc.DBTX, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Overwrite", ctx, tx, entityType, entityID, agg)
	ret0, _ := ret[0].(error)
	return ret0
}

// Overwrite indicates an expected call of Overwrite.
func (mr *MockRatingAggregateRepositoryMockRecorder) Overwrite(ctx, tx, entityType, entityID, agg any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Overwrite", reflect.TypeOf((*MockRatingAggregateRepository)(nil).Overwrite), ctx, tx, entityType, entityID, agg)
}

// MockOutboxRepository is a mock of OutboxRepository interface.
type MockOutboxRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOutboxRepositoryMockRecorder
	isgomock struct{}
}

// MockOutboxRepositoryMockRecorder is the mock recorder for MockOutboxRepository.
type MockOutboxRepositoryMockRecorder struct {
	mock *MockOutboxRepository
}

// NewMockOutboxRepository creates a new mock instance.
func NewMockOutboxRepository(ctrl *gomock.Controller) *MockOutboxRepository {
	mock := &MockOutboxRepository{ctrl: ctrl}
	mock.recorder = &MockOutboxRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOutboxRepository) EXPECT() *MockOutboxRepositoryMockRecorder {
	return m.recorder
}

// ClaimPending mocks base method.
func (m *MockOutboxRepository) ClaimPending(ctx context.Context, tx sqlc.DBTX, batchSize int) ([]shared.OutboxEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ClaimPending", ctx, tx, batchSize)
	ret0, _ := ret[0].([]shared.OutboxEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ClaimPending indicates an expected call of ClaimPending.
func (mr *MockOutboxRepositoryMockRecorder) ClaimPending(ctx, tx, batchSize any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ClaimPending", reflect.TypeOf((*MockOutboxRepository)(nil).ClaimPending), ctx, tx, batchSize)
}

// Enqueue mocks base method.
func (m *MockOutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, event shared.OutboxEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Enqueue", ctx, tx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Enqueue indicates an expected call of Enqueue.
func (mr *MockOutboxRepositoryMockRecorder) Enqueue(ctx, tx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Enqueue", reflect.TypeOf((*MockOutboxRepository)(nil).Enqueue), ctx, tx, event)
}

// MarkFailed mocks base method.
func (m *MockOutboxRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, reason string, maxAttempts int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkFailed", ctx, tx, id, reason, maxAttempts)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkFailed indicates an expected call of MarkFailed.
func (mr *MockOutboxRepositoryMockRecorder) MarkFailed(ctx, tx, id, reason, maxAttempts any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkFailed", reflect.TypeOf((*MockOutboxRepository)(nil).MarkFailed), ctx, tx, id, reason, maxAttempts)
}

// MarkPublished mocks base method.
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MarkPublished", ctx, tx, id)
	ret0, _ := ret[0].(error)
	return ret0
}

// MarkPublished indicates an expected call of MarkPublished.
func (mr *MockOutboxRepositoryMockRecorder) MarkPublished(ctx, tx, id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MarkPublished", reflect.TypeOf((*MockOutboxRepository)(nil).MarkPublished), ctx, tx, id)
}

// MockAggregateCache is a mock of AggregateCache interface.
type MockAggregateCache struct {
	ctrl     *gomock.Controller
	recorder *MockAggregateCacheMockRecorder
	isgomock struct{}
}

// MockAggregateCacheMockRecorder is the mock recorder for MockAggregateCache.
type MockAggregateCacheMockRecorder struct {
	mock *MockAggregateCache
}

// NewMockAggregateCache creates a new mock instance.
func NewMockAggregateCache(ctrl *gomock.Controller) *MockAggregateCache {
	mock := &MockAggregateCache{ctrl: ctrl}
	mock.recorder = &MockAggregateCacheMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAggregateCache) EXPECT() *MockAggregateCacheMockRecorder {
	return m.recorder
}

// Generation mocks base method.
func (m *MockAggregateCache) Generation(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Generation", ctx, entityType, entityID)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Generation indicates an expected call of Generation.
func (mr *MockAggregateCacheMockRecorder) Generation(ctx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Generation", reflect.TypeOf((*MockAggregateCache)(nil).Generation), ctx, entityType, entityID)
}

// Get mocks base method.
func (m *MockAggregateCache) Get(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) (review.Aggregate, bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", ctx, entityType, entityID)
	ret0, _ := ret[0].(review.Aggregate)
	ret1, _ := ret[1].(bool)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// Get indicates an expected call of Get.
func (mr *MockAggregateCacheMockRecorder) Get(ctx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAggregateCache)(nil).Get), ctx, entityType, entityID)
}

// Invalidate mocks base method.
func (m *MockAggregateCache) Invalidate(ctx context.Context, entityType resource.Kind, entityID uuid.UUID) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Invalidate", ctx, entityType, entityID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Invalidate indicates an expected call of Invalidate.
func (mr *MockAggregateCacheMockRecorder) Invalidate(ctx, entityType, entityID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Invalidate", reflect.TypeOf((*MockAggregateCache)(nil).Invalidate), ctx, entityType, entityID)
}

// Set mocks base method.
func (m *MockAggregateCache) Set(ctx context.Context, entityType resource.Kind, entityID uuid.UUID, agg review.Aggregate, generation int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Set", ctx, entityType, entityID, agg, generation)
	ret0, _ := ret[0].(error)
	return ret0
}

// Set indicates an expected call of Set.
func (mr *MockAggregateCacheMockRecorder) Set(ctx, entityType, entityID, agg, generation any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Set", reflect.TypeOf((*MockAggregateCache)(nil).Set), ctx, entityType, entityID, agg, generation)
}
