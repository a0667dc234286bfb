package commands

import (
	"encoding/json"
	"time"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/review"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	TopicBookings = "bookings"
	TopicReviews  = "reviews"

	EventBookingConfirmed = "booking.confirmed"
	EventBookingRejected  = "booking.rejected"
	EventBookingCancelled = "booking.cancelled"
	EventReviewSubmitted  = "review.submitted"
	EventRatingRecomputed = "rating.recomputed"
)

type BookingEvent struct {
	BookingID  uuid.UUID `json:"bookingId"`
	ResourceID uuid.UUID `json:"resourceId"`
	TimeUnit   string    `json:"timeUnit,omitempty"`
	Quantity   int       `json:"quantity"`
	UserID     uuid.UUID `json:"userId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}

type RatingEvent struct {
	ReviewID   *uuid.UUID `json:"reviewId,omitempty"`
	EntityType string     `json:"entityType"`
	EntityID   uuid.UUID  `json:"entityId"`
	Rating     int        `json:"rating,omitempty"`
	Count      int64      `json:"count"`
	Sum        int64      `json:"sum"`
	OccurredAt time.Time  `json:"occurredAt"`
}

func bookingEvent(b *booking.Booking) (shared.OutboxEvent, error) {
	var kind string
	switch b.Status() {
	case booking.StatusConfirmed:
		kind = EventBookingConfirmed
	case booking.StatusRejected:
		kind = EventBookingRejected
	case booking.StatusCancelled:
		kind = EventBookingCancelled
	default:
		return shared.OutboxEvent{}, errs.Wrapf(booking.ErrInvalidTransition, "no event for status %s", b.Status())
	}

	return newOutboxEvent(kind, TopicBookings, BookingEvent{
		BookingID:  b.ID(),
		ResourceID: b.ResourceID(),
		TimeUnit:   b.TimeUnit(),
		Quantity:   b.Quantity(),
		UserID:     b.UserID(),
		Status:     b.Status().String(),
		OccurredAt: b.StatusChangedAt(),
	}, b.StatusChangedAt())
}

func reviewSubmittedEvent(rv *review.Review, agg review.Aggregate) (shared.OutboxEvent, error) {
	id := rv.ID()
	return newOutboxEvent(EventReviewSubmitted, TopicReviews, RatingEvent{
		ReviewID:   &id,
		EntityType: rv.EntityType().String(),
		EntityID:   rv.EntityID(),
		Rating:     rv.Rating().Value(),
		Count:      agg.Count,
		Sum:        agg.Sum,
		OccurredAt: rv.CreatedAt(),
	}, rv.CreatedAt())
}

func newOutboxEvent(kind, topic string, payload any, now time.Time) (shared.OutboxEvent, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return shared.OutboxEvent{}, errs.Wrap(err, "failed to marshal outbox payload")
	}
	return shared.OutboxEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   body,
		CreatedAt: now,
	}, nil
}
