package review

import (
	"time"

	"reservation-hub/internal/domain/resource"

	"github.com/google/uuid"
)

type Review struct {
	id          uuid.UUID
	entityType  resource.Kind
	entityID    uuid.UUID
	userID      uuid.UUID
	displayName string
	rating      Rating
	comment     Comment
	createdAt   time.Time
}

func NewReview(id uuid.UUID, entityType resource.Kind, entityID, userID uuid.UUID, displayName string, ratingValue int, commentText string, now time.Time) (*Review, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingAuthor
	}

	if !entityType.IsValid() {
		return nil, resource.ErrInvalidKind
	}

	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:          id,
		entityType:  entityType,
		entityID:    entityID,
		userID:      userID,
		displayName: displayName,
		rating:      rating,
		comment:     comment,
		createdAt:   now,
	}, nil
}

func (r *Review) ID() uuid.UUID             { return r.id }
func (r *Review) EntityType() resource.Kind { return r.entityType }
func (r *Review) EntityID() uuid.UUID       { return r.entityID }
func (r *Review) UserID() uuid.UUID         { return r.userID }
func (r *Review) DisplayName() string       { return r.displayName }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
