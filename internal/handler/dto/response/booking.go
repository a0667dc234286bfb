package response

import (
	"time"

	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
}

func FromReserveResult(r *commands.ReserveResult) *ReserveResponse {
	return &ReserveResponse{BookingID: r.BookingID, Status: r.Status.String()}
}

type CancelResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
	Status    string    `json:"status"`
}

func FromCancelResult(r *commands.CancelResult) *CancelResponse {
	return &CancelResponse{BookingID: r.BookingID, Status: r.Status.String()}
}

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	ResourceID      uuid.UUID `json:"resourceId"`
	TimeUnit        string    `json:"timeUnit,omitempty"`
	Quantity        int       `json:"quantity"`
	UserID          uuid.UUID `json:"userId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	StatusChangedAt time.Time `json:"statusChangedAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return copyView[BookingResponse](v)
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromBookingList(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	return &BookingListResponse{
		Items:      copyViews[BookingResponse](views),
		NextCursor: cursorString(next),
	}
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.After == "" {
		return nil
	}
	after := c.After
	return &after
}
