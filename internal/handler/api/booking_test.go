//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/identity"
	"reservation-hub/internal/domain/resource"
	"reservation-hub/internal/handler/api"
	resdto "reservation-hub/internal/handler/dto/response"
	"reservation-hub/internal/handler/middleware"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/queries"
	"reservation-hub/tests/common/builder"
	"reservation-hub/tests/common/httptest"
	"reservation-hub/tests/common/testutil"
	commandsmock "reservation-hub/tests/mock/commands"
	queriesmock "reservation-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeAuth stands in for the identity gate: any bearer token authenticates
// as the suite's caller.
func fakeAuth(caller *identity.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": api.CodeUnauthenticated, "message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, *caller)
		c.Next()
	}
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	caller       identity.Identity
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.caller = identity.Identity{UserID: uuid.New(), DisplayName: "Ana"}

	auth := fakeAuth(&s.caller)
	s.router.POST("/bookings", auth, s.handler.Reserve)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.POST("/bookings/:id/cancel", auth, s.handler.Cancel)
	s.router.GET("/users/me/bookings", auth, s.handler.ListMine)
	s.router.GET("/resources/:id/bookings", auth, s.handler.ListByResource)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *BookingHandlerTestSuite) TestReserve() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildReserveRequestDTO()

	s.Run("success: 201 Created with booking id and status", func() {
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), s.caller).
			DoAndReturn(func(_ any, req commands.ReserveRequest, _ identity.Identity) (*commands.ReserveResult, error) {
				s.Equal(b.ResourceID, req.ResourceID)
				s.Equal(b.TimeUnit, req.TimeUnit)
				s.Equal(b.Quantity, req.Quantity)
				s.Nil(req.IdempotencyKey)
				return &commands.ReserveResult{BookingID: b.ID, Status: booking.StatusConfirmed}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(b.ID, body.BookingID)
		s.Equal("CONFIRMED", body.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + b.ID.String()})
	})

	s.Run("success: idempotent replay returns 200 with the original booking", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().
			Reserve(gomock.Any(), gomock.Any(), s.caller).
			DoAndReturn(func(_ any, req commands.ReserveRequest, _ identity.Identity) (*commands.ReserveResult, error) {
				s.Require().NotNil(req.IdempotencyKey)
				s.Equal(key, *req.IdempotencyKey)
				return &commands.ReserveResult{BookingID: b.ID, Status: booking.StatusConfirmed, Replayed: true}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": key.String()})

		var body resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.ID, body.BookingID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on malformed Idempotency-Key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token",
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidIdempotency)
	})

	s.Run("error: 400 on body validation", func() {
		testCases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode string
		}{
			{name: "missing resourceId", mutate: testutil.Field("resourceId", nil), expectCode: api.CodeInvalidRequest},
			{name: "missing quantity", mutate: testutil.Field("quantity", nil), expectCode: api.CodeInvalidQuantity},
			{name: "fractional quantity", mutate: testutil.Field("quantity", 1.5), expectCode: api.CodeInvalidQuantity},
			{name: "quantity as string", mutate: testutil.Field("quantity", "two"), expectCode: api.CodeInvalidQuantity},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, tc.expectCode)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "capacity exceeded",
				commandsError:  errs.Wrapf(commands.ErrCapacityExceeded, "booking %s rejected", uuid.New()),
				expectedStatus: http.StatusConflict,
				expectedCode:   api.CodeCapacityExceeded,
			},
			{
				name:           "idempotency key reused for another request",
				commandsError:  commands.ErrIdempotencyKeyMismatch,
				expectedStatus: http.StatusConflict,
				expectedCode:   api.CodeIdempotencyMismatch,
			},
			{
				name:           "quantity above capacity",
				commandsError:  resource.ErrInvalidQuantity,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   api.CodeInvalidQuantity,
			},
			{
				name:           "undeclared time unit",
				commandsError:  resource.ErrInvalidTimeUnit,
				expectedStatus: http.StatusBadRequest,
				expectedCode:   api.CodeInvalidTimeUnit,
			},
			{
				name:           "unknown resource",
				commandsError:  commands.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedCode:   api.CodeResourceNotFound,
			},
			{
				name:           "retries exhausted",
				commandsError:  errs.Mark(errors.New("lock timeout"), errs.ErrTransient),
				expectedStatus: http.StatusServiceUnavailable,
				expectedCode:   api.CodeRetryable,
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   api.CodeInternal,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
				if tc.expectedStatus == http.StatusServiceUnavailable {
					s.NotEmpty(rec.Header().Get("Retry-After"))
				}
			})
		}
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancel() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("success: 200 with CANCELLED status", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.caller).
			Return(&commands.CancelResult{BookingID: bookingID, Status: booking.StatusCancelled}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(bookingID, body.BookingID)
		s.Equal("CANCELLED", body.Status)
	})

	s.Run("success: repeated cancel is still 200", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, s.caller).
			Return(&commands.CancelResult{BookingID: bookingID, Status: booking.StatusCancelled, AlreadyCancelled: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/not-a-uuid/cancel", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidRequest)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedCode   string
		}{
			{"not the booking user nor the resource owner", commands.ErrForbidden, http.StatusForbidden, api.CodeForbidden},
			{"unknown booking", commands.ErrBookingNotFound, http.StatusNotFound, api.CodeNotFound},
			{"rejected booking", booking.ErrNotCancellable, http.StatusConflict, api.CodeNotCancellable},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithUserID(s.caller.UserID).BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: 200 with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.caller).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.ResourceID, body.ResourceID)
		s.Equal(view.Quantity, body.Quantity)
		s.Equal(view.Status, body.Status)
		s.True(view.CreatedAt.Equal(body.CreatedAt))
	})

	s.Run("error: 403 for someone else's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.caller).Return(nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, api.CodeForbidden)
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.caller).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, api.CodeNotFound)
	})
}

// ================================================================================
// TestListMine / TestListByResource
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	url := "/users/me/bookings"
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithUserID(s.caller.UserID).BuildView(),
		builder.NewBookingBuilder().WithUserID(s.caller.UserID).WithStatus(booking.StatusRejected).BuildView(),
	}
	next := &queries.Cursor{After: queries.EncodeAfterCursor(views[1].CreatedAt, views[1].ID)}

	s.Run("success: first page with next cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.caller.UserID, s.caller, (*queries.Cursor)(nil), 2).
			Return(views, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Equal("REJECTED", body.Items[1].Status)
		s.Require().NotNil(body.NextCursor)
		s.Equal(next.After, *body.NextCursor)
	})

	s.Run("success: cursor is passed through and last page has no next cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.caller.UserID, s.caller, &queries.Cursor{After: next.After}, 0).
			Return([]*queries.BookingView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor="+next.After, nil, "bearer-token")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotContains(body, "nextCursor")
		s.Equal([]any{}, body["items"])
	})

	s.Run("error: 400 on invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=abc", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidRequest)
	})

	s.Run("error: 400 on corrupt cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=garbage", nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeInvalidCursor)
	})
}

func (s *BookingHandlerTestSuite) TestListByResource() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String() + "/bookings"

	s.Run("success: owner reads the ledger", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView()}
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), resourceID, s.caller, (*queries.Cursor)(nil), 0).
			Return(views, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 403 for non-owners", func() {
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), resourceID, s.caller, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, api.CodeForbidden)
	})
}
