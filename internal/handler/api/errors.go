package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"reservation-hub/internal/domain/booking"
	"reservation-hub/internal/domain/resource"
	domreview "reservation-hub/internal/domain/review"
	"reservation-hub/internal/handler/httperr"
	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidQuantity      = "INVALID_QUANTITY"
	CodeInvalidTimeUnit      = "INVALID_TIME_UNIT"
	CodeInvalidRating        = "INVALID_RATING"
	CodeInvalidComment       = "INVALID_COMMENT"
	CodeInvalidEntityType    = "INVALID_ENTITY_TYPE"
	CodeInvalidResource      = "INVALID_RESOURCE"
	CodeInvalidCursor        = "INVALID_CURSOR"
	CodeInvalidIdempotency   = "INVALID_IDEMPOTENCY_KEY"
	CodeUnauthenticated      = "UNAUTHENTICATED"
	CodeForbidden            = "FORBIDDEN"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeEntityNotFound       = "ENTITY_NOT_FOUND"
	CodeNotFound             = "NOT_FOUND"
	CodeCapacityExceeded     = "CAPACITY_EXCEEDED"
	CodeDuplicateReview      = "DUPLICATE_REVIEW"
	CodeNotCancellable       = "BOOKING_NOT_CANCELLABLE"
	CodeIdempotencyMismatch  = "IDEMPOTENCY_KEY_MISMATCH"
	CodeConflict             = "CONFLICT"
	CodeRetryable            = "RETRYABLE"
	CodeInternal             = "INTERNAL"
	retryAfterSeconds        = 1
	internalErrorMessage     = "Internal server error"
	retryableErrorMessage    = "The request could not be completed due to contention, retry later"
	invalidRequestMessage    = "Invalid request"
	invalidIdentifierMessage = "Invalid id"
)

type errorRule struct {
	target error
	status int
	code   string
}

// Most specific first. Sentinels carry a public message, so the response
// reuses it.
var errorRules = []errorRule{
	{commands.ErrCapacityExceeded, http.StatusConflict, CodeCapacityExceeded},
	{commands.ErrDuplicateReview, http.StatusConflict, CodeDuplicateReview},
	{commands.ErrIdempotencyKeyMismatch, http.StatusConflict, CodeIdempotencyMismatch},
	{booking.ErrNotCancellable, http.StatusConflict, CodeNotCancellable},

	{booking.ErrInvalidQuantity, http.StatusBadRequest, CodeInvalidQuantity},
	{resource.ErrInvalidQuantity, http.StatusBadRequest, CodeInvalidQuantity},
	{resource.ErrInvalidTimeUnit, http.StatusBadRequest, CodeInvalidTimeUnit},
	{queries.ErrInvalidTimeUnit, http.StatusBadRequest, CodeInvalidTimeUnit},
	{resource.ErrMalformedTimeUnit, http.StatusBadRequest, CodeInvalidTimeUnit},
	{resource.ErrDuplicateTimeUnit, http.StatusBadRequest, CodeInvalidTimeUnit},
	{resource.ErrTooManyTimeUnits, http.StatusBadRequest, CodeInvalidTimeUnit},
	{domreview.ErrInvalidRating, http.StatusBadRequest, CodeInvalidRating},
	{domreview.ErrCommentTooLong, http.StatusBadRequest, CodeInvalidComment},
	{resource.ErrInvalidKind, http.StatusBadRequest, CodeInvalidEntityType},
	{resource.ErrEmptyResourceName, http.StatusBadRequest, CodeInvalidResource},
	{resource.ErrResourceNameTooLong, http.StatusBadRequest, CodeInvalidResource},
	{resource.ErrInvalidCapacity, http.StatusBadRequest, CodeInvalidResource},
	{queries.ErrInvalidCursor, http.StatusBadRequest, CodeInvalidCursor},

	{commands.ErrResourceNotFound, http.StatusNotFound, CodeResourceNotFound},
	{queries.ErrResourceNotFound, http.StatusNotFound, CodeResourceNotFound},
	{commands.ErrEntityNotFound, http.StatusNotFound, CodeEntityNotFound},
	{queries.ErrEntityNotFound, http.StatusNotFound, CodeEntityNotFound},
}

// Fallback by error class for sentinels without an explicit rule.
var classRules = []errorRule{
	{errs.ErrValidation, http.StatusBadRequest, CodeInvalidRequest},
	{errs.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthenticated},
	{errs.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{errs.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{errs.ErrConflict, http.StatusConflict, CodeConflict},
}

// abortWithUseCaseError translates a domain or use case error into the
// response envelope. Unknown errors become 500 without leaking their text.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, r := range errorRules {
		if errs.Is(err, r.target) {
			httperr.AbortWithError(c, r.status, err, r.code, r.target.Error(), nil)
			return
		}
	}

	if errs.Is(err, errs.ErrTransient) {
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, CodeRetryable, retryableErrorMessage, nil)
		return
	}

	for _, r := range classRules {
		if errs.Is(err, r.target) {
			httperr.AbortWithError(c, r.status, err, r.code, publicMessage(err), nil)
			return
		}
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, CodeInternal, internalErrorMessage, nil)
}

// publicMessage drops the wrap chain and keeps the sentinel text, which is
// the innermost message.
func publicMessage(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// fieldCodes lets body validation failures on these fields carry the same
// code the domain would have produced.
var fieldCodes = map[string]string{
	"rating":     CodeInvalidRating,
	"quantity":   CodeInvalidQuantity,
	"timeUnit":   CodeInvalidTimeUnit,
	"entityType": CodeInvalidEntityType,
	"comment":    CodeInvalidComment,
}

// abortWithBindError reports a request body that failed to decode or to
// satisfy its binding tags.
func abortWithBindError(c *gin.Context, err error) {
	code := CodeInvalidRequest
	var detail []fieldError

	var typeErr *json.UnmarshalTypeError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &typeErr):
		detail = append(detail, fieldError{Field: typeErr.Field, Rule: "type"})
		if fc, ok := fieldCodes[typeErr.Field]; ok {
			code = fc
		}
	case errors.As(err, &verrs):
		for _, fe := range verrs {
			field := jsonFieldName(fe.Field())
			detail = append(detail, fieldError{Field: field, Rule: fe.Tag()})
			if fc, ok := fieldCodes[field]; ok && code == CodeInvalidRequest {
				code = fc
			}
		}
	}

	if detail == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, code, invalidRequestMessage, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, code, invalidRequestMessage, detail)
}

// Struct field names are Go-cased; the wire names are their lowerCamel form.
func jsonFieldName(goName string) string {
	if goName == "" {
		return goName
	}
	switch goName {
	case "EntityID":
		return "entityId"
	case "ResourceID":
		return "resourceId"
	}
	return strings.ToLower(goName[:1]) + goName[1:]
}

func abortWithInvalidID(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, CodeInvalidRequest, invalidIdentifierMessage, nil)
}
