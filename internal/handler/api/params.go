package api

import (
	"strconv"

	"reservation-hub/internal/pkg/errs"
	"reservation-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidLimit = errs.Class("limit must be a positive integer", errs.ErrValidation)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithInvalidID(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads `cursor` (or the older `after`) and `limit`. A missing
// limit falls back to the query default.
func pageParams(c *gin.Context) (*queries.Cursor, int, bool) {
	after := c.Query("cursor")
	if after == "" {
		after = c.Query("after")
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortWithUseCaseError(c, errInvalidLimit)
			return nil, 0, false
		}
		limit = n
	}

	var cursor *queries.Cursor
	if after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit, true
}
