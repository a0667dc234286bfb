package api

import (
	"net/http"

	reqdto "reservation-hub/internal/handler/dto/request"
	resdto "reservation-hub/internal/handler/dto/response"
	"reservation-hub/internal/handler/middleware"
	"reservation-hub/internal/usecase/commands"
	"reservation-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Submit review
// @Description One review per user and entity. The rating aggregate is updated in the same transaction.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitReviewRequest true "Review"
// @Success 201 {object} resdto.SubmitReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	actor, _ := middleware.GetIdentity(c)

	result, err := h.cmds.Submit(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.SubmitReviewResponse{ReviewID: result.ReviewID})
}

// @Summary List reviews
// @Description Newest first.
// @Tags reviews
// @Produce json
// @Param type path string true "restaurant, event, activity or service"
// @Param id path string true "Entity ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /entities/{type}/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	cursor, limit, ok := pageParams(c)
	if !ok {
		return
	}

	views, next, err := h.q.ListByEntity(c.Request.Context(), c.Param("type"), id, cursor, limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(views, next))
}

// @Summary Rating aggregate
// @Tags reviews
// @Produce json
// @Param type path string true "restaurant, event, activity or service"
// @Param id path string true "Entity ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /entities/{type}/{id}/rating [get]
func (h *ReviewHandler) Rating(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Aggregate(c.Request.Context(), c.Param("type"), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingAggregate(view))
}

// @Summary Recompute rating aggregate
// @Description Rebuilds the aggregate from stored reviews and reports whether the cached value had drifted. Owners only.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param type path string true "restaurant, event, activity or service"
// @Param id path string true "Entity ID"
// @Success 200 {object} resdto.RecomputeResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /entities/{type}/{id}/rating/recompute [post]
func (h *ReviewHandler) Recompute(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	actor, _ := middleware.GetIdentity(c)

	result, err := h.cmds.RecomputeAggregate(c.Request.Context(), c.Param("type"), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecomputeResult(result))
}
