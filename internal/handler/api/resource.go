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

type ResourceHandler struct {
	cmds commands.ResourceCommands
	q    queries.ResourceQueries
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q}
}

// @Summary Register resource
// @Description Owners register a bookable resource with its capacity and time units.
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterResourceRequest true "Resource definition"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /resources [post]
func (h *ResourceHandler) Register(c *gin.Context) {
	var req reqdto.RegisterResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	actor, _ := middleware.GetIdentity(c)

	id, err := h.cmds.Register(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/resources/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromResourceView(view))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Resource availability
// @Description Capacity left for one time unit. Omit timeUnit for resources without time units.
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Param timeUnit query string false "YYYY-MM-DD or YYYY-MM-DDTHH:MM"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.Availability(c.Request.Context(), id, c.Query("timeUnit"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}
