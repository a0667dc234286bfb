package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"reservation-hub/internal/handler/api"
	"reservation-hub/internal/handler/middleware"
	"reservation-hub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking  *api.BookingHandler
	Resource *api.ResourceHandler
	Review   *api.ReviewHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Auth        *middleware.AuthMiddleware
	RateLimiter *middleware.RateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

// Rate limiting runs after authentication so a caller with a token gets a
// per-user bucket. Public reads authenticate optionally.
func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := mw.Auth.RequireAuth()
	optionalAuth := mw.Auth.OptionalAuth()
	limit := mw.RateLimiter.Middleware()

	apiGroup := engine.Group("/api")
	{
		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Booking.Reserve, Mw: []gin.HandlerFunc{limit}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{limit}},
		})

		users := apiGroup.Group("/users")
		users.Use(requireAuth)
		addRoutes(users, []route{
			{Method: http.MethodGet, Path: "/me/bookings", Handler: h.Booking.ListMine},
		})

		resources := apiGroup.Group("/resources")
		addRoutes(resources, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Resource.Register, Mw: []gin.HandlerFunc{requireAuth, limit}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Resource.Get, Mw: []gin.HandlerFunc{optionalAuth, limit}},
			{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Resource.Availability, Mw: []gin.HandlerFunc{optionalAuth, limit}},
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: h.Booking.ListByResource, Mw: []gin.HandlerFunc{requireAuth}},
		})

		reviews := apiGroup.Group("/reviews")
		addRoutes(reviews, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Review.Submit, Mw: []gin.HandlerFunc{requireAuth, limit}},
		})

		entities := apiGroup.Group("/entities/:type/:id")
		addRoutes(entities, []route{
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.List, Mw: []gin.HandlerFunc{optionalAuth, limit}},
			{Method: http.MethodGet, Path: "/rating", Handler: h.Review.Rating, Mw: []gin.HandlerFunc{optionalAuth, limit}},
			{Method: http.MethodPost, Path: "/rating/recompute", Handler: h.Review.Recompute, Mw: []gin.HandlerFunc{requireAuth, limit}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Handle(r.Method, r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
