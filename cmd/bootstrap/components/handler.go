package components

import (
	"reservation-hub/internal/handler"
	"reservation-hub/internal/handler/api"
	"reservation-hub/internal/handler/middleware"
	"reservation-hub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewResourceHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit)
		},
		func(b *api.BookingHandler, r *api.ResourceHandler, rv *api.ReviewHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Resource: r, Review: rv}
		},
		func(l *middleware.Logger, a *middleware.AuthMiddleware, rl *middleware.RateLimiter) handler.Middlewares {
			return handler.Middlewares{Logger: l, Auth: a, RateLimiter: rl}
		},
	),
	fx.Invoke(handler.NewRouter),
)
