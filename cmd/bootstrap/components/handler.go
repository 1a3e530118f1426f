package components

import (
	"github.com/steven-the-qa/coach-wire/internal/handler"
	"github.com/steven-the-qa/coach-wire/internal/handler/api"
	"github.com/steven-the-qa/coach-wire/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewClassHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
