package http

import (
	"log/slog"
	"net/http"

	"github.com/meetwonka/authinfo/internal/auth"
)

// API wraps handlers with the client principal the hosting platform would
// attach. A fallback principal stands in for the platform during local
// development.
type API struct {
	Logger   *slog.Logger
	fallback *auth.ClientPrincipal
}

func NewAPI(logger *slog.Logger, fallback *auth.ClientPrincipal) *API {
	if logger == nil {
		logger = slog.Default()
	}
	api := &API{Logger: logger}
	if fallback != nil {
		principal := fallback.Clone()
		api.fallback = &principal
	}
	return api
}

func (a *API) Wrap(next http.Handler) http.Handler {
	return a.principalMiddleware(next)
}
