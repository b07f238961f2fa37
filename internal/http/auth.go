package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/meetwonka/authinfo/internal/auth"
)

func (a *API) principalMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Health checks never carry a principal
		if r.URL.Path == "/healthz" || r.URL.Path == "/readyz" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		header := strings.TrimSpace(r.Header.Get(auth.HeaderName))
		if header == "" {
			if a.fallback == nil {
				next.ServeHTTP(w, r)
				return
			}

			encoded, err := auth.EncodeHeader(*a.fallback)
			if err != nil {
				a.Logger.ErrorContext(ctx, "encoding fallback principal", "err", err.Error())
				err = encode(w, r, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
				if err != nil {
					a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
				}
				return
			}

			a.Logger.DebugContext(ctx, "attaching fallback principal", "user_id", a.fallback.UserID, "path", r.URL.Path)
			r = r.Clone(auth.WithPrincipal(ctx, *a.fallback))
			r.Header.Set(auth.HeaderName, encoded)
			next.ServeHTTP(w, r)
			return
		}

		principal, err := auth.DecodeHeader(header)
		if err != nil {
			a.Logger.WarnContext(ctx, "rejecting client principal header", "err", err.Error())
			msg := "invalid client principal"
			if errors.Is(err, auth.ErrMalformedHeader) {
				msg = "malformed client principal header"
			}
			err = encode(w, r, http.StatusBadRequest, ErrorResponse{Error: msg})
			if err != nil {
				a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(ctx, principal)))
	})
}
