package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth resolves the caller identity through [service.AuthService] and stores
// it in the request context under [utils.IdentityCtxKey]. Requests without a
// valid bearer token are rejected with 401 before any handler runs. Failed
// attempts are rate limited per client address.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		identity, err := h.services.AuthService.ResolveIdentity(r)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("request is not authenticated")
			if !h.allow(w, r, "addr:"+clientIP(r)) {
				return
			}
			utils.WriteMessage(w, app.MsgNotAuthenticated, http.StatusUnauthorized)
			return
		}

		ctx := utils.WithIdentity(r.Context(), identity)

		// every later log line of this request carries the identity hash
		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("owner", ownerTag(identity))
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
