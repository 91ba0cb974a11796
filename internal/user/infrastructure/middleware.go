package infrastructure

import (
	"net/http"
	"strings"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
	pkgDomain "github.com/mmacedo-dev/bustrip/pkg/domain"
	"github.com/mmacedo-dev/bustrip/pkg/infrastructure/httpjson"
)

// RequireAdmin guards mutating routes behind a bearer token whose claims
// mark the user as an administrator.
func RequireAdmin(tokens domain.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				httpjson.RespondError(w, pkgDomain.NewUnauthorizedError("a bearer token is required"))
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				httpjson.RespondError(w, pkgDomain.NewUnauthorizedError("invalid or expired token"))
				return
			}
			if !claims.IsAdmin {
				httpjson.RespondError(w, pkgDomain.NewUnauthorizedError("administrator access is required"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
