package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/talent-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/talent-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireRole allows only tokens whose role claim is one of roles.
func RequireRole(roles ...auth.Role) func(http.Handler) http.Handler {
	allowed := make(map[auth.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrRoleNotAllowed)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, auth.ErrRoleNotAllowed)
				return
			}

			if _, ok := allowed[auth.Role(roleStr)]; !ok {
				response.HandleError(w, auth.ErrRoleNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
