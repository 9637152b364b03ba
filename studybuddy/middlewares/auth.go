package middlewares

import (
	"context"
	"net/http"
	"strings"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"
)

// Keyfunc is the key lookup for every token parse in the app; it rejects
// any signing method other than HMAC.
func Keyfunc(cfg config.Config) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	}
}

// AuthMiddleware validates the Bearer token and stashes user_id and role
// in the request context.
func AuthMiddleware(cfg config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				httputils.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")

			token, err := jwt.Parse(tokenStr, Keyfunc(cfg))
			if err != nil || !token.Valid {
				httputils.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				httputils.Error(w, http.StatusUnauthorized, "invalid claims")
				return
			}
			rawID, ok := claims["user_id"].(string)
			if !ok {
				httputils.Error(w, http.StatusUnauthorized, "invalid user_id claim")
				return
			}
			userID, err := uuid.Parse(rawID)
			if err != nil {
				httputils.Error(w, http.StatusUnauthorized, "invalid user_id claim")
				return
			}
			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, RoleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the admin role; mount after
// AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)
		if role != models.RoleAdmin {
			httputils.Error(w, http.StatusForbidden, "Forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID pulls the authenticated user out of the request context.
func UserID(r *http.Request) uuid.UUID {
	id, _ := r.Context().Value(UserIDKey).(uuid.UUID)
	return id
}
