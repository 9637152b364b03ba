package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"studybuddy/studybuddy/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestKeyfuncRejectsNonHMAC(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, err := jwt.Parse(signed, Keyfunc(cfg)); err == nil {
		t.Fatal("non-HMAC token must not parse")
	}
}

func TestKeyfuncAcceptsHS256(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret"}
	userID := uuid.NewString()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	parsed, err := jwt.Parse(signed, Keyfunc(cfg))
	if err != nil || !parsed.Valid {
		t.Fatalf("valid HS256 token rejected: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["user_id"] != userID {
		t.Fatalf("user_id claim lost: %v", claims["user_id"])
	}
}

func TestAuthMiddlewareRejectsNoneAlg(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret"}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	called := false
	handler := AuthMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if called {
		t.Fatal("handler must not run for a rejected token")
	}
}

func TestAuthMiddlewarePassesUserID(t *testing.T) {
	cfg := config.Config{JWTSecret: "secret"}
	userID := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"role":    "student",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	var got uuid.UUID
	handler := AuthMiddleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserID(r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got != userID {
		t.Fatalf("context user id %s, want %s", got, userID)
	}
}
