package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/services/notes"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type stubGenerator struct {
	prompts []string
	reply   string
	err     error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.NewString(),
		"role":    "student",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func motivationRouter(gen *stubGenerator, cfg config.Config) http.Handler {
	svc := notes.NewService(nil, nil, gen)
	return NotesRoutes(controllers.NewNotesController(svc), cfg)
}

func postMotivation(handler http.Handler, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/motivational-message", strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMotivationalMessageEndpoint(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	gen := &stubGenerator{reply: "Three mock tests down, keep that streak alive!"}
	handler := motivationRouter(gen, cfg)

	rec := postMotivation(handler, signToken(t, cfg.JWTSecret),
		`{"stressLevel":"high","progress":"completed 3 mock tests"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success envelope")
	}
	if resp.Data["motivationalMessage"] != gen.reply {
		t.Fatalf("unexpected message: %q", resp.Data["motivationalMessage"])
	}

	if len(gen.prompts) != 1 {
		t.Fatalf("expected one generator call, got %d", len(gen.prompts))
	}
	if !strings.Contains(gen.prompts[0], "high") || !strings.Contains(gen.prompts[0], "completed 3 mock tests") {
		t.Fatal("prompt must carry the caller's stress level and progress")
	}
}

func TestMotivationalMessageGeneratorFailureFallsBack(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	gen := &stubGenerator{err: errors.New("model unavailable")}
	handler := motivationRouter(gen, cfg)

	rec := postMotivation(handler, signToken(t, cfg.JWTSecret), `{}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 despite generator failure, got %d", rec.Code)
	}
	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data["motivationalMessage"] != "Keep up the great work! You're making excellent progress! 🌟" {
		t.Fatalf("expected fallback message, got %q", resp.Data["motivationalMessage"])
	}
	// Blank inputs default rather than reaching the model empty.
	if !strings.Contains(gen.prompts[0], "moderate") {
		t.Fatal("blank stress level should default to moderate")
	}
}

func TestMotivationalMessageRequiresAuth(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	handler := motivationRouter(&stubGenerator{reply: "hi"}, cfg)

	rec := postMotivation(handler, "", `{"stressLevel":"low"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", rec.Code)
	}
}
