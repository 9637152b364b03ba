package routes

import (
	"net/http"

	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/go-chi/chi/v5"
)

func HealthRoutes(ctrl *controllers.HealthController) chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		status := ctrl.Check(r.Context())
		code := http.StatusOK
		if status.Status != "ok" {
			code = http.StatusServiceUnavailable
		}
		httputils.Success(w, code, status, "Health check")
	})
	return r
}
