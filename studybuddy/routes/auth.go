package routes

import (
	"encoding/json"
	"net/http"

	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/types"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var req types.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		result, err := ctrl.Register(r.Context(), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusCreated, result, "Registered successfully")
	})
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		result, err := ctrl.Login(r.Context(), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, result, "Logged in successfully")
	})
	return r
}
