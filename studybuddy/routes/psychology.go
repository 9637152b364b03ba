package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/middlewares"
	"studybuddy/studybuddy/types"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/go-chi/chi/v5"
)

func PsychologyRoutes(ctrl *controllers.PsychologyController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Post("/submit", func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitAssessmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		result, err := ctrl.Submit(r.Context(), middlewares.UserID(r), req.Responses)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusCreated, result, "Psychology test submitted successfully")
	})

	r.Get("/today-status", func(w http.ResponseWriter, r *http.Request) {
		status, err := ctrl.TodayStatus(r.Context(), middlewares.UserID(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, status, "Today's test status retrieved successfully")
	})

	r.Get("/history", func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		tests, err := ctrl.History(r.Context(), middlewares.UserID(r), limit)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"tests": tests}, "Test history retrieved successfully")
	})

	r.Get("/trends", func(w http.ResponseWriter, r *http.Request) {
		days, _ := strconv.Atoi(r.URL.Query().Get("days"))
		trends, err := ctrl.Trends(r.Context(), middlewares.UserID(r), days)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"trends": trends}, "Stress trends retrieved successfully")
	})

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.RequireAdmin)
		gr.Get("/admin/all-data", func(w http.ResponseWriter, r *http.Request) {
			tests, err := ctrl.AllUsersData(r.Context())
			if err != nil {
				writeErr(w, err)
				return
			}
			httputils.Success(w, http.StatusOK, map[string]interface{}{"tests": tests}, "All users psychology data retrieved successfully")
		})
	})

	return r
}
