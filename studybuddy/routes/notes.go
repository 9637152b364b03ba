package routes

import (
	"encoding/json"
	"net/http"

	"studybuddy/studybuddy/config"
	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/middlewares"
	"studybuddy/studybuddy/types"
	"studybuddy/studybuddy/utils/httputils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func NotesRoutes(ctrl *controllers.NotesController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(cfg))

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req types.CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		note, err := ctrl.Create(r.Context(), middlewares.UserID(r), req)
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusCreated, map[string]interface{}{"note": note}, "Note created successfully")
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		list, err := ctrl.List(r.Context(), middlewares.UserID(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"notes": list}, "Notes retrieved successfully")
	})

	r.Get("/{noteID}", func(w http.ResponseWriter, r *http.Request) {
		noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
		if err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid note id")
			return
		}
		note, err := ctrl.Get(r.Context(), noteID, middlewares.UserID(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"note": note}, "Note retrieved successfully")
	})

	r.Post("/motivational-message", func(w http.ResponseWriter, r *http.Request) {
		var req types.MotivationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
		msg := ctrl.Motivation(r.Context(), req)
		httputils.Success(w, http.StatusOK, map[string]interface{}{"motivationalMessage": msg}, "Motivational message generated successfully")
	})

	r.Post("/{noteID}/flashcards", func(w http.ResponseWriter, r *http.Request) {
		noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
		if err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid note id")
			return
		}
		cards, err := ctrl.Flashcards(r.Context(), noteID, middlewares.UserID(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"flashcards": cards}, "Flashcards generated successfully")
	})

	r.Post("/{noteID}/quiz", func(w http.ResponseWriter, r *http.Request) {
		noteID, err := uuid.Parse(chi.URLParam(r, "noteID"))
		if err != nil {
			httputils.Error(w, http.StatusBadRequest, "invalid note id")
			return
		}
		quiz, err := ctrl.Quiz(r.Context(), noteID, middlewares.UserID(r))
		if err != nil {
			writeErr(w, err)
			return
		}
		httputils.Success(w, http.StatusOK, map[string]interface{}{"quiz": quiz}, "Quiz generated successfully")
	})

	return r
}
