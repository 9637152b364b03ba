package routes

import (
	"errors"
	"net/http"

	"studybuddy/studybuddy/controllers"
	"studybuddy/studybuddy/services/notes"
	"studybuddy/studybuddy/services/psychology"
	"studybuddy/studybuddy/services/studyroom"
	"studybuddy/studybuddy/utils/httputils"
)

// writeErr maps service errors onto HTTP statuses; anything unrecognized
// is a 500.
func writeErr(w http.ResponseWriter, err error) {
	var validation *psychology.ValidationError

	switch {
	case errors.As(err, &validation):
		httputils.Error(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, psychology.ErrDuplicateSubmission),
		errors.Is(err, controllers.ErrMissingFields),
		errors.Is(err, controllers.ErrEmailTaken),
		errors.Is(err, studyroom.ErrRoomInactive),
		errors.Is(err, studyroom.ErrRoomFull),
		errors.Is(err, studyroom.ErrAlreadyMember),
		errors.Is(err, studyroom.ErrEmptyMessage),
		errors.Is(err, notes.ErrEmptyContent):
		httputils.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, controllers.ErrInvalidCredentials):
		httputils.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, studyroom.ErrNotMember),
		errors.Is(err, studyroom.ErrNotCreator):
		httputils.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, studyroom.ErrRoomNotFound),
		errors.Is(err, notes.ErrNoteNotFound):
		httputils.Error(w, http.StatusNotFound, err.Error())
	default:
		httputils.Error(w, http.StatusInternalServerError, err.Error())
	}
}
