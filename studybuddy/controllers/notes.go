package controllers

import (
	"context"
	"strings"

	"studybuddy/studybuddy/services/llm"
	"studybuddy/studybuddy/services/notes"
	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/types"

	"github.com/google/uuid"
)

type NotesController struct {
	svc *notes.Service
}

func NewNotesController(svc *notes.Service) *NotesController {
	return &NotesController{svc: svc}
}

func (c *NotesController) Create(ctx context.Context, userID uuid.UUID, req types.CreateNoteRequest) (*models.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingFields
	}
	if strings.TrimSpace(req.URL) != "" {
		return c.svc.CreateFromURL(ctx, userID, title, req.Subject, req.URL)
	}
	return c.svc.CreateFromText(ctx, userID, title, req.Subject, req.Content)
}

func (c *NotesController) List(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	return c.svc.List(ctx, userID)
}

func (c *NotesController) Get(ctx context.Context, noteID, userID uuid.UUID) (*models.Note, error) {
	return c.svc.Get(ctx, noteID, userID)
}

func (c *NotesController) Flashcards(ctx context.Context, noteID, userID uuid.UUID) ([]llm.Flashcard, error) {
	return c.svc.Flashcards(ctx, noteID, userID)
}

func (c *NotesController) Quiz(ctx context.Context, noteID, userID uuid.UUID) ([]llm.QuizQuestion, error) {
	return c.svc.Quiz(ctx, noteID, userID)
}

// Motivation never fails; missing inputs default and generator errors
// degrade to a fixed encouragement inside the service.
func (c *NotesController) Motivation(ctx context.Context, req types.MotivationRequest) string {
	stress := strings.TrimSpace(req.StressLevel)
	if stress == "" {
		stress = "moderate"
	}
	progress := strings.TrimSpace(req.Progress)
	if progress == "" {
		progress = "making steady progress"
	}
	return c.svc.MotivationalMessage(ctx, stress, progress)
}
