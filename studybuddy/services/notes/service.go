package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"studybuddy/studybuddy/services/llm"
	"studybuddy/studybuddy/sources/psql/dao"
	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/sources/storage"
	"studybuddy/studybuddy/utils/logging"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyContent = errors.New("note content is required")
)

// Fallback stored when the model cannot summarize; same contract as the
// study room summarizer.
const summaryFallback = "Unable to generate summary at this time."

// Service ingests study material, stores the raw content in the object
// store and derives AI study aids from it.
type Service struct {
	notes   *dao.NoteDAO
	objects *storage.ObjectStore
	gen     llm.Generator
}

func NewService(notes *dao.NoteDAO, objects *storage.ObjectStore, gen llm.Generator) *Service {
	return &Service{notes: notes, objects: objects, gen: gen}
}

// CreateFromText stores the content and attaches an AI summary.
func (s *Service) CreateFromText(ctx context.Context, userID uuid.UUID, title, subject, content string) (*models.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	return s.create(ctx, userID, title, subject, models.NoteSourceText, "", content)
}

// CreateFromURL extracts the page text first, then behaves like
// CreateFromText.
func (s *Service) CreateFromURL(ctx context.Context, userID uuid.UUID, title, subject, sourceURL string) (*models.Note, error) {
	content, err := ExtractFromURL(ctx, sourceURL)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, userID, title, subject, models.NoteSourceURL, sourceURL, content)
}

func (s *Service) create(ctx context.Context, userID uuid.UUID, title, subject, sourceType, sourceURL, content string) (*models.Note, error) {
	defer logging.LogDuration(ctx, "notes_create")()

	noteID := uuid.New()
	key, err := s.objects.PutNoteContent(ctx, noteID, content)
	if err != nil {
		return nil, err
	}

	summary, err := s.gen.Generate(ctx, llm.NoteSummaryPrompt(content))
	if err != nil {
		summary = summaryFallback
	}

	note := &models.Note{
		ID:         noteID,
		UserID:     userID,
		Title:      title,
		Subject:    subject,
		SourceType: sourceType,
		SourceURL:  sourceURL,
		ObjectKey:  key,
		Summary:    strings.TrimSpace(summary),
	}
	if err := s.notes.Insert(ctx, note); err != nil {
		return nil, fmt.Errorf("saving note: %w", err)
	}
	return note, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	return s.notes.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, noteID, userID uuid.UUID) (*models.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, ErrNoteNotFound
	}
	return note, nil
}

// Flashcards generates and persists flashcards for a note. Parsing never
// fails; a mangled model response degrades to a placeholder card.
func (s *Service) Flashcards(ctx context.Context, noteID, userID uuid.UUID) ([]llm.Flashcard, error) {
	note, content, err := s.noteContent(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	text, err := s.gen.Generate(ctx, llm.FlashcardsPrompt(note.Subject, content))
	if err != nil {
		text = ""
	}
	cards := llm.ParseFlashcards(text)
	raw, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	if err := s.notes.UpdateFlashcards(ctx, note.ID, datatypes.JSON(raw)); err != nil {
		return nil, err
	}
	return cards, nil
}

// Quiz mirrors Flashcards for multiple-choice questions.
func (s *Service) Quiz(ctx context.Context, noteID, userID uuid.UUID) ([]llm.QuizQuestion, error) {
	note, content, err := s.noteContent(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	text, err := s.gen.Generate(ctx, llm.QuizPrompt(note.Subject, content))
	if err != nil {
		text = ""
	}
	quiz := llm.ParseQuiz(text)
	raw, err := json.Marshal(quiz)
	if err != nil {
		return nil, err
	}
	if err := s.notes.UpdateQuiz(ctx, note.ID, datatypes.JSON(raw)); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *Service) noteContent(ctx context.Context, noteID, userID uuid.UUID) (*models.Note, string, error) {
	note, err := s.Get(ctx, noteID, userID)
	if err != nil {
		return nil, "", err
	}
	content, err := s.objects.GetNoteContent(ctx, note.ObjectKey)
	if err != nil {
		return nil, "", err
	}
	return note, content, nil
}

// MotivationalMessage asks the model for a short encouragement; degrades
// to a fixed line on failure.
func (s *Service) MotivationalMessage(ctx context.Context, stressLevel, progress string) string {
	text, err := s.gen.Generate(ctx, llm.MotivationPrompt(stressLevel, progress))
	if err != nil || strings.TrimSpace(text) == "" {
		return "Keep up the great work! You're making excellent progress! 🌟"
	}
	return strings.TrimSpace(text)
}
