package psychology

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/utils/syncutil"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrDuplicateSubmission is returned when the user already has an
// assessment for the calendar day.
var ErrDuplicateSubmission = errors.New("You have already taken the psychology test today")

// AssessmentStore is the persistence collaborator for the engine.
type AssessmentStore interface {
	FindInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) (*models.Assessment, error)
	Insert(ctx context.Context, a *models.Assessment) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Assessment, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.Assessment, error)
}

// Engine scores daily stress assessments and persists the result through
// its store. Stateless apart from the per-user submission lock.
type Engine struct {
	store AssessmentStore
	mu    syncutil.KeyedMutex
}

func NewEngine(store AssessmentStore) *Engine {
	return &Engine{store: store}
}

type TodayStatus struct {
	HasTakenToday bool               `json:"hasTakenToday"`
	Assessment    *models.Assessment `json:"test"`
}

type TrendPoint struct {
	Date        time.Time `json:"date"`
	StressLevel string    `json:"stressLevel"`
	Score       int       `json:"score"`
}

// Submit validates and scores the responses, rejects a second submission
// for the same calendar day, and persists exactly one new assessment.
// Submissions are serialized per user so concurrent requests cannot both
// pass the duplicate check.
func (e *Engine) Submit(ctx context.Context, userID uuid.UUID, at time.Time, responses map[string]string) (*models.Assessment, error) {
	level, score, err := ScoreResponses(responses)
	if err != nil {
		return nil, err
	}

	e.mu.Lock(userID.String())
	defer e.mu.Unlock(userID.String())

	start, end := dayBounds(at)
	existing, err := e.store.FindInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("checking today's assessment: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateSubmission
	}

	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return nil, err
	}
	recs := RecommendationsFor(level)
	recsJSON, err := json.Marshal(recs)
	if err != nil {
		return nil, err
	}

	assessment := &models.Assessment{
		UserID:            userID,
		Date:              at,
		Responses:         datatypes.JSON(responsesJSON),
		StressLevel:       level,
		Score:             score,
		Recommendations:   datatypes.JSON(recsJSON),
		MotivationalQuote: MotivationalQuoteFor(level),
	}
	if err := e.store.Insert(ctx, assessment); err != nil {
		return nil, fmt.Errorf("saving assessment: %w", err)
	}
	return assessment, nil
}

// TodayStatus reports whether the user has an assessment for now's
// calendar day, using the same half-open range as Submit.
func (e *Engine) TodayStatus(ctx context.Context, userID uuid.UUID, now time.Time) (*TodayStatus, error) {
	start, end := dayBounds(now)
	existing, err := e.store.FindInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return &TodayStatus{HasTakenToday: existing != nil, Assessment: existing}, nil
}

const defaultHistoryLimit = 30

// History returns up to limit assessments, most recent date first.
func (e *Engine) History(ctx context.Context, userID uuid.UUID, limit int) ([]models.Assessment, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return e.store.ListRecent(ctx, userID, limit)
}

const defaultTrendDays = 7

// Trends returns the (date, level, score) series for the trailing window,
// oldest first.
func (e *Engine) Trends(ctx context.Context, userID uuid.UUID, now time.Time, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = defaultTrendDays
	}
	since := now.AddDate(0, 0, -days)
	assessments, err := e.store.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	points := make([]TrendPoint, 0, len(assessments))
	for _, a := range assessments {
		points = append(points, TrendPoint{Date: a.Date, StressLevel: a.StressLevel, Score: a.Score})
	}
	return points, nil
}

// dayBounds returns the half-open [startOfDay, startOfDay+24h) window
// around t in t's location.
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
