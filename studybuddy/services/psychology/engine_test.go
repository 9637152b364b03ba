package psychology

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
)

type fakeAssessmentStore struct {
	assessments []models.Assessment
}

func (s *fakeAssessmentStore) FindInRange(_ context.Context, userID uuid.UUID, start, end time.Time) (*models.Assessment, error) {
	for i := range s.assessments {
		a := s.assessments[i]
		if a.UserID == userID && !a.Date.Before(start) && a.Date.Before(end) {
			return &a, nil
		}
	}
	return nil, nil
}

func (s *fakeAssessmentStore) Insert(_ context.Context, a *models.Assessment) error {
	a.ID = uuid.New()
	s.assessments = append(s.assessments, *a)
	return nil
}

func (s *fakeAssessmentStore) ListRecent(_ context.Context, userID uuid.UUID, limit int) ([]models.Assessment, error) {
	var out []models.Assessment
	for _, a := range s.assessments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeAssessmentStore) ListSince(_ context.Context, userID uuid.UUID, since time.Time) ([]models.Assessment, error) {
	var out []models.Assessment
	for _, a := range s.assessments {
		if a.UserID == userID && !a.Date.Before(since) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func validResponses() map[string]string {
	out := make(map[string]string, len(QuestionKeys))
	for _, key := range QuestionKeys {
		out[key] = "B"
	}
	return out
}

func TestSubmitPersistsDerivedFields(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)

	a, err := engine.Submit(context.Background(), userID, now, validResponses())
	if err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if a.Score != 10 || a.StressLevel != LevelModerate {
		t.Fatalf("got (%s, %d), want (moderate, 10)", a.StressLevel, a.Score)
	}

	var persisted map[string]string
	if err := json.Unmarshal(a.Responses, &persisted); err != nil {
		t.Fatalf("responses not valid JSON: %v", err)
	}
	if persisted["energy"] != "B" {
		t.Fatalf("persisted responses lost the literal code: %q", persisted["energy"])
	}
	var recs []string
	if err := json.Unmarshal(a.Recommendations, &recs); err != nil {
		t.Fatalf("recommendations not valid JSON: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected non-empty recommendations")
	}
	if a.MotivationalQuote == "" {
		t.Fatal("expected a motivational quote")
	}
	if len(store.assessments) != 1 {
		t.Fatalf("expected exactly one persisted row, got %d", len(store.assessments))
	}
}

func TestSubmitRejectsSecondSameDay(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

	if _, err := engine.Submit(context.Background(), userID, morning, validResponses()); err != nil {
		t.Fatalf("first Submit err: %v", err)
	}
	_, err := engine.Submit(context.Background(), userID, evening, validResponses())
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(store.assessments) != 1 {
		t.Fatalf("duplicate submission persisted a row: %d rows", len(store.assessments))
	}
}

func TestSubmitNextDaySucceeds(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	day1 := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)

	if _, err := engine.Submit(context.Background(), userID, day1, validResponses()); err != nil {
		t.Fatalf("day1 Submit err: %v", err)
	}
	if _, err := engine.Submit(context.Background(), userID, day2, validResponses()); err != nil {
		t.Fatalf("day2 Submit err: %v", err)
	}
}

func TestSubmitOtherUserSameDaySucceeds(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	if _, err := engine.Submit(context.Background(), uuid.New(), now, validResponses()); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	if _, err := engine.Submit(context.Background(), uuid.New(), now, validResponses()); err != nil {
		t.Fatalf("other user Submit err: %v", err)
	}
}

func TestTodayStatusFlips(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	status, err := engine.TodayStatus(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("TodayStatus err: %v", err)
	}
	if status.HasTakenToday || status.Assessment != nil {
		t.Fatal("expected hasTakenToday=false before any submission")
	}

	if _, err := engine.Submit(context.Background(), userID, now, validResponses()); err != nil {
		t.Fatalf("Submit err: %v", err)
	}
	status, err = engine.TodayStatus(context.Background(), userID, now)
	if err != nil {
		t.Fatalf("TodayStatus err: %v", err)
	}
	if !status.HasTakenToday || status.Assessment == nil {
		t.Fatal("expected hasTakenToday=true after submission")
	}
}

func TestHistoryLimitAndOrder(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		if _, err := engine.Submit(context.Background(), userID, base.AddDate(0, 0, i), validResponses()); err != nil {
			t.Fatalf("Submit day %d err: %v", i, err)
		}
	}

	history, err := engine.History(context.Background(), userID, 2)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if !history[0].Date.After(history[1].Date) {
		t.Fatal("expected most recent date first")
	}
}

func TestTrendsAscendingWithinWindow(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	userID := uuid.New()
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)
	for _, daysAgo := range []int{10, 5, 2, 1} {
		if _, err := engine.Submit(context.Background(), userID, now.AddDate(0, 0, -daysAgo), validResponses()); err != nil {
			t.Fatalf("Submit err: %v", err)
		}
	}

	trends, err := engine.Trends(context.Background(), userID, now, 7)
	if err != nil {
		t.Fatalf("Trends err: %v", err)
	}
	if len(trends) != 3 {
		t.Fatalf("expected 3 points inside the 7-day window, got %d", len(trends))
	}
	for i := 1; i < len(trends); i++ {
		if trends[i].Date.Before(trends[i-1].Date) {
			t.Fatal("expected oldest-first ordering")
		}
	}
}

func TestSubmitValidationDoesNotTouchStore(t *testing.T) {
	store := &fakeAssessmentStore{}
	engine := NewEngine(store)
	bad := validResponses()
	bad["focus"] = "Z"

	_, err := engine.Submit(context.Background(), uuid.New(), time.Now(), bad)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.assessments) != 0 {
		t.Fatal("validation failure must not persist anything")
	}
}
