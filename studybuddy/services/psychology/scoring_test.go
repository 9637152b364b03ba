package psychology

import (
	"errors"
	"testing"
)

// responsesScoring builds a valid 10-answer map whose weights sum to total.
func responsesScoring(t *testing.T, total int) map[string]string {
	t.Helper()
	if total < 0 || total > 30 {
		t.Fatalf("total %d out of range", total)
	}
	letters := []string{"A", "B", "C", "D"}
	base := total / 10
	rem := total % 10
	out := make(map[string]string, len(QuestionKeys))
	for i, key := range QuestionKeys {
		w := base
		if i < rem {
			w++
		}
		out[key] = letters[w]
	}
	return out
}

func allAnswers(value string) map[string]string {
	out := make(map[string]string, len(QuestionKeys))
	for _, key := range QuestionKeys {
		out[key] = value
	}
	return out
}

func TestScoreResponsesAllA(t *testing.T) {
	level, score, err := ScoreResponses(allAnswers("A"))
	if err != nil {
		t.Fatalf("ScoreResponses err: %v", err)
	}
	if score != 0 || level != LevelLow {
		t.Fatalf("got (%s, %d), want (low, 0)", level, score)
	}
}

func TestScoreResponsesAllD(t *testing.T) {
	level, score, err := ScoreResponses(allAnswers("D"))
	if err != nil {
		t.Fatalf("ScoreResponses err: %v", err)
	}
	if score != 30 || level != LevelSevere {
		t.Fatalf("got (%s, %d), want (severe, 30)", level, score)
	}
}

func TestScoreResponsesBoundaries(t *testing.T) {
	cases := []struct {
		total int
		level string
	}{
		{0, LevelLow},
		{5, LevelLow},
		{6, LevelModerate},
		{15, LevelModerate},
		{16, LevelHigh},
		{25, LevelHigh},
		{26, LevelSevere},
		{30, LevelSevere},
	}
	for _, tc := range cases {
		level, score, err := ScoreResponses(responsesScoring(t, tc.total))
		if err != nil {
			t.Fatalf("total %d: err %v", tc.total, err)
		}
		if score != tc.total {
			t.Errorf("total %d: got score %d", tc.total, score)
		}
		if level != tc.level {
			t.Errorf("total %d: got level %s, want %s", tc.total, level, tc.level)
		}
	}
}

func TestScoreResponsesDeterministic(t *testing.T) {
	responses := responsesScoring(t, 17)
	l1, s1, err := ScoreResponses(responses)
	if err != nil {
		t.Fatalf("ScoreResponses err: %v", err)
	}
	for i := 0; i < 10; i++ {
		l2, s2, err := ScoreResponses(responses)
		if err != nil || l1 != l2 || s1 != s2 {
			t.Fatalf("not deterministic: (%s,%d,%v) vs (%s,%d)", l2, s2, err, l1, s1)
		}
	}
}

func TestScoreResponsesMissingKey(t *testing.T) {
	responses := allAnswers("B")
	delete(responses, "sleep")
	_, _, err := ScoreResponses(responses)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "sleep" {
		t.Fatalf("expected offending field sleep, got %s", verr.Field)
	}
}

func TestScoreResponsesBadValue(t *testing.T) {
	responses := allAnswers("A")
	responses["guilt"] = "E"
	_, _, err := ScoreResponses(responses)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Field != "guilt" {
		t.Fatalf("expected offending field guilt, got %s", verr.Field)
	}
}

func TestScoreResponsesUnknownKey(t *testing.T) {
	responses := allAnswers("A")
	responses["mood"] = "A"
	_, _, err := ScoreResponses(responses)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecommendationsFallbackToModerate(t *testing.T) {
	got := RecommendationsFor("unknown-level")
	want := RecommendationsFor(LevelModerate)
	if len(got) != len(want) {
		t.Fatalf("fallback list length %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("fallback list differs at %d: %q vs %q", i, got[i], want[i])
		}
	}
}

func TestRecommendationsSevereIncludesHelpline(t *testing.T) {
	found := false
	for _, rec := range RecommendationsFor(LevelSevere) {
		if rec == "Emergency helpline: 988 (if in US)" {
			found = true
		}
	}
	if !found {
		t.Fatal("severe recommendations should include the helpline line")
	}
}

func TestMotivationalQuoteFromPool(t *testing.T) {
	for _, level := range []string{LevelLow, LevelModerate, LevelHigh, LevelSevere} {
		pool := QuotePool(level)
		for i := 0; i < 20; i++ {
			quote := MotivationalQuoteFor(level)
			ok := false
			for _, q := range pool {
				if q == quote {
					ok = true
					break
				}
			}
			if !ok {
				t.Fatalf("quote %q not in %s pool", quote, level)
			}
		}
	}
}
