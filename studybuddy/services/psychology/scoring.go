package psychology

import (
	"fmt"
	"math/rand/v2"
)

const (
	LevelLow      = "low"
	LevelModerate = "moderate"
	LevelHigh     = "high"
	LevelSevere   = "severe"
)

// QuestionKeys is the fixed questionnaire; a submission must answer exactly
// these ten.
var QuestionKeys = []string{
	"energy",
	"motivation",
	"sleep",
	"appetite",
	"sadness",
	"enjoyment",
	"focus",
	"restlessness",
	"guilt",
	"lifeWorth",
}

// Answer codes are ordinal: A is the best state, D the most concerning.
var answerWeights = map[string]int{
	"A": 0,
	"B": 1,
	"C": 2,
	"D": 3,
}

// ValidationError names the questionnaire field that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// ScoreResponses converts the ten answers into a stress level and a score
// in [0, 30]. Pure; same input always yields the same output.
func ScoreResponses(responses map[string]string) (level string, score int, err error) {
	for _, key := range QuestionKeys {
		answer, ok := responses[key]
		if !ok || answer == "" {
			return "", 0, &ValidationError{Field: key, Reason: "is required"}
		}
		weight, ok := answerWeights[answer]
		if !ok {
			return "", 0, &ValidationError{Field: key, Reason: "must be one of: A, B, C, D"}
		}
		score += weight
	}
	for key := range responses {
		if !isQuestionKey(key) {
			return "", 0, &ValidationError{Field: key, Reason: "is not a recognized question"}
		}
	}

	switch {
	case score <= 5:
		level = LevelLow
	case score <= 15:
		level = LevelModerate
	case score <= 25:
		level = LevelHigh
	default:
		level = LevelSevere
	}
	return level, score, nil
}

func isQuestionKey(key string) bool {
	for _, k := range QuestionKeys {
		if k == key {
			return true
		}
	}
	return false
}

var recommendations = map[string][]string{
	LevelLow: {
		"Keep up the great work!",
		"Maintain your current routine",
		"Continue practicing self-care",
	},
	LevelModerate: {
		"Take regular breaks during study",
		"Practice deep breathing exercises",
		"Ensure you're getting enough sleep",
		"Try light physical activity",
	},
	LevelHigh: {
		"Consider reducing study intensity",
		"Practice mindfulness or meditation",
		"Talk to friends or family",
		"Take a day off if possible",
		"Consider professional counseling",
	},
	LevelSevere: {
		"Please seek professional help immediately",
		"Contact a mental health professional",
		"Reach out to support groups",
		"Consider taking a break from studies",
		"Emergency helpline: 988 (if in US)",
	},
}

// RecommendationsFor returns the guidance list for a level. An unknown
// level falls back to the moderate list.
func RecommendationsFor(level string) []string {
	recs, ok := recommendations[level]
	if !ok {
		recs = recommendations[LevelModerate]
	}
	out := make([]string, len(recs))
	copy(out, recs)
	return out
}

var quotes = map[string][]string{
	LevelLow: {
		"You're doing amazing! Keep up the excellent work! 🌟",
		"Your positive energy is inspiring! Continue shining! ✨",
		"Great job maintaining your well-being! You've got this! 💪",
		"Your dedication and balance are truly admirable! 🎯",
	},
	LevelModerate: {
		"It's okay to have ups and downs. You're stronger than you think! 💪",
		"Every small step forward is progress. Keep going! 🚀",
		"Remember to be kind to yourself. You're doing your best! 💙",
		"Challenges make us stronger. You've overcome them before! 🌈",
	},
	LevelHigh: {
		"It's okay to ask for help. You don't have to face this alone. 🤝",
		"Taking care of yourself is not selfish—it's necessary. 💚",
		"This feeling is temporary. Brighter days are ahead. ☀️",
		"You are valued and important. Don't forget that. 💝",
	},
	LevelSevere: {
		"You are not alone in this. Help is available and you deserve it. 🤗",
		"Your life has value and meaning. Please reach out for support. 💙",
		"It's okay to not be okay. Professional help can make a difference. 🆘",
		"You matter. Your feelings are valid. Please seek help. 💜",
	},
}

// MotivationalQuoteFor draws one quote uniformly at random from the
// level's pool. Unknown levels draw from the moderate pool.
func MotivationalQuoteFor(level string) string {
	pool, ok := quotes[level]
	if !ok {
		pool = quotes[LevelModerate]
	}
	return pool[rand.IntN(len(pool))]
}

// QuotePool exposes a level's full pool so callers (and tests) can check
// membership without caring which quote was drawn.
func QuotePool(level string) []string {
	pool, ok := quotes[level]
	if !ok {
		pool = quotes[LevelModerate]
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}
