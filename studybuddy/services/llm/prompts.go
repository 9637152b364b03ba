package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrEmptyCompletion = errors.New("empty completion from model")

// RoomSummaryPrompt embeds a chat transcript for the every-Nth-message
// study room summary.
func RoomSummaryPrompt(transcript []string) string {
	return fmt.Sprintf(`Analyze the following study room conversation and generate a concise summary of the key discussion points, questions asked, and answers provided.
Focus on educational content and learning outcomes.

Messages:
%s

Provide a summary in 2-3 sentences that captures the main learning points.`, strings.Join(transcript, "\n"))
}

func NoteSummaryPrompt(content string) string {
	return fmt.Sprintf(`Analyze this study material and generate:
1. A comprehensive summary (2-3 paragraphs)
2. Key learning points (bullet points)
3. Important concepts covered

Content: %s`, content)
}

func FlashcardsPrompt(subject, content string) string {
	return fmt.Sprintf(`Generate 5-8 flashcards based on the following study material.
Return ONLY a JSON array with this exact format:
[
  {"question": "Question text", "answer": "Answer text"}
]

Subject: %s
Content: %s

Make questions and answers concise but comprehensive.`, subject, content)
}

func QuizPrompt(subject, content string) string {
	return fmt.Sprintf(`Generate 3-5 multiple choice questions based on the following study material.
Return ONLY a JSON array with this exact format:
[
  {"question": "Question text", "options": ["Option A", "Option B", "Option C", "Option D"], "answer": 0}
]

Subject: %s
Content: %s

Make questions challenging but fair, with 4 options each.
The answer should be the index (0-3) of the correct option.`, subject, content)
}

func MotivationPrompt(stressLevel, progress string) string {
	return fmt.Sprintf(`Generate a personalized motivational message for a student based on their stress level and progress.

Stress Level: %s
Recent Progress: %s

Make it encouraging, specific to their situation, and 1-2 sentences long.
Be supportive and motivating.`, stressLevel, progress)
}

type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
}

var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

// extractJSONArray pulls the first JSON array out of prose the model may
// have wrapped around it.
func extractJSONArray(text string) ([]byte, bool) {
	match := jsonArrayRe.FindString(text)
	if match == "" {
		return nil, false
	}
	return []byte(match), true
}

// ParseFlashcards never fails; a response the model mangled degrades to a
// single placeholder card.
func ParseFlashcards(text string) []Flashcard {
	if raw, ok := extractJSONArray(text); ok {
		var cards []Flashcard
		if err := json.Unmarshal(raw, &cards); err == nil && len(cards) > 0 {
			return cards
		}
	}
	return []Flashcard{
		{Question: "What is the main topic?", Answer: "Please try again with more specific content."},
	}
}

// ParseQuiz mirrors ParseFlashcards for quiz questions.
func ParseQuiz(text string) []QuizQuestion {
	if raw, ok := extractJSONArray(text); ok {
		var quiz []QuizQuestion
		if err := json.Unmarshal(raw, &quiz); err == nil && len(quiz) > 0 {
			return quiz
		}
	}
	return []QuizQuestion{
		{
			Question: "What is the main topic?",
			Options:  []string{"Option A", "Option B", "Option C", "Option D"},
			Answer:   0,
		},
	}
}
