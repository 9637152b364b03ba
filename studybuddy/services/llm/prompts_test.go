package llm

import (
	"strings"
	"testing"
)

func TestParseFlashcardsFromProse(t *testing.T) {
	reply := `Sure! Here are your flashcards:
[
  {"question": "What is a B-tree?", "answer": "A self-balancing tree for sorted data."},
  {"question": "What is fan-out?", "answer": "The number of children per node."}
]
Happy studying!`

	cards := ParseFlashcards(reply)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Question != "What is a B-tree?" {
		t.Fatalf("unexpected first question: %q", cards[0].Question)
	}
	if cards[1].Answer != "The number of children per node." {
		t.Fatalf("unexpected second answer: %q", cards[1].Answer)
	}
}

func TestParseFlashcardsGarbageFallsBack(t *testing.T) {
	for _, reply := range []string{
		"",
		"I cannot generate flashcards for this content.",
		"[not valid json at all",
		"[]",
	} {
		cards := ParseFlashcards(reply)
		if len(cards) != 1 {
			t.Fatalf("reply %q: expected single placeholder card, got %d", reply, len(cards))
		}
		if cards[0].Question != "What is the main topic?" {
			t.Fatalf("reply %q: unexpected placeholder %q", reply, cards[0].Question)
		}
	}
}

func TestParseQuizFromProse(t *testing.T) {
	reply := `Here is the quiz:
[
  {"question": "Which sort is stable?", "options": ["Quicksort", "Heapsort", "Mergesort", "Selection sort"], "answer": 2}
]`

	quiz := ParseQuiz(reply)
	if len(quiz) != 1 {
		t.Fatalf("expected 1 question, got %d", len(quiz))
	}
	q := quiz[0]
	if q.Answer != 2 {
		t.Fatalf("expected answer index 2, got %d", q.Answer)
	}
	if len(q.Options) != 4 || q.Options[2] != "Mergesort" {
		t.Fatalf("unexpected options: %v", q.Options)
	}
}

func TestParseQuizGarbageFallsBack(t *testing.T) {
	quiz := ParseQuiz("no structured output here")
	if len(quiz) != 1 {
		t.Fatalf("expected single placeholder question, got %d", len(quiz))
	}
	if len(quiz[0].Options) != 4 || quiz[0].Answer != 0 {
		t.Fatalf("unexpected placeholder: %+v", quiz[0])
	}
}

func TestRoomSummaryPromptEmbedsTranscript(t *testing.T) {
	prompt := RoomSummaryPrompt([]string{"[u1] what is TCP?", "[u2] a transport protocol"})
	if !strings.Contains(prompt, "[u1] what is TCP?") || !strings.Contains(prompt, "[u2] a transport protocol") {
		t.Fatal("prompt must contain every transcript line")
	}
	if !strings.Contains(prompt, "2-3 sentences") {
		t.Fatal("prompt lost its length instruction")
	}
}

func TestFlashcardsPromptIncludesSubject(t *testing.T) {
	prompt := FlashcardsPrompt("Operating Systems", "Paging and segmentation.")
	if !strings.Contains(prompt, "Subject: Operating Systems") {
		t.Fatal("prompt missing subject line")
	}
	if !strings.Contains(prompt, "Paging and segmentation.") {
		t.Fatal("prompt missing content")
	}
}
