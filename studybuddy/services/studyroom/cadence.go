package studyroom

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studybuddy/studybuddy/services/llm"
	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/utils/logging"
	"studybuddy/studybuddy/utils/syncutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SummaryFallback is stored verbatim when the generator fails or times
// out; message posting itself never fails because of the summarizer.
const SummaryFallback = "Unable to generate summary at this time."

const summaryPrefix = "AI Summary: "

// RoomStore is the persistence collaborator for message posting.
type RoomStore interface {
	GetRoom(ctx context.Context, id uuid.UUID) (*models.StudyRoom, error)
	IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error)
	AppendMessage(ctx context.Context, msg *models.RoomMessage) error
	IncrementMessageCount(ctx context.Context, roomID uuid.UUID) (int64, error)
	LastUserMessages(ctx context.Context, roomID uuid.UUID, n int) ([]models.RoomMessage, error)
	SetLastSummaryAt(ctx context.Context, roomID uuid.UUID, at time.Time) error
}

// CadenceController appends user messages to a room and triggers an AI
// summary every Nth user message. Summary messages have a nil author and
// never count toward the cadence.
type CadenceController struct {
	store    RoomStore
	gen      llm.Generator
	hub      *Hub
	interval int
	timeout  time.Duration
	mu       syncutil.KeyedMutex
}

func NewCadenceController(store RoomStore, gen llm.Generator, hub *Hub, interval int, timeout time.Duration) *CadenceController {
	if interval <= 0 {
		interval = 10
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &CadenceController{
		store:    store,
		gen:      gen,
		hub:      hub,
		interval: interval,
		timeout:  timeout,
	}
}

type PostResult struct {
	Message         models.RoomMessage `json:"message"`
	SummaryAppended bool               `json:"summary_appended"`
}

// PostUserMessage appends the author's message and, when the bumped
// counter hits a multiple of the interval, a follow-up AI summary of the
// last interval user messages. Posting is serialized per room.
func (c *CadenceController) PostUserMessage(ctx context.Context, roomID, authorID uuid.UUID, content string) (*PostResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}

	c.mu.Lock(roomID.String())
	defer c.mu.Unlock(roomID.String())

	room, err := c.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	member, err := c.store.IsMember(ctx, roomID, authorID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotMember
	}

	author := authorID
	msg := models.RoomMessage{
		RoomID:    roomID,
		AuthorID:  &author,
		Kind:      models.MessageKindUser,
		Content:   content,
		Timestamp: time.Now(),
	}
	if err := c.store.AppendMessage(ctx, &msg); err != nil {
		return nil, fmt.Errorf("appending message: %w", err)
	}
	count, err := c.store.IncrementMessageCount(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("incrementing message count: %w", err)
	}
	c.hub.Publish(roomID, msg)

	result := &PostResult{Message: msg}
	if count%int64(c.interval) != 0 {
		return result, nil
	}

	window, err := c.store.LastUserMessages(ctx, roomID, c.interval)
	if err != nil {
		// The user message is already in; a lost summary window is
		// logged, not surfaced.
		logError("loading summary window", err)
		return result, nil
	}
	summary := c.GenerateRoomSummary(ctx, window)
	aiMsg := models.RoomMessage{
		RoomID:    roomID,
		AuthorID:  nil,
		Kind:      models.MessageKindAI,
		Content:   summaryPrefix + summary,
		Timestamp: time.Now(),
	}
	if err := c.store.AppendMessage(ctx, &aiMsg); err != nil {
		logError("appending summary message", err)
		return result, nil
	}
	if err := c.store.SetLastSummaryAt(ctx, roomID, aiMsg.Timestamp); err != nil {
		logError("recording summary time", err)
	}
	c.hub.Publish(roomID, aiMsg)
	result.SummaryAppended = true
	return result, nil
}

// GenerateRoomSummary asks the generator for a summary of the messages and
// degrades to SummaryFallback on any error. It never fails.
func (c *CadenceController) GenerateRoomSummary(ctx context.Context, messages []models.RoomMessage) string {
	transcript := make([]string, 0, len(messages))
	for _, m := range messages {
		who := "system"
		if m.AuthorID != nil {
			who = m.AuthorID.String()
		}
		transcript = append(transcript, fmt.Sprintf("[%s] %s", who, m.Content))
	}

	genCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	text, err := c.gen.Generate(genCtx, llm.RoomSummaryPrompt(transcript))
	if err != nil {
		logError("generating room summary", err)
		return SummaryFallback
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryFallback
	}
	return text
}

func logError(what string, err error) {
	if logging.ErrorLogger == nil {
		return
	}
	logging.ErrorLogger.Error(what, zap.Error(err))
}
