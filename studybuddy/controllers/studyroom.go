package controllers

import (
	"context"
	"strings"

	"studybuddy/studybuddy/services/studyroom"
	"studybuddy/studybuddy/sources/psql/dao"
	"studybuddy/studybuddy/sources/psql/models"
	"studybuddy/studybuddy/types"

	"github.com/google/uuid"
)

type StudyRoomController struct {
	roomDAO *dao.RoomDAO
	cadence *studyroom.CadenceController
}

func NewStudyRoomController(roomDAO *dao.RoomDAO, cadence *studyroom.CadenceController) *StudyRoomController {
	return &StudyRoomController{roomDAO: roomDAO, cadence: cadence}
}

func (c *StudyRoomController) CreateRoom(ctx context.Context, creatorID uuid.UUID, req types.CreateRoomRequest) (*models.StudyRoom, error) {
	name := strings.TrimSpace(req.Name)
	subject := strings.TrimSpace(req.Subject)
	if name == "" || subject == "" {
		return nil, ErrMissingFields
	}
	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}
	maxMembers := req.MaxMembers
	if maxMembers <= 0 {
		maxMembers = 10
	}

	room := &models.StudyRoom{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Subject:     subject,
		Difficulty:  difficulty,
		CreatorID:   creatorID,
		MaxMembers:  maxMembers,
		IsActive:    true,
	}
	if err := c.roomDAO.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	if err := c.roomDAO.AddMember(ctx, room.ID, creatorID); err != nil {
		return nil, err
	}
	return c.roomDAO.GetRoom(ctx, room.ID)
}

// ListRooms also bootstraps the shared default room the first time anyone
// asks.
func (c *StudyRoomController) ListRooms(ctx context.Context, userID uuid.UUID, filter dao.RoomFilter) ([]models.StudyRoom, error) {
	if _, err := c.roomDAO.EnsureDefaultRoom(ctx, userID); err != nil {
		return nil, err
	}
	return c.roomDAO.ListRooms(ctx, filter)
}

func (c *StudyRoomController) GetRoom(ctx context.Context, roomID uuid.UUID) (*models.StudyRoom, error) {
	room, err := c.roomDAO.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, studyroom.ErrRoomNotFound
	}
	return room, nil
}

func (c *StudyRoomController) JoinRoom(ctx context.Context, roomID, userID uuid.UUID) (*models.StudyRoom, error) {
	room, err := c.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.IsActive {
		return nil, studyroom.ErrRoomInactive
	}
	if len(room.Members) >= room.MaxMembers {
		return nil, studyroom.ErrRoomFull
	}
	member, err := c.roomDAO.IsMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if member {
		return nil, studyroom.ErrAlreadyMember
	}
	if err := c.roomDAO.AddMember(ctx, roomID, userID); err != nil {
		return nil, err
	}
	return c.roomDAO.GetRoom(ctx, roomID)
}

func (c *StudyRoomController) LeaveRoom(ctx context.Context, roomID, userID uuid.UUID) (*models.StudyRoom, error) {
	room, err := c.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if err := c.roomDAO.RemoveMember(ctx, room.ID, userID); err != nil {
		return nil, err
	}
	return c.roomDAO.GetRoom(ctx, roomID)
}

func (c *StudyRoomController) DeleteRoom(ctx context.Context, roomID, userID uuid.UUID) error {
	room, err := c.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if room.CreatorID != userID {
		return studyroom.ErrNotCreator
	}
	return c.roomDAO.DeleteRoom(ctx, roomID)
}

func (c *StudyRoomController) SendMessage(ctx context.Context, roomID, userID uuid.UUID, content string) (*studyroom.PostResult, error) {
	return c.cadence.PostUserMessage(ctx, roomID, userID, content)
}

func (c *StudyRoomController) GetMessages(ctx context.Context, roomID uuid.UUID, page, limit int) ([]models.RoomMessage, error) {
	if _, err := c.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return c.roomDAO.ListMessages(ctx, roomID, page, limit)
}
