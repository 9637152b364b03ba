package dao

import (
	"context"
	"errors"
	"time"

	"studybuddy/studybuddy/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomDAO struct {
	DB *gorm.DB
}

func NewRoomDAO(db *gorm.DB) *RoomDAO {
	return &RoomDAO{DB: db}
}

func (dao *RoomDAO) CreateRoom(ctx context.Context, room *models.StudyRoom) error {
	return dao.DB.WithContext(ctx).Create(room).Error
}

// GetRoom returns (nil, nil) when the room does not exist.
func (dao *RoomDAO) GetRoom(ctx context.Context, id uuid.UUID) (*models.StudyRoom, error) {
	var room models.StudyRoom
	err := dao.DB.WithContext(ctx).
		Preload("Members").
		Preload("Members.User").
		Where("id = ?", id).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

type RoomFilter struct {
	Subject    string
	Difficulty string
	IsActive   *bool
}

func (dao *RoomDAO) ListRooms(ctx context.Context, filter RoomFilter) ([]models.StudyRoom, error) {
	q := dao.DB.WithContext(ctx).Model(&models.StudyRoom{}).Preload("Members")
	if filter.Subject != "" {
		q = q.Where("subject = ?", filter.Subject)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	var rooms []models.StudyRoom
	if err := q.Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (dao *RoomDAO) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomMember{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.StudyRoom{}).Error
	})
}

func (dao *RoomDAO) AddMember(ctx context.Context, roomID, userID uuid.UUID) error {
	return dao.DB.WithContext(ctx).Create(&models.RoomMember{RoomID: roomID, UserID: userID}).Error
}

func (dao *RoomDAO) RemoveMember(ctx context.Context, roomID, userID uuid.UUID) error {
	return dao.DB.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&models.RoomMember{}).Error
}

func (dao *RoomDAO) IsMember(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.RoomMember{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (dao *RoomDAO) AppendMessage(ctx context.Context, msg *models.RoomMessage) error {
	return dao.DB.WithContext(ctx).Create(msg).Error
}

// IncrementMessageCount bumps the room's user-message counter in a single
// statement and returns the new value, so concurrent posts crossing the
// same summary boundary cannot both observe a multiple of the interval.
func (dao *RoomDAO) IncrementMessageCount(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Raw(`UPDATE study_rooms SET message_count = message_count + 1, updated_at = NOW() WHERE id = ? RETURNING message_count`, roomID).
		Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LastUserMessages returns the room's most recent n user messages in
// chronological order. AI/system messages are excluded so a prior summary
// never feeds the next one.
func (dao *RoomDAO) LastUserMessages(ctx context.Context, roomID uuid.UUID, n int) ([]models.RoomMessage, error) {
	var msgs []models.RoomMessage
	err := dao.DB.WithContext(ctx).
		Where("room_id = ? AND kind = ?", roomID, models.MessageKindUser).
		Order("timestamp DESC").
		Limit(n).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

func (dao *RoomDAO) SetLastSummaryAt(ctx context.Context, roomID uuid.UUID, at time.Time) error {
	return dao.DB.WithContext(ctx).
		Model(&models.StudyRoom{}).
		Where("id = ?", roomID).
		Update("last_summary_at", at).Error
}

// ListMessages pages through a room's log, newest page first.
func (dao *RoomDAO) ListMessages(ctx context.Context, roomID uuid.UUID, page, limit int) ([]models.RoomMessage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.RoomMessage
	err := dao.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("timestamp DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// EnsureDefaultRoom creates the shared discussion room once. The insert
// rides on the partial unique index over the room name, so two racing
// first calls cannot both create it; the loser reads the winner's row.
func (dao *RoomDAO) EnsureDefaultRoom(ctx context.Context, creatorID uuid.UUID) (*models.StudyRoom, error) {
	var room models.StudyRoom
	err := dao.DB.WithContext(ctx).Where("name = ?", models.DefaultRoomName).First(&room).Error
	if err == nil {
		return &room, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	room = models.StudyRoom{
		Name:        models.DefaultRoomName,
		Description: "Default room for discussing GATE CSE topics with AI assistance",
		Subject:     "GATE CS",
		Difficulty:  "intermediate",
		CreatorID:   creatorID,
		MaxMembers:  50,
		IsActive:    true,
	}
	res := dao.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&room)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := dao.DB.WithContext(ctx).Where("name = ?", models.DefaultRoomName).First(&room).Error; err != nil {
			return nil, err
		}
		return &room, nil
	}
	if err := dao.AddMember(ctx, room.ID, creatorID); err != nil {
		return nil, err
	}
	return &room, nil
}
