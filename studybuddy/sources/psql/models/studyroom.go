package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageKindUser = "user"
	MessageKindAI   = "ai"
	MessageKindSys  = "system"
)

// DefaultRoomName is the shared discussion room every user can list and
// join; the migration puts a unique index behind it.
const DefaultRoomName = "GATE CSE Discussion Room"

type StudyRoom struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Subject     string    `json:"subject" gorm:"type:varchar(255);not null;index:idx_rooms_subject_active"`
	Difficulty  string    `json:"difficulty" gorm:"type:varchar(50);not null;default:'beginner'"`
	CreatorID   uuid.UUID `json:"creator_id" gorm:"type:uuid;not null;index"`
	Creator     User      `json:"-" gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE"`
	MaxMembers  int       `json:"max_members" gorm:"not null;default:10"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true;index:idx_rooms_subject_active"`

	// Counts user messages only; bumped atomically at the storage layer so
	// the every-Nth summary check cannot race.
	MessageCount  int64      `json:"message_count" gorm:"not null;default:0"`
	LastSummaryAt *time.Time `json:"last_summary_at"`

	Members  []RoomMember  `json:"members" gorm:"foreignKey:RoomID"`
	Messages []RoomMessage `json:"-" gorm:"foreignKey:RoomID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (StudyRoom) TableName() string {
	return "study_rooms"
}

func (r *StudyRoom) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}

type RoomMember struct {
	RoomID   uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	User     User      `json:"user" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

func (RoomMember) TableName() string {
	return "room_members"
}

// RoomMessage is immutable once appended. AuthorID is nil for AI/system
// messages.
type RoomMessage struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RoomID    uuid.UUID  `json:"room_id" gorm:"type:uuid;not null;index"`
	AuthorID  *uuid.UUID `json:"author_id" gorm:"type:uuid"`
	Kind      string     `json:"kind" gorm:"type:varchar(20);not null;default:'user'"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	Timestamp time.Time  `json:"timestamp" gorm:"not null;autoCreateTime;index"`
}

func (RoomMessage) TableName() string {
	return "room_messages"
}

func (m *RoomMessage) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
